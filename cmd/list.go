/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/store"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List all tasks. The # column is the task number used by edit, delete
and done; sorting never changes it.

Examples:
  todolist list
  todolist list --sort due
  todolist list --sort priority --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listSort string

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listSort, "sort", "s", "", "Sort by: due, priority (default: list order)")
}

func runList(cmd *cobra.Command, args []string) error {
	sess, err := openStore()
	if err != nil {
		return err
	}
	defer sess.release()

	var entries []store.Entry
	switch strings.ToLower(strings.TrimSpace(listSort)) {
	case "":
		entries = sess.store.Entries()
	case "due", "date", "duedate":
		entries = sess.store.SortEntriesByDueDate()
	case "priority":
		entries = sess.store.SortEntriesByPriority()
	default:
		return fmt.Errorf("unknown sort %q (use due or priority)", listSort)
	}

	return renderEntries(cmd, entries, "No tasks yet. Add one with: todolist add \"Buy milk\"")
}

// renderEntries prints entries as a table, or JSON with --json.
func renderEntries(cmd *cobra.Command, entries []store.Entry, emptyMsg string) error {
	out := cmd.OutOrStdout()
	if isJSON() {
		return printJSON(out, toTaskViews(entries))
	}
	if len(entries) == 0 {
		printInfo(out, "%s", emptyMsg)
		return nil
	}
	return ui.RenderTasks(out, entries)
}
