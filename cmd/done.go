package cmd

import (
	"fmt"

	"github.com/josephgoksu/todolist/store"
	"github.com/spf13/cobra"
)

// doneCmd represents the done command
var doneCmd = &cobra.Command{
	Use:     "done [n]",
	Aliases: []string{"complete", "d"},
	Short:   "Mark a task as complete",
	Long: `Mark task n as complete. Completing a task twice is harmless, and
there is no way to mark a task incomplete again.

Without n, an interactive list of incomplete tasks is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDone,
}

func init() {
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	sess, err := openStore()
	if err != nil {
		return err
	}
	defer sess.release()

	pos, ok, err := positionFromArgs(cmd, args, "Complete which task?", incompleteEntries(sess.store.Entries()))
	if err != nil || !ok {
		return err
	}

	count := sess.store.Len()
	if pos < 0 || pos >= count {
		return reportOutOfRange(cmd.OutOrStdout(), "complete", pos, count)
	}

	if err := sess.store.MarkComplete(pos); err != nil {
		return fmt.Errorf("complete task %d: %w", pos+1, err)
	}

	task := sess.store.List()[pos]
	if isJSON() {
		return printJSON(cmd.OutOrStdout(), mutationResult{Action: "complete", Number: pos + 1, Changed: true, Task: &task})
	}
	printInfo(cmd.OutOrStdout(), "Completed task %d: %s", pos+1, task.Title)
	return nil
}

func incompleteEntries(entries []store.Entry) []store.Entry {
	var open []store.Entry
	for _, e := range entries {
		if !e.Task.IsComplete {
			open = append(open, e)
		}
	}
	return open
}
