/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:     "delete [n]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long: `Delete task n. Tasks after it move up one number.

Without n, an interactive list is shown. In a terminal a confirmation prompt
is displayed first unless --yes is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

var deleteYes bool

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Delete without asking for confirmation")
}

func runDelete(cmd *cobra.Command, args []string) error {
	sess, err := openStore()
	if err != nil {
		return err
	}
	defer sess.release()

	pos, ok, err := positionFromArgs(cmd, args, "Delete which task?", sess.store.Entries())
	if err != nil || !ok {
		return err
	}

	count := sess.store.Len()
	if pos < 0 || pos >= count {
		return reportOutOfRange(cmd.OutOrStdout(), "delete", pos, count)
	}

	task := sess.store.List()[pos]
	if !deleteYes && interactive() {
		prompt := fmt.Sprintf("Delete task %d %q? [y/N] ", pos+1, task.Title)
		if !confirmOrAbort(cmd.InOrStdin(), cmd.OutOrStdout(), prompt) {
			return nil
		}
	}

	if err := sess.store.Delete(pos); err != nil {
		return fmt.Errorf("delete task %d: %w", pos+1, err)
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), mutationResult{Action: "delete", Number: pos + 1, Changed: true, Task: &task})
	}
	printInfo(cmd.OutOrStdout(), "Deleted task %d: %s", pos+1, task.Title)
	return nil
}
