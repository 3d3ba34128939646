package cmd

import (
	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [n]",
	Short: "Show every field of a task",
	Long: `Show task n with its full description. Without n, an interactive list
is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	sess, err := openStore()
	if err != nil {
		return err
	}
	defer sess.release()

	entries := sess.store.Entries()
	pos, ok, err := positionFromArgs(cmd, args, "Show which task?", entries)
	if err != nil || !ok {
		return err
	}

	if pos < 0 || pos >= len(entries) {
		return reportOutOfRange(cmd.OutOrStdout(), "show", pos, len(entries))
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), toTaskViews(entries[pos : pos+1])[0])
	}
	return ui.RenderTaskDetail(cmd.OutOrStdout(), entries[pos])
}
