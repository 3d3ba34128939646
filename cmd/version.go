package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of todolist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if isJSON() {
			return printJSON(cmd.OutOrStdout(), map[string]string{
				"version": GetVersion(),
				"go":      runtime.Version(),
			})
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "todolist version %s (%s)\n", GetVersion(), runtime.Version())
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
