package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find tasks by title or description",
	Long: `List the tasks whose title or description contains the query,
ignoring case. Tasks keep their list numbers.

Examples:
  todolist search milk
  todolist search "quarterly report"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	sess, err := openStore()
	if err != nil {
		return err
	}
	defer sess.release()

	matches := sess.store.SearchEntries(query)
	return renderEntries(cmd, matches, fmt.Sprintf("No tasks match %q.", query))
}
