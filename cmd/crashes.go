package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/josephgoksu/todolist/internal/config"
	"github.com/josephgoksu/todolist/internal/logger"
	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/spf13/cobra"
)

// crashesCmd represents the crashes command
var crashesCmd = &cobra.Command{
	Use:   "crashes [n]",
	Short: "List or print crash logs",
	Long: `List the crash logs written next to the data file, newest first.
With n, print crash log n in full.

Examples:
  todolist crashes
  todolist crashes 1`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCrashes,
}

type crashLogView struct {
	Number  int       `json:"number"`
	Path    string    `json:"path"`
	Time    time.Time `json:"time"`
	Content string    `json:"content,omitempty"`
}

func init() {
	rootCmd.AddCommand(crashesCmd)
}

func runCrashes(cmd *cobra.Command, args []string) error {
	path, _, err := config.DataFilePath(appFs, GetConfig().Data)
	if err != nil {
		return err
	}
	logger.SetBasePath(filepath.Dir(path))

	logs, err := logger.CrashLogs()
	if err != nil {
		return fmt.Errorf("list crash logs: %w", err)
	}
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		if isJSON() {
			views := make([]crashLogView, len(logs))
			for i, l := range logs {
				views[i] = crashLogView{Number: i + 1, Path: l.Path, Time: l.Time}
			}
			return printJSON(out, views)
		}
		if len(logs) == 0 {
			printInfo(out, "No crash logs in %s.", logger.CrashLogDirectory())
			return nil
		}
		table := &ui.Table{Headers: []string{"#", "Time", "Path"}}
		for i, l := range logs {
			table.Rows = append(table.Rows, []string{strconv.Itoa(i + 1), l.Time.Format(time.DateTime), l.Path})
		}
		_, err := fmt.Fprint(out, table.Render())
		return err
	}

	pos, err := parsePosition(args[0])
	if err != nil {
		return err
	}
	if pos < 0 || pos >= len(logs) {
		printInfo(out, "No crash log %d (there are %d).", pos+1, len(logs))
		return nil
	}

	content, err := logger.ReadCrashLog(logs[pos].Path)
	if err != nil {
		return err
	}
	if isJSON() {
		return printJSON(out, crashLogView{Number: pos + 1, Path: logs[pos].Path, Time: logs[pos].Time, Content: content})
	}
	_, err = fmt.Fprint(out, content)
	return err
}
