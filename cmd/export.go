package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/josephgoksu/todolist/store"
	"github.com/spf13/cobra"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Copy all tasks to another file",
	Long: `Write every task to path in the chosen format. The format comes from
--to, or from the file extension when --to is omitted. An existing file at
path is replaced.

Examples:
  todolist export backup.yaml
  todolist export tasks.db --to sqlite`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var exportTo string

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportTo, "to", "", "Target format: json, yaml, toml, sqlite")
}

func runExport(cmd *cobra.Command, args []string) error {
	target := args[0]

	format := store.FormatFromPath(target)
	if exportTo != "" {
		f, err := store.ParseFormat(exportTo)
		if err != nil {
			return err
		}
		format = f
	}

	sess, err := openStore()
	if err != nil {
		return err
	}
	defer sess.release()

	if samePath(target, sess.path) {
		return fmt.Errorf("export target %s is the data file itself", target)
	}

	p, err := store.NewPersister(appFs, target, format)
	if err != nil {
		return fmt.Errorf("open export target: %w", err)
	}
	defer func() {
		if err := store.ClosePersister(p); err != nil {
			LogError("close export target", err)
		}
	}()

	tasks := sess.store.List()
	if err := p.Save(tasks); err != nil {
		return fmt.Errorf("export tasks: %w", err)
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), exportResult{Path: target, Format: string(format), Tasks: len(tasks)})
	}
	printInfo(cmd.OutOrStdout(), "Exported %d tasks to %s (%s)", len(tasks), target, format)
	return nil
}

// samePath reports whether a and b name the same file, however they are spelled.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && absA == absB {
		return true
	}

	infoA, errA := appFs.Stat(a)
	infoB, errB := appFs.Stat(b)
	return errA == nil && errB == nil && os.SameFile(infoA, infoB)
}
