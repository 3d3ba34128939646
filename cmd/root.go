/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"os"

	"github.com/josephgoksu/todolist/internal/logger"
	"github.com/spf13/cobra"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// version is the application version, overridden at build time with -ldflags.
	version = "1.0.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "todolist",
	Short: "todolist keeps a simple list of tasks on disk.",
	Long: `todolist is a small task tracker for the command line.

Tasks have a title, description, due date, priority and category, and are
addressed by their number in the list (starting at 1). Every change is
written to the data file immediately.

Examples:
  todolist add "Buy milk" --due 2024-05-01 --priority High --category Errand
  todolist list --sort priority
  todolist done 2`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		PrintError(os.Stderr, userMessage(err), err)
		os.Exit(1)
	}
}

// GetVersion returns the application version.
func GetVersion() string {
	return version
}

func init() {
	logger.SetVersion(version)
	rootCmd.Version = version

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.todolist.yaml or $HOME/.todolist.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output and debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "print only errors")
	rootCmd.PersistentFlags().Bool("json", false, "print machine-readable JSON")
	rootCmd.PersistentFlags().StringP("file", "f", "", "task data file (default: ./tasks.<ext>, $XDG_DATA_HOME/todolist or ~/.todolist)")
	rootCmd.PersistentFlags().String("format", "", "data format: json, yaml, toml or sqlite (default: from file extension, else json)")
}
