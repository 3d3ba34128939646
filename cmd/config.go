package cmd

import (
	"log/slog"
	"strings"

	"github.com/josephgoksu/todolist/internal/config"
	"github.com/josephgoksu/todolist/internal/logger"
	"github.com/josephgoksu/todolist/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// persistentFlagKeys maps root flags to their config keys.
var persistentFlagKeys = map[string]string{
	"config":  "config",
	"verbose": "verbose",
	"quiet":   "quiet",
	"json":    "json",
	"file":    "data.file",
	"format":  "data.format",
}

// initConfig binds flags, reads config and installs the default logger.
// It runs before every command.
func initConfig(cmd *cobra.Command, args []string) error {
	flags := cmd.Root().PersistentFlags()
	for name, key := range persistentFlagKeys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}

	cfg, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		return err
	}
	GlobalAppConfig = *cfg

	level := cfg.Log.Level
	if cfg.Verbose {
		level = "debug"
	}
	slog.SetDefault(logger.New(cmd.ErrOrStderr(), level, cfg.Log.Format))

	logger.SetCommand(cmd.CommandPath())
	logger.SetLastInput(strings.Join(args, " "))

	if cfgUsed := viper.ConfigFileUsed(); cfgUsed != "" {
		slog.Debug("using config file", "path", cfgUsed)
	}
	return nil
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
