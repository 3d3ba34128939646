/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose    bool             `mapstructure:"verbose"`
	Quiet      bool             `mapstructure:"quiet"`
	JSON       bool             `mapstructure:"json"`
	Config     string           `mapstructure:"config"`
	Data       DataConfig       `mapstructure:"data"`
	Log        LogConfig        `mapstructure:"log"`
	Validation ValidationConfig `mapstructure:"validation"`
}

// DataConfig holds data storage configuration.
// An empty File means "resolve the default location"; an empty Format means
// "infer from the file extension".
type DataConfig struct {
	File   string `mapstructure:"file"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=json yaml yml toml sqlite"`
}

// LogConfig controls the slog handler installed by the CLI
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// ValidationConfig holds presentation-side input checks. The store itself
// accepts any value.
type ValidationConfig struct {
	// StrictPriority rejects priorities other than Low, Medium and High at the CLI.
	StrictPriority bool `mapstructure:"strictPriority"`
}
