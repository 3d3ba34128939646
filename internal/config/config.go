// Package config loads the application configuration and resolves where the
// task data lives.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/todolist/types"
	"github.com/spf13/viper"
)

const (
	// ConfigName is the config file base name searched for in ./ and $HOME.
	ConfigName = ".todolist"
	// EnvPrefix prefixes every environment override, e.g. TODOLIST_DATA_FILE.
	EnvPrefix = "TODOLIST"
)

// validate is a single instance of Validate, it caches struct info
var validate = validator.New()

// SetDefaults registers default values on v. Keys without a natural default
// are registered empty so AutomaticEnv can still override them on Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)
	v.SetDefault("quiet", false)
	v.SetDefault("json", false)

	v.SetDefault("data.file", "")
	v.SetDefault("data.format", "")

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetDefault("validation.strictPriority", false)
}

// Load reads .env, environment variables and the config file into v, then
// unmarshals and validates the result. cfgFile overrides the search path
// when non-empty; a missing searched-for file is not an error.
func Load(v *viper.Viper, cfgFile string) (*types.AppConfig, error) {
	// It's okay if .env doesn't exist.
	_ = godotenv.Load()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg types.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	cfg.Data.Format = strings.ToLower(strings.TrimSpace(cfg.Data.Format))

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *types.AppConfig) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config %s: %q does not satisfy '%s=%s'", fe.Namespace(), fe.Value(), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
