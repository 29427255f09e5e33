// Package settings loads grpwm's run-time settings: the things that vary by
// machine rather than by taste, and so do not belong in the compiled-in
// configuration.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Settings struct {
	// Display is the X display to query. Empty means $DISPLAY.
	Display string `mapstructure:"display"`
	Profile string `mapstructure:"profile" validate:"required"`
	Log     Log    `mapstructure:"log"`
	// Autostart overrides the profile's startup script, if set.
	Autostart string `mapstructure:"autostart"`
	// Notify sends a desktop notification when the startup script fails.
	Notify bool `mapstructure:"notify"`
}

type Log struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Human bool   `mapstructure:"human"`
}

// EnvPrefix prefixes environment overrides: GRPWM_PROFILE, GRPWM_LOG_LEVEL
// and so on.
const EnvPrefix = "GRPWM"

// Load reads settings from path, or from config.yaml in the user's config
// directory if path is empty, and then from the environment. A missing
// default file is not an error; a missing explicit one is.
func Load(path string) (Settings, error) {
	v := viper.New()
	v.SetDefault("display", "")
	v.SetDefault("profile", "scratch")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.human", true)
	v.SetDefault("autostart", "")
	v.SetDefault("notify", true)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "grpwm"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	s.Log.Level = strings.ToLower(s.Log.Level)
	if err := validator.New().Struct(s); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}
