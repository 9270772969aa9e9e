package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and, optionally, a
// phrasetrack.yaml file in the working directory. Environment variables take
// precedence over file values and use the PHRASETRACK_ prefix with
// underscores for nesting (e.g. PHRASETRACK_STORAGE_DRIVER).
// Returns a populated Config or an error if loading or validation fails.
func Load() (*Config, error) {
	return LoadWithFile("")
}

// LoadWithFile is Load with an explicit config file path, used by tests to
// avoid depending on the working directory.
func LoadWithFile(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("engine.daily_goal", 5)
	v.SetDefault("engine.pass_threshold", 0)
	v.SetDefault("engine.first_interval", 0)
	v.SetDefault("engine.second_interval", 0)
	v.SetDefault("engine.min_ease_factor", 0)
	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.path", "data/phrasetrack.db")
	v.SetDefault("logging.level", "info")

	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("phrasetrack")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; everything has defaults or env. A
		// file that exists but cannot be read or parsed is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("PHRASETRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind environment variables so they are visible even when
	// the key is absent from the config file.
	bindEnvs := []struct {
		key    string
		envVar string
	}{
		{"engine.daily_goal", "PHRASETRACK_ENGINE_DAILY_GOAL"},
		{"engine.pass_threshold", "PHRASETRACK_ENGINE_PASS_THRESHOLD"},
		{"engine.first_interval", "PHRASETRACK_ENGINE_FIRST_INTERVAL"},
		{"engine.second_interval", "PHRASETRACK_ENGINE_SECOND_INTERVAL"},
		{"engine.min_ease_factor", "PHRASETRACK_ENGINE_MIN_EASE_FACTOR"},
		{"storage.driver", "PHRASETRACK_STORAGE_DRIVER"},
		{"storage.path", "PHRASETRACK_STORAGE_PATH"},
		{"storage.url", "PHRASETRACK_STORAGE_URL"},
		{"logging.level", "PHRASETRACK_LOGGING_LEVEL"},
	}

	for _, env := range bindEnvs {
		if err := v.BindEnv(env.key, env.envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", env.envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
