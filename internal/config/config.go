// Package config loads engine configuration from environment variables and
// an optional YAML file.
package config

// Config holds all engine configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Engine  EngineConfig  `mapstructure:"engine"  validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Logging LoggingConfig `mapstructure:"logging" validate:"required"`
}

// EngineConfig contains learning-engine tuning settings.
type EngineConfig struct {
	// DailyGoal is the default daily practice target used until the
	// learner sets their own.
	DailyGoal int `mapstructure:"daily_goal" validate:"required,gt=0"`

	// SRS overrides; zero values keep the SM-2 defaults.
	PassThreshold  int     `mapstructure:"pass_threshold"  validate:"gte=0,lte=5"`
	FirstInterval  float64 `mapstructure:"first_interval"  validate:"gte=0"`
	SecondInterval float64 `mapstructure:"second_interval" validate:"gte=0"`
	MinEaseFactor  float64 `mapstructure:"min_ease_factor" validate:"gte=0"`
}

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	// Driver is the gateway implementation to use.
	Driver string `mapstructure:"driver" validate:"required,oneof=sqlite postgres memory"`

	// Path is the SQLite database file; required for the sqlite driver.
	Path string `mapstructure:"path" validate:"required_if=Driver sqlite"`

	// URL is the PostgreSQL connection string; required for the postgres driver.
	URL string `mapstructure:"url" validate:"required_if=Driver postgres"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}
