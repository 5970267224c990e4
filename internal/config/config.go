// Package config handles dceltool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Build   BuildConfig   `yaml:"build"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// BuildConfig holds mesh construction settings.
type BuildConfig struct {
	Validate bool `yaml:"validate"` // Check every mesh invariant after building
}

// OutputConfig holds report settings.
type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "yaml"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Build: BuildConfig{
			Validate: true,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Logging: LoggingConfig{
			Level:   "warn",
			LogFile: "",
		},
	}
}
