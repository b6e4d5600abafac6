package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoggingSettings holds logging configuration options.
type LoggingSettings struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputFile string `mapstructure:"output_file"` // optional file output
}

// OutputSettings holds report output configuration options.
type OutputSettings struct {
	Format string `mapstructure:"format"` // console, csv, json
	File   string `mapstructure:"file"`   // optional report file
}

// Settings are the application-level options, as opposed to the plan
// document the projection is built from.
type Settings struct {
	Logging LoggingSettings `mapstructure:"logging"`
	Output  OutputSettings  `mapstructure:"output"`
}

// LoadSettings reads application settings from an optional YAML file, with
// LIFEPLAN_* environment variables taking precedence. An empty path loads
// defaults and environment only.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("LIFEPLAN")
	v.AutomaticEnv()
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("output.format", "console")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading settings file, %s", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unable to decode settings into struct, %s", err)
	}
	return &settings, nil
}
