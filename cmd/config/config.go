// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/tracedump/tracedump/pkg/export"
)

// Accessors resolve CLI flag values with their TRACEDUMP_* environment
// fallbacks through viper.

func DatabaseURL() string {
	return viper.GetString("database-url")
}

func ConfigFile() string {
	return viper.GetString("configfile")
}

func OutputKind() (export.OutputKind, error) {
	return export.ParseOutputKind(viper.GetString("output"))
}

func TargetDirectory() string {
	return viper.GetString("target-directory")
}

func Compress() bool {
	return viper.GetBool("compress")
}

func LogLevel() string {
	return viper.GetString("log-level")
}

// ParseExportConfig loads and validates the export configuration file.
func ParseExportConfig(file string) (*export.Config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading config file %q: %w", file, err)
	}
	cfg, err := export.ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config file %q: %w", file, err)
	}
	return cfg, nil
}
