// Package config owns the persistent global configuration record shared by
// all matcha invocations on a machine.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable overriding the global configuration file path.
const envConfigPath = "MATCHA_CONFIG"

const (
	configDirName  = "matcha-ml"
	configFileName = "config.yaml"
)

// DefaultConfigPath returns the path of the global configuration file
// (<user-config-dir>/matcha-ml/config.yaml).
// If MATCHA_CONFIG is set, it takes precedence.
func DefaultConfigPath() string {
	if envPath := os.Getenv(envConfigPath); envPath != "" {
		return envPath
	}
	return filepath.Join(xdg.ConfigHome, configDirName, configFileName)
}
