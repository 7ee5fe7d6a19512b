// Package config loads the optional .doxyjunit.yaml settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppConfig represents the application's configuration from .doxyjunit.yaml.
// Command-line flags that were explicitly set override these values.
type AppConfig struct {
	Output string `yaml:"output,omitempty"`
	Quiet  bool   `yaml:"quiet"`
	Theme  string `yaml:"theme,omitempty"`
}

// Constants for default values.
const (
	DefaultOutput = "doxygen-junit.xml"
	DefaultTheme  = "default"
)

const configFileName = ".doxyjunit.yaml"

// Load reads the .doxyjunit.yaml configuration. A missing file yields
// defaults; an unreadable or malformed file yields defaults plus a
// warning on stderr.
func Load() *AppConfig {
	appCfg := &AppConfig{
		Output: DefaultOutput,
		Theme:  DefaultTheme,
	}

	configPath := getConfigPath()
	if configPath == "" {
		return appCfg
	}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: Error reading config file %s: %v. Using defaults.\n", configPath, err)
		}
		return appCfg
	}

	var yamlCfg AppConfig
	if err := yaml.Unmarshal(yamlFile, &yamlCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error unmarshalling config file %s: %v. Using defaults.\n", configPath, err)
		return appCfg
	}

	// Merge YAML settings onto the defaults.
	if yamlCfg.Output != "" {
		appCfg.Output = yamlCfg.Output
	}
	appCfg.Quiet = yamlCfg.Quiet
	if yamlCfg.Theme != "" {
		appCfg.Theme = yamlCfg.Theme
	}

	if os.Getenv("DOXYJUNIT_DEBUG") != "" {
		fmt.Fprintf(os.Stderr, "[DEBUG Load] Loaded config from %s: output=%s quiet=%t theme=%s\n",
			configPath, appCfg.Output, appCfg.Quiet, appCfg.Theme)
	}
	return appCfg
}

// getConfigPath tries to find the .doxyjunit.yaml configuration file.
// It checks the local directory first, then the XDG user config dir.
func getConfigPath() string {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName
	}

	configHome, err := os.UserConfigDir()
	// An empty or root UserConfigDir is not suitable for path construction.
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}

	xdgPath := filepath.Join(configHome, "doxyjunit", configFileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
