package config

import (
	"os"
	"path/filepath"
	"sync"
)

// GlobalConfig holds the process-wide configuration.
var GlobalConfig *Config        //nolint:gochecknoglobals // Singleton pattern for configuration
var globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Protects GlobalConfig and configPathOverride
var configPathOverride string   //nolint:gochecknoglobals // Set from the --config flag

// SetConfigPathOverride makes New read path instead of the default location.
// It drops any cached global configuration.
func SetConfigPathOverride(path string) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	configPathOverride = path
	GlobalConfig = nil
}

// GetGlobalConfig returns the process configuration, loading it on first use.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	cfg := GlobalConfig
	globalConfigMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	loaded := New()

	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	if GlobalConfig == nil {
		GlobalConfig = loaded
	}
	return GlobalConfig
}

// ResetGlobalConfigForTest clears the cached configuration and path override.
func ResetGlobalConfigForTest() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	GlobalConfig = nil
	configPathOverride = ""
}

// GetDefaultOutputFormat returns the configured default output format.
func GetDefaultOutputFormat() string {
	return GetGlobalConfig().Output.DefaultFormat
}

// GetConfigDir returns the impactcalc configuration directory:
// $IMPACTCALC_HOME, or ~/.impactcalc.
func GetConfigDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".impactcalc"), nil
}

// ResolveConfigPath returns the config file to use, in order: the --config
// override, $IMPACTCALC_CONFIG, then config.yaml in GetConfigDir. It returns
// "" when no home directory can be found.
func ResolveConfigPath() string {
	globalConfigMu.RLock()
	override := configPathOverride
	globalConfigMu.RUnlock()
	if override != "" {
		return override
	}

	if envPath := os.Getenv(EnvConfigFile); envPath != "" {
		return envPath
	}

	dir, err := GetConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, configFileName)
}

// EnsureLogDir creates the parent directory of the configured log file.
func (c *Config) EnsureLogDir() error {
	if c.Logging.File == "" {
		return nil
	}
	return os.MkdirAll(filepath.Dir(c.Logging.File), 0o700)
}
