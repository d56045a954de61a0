package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/greenloop/impactcalc/internal/logging"
)

// LoggingConfig is the logging section of the config file.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
	Caller bool   `yaml:"caller,omitempty"`
}

// Validate checks the level and format names.
func (lc *LoggingConfig) Validate() error {
	if lc.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(lc.Level)); err != nil {
			return fmt.Errorf("logging.level %q is not a valid level", lc.Level)
		}
	}
	switch strings.ToLower(lc.Format) {
	case "", logging.FormatAuto, logging.FormatJSON, logging.FormatConsole:
		return nil
	default:
		return fmt.Errorf("logging.format must be one of auto, json, console, got %q", lc.Format)
	}
}

// ToLoggingConfig converts the file section into logging.Config. A File
// switches output to the file; otherwise records go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
		Caller: lc.Caller,
	}
}
