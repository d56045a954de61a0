// Package cli implements the impactcalc command line.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/greenloop/impactcalc/internal/config"
	"github.com/greenloop/impactcalc/internal/logging"
)

const defaultEnvFile = ".env"

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// UsageError marks an error caused by bad flags or arguments.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

func usageErrorf(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// NewRootCmd creates the root Cobra command for the impactcalc CLI.
// It wires up the env file, configuration, logging and the serve,
// calculate, options and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		configPath string
		envFile    string
	)

	cmd := &cobra.Command{
		Use:           "impactcalc",
		Short:         "Environmental impact calculator for compostable plastics",
		Long:          "impactcalc compares conventional and compostable bags, packaging and films and serves the calculator over HTTP.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadEnvFile(envFile, cmd.Flags().Changed("env-file")); err != nil {
				return err
			}
			if configPath != "" {
				config.SetConfigPathOverride(configPath)
			}

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $IMPACTCALC_HOME/config.yaml)")
	cmd.PersistentFlags().StringVar(&envFile, "env-file", defaultEnvFile, "dotenv file loaded before configuration")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	cmd.AddCommand(NewServeCmd(), NewCalculateCmd(), NewOptionsCmd(), newConfigCmd())
	return cmd
}

// loadEnvFile loads path into the environment without overriding variables
// that are already set. A missing default file is not an error.
func loadEnvFile(path string, explicit bool) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("reading env file %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

const rootCmdExample = `  # Start the HTTP API on :8080
  impactcalc serve

  # Calculate the impact of 100 bags bought every month
  impactcalc calculate --product-type bags --quantity 100 --frequency monthly

  # Same calculation as JSON
  impactcalc calculate -p bags -q 100 -f monthly --output json

  # Explore interactively
  impactcalc calculate --interactive

  # List accepted product types and frequencies
  impactcalc options

  # Write a default configuration file
  impactcalc config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
