// Package logging builds zerolog loggers from configuration and carries
// them, with a trace ID, through request and command contexts.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Output and format names accepted in Config.
const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
	OutputFile   = "file"

	FormatJSON    = "json"
	FormatConsole = "console"
	FormatAuto    = "auto"
)

// Config describes how to build a logger.
type Config struct {
	Level  string
	Format string
	Output string
	File   string
	Caller bool
}

// DefaultConfig logs info and above to stderr, console format on a TTY.
func DefaultConfig() Config {
	return Config{Level: "info", Format: FormatAuto, Output: OutputStderr}
}

// LogPathResult is the outcome of NewLoggerWithPath.
type LogPathResult struct {
	Logger zerolog.Logger

	// UsingFile is true when records go to FilePath.
	UsingFile bool
	FilePath  string

	// FallbackUsed is true when a file was requested but could not be opened.
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file, if any.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLogger builds a logger writing to stderr or stdout. File output is
// ignored; use NewLoggerWithPath for that.
func NewLogger(cfg Config) zerolog.Logger {
	out := os.Stderr
	if strings.EqualFold(cfg.Output, OutputStdout) {
		out = os.Stdout
	}
	return build(cfg, out, isTerminal(out))
}

// NewLoggerWithPath builds a logger that writes to cfg.File when Output is
// "file", falling back to stderr if the file cannot be opened.
func NewLoggerWithPath(cfg Config) LogPathResult {
	if !strings.EqualFold(cfg.Output, OutputFile) || cfg.File == "" {
		return LogPathResult{Logger: NewLogger(cfg)}
	}

	f, err := openLogFile(cfg.File)
	if err != nil {
		return LogPathResult{
			Logger:         NewLogger(Config{Level: cfg.Level, Format: cfg.Format, Output: OutputStderr, Caller: cfg.Caller}),
			FallbackUsed:   true,
			FallbackReason: err.Error(),
		}
	}

	return LogPathResult{
		Logger:    build(cfg, f, false),
		UsingFile: true,
		FilePath:  cfg.File,
		file:      f,
	}
}

// NewWriterLogger builds a logger on an arbitrary writer. Format "auto" is
// treated as JSON.
func NewWriterLogger(cfg Config, w io.Writer) zerolog.Logger {
	return build(cfg, w, false)
}

// ComponentLogger tags every record with the component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// PrintLogPathMessage tells the user where logs are going.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user the log file could not be used.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: could not open log file, logging to stderr: %s\n", reason)
}

// ParseLevel parses level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

func build(cfg Config, w io.Writer, tty bool) zerolog.Logger {
	format := strings.ToLower(cfg.Format)
	if format == "" || format == FormatAuto {
		format = FormatJSON
		if tty {
			format = FormatConsole
		}
	}

	if format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: !tty}
	}

	ctx := zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	return f, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
