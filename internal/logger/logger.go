package logger

import (
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/config"
)

// LevelEnv overrides the configured log level.
const LevelEnv = "QADASH_LOG_LEVEL"

// NewLogger creates a new hclog.Logger instance based on the YAML configuration and the provided name.
// Logs go to stderr so that machine-readable command output on stdout stays clean.
func NewLogger(cfg *config.Config, name string) hclog.Logger {
	return newLogger(cfg, name, os.Stderr)
}

func newLogger(cfg *config.Config, name string, out io.Writer) hclog.Logger {
	if cfg == nil {
		cfg = config.Default()
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:        name,
		DisableTime: config.BoolValue(cfg.Logger.DisableTime, true),
		JSONFormat:  config.BoolValue(cfg.Logger.JSONFormat, false),
		Output:      out,
		Level:       determineLogLevel(cfg, out),
	})
}

// determineLogLevel returns a log level determined first by an environment variable, and if not set, by the provided configuration.
// If neither configuration nor environment variable specifies a log level, it defaults to INFO.
func determineLogLevel(cfg *config.Config, out io.Writer) hclog.Level {
	if logLevelEnv := os.Getenv(LevelEnv); logLevelEnv != "" {
		return parseLogLevel(strings.ToUpper(logLevelEnv), out)
	}
	return parseLogLevel(strings.ToUpper(cfg.Logger.Level), out)
}

// parseLogLevel converts a string level to hclog.Level.
func parseLogLevel(levelStr string, out io.Writer) hclog.Level {
	switch levelStr {
	case "TRACE":
		return hclog.Trace
	case "DEBUG":
		return hclog.Debug
	case "", "INFO":
		return hclog.Info
	case "WARN":
		return hclog.Warn
	case "ERROR":
		return hclog.Error
	default:
		hclog.New(&hclog.LoggerOptions{
			Level:       hclog.Warn,
			DisableTime: true,
			Output:      out,
		}).Warn("Unrecognized log level, defaulting to INFO", "providedLevel", levelStr)
		return hclog.Info
	}
}
