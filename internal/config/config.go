// Package config reads the counter's settings from flags and COUNTER_*
// environment variables and sets up logging.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. COUNTER_LOG_LEVEL.
const EnvPrefix = "COUNTER"

// Config holds the settings for one run.
type Config struct {
	LogFile   string
	LogLevel  log.Level
	LogFormat string
	AltScreen bool
	ASCII     bool
	Print     bool
}

// SetDefaults registers defaults and environment lookup on v.
func SetDefaults(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("alt_screen", true)
	v.SetDefault("ascii", false)
	v.SetDefault("print", true)
}

// Load validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	levelStr := v.GetString("log_level")
	level, err := log.ParseLevel(levelStr)
	if err != nil {
		return Config{}, fmt.Errorf("log_level can be trace, debug, info, warn, error, fatal or panic but not %q", levelStr)
	}

	format := strings.ToLower(v.GetString("log_format"))
	switch format {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("log_format can be json or text but not %q", format)
	}

	return Config{
		LogFile:   v.GetString("log_file"),
		LogLevel:  level,
		LogFormat: format,
		AltScreen: v.GetBool("alt_screen"),
		ASCII:     v.GetBool("ascii"),
		Print:     v.GetBool("print"),
	}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// SetupLogging returns a logger for cfg. The terminal belongs to the UI, so
// an empty LogFile discards output. Callers must Close the returned closer.
func SetupLogging(cfg Config) (*log.Logger, io.Closer, error) {
	logger := log.New()
	logger.SetLevel(cfg.LogLevel)

	if cfg.LogFormat == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	switch strings.ToLower(cfg.LogFile) {
	case "":
		logger.SetOutput(io.Discard)
		return logger, nopCloser{}, nil
	case "stderr":
		logger.SetOutput(os.Stderr)
		return logger, nopCloser{}, nil
	}

	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(file)
	return logger, file, nil
}
