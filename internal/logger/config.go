package logger

import (
	"log/slog"
	"strings"
)

// Config selects the handler InitLogger installs
type Config struct {
	Level       string // debug, info, warn, error
	Format      string // json or text
	ServiceName string
	Version     string
	Environment string // dev, prod, test
	AddSource   bool
}

// NewConfig builds a Config from the LOG_* and service settings. Source locations are
// only attached in the dev environment.
func NewConfig(level, format, serviceName, version, environment string) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   IsDevEnvironment(environment),
	}
}

// IsDevEnvironment accepts the short and long spelling
func IsDevEnvironment(env string) bool {
	env = strings.ToLower(env)
	return env == EnvironmentDev || env == "development"
}

// LogLevel maps Level onto slog, defaulting to info
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// AtLeast returns a copy whose level is raised to floor if it was below it
func (c Config) AtLeast(floor string) Config {
	if (Config{Level: floor}).LogLevel() > c.LogLevel() {
		c.Level = floor
	}
	return c
}

// IsJSON reports whether records are written as JSON
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == LogFormatJSON
}

// BaseAttributes are attached to every record
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
