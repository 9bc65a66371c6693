// Package logging builds roster's zap logger. The terminal belongs to the
// UI, so records go to a daily-rotated file instead of stdout.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects where and how much to log.
type Config struct {
	Dir   string
	Level string
	Dev   bool // console encoding instead of JSON
}

const (
	linkName  = "roster.log"
	maxAge    = 7 * 24 * time.Hour
	rotateDay = 24 * time.Hour
)

// ConfigFromEnv fills Dev from LOG_DEV=1 and Level from LOG_LEVEL when the
// caller left them unset.
func ConfigFromEnv(cfg Config) Config {
	if os.Getenv("LOG_DEV") == "1" {
		cfg.Dev = true
	}
	if cfg.Level == "" {
		cfg.Level = os.Getenv("LOG_LEVEL")
	}
	if cfg.Level == "" {
		if cfg.Dev {
			cfg.Level = "debug"
		} else {
			cfg.Level = "info"
		}
	}
	return cfg
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(l string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New opens the rotating log file in cfg.Dir and returns a logger writing to
// it. The file named roster.log in the directory always links to the
// current file.
func New(cfg Config) (*zap.Logger, error) {
	if strings.TrimSpace(cfg.Dir) == "" {
		return nil, fmt.Errorf("log dir is empty")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	writer, err := rotatelogs.New(
		filepath.Join(cfg.Dir, "roster.%Y%m%d.log"),
		rotatelogs.WithLinkName(filepath.Join(cfg.Dir, linkName)),
		rotatelogs.WithMaxAge(maxAge),
		rotatelogs.WithRotationTime(rotateDay),
	)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return build(cfg, zapcore.AddSync(writer)), nil
}

func build(cfg Config, sink zapcore.WriteSyncer) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Dev {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, sink, ParseLevel(cfg.Level))
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
