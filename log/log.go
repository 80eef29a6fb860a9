// Package log is the process-wide zap logger shared by the facade and its
// tooling.
package log

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level string

const (
	DebugLevel  Level = "debug"
	InfoLevel   Level = "info"
	WarnLevel   Level = "warn"
	ErrorLevel  Level = "error"
	DPanicLevel Level = "dpanic"
)

// Zap maps a Level onto its zap counterpart. Unknown levels map to info.
func (l Level) Zap() zapcore.Level {
	var zl zapcore.Level
	if err := zl.UnmarshalText([]byte(strings.ToLower(string(l)))); err != nil {
		return zapcore.InfoLevel
	}
	return zl
}

type Config struct {
	Level       Level  `mapstructure:"level" structs:"level"`
	Encoding    string `mapstructure:"encoding" structs:"encoding"` // "json" or "console"
	Development bool   `mapstructure:"development" structs:"development"`
}

var (
	mu     sync.RWMutex
	logger *zap.Logger
)

// Init builds the global logger from cfg and installs it.
func Init(cfg Config) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	set(l)
	return nil
}

// New builds a logger from cfg without installing it.
func New(cfg Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	if cfg.Level != "" {
		zcfg.Level = zap.NewAtomicLevelAt(cfg.Level.Zap())
	}
	if cfg.Encoding != "" {
		zcfg.Encoding = cfg.Encoding
	}
	return zcfg.Build()
}

// L returns the global logger. Until Init is called it is a production
// logger writing to stderr.
func L() *zap.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		var err error
		if logger, err = zap.NewProduction(); err != nil {
			logger = zap.NewNop()
		}
	}
	return logger
}

// Log writes msg at the given level on the global logger.
func Log(level Level, msg string, fields ...zap.Field) {
	if ce := L().Check(level.Zap(), msg); ce != nil {
		ce.Write(fields...)
	}
}

func Debug(msg string, fields ...zap.Field) { Log(DebugLevel, msg, fields...) }
func Info(msg string, fields ...zap.Field)  { Log(InfoLevel, msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { Log(WarnLevel, msg, fields...) }
func Error(msg string, fields ...zap.Field) { Log(ErrorLevel, msg, fields...) }

// Sync flushes the global logger. Errors from syncing stderr are ignored.
func Sync() {
	_ = L().Sync()
}

// SetLoggerForTesting installs l as the global logger and returns a function
// restoring the previous one.
func SetLoggerForTesting(l *zap.Logger) func() {
	mu.Lock()
	prev := logger
	logger = l
	mu.Unlock()
	return func() { set(prev) }
}

func set(l *zap.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}
