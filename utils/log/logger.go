package applog

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Keep the global logger private to prevent uninitialized access.
	logger *AppLogger
	raw    *zap.Logger

	// Noop logger as safe fallback when not initialized.
	noopLogger = &AppLogger{zap.NewNop().Sugar()}

	atomicLevel zap.AtomicLevel
)

// AppLogger wraps zap’s SugaredLogger for convenience.
type AppLogger struct {
	*zap.SugaredLogger
}

// With adds structured fields to the logger and returns a new instance.
func (l *AppLogger) With(args ...interface{}) *AppLogger {
	if l == nil {
		return noopLogger
	}
	return &AppLogger{l.SugaredLogger.With(args...)}
}

// L returns the global logger or a no-op fallback if uninitialized.
func L() *AppLogger {
	if logger == nil {
		return noopLogger
	}
	return logger
}

// Init initializes the global logger.
//
// The environment is read from IOAPP_ENV:
//
//   - IOAPP_ENV=dev   → human-readable logs in ~/.local/state/<app>/app-debug.log
//   - IOAPP_ENV=prod  → JSON logs in ~/.local/state/<app>/app.log
//
// The log level is controlled via LOG_LEVEL (debug, info, warn, error, etc).
// If unset, defaults to debug in dev mode and info in prod mode.
func Init(appName string) {
	mode := detectMode()
	logPath := selectLogPath(appName, mode)

	atomicLevel = zap.NewAtomicLevelAt(detectLogLevel())

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    20, // MB
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if mode == "dev" {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, writer, atomicLevel)
	raw = zap.New(core, zap.AddCaller())
	logger = &AppLogger{raw.Sugar()}

	logger.Infof("logger initialized in %s mode. Writing to %s", mode, logPath)
}

// Sync flushes any buffered log entries.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// InitTest creates a lightweight logger for tests that logs to stdout.
func InitTest() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{"stdout"}
	raw, _ = cfg.Build(zap.AddCaller())
	logger = &AppLogger{raw.Sugar()}
}

// SetLevel allows changing the log level at runtime.
func SetLevel(level zapcore.Level) {
	if atomicLevel != (zap.AtomicLevel{}) {
		atomicLevel.SetLevel(level)
	}
}

// ParseLevel maps a level name to a zap level, falling back to info.
func ParseLevel(name string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zap.InfoLevel
	}
	return lvl
}

func detectMode() string {
	env := strings.ToLower(os.Getenv("IOAPP_ENV"))
	switch env {
	case "dev", "development":
		return "dev"
	default:
		return "prod"
	}
}

// selectLogPath picks a standard file location for logs.
func selectLogPath(appName, mode string) string {
	fileName := "app.log"
	if mode == "dev" {
		fileName = "app-debug.log"
	}

	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		path := filepath.Join(xdg, appName)
		_ = os.MkdirAll(path, 0755)
		return filepath.Join(path, fileName)
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".local", "state", appName)
		_ = os.MkdirAll(path, 0755)
		return filepath.Join(path, fileName)
	}

	// Fallback for restrictive environments
	path := filepath.Join(os.TempDir(), appName)
	_ = os.MkdirAll(path, 0755)
	return filepath.Join(path, fileName)
}

func detectLogLevel() zapcore.Level {
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		return ParseLevel(lvl)
	}
	if detectMode() == "dev" {
		return zap.DebugLevel
	}
	return zap.InfoLevel
}
