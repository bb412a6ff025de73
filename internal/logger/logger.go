package logger

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// level gates every entry of the global logger and is changed by SetLevel.
	// Standard output carries the version line, so only warnings and above are shown by default.
	//nolint:gochecknoglobals // Shared by the global logger and SetLevel.
	level = zap.NewAtomicLevelAt(zap.WarnLevel)
	// global is used whenever the context carries no logger.
	//nolint:gochecknoglobals // Logger is used all over the project, so it's okay.
	global = New(os.Stderr, level)
)

// New creates a console *zap.SugaredLogger writing to w.
// Entries carry no timestamp: the tool is one-shot and its diagnostics are read right away.
func New(w zapcore.WriteSyncer, enabler zapcore.LevelEnabler) *zap.SugaredLogger {
	//nolint:exhaustruct // Unset keys are omitted from the output.
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "message",
		LevelKey:         "level",
		NameKey:          "logger",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: ", ",
	})

	return zap.New(zapcore.NewCore(encoder, zapcore.Lock(w), enabler)).Sugar()
}

// ParseLogLevel converts a level name such as "debug" or "WARN" to a zap level.
func ParseLogLevel(s string) (zapcore.Level, bool) {
	parsed, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zapcore.InfoLevel, false
	}

	return parsed, true
}

// SetLevel changes the minimum level of the global logger.
func SetLevel(l zapcore.Level) {
	level.SetLevel(l)
}

// DebugKV logs message with key-value pairs at debug level.
func DebugKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Debugw(message, kvs...)
}

// InfoKV logs message with key-value pairs at info level.
func InfoKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Infow(message, kvs...)
}

// WarnKV logs message with key-value pairs at warn level.
func WarnKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Warnw(message, kvs...)
}
