package logging

import (
	"context"
	"io"
	"os"
	"strings"

	aulogging "github.com/StephanHCB/go-autumn-logging"
	"github.com/rs/zerolog"
)

const ApplicationName = "reg-payment-gateway-client"

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})

	// expected to terminate the process
	Fatal(format string, v ...interface{})
}

type loggingWrapper struct {
	logger *zerolog.Logger
}

func (l *loggingWrapper) Debug(format string, v ...interface{}) {
	l.logger.Debug().Msgf(format, v...)
}

func (l *loggingWrapper) Info(format string, v ...interface{}) {
	l.logger.Info().Msgf(format, v...)
}

func (l *loggingWrapper) Warn(format string, v ...interface{}) {
	l.logger.Warn().Msgf(format, v...)
}

func (l *loggingWrapper) Error(format string, v ...interface{}) {
	l.logger.Error().Msgf(format, v...)
}

// expected to terminate the process
func (l *loggingWrapper) Fatal(format string, v ...interface{}) {
	l.logger.Fatal().Msgf(format, v...)
}

// context key with a separate type, so no other package has a chance of accessing it
type key int

const (
	LoggerKey key = iota
	RequestIdKey
)

// ContextWithLogger attaches a logger to the context. Outbound calls made with this context
// log through it instead of the logger configured on the client.
func ContextWithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// ContextWithRequestId sets the request id that is forwarded to the gateway in X-Request-Id.
func ContextWithRequestId(ctx context.Context, requestId string) context.Context {
	return context.WithValue(ctx, RequestIdKey, requestId)
}

func RequestIdFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	reqID, ok := ctx.Value(RequestIdKey).(string)
	return reqID, ok && reqID != ""
}

// LoggerFromContext returns the context logger, or fallback if there is none.
func LoggerFromContext(ctx context.Context, fallback Logger) Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(LoggerKey).(Logger); ok {
			return logger
		}
	}
	if fallback == nil {
		return NewNoopLogger()
	}
	return fallback
}

func NewLogger() Logger {
	return NewLoggerWithSeverity(os.Stdout, "INFO")
}

// NewLoggerWithSeverity accepts the severities used in configuration files
// (DEBUG, INFO, WARN, ERROR). Anything else falls back to INFO.
func NewLoggerWithSeverity(w io.Writer, severity string) Logger {
	logger := zerolog.New(w).
		Level(levelFor(severity)).
		With().
		Str("App", ApplicationName).
		Timestamp().
		Logger()

	return &loggingWrapper{
		logger: &logger,
	}
}

func levelFor(severity string) zerolog.Level {
	switch strings.ToUpper(severity) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetGlobalSeverity limits all zerolog output, including what go-autumn-logging-zerolog writes.
func SetGlobalSeverity(severity string) {
	zerolog.SetGlobalLevel(levelFor(severity))
}

// NewAutumnLogger logs through go-autumn-logging, for applications that already
// set up aulogging (e.g. with go-autumn-logging-zerolog).
func NewAutumnLogger() Logger {
	return &autumnWrapper{}
}

type autumnWrapper struct{}

func (l *autumnWrapper) Debug(format string, v ...interface{}) {
	aulogging.Logger.NoCtx().Debug().Printf(format, v...)
}

func (l *autumnWrapper) Info(format string, v ...interface{}) {
	aulogging.Logger.NoCtx().Info().Printf(format, v...)
}

func (l *autumnWrapper) Warn(format string, v ...interface{}) {
	aulogging.Logger.NoCtx().Warn().Printf(format, v...)
}

func (l *autumnWrapper) Error(format string, v ...interface{}) {
	aulogging.Logger.NoCtx().Error().Printf(format, v...)
}

// expected to terminate the process
func (l *autumnWrapper) Fatal(format string, v ...interface{}) {
	aulogging.Logger.NoCtx().Fatal().Printf(format, v...)
}

func NewNoopLogger() Logger {
	return &noopLogger{}
}

type noopLogger struct {
}

func (l *noopLogger) Debug(format string, v ...interface{}) {
}

func (l *noopLogger) Info(format string, v ...interface{}) {
}

func (l *noopLogger) Warn(format string, v ...interface{}) {
}

func (l *noopLogger) Error(format string, v ...interface{}) {
}

// expected to terminate the process
func (l *noopLogger) Fatal(format string, v ...interface{}) {
}
