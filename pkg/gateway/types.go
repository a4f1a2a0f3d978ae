package gateway

import (
	"io"

	"github.com/eurofurence/reg-payment-gateway-client/internal/logging"
	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/downstreams"
)

type (
	Config = downstreams.Config

	ConfigurationError = downstreams.ConfigurationError
	TransportError     = downstreams.TransportError
	ApiError           = downstreams.ApiError
	ParseError         = downstreams.ParseError

	Logger = logging.Logger
)

// NewLogger returns a zerolog based Logger writing json lines to w.
// severity is one of DEBUG, INFO, WARN, ERROR.
func NewLogger(w io.Writer, severity string) Logger {
	return logging.NewLoggerWithSeverity(w, severity)
}

// NewAutumnLogger logs through go-autumn-logging, for applications that already set it up.
func NewAutumnLogger() Logger {
	return logging.NewAutumnLogger()
}

func NewNoopLogger() Logger {
	return logging.NewNoopLogger()
}
