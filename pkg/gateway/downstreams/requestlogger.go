package downstreams

import (
	"context"
	"time"

	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"

	"github.com/eurofurence/reg-payment-gateway-client/internal/logging"
)

// custom implementation so callers can hand in their own logger instead of setting up go-autumn-logging

type RequestLoggingImpl struct {
	Wrapped aurestclientapi.Client
	Logger  logging.Logger
}

func NewRequestLoggingWrapper(wrapped aurestclientapi.Client, logger logging.Logger) aurestclientapi.Client {
	if logger == nil {
		logger = logging.NewNoopLogger()
	}
	return &RequestLoggingImpl{
		Wrapped: wrapped,
		Logger:  logger,
	}
}

func (c *RequestLoggingImpl) Perform(ctx context.Context, method string, requestUrl string, requestBody interface{}, response *aurestclientapi.ParsedResponse) error {
	before := time.Now()
	err := c.Wrapped.Perform(ctx, method, requestUrl, requestBody, response)
	millis := time.Since(before).Milliseconds()
	logger := logging.LoggerFromContext(ctx, c.Logger)
	if err != nil {
		logger.Warn("downstream %s %s -> %d FAILED (%d ms): %s", method, requestUrl, response.Status, millis, err.Error())
	} else if response.Status >= 300 {
		logger.Warn("downstream %s %s -> %d (%d ms)", method, requestUrl, response.Status, millis)
	} else {
		logger.Info("downstream %s %s -> %d OK (%d ms)", method, requestUrl, response.Status, millis)
	}
	return err
}
