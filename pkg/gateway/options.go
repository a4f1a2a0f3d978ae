package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
)

type Option func(o *options)

type options struct {
	httpClient     *http.Client
	roundTripper   http.RoundTripper
	logger         Logger
	registerer     prometheus.Registerer
	circuitBreaker string
	userAgent      string
}

// WithHTTPClient makes all services use client. The caller keeps ownership, Close will not
// touch it. Takes precedence over WithRoundTripper.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithRoundTripper makes the client build its own http.Client around rt. That http.Client
// is owned and released by Close.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(o *options) {
		o.roundTripper = rt
	}
}

// WithLogger logs every outbound call. Without it nothing is logged.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics registers request metrics with reg. New fails if reg already holds
// the metrics of another client, so use one registerer per client.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// WithCircuitBreaker wraps the transport in a circuit breaker of the given name. The breaker
// also applies a per-request timeout. No retries are made either way.
func WithCircuitBreaker(name string) Option {
	return func(o *options) {
		o.circuitBreaker = name
	}
}

func WithUserAgent(userAgent string) Option {
	return func(o *options) {
		o.userAgent = userAgent
	}
}
