package downstreams

import (
	"context"
	"fmt"
	"strconv"
	"time"

	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for outbound gateway calls
type Metrics struct {
	RequestCounter   *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight *prometheus.GaugeVec
}

// NewMetrics registers the collectors with reg. Each registerer can only host one set,
// a second registration fails with a prometheus.AlreadyRegisteredError.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	metrics := &Metrics{
		RequestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "payment_gateway",
				Subsystem: "client",
				Name:      "requests_total",
				Help:      "Total number of requests sent to the payment gateway",
			},
			[]string{"method", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "payment_gateway",
				Subsystem: "client",
				Name:      "request_duration_seconds",
				Help:      "Payment gateway request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		RequestsInFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "payment_gateway",
				Subsystem: "client",
				Name:      "requests_in_flight",
				Help:      "Number of payment gateway requests currently in flight",
			},
			[]string{"method"},
		),
	}

	for _, collector := range []prometheus.Collector{metrics.RequestCounter, metrics.RequestDuration, metrics.RequestsInFlight} {
		if err := reg.Register(collector); err != nil {
			return nil, fmt.Errorf("failed to register payment gateway client metrics: %w", err)
		}
	}
	return metrics, nil
}

type MetricsImpl struct {
	Wrapped aurestclientapi.Client
	Metrics *Metrics
}

func NewMetricsWrapper(wrapped aurestclientapi.Client, metrics *Metrics) aurestclientapi.Client {
	return &MetricsImpl{
		Wrapped: wrapped,
		Metrics: metrics,
	}
}

func (c *MetricsImpl) Perform(ctx context.Context, method string, requestUrl string, requestBody interface{}, response *aurestclientapi.ParsedResponse) error {
	c.Metrics.RequestsInFlight.WithLabelValues(method).Inc()
	defer c.Metrics.RequestsInFlight.WithLabelValues(method).Dec()

	start := time.Now()
	err := c.Wrapped.Perform(ctx, method, requestUrl, requestBody, response)
	c.Metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	status := "error"
	if err == nil {
		status = strconv.Itoa(response.Status)
	}
	c.Metrics.RequestCounter.WithLabelValues(method, status).Inc()

	return err
}
