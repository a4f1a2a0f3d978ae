// Package gateway is the entry point of the payment gateway client.
//
// A Client bundles one service per business area. All services share the same Config and
// the same transport, and are safe for concurrent use.
//
//	client, err := gateway.NewWithCredentials("https://api.example.test", login, password)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	banks, err := client.PayParts.ListBanks(ctx, money.New(2500, 0), money.UAH, payparts.BanksFilter{})
package gateway

import (
	"net/http"
	"sync"

	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/altpayment"
	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/batchpayment"
	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/customer"
	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/downstreams"
	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/finmon"
	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/merchant"
	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/payment"
	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/payout"
	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/payparts"
	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/report"
	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/subscription"
)

type Client struct {
	Payment            payment.Payment
	BatchPayment       batchpayment.BatchPayment
	PayParts           payparts.PayParts
	Payout             payout.Payout
	Customer           customer.Customer
	Subscription       subscription.Subscription
	Report             report.Report
	AlternativePayment altpayment.AlternativePayment
	Merchant           merchant.Merchant
	FinMon             finmon.FinMon

	conf       Config
	httpClient *http.Client
	owned      bool
	closeOnce  sync.Once
}

// New validates conf and builds all services. An invalid conf yields a *ConfigurationError
// and no network activity.
func New(conf Config, opts ...Option) (*Client, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	httpClient := o.httpClient
	owned := false
	if httpClient == nil {
		rt := o.roundTripper
		if rt == nil {
			rt = http.DefaultTransport.(*http.Transport).Clone()
		}
		httpClient = &http.Client{Transport: rt}
		owned = true
	}

	var metrics *downstreams.Metrics
	if o.registerer != nil {
		m, err := downstreams.NewMetrics(o.registerer)
		if err != nil {
			return nil, err
		}
		metrics = m
	}

	restClient, err := downstreams.ClientWith(conf, downstreams.ClientOptions{
		HttpClient:         httpClient,
		UserAgent:          o.userAgent,
		Logger:             o.logger,
		Metrics:            metrics,
		CircuitBreakerName: o.circuitBreaker,
	})
	if err != nil {
		return nil, err
	}

	c := &Client{
		conf:       conf,
		httpClient: httpClient,
		owned:      owned,
	}

	if c.Payment, err = payment.New(restClient, conf); err != nil {
		return nil, err
	}
	if c.BatchPayment, err = batchpayment.New(restClient, conf); err != nil {
		return nil, err
	}
	if c.PayParts, err = payparts.New(restClient, conf); err != nil {
		return nil, err
	}
	if c.Payout, err = payout.New(restClient, conf); err != nil {
		return nil, err
	}
	if c.Customer, err = customer.New(restClient, conf); err != nil {
		return nil, err
	}
	if c.Subscription, err = subscription.New(restClient, conf); err != nil {
		return nil, err
	}
	if c.Report, err = report.New(restClient, conf); err != nil {
		return nil, err
	}
	if c.AlternativePayment, err = altpayment.New(restClient, conf); err != nil {
		return nil, err
	}
	if c.Merchant, err = merchant.New(restClient, conf); err != nil {
		return nil, err
	}
	if c.FinMon, err = finmon.New(restClient, conf); err != nil {
		return nil, err
	}

	return c, nil
}

func NewWithCredentials(baseUrl string, login string, password string, opts ...Option) (*Client, error) {
	return New(Config{
		BaseUrl:  baseUrl,
		Login:    login,
		Password: password,
	}, opts...)
}

// Config returns the configuration the client was built with.
func (c *Client) Config() Config {
	return c.conf
}

// Close releases idle connections of the http client if the Client created it. An http client
// passed in with WithHTTPClient is left alone. Calling Close more than once is a no-op.
//
// Services must not be used after Close.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		if c.owned {
			c.httpClient.CloseIdleConnections()
		}
	})
	return nil
}
