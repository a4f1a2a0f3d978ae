package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/gatewaytest"
	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/money"
	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/payparts"
)

var testConfig = Config{
	BaseUrl:  "https://api.example.test",
	Login:    "L",
	Password: "P",
}

func TestNewBuildsAllServices(t *testing.T) {
	transport := gatewaytest.NewTransport(http.StatusOK, `{}`)

	cut, err := New(testConfig, WithRoundTripper(transport))
	require.NoError(t, err)
	require.NotNil(t, cut)

	require.NotNil(t, cut.Payment)
	require.NotNil(t, cut.BatchPayment)
	require.NotNil(t, cut.PayParts)
	require.NotNil(t, cut.Payout)
	require.NotNil(t, cut.Customer)
	require.NotNil(t, cut.Subscription)
	require.NotNil(t, cut.Report)
	require.NotNil(t, cut.AlternativePayment)
	require.NotNil(t, cut.Merchant)
	require.NotNil(t, cut.FinMon)

	require.Equal(t, testConfig, cut.Config())
	require.Equal(t, 0, transport.Requests())
}

func TestNewWithCredentials(t *testing.T) {
	cut, err := NewWithCredentials("https://api.example.test", "L", "P")
	require.NoError(t, err)
	require.Equal(t, testConfig, cut.Config())
	require.NoError(t, cut.Close())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name          string
		conf          Config
		expectedField string
	}{
		{
			name:          "Should reject an empty login",
			conf:          Config{BaseUrl: "https://api.example.test", Login: "", Password: "P"},
			expectedField: "login",
		},
		{
			name:          "Should reject an empty password",
			conf:          Config{BaseUrl: "https://api.example.test", Login: "L"},
			expectedField: "password",
		},
		{
			name:          "Should reject an empty base url",
			conf:          Config{Login: "L", Password: "P"},
			expectedField: "base_url",
		},
		{
			name:          "Should reject a base url with trailing slash",
			conf:          Config{BaseUrl: "https://api.example.test/", Login: "L", Password: "P"},
			expectedField: "base_url",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			transport := gatewaytest.NewTransport(http.StatusOK, `{}`)

			cut, err := New(tc.conf, WithRoundTripper(transport))
			require.Nil(t, cut)

			var confErr *ConfigurationError
			require.True(t, errors.As(err, &confErr))
			require.Contains(t, confErr.Fields, tc.expectedField)
			require.Equal(t, 0, transport.Requests())
		})
	}
}

func TestCloseReleasesOwnedTransportOnce(t *testing.T) {
	transport := gatewaytest.NewTransport(http.StatusOK, `{}`)
	cut, err := New(testConfig, WithRoundTripper(transport))
	require.NoError(t, err)

	require.NoError(t, cut.Close())
	require.NoError(t, cut.Close())
	require.Equal(t, 1, transport.CloseCount())
}

func TestCloseIsSafeConcurrently(t *testing.T) {
	transport := gatewaytest.NewTransport(http.StatusOK, `{}`)
	cut, err := New(testConfig, WithRoundTripper(transport))
	require.NoError(t, err)

	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = cut.Close()
		}()
	}
	wg.Wait()
	require.Equal(t, 1, transport.CloseCount())
}

func TestCloseLeavesInjectedClientAlone(t *testing.T) {
	transport := gatewaytest.NewTransport(http.StatusOK, `{}`)
	cut, err := New(testConfig, WithHTTPClient(transport.Client()), WithRoundTripper(gatewaytest.NewTransport(http.StatusOK, `{}`)))
	require.NoError(t, err)

	_, err = cut.Merchant.Info(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, transport.Requests())

	require.NoError(t, cut.Close())
	require.Equal(t, 0, transport.CloseCount())
}

func TestServicesShareTransportAndCredentials(t *testing.T) {
	transport := gatewaytest.NewTransport(http.StatusOK, `{}`)
	cut, err := New(testConfig, WithRoundTripper(transport), WithUserAgent("shop/1.0"))
	require.NoError(t, err)

	ctx := context.Background()
	_, err = cut.Payment.Get(ctx, "p-1")
	require.NoError(t, err)
	_, err = cut.FinMon.GetCheck(ctx, "fm-1")
	require.NoError(t, err)
	_, err = cut.Merchant.Balance(ctx)
	require.NoError(t, err)

	require.Equal(t, 3, transport.Requests())
	request := transport.LastRequest()
	login, password, ok := request.BasicAuth()
	require.True(t, ok)
	require.Equal(t, "L", login)
	require.Equal(t, "P", password)
	require.Equal(t, "shop/1.0", request.Header.Get("User-Agent"))
	require.Equal(t, "api.example.test", request.URL.Host)
}

func TestListBanksScenarios(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, resp payparts.BanksResponse, err error)
	}{
		{
			name:   "Should parse the bank list",
			status: http.StatusOK,
			body:   `{"banks":[{"name":"BankA","available_periods":[3,6],"limits":{"min_amount":100.0}}],"status":"ok"}`,
			check: func(t *testing.T, resp payparts.BanksResponse, err error) {
				require.NoError(t, err)
				require.Len(t, resp.Banks, 1)
				require.Equal(t, "BankA", *resp.Banks[0].Name)
				require.Equal(t, []int{3, 6}, resp.Banks[0].AvailablePeriods)
				require.Equal(t, "100", resp.Banks[0].Limits.MinAmount.String())
				require.Nil(t, resp.Banks[0].Limits.MaxAmount)
			},
		},
		{
			name:   "Should surface an ApiError",
			status: http.StatusInternalServerError,
			body:   `{"error":"internal"}`,
			check: func(t *testing.T, resp payparts.BanksResponse, err error) {
				var apiErr *ApiError
				require.True(t, errors.As(err, &apiErr))
				require.Equal(t, 500, apiErr.Status)
				require.Equal(t, `{"error":"internal"}`, string(apiErr.Body))
				require.Nil(t, resp.Banks)
			},
		},
		{
			name:   "Should surface a ParseError",
			status: http.StatusOK,
			body:   `not json`,
			check: func(t *testing.T, resp payparts.BanksResponse, err error) {
				var parseErr *ParseError
				require.True(t, errors.As(err, &parseErr))
				require.Equal(t, payparts.BanksResponse{}, resp)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			transport := gatewaytest.NewTransport(tc.status, tc.body)
			cut, err := New(testConfig, WithRoundTripper(transport))
			require.NoError(t, err)
			defer cut.Close()

			resp, err := cut.PayParts.ListBanks(context.Background(), money.New(2500, 0), money.UAH, payparts.BanksFilter{})
			tc.check(t, resp, err)
			require.Equal(t, 1, transport.Requests())
		})
	}
}

func TestTransportFailure(t *testing.T) {
	cause := errors.New("connection refused")
	cut, err := New(testConfig, WithRoundTripper(gatewaytest.NewFailingTransport(cause)))
	require.NoError(t, err)

	_, err = cut.Payout.Get(context.Background(), "po-1")
	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	require.ErrorContains(t, err, "connection refused")
}

func TestWithLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	transport := gatewaytest.NewTransport(http.StatusOK, `{}`)
	cut, err := New(testConfig, WithRoundTripper(transport), WithLogger(NewLogger(buf, "INFO")))
	require.NoError(t, err)

	_, err = cut.Merchant.Info(context.Background())
	require.NoError(t, err)
	require.Contains(t, buf.String(), "downstream GET https://api.example.test/api/v1/merchant -> 200 OK")
}

func TestWithMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	transport := gatewaytest.NewTransport(http.StatusOK, `{}`)
	cut, err := New(testConfig, WithRoundTripper(transport), WithMetrics(reg))
	require.NoError(t, err)

	_, err = cut.Merchant.Info(context.Background())
	require.NoError(t, err)
	_, err = cut.Merchant.Balance(context.Background())
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(reg, "payment_gateway_client_requests_total")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestWithMetricsRejectsSharedRegisterer(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := New(testConfig, WithRoundTripper(gatewaytest.NewTransport(http.StatusOK, `{}`)), WithMetrics(reg))
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := New(testConfig, WithRoundTripper(gatewaytest.NewTransport(http.StatusOK, `{}`)), WithMetrics(reg))
	require.Error(t, err)
	require.Nil(t, second)

	var alreadyRegistered prometheus.AlreadyRegisteredError
	require.True(t, errors.As(err, &alreadyRegistered))
}

func TestConcurrentCallsShareOneClient(t *testing.T) {
	tests := []struct {
		name string
		call func(ctx context.Context, cut *Client) error
	}{
		{
			name: "list banks",
			call: func(ctx context.Context, cut *Client) error {
				resp, err := cut.PayParts.ListBanks(ctx, money.New(2500, 0), money.UAH, payparts.BanksFilter{})
				if err == nil && resp.Status == nil {
					return errors.New("status not parsed")
				}
				return err
			},
		},
		{
			name: "merchant info",
			call: func(ctx context.Context, cut *Client) error {
				info, err := cut.Merchant.Info(ctx)
				if err == nil && info.Status == nil {
					return errors.New("status not parsed")
				}
				return err
			},
		},
		{
			name: "get payment",
			call: func(ctx context.Context, cut *Client) error {
				p, err := cut.Payment.Get(ctx, "p-1")
				if err == nil && p.Status == nil {
					return errors.New("status not parsed")
				}
				return err
			},
		},
	}

	const rounds = 20
	transport := gatewaytest.NewTransport(http.StatusOK, `{"status":"ok"}`)
	cut, err := New(testConfig, WithRoundTripper(transport), WithMetrics(prometheus.NewRegistry()))
	require.NoError(t, err)
	defer cut.Close()

	errs := make(chan error, rounds*len(tests))
	wg := sync.WaitGroup{}
	for i := 0; i < rounds; i++ {
		for _, tc := range tests {
			wg.Add(1)
			go func(call func(ctx context.Context, cut *Client) error, name string) {
				defer wg.Done()
				if err := call(context.Background(), cut); err != nil {
					errs <- fmt.Errorf("%s: %w", name, err)
				}
			}(tc.call, tc.name)
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, rounds*len(tests), transport.Requests())
}

func TestWithCircuitBreaker(t *testing.T) {
	transport := gatewaytest.NewTransport(http.StatusOK, `{"merchant_id":"m-1"}`)
	cut, err := New(testConfig, WithRoundTripper(transport), WithCircuitBreaker("payment-gateway-test"))
	require.NoError(t, err)

	info, err := cut.Merchant.Info(context.Background())
	require.NoError(t, err)
	require.Equal(t, "m-1", *info.MerchantId)
}

func TestAgainstFakeGateway(t *testing.T) {
	fake := gatewaytest.NewFakeGateway("L", "P")
	fake.Respond(http.MethodPost, "/api/v1/payparts/banks", http.StatusOK,
		`{"banks":[{"name":"BankA","available_periods":[3,6]}],"status":"ok","count":1}`)
	fake.Respond(http.MethodGet, "/api/v1/payparts/limits", http.StatusOK,
		`{"min_amount":30000,"max_periods":24}`)

	server := httptest.NewServer(fake)
	defer server.Close()

	cut, err := NewWithCredentials(server.URL, "L", "P", WithHTTPClient(server.Client()))
	require.NoError(t, err)
	defer cut.Close()

	ctx := context.Background()
	banks, err := cut.PayParts.ListBanks(ctx, money.New(2500, 0), money.UAH, payparts.BanksFilter{Period: 3})
	require.NoError(t, err)
	require.Equal(t, 1, *banks.Count)
	require.Equal(t, "BankA", *banks.Banks[0].Name)

	limits, err := cut.PayParts.GetLegacyLimits(ctx, "BankA")
	require.NoError(t, err)
	require.Equal(t, money.MinorAmount(30000), *limits.MinAmount)
	require.Nil(t, limits.MaxAmount)

	requests := fake.Requests()
	require.Len(t, requests, 2)
	require.JSONEq(t, `{"amount":2500,"currency":"UAH","period":3}`, string(requests[0].Body))
	require.Equal(t, "bank_name=BankA", requests[1].RawQuery)
	require.Equal(t, "Basic "+base64.StdEncoding.EncodeToString([]byte("L:P")), requests[1].Header.Get("Authorization"))
	require.Len(t, requests[0].Header.Get("X-Request-Id"), 8)
}

func TestAgainstFakeGatewayWrongCredentials(t *testing.T) {
	fake := gatewaytest.NewFakeGateway("L", "P")
	server := httptest.NewServer(fake)
	defer server.Close()

	cut, err := NewWithCredentials(server.URL, "L", "wrong", WithHTTPClient(server.Client()))
	require.NoError(t, err)

	_, err = cut.Merchant.Info(context.Background())
	var apiErr *ApiError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Len(t, fake.Requests(), 1)
}

func TestAgainstFakeGatewayUnknownRoute(t *testing.T) {
	fake := gatewaytest.NewFakeGateway("L", "P")
	server := httptest.NewServer(fake)
	defer server.Close()

	cut, err := NewWithCredentials(server.URL, "L", "P", WithHTTPClient(server.Client()))
	require.NoError(t, err)

	_, err = cut.Customer.Get(context.Background(), "c-1")
	var apiErr *ApiError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusNotFound, apiErr.Status)
}
