package downstreams

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	aurestbreaker "github.com/StephanHCB/go-autumn-restclient-circuitbreaker/implementation/breaker"
	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"
	auresthttpclient "github.com/StephanHCB/go-autumn-restclient/implementation/httpclient"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-http-utils/headers"
	"github.com/google/uuid"

	"github.com/eurofurence/reg-payment-gateway-client/internal/logging"
)

const contentTypeApplicationJson = "application/json"

// ClientOptions control how the shared transport chain is assembled. The zero value gives
// a plain http client with request logging to a noop logger.
type ClientOptions struct {
	// HttpClient replaces the http.Client used for the actual calls. Nil means the
	// library creates its own.
	HttpClient *http.Client
	UserAgent  string
	Logger     logging.Logger
	// Metrics enables request metrics when non-nil.
	Metrics *Metrics
	// CircuitBreakerName enables a circuit breaker when non-empty. The breaker also
	// enforces a per-request timeout.
	CircuitBreakerName string
}

func requestIDFromContext(ctx context.Context) string {
	if reqID, ok := logging.RequestIdFromContext(ctx); ok {
		return reqID
	}

	reqUuid, err := uuid.NewRandom()
	if err != nil {
		// this should not normally ever happen, but continue with this fixed requestId
		return "ffffffff"
	}
	return reqUuid.String()[:8]
}

// BasicAuthRequestManipulator applies the gateway credentials and common headers to every request.
func BasicAuthRequestManipulator(conf Config, userAgent string) aurestclientapi.RequestManipulatorCallback {
	return func(ctx context.Context, r *http.Request) {
		r.SetBasicAuth(conf.Login, conf.Password)
		r.Header.Set(headers.Accept, contentTypeApplicationJson)
		r.Header.Set(middleware.RequestIDHeader, requestIDFromContext(ctx))
		if userAgent != "" {
			r.Header.Set(headers.UserAgent, userAgent)
		}
	}
}

// ClientWith builds the transport chain shared by all domain services:
// http client -> request logging -> (circuit breaker) -> (metrics).
func ClientWith(conf Config, opts ClientOptions) (aurestclientapi.Client, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	httpClient, err := auresthttpclient.New(0, nil, BasicAuthRequestManipulator(conf, opts.UserAgent))
	if err != nil {
		return nil, err
	}

	// relies on HttpClientImpl exposing its http.Client, checked against go-autumn-restclient v0.8.0
	if opts.HttpClient != nil {
		impl, ok := httpClient.(*auresthttpclient.HttpClientImpl)
		if !ok {
			return nil, errors.New("unexpected http client implementation, cannot inject http.Client")
		}
		impl.HttpClient = opts.HttpClient
	}

	var client aurestclientapi.Client = NewRequestLoggingWrapper(httpClient, opts.Logger)

	if opts.CircuitBreakerName != "" {
		client = aurestbreaker.New(client,
			opts.CircuitBreakerName,
			10,
			2*time.Minute,
			30*time.Second,
			15*time.Second,
		)
	}

	if opts.Metrics != nil {
		client = NewMetricsWrapper(client, opts.Metrics)
	}

	return client, nil
}

// Perform issues exactly one call and maps the outcome onto the error taxonomy.
//
// result receives the parsed response body. It may be nil for endpoints that answer without
// a body, in which case the body is not inspected.
func Perform(ctx context.Context, client aurestclientapi.Client, method string, requestUrl string, requestBody interface{}, result interface{}) error {
	// httpclient only hands out the raw body for **[]byte, anything else gets json.Unmarshal
	bodyPtr := &[]byte{}
	response := aurestclientapi.ParsedResponse{
		Body: &bodyPtr,
	}

	if err := client.Perform(ctx, method, requestUrl, requestBody, &response); err != nil {
		return &TransportError{Method: method, Url: requestUrl, Err: err}
	}
	rawBody := *bodyPtr

	if err := ErrByStatus(method, requestUrl, response.Status, rawBody); err != nil {
		return err
	}

	if result == nil {
		return nil
	}

	if err := json.Unmarshal(rawBody, result); err != nil {
		return &ParseError{Status: response.Status, Body: rawBody, Err: err}
	}

	return nil
}

func ErrByStatus(method string, requestUrl string, status int, body []byte) error {
	if status < 200 || status >= 300 {
		return &ApiError{Method: method, Url: requestUrl, Status: status, Body: body}
	}
	return nil
}

// Url joins the base url with a path built from format and args. Path arguments must
// already be escaped, see PathParam.
func (c Config) Url(format string, args ...interface{}) string {
	return c.BaseUrl + fmt.Sprintf(format, args...)
}

func PathParam(value string) string {
	return url.PathEscape(value)
}

// WithQuery appends the encoded query unless it is empty.
func WithQuery(requestUrl string, query url.Values) string {
	if len(query) == 0 {
		return requestUrl
	}
	return requestUrl + "?" + query.Encode()
}
