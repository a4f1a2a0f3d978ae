package gatewaytest

import (
	"crypto/subtle"
	"io"
	"net/http"
	"regexp"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-http-utils/headers"
	"github.com/google/uuid"
)

var validRequestIdRegex = regexp.MustCompile("^[0-9a-f]{8}$")

type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// FakeGateway is an http.Handler that checks basic auth credentials, records every request
// and serves canned responses registered with Respond. Unregistered routes get chi's 404.
//
// Like the real gateway it echoes X-Request-Id, assigning a fresh one if the request had none
// or an invalid one.
type FakeGateway struct {
	router   chi.Router
	handler  http.Handler
	mu       sync.Mutex
	requests []RecordedRequest
}

func NewFakeGateway(login string, password string) *FakeGateway {
	f := &FakeGateway{
		router: chi.NewRouter(),
	}
	// chi only runs Use middlewares once a route exists, so wrap the router instead
	f.handler = requestId(f.recordRequest(basicAuth(login, password)(f.router)))
	return f
}

// Respond registers a canned json response for method and chi route pattern.
func (f *FakeGateway) Respond(method string, pattern string, status int, body string) {
	f.router.MethodFunc(method, pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(headers.ContentType, "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func (f *FakeGateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.handler.ServeHTTP(w, r)
}

func (f *FakeGateway) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]RecordedRequest, len(f.requests))
	copy(result, f.requests)
	return result
}

func (f *FakeGateway) recordRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()

		f.mu.Lock()
		f.requests = append(f.requests, RecordedRequest{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     body,
		})
		f.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func basicAuth(login string, password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok ||
				subtle.ConstantTimeCompare([]byte(user), []byte(login)) != 1 ||
				subtle.ConstantTimeCompare([]byte(pass), []byte(password)) != 1 {
				w.Header().Set(headers.ContentType, "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqId := r.Header.Get(middleware.RequestIDHeader)
		if !validRequestIdRegex.MatchString(reqId) {
			reqUuid, err := uuid.NewRandom()
			if err == nil {
				reqId = reqUuid.String()[:8]
			} else {
				reqId = "ffffffff"
			}
		}
		w.Header().Set(middleware.RequestIDHeader, reqId)
		next.ServeHTTP(w, r)
	})
}
