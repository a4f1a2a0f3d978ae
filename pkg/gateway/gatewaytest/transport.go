// Package gatewaytest provides test doubles for code using the gateway client.
//
// Transport replaces the network below the real http stack, so request building,
// credentials and response parsing are all exercised. FakeGateway goes one step further
// and serves canned responses from a real http server.
package gatewaytest

import (
	"bytes"
	"io"
	"net/http"
	"sync"
)

// Transport is an http.RoundTripper that records the last request and its body and answers
// every request with the same canned response.
type Transport struct {
	mu sync.Mutex

	status int
	body   []byte
	header http.Header
	err    error

	lastRequest *http.Request
	lastBody    []byte
	requests    int
	closeCount  int
}

func NewTransport(status int, body string) *Transport {
	return &Transport{
		status: status,
		body:   []byte(body),
		header: http.Header{"Content-Type": []string{"application/json"}},
	}
}

// NewFailingTransport answers every request with err instead of a response.
func NewFailingTransport(err error) *Transport {
	return &Transport{err: err}
}

// Respond changes the canned response for subsequent requests.
func (t *Transport) Respond(status int, body string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = status
	t.body = []byte(body)
}

func (t *Transport) RoundTrip(r *http.Request) (*http.Response, error) {
	var body []byte
	if r.Body != nil {
		b, err := io.ReadAll(r.Body)
		_ = r.Body.Close()
		if err != nil {
			return nil, err
		}
		body = b
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.requests++
	t.lastRequest = r
	t.lastBody = body

	if err := r.Context().Err(); err != nil {
		return nil, err
	}
	if t.err != nil {
		return nil, t.err
	}

	return &http.Response{
		Status:        http.StatusText(t.status),
		StatusCode:    t.status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        t.header.Clone(),
		Body:          io.NopCloser(bytes.NewReader(t.body)),
		ContentLength: int64(len(t.body)),
		Request:       r,
	}, nil
}

// CloseIdleConnections is called by http.Client.CloseIdleConnections.
func (t *Transport) CloseIdleConnections() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closeCount++
}

// Client wraps the transport in an http.Client the caller owns.
func (t *Transport) Client() *http.Client {
	return &http.Client{Transport: t}
}

func (t *Transport) LastRequest() *http.Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastRequest
}

func (t *Transport) LastBody() []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastBody
}

func (t *Transport) Requests() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.requests
}

func (t *Transport) CloseCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closeCount
}
