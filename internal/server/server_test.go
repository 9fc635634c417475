package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/polyroots/polyroots/pkg/cache"
	"github.com/polyroots/polyroots/pkg/solver"
)

// memCache keeps entries in a map so cached responses can be observed.
type memCache struct {
	data map[string][]byte
}

func (m *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	d, ok := m.data[key]
	return d, ok, nil
}

func (m *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	m.data[key] = data
	return nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memCache) Close() error { return nil }

func newTestServer(t *testing.T) (*Server, *memCache) {
	t.Helper()
	return newTestServerWith(t, Options{})
}

func newTestServerWith(t *testing.T, opts Options) (*Server, *memCache) {
	t.Helper()
	logger := log.NewWithOptions(&bytes.Buffer{}, log.Options{Level: log.DebugLevel})
	mc := &memCache{data: map[string][]byte{}}
	runner := solver.NewRunner(mc, cache.NewScopedKeyer(nil, "api:"), logger)
	return New(runner, logger, opts), mc
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, r)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodGet, "/healthz", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decode[map[string]string](t, w)
	if body["status"] != "ok" || body["version"] == "" {
		t.Errorf("body = %v", body)
	}
}

func TestRoots(t *testing.T) {
	s, mc := newTestServer(t)

	w := do(t, s, http.MethodPost, "/v1/roots", `{"coefficients":[1,-3,-75,475,-750]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	got := decode[rootsResponse](t, w)
	want := rootsResponse{
		Polynomial: "x^4 - 3x^3 - 75x^2 + 475x - 750",
		Degree:     4,
		Roots:      []int64{-10, 3, 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}

	for key := range mc.data {
		if !strings.HasPrefix(key, "api:roots:") {
			t.Errorf("cache key %q is not scoped to the API", key)
		}
	}

	w = do(t, s, http.MethodPost, "/v1/roots", `{"coefficients":[1,-3,-75,475,-750]}`)
	if got := decode[rootsResponse](t, w); !got.Cached {
		t.Error("second request should be served from cache")
	}
}

func TestRootsQuery(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		target string
		roots  []int64
	}{
		{"/v1/roots?c=1,-5,6", []int64{2, 3}},
		{"/v1/roots?c=1+0+0+0", []int64{0}},
		{"/v1/roots?c=1,0,1", []int64{}},
		{"/v1/roots?c=", []int64{}},
	}

	for _, tt := range tests {
		w := do(t, s, http.MethodGet, tt.target, "")
		if w.Code != http.StatusOK {
			t.Errorf("%s: status = %d, body %s", tt.target, w.Code, w.Body)
			continue
		}
		got := decode[rootsResponse](t, w)
		if diff := cmp.Diff(tt.roots, got.Roots); diff != "" {
			t.Errorf("%s: roots mismatch (-want +got):\n%s", tt.target, diff)
		}
	}
}

func TestEvaluate(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		body string
		want evaluateResponse
	}{
		{`{"coefficients":[1,-5,6],"x":2}`, evaluateResponse{Value: "0", Root: true}},
		{`{"coefficients":[1,-5,6],"x":0}`, evaluateResponse{Value: "6", Root: false}},
		{`{"coefficients":[],"x":7}`, evaluateResponse{Value: "0", Root: true}},
		{`{"coefficients":[1,0,0],"x":9223372036854775807}`, evaluateResponse{Value: "85070591730234615847396907784232501249", Root: false}},
	}

	for _, tt := range tests {
		w := do(t, s, http.MethodPost, "/v1/evaluate", tt.body)
		if w.Code != http.StatusOK {
			t.Errorf("%s: status = %d, body %s", tt.body, w.Code, w.Body)
			continue
		}
		if diff := cmp.Diff(tt.want, decode[evaluateResponse](t, w)); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", tt.body, diff)
		}
	}
}

func TestErrors(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
		code   string
	}{
		{"zero leading", http.MethodPost, "/v1/roots", `{"coefficients":[0,1]}`, 400, "INVALID_POLYNOMIAL"},
		{"bad json", http.MethodPost, "/v1/roots", `{"coefficients":`, 400, "INVALID_INPUT"},
		{"unknown field", http.MethodPost, "/v1/roots", `{"coeffs":[1]}`, 400, "INVALID_INPUT"},
		{"non-integer", http.MethodPost, "/v1/roots", `{"coefficients":[1.5]}`, 400, "INVALID_INPUT"},
		{"trailing data", http.MethodPost, "/v1/roots", `{"coefficients":[1]} {}`, 400, "INVALID_INPUT"},
		{"missing query", http.MethodGet, "/v1/roots", "", 400, "INVALID_INPUT"},
		{"bad query", http.MethodGet, "/v1/roots?c=1,x", "", 400, "INVALID_POLYNOMIAL"},
		{"missing x", http.MethodPost, "/v1/evaluate", `{"coefficients":[1]}`, 400, "INVALID_INPUT"},
		{"evaluate zero leading", http.MethodPost, "/v1/evaluate", `{"coefficients":[0],"x":1}`, 400, "INVALID_POLYNOMIAL"},
		{"not found", http.MethodGet, "/v2/roots", "", 404, "NOT_FOUND"},
		{"wrong method", http.MethodDelete, "/v1/roots", "", 405, "METHOD_NOT_ALLOWED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, tt.method, tt.target, tt.body)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.status, w.Body)
			}
			body := decode[errorBody](t, w)
			if body.Code != tt.code {
				t.Errorf("code = %q, want %q", body.Code, tt.code)
			}
			if body.Message == "" {
				t.Error("error body has no message")
			}
		})
	}
}

func TestBodyTooLarge(t *testing.T) {
	s, _ := newTestServer(t)

	body := `{"coefficients":[` + strings.Repeat("1,", maxBodyBytes/2) + `1]}`
	for _, target := range []string{"/v1/roots", "/v1/evaluate"} {
		w := do(t, s, http.MethodPost, target, body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", target, w.Code)
		}
		if got := decode[errorBody](t, w).Code; got != "INVALID_INPUT" {
			t.Errorf("%s: code = %q, want INVALID_INPUT", target, got)
		}
	}
}

func TestMaxDegree(t *testing.T) {
	s, _ := newTestServerWith(t, Options{MaxDegree: 3})

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{"roots at limit", http.MethodPost, "/v1/roots", `{"coefficients":[1,0,0,-8]}`, 200},
		{"roots over limit", http.MethodPost, "/v1/roots", `{"coefficients":[1,0,0,0,-16]}`, 400},
		{"query over limit", http.MethodGet, "/v1/roots?c=1,0,0,0,-16", "", 400},
		{"evaluate over limit", http.MethodPost, "/v1/evaluate", `{"coefficients":[1,0,0,0,0],"x":2}`, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, tt.method, tt.target, tt.body)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.status, w.Body)
			}
			if tt.status != http.StatusBadRequest {
				return
			}
			body := decode[errorBody](t, w)
			if body.Code != "INVALID_INPUT" || !strings.Contains(body.Message, "limit of 3") {
				t.Errorf("error = %+v, want INVALID_INPUT naming the limit", body)
			}
		})
	}
}

func TestRequestTimeout(t *testing.T) {
	s, mc := newTestServerWith(t, Options{Timeout: 50 * time.Millisecond})

	// A constant near MaxInt64 needs billions of trial divisions.
	start := time.Now()
	w := do(t, s, http.MethodPost, "/v1/roots", `{"coefficients":[1,9223372036854775783]}`)
	elapsed := time.Since(start)

	if w.Code != http.StatusGatewayTimeout {
		t.Fatalf("status = %d, want 504 (body %s)", w.Code, w.Body)
	}
	if got := decode[errorBody](t, w).Code; got != "TIMEOUT" {
		t.Errorf("code = %q, want TIMEOUT", got)
	}
	if elapsed > 5*time.Second {
		t.Errorf("request took %v despite a 50ms timeout", elapsed)
	}
	if len(mc.data) != 0 {
		t.Errorf("timed out search was cached: %v", mc.data)
	}

	// Quick searches are unaffected.
	if w := do(t, s, http.MethodPost, "/v1/roots", `{"coefficients":[1,-5,6]}`); w.Code != http.StatusOK {
		t.Errorf("small search status = %d, want 200", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/healthz", "")
	id := w.Header().Get(HeaderRequestID)
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("generated X-Request-ID %q is not a uuid", id)
	}

	known := uuid.NewString()
	r := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.Header.Set(HeaderRequestID, known)
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, r)
	if got := w.Header().Get(HeaderRequestID); got != known {
		t.Errorf("X-Request-ID = %q, want caller's %q", got, known)
	}

	r = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.Header.Set(HeaderRequestID, "not-a-uuid")
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, r)
	if got := w.Header().Get(HeaderRequestID); got == "not-a-uuid" {
		t.Error("malformed X-Request-ID should be replaced")
	}

	w = do(t, s, http.MethodGet, "/nowhere", "")
	if w.Header().Get(HeaderRequestID) == "" {
		t.Error("404 responses should carry X-Request-ID")
	}
}

func TestServeShutdown(t *testing.T) {
	s, _ := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ready := make(chan net.Addr, 1)
	done := make(chan error, 1)
	go func() {
		done <- s.Serve(ctx, ln, func(a net.Addr) { ready <- a })
	}()

	addr := <-ready
	resp, err := http.Get("http://" + addr.String() + "/v1/roots?c=1,-1")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v after shutdown", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
