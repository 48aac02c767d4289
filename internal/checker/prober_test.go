package checker

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// roundTripFunc adapts a function to http.RoundTripper.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// stubResponse builds a minimal response for req.
func stubResponse(req *http.Request, status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(strings.NewReader("")),
		Header:     make(http.Header),
		Request:    req,
	}
}

// recordingTransport answers from a status table keyed by method and records requests.
type recordingTransport struct {
	mu       sync.Mutex
	requests []*http.Request
	status   map[string]int
	err      error
}

func (rt *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.mu.Lock()
	rt.requests = append(rt.requests, req)
	rt.mu.Unlock()

	if rt.err != nil {
		return nil, rt.err
	}
	status, ok := rt.status[req.Method]
	if !ok {
		status = http.StatusOK
	}
	return stubResponse(req, status), nil
}

func (rt *recordingTransport) methods() []string {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	methods := make([]string, 0, len(rt.requests))
	for _, req := range rt.requests {
		methods = append(methods, req.Method)
	}
	return methods
}

func newStubProber(rt http.RoundTripper, opts ...ProberOption) *Prober {
	opts = append([]ProberOption{WithHTTPClient(&http.Client{Transport: rt})}, opts...)
	return NewProber(opts...)
}

// TestNewProber tests the Prober constructor.
func TestNewProber(t *testing.T) {
	t.Parallel()

	t.Run("creates prober with defaults", func(t *testing.T) {
		t.Parallel()

		p := NewProber()

		if p.timeout != 10*time.Second {
			t.Errorf("expected timeout 10s, got %v", p.timeout)
		}
		if !strings.HasPrefix(p.userAgent, "Mozilla/5.0") {
			t.Errorf("expected browser user agent, got %q", p.userAgent)
		}
		if p.limiter != nil {
			t.Error("expected no limiter by default")
		}
		if p.logger == nil {
			t.Error("expected non-nil logger")
		}
	})

	t.Run("applies options", func(t *testing.T) {
		t.Parallel()

		p := NewProber(
			WithTimeout(3*time.Second),
			WithUserAgent("test-agent"),
			WithRequestsPerSecond(2),
		)

		if p.timeout != 3*time.Second {
			t.Errorf("expected timeout 3s, got %v", p.timeout)
		}
		if p.userAgent != "test-agent" {
			t.Errorf("expected user agent test-agent, got %q", p.userAgent)
		}
		if p.limiter == nil {
			t.Error("expected limiter to be set")
		}
	})

	t.Run("ignores zero values", func(t *testing.T) {
		t.Parallel()

		p := NewProber(WithTimeout(0), WithUserAgent(""), WithHTTPClient(nil), WithRequestsPerSecond(0))

		if p.timeout != 10*time.Second {
			t.Errorf("expected default timeout, got %v", p.timeout)
		}
		if p.userAgent == "" {
			t.Error("expected default user agent")
		}
		if p.client == nil {
			t.Error("expected default client")
		}
		if p.limiter != nil {
			t.Error("expected no limiter")
		}
	})
}

// TestProberSentinels tests links that fail without a request.
func TestProberSentinels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "lowercase unavailable", raw: "unavailable", wantErr: ErrUnavailable},
		{name: "mixed case unavailable", raw: "Unavailable", wantErr: ErrUnavailable},
		{name: "padded unavailable", raw: "  UNAVAILABLE  ", wantErr: ErrUnavailable},
		{name: "empty", raw: "", wantErr: ErrEmptyURL},
		{name: "whitespace only", raw: "   ", wantErr: ErrEmptyURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
				calls.Add(1)
				return stubResponse(req, http.StatusOK), nil
			})

			got := newStubProber(rt).Probe(context.Background(), tt.raw)

			if got.Active() {
				t.Error("expected error classification")
			}
			if !errors.Is(got.Err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, got.Err)
			}
			if got.URL != tt.raw {
				t.Errorf("expected raw URL %q to be kept, got %q", tt.raw, got.URL)
			}
			if calls.Load() != 0 {
				t.Errorf("expected no request, got %d", calls.Load())
			}
		})
	}
}

// TestProberProbe tests the HEAD/GET classification.
func TestProberProbe(t *testing.T) {
	t.Parallel()

	t.Run("HEAD success is active without GET", func(t *testing.T) {
		t.Parallel()

		rt := &recordingTransport{status: map[string]int{http.MethodHead: http.StatusOK}}
		got := newStubProber(rt).Probe(context.Background(), "https://example.com")

		if !got.Active() {
			t.Fatalf("expected active, got err %v", got.Err)
		}
		if got.StatusCode != http.StatusOK {
			t.Errorf("expected status 200, got %d", got.StatusCode)
		}
		if methods := rt.methods(); len(methods) != 1 || methods[0] != http.MethodHead {
			t.Errorf("expected only HEAD, got %v", methods)
		}
	})

	t.Run("HEAD 404 falls back to GET 200", func(t *testing.T) {
		t.Parallel()

		rt := &recordingTransport{status: map[string]int{
			http.MethodHead: http.StatusNotFound,
			http.MethodGet:  http.StatusOK,
		}}
		got := newStubProber(rt).Probe(context.Background(), "https://example.com/page")

		if !got.Active() {
			t.Fatalf("expected active, got err %v", got.Err)
		}
		methods := rt.methods()
		if len(methods) != 2 || methods[0] != http.MethodHead || methods[1] != http.MethodGet {
			t.Errorf("expected HEAD then GET, got %v", methods)
		}
	})

	t.Run("HEAD 405 and GET 500 is error", func(t *testing.T) {
		t.Parallel()

		rt := &recordingTransport{status: map[string]int{
			http.MethodHead: http.StatusMethodNotAllowed,
			http.MethodGet:  http.StatusInternalServerError,
		}}
		got := newStubProber(rt).Probe(context.Background(), "https://example.com")

		if got.Active() {
			t.Error("expected error classification")
		}
		if !errors.Is(got.Err, ErrStatus) {
			t.Errorf("expected ErrStatus, got %v", got.Err)
		}
		if got.StatusCode != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %d", got.StatusCode)
		}
	})

	t.Run("3xx final status is active", func(t *testing.T) {
		t.Parallel()

		rt := &recordingTransport{status: map[string]int{http.MethodHead: http.StatusNotModified}}
		got := newStubProber(rt).Probe(context.Background(), "https://example.com")

		if !got.Active() {
			t.Errorf("expected active for 304, got err %v", got.Err)
		}
	})

	t.Run("transport error is error without GET", func(t *testing.T) {
		t.Parallel()

		rt := &recordingTransport{err: errors.New("connection refused")}
		got := newStubProber(rt).Probe(context.Background(), "https://example.com")

		if got.Active() {
			t.Error("expected error classification")
		}
		if got.Err == nil {
			t.Error("expected diagnostic to be kept")
		}
		if methods := rt.methods(); len(methods) != 1 {
			t.Errorf("expected one request, got %v", methods)
		}
	})

	t.Run("schemeless URL is requested and stored with https", func(t *testing.T) {
		t.Parallel()

		rt := &recordingTransport{}
		got := newStubProber(rt).Probe(context.Background(), "example.com/x")

		if got.URL != "https://example.com/x" {
			t.Errorf("expected https://example.com/x, got %q", got.URL)
		}
		rt.mu.Lock()
		defer rt.mu.Unlock()
		if len(rt.requests) == 0 {
			t.Fatal("expected a request")
		}
		if u := rt.requests[0].URL.String(); u != "https://example.com/x" {
			t.Errorf("expected request to https://example.com/x, got %q", u)
		}
	})

	t.Run("malformed URL is error", func(t *testing.T) {
		t.Parallel()

		rt := &recordingTransport{}
		got := newStubProber(rt).Probe(context.Background(), "https://exa mple.com")

		if got.Active() {
			t.Error("expected error classification")
		}
		if len(rt.methods()) != 0 {
			t.Error("expected no request for malformed URL")
		}
	})

	t.Run("sends user agent", func(t *testing.T) {
		t.Parallel()

		rt := &recordingTransport{}
		_ = newStubProber(rt, WithUserAgent("probe-test/1.0")).Probe(context.Background(), "https://example.com")

		rt.mu.Lock()
		defer rt.mu.Unlock()
		if len(rt.requests) == 0 {
			t.Fatal("expected a request")
		}
		if ua := rt.requests[0].Header.Get("User-Agent"); ua != "probe-test/1.0" {
			t.Errorf("expected user agent probe-test/1.0, got %q", ua)
		}
	})

	t.Run("cancelled context is error", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
			if err := req.Context().Err(); err != nil {
				return nil, err
			}
			return stubResponse(req, http.StatusOK), nil
		})
		got := newStubProber(rt).Probe(ctx, "https://example.com")

		if got.Active() {
			t.Error("expected error classification")
		}
		if !errors.Is(got.Err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", got.Err)
		}
	})
}

// TestProberWithServer tests the prober against a real HTTP server.
func TestProberWithServer(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ok", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/no-head", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		_, _ = w.Write([]byte("hello"))
	})
	mux.HandleFunc("/gone", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusGone)
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.WriteHeader(http.StatusOK)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	tests := []struct {
		name       string
		path       string
		wantActive bool
	}{
		{name: "plain 200", path: "/ok", wantActive: true},
		{name: "redirect followed", path: "/old", wantActive: true},
		{name: "HEAD rejected but GET works", path: "/no-head", wantActive: true},
		{name: "410 gone", path: "/gone", wantActive: false},
		{name: "timeout", path: "/slow", wantActive: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewProber(WithTimeout(100 * time.Millisecond))
			got := p.Probe(context.Background(), server.URL+tt.path)

			if got.Active() != tt.wantActive {
				t.Errorf("expected active=%v, got active=%v (status %d, err %v)",
					tt.wantActive, got.Active(), got.StatusCode, got.Err)
			}
		})
	}
}

// TestNormalizeURL tests scheme normalization.
func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "example.com", want: "https://example.com"},
		{in: "http://example.com", want: "http://example.com"},
		{in: "https://example.com/a?b=c", want: "https://example.com/a?b=c"},
		{in: "HTTPS://EXAMPLE.COM", want: "HTTPS://EXAMPLE.COM"},
		{in: "ftp://example.com", want: "https://ftp://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeURL(tt.in); got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestProbeResultLinkResult tests conversion into the model form.
func TestProbeResultLinkResult(t *testing.T) {
	t.Parallel()

	active := ProbeResult{URL: "https://a.example", StatusCode: 200}.LinkResult()
	if !active.Status.IsActive() || active.StatusCode != 200 {
		t.Errorf("unexpected active link result: %+v", active)
	}

	failed := ProbeResult{URL: "unavailable", Err: ErrUnavailable}.LinkResult()
	if failed.Status.IsActive() {
		t.Errorf("expected error status, got %+v", failed)
	}
	if failed.URL != "unavailable" {
		t.Errorf("expected raw URL, got %q", failed.URL)
	}
}
