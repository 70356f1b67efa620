package httpx

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestChainAppliesMiddlewareInOrder(t *testing.T) {
	t.Parallel()

	called := ""
	mw1 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called += "1"
			next.ServeHTTP(w, r)
		})
	}
	mw2 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called += "2"
			next.ServeHTTP(w, r)
		})
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called += "h"
		w.WriteHeader(http.StatusNoContent)
	}), mw1, nil, mw2)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if called != "12h" {
		t.Fatalf("call order = %q, want %q", called, "12h")
	}
}

func TestChainHandlesNilHandler(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Chain(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestRequestIDAddsHeaderWhenMissing(t *testing.T) {
	t.Parallel()

	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r)
		w.WriteHeader(http.StatusNoContent)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	got := rr.Header().Get("X-Request-ID")
	if !strings.HasPrefix(got, "web-") {
		t.Fatalf("X-Request-ID = %q, want web- prefix", got)
	}
	if seen != got {
		t.Fatalf("handler request id = %q, want %q", seen, got)
	}
}

func TestRequestIDPreservesIncomingHeader(t *testing.T) {
	t.Parallel()

	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-abc")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("X-Request-ID"); got != "req-abc" {
		t.Fatalf("X-Request-ID = %q, want %q", got, "req-abc")
	}
}

func TestRecoverPanicLogsRequestContext(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	h := RecoverPanic(log.New(&buffer, "", 0))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	logLine := buffer.String()
	for _, marker := range []string{"panic recovered", "method=GET", "path=/panic", "request_id=req-123", "panic=boom"} {
		if !strings.Contains(logLine, marker) {
			t.Fatalf("panic log missing marker %q: %q", marker, logLine)
		}
	}
}

func TestRecoverPanicRedactsActivationToken(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	h := RecoverPanic(log.New(&buffer, "", 0))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/activation/secret-token", nil))

	logLine := buffer.String()
	if strings.Contains(logLine, "secret-token") || !strings.Contains(logLine, "path=/activation/{token}") {
		t.Fatalf("panic log = %q, want redacted activation path", logLine)
	}
}

func TestHTMXRequestDetection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		headers      map[string]string
		wantHTMX     bool
		wantBoosted  bool
		wantFragment bool
	}{
		{name: "plain", headers: nil},
		{name: "htmx", headers: map[string]string{"HX-Request": "true"}, wantHTMX: true, wantFragment: true},
		{name: "boosted", headers: map[string]string{"HX-Request": "true", "HX-Boosted": "true"}, wantHTMX: true, wantBoosted: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			if got := IsHTMXRequest(req); got != tc.wantHTMX {
				t.Fatalf("IsHTMXRequest() = %v, want %v", got, tc.wantHTMX)
			}
			if got := IsBoostedRequest(req); got != tc.wantBoosted {
				t.Fatalf("IsBoostedRequest() = %v, want %v", got, tc.wantBoosted)
			}
			if got := WantsFragment(req); got != tc.wantFragment {
				t.Fatalf("WantsFragment() = %v, want %v", got, tc.wantFragment)
			}
		})
	}
	if IsHTMXRequest(nil) || IsBoostedRequest(nil) || WantsFragment(nil) {
		t.Fatal("nil request should not be treated as HTMX")
	}
}

func TestHTMXTargetStripsHash(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("HX-Target", "#signup-form")
	if got := HTMXTarget(req); got != "signup-form" {
		t.Fatalf("HTMXTarget() = %q, want %q", got, "signup-form")
	}
}

func TestRetargetSetsHeaders(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Retarget(rr, "#signup-form", "outerHTML")
	if got := rr.Header().Get("HX-Retarget"); got != "#signup-form" {
		t.Fatalf("HX-Retarget = %q", got)
	}
	if got := rr.Header().Get("HX-Reswap"); got != "outerHTML" {
		t.Fatalf("HX-Reswap = %q", got)
	}
}

func TestWriteHTMLSetsContentType(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WriteHTML(rr, http.StatusAccepted, "<p>ok</p>"); err != nil {
		t.Fatalf("WriteHTML() error = %v", err)
	}
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}
	if rr.Body.String() != "<p>ok</p>" {
		t.Fatalf("body = %q", rr.Body.String())
	}
	if err := WriteHTML(nil, http.StatusOK, ""); err == nil {
		t.Fatal("expected error for nil writer")
	}
}
