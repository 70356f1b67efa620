package publichandler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/hoaxify/internal/registration"
	"github.com/louisbranch/hoaxify/internal/services/web/platform/pagerender"
)

func TestLoggerDefaultsToStandardLogger(t *testing.T) {
	t.Parallel()

	if NewBase().Logger() != log.Default() {
		t.Fatal("Logger() should default to log.Default()")
	}
	custom := log.New(io.Discard, "", 0)
	if NewBase(WithLogger(custom)).Logger() != custom {
		t.Fatal("Logger() should return the configured logger")
	}
}

func TestWriteNotFoundRendersErrorPage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewBase().WriteNotFound(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), `data-test="error-page"`) {
		t.Fatalf("body = %q, want error page", rr.Body.String())
	}
}

func TestWriteErrorLogsServerFailures(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	base := NewBase(WithLogger(log.New(&buffer, "", 0)))
	req := httptest.NewRequest(http.MethodPost, "/signup", nil)
	req.Header.Set("X-Request-ID", "req-9")
	rr := httptest.NewRecorder()

	base.WriteError(rr, req, &registration.TransportFailure{Cause: errors.New("dial tcp: refused")})
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadGateway)
	}
	logLine := buffer.String()
	for _, marker := range []string{"status=502", "request_id=req-9", "dial tcp: refused"} {
		if !strings.Contains(logLine, marker) {
			t.Fatalf("log line missing marker %q: %q", marker, logLine)
		}
	}
	if strings.Contains(rr.Body.String(), "refused") {
		t.Fatalf("body leaked internal error text: %q", rr.Body.String())
	}
}

func TestWriteErrorRedactsActivationToken(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	base := NewBase(WithLogger(log.New(&buffer, "", 0)))
	req := httptest.NewRequest(http.MethodPost, "/activation/secret-token", nil)
	base.WriteError(httptest.NewRecorder(), req, errors.New("boom"))

	logLine := buffer.String()
	if strings.Contains(logLine, "secret-token") || !strings.Contains(logLine, "path=/activation/{token}") {
		t.Fatalf("log line = %q, want redacted activation path", logLine)
	}
}

func TestWriteErrorDoesNotLogClientErrors(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	base := NewBase(WithLogger(log.New(&buffer, "", 0)))
	rr := httptest.NewRecorder()

	base.WriteError(rr, httptest.NewRequest(http.MethodPost, "/signup", nil), registration.ErrCannotSubmit)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if buffer.Len() != 0 {
		t.Fatalf("unexpected log output %q", buffer.String())
	}
}

func TestWritePageFallsBackToErrorPageOnRenderFailure(t *testing.T) {
	t.Parallel()

	base := NewBase(WithLogger(log.New(io.Discard, "", 0)))
	rr := httptest.NewRecorder()
	base.WritePage(rr, httptest.NewRequest(http.MethodGet, "/", nil), pagerender.Page{Fragment: failingComponent{}})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

type failingComponent struct{}

func (failingComponent) Render(context.Context, io.Writer) error {
	return errors.New("render failed")
}
