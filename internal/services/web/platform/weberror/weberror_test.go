package weberror

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	platformi18n "github.com/louisbranch/hoaxify/internal/platform/i18n"
	"github.com/louisbranch/hoaxify/internal/registration"
	apperrors "github.com/louisbranch/hoaxify/internal/services/web/platform/errors"
	"golang.org/x/text/language"
)

func TestWriteModuleErrorRendersErrorPageForNotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.E(apperrors.KindNotFound, "missing"))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	for _, marker := range []string{`data-test="error-page"`, "<html", "Page not found"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestWriteModuleErrorRendersFragmentForHTMX(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/signup", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, &registration.TransportFailure{StatusCode: http.StatusServiceUnavailable})
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadGateway)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `data-test="error-page"`) || strings.Contains(body, "<html") {
		t.Fatalf("body = %q, want error fragment", body)
	}
}

func TestWriteModuleErrorWritesPlainTextForBadRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/signup", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.E(apperrors.KindInvalidInput, "bad form"))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	body := rr.Body.String()
	if !strings.Contains(body, http.StatusText(http.StatusBadRequest)) {
		t.Fatalf("body = %q, want generic bad-request message", body)
	}
	if strings.Contains(body, "bad form") {
		t.Fatalf("body leaked internal error text: %q", body)
	}
}

func TestWriteAppErrorCoercesStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteAppError(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusTeapot)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestPublicMessageUsesLocalizationKey(t *testing.T) {
	t.Parallel()

	loc := platformi18n.Printer(language.MustParse("en"))
	err := apperrors.EK(apperrors.KindInvalidInput, "passwordMismatch", "passwords differ")
	if got := PublicMessage(loc, err); got != "Password mismatch" {
		t.Fatalf("PublicMessage() = %q, want %q", got, "Password mismatch")
	}
	if got := PublicMessage(loc, registration.ErrCannotSubmit); got != http.StatusText(http.StatusBadRequest) {
		t.Fatalf("PublicMessage() = %q, want %q", got, http.StatusText(http.StatusBadRequest))
	}
	if got := PublicMessage(loc, nil); got != "" {
		t.Fatalf("PublicMessage(nil) = %q, want empty", got)
	}
}

func TestShouldRenderAppError(t *testing.T) {
	t.Parallel()

	tests := map[int]bool{
		http.StatusNotFound:            true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusBadRequest:          false,
		http.StatusConflict:            false,
	}
	for status, want := range tests {
		if got := ShouldRenderAppError(status); got != want {
			t.Fatalf("ShouldRenderAppError(%d) = %v, want %v", status, got, want)
		}
	}
}
