package userapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/hoaxify/internal/registration"
)

type capturedRequest struct {
	method string
	path   string
	lang   string
	body   map[string]any
}

func newAPI(t *testing.T, status int, payload string) (*Client, chan capturedRequest) {
	t.Helper()

	captured := make(chan capturedRequest, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		req := capturedRequest{method: r.Method, path: r.URL.EscapedPath(), lang: r.Header.Get("Accept-Language")}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &req.body); err != nil {
				t.Errorf("decode request body: %v", err)
			}
		}
		captured <- req
		if payload != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, payload)
	}))
	t.Cleanup(srv.Close)

	client, err := New(srv.URL + "/")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client, captured
}

var sampleUser = registration.NewUser{Username: "user1", Email: "user1@mail.com", Password: "P4ssword"}

func TestNewRequiresBaseURL(t *testing.T) {
	t.Parallel()

	if _, err := New("  "); !errors.Is(err, ErrBaseURLRequired) {
		t.Fatalf("New() error = %v, want %v", err, ErrBaseURLRequired)
	}
}

func TestRegisterSendsUserWithoutConfirmation(t *testing.T) {
	t.Parallel()

	client, captured := newAPI(t, http.StatusOK, `{"message":"User saved"}`)
	ctx := WithAcceptLanguage(context.Background(), "fa")
	if err := client.Register(ctx, sampleUser); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	req := <-captured
	if req.method != http.MethodPost || req.path != "/api/1.0/users" {
		t.Fatalf("request = %s %s, want POST /api/1.0/users", req.method, req.path)
	}
	want := map[string]any{"username": "user1", "email": "user1@mail.com", "password": "P4ssword"}
	if diff := cmp.Diff(want, req.body); diff != "" {
		t.Fatalf("request body mismatch (-want +got):\n%s", diff)
	}
	if req.lang != "fa" {
		t.Fatalf("Accept-Language = %q, want %q", req.lang, "fa")
	}
}

func TestRegisterValidationFailure(t *testing.T) {
	t.Parallel()

	client, _ := newAPI(t, http.StatusBadRequest, `{"validationErrors":{"username":"Username cannot be null","email":"E-mail cannot be null"}}`)
	err := client.Register(context.Background(), sampleUser)

	got, ok := registration.AsValidationFailure(err)
	if !ok {
		t.Fatalf("Register() error = %v, want validation failure", err)
	}
	want := map[string]string{"username": "Username cannot be null", "email": "E-mail cannot be null"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("validation errors mismatch (-want +got):\n%s", diff)
	}
}

func TestRegisterValidationFailureIgnoresContentType(t *testing.T) {
	t.Parallel()

	for _, contentType := range []string{"", "text/plain; charset=utf-8"} {
		t.Run("content type "+contentType, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header()["Content-Type"] = nil
				if contentType != "" {
					w.Header().Set("Content-Type", contentType)
				}
				w.WriteHeader(http.StatusBadRequest)
				_, _ = io.WriteString(w, `{"validationErrors":{"username":"Username cannot be null"}}`)
			}))
			t.Cleanup(srv.Close)
			client, err := New(srv.URL)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			t.Cleanup(func() { _ = client.Close() })

			err = client.Register(context.Background(), sampleUser)
			got, ok := registration.AsValidationFailure(err)
			if !ok {
				t.Fatalf("Register() error = %v, want validation failure", err)
			}
			want := map[string]string{"username": "Username cannot be null"}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("validation errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRegisterTransportFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{name: "server error", status: http.StatusInternalServerError, payload: `{"message":"boom"}`},
		{name: "client error without field map", status: http.StatusBadRequest, payload: `{"message":"bad"}`},
		{name: "server error with field map", status: http.StatusBadGateway, payload: `{"validationErrors":{"username":"x"}}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client, _ := newAPI(t, tc.status, tc.payload)
			err := client.Register(context.Background(), sampleUser)
			var failure *registration.TransportFailure
			if !errors.As(err, &failure) {
				t.Fatalf("Register() error = %v, want transport failure", err)
			}
			if failure.StatusCode != tc.status {
				t.Fatalf("StatusCode = %d, want %d", failure.StatusCode, tc.status)
			}
			if _, ok := registration.AsValidationFailure(err); ok {
				t.Fatal("transport failure should not carry field errors")
			}
		})
	}
}

func TestRegisterUnreachableAPI(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := New(url)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	err = client.Register(context.Background(), sampleUser)
	var failure *registration.TransportFailure
	if !errors.As(err, &failure) {
		t.Fatalf("Register() error = %v, want transport failure", err)
	}
	if failure.StatusCode != 0 {
		t.Fatalf("StatusCode = %d, want 0", failure.StatusCode)
	}
}

func TestActivate(t *testing.T) {
	t.Parallel()

	client, captured := newAPI(t, http.StatusOK, `{"message":"Account is activated"}`)
	if err := client.Activate(context.Background(), "abcd/1234"); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	req := <-captured
	if req.method != http.MethodPost {
		t.Fatalf("method = %s, want POST", req.method)
	}
	if req.path != "/api/1.0/users/token/abcd%2F1234" {
		t.Fatalf("path = %q, want %q", req.path, "/api/1.0/users/token/abcd%2F1234")
	}
}

func TestActivateFailure(t *testing.T) {
	t.Parallel()

	client, _ := newAPI(t, http.StatusBadRequest, `{"validationErrors":{"token":"invalid"}}`)
	err := client.Activate(context.Background(), "5678")
	var failure *registration.TransportFailure
	if !errors.As(err, &failure) {
		t.Fatalf("Activate() error = %v, want transport failure", err)
	}
	if failure.StatusCode != http.StatusBadRequest {
		t.Fatalf("StatusCode = %d, want %d", failure.StatusCode, http.StatusBadRequest)
	}
}

func TestActivateUnreachableAPIHidesToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := New(url)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	err = client.Activate(context.Background(), "secret-token-42")
	var failure *registration.TransportFailure
	if !errors.As(err, &failure) {
		t.Fatalf("Activate() error = %v, want transport failure", err)
	}
	if strings.Contains(err.Error(), "secret-token-42") {
		t.Fatalf("Activate() error = %q, want token redacted", err)
	}
}

func TestCloseTwice(t *testing.T) {
	t.Parallel()

	client, err := New("http://api.local")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
}

func TestAcceptLanguageContext(t *testing.T) {
	t.Parallel()

	if got := AcceptLanguage(context.Background()); got != "" {
		t.Fatalf("AcceptLanguage(empty) = %q", got)
	}
	ctx := WithAcceptLanguage(context.Background(), " en ")
	if got := AcceptLanguage(context.WithoutCancel(ctx)); got != "en" {
		t.Fatalf("AcceptLanguage = %q, want %q", got, "en")
	}
}
