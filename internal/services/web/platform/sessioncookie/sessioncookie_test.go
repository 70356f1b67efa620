package sessioncookie

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRead(t *testing.T) {
	t.Parallel()

	if _, ok := Read(nil); ok {
		t.Fatal("expected nil request to have no session cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	if _, ok := Read(req); ok {
		t.Fatal("expected missing cookie")
	}

	req.AddCookie(&http.Cookie{Name: Name, Value: "  fs-1  "})
	value, ok := Read(req)
	if !ok || value != "fs-1" {
		t.Fatalf("Read() = %q, %t, want %q, true", value, ok, "fs-1")
	}
}

func TestReadBlankValue(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: Name, Value: " "})
	if _, ok := Read(req); ok {
		t.Fatal("expected blank cookie to be ignored")
	}
}

func TestSecure(t *testing.T) {
	t.Parallel()

	tlsReq := httptest.NewRequest(http.MethodGet, "/", nil)
	tlsReq.TLS = &tls.ConnectionState{}

	proxied := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	proxied.Header.Set("X-Forwarded-Proto", "HTTPS")

	tests := []struct {
		name   string
		req    *http.Request
		policy Policy
		want   bool
	}{
		{name: "nil request", req: nil, want: false},
		{name: "plain http", req: httptest.NewRequest(http.MethodGet, "http://example.com/", nil), want: false},
		{name: "absolute https url", req: httptest.NewRequest(http.MethodGet, "https://example.com/", nil), want: true},
		{name: "tls", req: tlsReq, want: true},
		{name: "untrusted forwarded proto", req: proxied, want: false},
		{name: "trusted forwarded proto", req: proxied, policy: Policy{TrustForwardedProto: true}, want: true},
	}
	for _, tc := range tests {
		if got := tc.policy.Secure(tc.req); got != tc.want {
			t.Fatalf("%s: Secure() = %t, want %t", tc.name, got, tc.want)
		}
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Policy{}.Write(rr, httptest.NewRequest(http.MethodGet, "https://app.example.test", nil), " fs-1 ")
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.Name != Name || cookie.Value != "fs-1" {
		t.Fatalf("cookie = %s=%s, want %s=fs-1", cookie.Name, cookie.Value, Name)
	}
	if !cookie.Secure || !cookie.HttpOnly {
		t.Fatal("expected secure http-only cookie for https request")
	}
	if cookie.MaxAge != 0 || !cookie.Expires.IsZero() {
		t.Fatalf("MaxAge = %d, Expires = %v, want browser-session cookie", cookie.MaxAge, cookie.Expires)
	}
	Policy{}.Write(nil, nil, "ignored")
}
