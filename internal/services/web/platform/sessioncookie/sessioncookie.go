// Package sessioncookie stores the sign-up form session id in a browser
// session cookie.
package sessioncookie

import (
	"net/http"
	"strings"
)

// Name is the form session cookie name.
const Name = "hx_form"

// Policy decides how the cookie is written for a request.
type Policy struct {
	// TrustForwardedProto marks the cookie Secure when a proxy reports
	// X-Forwarded-Proto: https.
	TrustForwardedProto bool
}

// Secure reports whether r reached the service over HTTPS.
func (p Policy) Secure(r *http.Request) bool {
	if r == nil {
		return false
	}
	if p.TrustForwardedProto && strings.EqualFold(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")), "https") {
		return true
	}
	if r.URL != nil && strings.EqualFold(r.URL.Scheme, "https") {
		return true
	}
	return r.TLS != nil
}

// Write sets the form session cookie. It has no Max-Age so the browser
// drops it when the session ends.
func (p Policy) Write(w http.ResponseWriter, r *http.Request, sessionID string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    strings.TrimSpace(sessionID),
		Path:     "/",
		HttpOnly: true,
		Secure:   p.Secure(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// Read returns the trimmed form session id when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	return value, value != ""
}
