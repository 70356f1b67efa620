// Package httpx provides HTTP middleware helpers used by web modules.
package httpx

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"runtime/debug"
	"strings"
	"sync/atomic"
	"time"

	"github.com/louisbranch/hoaxify/internal/services/web/routepath"
)

const (
	htmxHeader        = "HX-Request"
	htmxBoostedHeader = "HX-Boosted"
	htmxTargetHeader  = "HX-Target"
	htmxRetarget      = "HX-Retarget"
	htmxReswap        = "HX-Reswap"
	requestIDHeader   = "X-Request-ID"
)

// Middleware wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

var requestIDCounter atomic.Uint64

// Chain applies middleware in declaration order.
func Chain(handler http.Handler, middleware ...Middleware) http.Handler {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	wrapped := handler
	for idx := len(middleware) - 1; idx >= 0; idx-- {
		if middleware[idx] == nil {
			continue
		}
		wrapped = middleware[idx](wrapped)
	}
	return wrapped
}

// RequestID injects and echoes a request id for correlation.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := strings.TrimSpace(r.Header.Get(requestIDHeader))
			if requestID == "" {
				requestID = fmt.Sprintf("web-%d-%d", time.Now().UnixNano(), requestIDCounter.Add(1))
				r.Header.Set(requestIDHeader, requestID)
			}
			w.Header().Set(requestIDHeader, requestID)
			next.ServeHTTP(w, r)
		})
	}
}

// RequestIDFrom returns the correlation id set by RequestID, or "-".
func RequestIDFrom(r *http.Request) string {
	if r == nil {
		return "-"
	}
	if rid := strings.TrimSpace(r.Header.Get(requestIDHeader)); rid != "" {
		return rid
	}
	return "-"
}

// RecoverPanic converts panics into HTTP 500 responses. A nil logger uses
// the standard logger.
func RecoverPanic(logger *log.Logger) Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if recovered := recover(); recovered != nil {
					path := "-"
					method := "-"
					if r != nil {
						path = routepath.LogPath(strings.TrimSpace(r.URL.Path))
						method = strings.TrimSpace(r.Method)
					}
					logger.Printf(
						"panic recovered method=%s path=%s request_id=%s panic=%v stack=%s",
						method,
						path,
						RequestIDFrom(r),
						recovered,
						strings.TrimSpace(string(debug.Stack())),
					)
					w.WriteHeader(http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequestContext returns r.Context() with a nil-safe fallback to context.Background().
func RequestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}

// IsHTMXRequest reports whether the current request came from HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return r.Header.Get(htmxHeader) == "true"
}

// IsBoostedRequest reports whether HTMX issued the request for a boosted
// link or form, which expects a whole page back.
func IsBoostedRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return r.Header.Get(htmxBoostedHeader) == "true"
}

// WantsFragment reports whether the response should be a partial swap
// rather than a full document.
func WantsFragment(r *http.Request) bool {
	return IsHTMXRequest(r) && !IsBoostedRequest(r)
}

// HTMXTarget returns the id of the element HTMX will swap, if any.
func HTMXTarget(r *http.Request) string {
	if r == nil {
		return ""
	}
	return strings.TrimPrefix(strings.TrimSpace(r.Header.Get(htmxTargetHeader)), "#")
}

// Retarget tells HTMX to swap a different element than the one requested.
func Retarget(w http.ResponseWriter, selector string, swap string) {
	if w == nil {
		return
	}
	w.Header().Set(htmxRetarget, selector)
	if swap != "" {
		w.Header().Set(htmxReswap, swap)
	}
}

// WriteHTML writes an HTML payload with the provided status code.
func WriteHTML(w http.ResponseWriter, status int, payload string) error {
	if w == nil {
		return fmt.Errorf("response writer is required")
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := io.WriteString(w, payload)
	return err
}
