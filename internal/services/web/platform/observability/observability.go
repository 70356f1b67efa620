// Package observability provides request access logging for the web surface.
package observability

import (
	"log"
	"net/http"
	"time"

	sharedi18n "github.com/louisbranch/hoaxify/internal/services/shared/i18nhttp"
	"github.com/louisbranch/hoaxify/internal/services/web/platform/httpx"
	"github.com/louisbranch/hoaxify/internal/services/web/routepath"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// RequestLogger writes one key=value access line per request, including the
// locale the request resolves to and where that choice came from. Activation
// tokens are logged as their route parameter.
func RequestLogger(logger *log.Logger) httpx.Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)
			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			locale := sharedi18n.Resolve(r)
			logger.Printf(
				"http request method=%s path=%s status=%d bytes=%d latency=%s htmx=%t lang=%s lang_source=%s request_id=%s",
				r.Method,
				routepath.LogPath(r.URL.Path),
				status,
				rec.bytes,
				time.Since(started).Round(time.Microsecond),
				httpx.IsHTMXRequest(r),
				locale.Tag,
				locale.Source,
				httpx.RequestIDFrom(r),
			)
		})
	}
}
