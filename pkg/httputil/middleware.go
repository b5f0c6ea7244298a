package httputil

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nattu22/pptgenerator/pkg/observability"
)

// statusWriter captures the response status and body size for logging.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

// RequestLogger returns middleware that logs one line per request with
// method, path, status, response size, and duration. A nil logger falls
// back to the package default. Registered observability HTTP hooks fire
// around each request.
func RequestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w}
			start := time.Now()
			observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)
			next.ServeHTTP(sw, r)
			if sw.status == 0 {
				sw.status = http.StatusOK
			}
			elapsed := time.Since(start)
			observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, sw.status, elapsed)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"bytes", sw.bytes,
				"duration", elapsed.Round(time.Millisecond),
			)
		})
	}
}
