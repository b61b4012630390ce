package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	apperrors "github.com/frahmantamala/hrms-lite/internal"
	"github.com/frahmantamala/hrms-lite/internal/transport"
	"github.com/frahmantamala/hrms-lite/pkg/logger"
)

// Recoverer answers a panicking handler with the 500 envelope and logs the stack
// through the request logger, so the entry carries the request id.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.From(r.Context()).Error("panic recovered",
				"panic", rec,
				"method", r.Method,
				"path", r.URL.Path,
				"stack", string(debug.Stack()),
			)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(transport.NewErrorResponse(
				apperrors.NewInternalError("Internal server error", nil),
			))
		}()

		next.ServeHTTP(w, r)
	})
}
