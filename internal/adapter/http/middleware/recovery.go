package middleware

import (
	"fmt"
	"net/http"

	"github.com/api-sage/payment-instruction-processor/internal/logger"
)

// Recovery converts panics escaping a handler into a 500 response instead of
// tearing down the connection.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("http handler panic", fmt.Errorf("%v", rec), logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
