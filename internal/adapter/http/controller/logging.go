package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/payment-instruction-processor/internal/adapter/http/middleware"
	"github.com/api-sage/payment-instruction-processor/internal/logger"
)

func logRequest(r *http.Request, payload any) {
	logger.Info("http request", requestFields(r, logger.Fields{
		"payload": logger.SanitizePayload(payload),
	}))
}

func logResponse(r *http.Request, status int, payload any, start time.Time) {
	logger.Info("http response", requestFields(r, logger.Fields{
		"status":     status,
		"durationMs": time.Since(start).Milliseconds(),
		"response":   logger.SanitizePayload(payload),
	}))
}

func logError(r *http.Request, err error, extra logger.Fields) {
	logger.Error("http handler error", err, requestFields(r, extra))
}

func requestFields(r *http.Request, extra logger.Fields) logger.Fields {
	fields := logger.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}
	if requestID := middleware.RequestIDFromContext(r.Context()); requestID != "" {
		fields["requestId"] = requestID
	}
	for k, v := range extra {
		fields[k] = v
	}
	return fields
}
