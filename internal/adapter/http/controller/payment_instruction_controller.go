package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/payment-instruction-processor/internal/adapter/http/models"
	"github.com/api-sage/payment-instruction-processor/internal/commons"
	"github.com/api-sage/payment-instruction-processor/internal/logger"
)

type PaymentInstructionService interface {
	ProcessInstruction(ctx context.Context, req models.PaymentInstructionRequest) (commons.Response[models.PaymentInstructionResponse], error)
}

type PaymentInstructionController struct {
	service PaymentInstructionService
}

func NewPaymentInstructionController(service PaymentInstructionService) *PaymentInstructionController {
	return &PaymentInstructionController{service: service}
}

func (c *PaymentInstructionController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	handler := http.HandlerFunc(c.processInstruction)
	if authMiddleware != nil {
		handler = authMiddleware(handler).ServeHTTP
	}
	mux.Handle("/payment-instructions", http.HandlerFunc(handler))
}

func (c *PaymentInstructionController) processInstruction(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodPost {
		response := commons.ErrorResponse[models.PaymentInstructionResponse]("method not allowed")
		writeJSON(w, http.StatusMethodNotAllowed, response)
		logResponse(r, http.StatusMethodNotAllowed, response, start)
		return
	}

	var req models.PaymentInstructionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.FailureResponse("Transaction failed",
			models.MalformedRequestResponse("request body is not valid JSON"), err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.ProcessInstruction(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
	}

	// HTTP codes only classify transport success; the body's status_code is
	// the contract callers branch on.
	status := http.StatusOK
	if !response.Success {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, response)
	logResponse(r, status, response, start)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
