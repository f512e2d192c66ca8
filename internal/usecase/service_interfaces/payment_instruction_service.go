package service_interfaces

import (
	"context"

	"github.com/api-sage/payment-instruction-processor/internal/adapter/http/models"
	"github.com/api-sage/payment-instruction-processor/internal/commons"
)

type PaymentInstructionService interface {
	ProcessInstruction(ctx context.Context, req models.PaymentInstructionRequest) (commons.Response[models.PaymentInstructionResponse], error)
}
