package services

import (
	"context"

	"github.com/api-sage/payment-instruction-processor/internal/adapter/http/models"
	"github.com/api-sage/payment-instruction-processor/internal/commons"
	"github.com/api-sage/payment-instruction-processor/internal/domain"
	"github.com/api-sage/payment-instruction-processor/internal/logger"
	"github.com/api-sage/payment-instruction-processor/internal/pipeline"
	"github.com/api-sage/payment-instruction-processor/internal/usecase/service_interfaces"
)

type PaymentInstructionService struct {
	pipeline *pipeline.Pipeline
}

var _ service_interfaces.PaymentInstructionService = (*PaymentInstructionService)(nil)

func NewPaymentInstructionService(p *pipeline.Pipeline) *PaymentInstructionService {
	return &PaymentInstructionService{pipeline: p}
}

func (s *PaymentInstructionService) ProcessInstruction(ctx context.Context, req models.PaymentInstructionRequest) (commons.Response[models.PaymentInstructionResponse], error) {
	logger.Info("payment instruction service process request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.FailureResponse("Transaction failed",
			models.MalformedRequestResponse(err.Error()), err.Error()), err
	}

	tx := s.pipeline.Process(req.Instruction, toDomainAccounts(req.Accounts))
	response := mapTransactionToResponse(tx)

	if tx.Status == domain.TransactionStatusFailed {
		logger.Info("payment instruction service process rejected", logger.Fields{
			"statusCode":   string(tx.StatusCode),
			"statusReason": tx.StatusReason,
		})
		return commons.FailureResponse("Transaction failed", response, tx.StatusReason), nil
	}

	logger.Info("payment instruction service process completed", logger.Fields{
		"status":     string(tx.Status),
		"statusCode": string(tx.StatusCode),
	})

	message := "Transaction executed successfully"
	if tx.Status == domain.TransactionStatusPending {
		message = "Transaction scheduled for future execution"
	}
	return commons.SuccessResponse(message, response), nil
}

func toDomainAccounts(payload []models.AccountPayload) []domain.Account {
	accounts := make([]domain.Account, 0, len(payload))
	for _, acc := range payload {
		accounts = append(accounts, domain.Account{
			AccountID: acc.AccountID,
			Balance:   acc.Balance,
			Currency:  acc.Currency,
		})
	}
	return accounts
}

func mapTransactionToResponse(tx domain.Transaction) models.PaymentInstructionResponse {
	response := models.PaymentInstructionResponse{
		Type:          optionalString(string(tx.Type)),
		Currency:      optionalString(tx.Currency),
		DebitAccount:  optionalString(tx.DebitAccount),
		CreditAccount: optionalString(tx.CreditAccount),
		ExecuteBy:     tx.ExecuteBy,
		Status:        string(tx.Status),
		StatusReason:  tx.StatusReason,
		StatusCode:    string(tx.StatusCode),
		Accounts:      make([]models.AccountBalancePayload, 0, len(tx.Accounts)),
	}

	if tx.Amount != nil {
		amount := tx.Amount.InexactFloat64()
		response.Amount = &amount
	}

	for _, acc := range tx.Accounts {
		response.Accounts = append(response.Accounts, models.AccountBalancePayload{
			AccountID:     acc.AccountID,
			Balance:       acc.Balance,
			BalanceBefore: acc.BalanceBefore,
			Currency:      acc.Currency,
		})
	}

	return response
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
