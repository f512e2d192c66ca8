package models

import (
	"errors"
	"strings"

	"github.com/api-sage/payment-instruction-processor/internal/domain"
)

type AccountPayload struct {
	AccountID string `json:"account_id"`
	Balance   int64  `json:"balance"`
	Currency  string `json:"currency"`
}

type PaymentInstructionRequest struct {
	Instruction string           `json:"instruction"`
	Accounts    []AccountPayload `json:"accounts"`
}

// Validate rejects requests the processing stages must never see: a missing
// instruction or a missing accounts list. An empty accounts list is a valid
// snapshot and flows through.
func (r PaymentInstructionRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Instruction) == "" {
		errs = append(errs, "instruction is required")
	}
	if r.Accounts == nil {
		errs = append(errs, "accounts is required and must be a list")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type AccountBalancePayload struct {
	AccountID     string `json:"account_id"`
	Balance       int64  `json:"balance"`
	BalanceBefore int64  `json:"balance_before"`
	Currency      string `json:"currency"`
}

// PaymentInstructionResponse is the wire shape of a processed instruction.
// Fields the parser never reached render as JSON null, not as zero values.
type PaymentInstructionResponse struct {
	Type          *string                 `json:"type"`
	Amount        *float64                `json:"amount"`
	Currency      *string                 `json:"currency"`
	DebitAccount  *string                 `json:"debit_account"`
	CreditAccount *string                 `json:"credit_account"`
	ExecuteBy     *string                 `json:"execute_by"`
	Status        string                  `json:"status"`
	StatusReason  string                  `json:"status_reason"`
	StatusCode    string                  `json:"status_code"`
	Accounts      []AccountBalancePayload `json:"accounts"`
}

// MalformedRequestResponse is the body for requests rejected before the
// processing stages run: undecodable bodies or missing instruction/accounts.
// The status code is the same stable contract value callers see for
// unparseable instructions.
func MalformedRequestResponse(reason string) PaymentInstructionResponse {
	return PaymentInstructionResponse{
		Status:       string(domain.TransactionStatusFailed),
		StatusReason: reason,
		StatusCode:   string(domain.StatusCodeMalformed),
		Accounts:     []AccountBalancePayload{},
	}
}
