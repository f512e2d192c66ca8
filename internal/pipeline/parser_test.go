package pipeline

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/api-sage/payment-instruction-processor/internal/domain"
)

func TestParse_DebitInstruction(t *testing.T) {
	rec := Parse("DEBIT 30 USD FROM ACCOUNT milly FOR CREDIT TO ACCOUNT jalil ON 2026-02-21")

	if rec.Terminal() {
		t.Fatalf("expected non-terminal record, got %s: %s", rec.StatusCode, rec.StatusReason)
	}
	if rec.Type != domain.InstructionTypeDebit {
		t.Fatalf("expected type %s, got %s", domain.InstructionTypeDebit, rec.Type)
	}
	if rec.Amount == nil || !rec.Amount.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("expected amount 30, got %v", rec.Amount)
	}
	if rec.Currency != "USD" {
		t.Fatalf("expected currency USD, got %s", rec.Currency)
	}
	if rec.DebitAccount != "milly" || rec.CreditAccount != "jalil" {
		t.Fatalf("expected accounts milly/jalil, got %s/%s", rec.DebitAccount, rec.CreditAccount)
	}
	if rec.ExecuteBy == nil || *rec.ExecuteBy != "2026-02-21" {
		t.Fatalf("expected execute by 2026-02-21, got %v", rec.ExecuteBy)
	}
}

func TestParse_CreditInstructionMapsRoles(t *testing.T) {
	rec := Parse("CREDIT 450 GBP TO ACCOUNT acc-1 FOR DEBIT FROM ACCOUNT acc-2")

	if rec.Terminal() {
		t.Fatalf("expected non-terminal record, got %s: %s", rec.StatusCode, rec.StatusReason)
	}
	if rec.Type != domain.InstructionTypeCredit {
		t.Fatalf("expected type %s, got %s", domain.InstructionTypeCredit, rec.Type)
	}
	if rec.CreditAccount != "acc-1" {
		t.Fatalf("expected credit account acc-1, got %s", rec.CreditAccount)
	}
	if rec.DebitAccount != "acc-2" {
		t.Fatalf("expected debit account acc-2, got %s", rec.DebitAccount)
	}
	if rec.ExecuteBy != nil {
		t.Fatalf("expected no execution date, got %s", *rec.ExecuteBy)
	}
}

func TestParse_KeywordsAreCaseInsensitive(t *testing.T) {
	rec := Parse("debit 30 usd from account Milly for credit to account Jalil")

	if rec.Terminal() {
		t.Fatalf("expected non-terminal record, got %s: %s", rec.StatusCode, rec.StatusReason)
	}
	if rec.Currency != "USD" {
		t.Fatalf("expected currency normalized to USD, got %s", rec.Currency)
	}
	if rec.DebitAccount != "Milly" || rec.CreditAccount != "Jalil" {
		t.Fatalf("expected account ids kept verbatim, got %s/%s", rec.DebitAccount, rec.CreditAccount)
	}
}

func TestParse_MultiTokenAccountIdentifiers(t *testing.T) {
	rec := Parse("DEBIT 500 NGN FROM ACCOUNT main savings FOR CREDIT TO ACCOUNT house fund")

	if rec.Terminal() {
		t.Fatalf("expected non-terminal record, got %s: %s", rec.StatusCode, rec.StatusReason)
	}
	if rec.DebitAccount != "main savings" {
		t.Fatalf("expected debit account %q, got %q", "main savings", rec.DebitAccount)
	}
	if rec.CreditAccount != "house fund" {
		t.Fatalf("expected credit account %q, got %q", "house fund", rec.CreditAccount)
	}
}

func TestParse_FractionalAmountIsLeftToValidation(t *testing.T) {
	rec := Parse("DEBIT 10.5 USD FROM ACCOUNT milly FOR CREDIT TO ACCOUNT jalil")

	if rec.Terminal() {
		t.Fatalf("expected non-terminal record, got %s: %s", rec.StatusCode, rec.StatusReason)
	}
	if rec.Amount == nil || !rec.Amount.Equal(decimal.RequireFromString("10.5")) {
		t.Fatalf("expected amount 10.5, got %v", rec.Amount)
	}
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name        string
		instruction string
		wantCode    domain.StatusCode
	}{
		{
			name:        "empty instruction",
			instruction: "",
			wantCode:    domain.StatusCodeMalformed,
		},
		{
			name:        "whitespace only",
			instruction: "   ",
			wantCode:    domain.StatusCodeMalformed,
		},
		{
			name:        "unknown leading keyword",
			instruction: "TRANSFER 30 USD FROM ACCOUNT milly FOR CREDIT TO ACCOUNT jalil",
			wantCode:    domain.StatusCodeMissingKeyword,
		},
		{
			name:        "too few tokens",
			instruction: "DEBIT 30 USD FROM ACCOUNT milly",
			wantCode:    domain.StatusCodeMalformed,
		},
		{
			name:        "non-numeric amount",
			instruction: "DEBIT thirty USD FROM ACCOUNT milly FOR CREDIT TO ACCOUNT jalil",
			wantCode:    domain.StatusCodeMalformed,
		},
		{
			name:        "wrong keyword after currency",
			instruction: "DEBIT 30 USD INTO ACCOUNT milly FOR CREDIT TO ACCOUNT jalil",
			wantCode:    domain.StatusCodeKeywordOrder,
		},
		{
			name:        "wrong keyword before first account",
			instruction: "DEBIT 30 USD FROM WALLET milly FOR CREDIT TO ACCOUNT jalil",
			wantCode:    domain.StatusCodeKeywordOrder,
		},
		{
			name:        "missing FOR keyword",
			instruction: "DEBIT 30 USD FROM ACCOUNT milly CREDIT TO ACCOUNT jalil extra",
			wantCode:    domain.StatusCodeMissingKeyword,
		},
		{
			name:        "wrong keyword after FOR",
			instruction: "DEBIT 30 USD FROM ACCOUNT milly FOR DEBIT TO ACCOUNT jalil",
			wantCode:    domain.StatusCodeKeywordOrder,
		},
		{
			name:        "wrong keyword in credit continuation",
			instruction: "CREDIT 450 GBP TO ACCOUNT acc-1 FOR DEBIT INTO ACCOUNT acc-2",
			wantCode:    domain.StatusCodeKeywordOrder,
		},
		{
			name:        "missing first account identifier",
			instruction: "DEBIT 30 USD FROM ACCOUNT FOR CREDIT TO ACCOUNT jalil extra",
			wantCode:    domain.StatusCodeMalformed,
		},
		{
			name:        "missing second account identifier",
			instruction: "DEBIT 30 USD FROM ACCOUNT milly FOR CREDIT TO ACCOUNT ON 2026-02-21",
			wantCode:    domain.StatusCodeMalformed,
		},
		{
			name:        "ON without a date",
			instruction: "DEBIT 30 USD FROM ACCOUNT milly FOR CREDIT TO ACCOUNT jalil ON",
			wantCode:    domain.StatusCodeMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Parse(tt.instruction)
			if rec.StatusCode != tt.wantCode {
				t.Fatalf("expected status code %s, got %s (%s)", tt.wantCode, rec.StatusCode, rec.StatusReason)
			}
			if rec.Status != domain.TransactionStatusFailed {
				t.Fatalf("expected status %s, got %s", domain.TransactionStatusFailed, rec.Status)
			}
			if rec.StatusReason == "" {
				t.Fatal("expected a status reason")
			}
		})
	}
}

func TestParse_KeywordOrderKeepsParsedFields(t *testing.T) {
	rec := Parse("DEBIT 30 USD INTO ACCOUNT milly FOR CREDIT TO ACCOUNT jalil")

	if rec.StatusCode != domain.StatusCodeKeywordOrder {
		t.Fatalf("expected status code %s, got %s", domain.StatusCodeKeywordOrder, rec.StatusCode)
	}
	if rec.Type != domain.InstructionTypeDebit {
		t.Fatalf("expected type %s kept, got %s", domain.InstructionTypeDebit, rec.Type)
	}
	if rec.Amount == nil || !rec.Amount.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("expected amount 30 kept, got %v", rec.Amount)
	}
	if rec.Currency != "USD" {
		t.Fatalf("expected currency USD kept, got %s", rec.Currency)
	}
	if rec.DebitAccount != "" {
		t.Fatalf("expected debit account unset, got %s", rec.DebitAccount)
	}
}

func TestParse_ContinuationFailureKeepsFirstAccount(t *testing.T) {
	rec := Parse("DEBIT 30 USD FROM ACCOUNT milly FOR DEBIT TO ACCOUNT jalil")

	if rec.StatusCode != domain.StatusCodeKeywordOrder {
		t.Fatalf("expected status code %s, got %s", domain.StatusCodeKeywordOrder, rec.StatusCode)
	}
	if rec.DebitAccount != "milly" {
		t.Fatalf("expected debit account milly kept, got %q", rec.DebitAccount)
	}
	if rec.CreditAccount != "" {
		t.Fatalf("expected credit account unset, got %q", rec.CreditAccount)
	}
}
