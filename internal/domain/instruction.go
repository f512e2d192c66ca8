package domain

import "github.com/shopspring/decimal"

type InstructionType string

const (
	InstructionTypeDebit  InstructionType = "DEBIT"
	InstructionTypeCredit InstructionType = "CREDIT"
)

// Instruction is the record threaded through the processing stages. Fields
// are filled in as far as parsing got; a set StatusCode marks the record
// terminal and later stages pass it through untouched.
type Instruction struct {
	Type          InstructionType
	Amount        *decimal.Decimal
	Currency      string
	DebitAccount  string
	CreditAccount string
	ExecuteBy     *string
	Status        TransactionStatus
	StatusCode    StatusCode
	StatusReason  string
}

func (i Instruction) Terminal() bool {
	return i.StatusCode != ""
}

// Fail returns a failed copy of the record; the receiver is not modified.
func (i Instruction) Fail(code StatusCode, reason string) Instruction {
	i.Status = TransactionStatusFailed
	i.StatusCode = code
	i.StatusReason = reason
	return i
}

func (i Instruction) Finalize(status TransactionStatus, code StatusCode, reason string) Instruction {
	i.Status = status
	i.StatusCode = code
	i.StatusReason = reason
	return i
}

// Transaction is the terminal outcome: the finished record plus the view of
// the accounts the instruction touched, debit side first.
type Transaction struct {
	Instruction
	Accounts []AccountBalance
}
