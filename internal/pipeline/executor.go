package pipeline

import (
	"strings"

	"github.com/api-sage/payment-instruction-processor/internal/domain"
)

// Execute projects the finished record onto the account snapshot. The
// snapshot is never modified; balances move only when the transaction
// executed. The view lists the debit side first, then the credit side, and
// holds whichever of the two resolved against the snapshot.
func Execute(in domain.Instruction, accounts []domain.Account) domain.Transaction {
	view := make([]domain.AccountBalance, 0, 2)
	for _, id := range involvedAccountIDs(in) {
		acc, ok := findAccount(accounts, id)
		if !ok {
			continue
		}
		view = append(view, domain.AccountBalance{
			AccountID:     acc.AccountID,
			Balance:       acc.Balance,
			BalanceBefore: acc.Balance,
			Currency:      strings.ToUpper(acc.Currency),
		})
	}

	if in.Status == domain.TransactionStatusSuccessful {
		amount := in.Amount.IntPart()
		for i := range view {
			switch view[i].AccountID {
			case in.DebitAccount:
				view[i].Balance -= amount
			case in.CreditAccount:
				view[i].Balance += amount
			}
		}
	}

	return domain.Transaction{Instruction: in, Accounts: view}
}

func involvedAccountIDs(in domain.Instruction) []string {
	ids := make([]string, 0, 2)
	if in.DebitAccount != "" {
		ids = append(ids, in.DebitAccount)
	}
	if in.CreditAccount != "" && in.CreditAccount != in.DebitAccount {
		ids = append(ids, in.CreditAccount)
	}
	return ids
}
