// Package pipeline turns a natural-language payment instruction plus an
// account snapshot into a transaction outcome. Three pure stages run in a
// fixed order: Parse, Validate, Execute. Every outcome is a value; nothing
// here performs I/O or mutates its inputs.
package pipeline

import (
	"time"

	"github.com/api-sage/payment-instruction-processor/internal/domain"
)

type Pipeline struct {
	now func() time.Time
}

func New() *Pipeline {
	return &Pipeline{now: time.Now}
}

// NewWithClock pins the clock that feeds future-date decisions. Tests use it
// to make pending-versus-executed outcomes deterministic.
func NewWithClock(now func() time.Time) *Pipeline {
	return &Pipeline{now: now}
}

// Process composes the three stages and returns the executor's result
// verbatim.
func (p *Pipeline) Process(instruction string, accounts []domain.Account) domain.Transaction {
	rec := Parse(instruction)
	rec = Validate(rec, accounts, p.now())
	return Execute(rec, accounts)
}

func findAccount(accounts []domain.Account, id string) (domain.Account, bool) {
	for _, acc := range accounts {
		if acc.AccountID == id {
			return acc, true
		}
	}
	return domain.Account{}, false
}
