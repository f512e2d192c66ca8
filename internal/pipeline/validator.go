package pipeline

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/payment-instruction-processor/internal/domain"
)

const executeByLayout = "2006-01-02"

var (
	accountIDPattern = regexp.MustCompile(`^[A-Za-z0-9@.-]+$`)
	executeByPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	supportedCurrencies = map[string]struct{}{
		"NGN": {},
		"USD": {},
		"GBP": {},
		"GHS": {},
	}
)

// rules are evaluated top to bottom and stop at the first failure, so the
// order below is part of the external contract.
var rules = []rule{
	{domain.StatusCodeInvalidAmount, (*ruleScope).amountPositiveWhole},
	{domain.StatusCodeUnsupportedCurrency, (*ruleScope).currencySupported},
	{domain.StatusCodeInvalidAccountID, (*ruleScope).debitAccountIDWellFormed},
	{domain.StatusCodeInvalidAccountID, (*ruleScope).creditAccountIDWellFormed},
	{domain.StatusCodeAccountNotFound, (*ruleScope).debitAccountExists},
	{domain.StatusCodeAccountNotFound, (*ruleScope).creditAccountExists},
	{domain.StatusCodeSameAccount, (*ruleScope).accountsDistinct},
	{domain.StatusCodeCurrencyMismatch, (*ruleScope).accountCurrenciesMatch},
	{domain.StatusCodeCurrencyMismatch, (*ruleScope).instructionCurrencyMatchesAccounts},
	{domain.StatusCodeInvalidDate, (*ruleScope).executeByWellFormed},
	{domain.StatusCodeInsufficientFunds, (*ruleScope).fundsSufficient},
}

type rule struct {
	code  domain.StatusCode
	check func(*ruleScope) error
}

// ruleScope carries state between rules: accounts resolved by the existence
// checks and the parsed execution date are reused by later rules.
type ruleScope struct {
	rec      domain.Instruction
	accounts []domain.Account
	today    time.Time

	debit     domain.Account
	credit    domain.Account
	executeAt *time.Time
}

// Validate applies the business rules to a parsed record against the account
// snapshot. Terminal records pass through untouched. now feeds the
// future-date decision, which works at UTC calendar granularity.
func Validate(in domain.Instruction, accounts []domain.Account, now time.Time) domain.Instruction {
	if in.Terminal() {
		return in
	}

	scope := &ruleScope{rec: in, accounts: accounts, today: utcDate(now)}
	for _, r := range rules {
		if err := r.check(scope); err != nil {
			return in.Fail(r.code, err.Error())
		}
	}

	if scope.futureDated() {
		return in.Finalize(domain.TransactionStatusPending, domain.StatusCodePendingExecution,
			fmt.Sprintf("transaction scheduled for execution on %s", *in.ExecuteBy))
	}
	return in.Finalize(domain.TransactionStatusSuccessful, domain.StatusCodeApproved,
		"transaction executed successfully")
}

func (s *ruleScope) amountPositiveWhole() error {
	if s.rec.Amount == nil || !s.rec.Amount.IsPositive() || !s.rec.Amount.IsInteger() {
		return errors.New("amount must be a positive whole number")
	}
	return nil
}

func (s *ruleScope) currencySupported() error {
	if _, ok := supportedCurrencies[s.rec.Currency]; !ok {
		return fmt.Errorf("currency %s is not supported", s.rec.Currency)
	}
	return nil
}

func (s *ruleScope) debitAccountIDWellFormed() error {
	if !accountIDPattern.MatchString(s.rec.DebitAccount) {
		return fmt.Errorf("debit account identifier %q is invalid", s.rec.DebitAccount)
	}
	return nil
}

func (s *ruleScope) creditAccountIDWellFormed() error {
	if !accountIDPattern.MatchString(s.rec.CreditAccount) {
		return fmt.Errorf("credit account identifier %q is invalid", s.rec.CreditAccount)
	}
	return nil
}

func (s *ruleScope) debitAccountExists() error {
	acc, ok := findAccount(s.accounts, s.rec.DebitAccount)
	if !ok {
		return fmt.Errorf("debit account %s not found", s.rec.DebitAccount)
	}
	s.debit = acc
	return nil
}

func (s *ruleScope) creditAccountExists() error {
	acc, ok := findAccount(s.accounts, s.rec.CreditAccount)
	if !ok {
		return fmt.Errorf("credit account %s not found", s.rec.CreditAccount)
	}
	s.credit = acc
	return nil
}

func (s *ruleScope) accountsDistinct() error {
	if s.rec.DebitAccount == s.rec.CreditAccount {
		return errors.New("debit and credit accounts must differ")
	}
	return nil
}

func (s *ruleScope) accountCurrenciesMatch() error {
	if s.debit.Currency != s.credit.Currency {
		return fmt.Errorf("accounts %s and %s hold different currencies",
			s.rec.DebitAccount, s.rec.CreditAccount)
	}
	return nil
}

func (s *ruleScope) instructionCurrencyMatchesAccounts() error {
	if s.rec.Currency != s.debit.Currency {
		return fmt.Errorf("instruction currency %s does not match account currency %s",
			s.rec.Currency, s.debit.Currency)
	}
	return nil
}

func (s *ruleScope) executeByWellFormed() error {
	if s.rec.ExecuteBy == nil {
		return nil
	}
	raw := *s.rec.ExecuteBy
	if !executeByPattern.MatchString(raw) {
		return fmt.Errorf("execution date %q is not a valid date", raw)
	}
	parsed, err := time.ParseInLocation(executeByLayout, raw, time.UTC)
	if err != nil || parsed.Format(executeByLayout) != raw {
		return fmt.Errorf("execution date %q is not a valid calendar date", raw)
	}
	s.executeAt = &parsed
	return nil
}

// Funds are not checked for future-dated transactions; those settle whenever
// they execute, against balances as of that day.
func (s *ruleScope) fundsSufficient() error {
	if s.futureDated() {
		return nil
	}
	if decimal.NewFromInt(s.debit.Balance).LessThan(*s.rec.Amount) {
		return fmt.Errorf("insufficient funds in account %s", s.rec.DebitAccount)
	}
	return nil
}

func (s *ruleScope) futureDated() bool {
	return s.executeAt != nil && s.executeAt.After(s.today)
}

func utcDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
