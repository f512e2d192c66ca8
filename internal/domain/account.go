package domain

type Account struct {
	AccountID string
	Balance   int64
	Currency  string
}

// AccountBalance is one entry of the post-execution account view.
// BalanceBefore equals Balance unless the transaction executed.
type AccountBalance struct {
	AccountID     string
	Balance       int64
	BalanceBefore int64
	Currency      string
}
