package domain

type TransactionStatus string

const (
	TransactionStatusSuccessful TransactionStatus = "successful"
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusFailed     TransactionStatus = "failed"
)

// StatusCode values are a stable external contract; callers branch on them.
type StatusCode string

const (
	StatusCodeApproved            StatusCode = "AP00"
	StatusCodePendingExecution    StatusCode = "AP02"
	StatusCodeInvalidAmount       StatusCode = "AM01"
	StatusCodeCurrencyMismatch    StatusCode = "CU01"
	StatusCodeUnsupportedCurrency StatusCode = "CU02"
	StatusCodeInsufficientFunds   StatusCode = "AC01"
	StatusCodeSameAccount         StatusCode = "AC02"
	StatusCodeAccountNotFound     StatusCode = "AC03"
	StatusCodeInvalidAccountID    StatusCode = "AC04"
	StatusCodeInvalidDate         StatusCode = "DT01"
	StatusCodeMissingKeyword      StatusCode = "SY01"
	StatusCodeKeywordOrder        StatusCode = "SY02"
	StatusCodeMalformed           StatusCode = "SY03"
)
