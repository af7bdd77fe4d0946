package parser

import "fmt"

// Stable status codes reported for instruction failures. They are part of
// the wire contract and must not change.
const (
	CodeMissingKeyword   = "SY01"
	CodeKeywordOrder     = "SY02"
	CodeMalformed        = "SY03"
	CodeInvalidAmount    = "AM01"
	CodeInvalidDate      = "DT01"
	CodeInvalidAccountID = "AC04"
)

// Error is implemented by every coded failure raised while interpreting an
// instruction: the syntax errors in this package and the business-rule
// errors in the ledger package. The code is stable; the message is rendered
// from the structured fields of the concrete error type.
type Error interface {
	error

	// Code returns the stable status code for this failure.
	Code() string
}

// MissingKeywordError is returned when the instruction lacks a required
// keyword or is too short to contain the full template.
type MissingKeywordError struct{}

var _ Error = (*MissingKeywordError)(nil)

func (e *MissingKeywordError) Error() string {
	return "Missing required keyword in instruction."
}

func (e *MissingKeywordError) Code() string { return CodeMissingKeyword }

// KeywordOrderError is returned when a template keyword is found out of
// order for the transaction type.
type KeywordOrderError struct {
	Type TxnType
}

var _ Error = (*KeywordOrderError)(nil)

func (e *KeywordOrderError) Error() string {
	return fmt.Sprintf("Keywords are in the wrong order for transaction type: %s.", e.Type)
}

func (e *KeywordOrderError) Code() string { return CodeKeywordOrder }

// InvalidAmountError is returned when the amount token is not a strictly
// positive base-10 integer. Amount carries the offending token verbatim.
type InvalidAmountError struct {
	Amount string
}

var _ Error = (*InvalidAmountError)(nil)

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("Amount must be a positive integer, received: %s.", e.Amount)
}

func (e *InvalidAmountError) Code() string { return CodeInvalidAmount }

// InvalidDateError is returned when the token following "on" does not have
// the YYYY-MM-DD shape. Date is "N/A" when the token was absent entirely.
type InvalidDateError struct {
	Date string
}

var _ Error = (*InvalidDateError)(nil)

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("Date must be in YYYY-MM-DD format, received: %s.", e.Date)
}

func (e *InvalidDateError) Code() string { return CodeInvalidDate }

// InvalidAccountIDError is returned when an account identifier contains a
// character outside the permitted set.
type InvalidAccountIDError struct {
	AccountID string
}

var _ Error = (*InvalidAccountIDError)(nil)

func (e *InvalidAccountIDError) Error() string {
	return fmt.Sprintf("Invalid account ID format: %s contains unsupported characters.", e.AccountID)
}

func (e *InvalidAccountIDError) Code() string { return CodeInvalidAccountID }
