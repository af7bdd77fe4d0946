package ledger

import (
	"fmt"

	"github.com/paylexhq/paylex/parser"
)

// Stable status codes for business-rule failures.
const (
	CodeInsufficientFunds   = "AC01"
	CodeSameAccount         = "AC02"
	CodeAccountNotFound     = "AC03"
	CodeCurrencyMismatch    = "CU01"
	CodeUnsupportedCurrency = "CU02"
)

// SameAccountError is returned when the debit and credit identifiers are
// identical.
type SameAccountError struct{}

var _ parser.Error = (*SameAccountError)(nil)

func (e *SameAccountError) Error() string {
	return "Debit and credit accounts cannot be the same."
}

func (e *SameAccountError) Code() string { return CodeSameAccount }

// AccountNotFoundError is returned when an identifier resolves to no
// account in the supplied list.
type AccountNotFoundError struct {
	AccountID string
}

var _ parser.Error = (*AccountNotFoundError)(nil)

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("Account with ID %s not found in the provided account list.", e.AccountID)
}

func (e *AccountNotFoundError) Code() string { return CodeAccountNotFound }

// UnsupportedCurrencyError is returned when the instruction currency is
// outside the supported set.
type UnsupportedCurrencyError struct {
	Currency string
}

var _ parser.Error = (*UnsupportedCurrencyError)(nil)

func (e *UnsupportedCurrencyError) Error() string {
	return fmt.Sprintf("Unsupported currency: %s. Only NGN, USD, GBP, and GHS are supported.", e.Currency)
}

func (e *UnsupportedCurrencyError) Code() string { return CodeUnsupportedCurrency }

// CurrencyMismatchError is returned when either resolved account holds a
// currency different from the instruction's.
type CurrencyMismatchError struct {
	Currency string
}

var _ parser.Error = (*CurrencyMismatchError)(nil)

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("Transaction currency (%s) does not match one or more account currencies.", e.Currency)
}

func (e *CurrencyMismatchError) Code() string { return CodeCurrencyMismatch }

// InsufficientFundsError is returned when the debit account balance is
// below the transaction amount. Shortage is the integer gap between the
// amount and the balance.
type InsufficientFundsError struct {
	AccountID string
	Balance   Number
	Currency  string
	Shortage  int64
}

var _ parser.Error = (*InsufficientFundsError)(nil)

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("Insufficient funds in debit account %s: has %s %s, needs %d.",
		e.AccountID, e.Balance, e.Currency, e.Shortage)
}

func (e *InsufficientFundsError) Code() string { return CodeInsufficientFunds }
