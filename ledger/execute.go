package ledger

import (
	"fmt"
	"time"
)

// Stable status codes for executed transactions.
const (
	CodeSuccessful = "AP00"
	CodePending    = "AP02"
)

// Status values reported on a processed transaction.
const (
	StatusSuccessful = "successful"
	StatusPending    = "pending"
	StatusFailed     = "failed"
)

const (
	reasonSuccessful = "Transaction executed successfully."
	reasonPending    = "Transaction scheduled for future execution on %s."
)

// AccountState is the before/after balance projection of one account.
type AccountState struct {
	ID            string `json:"id"`
	Balance       Number `json:"balance"`
	BalanceBefore Number `json:"balance_before"`
	Currency      string `json:"currency"`
}

// Result is the outcome of executing a validated transaction.
type Result struct {
	Status       string
	StatusCode   string
	StatusReason string
	Accounts     []AccountState
}

// Execute applies or defers a validated transaction. Execution has no
// failure path: every rule has been checked by this point. The caller's
// account list is left untouched; the result carries a fresh projection
// restricted to the debit and credit accounts, in their original list
// order.
//
// The transaction is deferred when its execute-by date falls strictly
// after today's UTC calendar date. A deferred transaction changes no
// balances; the projection then shows the unchanged values.
func (l *Ledger) Execute(v *Validated, accounts []Account) *Result {
	res := &Result{
		Status:       StatusSuccessful,
		StatusCode:   CodeSuccessful,
		StatusReason: reasonSuccessful,
		Accounts:     []AccountState{},
	}

	pending := v.ExecuteBy != "" && l.isFuture(v.ExecuteBy)
	if pending {
		res.Status = StatusPending
		res.StatusCode = CodePending
		res.StatusReason = fmt.Sprintf(reasonPending, v.ExecuteBy)
	}

	amount := NumberFromInt(v.Amount)
	for _, acc := range accounts {
		if acc.ID != v.Debit.ID && acc.ID != v.Credit.ID {
			continue
		}

		state := AccountState{
			ID:            acc.ID,
			Balance:       acc.Balance,
			BalanceBefore: acc.Balance,
			Currency:      acc.Currency,
		}
		if !pending {
			switch acc.ID {
			case v.Debit.ID:
				state.Balance = acc.Balance.Sub(amount)
			case v.Credit.ID:
				state.Balance = acc.Balance.Add(amount)
			}
		}

		res.Accounts = append(res.Accounts, state)
	}

	return res
}

// isFuture reports whether the execute-by date falls strictly after
// today's UTC calendar date. A date that passed the shape check but does
// not name a real calendar date never compares as future, so such
// transactions execute immediately.
func (l *Ledger) isFuture(executeBy string) bool {
	execDate, err := time.Parse("2006-01-02", executeBy)
	if err != nil {
		return false
	}

	now := l.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return execDate.After(today)
}
