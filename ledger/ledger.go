// Package ledger validates parsed payment instructions against a set of
// accounts and computes the resulting balances.
//
// The package implements the two stages that follow parsing: business-rule
// validation (distinct accounts, account existence, currency support and
// match, sufficient funds) and execution (applying the debit and credit
// deltas, or deferring them when the execute-by date lies in the future).
// Process ties all three stages together and folds any coded failure into
// the uniform response shape.
//
// A Ledger holds no state between invocations. Concurrent Process calls
// are safe as long as each receives its own account slice; the caller's
// accounts are never mutated, execution returns a fresh projection.
//
// Example usage:
//
//	l := ledger.New()
//	resp, err := l.Process(ctx, "DEBIT 100 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1", accounts)
//	if err != nil {
//	    // internal fault, not a coded domain failure
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.Status, resp.StatusCode)
package ledger

import "time"

// Ledger processes payment instructions against caller-supplied accounts.
type Ledger struct {
	now func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the clock used to decide whether an execute-by date
// lies in the future. The default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// New creates a Ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}
