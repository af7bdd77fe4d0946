package ledger

import "github.com/shopspring/decimal"

// Number is a decimal that marshals as a bare JSON number. Account
// balances arrive and leave as JSON numbers on the wire, so the default
// quoted decimal encoding cannot be used. Decimal arithmetic keeps
// fractional balances exact where binary floats would drift.
type Number struct {
	decimal.Decimal
}

// NumberFromInt returns v as a Number.
func NumberFromInt(v int64) Number {
	return Number{decimal.NewFromInt(v)}
}

// NumberFromFloat returns v as a Number.
func NumberFromFloat(v float64) Number {
	return Number{decimal.NewFromFloat(v)}
}

// MarshalJSON encodes the number without quotes.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.String()), nil
}

// Sub returns n - other.
func (n Number) Sub(other Number) Number {
	return Number{n.Decimal.Sub(other.Decimal)}
}

// Add returns n + other.
func (n Number) Add(other Number) Number {
	return Number{n.Decimal.Add(other.Decimal)}
}

// LessThan reports whether n < other.
func (n Number) LessThan(other Number) bool {
	return n.Decimal.LessThan(other.Decimal)
}
