package parser

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseDebitInstruction(t *testing.T) {
	inst, err := Parse("DEBIT 100 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1")
	assert.NoError(t, err)

	assert.Equal(t, Debit, inst.Type)
	assert.Equal(t, int64(100), inst.Amount)
	assert.Equal(t, "USD", inst.Currency)
	assert.Equal(t, "A1", inst.DebitAccount)
	assert.Equal(t, "B1", inst.CreditAccount)
	assert.Equal(t, "", inst.ExecuteBy)
}

func TestParseCreditInstruction(t *testing.T) {
	// The credit-first template mentions the credit account first; the
	// debit account sits at the second fixed offset.
	inst, err := Parse("CREDIT 100 USD TO ACCOUNT B1 FOR DEBIT FROM ACCOUNT A1")
	assert.NoError(t, err)

	assert.Equal(t, Credit, inst.Type)
	assert.Equal(t, int64(100), inst.Amount)
	assert.Equal(t, "USD", inst.Currency)
	assert.Equal(t, "A1", inst.DebitAccount)
	assert.Equal(t, "B1", inst.CreditAccount)
}

func TestParseIsCaseInsensitiveForKeywords(t *testing.T) {
	inst, err := Parse("debit 50 ngn from account Alice-01 for credit to account Bob_02")
	assert.NoError(t, err)

	assert.Equal(t, Debit, inst.Type)
	assert.Equal(t, "NGN", inst.Currency)
	assert.Equal(t, "Alice-01", inst.DebitAccount)
	assert.Equal(t, "Bob_02", inst.CreditAccount)
}

func TestParseExecuteBy(t *testing.T) {
	t.Run("date present", func(t *testing.T) {
		inst, err := Parse("DEBIT 100 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1 ON 2030-03-01")
		assert.NoError(t, err)
		assert.Equal(t, "2030-03-01", inst.ExecuteBy)
	})

	t.Run("date absent", func(t *testing.T) {
		inst, err := Parse("DEBIT 100 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1")
		assert.NoError(t, err)
		assert.Equal(t, "", inst.ExecuteBy)
	})

	t.Run("shape is checked but not the calendar", func(t *testing.T) {
		inst, err := Parse("DEBIT 100 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1 ON 9999-99-99")
		assert.NoError(t, err)
		assert.Equal(t, "9999-99-99", inst.ExecuteBy)
	})
}

func TestParseMissingKeyword(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown first keyword", "SEND 100 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1"},
		{"empty instruction", ""},
		{"too few tokens", "DEBIT 100 USD FROM ACCOUNT A1"},
		{"missing for keyword", "DEBIT 100 USD FROM ACCOUNT A1 CREDIT TO ACCOUNT B1 extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)

			var missing *MissingKeywordError
			assert.True(t, errors.As(err, &missing), "expected MissingKeywordError, got %v", err)
			assert.Equal(t, CodeMissingKeyword, missing.Code())
			assert.Equal(t, "Missing required keyword in instruction.", missing.Error())
		})
	}
}

func TestKeywordOrderErrorMessage(t *testing.T) {
	err := &KeywordOrderError{Type: Credit}
	assert.Equal(t, CodeKeywordOrder, err.Code())
	assert.Equal(t, "Keywords are in the wrong order for transaction type: CREDIT.", err.Error())
}

func TestParseInvalidAmount(t *testing.T) {
	tests := []struct {
		amount string
	}{
		{"-5"},
		{"3.5"},
		{"0"},
		{"1e3"},
		{"abc"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			_, err := Parse("DEBIT " + tt.amount + " USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1")

			var invalid *InvalidAmountError
			assert.True(t, errors.As(err, &invalid), "expected InvalidAmountError, got %v", err)
			assert.Equal(t, CodeInvalidAmount, invalid.Code())
			assert.Equal(t, "Amount must be a positive integer, received: "+tt.amount+".", invalid.Error())
		})
	}
}

func TestParseInvalidDate(t *testing.T) {
	t.Run("wrong separator", func(t *testing.T) {
		_, err := Parse("DEBIT 100 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1 ON 2025/03/01")

		var invalid *InvalidDateError
		assert.True(t, errors.As(err, &invalid), "expected InvalidDateError, got %v", err)
		assert.Equal(t, CodeInvalidDate, invalid.Code())
		assert.Equal(t, "Date must be in YYYY-MM-DD format, received: 2025/03/01.", invalid.Error())
	})

	t.Run("too short", func(t *testing.T) {
		_, err := Parse("DEBIT 100 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1 ON 2025-3-1")

		var invalid *InvalidDateError
		assert.True(t, errors.As(err, &invalid), "expected InvalidDateError, got %v", err)
	})

	t.Run("on without a date", func(t *testing.T) {
		_, err := Parse("DEBIT 100 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1 ON")

		var invalid *InvalidDateError
		assert.True(t, errors.As(err, &invalid), "expected InvalidDateError, got %v", err)
		assert.Equal(t, "Date must be in YYYY-MM-DD format, received: N/A.", invalid.Error())
	})
}

func TestParseInvalidAccountID(t *testing.T) {
	t.Run("debit account", func(t *testing.T) {
		_, err := Parse("DEBIT 100 USD FROM ACCOUNT A#1 FOR CREDIT TO ACCOUNT B1")

		var invalid *InvalidAccountIDError
		assert.True(t, errors.As(err, &invalid), "expected InvalidAccountIDError, got %v", err)
		assert.Equal(t, CodeInvalidAccountID, invalid.Code())
		assert.Equal(t, "Invalid account ID format: A#1 contains unsupported characters.", invalid.Error())
	})

	t.Run("character order decides which account is named", func(t *testing.T) {
		// '#' precedes '%' in the forbidden set, and each character is
		// checked against both identifiers before moving on. The credit
		// account carries the '#', so it is reported even though the debit
		// account is also invalid.
		_, err := Parse("DEBIT 100 USD FROM ACCOUNT A%1 FOR CREDIT TO ACCOUNT B#1")

		var invalid *InvalidAccountIDError
		assert.True(t, errors.As(err, &invalid), "expected InvalidAccountIDError, got %v", err)
		assert.Equal(t, "B#1", invalid.AccountID)
	})
}

func TestParseFixedAccountOffsets(t *testing.T) {
	// Keyword matching and account extraction are deliberately decoupled:
	// an extra token shifts the accounts away from the matched keywords,
	// and the identifiers are still read from offsets 5 and 10 verbatim.
	inst, err := Parse("DEBIT 100 USD FROM x ACCOUNT A1 FOR CREDIT TO ACCOUNT B1")
	assert.NoError(t, err)

	assert.Equal(t, "ACCOUNT", inst.DebitAccount)
	assert.Equal(t, "ACCOUNT", inst.CreditAccount)
}

func TestParseIsIdempotent(t *testing.T) {
	const input = "CREDIT 250 GBP TO ACCOUNT acct-9 FOR DEBIT FROM ACCOUNT acct-7 ON 2031-12-31"

	first, err := Parse(input)
	assert.NoError(t, err)
	second, err := Parse(input)
	assert.NoError(t, err)

	assert.Equal(t, *first, *second)
}

func BenchmarkParse(b *testing.B) {
	const input = "DEBIT 100 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1 ON 2030-03-01"

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(input); err != nil {
			b.Fatal(err)
		}
	}
}
