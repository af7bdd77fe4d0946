package parser

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLexNormalizesWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single spaces",
			input: "DEBIT 100 USD",
			want:  []string{"DEBIT", "100", "USD"},
		},
		{
			name:  "runs of spaces",
			input: "DEBIT   100    USD",
			want:  []string{"DEBIT", "100", "USD"},
		},
		{
			name:  "leading and trailing whitespace",
			input: "  DEBIT 100 USD  ",
			want:  []string{"DEBIT", "100", "USD"},
		},
		{
			name:  "tabs and newlines",
			input: "DEBIT\t100\nUSD",
			want:  []string{"DEBIT", "100", "USD"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
		{
			name:  "whitespace only",
			input: "   \t\n  ",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lex(tt.input)
			assert.Equal(t, len(tt.want), len(toks.original))
			for i, want := range tt.want {
				assert.Equal(t, want, toks.original[i])
			}
		})
	}
}

func TestLexKeepsBothCaseViews(t *testing.T) {
	toks := lex("Debit 100 usd FROM Account AliCe-01")

	assert.Equal(t, "Debit", toks.original[0])
	assert.Equal(t, "debit", toks.lower[0])
	assert.Equal(t, "AliCe-01", toks.original[5])
	assert.Equal(t, "alice-01", toks.lower[5])
}

func TestMatchKeywordsOrderedWalk(t *testing.T) {
	t.Run("canonical debit instruction", func(t *testing.T) {
		toks := lex("DEBIT 100 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1")
		last, err := toks.matchKeywords(Debit)
		assert.NoError(t, err)
		assert.Equal(t, 9, last)
	})

	t.Run("canonical credit instruction", func(t *testing.T) {
		toks := lex("CREDIT 100 USD TO ACCOUNT B1 FOR DEBIT FROM ACCOUNT A1")
		last, err := toks.matchKeywords(Credit)
		assert.NoError(t, err)
		assert.Equal(t, 9, last)
	})

	t.Run("missing keyword", func(t *testing.T) {
		toks := lex("DEBIT 100 USD FROM ACCOUNT A1 CREDIT TO ACCOUNT B1 x")
		_, err := toks.matchKeywords(Debit)

		var missing *MissingKeywordError
		assert.True(t, errors.As(err, &missing), "expected MissingKeywordError, got %v", err)
	})

	t.Run("keywords of the other template", func(t *testing.T) {
		// A credit-ordered sentence walked with the debit template runs out
		// of matches for the trailing keywords.
		toks := lex("CREDIT 100 USD TO ACCOUNT B1 FOR DEBIT FROM ACCOUNT A1")
		_, err := toks.matchKeywords(Debit)

		var missing *MissingKeywordError
		assert.True(t, errors.As(err, &missing), "expected MissingKeywordError, got %v", err)
	})
}

func TestIndexFrom(t *testing.T) {
	toks := []string{"a", "b", "a", "c"}

	assert.Equal(t, 0, indexFrom(toks, "a", 0))
	assert.Equal(t, 2, indexFrom(toks, "a", 1))
	assert.Equal(t, -1, indexFrom(toks, "a", 3))
	assert.Equal(t, -1, indexFrom(toks, "z", 0))
	assert.Equal(t, 0, indexFrom(toks, "a", -2))
}
