package parser

import "strings"

// tokens holds the two views of a normalized instruction. Keyword matching
// and date detection run against the lower-cased view while account
// identifiers keep their original casing.
type tokens struct {
	original []string
	lower    []string
}

// lex trims the instruction, collapses whitespace runs to single
// separators and splits the result into tokens. It never fails; an empty
// or all-whitespace instruction simply yields no tokens.
func lex(instruction string) *tokens {
	original := strings.Fields(instruction)

	lower := make([]string, len(original))
	for i, tok := range original {
		lower[i] = strings.ToLower(tok)
	}

	return &tokens{original: original, lower: lower}
}

// matchKeywords validates the ordered presence of the template keywords for
// the given transaction type and returns the index of the last match. Each
// keyword is located at its first occurrence at or after the position
// following the previous match; a keyword that cannot be found fails with
// SY01, one found at or before the previous match fails with SY02.
func (t *tokens) matchKeywords(txnType TxnType) (int, error) {
	last := -1
	searchFrom := 0

	for _, keyword := range keywordTemplates[txnType] {
		idx := indexFrom(t.lower, keyword, searchFrom)
		if idx == -1 {
			return 0, &MissingKeywordError{}
		}
		if idx <= last {
			return 0, &KeywordOrderError{Type: txnType}
		}

		last = idx
		searchFrom = idx + 1
	}

	return last, nil
}

// indexFrom returns the index of the first occurrence of word in toks at or
// after from, or -1 when absent.
func indexFrom(toks []string, word string, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(toks); i++ {
		if toks[i] == word {
			return i
		}
	}
	return -1
}
