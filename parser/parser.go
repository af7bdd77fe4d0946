// Package parser interprets free-text payment instructions.
//
// An instruction is a single fixed-grammar sentence of one of two shapes:
//
//	DEBIT <amount> <currency> FROM ACCOUNT <id> FOR CREDIT TO ACCOUNT <id> [ON YYYY-MM-DD]
//	CREDIT <amount> <currency> TO ACCOUNT <id> FOR DEBIT FROM ACCOUNT <id> [ON YYYY-MM-DD]
//
// Keywords are matched case-insensitively and in strict left-to-right
// order; account identifiers keep their original casing. Every failure is
// one of the typed errors in this package, each carrying a stable status
// code. Parsing is pure: the same input always yields the same result.
package parser

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Instruction is the structured form of a payment instruction. It is
// immutable once built. Both account identifiers are guaranteed present
// and free of forbidden characters; whether they refer to distinct,
// existing accounts is checked downstream by the ledger package.
type Instruction struct {
	Type          TxnType
	Amount        int64
	Currency      string
	DebitAccount  string
	CreditAccount string

	// ExecuteBy is the optional execution date in YYYY-MM-DD shape, empty
	// when the instruction carries no date. The shape is validated here but
	// not whether it names a real calendar date.
	ExecuteBy string
}

// invalidIDChars lists the characters an account identifier may not
// contain. Violations are searched character by character in this order,
// checking the debit identifier before the credit one for each character.
const invalidIDChars = "#$%&*()+=[]{}|\\:;'\"<>?,`~!"

// Parse interprets a payment instruction. On failure it returns one of the
// typed errors in this package; the first violated rule wins.
func Parse(instruction string) (*Instruction, error) {
	toks := lex(instruction)

	var txnType TxnType
	if len(toks.original) > 0 {
		txnType = TxnType(strings.ToUpper(toks.original[0]))
	}
	if !slices.Contains([]TxnType{Debit, Credit}, txnType) {
		return nil, &MissingKeywordError{}
	}

	if len(toks.original) < minTokens {
		return nil, &MissingKeywordError{}
	}

	lastKeyword, err := toks.matchKeywords(txnType)
	if err != nil {
		return nil, err
	}

	offsets := accountOffsets[txnType]
	inst := &Instruction{
		Type:          txnType,
		DebitAccount:  toks.original[offsets.debit],
		CreditAccount: toks.original[offsets.credit],
	}

	rawAmount := toks.original[amountOffset]
	amount, err := strconv.ParseInt(rawAmount, 10, 64)
	if err != nil || amount <= 0 {
		return nil, &InvalidAmountError{Amount: rawAmount}
	}
	inst.Amount = amount
	inst.Currency = strings.ToUpper(toks.original[currencyOffset])

	executeBy, err := toks.executeDate(lastKeyword)
	if err != nil {
		return nil, err
	}
	inst.ExecuteBy = executeBy

	for _, ch := range invalidIDChars {
		if strings.ContainsRune(inst.DebitAccount, ch) {
			return nil, &InvalidAccountIDError{AccountID: inst.DebitAccount}
		}
		if strings.ContainsRune(inst.CreditAccount, ch) {
			return nil, &InvalidAccountIDError{AccountID: inst.CreditAccount}
		}
	}

	return inst, nil
}

// executeDate extracts the optional "on <date>" clause. The "on" keyword is
// searched after the last matched template keyword; when present, the next
// token must be 10 characters with the first dash at index 4 and the last
// at index 7. The date token is returned lower-cased, like all keyword-side
// token handling.
func (t *tokens) executeDate(lastKeyword int) (string, error) {
	onIdx := indexFrom(t.lower, "on", lastKeyword+1)
	if onIdx == -1 {
		return "", nil
	}

	if onIdx+1 >= len(t.lower) {
		return "", &InvalidDateError{Date: "N/A"}
	}

	date := t.lower[onIdx+1]
	if len(date) != 10 || strings.Index(date, "-") != 4 || strings.LastIndex(date, "-") != 7 {
		return "", &InvalidDateError{Date: date}
	}

	return date, nil
}
