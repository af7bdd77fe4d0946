// Package paylex interprets structured payment instructions.
//
// An instruction is a single sentence describing a transfer between two
// accounts, for example:
//
//	DEBIT 100 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1 ON 2025-01-31
//
// The package-level functions are conveniences over the parser and
// ledger packages, which hold the actual pipeline.
package paylex

import (
	"context"

	"github.com/paylexhq/paylex/ledger"
	"github.com/paylexhq/paylex/parser"
)

// Parse interprets an instruction without validating or executing it.
func Parse(instruction string) (*parser.Instruction, error) {
	return parser.Parse(instruction)
}

// Process parses, validates and executes an instruction against the
// given account set, returning the uniform transaction response.
func Process(ctx context.Context, instruction string, accounts []ledger.Account) (*ledger.Response, error) {
	return ledger.New().Process(ctx, instruction, accounts)
}
