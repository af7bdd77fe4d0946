package ledger

import "github.com/paylexhq/paylex/parser"

// Validated couples a parsed instruction with the account records it
// resolved against.
type Validated struct {
	*parser.Instruction

	// Debit and Credit point into the account list Validate was given.
	Debit  *Account
	Credit *Account
}

// Validate checks the business rules for a parsed instruction. The order
// of the checks is part of the contract: when several rules are violated
// at once, the first one in this sequence is the one reported.
//
//  1. The debit and credit identifiers must differ (compared exactly as
//     written, before any case normalization).
//  2. Both identifiers must resolve to accounts, matched case-insensitively;
//     the debit account is resolved first.
//  3. The instruction currency must be supported.
//  4. Both accounts must hold the instruction currency.
//  5. The debit account balance must cover the amount. This runs even for
//     transactions that will be deferred; a deferred transaction is still
//     rejected when today's balance is short.
func (l *Ledger) Validate(inst *parser.Instruction, accounts []Account) (*Validated, error) {
	if inst.DebitAccount == inst.CreditAccount {
		return nil, &SameAccountError{}
	}

	debit := findAccount(accounts, inst.DebitAccount)
	if debit == nil {
		return nil, &AccountNotFoundError{AccountID: inst.DebitAccount}
	}
	credit := findAccount(accounts, inst.CreditAccount)
	if credit == nil {
		return nil, &AccountNotFoundError{AccountID: inst.CreditAccount}
	}

	if _, ok := supportedCurrencies[inst.Currency]; !ok {
		return nil, &UnsupportedCurrencyError{Currency: inst.Currency}
	}

	if debit.Currency != inst.Currency || credit.Currency != inst.Currency {
		return nil, &CurrencyMismatchError{Currency: inst.Currency}
	}

	if debit.Balance.LessThan(NumberFromInt(inst.Amount)) {
		return nil, &InsufficientFundsError{
			AccountID: inst.DebitAccount,
			Balance:   debit.Balance,
			Currency:  inst.Currency,
			Shortage:  inst.Amount - debit.Balance.IntPart(),
		}
	}

	return &Validated{Instruction: inst, Debit: debit, Credit: credit}, nil
}
