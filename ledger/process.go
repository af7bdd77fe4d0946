package ledger

import (
	"context"
	"errors"

	"github.com/paylexhq/paylex/parser"
	"github.com/paylexhq/paylex/telemetry"
)

// reasonMalformed is the sentinel reason a response starts out with before
// parsing has determined anything. It is always overwritten: parsing
// either succeeds or reports a more specific code.
const reasonMalformed = "Malformed instruction: unable to parse the required amount or currency."

// Response is the uniform outcome shape returned for every processed
// instruction, success or failure. The JSON field names are part of the
// wire contract. Instruction fields are null when parsing failed before
// they were determined; parsing is all-or-nothing, so a syntax failure
// leaves all of them null.
type Response struct {
	Type          *string        `json:"type"`
	Amount        *int64         `json:"amount"`
	Currency      *string        `json:"currency"`
	DebitAccount  *string        `json:"debit_account"`
	CreditAccount *string        `json:"credit_account"`
	ExecuteBy     *string        `json:"execute_by"`
	Status        string         `json:"status"`
	StatusReason  string         `json:"status_reason"`
	StatusCode    string         `json:"status_code"`
	Accounts      []AccountState `json:"accounts"`
}

// Process runs the full pipeline: parse, validate, execute. Coded failures
// from any stage become a failed response carrying that stage's code and
// message, with exactly one failure reported per call. Any other error is
// an internal fault and is returned as-is, leaving the response nil; the
// caller owns logging and transport for those.
func (l *Ledger) Process(ctx context.Context, instruction string, accounts []Account) (*Response, error) {
	collector := telemetry.FromContext(ctx)
	timer := collector.Start("process instruction")
	defer timer.End()

	resp := &Response{
		Status:       StatusFailed,
		StatusReason: reasonMalformed,
		StatusCode:   parser.CodeMalformed,
		Accounts:     []AccountState{},
	}

	parseTimer := timer.Child("parse")
	inst, err := parser.Parse(instruction)
	parseTimer.End()
	if err != nil {
		return l.failed(resp, err, accounts)
	}

	resp.Type = ptr(string(inst.Type))
	resp.Amount = ptr(inst.Amount)
	resp.Currency = ptr(inst.Currency)
	resp.DebitAccount = ptr(inst.DebitAccount)
	resp.CreditAccount = ptr(inst.CreditAccount)
	if inst.ExecuteBy != "" {
		resp.ExecuteBy = ptr(inst.ExecuteBy)
	}

	validateTimer := timer.Child("validate")
	validated, err := l.Validate(inst, accounts)
	validateTimer.End()
	if err != nil {
		return l.failed(resp, err, accounts)
	}

	executeTimer := timer.Child("execute")
	result := l.Execute(validated, accounts)
	executeTimer.End()

	resp.Status = result.Status
	resp.StatusCode = result.StatusCode
	resp.StatusReason = result.StatusReason
	resp.Accounts = result.Accounts

	return resp, nil
}

// failed folds a coded failure into the failed response shape, keeping
// whatever instruction fields were determined before the failure. The
// accounts projection stays empty unless both identifiers are known; when
// they are, it carries the unmodified accounts whose IDs match the parsed
// identifiers exactly.
func (l *Ledger) failed(resp *Response, err error, accounts []Account) (*Response, error) {
	var coded parser.Error
	if !errors.As(err, &coded) {
		return nil, err
	}

	resp.Status = StatusFailed
	resp.StatusReason = coded.Error()
	resp.StatusCode = coded.Code()

	if resp.DebitAccount != nil && resp.CreditAccount != nil {
		for _, acc := range accounts {
			if acc.ID != *resp.DebitAccount && acc.ID != *resp.CreditAccount {
				continue
			}
			resp.Accounts = append(resp.Accounts, AccountState{
				ID:            acc.ID,
				Balance:       acc.Balance,
				BalanceBefore: acc.Balance,
				Currency:      acc.Currency,
			})
		}
	}

	return resp, nil
}

func ptr[T any](v T) *T { return &v }
