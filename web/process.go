package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/paylexhq/paylex/ledger"
)

// maxAccountIDLength bounds account identifiers accepted over the wire.
const maxAccountIDLength = 50

// ProcessRequest is the JSON request body for the processing endpoint.
// Accounts may be omitted when the server carries a default account set.
type ProcessRequest struct {
	Instruction string           `json:"instruction"`
	Accounts    []RequestAccount `json:"accounts"`
}

// RequestAccount is one account snapshot as submitted by the client. The
// balance is a pointer so a missing field can be told apart from zero.
type RequestAccount struct {
	ID       string         `json:"id"`
	Balance  *ledger.Number `json:"balance"`
	Currency string         `json:"currency"`
}

// ErrorResponse is the JSON shape for requests rejected before processing.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleProcess handles POST requests to /payment-instructions.
//
// The request envelope is validated before the instruction is processed:
// the instruction must be non-empty and every submitted account needs an
// identifier, a non-negative balance, and a three-letter currency code.
// Envelope violations return 400 with an error message. A processed
// instruction always returns the full transaction response; failed
// transactions use status 400, successful and pending ones 200.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	var req ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Instruction) == "" {
		writeError(w, "Instruction must not be empty")
		return
	}

	accounts, err := s.resolveAccounts(req.Accounts)
	if err != nil {
		writeError(w, err.Error())
		return
	}

	resp, err := s.ledger.Process(r.Context(), req.Instruction, accounts)
	if err != nil {
		http.Error(w, "Failed to process instruction", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if resp.Status == ledger.StatusFailed {
		status = http.StatusBadRequest
	}
	writeJSONResponse(w, status, resp)
}

// resolveAccounts validates the submitted accounts, falling back to the
// server's default set when the request carries none.
func (s *Server) resolveAccounts(submitted []RequestAccount) ([]ledger.Account, error) {
	if submitted == nil {
		accounts := s.defaultAccounts()
		if accounts == nil {
			return nil, fmt.Errorf("No accounts provided and no default account set configured")
		}
		return accounts, nil
	}

	accounts := make([]ledger.Account, 0, len(submitted))
	for i, acc := range submitted {
		id := strings.TrimSpace(acc.ID)
		if id == "" {
			return nil, fmt.Errorf("Account at index %d is missing an id", i)
		}
		if len(id) > maxAccountIDLength {
			return nil, fmt.Errorf("Account id %s exceeds %d characters", id, maxAccountIDLength)
		}

		if acc.Balance == nil {
			return nil, fmt.Errorf("Account %s is missing a balance", id)
		}
		if acc.Balance.IsNegative() {
			return nil, fmt.Errorf("Account %s has a negative balance", id)
		}

		currency := strings.ToUpper(strings.TrimSpace(acc.Currency))
		if len(currency) != 3 {
			return nil, fmt.Errorf("Account %s needs a three-letter currency code", id)
		}

		accounts = append(accounts, ledger.Account{
			ID:       id,
			Balance:  *acc.Balance,
			Currency: currency,
		})
	}

	return accounts, nil
}

func writeError(w http.ResponseWriter, message string) {
	writeJSONResponse(w, http.StatusBadRequest, ErrorResponse{Error: message})
}
