package ledger

import "strings"

// Account is a caller-supplied account record. The ledger treats these as
// read-only; execution reports balance changes through a projection
// instead of touching the input.
type Account struct {
	ID       string `json:"id"`
	Balance  Number `json:"balance"`
	Currency string `json:"currency"`
}

// supportedCurrencies is the closed set of currencies a transaction may
// use. Account currencies are not restricted to this set; only the
// instruction currency is.
var supportedCurrencies = map[string]struct{}{
	"NGN": {},
	"USD": {},
	"GBP": {},
	"GHS": {},
}

// findAccount resolves an account by identifier, ignoring case. The first
// match in list order wins.
func findAccount(accounts []Account, id string) *Account {
	for i := range accounts {
		if strings.EqualFold(accounts[i].ID, id) {
			return &accounts[i]
		}
	}
	return nil
}
