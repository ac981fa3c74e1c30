// Package domain_account holds the read-side view of an account. Accounts
// are owned by the external account service; this service only ever works
// with a point-in-time snapshot and never caches one across calls.
package domain_account

import "github.com/shopspring/decimal"

type Account struct {
	ID      int64
	Name    string
	Email   string
	Balance decimal.Decimal
}
