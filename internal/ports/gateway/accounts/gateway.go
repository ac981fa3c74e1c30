package port_accounts

import (
	"context"
	"errors"

	domain_account "github.com/ledgercore/transactions-service/internal/domain/account"
	"github.com/shopspring/decimal"
)

// ErrAccountNotFound is the gateway's not-found signal. Implementations
// must return it (wrapped or bare) when the account service resolves the
// lookup and answers that no such account exists; transport failures and
// unexpected remote errors are reported as distinct errors and never as
// this sentinel.
var ErrAccountNotFound = errors.New("accounts: account not found")

type AccountGateway interface {
	FetchAccount(ctx context.Context, id int64) (*domain_account.Account, error)
	UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error
}
