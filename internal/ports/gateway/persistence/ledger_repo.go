package port_persistence

import (
	"context"
	"errors"

	domain_transaction "github.com/ledgercore/transactions-service/internal/domain/transaction"
)

var ErrNotFound = errors.New("persistence: not found")

// LedgerRepository is append-only: transactions are saved once and never
// updated or deleted.
type LedgerRepository interface {
	Save(ctx context.Context, draft *domain_transaction.Transaction) (*domain_transaction.Transaction, error)
	GetByID(ctx context.Context, id int64) (*domain_transaction.Transaction, error)
}
