package impl_persistence

import (
	"context"
	"errors"
	"fmt"

	domain_transaction "github.com/ledgercore/transactions-service/internal/domain/transaction"
	port_persistence "github.com/ledgercore/transactions-service/internal/ports/gateway/persistence"
	"gorm.io/gorm"
)

// GormLedgerRepository persists completed transfers. Inserts only; the
// ledger has no update or delete path.
type GormLedgerRepository struct {
	db *gorm.DB
}

func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// AutoMigrate creates the transactions table when it does not exist yet.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&TransactionModel{})
}

func (r *GormLedgerRepository) Save(ctx context.Context, draft *domain_transaction.Transaction) (*domain_transaction.Transaction, error) {
	m := modelFromDomain(draft)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}
	return modelToDomain(m), nil
}

func (r *GormLedgerRepository) GetByID(ctx context.Context, id int64) (*domain_transaction.Transaction, error) {
	var m TransactionModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, port_persistence.ErrNotFound
		}
		return nil, fmt.Errorf("select transaction %d: %w", id, err)
	}
	return modelToDomain(m), nil
}
