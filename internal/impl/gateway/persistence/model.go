package impl_persistence

import (
	"time"

	domain_transaction "github.com/ledgercore/transactions-service/internal/domain/transaction"
	"github.com/shopspring/decimal"
)

// TransactionModel is the persistence shape of a ledger entry.
type TransactionModel struct {
	ID                 int64           `gorm:"primaryKey;autoIncrement"`
	SenderAccountID    int64           `gorm:"not null"`
	RecipientAccountID int64           `gorm:"not null"`
	Amount             decimal.Decimal `gorm:"type:numeric(20,8);not null"`
	Timestamp          time.Time       `gorm:"type:timestamptz;not null"`
}

func (TransactionModel) TableName() string { return "transactions" }

func modelFromDomain(t *domain_transaction.Transaction) TransactionModel {
	return TransactionModel{
		ID:                 t.ID(),
		SenderAccountID:    t.SenderAccountID(),
		RecipientAccountID: t.RecipientAccountID(),
		Amount:             t.Amount(),
		Timestamp:          t.Timestamp(),
	}
}

func modelToDomain(m TransactionModel) *domain_transaction.Transaction {
	return domain_transaction.Restore(domain_transaction.RestoreParams{
		ID:                 m.ID,
		SenderAccountID:    m.SenderAccountID,
		RecipientAccountID: m.RecipientAccountID,
		Amount:             m.Amount,
		Timestamp:          m.Timestamp,
	})
}
