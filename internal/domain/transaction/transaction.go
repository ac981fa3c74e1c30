package domain_transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the immutable record of a completed transfer. A draft is
// built without an ID; the ledger assigns one on persistence and the stored
// row is rehydrated through Restore.
type Transaction struct {
	id int64

	senderAccountID    int64
	recipientAccountID int64
	amount             decimal.Decimal

	timestamp time.Time
}

type NewParams struct {
	SenderAccountID    int64
	RecipientAccountID int64
	Amount             decimal.Decimal
	Timestamp          time.Time
}

func New(p NewParams) (*Transaction, error) {
	if p.SenderAccountID <= 0 || p.RecipientAccountID <= 0 {
		return nil, ErrInvalidAccountID
	}

	if p.Amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}

	if p.Timestamp.IsZero() {
		p.Timestamp = time.Now().UTC()
	}

	return &Transaction{
		senderAccountID:    p.SenderAccountID,
		recipientAccountID: p.RecipientAccountID,
		amount:             p.Amount,
		timestamp:          p.Timestamp,
	}, nil
}

type RestoreParams struct {
	ID                 int64
	SenderAccountID    int64
	RecipientAccountID int64
	Amount             decimal.Decimal
	Timestamp          time.Time
}

// Restore rehydrates a persisted transaction without re-running draft
// validation. The stored row is trusted as-is.
func Restore(p RestoreParams) *Transaction {
	return &Transaction{
		id:                 p.ID,
		senderAccountID:    p.SenderAccountID,
		recipientAccountID: p.RecipientAccountID,
		amount:             p.Amount,
		timestamp:          p.Timestamp,
	}
}

func (t *Transaction) ID() int64 { return t.id }

func (t *Transaction) SenderAccountID() int64 { return t.senderAccountID }

func (t *Transaction) RecipientAccountID() int64 { return t.recipientAccountID }

func (t *Transaction) Amount() decimal.Decimal { return t.amount }

func (t *Transaction) Timestamp() time.Time { return t.timestamp }
