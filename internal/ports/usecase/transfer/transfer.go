package port_transfer

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type TransferInput struct {
	SenderAccountID    int64
	RecipientAccountID int64
	Amount             decimal.Decimal
}

type TransferOutput struct {
	TransactionID      int64
	SenderAccountID    int64
	RecipientAccountID int64
	Amount             decimal.Decimal
	Timestamp          time.Time
}

type TransferUseCase interface {
	Execute(ctx context.Context, input TransferInput) (TransferOutput, error)
}
