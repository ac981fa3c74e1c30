package impl_transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domain_transaction "github.com/ledgercore/transactions-service/internal/domain/transaction"
	port_accounts "github.com/ledgercore/transactions-service/internal/ports/gateway/accounts"
	port_persistence "github.com/ledgercore/transactions-service/internal/ports/gateway/persistence"
	port_platform "github.com/ledgercore/transactions-service/internal/ports/gateway/platform"
	port_transfer "github.com/ledgercore/transactions-service/internal/ports/usecase/transfer"
)

// TransferUsecaseImpl orchestrates a single transfer: two reads and two
// writes against the remote account service, then one local ledger write.
// The five steps run in a fixed order, none is retried, and nothing is
// rolled back when a later step fails. Coordination of concurrent
// transfers touching the same account is the account service's problem,
// not ours: no balance is held or re-read between fetch and write.
type TransferUsecaseImpl struct {
	accounts port_accounts.AccountGateway
	ledger   port_persistence.LedgerRepository
	clock    port_platform.Clock
	logger   *slog.Logger
}

func NewTransferUsecaseImpl(
	accounts port_accounts.AccountGateway,
	ledger port_persistence.LedgerRepository,
	clock port_platform.Clock,
	logger *slog.Logger,
) *TransferUsecaseImpl {
	return &TransferUsecaseImpl{
		accounts: accounts,
		ledger:   ledger,
		clock:    clock,
		logger:   logger,
	}
}

func (u *TransferUsecaseImpl) Execute(ctx context.Context, in port_transfer.TransferInput) (port_transfer.TransferOutput, error) {
	if in.SenderAccountID <= 0 || in.RecipientAccountID <= 0 || in.Amount.Sign() <= 0 {
		return port_transfer.TransferOutput{}, ErrInvalidInput
	}

	sender, err := u.accounts.FetchAccount(ctx, in.SenderAccountID)
	if err != nil {
		if errors.Is(err, port_accounts.ErrAccountNotFound) {
			u.logger.Error("sender account not found", "account_id", in.SenderAccountID)
			return port_transfer.TransferOutput{}, &port_transfer.AccountNotFoundError{
				Side:      port_transfer.SideSender,
				AccountID: in.SenderAccountID,
			}
		}
		return port_transfer.TransferOutput{}, fmt.Errorf("fetch sender account %d: %w", in.SenderAccountID, err)
	}

	recipient, err := u.accounts.FetchAccount(ctx, in.RecipientAccountID)
	if err != nil {
		if errors.Is(err, port_accounts.ErrAccountNotFound) {
			u.logger.Error("recipient account not found", "account_id", in.RecipientAccountID)
			return port_transfer.TransferOutput{}, &port_transfer.AccountNotFoundError{
				Side:      port_transfer.SideRecipient,
				AccountID: in.RecipientAccountID,
			}
		}
		return port_transfer.TransferOutput{}, fmt.Errorf("fetch recipient account %d: %w", in.RecipientAccountID, err)
	}

	// Equality is insufficient: the sender must keep a positive balance.
	if sender.Balance.Cmp(in.Amount) <= 0 {
		u.logger.Error("insufficient funds in sender account", "account_id", in.SenderAccountID)
		return port_transfer.TransferOutput{}, port_transfer.ErrInsufficientFunds
	}

	newSenderBalance := sender.Balance.Sub(in.Amount)
	newRecipientBalance := recipient.Balance.Add(in.Amount)

	if err := u.accounts.UpdateBalance(ctx, in.SenderAccountID, newSenderBalance); err != nil {
		return port_transfer.TransferOutput{}, fmt.Errorf("update sender balance: %w", err)
	}

	if err := u.accounts.UpdateBalance(ctx, in.RecipientAccountID, newRecipientBalance); err != nil {
		// The sender is already debited and there is no compensating
		// write. Log with full context so the gap is recoverable by hand.
		u.logger.Error("partial transfer: sender debited, recipient not credited",
			"sender_account_id", in.SenderAccountID,
			"recipient_account_id", in.RecipientAccountID,
			"amount", in.Amount,
			"error", err,
		)
		return port_transfer.TransferOutput{}, fmt.Errorf("update recipient balance: %w", err)
	}

	draft, err := domain_transaction.New(domain_transaction.NewParams{
		SenderAccountID:    in.SenderAccountID,
		RecipientAccountID: in.RecipientAccountID,
		Amount:             in.Amount,
		Timestamp:          u.clock.Now(),
	})
	if err != nil {
		return port_transfer.TransferOutput{}, fmt.Errorf("build transaction: %w", err)
	}

	saved, err := u.ledger.Save(ctx, draft)
	if err != nil {
		u.logger.Error("partial transfer: balances moved but not recorded",
			"sender_account_id", in.SenderAccountID,
			"recipient_account_id", in.RecipientAccountID,
			"amount", in.Amount,
			"error", err,
		)
		return port_transfer.TransferOutput{}, fmt.Errorf("save transaction: %w", err)
	}

	u.logger.Info("transfer completed", "transaction_id", saved.ID())

	return port_transfer.TransferOutput{
		TransactionID:      saved.ID(),
		SenderAccountID:    saved.SenderAccountID(),
		RecipientAccountID: saved.RecipientAccountID(),
		Amount:             saved.Amount(),
		Timestamp:          saved.Timestamp(),
	}, nil
}
