package transport_http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	port_persistence "github.com/ledgercore/transactions-service/internal/ports/gateway/persistence"

	"github.com/go-chi/chi/v5"
)

type TransactionHandler struct {
	ledger port_persistence.LedgerRepository
	logger *slog.Logger
}

func NewTransactionHandler(ledger port_persistence.LedgerRepository, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{ledger: ledger, logger: logger}
}

func (h *TransactionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Transaction id must be a positive integer")
		return
	}

	tx, err := h.ledger.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, port_persistence.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "transaction lookup failed", "transaction_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, msgUnexpected)
		return
	}

	writeJSON(w, http.StatusOK, transactionResponse{
		ID:                 tx.ID(),
		SenderAccountID:    tx.SenderAccountID(),
		RecipientAccountID: tx.RecipientAccountID(),
		Amount:             tx.Amount(),
		Timestamp:          tx.Timestamp(),
	})
}
