package transport_http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	impl_transfer "github.com/ledgercore/transactions-service/internal/impl/usecase/transfer"
	port_transfer "github.com/ledgercore/transactions-service/internal/ports/usecase/transfer"
	"github.com/ledgercore/transactions-service/internal/telemetry"

	"github.com/go-playground/validator/v10"
)

type TransferHandler struct {
	usecase  port_transfer.TransferUseCase
	validate *validator.Validate
	logger   *slog.Logger
}

func NewTransferHandler(usecase port_transfer.TransferUseCase, logger *slog.Logger) *TransferHandler {
	return &TransferHandler{
		usecase:  usecase,
		validate: newValidator(),
		logger:   logger,
	}
}

func (h *TransferHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		telemetry.TransfersTotal.WithLabelValues("invalid").Inc()
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if fields := validateTransferRequest(h.validate, req); len(fields) > 0 {
		telemetry.TransfersTotal.WithLabelValues("invalid").Inc()
		writeFieldErrors(w, fields)
		return
	}

	out, err := h.usecase.Execute(r.Context(), port_transfer.TransferInput{
		SenderAccountID:    *req.SenderAccountID,
		RecipientAccountID: *req.RecipientAccountID,
		Amount:             *req.Amount,
	})
	if err != nil {
		h.writeTransferError(w, r, err)
		return
	}

	telemetry.TransfersTotal.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, transactionResponse{
		ID:                 out.TransactionID,
		SenderAccountID:    out.SenderAccountID,
		RecipientAccountID: out.RecipientAccountID,
		Amount:             out.Amount,
		Timestamp:          out.Timestamp,
	})
}

func (h *TransferHandler) writeTransferError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *port_transfer.AccountNotFoundError

	switch {
	case errors.As(err, &notFound):
		telemetry.TransfersTotal.WithLabelValues("account_not_found").Inc()
		msg := msgSenderNotFound
		if notFound.Side == port_transfer.SideRecipient {
			msg = msgRecipientNotFound
		}
		writeError(w, http.StatusBadRequest, msg)

	case errors.Is(err, port_transfer.ErrInsufficientFunds):
		telemetry.TransfersTotal.WithLabelValues("insufficient_funds").Inc()
		writeError(w, http.StatusBadRequest, msgInsufficientFunds)

	case errors.Is(err, impl_transfer.ErrInvalidInput):
		telemetry.TransfersTotal.WithLabelValues("invalid").Inc()
		writeError(w, http.StatusBadRequest, msgInvalidBody)

	default:
		// Unexpected failure: logged with detail, reported without it.
		telemetry.TransfersTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(r.Context(), "transfer failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgUnexpected)
	}
}
