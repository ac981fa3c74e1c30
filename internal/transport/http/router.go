package transport_http

import (
	"log/slog"

	port_persistence "github.com/ledgercore/transactions-service/internal/ports/gateway/persistence"
	port_platform "github.com/ledgercore/transactions-service/internal/ports/gateway/platform"
	port_transfer "github.com/ledgercore/transactions-service/internal/ports/usecase/transfer"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterParams struct {
	Transfers port_transfer.TransferUseCase
	Ledger    port_persistence.LedgerRepository
	IDs       port_platform.IDGenerator
	Logger    *slog.Logger
}

func NewRouter(p RouterParams) *chi.Mux {
	r := chi.NewRouter()

	r.Use(CorrelationID(p.IDs))
	r.Use(RequestLogger(p.Logger))
	r.Use(Metrics())

	transfers := NewTransferHandler(p.Transfers, p.Logger)
	transactions := NewTransactionHandler(p.Ledger, p.Logger)

	r.Route("/transactions", func(r chi.Router) {
		r.Post("/transfer", transfers.Transfer)
		r.Get("/{id}", transactions.GetByID)
	})

	r.Get("/healthz", handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
