package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ledgercore/transactions-service/internal/config"
	impl_accountsvc "github.com/ledgercore/transactions-service/internal/impl/gateway/accountsvc"
	impl_persistence "github.com/ledgercore/transactions-service/internal/impl/gateway/persistence"
	impl_platform "github.com/ledgercore/transactions-service/internal/impl/gateway/platform"
	impl_transfer "github.com/ledgercore/transactions-service/internal/impl/usecase/transfer"
	"github.com/ledgercore/transactions-service/internal/telemetry"
	transport_http "github.com/ledgercore/transactions-service/internal/transport/http"

	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const serviceName = "transactions-service"

func main() {
	logger := telemetry.InitLogger(serviceName)

	if err := run(logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load(logger)
	if err != nil {
		return err
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return err
	}

	if err := impl_persistence.AutoMigrate(db); err != nil {
		return err
	}

	accounts := impl_accountsvc.NewAccountServiceClient(cfg.AccountServiceURL, cfg.AccountServiceTimeout, logger)
	ledger := impl_persistence.NewGormLedgerRepository(db)
	clock := impl_platform.NewSystemClock()
	ids := impl_platform.NewUUIDGenerator()

	transfers := impl_transfer.NewTransferUsecaseImpl(accounts, ledger, clock, logger)

	router := transport_http.NewRouter(transport_http.RouterParams{
		Transfers: transfers,
		Ledger:    ledger,
		IDs:       ids,
		Logger:    logger,
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
