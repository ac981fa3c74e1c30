package impl_persistence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	domain_transaction "github.com/ledgercore/transactions-service/internal/domain/transaction"
	impl_persistence "github.com/ledgercore/transactions-service/internal/impl/gateway/persistence"
	port_persistence "github.com/ledgercore/transactions-service/internal/ports/gateway/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRepo(t *testing.T) (*impl_persistence.GormLedgerRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return impl_persistence.NewGormLedgerRepository(db), mock
}

func draft(t *testing.T, ts time.Time) *domain_transaction.Transaction {
	t.Helper()
	tx, err := domain_transaction.New(domain_transaction.NewParams{
		SenderAccountID:    1,
		RecipientAccountID: 2,
		Amount:             decimal.RequireFromString("100.00"),
		Timestamp:          ts,
	})
	require.NoError(t, err)
	return tx
}

func TestSave_AssignsID(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "transactions" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectCommit()

	saved, err := repo.Save(context.Background(), draft(t, now))
	require.NoError(t, err)

	assert.Equal(t, int64(7), saved.ID())
	assert.Equal(t, int64(1), saved.SenderAccountID())
	assert.Equal(t, int64(2), saved.RecipientAccountID())
	assert.True(t, saved.Amount().Equal(decimal.RequireFromString("100.00")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_InsertError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "transactions"`).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	_, err := repo.Save(context.Background(), draft(t, time.Now().UTC()))
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "sender_account_id", "recipient_account_id", "amount", "timestamp"}).
		AddRow(int64(7), int64(1), int64(2), "100.00", now)

	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE id = (.+)`).
		WithArgs(int64(7), 1).
		WillReturnRows(rows)

	tx, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), tx.ID())
	assert.True(t, tx.Amount().Equal(decimal.RequireFromString("100.00")))
	assert.True(t, tx.Timestamp().Equal(now))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE id = (.+)`).
		WithArgs(int64(99), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sender_account_id", "recipient_account_id", "amount", "timestamp"}))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, port_persistence.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
