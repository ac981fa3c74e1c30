// Package mocks provides mock implementations for testing purposes.
package mocks

//go:generate mockgen -destination=mock_accounts.go -package=mocks github.com/ledgercore/transactions-service/internal/ports/gateway/accounts AccountGateway
//go:generate mockgen -destination=mock_persistence.go -package=mocks github.com/ledgercore/transactions-service/internal/ports/gateway/persistence LedgerRepository
//go:generate mockgen -destination=mock_platform.go -package=mocks github.com/ledgercore/transactions-service/internal/ports/gateway/platform Clock,IDGenerator
