package domain_transaction

import "errors"

var (
	ErrInvalidAccountID = errors.New("transaction: account ids must be positive")
	ErrInvalidAmount    = errors.New("transaction: amount must be > 0")
)
