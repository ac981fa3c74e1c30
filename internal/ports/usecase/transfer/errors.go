package port_transfer

import (
	"errors"
	"fmt"
)

// Side identifies which leg of a transfer an account error refers to.
type Side string

const (
	SideSender    Side = "sender"
	SideRecipient Side = "recipient"
)

// AccountNotFoundError reports that the account service resolved a lookup
// with "no such account" for one side of the transfer.
type AccountNotFoundError struct {
	Side      Side
	AccountID int64
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("transfer: %s account not found", e.Side)
}

// ErrInsufficientFunds is returned when the sender's balance is less than
// or equal to the requested amount. Equality counts as insufficient: a
// full-balance transfer would leave zero, which this contract disallows.
var ErrInsufficientFunds = errors.New("transfer: insufficient funds")
