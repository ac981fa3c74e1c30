package impl_transfer

import "errors"

var ErrInvalidInput = errors.New("invalid input data")
