package station

import "errors"

var (
	ErrInsufficientBalance = errors.New("station: paymaster does not have enough funds")
	ErrInsufficientFees    = errors.New("station: not enough fees to withdraw")
	ErrPaymasterNotFound   = errors.New("station: paymaster not found")
	ErrChainNotFound       = errors.New("station: chain not found")
	ErrUnauthorized        = errors.New("station: caller is not the owner")
	ErrArithmeticOverflow  = errors.New("station: arithmetic overflow")
	ErrNegativePrice       = errors.New("station: negative price")
	ErrDivisionByZero      = errors.New("station: division by zero")
	ErrInvalidFeeRate      = errors.New("station: invalid fee rate")
	ErrChainExists         = errors.New("station: chain already exists")
	ErrPaymasterExists     = errors.New("station: paymaster already exists")
	ErrReservationNotFound = errors.New("station: reservation not found")
	ErrInvalidRequest      = errors.New("station: invalid request")
)
