package entities

import "errors"

var (
	ErrInvalidPrice  = errors.New("invalid price")
	ErrInvalidSize   = errors.New("invalid size")
	ErrInvalidSide   = errors.New("invalid side")
	ErrInvalidAction = errors.New("invalid orderbook action")
)
