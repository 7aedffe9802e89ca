package service

import "errors"

var (
	ErrUnauthenticated    = errors.New("missing or invalid identity")
	ErrInvalidRequest     = errors.New("request is missing required fields")
	ErrAmountBelowMinimum = errors.New("configured total is below the minimum chargeable amount")
)
