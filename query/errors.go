package query

import (
	"errors"

	"linq/lists"
)

var (
	ErrIndexOutOfRange = lists.ErrIndexOutOfRange
	ErrEmptySequence   = errors.New("sequence contains no matching element")
	ErrNotExactlyOne   = errors.New("sequence contains more than one matching element")
	ErrInvalidCast     = errors.New("invalid cast")
	ErrOrderViolation  = errors.New("insertion breaks sort order")
)
