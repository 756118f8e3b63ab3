package domain

import (
	"errors"
	"strings"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrAccountNumberTaken = errors.New("generated account number already taken")
)

// DuplicateDataError reports a uniqueness-constraint violation together
// with the field(s) that collided, so the caller can name them to the user.
type DuplicateDataError struct {
	Fields []string
}

func (e *DuplicateDataError) Error() string {
	return "duplicate data: " + strings.Join(e.Fields, ", ")
}
