package bank

import (
	"errors"
	"strings"
)

var (
	ErrNotLoggedIn        = errors.New("please log in")
	ErrUserExists         = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInvalidAccountType = errors.New("account type cannot be empty")
)

// WeakPasswordError carries the specific rules a candidate password did
// not satisfy, so the caller can print them and re-prompt.
type WeakPasswordError struct {
	Unmet []PasswordRule
}

func (e *WeakPasswordError) Error() string {
	parts := make([]string, len(e.Unmet))
	for i, r := range e.Unmet {
		parts[i] = string(r)
	}
	return "password must " + strings.Join(parts, " and ")
}
