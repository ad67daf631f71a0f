package domain

import "errors"

var (
	// ErrAccountNotFound is returned when a user ID does not resolve to a
	// seeded account
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateAccount is returned when creating an account whose user ID
	// is already taken
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrInsufficientFunds is returned when a transfer would drive the source
	// balance below zero
	ErrInsufficientFunds = errors.New("insufficient funds")
)
