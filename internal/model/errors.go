package model

import "errors"

// Common errors used across the application
var (
	// Match errors
	ErrMatchNotFound   = errors.New("match not found")
	ErrNotPlayerTurn   = errors.New("not this player's turn")
	ErrMatchComplete   = errors.New("match is already complete")
	ErrMatchInProgress = errors.New("match is still in progress")
	ErrInvalidLetter   = errors.New("invalid letter")

	// Strategy errors
	ErrUnknownStrategy = errors.New("unknown computer strategy")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
	ErrDictionaryEmpty     = errors.New("dictionary contains no usable words")
)
