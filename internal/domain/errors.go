package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Inventory errors
	ErrMsgInsufficientQuantity = "insufficient quantity"

	// Stamina errors
	ErrMsgInsufficientStamina = "insufficient stamina"

	// Dungeon errors
	ErrMsgDungeonActive   = "a dungeon is already active"
	ErrMsgDungeonResolved = "dungeon already resolved"
	ErrMsgDungeonNotFound = "dungeon not found"

	// Shop errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgOutOfStock        = "out of stock"
	ErrMsgListingNotFound   = "listing not found"
	ErrMsgNotInShop         = "item is not in the shop"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Database errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional
// context so callers can match with errors.Is.
var (
	// Player errors
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Inventory errors
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)

	// Stamina errors
	ErrInsufficientStamina = errors.New(ErrMsgInsufficientStamina)

	// Dungeon errors
	ErrDungeonActive   = errors.New(ErrMsgDungeonActive)
	ErrDungeonResolved = errors.New(ErrMsgDungeonResolved)
	ErrDungeonNotFound = errors.New(ErrMsgDungeonNotFound)

	// Shop errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrOutOfStock        = errors.New(ErrMsgOutOfStock)
	ErrListingNotFound   = errors.New(ErrMsgListingNotFound)
	ErrNotInShop         = errors.New(ErrMsgNotInShop)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
