package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Item errors
	ErrMsgItemNotFound    = "item not found"
	ErrMsgItemNotOwned    = "item not owned"
	ErrMsgItemNotEquipped = "item not equipped"

	// Economy errors
	ErrMsgInvalidAmount       = "invalid amount"
	ErrMsgInsufficientBalance = "insufficient balance"
	ErrMsgInsufficientCash    = "insufficient cash"

	// Storage errors
	ErrMsgStoreUnavailable = "store unavailable"
	ErrMsgStoreCorrupt     = "store record corrupt"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Item errors
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrItemNotOwned    = errors.New(ErrMsgItemNotOwned)
	ErrItemNotEquipped = errors.New(ErrMsgItemNotEquipped)

	// Economy errors
	ErrInvalidAmount       = errors.New(ErrMsgInvalidAmount)
	ErrInsufficientBalance = errors.New(ErrMsgInsufficientBalance)
	ErrInsufficientCash    = errors.New(ErrMsgInsufficientCash)

	// Storage errors. ErrStoreUnavailable is transient and retryable;
	// ErrStoreCorrupt is fatal for the affected record and never auto-repaired.
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)
	ErrStoreCorrupt     = errors.New(ErrMsgStoreCorrupt)
)
