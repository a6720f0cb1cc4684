package discord

import (
	"errors"

	"github.com/tesmond/QuarterBot_Go/internal/domain"
)

// Friendly message constants for Discord responses
const (
	// Economy
	MsgInsufficientBalance = "🏦 **Not Enough Banked**\nYour balance doesn't cover that."
	MsgInsufficientCash    = "💸 **Not Enough Cash**\nYou don't have that much on hand."
	MsgInvalidAmount       = "🔢 **Invalid Amount**\nAmounts must be positive."

	// Items & Inventory
	MsgItemNotFound    = "❓ **Item Not Found**\nMaybe check the spelling?"
	MsgItemNotOwned    = "🎒 **Not In Your Bag**\nYou don't own that item."
	MsgItemNotEquipped = "🎽 **Not Equipped**\nThat item isn't equipped."

	// User
	MsgUserNotFound = "👤 **User Not Found**\nHave they been seen around here?"

	// Infrastructure
	MsgStoreUnavailable = "🔌 **Temporary Hiccup**\nCouldn't reach storage, try again in a moment."

	MsgGenericError = "❌ Something went wrong."
)

// formatFriendlyError maps pipeline errors to readable messages
func formatFriendlyError(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientBalance):
		return MsgInsufficientBalance
	case errors.Is(err, domain.ErrInsufficientCash):
		return MsgInsufficientCash
	case errors.Is(err, domain.ErrInvalidAmount):
		return MsgInvalidAmount
	case errors.Is(err, domain.ErrItemNotFound):
		return MsgItemNotFound
	case errors.Is(err, domain.ErrItemNotOwned):
		return MsgItemNotOwned
	case errors.Is(err, domain.ErrItemNotEquipped):
		return MsgItemNotEquipped
	case errors.Is(err, domain.ErrUserNotFound):
		return MsgUserNotFound
	case errors.Is(err, domain.ErrStoreUnavailable):
		return MsgStoreUnavailable
	default:
		return MsgGenericError
	}
}
