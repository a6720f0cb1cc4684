package discord

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberPrinter = message.NewPrinter(language.English)

// formatNumber renders an amount with thousands separators for display
func formatNumber(n int) string {
	return numberPrinter.Sprintf("%d", n)
}

// parseAccountID converts a Discord snowflake string to the numeric account ID
func parseAccountID(id string) (uint64, error) {
	parsed, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid account id %q: %w", id, err)
	}
	return parsed, nil
}

var rarityNames = []string{"Common", "Uncommon", "Rare", "Epic", "Legendary"}

// rarityName renders a rarity tier for display
func rarityName(rarity int) string {
	if rarity < 0 || rarity >= len(rarityNames) {
		return "Unknown"
	}
	return rarityNames[rarity]
}
