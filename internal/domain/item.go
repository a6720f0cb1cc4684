package domain

// Item represents a catalog entry. Items are immutable value objects; a
// user's inventory and equipped lists hold copies of catalog entries, not
// independently mutable state.
type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Price       int    `json:"price"`
	Rarity      int    `json:"rarity"`
}

// Item rarity tiers, lowest to highest.
const (
	RarityCommon = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)
