package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tesmond/QuarterBot_Go/internal/domain"
	"github.com/tesmond/QuarterBot_Go/internal/item"
)

func TestBuildShopText(t *testing.T) {
	empty := item.NewCatalog(nil)
	assert.Contains(t, buildShopText(empty), "empty")

	catalog := item.NewCatalog([]domain.Item{
		{ID: 1, Name: "Ray Gun", Description: "pew pew", Category: "weapon", Price: 1500, Rarity: domain.RarityRare},
		{ID: 2, Name: "Visor", Description: "shiny", Category: "helmet", Price: 40, Rarity: domain.RarityUncommon},
	})

	text := buildShopText(catalog)
	assert.Contains(t, text, "**Ray Gun** [Rare] - 1,500 💵")
	assert.Contains(t, text, "pew pew")
	assert.Contains(t, text, "**Visor** [Uncommon] - 40 💵")
}
