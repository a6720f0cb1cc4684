package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/tesmond/QuarterBot_Go/internal/domain"
	"github.com/tesmond/QuarterBot_Go/internal/economy"
	"github.com/tesmond/QuarterBot_Go/internal/inventory"
	"github.com/tesmond/QuarterBot_Go/internal/item"
)

// ShopCommand returns the shop command definition and handler
func ShopCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "shop",
		Description: "Browse and buy items",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "Show everything for sale",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "buy",
				Description: "Buy an item with cash",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "item",
						Description: "Item name to buy",
						Required:    true,
					},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		options := getOptions(i)
		if len(options) == 0 {
			return
		}
		sub := options[0]

		switch sub.Name {
		case "list":
			body := func(ctx context.Context, u *domain.User) (string, error) {
				return buildShopText(deps.Catalog), nil
			}
			handleDispatch(s, i, deps, "shop list", body, ResponseConfig{
				Title: "🏪 Shop",
				Color: 0x3498db,
			})

		case "buy":
			name := sub.Options[0].StringValue()
			body := func(ctx context.Context, u *domain.User) (string, error) {
				it, err := deps.Catalog.ByName(name)
				if err != nil {
					return "", err
				}
				if err := economy.DebitCash(u, it.Price); err != nil {
					return "", err
				}
				inventory.AddItem(u, it)
				return fmt.Sprintf("Bought **%s** for **%s**. Cash left: **%s**.",
					it.Name, formatNumber(it.Price), formatNumber(u.Cash)), nil
			}
			handleDispatch(s, i, deps, "shop buy", body, ResponseConfig{
				Title: "💰 Purchase Complete",
				Color: 0x2ecc71,
			})
		}
	}

	return cmd, handler
}

// buildShopText renders the catalog with prices and rarity tiers
func buildShopText(catalog *item.Catalog) string {
	items := catalog.All()
	if len(items) == 0 {
		return "The shop is empty right now."
	}

	var sb strings.Builder
	for _, it := range items {
		fmt.Fprintf(&sb, "**%s** [%s] - %s 💵\n%s\n",
			it.Name, rarityName(it.Rarity), formatNumber(it.Price), it.Description)
	}
	return sb.String()
}
