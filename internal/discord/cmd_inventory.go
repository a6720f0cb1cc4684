package discord

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/tesmond/QuarterBot_Go/internal/domain"
	"github.com/tesmond/QuarterBot_Go/internal/inventory"
)

// InventoryCommand returns the inventory command definition and handler
func InventoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "inventory",
		Description: "Manage your items",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "view",
				Description: "Show your items and what's equipped",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "equip",
				Description: "Equip an owned item",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "item",
						Description: "Item name to equip",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "unequip",
				Description: "Unequip an equipped item",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "item",
						Description: "Item name to unequip",
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
		case "view":
			body := func(ctx context.Context, u *domain.User) (string, error) {
				return buildInventoryText(u), nil
			}
			handleDispatch(s, i, deps, "inventory view", body, ResponseConfig{
				Title: "🎒 Inventory",
				Color: 0x3498db,
			})

		case "equip":
			name := sub.Options[0].StringValue()
			body := func(ctx context.Context, u *domain.User) (string, error) {
				it, err := deps.Catalog.ByName(name)
				if err != nil {
					return "", err
				}
				if err := inventory.Equip(u, it.ID); err != nil {
					return "", err
				}
				return fmt.Sprintf("Equipped **%s** (%s).", it.Name, it.Category), nil
			}
			handleDispatch(s, i, deps, "inventory equip", body, ResponseConfig{
				Title: "🎽 Equipped",
				Color: 0x2ecc71,
			})

		case "unequip":
			name := sub.Options[0].StringValue()
			body := func(ctx context.Context, u *domain.User) (string, error) {
				it, err := deps.Catalog.ByName(name)
				if err != nil {
					return "", err
				}
				if err := inventory.Unequip(u, it.ID); err != nil {
					return "", err
				}
				return fmt.Sprintf("Unequipped **%s**.", it.Name), nil
			}
			handleDispatch(s, i, deps, "inventory unequip", body, ResponseConfig{
				Title: "🎽 Unequipped",
				Color: 0xe67e22,
			})
		}
	}

	return cmd, handler
}

// buildInventoryText renders owned items grouped by name with counts,
// followed by the equipped set.
func buildInventoryText(u *domain.User) string {
	if len(u.Inventory) == 0 {
		return "Your bag is empty. Try `/shop list`."
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, it := range u.Inventory {
		if counts[it.Name] == 0 {
			order = append(order, it.Name)
		}
		counts[it.Name]++
	}
	sort.Strings(order)

	var sb strings.Builder
	for _, name := range order {
		if counts[name] > 1 {
			fmt.Fprintf(&sb, "• %s ×%d\n", name, counts[name])
		} else {
			fmt.Fprintf(&sb, "• %s\n", name)
		}
	}

	if len(u.Equipped) > 0 {
		sb.WriteString("\n**Equipped**\n")
		for _, it := range u.Equipped {
			fmt.Fprintf(&sb, "• %s (%s)\n", it.Name, it.Category)
		}
	}
	return sb.String()
}
