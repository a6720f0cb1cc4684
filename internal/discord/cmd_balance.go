package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/tesmond/QuarterBot_Go/internal/domain"
	"github.com/tesmond/QuarterBot_Go/internal/economy"
)

// BalanceCommand returns the balance command definition and handler
func BalanceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "balance",
		Description: "Manage your funds",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "view",
				Description: "Show your banked balance and cash on hand",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "deposit",
				Description: "Move cash into your banked balance",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "amount",
						Description: "Amount to deposit",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "withdraw",
				Description: "Move banked balance into cash",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "amount",
						Description: "Amount to withdraw",
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
				return fmt.Sprintf("🏦 Balance: **%s**\n💵 Cash: **%s**",
					formatNumber(u.Balance), formatNumber(u.Cash)), nil
			}
			handleDispatch(s, i, deps, "balance view", body, ResponseConfig{
				Title: "💰 Funds",
				Color: 0xf1c40f,
			})

		case "deposit":
			amount := int(sub.Options[0].IntValue())
			body := func(ctx context.Context, u *domain.User) (string, error) {
				if err := economy.Deposit(u, amount, economy.SourceCash); err != nil {
					return "", err
				}
				return fmt.Sprintf("Deposited **%s**. Balance is now **%s**, cash **%s**.",
					formatNumber(amount), formatNumber(u.Balance), formatNumber(u.Cash)), nil
			}
			handleDispatch(s, i, deps, "balance deposit", body, ResponseConfig{
				Title: "🏦 Deposit Complete",
				Color: 0x2ecc71,
			})

		case "withdraw":
			amount := int(sub.Options[0].IntValue())
			body := func(ctx context.Context, u *domain.User) (string, error) {
				if err := economy.Withdraw(u, amount); err != nil {
					return "", err
				}
				return fmt.Sprintf("Withdrew **%s**. Balance is now **%s**, cash **%s**.",
					formatNumber(amount), formatNumber(u.Balance), formatNumber(u.Cash)), nil
			}
			handleDispatch(s, i, deps, "balance withdraw", body, ResponseConfig{
				Title: "💵 Withdrawal Complete",
				Color: 0xe67e22,
			})
		}
	}

	return cmd, handler
}
