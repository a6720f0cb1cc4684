package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/tesmond/QuarterBot_Go/internal/domain"
)

// AgeCommand returns the age command definition and handler
func AgeCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "age",
		Description: "Show when an account was created",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "User to look up (defaults to you)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		target := getInteractionUser(i)
		if options := getOptions(i); len(options) > 0 {
			target = options[0].UserValue(s)
		}

		body := func(ctx context.Context, u *domain.User) (string, error) {
			created, err := discordgo.SnowflakeTimestamp(target.ID)
			if err != nil {
				return "", fmt.Errorf("invalid snowflake %q: %w", target.ID, err)
			}
			return fmt.Sprintf("%s's account was created <t:%d:R>", target.Username, created.Unix()), nil
		}

		handleDispatch(s, i, deps, "age", body, ResponseConfig{
			Title: "📅 Account Age",
			Color: 0x9b59b6,
		})
	}

	return cmd, handler
}
