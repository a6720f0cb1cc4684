package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/tesmond/QuarterBot_Go/internal/domain"
)

// PingCommand returns the ping command definition and handler
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check if the bot is alive",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		// The interaction ID is a snowflake minted when the command was
		// issued, so its timestamp gives the inbound latency.
		reply := "Pong! 🏓"
		if created, err := discordgo.SnowflakeTimestamp(i.ID); err == nil {
			reply = fmt.Sprintf("Pong! 🏓 `%dms`", time.Since(created).Milliseconds())
		}

		body := func(ctx context.Context, u *domain.User) (string, error) {
			return reply, nil
		}

		handleDispatch(s, i, deps, "ping", body, ResponseConfig{
			Title: "🏓 Ping",
			Color: 0x3498db,
		})
	}

	return cmd, handler
}
