package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/tesmond/QuarterBot_Go/internal/domain"
	"github.com/tesmond/QuarterBot_Go/internal/middleware"
	"github.com/tesmond/QuarterBot_Go/internal/progression"
)

// ProfileCommand returns the profile command definition and handler
func ProfileCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "profile",
		Description: "View your progression stats",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		accountID, err := parseAccountID(user.ID)
		if err != nil {
			slog.Error(LogErrBadAccountID, "error", err, "id", user.ID)
			respondError(s, i, MsgGenericError)
			return
		}

		inv := middleware.Invocation{
			AccountID:   accountID,
			DisplayName: user.Username,
			Command:     "profile",
			Timestamp:   time.Now().UnixMilli(),
			Kind:        middleware.KindSlashCommand,
		}

		result, err := deps.Dispatcher.Dispatch(context.Background(), inv, nil)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}

		embed := profileEmbed(user.Username, user.AvatarURL(""), result.User)
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// profileEmbed renders a user record as a profile card
func profileEmbed(username, avatarURL string, u *domain.User) *discordgo.MessageEmbed {
	level := progression.LevelOf(u.XP)
	next := progression.XPForLevel(level + 1)

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's Profile", username),
		Color: 0x2ecc71,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: avatarURL,
		},
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Level",
				Value:  formatNumber(level),
				Inline: true,
			},
			{
				Name:   "XP",
				Value:  fmt.Sprintf("%s / %s", formatNumber(u.XP), formatNumber(next)),
				Inline: true,
			},
			{
				Name:   "Messages Sent",
				Value:  formatNumber(u.MessagesSent),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterQuarterBot,
		},
	}
}
