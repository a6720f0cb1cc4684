package discord

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/tesmond/QuarterBot_Go/internal/item"
	"github.com/tesmond/QuarterBot_Go/internal/middleware"
)

// Deps bundles what command handlers need: the invocation pipeline and the
// read-only item catalog.
type Deps struct {
	Dispatcher *middleware.Dispatcher
	Catalog    *item.Catalog
}

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Deps     *Deps
	AppID    string
	Registry *CommandRegistry
}

// Config holds the bot configuration
type Config struct {
	Token string
	AppID string
}

// New creates a new Discord bot
func New(cfg Config, deps *Deps) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	s.Identify.Intents |= discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	return &Bot{
		Session:  s,
		Deps:     deps,
		AppID:    cfg.AppID,
		Registry: NewCommandRegistry(),
	}, nil
}

// Start starts the bot
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)
	b.Session.AddHandler(b.messageCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info(LogMsgBotRunning)
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() {
	b.Session.Close()
}

// Run runs the bot until a signal is received
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if b.Registry != nil {
		b.Registry.Handle(s, i, b.Deps)
	}
}

// messageCreate routes plain chat messages through the pipeline so activity
// earns XP. Bots never earn XP.
func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	accountID, err := parseAccountID(m.Author.ID)
	if err != nil {
		slog.Error(LogErrBadAccountID, "error", err, "id", m.Author.ID)
		return
	}

	inv := middleware.Invocation{
		AccountID:   accountID,
		DisplayName: m.Author.Username,
		Timestamp:   m.Timestamp.UnixMilli(),
		Kind:        middleware.KindMessage,
	}

	if _, err := b.Deps.Dispatcher.Dispatch(context.Background(), inv, nil); err != nil {
		slog.Error(LogErrMessageDispatchFailed, "error", err, "user_id", accountID)
	}
}
