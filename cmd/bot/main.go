package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/tesmond/QuarterBot_Go/internal/config"
	"github.com/tesmond/QuarterBot_Go/internal/database"
	"github.com/tesmond/QuarterBot_Go/internal/database/postgres"
	"github.com/tesmond/QuarterBot_Go/internal/discord"
	"github.com/tesmond/QuarterBot_Go/internal/item"
	"github.com/tesmond/QuarterBot_Go/internal/logger"
	"github.com/tesmond/QuarterBot_Go/internal/middleware"
	"github.com/tesmond/QuarterBot_Go/internal/progression"
	"github.com/tesmond/QuarterBot_Go/internal/server"
	"github.com/tesmond/QuarterBot_Go/internal/user"
)

// Version is set at build time via -ldflags
var Version = "dev"

const (
	dbMaxConns       = 25
	dbMaxIdle        = 5 * time.Minute
	dbMaxLife        = time.Hour
	shutdownGraceful = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, "quarterbot", cfg.Environment, false))

	if err := run(cfg); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	// Database
	connString := cfg.GetDBConnString()
	if err := database.Migrate(connString); err != nil {
		return err
	}
	pool, err := database.NewPool(connString, dbMaxConns, dbMaxIdle, dbMaxLife)
	if err != nil {
		return err
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)

	// Item catalog: sync definitions to storage, then build the read view
	loader := item.NewLoader()
	catalogCfg, err := loader.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	if _, err := loader.SyncToDatabase(ctx, catalogCfg, itemRepo); err != nil {
		return err
	}
	catalog, err := item.LoadCatalog(ctx, itemRepo)
	if err != nil {
		return err
	}

	// Core services
	userService := user.NewService(userRepo)
	engine := progression.NewEngine(cfg.MessageCooldownMillis)
	dispatcher := middleware.NewDispatcher(userService, engine, middleware.Policy{
		Timeout:    cfg.StoreTimeout,
		MaxRetries: cfg.StoreMaxRetries,
		RetryDelay: cfg.StoreRetryDelay,
	})

	// Ops HTTP server
	opsServer := server.NewServer(cfg.Port, Version, pool)
	go func() {
		if err := opsServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Ops server failed", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGraceful)
		defer cancel()
		if err := opsServer.Stop(shutdownCtx); err != nil {
			slog.Error("Ops server shutdown failed", "error", err)
		}
	}()

	// Discord bot
	bot, err := discord.New(discord.Config{
		Token: cfg.DiscordToken,
		AppID: cfg.DiscordAppID,
	}, &discord.Deps{
		Dispatcher: dispatcher,
		Catalog:    catalog,
	})
	if err != nil {
		return err
	}

	registerCommands(bot)

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// Not fatal: the bot can still run on previously registered commands
		slog.Error("Failed to register commands", "error", err)
	}

	return bot.Run()
}

func registerCommands(bot *discord.Bot) {
	bot.Registry.Register(discord.PingCommand())
	bot.Registry.Register(discord.AgeCommand())
	bot.Registry.Register(discord.ProfileCommand())
	bot.Registry.Register(discord.BalanceCommand())
	bot.Registry.Register(discord.InventoryCommand())
	bot.Registry.Register(discord.ShopCommand())
	bot.Registry.Register(discord.HelpCommand(bot.Registry))
}
