package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerAll(registry *CommandRegistry) {
	registry.Register(PingCommand())
	registry.Register(AgeCommand())
	registry.Register(ProfileCommand())
	registry.Register(BalanceCommand())
	registry.Register(InventoryCommand())
	registry.Register(ShopCommand())
	registry.Register(HelpCommand(registry))
}

func TestRegistryHoldsAllCommands(t *testing.T) {
	registry := NewCommandRegistry()
	registerAll(registry)

	for _, name := range []string{"ping", "age", "profile", "balance", "inventory", "shop", "help"} {
		assert.Contains(t, registry.Commands, name)
		assert.Contains(t, registry.Handlers, name)
	}
	assert.Len(t, registry.Commands, 7)
}

func TestCommandDefinitionsHaveDescriptions(t *testing.T) {
	registry := NewCommandRegistry()
	registerAll(registry)

	for name, cmd := range registry.Commands {
		assert.NotEmpty(t, cmd.Description, "command %s missing description", name)
		for _, opt := range cmd.Options {
			assert.NotEmpty(t, opt.Description, "option %s of %s missing description", opt.Name, name)
		}
	}
}

func TestBalanceSubcommands(t *testing.T) {
	cmd, _ := BalanceCommand()

	require.Len(t, cmd.Options, 3)
	names := []string{cmd.Options[0].Name, cmd.Options[1].Name, cmd.Options[2].Name}
	assert.Equal(t, []string{"view", "deposit", "withdraw"}, names)

	for _, sub := range cmd.Options[1:] {
		require.Len(t, sub.Options, 1)
		assert.Equal(t, "amount", sub.Options[0].Name)
		assert.True(t, sub.Options[0].Required)
	}
}

func TestCommandsEqual(t *testing.T) {
	a := &discordgo.ApplicationCommand{Name: "ping", Description: "Check if the bot is alive"}
	b := &discordgo.ApplicationCommand{Name: "ping", Description: "Check if the bot is alive"}
	assert.True(t, commandsEqual(
		[]*discordgo.ApplicationCommand{a},
		[]*discordgo.ApplicationCommand{b},
	))

	b.Description = "changed"
	assert.False(t, commandsEqual(
		[]*discordgo.ApplicationCommand{a},
		[]*discordgo.ApplicationCommand{b},
	))
}

func TestCommandsEqualDetectsOptionChanges(t *testing.T) {
	a := &discordgo.ApplicationCommand{
		Name:        "age",
		Description: "Show when an account was created",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "User to look up"},
		},
	}
	b := &discordgo.ApplicationCommand{
		Name:        "age",
		Description: "Show when an account was created",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "User to look up", Required: true},
		},
	}

	assert.False(t, commandEqual(a, b))

	b.Options[0].Required = false
	assert.True(t, commandEqual(a, b))
}

func TestCommandsEqualLengthMismatch(t *testing.T) {
	a := &discordgo.ApplicationCommand{Name: "ping", Description: "d"}
	assert.False(t, commandsEqual(
		[]*discordgo.ApplicationCommand{a},
		[]*discordgo.ApplicationCommand{},
	))
}

func TestBuildHelpTextListsEveryCommand(t *testing.T) {
	registry := NewCommandRegistry()
	registerAll(registry)

	text := buildHelpText(registry)
	for name := range registry.Commands {
		assert.Contains(t, text, "`/"+name+"`")
	}
}

func TestBuildCommandHelp(t *testing.T) {
	registry := NewCommandRegistry()
	registerAll(registry)

	text := buildCommandHelp(registry, "balance")
	assert.Contains(t, text, "`/balance`")
	assert.Contains(t, text, "`/balance deposit`")

	text = buildCommandHelp(registry, "/shop")
	assert.Contains(t, text, "`/shop buy`")

	text = buildCommandHelp(registry, "nope")
	assert.Contains(t, text, "No such command")
}
