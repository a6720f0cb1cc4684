package discord

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/tesmond/QuarterBot_Go/internal/domain"
)

// HelpCommand returns the help command definition and handler. The listing
// is generated from the registry so it never drifts from what is actually
// registered.
func HelpCommand(registry *CommandRegistry) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "help",
		Description: "List all available commands",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "command",
				Description: "Command to describe in detail",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		requested := ""
		if options := getOptions(i); len(options) > 0 {
			requested = options[0].StringValue()
		}

		body := func(ctx context.Context, u *domain.User) (string, error) {
			if requested != "" {
				return buildCommandHelp(registry, requested), nil
			}
			return buildHelpText(registry), nil
		}

		handleDispatch(s, i, deps, "help", body, ResponseConfig{
			Title: "📖 Commands",
			Color: 0x95a5a6,
		})
	}

	return cmd, handler
}

func buildHelpText(registry *CommandRegistry) string {
	names := make([]string, 0, len(registry.Commands))
	for name := range registry.Commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		fmt.Fprintf(&sb, "`/%s` - %s\n", name, registry.Commands[name].Description)
	}
	return sb.String()
}

func buildCommandHelp(registry *CommandRegistry, name string) string {
	cmd, ok := registry.Commands[strings.TrimPrefix(name, "/")]
	if !ok {
		return fmt.Sprintf("No such command `%s`. Try `/help`.", name)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "`/%s` - %s\n", cmd.Name, cmd.Description)
	for _, opt := range cmd.Options {
		if opt.Type == discordgo.ApplicationCommandOptionSubCommand {
			fmt.Fprintf(&sb, "• `/%s %s` - %s\n", cmd.Name, opt.Name, opt.Description)
		} else {
			fmt.Fprintf(&sb, "• `%s` - %s\n", opt.Name, opt.Description)
		}
	}
	return sb.String()
}
