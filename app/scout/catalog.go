package scout

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// CommandHandler runs one slash command on a ScoutManager.
type CommandHandler func(m ScoutManager, ctx context.Context, i *discordgo.InteractionCreate) (ScoutOperationResult, error)

// Command describes one slash command.
type Command struct {
	Name        string
	Description string
	Usage       string
	Options     []*discordgo.ApplicationCommandOption
	Handler     CommandHandler
}

// Definition returns the registration payload for the command.
func (c Command) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Type:        discordgo.ChatApplicationCommand,
		Options:     c.Options,
	}
}

// Catalog is the ordered set of commands the bot serves.
type Catalog struct {
	commands []Command
	byName   map[string]int
}

// NewCatalog builds a catalog. Later duplicates replace earlier commands.
func NewCatalog(commands ...Command) *Catalog {
	c := &Catalog{byName: make(map[string]int, len(commands))}
	for _, cmd := range commands {
		if idx, ok := c.byName[cmd.Name]; ok {
			c.commands[idx] = cmd
			continue
		}
		c.byName[cmd.Name] = len(c.commands)
		c.commands = append(c.commands, cmd)
	}
	return c
}

// Commands returns the commands in registration order.
func (c *Catalog) Commands() []Command {
	return append([]Command(nil), c.commands...)
}

// Definitions returns the registration payloads for every command.
func (c *Catalog) Definitions() []*discordgo.ApplicationCommand {
	defs := make([]*discordgo.ApplicationCommand, 0, len(c.commands))
	for _, cmd := range c.commands {
		defs = append(defs, cmd.Definition())
	}
	return defs
}

func stringOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

// DefaultCatalog returns the FTCScout commands.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Command{
			Name:        "team",
			Description: "Displays team information.",
			Usage:       "/team <team_number>",
			Options:     []*discordgo.ApplicationCommandOption{stringOption("team_number", "Details about the team.", true)},
			Handler:     ScoutManager.Team,
		},
		Command{
			Name:        "match",
			Description: "Displays match details.",
			Usage:       "/match <red_alliance> <blue_alliance>",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("red_alliance", "Red Alliance team numbers (comma-separated).", true),
				stringOption("blue_alliance", "Blue Alliance team numbers (comma-separated, optional).", false),
			},
			Handler: ScoutManager.Match,
		},
		Command{
			Name:        "favorite",
			Description: "Marks this as your favorite.",
			Usage:       "/favorite <team_number>",
			Options:     []*discordgo.ApplicationCommandOption{stringOption("team_number", "The team to mark as favorite.", true)},
			Handler:     ScoutManager.Favorite,
		},
		Command{
			Name:        "tournament_schedule",
			Description: "Displays tournament schedule given an event code.",
			Usage:       "/tournament_schedule <event_code>",
			Options:     []*discordgo.ApplicationCommandOption{stringOption("event_code", "The event code for the tournament.", true)},
			Handler:     ScoutManager.TournamentSchedule,
		},
		Command{
			Name:        "team_schedule",
			Description: "Displays team schedule given a team number.",
			Usage:       "/team_schedule <team_number>",
			Options:     []*discordgo.ApplicationCommandOption{stringOption("team_number", "The team number.", true)},
			Handler:     ScoutManager.TeamSchedule,
		},
		Command{
			Name:        "live_scoring",
			Description: "Displays live scoring for the tournament.",
			Usage:       "/live_scoring",
			Handler:     ScoutManager.LiveScoring,
		},
		Command{
			Name:        "list_events",
			Description: "Lists events at the tournament.",
			Usage:       "/list_events",
			Handler:     ScoutManager.ListEvents,
		},
		Command{
			Name:        "help",
			Description: "Displays help information.",
			Usage:       "/help",
			Handler:     ScoutManager.Help,
		},
	)
}
