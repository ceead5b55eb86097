package bot

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	discord "github.com/Black-And-White-Club/discord-ftcscout-bot/app/discordgo"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/scout"
)

// SyncOptions controls a one-shot registration of the command catalog.
type SyncOptions struct {
	AppID   string
	GuildID string
	DryRun  bool
	Out     io.Writer
}

// SyncCommands registers the default catalog once. A dry run only lists the
// commands and never touches the session.
func SyncCommands(s discord.Session, logger *slog.Logger, opts SyncOptions) error {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	defs := scout.DefaultCatalog().Definitions()

	if opts.DryRun {
		fmt.Fprintln(out, "Dry run: the following commands would be registered.")
		for _, def := range defs {
			fmt.Fprintf(out, "  /%s - %s\n", def.Name, def.Description)
		}
		return nil
	}
	if s == nil {
		return errors.New("discord session is required")
	}

	if err := discord.RegisterCommands(s, logger, opts.AppID, opts.GuildID, defs); err != nil {
		return err
	}
	if opts.GuildID == "" {
		fmt.Fprintf(out, "Registered %d global commands.\n", len(defs))
		return nil
	}
	fmt.Fprintf(out, "Registered %d commands for guild %s.\n", len(defs), opts.GuildID)
	return nil
}
