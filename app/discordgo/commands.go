package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// RegisterCommands overwrites the bot's slash commands in a guild with defs.
// An empty guildID registers global commands. When appID is empty the bot
// user's id is used.
func RegisterCommands(s Session, logger *slog.Logger, appID, guildID string, defs []*discordgo.ApplicationCommand) error {
	if appID == "" {
		botUser, err := s.GetBotUser()
		if err != nil {
			return fmt.Errorf("failed to retrieve bot user: %w", err)
		}
		appID = botUser.ID
	}

	registered, err := s.ApplicationCommandBulkOverwrite(appID, guildID, defs)
	if err != nil {
		logger.Error("Failed to register slash commands",
			slog.String("guild_id", guildID),
			slog.Any("error", err))
		return fmt.Errorf("failed to register slash commands: %w", err)
	}

	for _, cmd := range registered {
		if cmd == nil {
			continue
		}
		logger.Info("registered command: /"+cmd.Name, slog.String("guild_id", guildID))
	}
	return nil
}
