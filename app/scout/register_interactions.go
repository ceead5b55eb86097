package scout

import (
	"context"

	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/interactions"
	"github.com/bwmarrin/discordgo"
)

// RegisterHandlers registers every catalog command with the registry.
func RegisterHandlers(registry *interactions.Registry, manager ScoutManager, catalog *Catalog) {
	for _, cmd := range catalog.Commands() {
		if cmd.Handler == nil {
			continue
		}
		handler := cmd.Handler
		registry.RegisterHandler(cmd.Name, func(ctx context.Context, i *discordgo.InteractionCreate) {
			_, _ = handler(manager, ctx, i)
		})
	}
}
