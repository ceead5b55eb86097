package pagination

import (
	"context"

	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/interactions"
	"github.com/bwmarrin/discordgo"
)

// RegisterHandlers registers the navigation button handlers.
func RegisterHandlers(registry *interactions.Registry, manager PaginationManager) {
	registry.RegisterHandler(PrevButtonPrefix, func(ctx context.Context, i *discordgo.InteractionCreate) {
		_, _ = manager.HandleNavigation(ctx, i)
	})

	registry.RegisterHandler(NextButtonPrefix, func(ctx context.Context, i *discordgo.InteractionCreate) {
		_, _ = manager.HandleNavigation(ctx, i)
	})
}
