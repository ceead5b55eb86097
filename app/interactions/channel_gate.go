package interactions

import (
	"context"
	"fmt"
	"log/slog"

	discord "github.com/Black-And-White-Club/discord-ftcscout-bot/app/discordgo"
	"github.com/bwmarrin/discordgo"
)

const debugChannelOnlyMessage = "This command can only be used in the debug channel."

// ChannelRestrictionError indicates a command was invoked outside the
// configured debug channel while debug mode is active.
type ChannelRestrictionError struct {
	ChannelID        string
	AllowedChannelID string
}

func (e *ChannelRestrictionError) Error() string {
	return fmt.Sprintf("channel %s is not allowed, commands are restricted to %s", e.ChannelID, e.AllowedChannelID)
}

// CheckChannel returns a *ChannelRestrictionError when the gate is enabled
// and channelID is not the allowed channel.
func CheckChannel(enabled bool, allowedChannelID, channelID string) error {
	if !enabled || channelID == allowedChannelID {
		return nil
	}
	return &ChannelRestrictionError{ChannelID: channelID, AllowedChannelID: allowedChannelID}
}

// ChannelGate rejects commands outside the debug channel with an ephemeral
// reply. The wrapped handler does not run.
func ChannelGate(session discord.Session, logger *slog.Logger, enabled bool, allowedChannelID string) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, i *discordgo.InteractionCreate) {
			if err := CheckChannel(enabled, allowedChannelID, i.ChannelID); err != nil {
				logger.InfoContext(ctx, "Rejected command outside debug channel",
					slog.String("interaction_id", i.ID),
					slog.Any("error", err))

				respondErr := session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
					Type: discordgo.InteractionResponseChannelMessageWithSource,
					Data: &discordgo.InteractionResponseData{
						Content: debugChannelOnlyMessage,
						Flags:   discordgo.MessageFlagsEphemeral,
					},
				})
				if respondErr != nil {
					logger.ErrorContext(ctx, "Failed to send channel restriction notice", slog.Any("error", respondErr))
				}
				return
			}
			next(ctx, i)
		}
	}
}
