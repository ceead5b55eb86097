package scout

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	favoriteevents "github.com/Black-And-White-Club/discord-ftcscout-bot/app/events/favorite"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/helpers"
	"github.com/bwmarrin/discordgo"
)

const favoriteReaction = "⭐"

// Favorite records the guild's favorite team, confirms it, stars the
// confirmation and asks for the nickname update. The star and the nickname
// are best effort.
func (sm *scoutManager) Favorite(ctx context.Context, i *discordgo.InteractionCreate) (ScoutOperationResult, error) {
	return sm.operationWrapper(ctx, "favorite", func(ctx context.Context) (ScoutOperationResult, error) {
		if i.GuildID == "" {
			return sm.rejectInvalid(ctx, i, &ValidationError{Field: "guild", Message: "This command can only be used in a server."})
		}

		teamNumber := strings.TrimSpace(commandOptions(i)["team_number"])
		if teamNumber == "" {
			return sm.rejectInvalid(ctx, i, &ValidationError{Field: "team_number", Message: "Please provide a team number."})
		}

		if err := sm.favorites.SetFavorite(ctx, i.GuildID, teamNumber); err != nil {
			return ScoutOperationResult{}, err
		}
		sm.logger.InfoContext(ctx, fmt.Sprintf("Team %s is now marked as the favorite for server %s.", teamNumber, i.GuildID),
			slog.String("guild_id", i.GuildID),
			slog.String("team_number", teamNumber),
			slog.String("user_id", interactionUserID(i)))

		confirmation := fmt.Sprintf("Team %s is now marked as the favorite for this server.", teamNumber)
		if err := sm.respondText(i, confirmation); err != nil {
			return ScoutOperationResult{}, fmt.Errorf("failed to confirm favorite: %w", err)
		}

		sm.addFavoriteReaction(ctx, i)

		if sm.publisher != nil {
			payload := favoriteevents.FavoriteTeamSetPayload{
				GuildID:    i.GuildID,
				ChannelID:  i.ChannelID,
				UserID:     interactionUserID(i),
				TeamNumber: teamNumber,
				SetAt:      sm.now().UTC(),
			}
			if err := helpers.PublishEvent(ctx, sm.publisher, favoriteevents.FavoriteTeamSetTopic, i.ID, payload); err != nil {
				sm.logger.WarnContext(ctx, "Could not request nickname update", slog.Any("error", err))
			}
		}

		return ScoutOperationResult{Success: teamNumber}, nil
	})
}

func (sm *scoutManager) addFavoriteReaction(ctx context.Context, i *discordgo.InteractionCreate) {
	msg, err := sm.session.InteractionResponse(i.Interaction)
	if err != nil || msg == nil {
		sm.logger.WarnContext(ctx, "Could not add reaction: message not found", slog.Any("error", err))
		return
	}

	channelID := msg.ChannelID
	if channelID == "" {
		channelID = i.ChannelID
	}
	if err := sm.session.MessageReactionAdd(channelID, msg.ID, favoriteReaction); err != nil {
		sm.logger.WarnContext(ctx, "Could not add reaction",
			slog.String("message_id", msg.ID),
			slog.Any("error", err))
	}
}
