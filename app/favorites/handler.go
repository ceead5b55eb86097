package favorites

import (
	"fmt"
	"log/slog"

	discord "github.com/Black-And-White-Club/discord-ftcscout-bot/app/discordgo"
	favoriteevents "github.com/Black-And-White-Club/discord-ftcscout-bot/app/events/favorite"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/helpers"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Handlers reacts to favorite team events.
type Handlers interface {
	HandleFavoriteTeamSet(msg *message.Message) error
}

// FavoriteHandlers renames the bot after the guild's favorite team.
type FavoriteHandlers struct {
	logger  *slog.Logger
	session discord.Session
	tracer  trace.Tracer
}

// NewFavoriteHandlers creates a new FavoriteHandlers.
func NewFavoriteHandlers(logger *slog.Logger, session discord.Session, tracer trace.Tracer) Handlers {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("noop")
	}
	return &FavoriteHandlers{
		logger:  logger,
		session: session,
		tracer:  tracer,
	}
}

// NicknameFor returns the nickname the bot takes for a favorite team.
func NicknameFor(teamNumber string) string {
	return fmt.Sprintf("Team %s Bot", teamNumber)
}

// HandleFavoriteTeamSet updates the bot's nickname in the guild. Nickname
// failures are logged and the message is acked, so nothing is redelivered.
func (h *FavoriteHandlers) HandleFavoriteTeamSet(msg *message.Message) error {
	ctx := msg.Context()
	correlationID := msg.Metadata.Get(middleware.CorrelationIDMetadataKey)

	payload, err := helpers.DecodePayload[favoriteevents.FavoriteTeamSetPayload](msg)
	if err != nil {
		h.logger.ErrorContext(ctx, "Dropping malformed favorite event",
			slog.String("message_id", msg.UUID),
			slog.String("correlation_id", correlationID),
			slog.Any("error", err))
		return nil
	}

	ctx, span := h.tracer.Start(ctx, "favorite.update_nickname", trace.WithAttributes(
		attribute.String("guild_id", payload.GuildID),
		attribute.String("team_number", payload.TeamNumber),
	))
	defer span.End()

	if payload.GuildID == "" || payload.TeamNumber == "" {
		h.logger.WarnContext(ctx, "Favorite event missing guild or team",
			slog.String("correlation_id", correlationID))
		return nil
	}

	nickname := NicknameFor(payload.TeamNumber)
	if err := h.session.GuildMemberNickname(payload.GuildID, "@me", nickname); err != nil {
		span.RecordError(err)
		h.logger.WarnContext(ctx, "Could not change nickname",
			slog.String("guild_id", payload.GuildID),
			slog.String("nickname", nickname),
			slog.String("correlation_id", correlationID),
			slog.Any("error", err))
		return nil
	}

	h.logger.InfoContext(ctx, "Updated bot nickname",
		slog.String("guild_id", payload.GuildID),
		slog.String("nickname", nickname),
		slog.String("correlation_id", correlationID))
	return nil
}
