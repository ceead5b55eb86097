package pagination

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	discord "github.com/Black-And-White-Club/discord-ftcscout-bot/app/discordgo"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/observability"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/shared/storage"
	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// PaginationManager sends paginated responses and routes their buttons.
type PaginationManager interface {
	Send(ctx context.Context, i *discordgo.InteractionCreate, pages []Page) (PaginationOperationResult, error)
	HandleNavigation(ctx context.Context, i *discordgo.InteractionCreate) (PaginationOperationResult, error)
}

type PaginationOperationResult struct {
	Success interface{}
	Failure interface{}
	Error   error
}

type paginationManager struct {
	session          discord.Session
	sessions         storage.Store[*View]
	logger           *slog.Logger
	tracer           trace.Tracer
	metrics          observability.DiscordMetrics
	newID            func() string
	operationWrapper func(ctx context.Context, opName string, fn func(ctx context.Context) (PaginationOperationResult, error)) (PaginationOperationResult, error)
}

// NewPaginationManager creates a new PaginationManager instance.
func NewPaginationManager(
	session discord.Session,
	sessions storage.Store[*View],
	logger *slog.Logger,
	tracer trace.Tracer,
	metrics observability.DiscordMetrics,
) PaginationManager {
	if logger != nil {
		logger.InfoContext(context.Background(), "Creating PaginationManager")
	}
	return &paginationManager{
		session:  session,
		sessions: sessions,
		logger:   logger,
		tracer:   tracer,
		metrics:  metrics,
		newID:    uuid.NewString,
		operationWrapper: func(ctx context.Context, opName string, fn func(ctx context.Context) (PaginationOperationResult, error)) (PaginationOperationResult, error) {
			return wrapPaginationOperation(ctx, opName, fn, logger, tracer, metrics)
		},
	}
}

func wrapPaginationOperation(
	ctx context.Context,
	operationName string,
	fn func(ctx context.Context) (PaginationOperationResult, error),
	logger *slog.Logger,
	tracer trace.Tracer,
	metrics observability.DiscordMetrics,
) (result PaginationOperationResult, err error) {
	if fn == nil {
		return PaginationOperationResult{Error: errors.New("operation function is nil")}, nil
	}

	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("noop")
	}

	ctx, span := tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
	))
	defer span.End()

	start := time.Now()
	defer func() {
		if metrics != nil {
			metrics.RecordAPIRequestDuration(ctx, operationName, time.Since(start))
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			panicErr := fmt.Errorf("panic in %s: %v", operationName, r)
			span.RecordError(panicErr)
			if logger != nil {
				logger.ErrorContext(ctx, "Recovered from panic", slog.Any("error", panicErr))
			}
			if metrics != nil {
				metrics.RecordAPIError(ctx, operationName, "panic")
			}
			result, err = PaginationOperationResult{Error: panicErr}, nil
		}
	}()

	result, err = fn(ctx)
	if err != nil {
		wrapped := fmt.Errorf("%s operation error: %w", operationName, err)
		span.RecordError(wrapped)
		if logger != nil {
			logger.ErrorContext(ctx, fmt.Sprintf("Error in %s", operationName), slog.Any("error", wrapped))
		}
		if metrics != nil {
			metrics.RecordAPIError(ctx, operationName, "operation_error")
		}
		return PaginationOperationResult{Error: wrapped}, wrapped
	}

	if result.Error != nil {
		span.RecordError(result.Error)
		if metrics != nil {
			metrics.RecordAPIError(ctx, operationName, "result_error")
		}
	} else if metrics != nil {
		metrics.RecordAPIRequest(ctx, operationName)
	}

	return result, nil
}

// Send responds to i with the first page and, for multi-page sets, binds a
// View to the sent message so the navigation buttons work.
func (pm *paginationManager) Send(ctx context.Context, i *discordgo.InteractionCreate, pages []Page) (PaginationOperationResult, error) {
	return pm.operationWrapper(ctx, "send_paginated", func(ctx context.Context) (PaginationOperationResult, error) {
		view, err := NewView(pm.newID(), pages)
		if err != nil {
			return PaginationOperationResult{Error: err}, nil
		}

		err = pm.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds:     []*discordgo.MessageEmbed{view.Current().Embed},
				Components: view.Components(),
			},
		})
		if err != nil {
			return PaginationOperationResult{}, fmt.Errorf("failed to send paginated response: %w", err)
		}

		if view.PageCount() == 1 {
			return PaginationOperationResult{Success: view}, nil
		}

		message, err := pm.session.InteractionResponse(i.Interaction)
		if err != nil {
			pm.logger.WarnContext(ctx, "Could not fetch paginated message, view left unbound",
				slog.String("session_id", view.ID()),
				slog.Any("error", err))
		} else if message != nil {
			view.Bind(message.ID)
		}

		if err := pm.sessions.Set(ctx, view.ID(), view); err != nil {
			return PaginationOperationResult{}, fmt.Errorf("failed to store pagination session: %w", err)
		}

		pm.logger.InfoContext(ctx, "Pagination session started",
			slog.String("session_id", view.ID()),
			slog.String("message_id", view.MessageID()),
			slog.Int("pages", view.PageCount()))

		return PaginationOperationResult{Success: view}, nil
	})
}

// HandleNavigation applies a Previous/Next press to the view it belongs to.
// Render failures are logged and reported in the result, never returned.
func (pm *paginationManager) HandleNavigation(ctx context.Context, i *discordgo.InteractionCreate) (PaginationOperationResult, error) {
	customID := i.MessageComponentData().CustomID

	pm.logger.InfoContext(ctx, "Handling pagination interaction",
		slog.String("interaction_id", i.ID),
		slog.String("custom_id", customID),
		slog.String("user_id", interactionUserID(i)))

	return pm.operationWrapper(ctx, "handle_pagination", func(ctx context.Context) (PaginationOperationResult, error) {
		direction, sessionID, err := ParseCustomID(customID)
		if err != nil {
			pm.logger.ErrorContext(ctx, err.Error())
			return PaginationOperationResult{Error: err}, nil
		}

		view, err := pm.sessions.Get(ctx, sessionID)
		if err != nil {
			pm.logger.WarnContext(ctx, "Pagination session not found", slog.String("session_id", sessionID))
			pm.respondEphemeral(ctx, i, "This menu is no longer active.")
			return PaginationOperationResult{Failure: "session not found"}, nil
		}

		if i.Message != nil && !view.Accepts(i.Message.ID) {
			pm.logger.WarnContext(ctx, ErrMessageMismatch.Error(),
				slog.String("session_id", sessionID),
				slog.String("bound_message_id", view.MessageID()),
				slog.String("message_id", i.Message.ID))
			pm.acknowledge(ctx, i)
			return PaginationOperationResult{Failure: ErrMessageMismatch.Error()}, nil
		}

		target := &interactionTarget{session: pm.session, interaction: i.Interaction}

		var changed bool
		switch direction {
		case DirectionNext:
			changed, err = view.Next(ctx, target)
		default:
			changed, err = view.Previous(ctx, target)
		}

		if err != nil {
			pm.logger.ErrorContext(ctx, "Failed to render page",
				slog.String("session_id", sessionID),
				slog.Int("cursor", view.Cursor()),
				slog.Any("error", err))
			var unavailable *RenderTargetUnavailableError
			if errors.As(err, &unavailable) && unavailable.MessageGone() {
				pm.sessions.Delete(ctx, sessionID)
				pm.logger.InfoContext(ctx, "Dropped pagination session for deleted message", slog.String("session_id", sessionID))
			}
			return PaginationOperationResult{Error: err}, nil
		}

		if !changed {
			pm.acknowledge(ctx, i)
			return PaginationOperationResult{Failure: "page out of range"}, nil
		}

		if pm.metrics != nil {
			pm.metrics.RecordPageTurn(ctx, string(direction))
		}
		return PaginationOperationResult{Success: "pagination updated"}, nil
	})
}

// acknowledge answers a press that changes nothing so Discord does not show
// "interaction failed".
func (pm *paginationManager) acknowledge(ctx context.Context, i *discordgo.InteractionCreate) {
	err := pm.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		pm.logger.WarnContext(ctx, "Failed to acknowledge pagination interaction", slog.Any("error", err))
	}
}

func (pm *paginationManager) respondEphemeral(ctx context.Context, i *discordgo.InteractionCreate, content string) {
	err := pm.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		pm.logger.WarnContext(ctx, "Failed to send ephemeral pagination notice", slog.Any("error", err))
	}
}

// interactionTarget renders by updating the message the button belongs to.
type interactionTarget struct {
	session     discord.Session
	interaction *discordgo.Interaction
}

func (t *interactionTarget) Render(_ context.Context, page Page, components []discordgo.MessageComponent) error {
	return t.session.InteractionRespond(t.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{page.Embed},
			Components: components,
		},
	})
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	switch {
	case i.Member != nil && i.Member.User != nil:
		return i.Member.User.ID
	case i.User != nil:
		return i.User.ID
	default:
		return ""
	}
}
