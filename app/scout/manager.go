package scout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/avatar"
	discord "github.com/Black-And-White-Club/discord-ftcscout-bot/app/discordgo"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/favorites"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/observability"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/pagination"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/config"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/bwmarrin/discordgo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	teamColor     = 0x0066B3
	matchColor    = 0xED1C24
	scheduleColor = 0x3498DB
	helpColor     = 0x3498DB
	landingColor  = 0x95A5A6
)

const genericErrorMessage = "Something went wrong while fetching that data. Please try again later."

// ScoutManager runs the FTCScout slash commands.
type ScoutManager interface {
	Team(ctx context.Context, i *discordgo.InteractionCreate) (ScoutOperationResult, error)
	Match(ctx context.Context, i *discordgo.InteractionCreate) (ScoutOperationResult, error)
	Favorite(ctx context.Context, i *discordgo.InteractionCreate) (ScoutOperationResult, error)
	TournamentSchedule(ctx context.Context, i *discordgo.InteractionCreate) (ScoutOperationResult, error)
	TeamSchedule(ctx context.Context, i *discordgo.InteractionCreate) (ScoutOperationResult, error)
	LiveScoring(ctx context.Context, i *discordgo.InteractionCreate) (ScoutOperationResult, error)
	ListEvents(ctx context.Context, i *discordgo.InteractionCreate) (ScoutOperationResult, error)
	Help(ctx context.Context, i *discordgo.InteractionCreate) (ScoutOperationResult, error)
}

type ScoutOperationResult struct {
	Success interface{}
	Failure interface{}
	Error   error
}

type scoutManager struct {
	session          discord.Session
	data             DataSource
	avatars          avatar.Fetcher
	favorites        *favorites.Store
	publisher        message.Publisher
	paginator        pagination.PaginationManager
	catalog          *Catalog
	config           *config.Config
	logger           *slog.Logger
	tracer           trace.Tracer
	metrics          observability.DiscordMetrics
	now              func() time.Time
	operationWrapper func(ctx context.Context, opName string, fn func(ctx context.Context) (ScoutOperationResult, error)) (ScoutOperationResult, error)
}

// Dependencies groups the collaborators of a ScoutManager.
type Dependencies struct {
	Session   discord.Session
	Data      DataSource
	Avatars   avatar.Fetcher
	Favorites *favorites.Store
	Publisher message.Publisher
	Paginator pagination.PaginationManager
	Catalog   *Catalog
	Config    *config.Config
	Logger    *slog.Logger
	Tracer    trace.Tracer
	Metrics   observability.DiscordMetrics
}

// NewScoutManager creates a new ScoutManager instance.
func NewScoutManager(deps Dependencies) ScoutManager {
	logger := deps.Logger
	if logger != nil {
		logger.InfoContext(context.Background(), "Creating ScoutManager")
	}
	catalog := deps.Catalog
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &scoutManager{
		session:   deps.Session,
		data:      deps.Data,
		avatars:   deps.Avatars,
		favorites: deps.Favorites,
		publisher: deps.Publisher,
		paginator: deps.Paginator,
		catalog:   catalog,
		config:    deps.Config,
		logger:    logger,
		tracer:    deps.Tracer,
		metrics:   deps.Metrics,
		now:       time.Now,
		operationWrapper: func(ctx context.Context, opName string, fn func(ctx context.Context) (ScoutOperationResult, error)) (ScoutOperationResult, error) {
			return wrapScoutOperation(ctx, opName, fn, logger, deps.Tracer, deps.Metrics)
		},
	}
}

func wrapScoutOperation(
	ctx context.Context,
	operationName string,
	fn func(ctx context.Context) (ScoutOperationResult, error),
	logger *slog.Logger,
	tracer trace.Tracer,
	metrics observability.DiscordMetrics,
) (result ScoutOperationResult, err error) {
	if fn == nil {
		return ScoutOperationResult{Error: errors.New("operation function is nil")}, nil
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
			result, err = ScoutOperationResult{Error: panicErr}, nil
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
		return ScoutOperationResult{Error: wrapped}, wrapped
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

// commandOptions returns the string options of a slash command by name.
func commandOptions(i *discordgo.InteractionCreate) map[string]string {
	values := make(map[string]string)
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Type == discordgo.ApplicationCommandOptionString {
			values[opt.Name] = opt.StringValue()
		}
	}
	return values
}

func (sm *scoutManager) respond(i *discordgo.InteractionCreate, data *discordgo.InteractionResponseData) error {
	return sm.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

func (sm *scoutManager) respondText(i *discordgo.InteractionCreate, content string) error {
	return sm.respond(i, &discordgo.InteractionResponseData{Content: content})
}

func (sm *scoutManager) respondEphemeral(ctx context.Context, i *discordgo.InteractionCreate, content string) {
	err := sm.respond(i, &discordgo.InteractionResponseData{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		sm.logger.WarnContext(ctx, "Failed to send ephemeral response", slog.Any("error", err))
	}
}

// rejectInvalid answers a validation failure and reports it as the result.
func (sm *scoutManager) rejectInvalid(ctx context.Context, i *discordgo.InteractionCreate, err *ValidationError) (ScoutOperationResult, error) {
	sm.logger.InfoContext(ctx, "Rejected command input",
		slog.String("interaction_id", i.ID),
		slog.String("field", err.Field))
	sm.respondEphemeral(ctx, i, err.Message)
	return ScoutOperationResult{Failure: err.Message, Error: err}, nil
}

// dataFailure tells the user that the data source failed and returns err.
func (sm *scoutManager) dataFailure(ctx context.Context, i *discordgo.InteractionCreate, what string, err error) (ScoutOperationResult, error) {
	sm.respondEphemeral(ctx, i, genericErrorMessage)
	return ScoutOperationResult{}, fmt.Errorf("failed to fetch %s: %w", what, err)
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
