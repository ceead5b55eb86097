package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/avatar"
	discord "github.com/Black-And-White-Club/discord-ftcscout-bot/app/discordgo"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/favorites"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/health"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/interactions"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/observability"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/pagination"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/scout"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/shared/storage"
	cache "github.com/Black-And-White-Club/discord-ftcscout-bot/bigcache"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/config"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/bwmarrin/discordgo"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

type commandRegistrar func(s discord.Session, logger *slog.Logger, appID, guildID string, defs []*discordgo.ApplicationCommand) error

// DiscordBot owns the gateway session and the in-process event router.
type DiscordBot struct {
	Session         discord.Session
	Logger          *slog.Logger
	Config          *config.Config
	Tracer          trace.Tracer
	Metrics         observability.DiscordMetrics
	Health          *health.Handler
	WatermillRouter *message.Router
	PubSub          *gochannel.GoChannel
	Registry        *interactions.Registry
	Catalog         *scout.Catalog

	stylesheetCache  *cache.Cache
	commandRegistrar commandRegistrar
}

// Options carries the process wide collaborators of a DiscordBot.
type Options struct {
	Session    discord.Session
	Config     *config.Config
	Logger     *slog.Logger
	Tracer     trace.Tracer
	Metrics    observability.DiscordMetrics
	Registerer prometheus.Registerer
	Health     *health.Handler
	Data       scout.DataSource
	HTTPClient *http.Client
}

// NewDiscordBot wires every module of the bot. Nothing talks to Discord
// until Run is called.
func NewDiscordBot(ctx context.Context, opts Options) (*DiscordBot, error) {
	if opts.Session == nil {
		return nil, errors.New("discord session is required")
	}
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	logger := opts.Logger
	logger.InfoContext(ctx, "Creating DiscordBot")

	cfg := opts.Config
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger))

	router, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create watermill router: %w", err)
	}

	stylesheetCache, err := cache.NewCache(ctx, cfg.Scout.AvatarCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create stylesheet cache: %w", err)
	}

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Scout.HTTPTimeout}
	}
	data := opts.Data
	if data == nil {
		data = scout.NewSampleDataSource()
	}

	catalog := scout.DefaultCatalog()
	registry := interactions.NewRegistry(logger)
	registry.UseForCommands(interactions.ChannelGate(opts.Session, logger, cfg.Discord.DebugMode, cfg.Discord.DebugChannelID))

	paginator := pagination.NewPaginationManager(
		opts.Session,
		storage.NewMemoryStore[*pagination.View](ctx, 0),
		logger,
		opts.Tracer,
		opts.Metrics,
	)
	pagination.RegisterHandlers(registry, paginator)

	avatars := avatar.NewStylesheetFetcher(client, stylesheetCache, avatar.Config{
		StylesheetURL:  cfg.Scout.AvatarCSSURL,
		PlaceholderURL: cfg.Scout.PlaceholderAvatarURL,
	}, logger, opts.Tracer)

	scoutManager := scout.NewScoutManager(scout.Dependencies{
		Session:   opts.Session,
		Data:      data,
		Avatars:   avatars,
		Favorites: favorites.NewMemoryStore(ctx),
		Publisher: pubSub,
		Paginator: paginator,
		Catalog:   catalog,
		Config:    cfg,
		Logger:    logger,
		Tracer:    opts.Tracer,
		Metrics:   opts.Metrics,
	})
	scout.RegisterHandlers(registry, scoutManager, catalog)

	favoriteRouter := favorites.NewFavoriteRouter(logger, router, pubSub, opts.Registerer)
	if err := favoriteRouter.Configure(ctx, favorites.NewFavoriteHandlers(logger, opts.Session, opts.Tracer)); err != nil {
		return nil, fmt.Errorf("failed to configure favorite router: %w", err)
	}

	return &DiscordBot{
		Session:          opts.Session,
		Logger:           logger,
		Config:           cfg,
		Tracer:           opts.Tracer,
		Metrics:          opts.Metrics,
		Health:           opts.Health,
		WatermillRouter:  router,
		PubSub:           pubSub,
		Registry:         registry,
		Catalog:          catalog,
		stylesheetCache:  stylesheetCache,
		commandRegistrar: discord.RegisterCommands,
	}, nil
}

// Run registers the slash commands, starts the event router, opens the
// gateway and blocks until ctx is canceled.
func (bot *DiscordBot) Run(ctx context.Context) error {
	bot.Logger.InfoContext(ctx, "Starting Discord bot",
		slog.String("guild_id", bot.Config.Discord.GuildID),
		slog.Bool("debug_mode", bot.Config.Discord.DebugMode))

	// Register slash commands BEFORE opening the session
	if err := bot.commandRegistrar(bot.Session, bot.Logger, bot.Config.Discord.AppID, bot.Config.Discord.GuildID, bot.Catalog.Definitions()); err != nil {
		bot.Logger.ErrorContext(ctx, "Failed to register slash commands", slog.Any("error", err))
		return err
	}

	bot.Session.AddHandler(bot.Registry.HandleInteraction)
	bot.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		bot.onReady(ctx, r)
	})

	// The bus is not persistent: subscribe before any interaction can publish.
	routerErr := make(chan error, 1)
	go func() {
		routerErr <- bot.WatermillRouter.Run(ctx)
	}()
	select {
	case <-bot.WatermillRouter.Running():
	case err := <-routerErr:
		bot.Close()
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("event router stopped: %w", err)
		}
		return nil
	}

	if err := bot.Session.Open(); err != nil {
		bot.Logger.ErrorContext(ctx, "Error opening discord connection", slog.Any("error", err))
		bot.Close()
		<-routerErr
		return err
	}
	bot.Logger.InfoContext(ctx, "Discord bot is now running.")

	err := <-routerErr
	bot.Close()
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("event router stopped: %w", err)
	}
	return nil
}

func (bot *DiscordBot) onReady(ctx context.Context, r *discordgo.Ready) {
	attrs := []any{slog.Int("guilds", len(r.Guilds))}
	if r.User != nil {
		attrs = append(attrs, slog.String("user", r.User.Username))
	}
	bot.Logger.InfoContext(ctx, "Discord bot is connected and ready.", attrs...)
	if bot.Health != nil {
		bot.Health.SetReady(true)
	}
}

// Close stops the event router and the gateway session.
func (bot *DiscordBot) Close() {
	ctx := context.Background()
	bot.Logger.InfoContext(ctx, "Closing bot")
	if bot.Health != nil {
		bot.Health.SetReady(false)
	}
	if bot.WatermillRouter != nil {
		if err := bot.WatermillRouter.Close(); err != nil {
			bot.Logger.ErrorContext(ctx, "Failed to close Watermill router", slog.Any("error", err))
		}
	}
	if bot.PubSub != nil {
		if err := bot.PubSub.Close(); err != nil {
			bot.Logger.ErrorContext(ctx, "Failed to close event bus", slog.Any("error", err))
		}
	}
	if bot.stylesheetCache != nil {
		if err := bot.stylesheetCache.Close(); err != nil {
			bot.Logger.ErrorContext(ctx, "Failed to close stylesheet cache", slog.Any("error", err))
		}
	}
	if err := bot.Session.Close(); err != nil {
		bot.Logger.ErrorContext(ctx, "Failed to close Discord session", slog.Any("error", err))
	}
}
