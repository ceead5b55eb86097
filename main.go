package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/bot"
	discord "github.com/Black-And-White-Club/discord-ftcscout-bot/app/discordgo"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/health"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/observability"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/shared/redaction"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/config"
	"github.com/bwmarrin/discordgo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "ftcscout-bot",
		Short:        "Discord bot for FTC robotics competition data",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML config file")

	var (
		guildID string
		dryRun  bool
	)
	commands := &cobra.Command{
		Use:   "commands",
		Short: "Register the slash command catalog once and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return registerCommands(cmd.OutOrStdout(), configPath, guildID, dryRun)
		},
	}
	commands.Flags().StringVar(&guildID, "guild", "", "guild id (defaults to discord.guild_id, empty registers global commands)")
	commands.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be registered")

	root.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "Connect to Discord and serve slash commands",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd.Context(), configPath)
			},
		},
		commands,
	)
	return root
}

func run(parent context.Context, configPath string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, flush, err := observability.NewLogger(cfg.Loki, cfg.Service.Name)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer flush()

	logger.InfoContext(ctx, "Starting FTCScout bot",
		slog.String("version", cfg.DisplayVersion()),
		slog.String("token", redaction.RedactToken(cfg.Discord.Token)),
		slog.Bool("debug_mode", cfg.Discord.DebugMode))

	tracer, shutdownTracing, err := observability.InitTracing(ctx, cfg.Tempo, cfg.Service)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("Failed to shut down tracing", slog.Any("error", err))
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := observability.NewPrometheusMetrics(registry, "ftcscout")
	if err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}

	discordSession, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	discordSession.Identify.Intents = discordgo.IntentsGuilds

	healthHandler := health.NewHandler(cfg.DisplayVersion())

	discordBot, err := bot.NewDiscordBot(ctx, bot.Options{
		Session:    discord.NewDiscordSession(discordSession, logger),
		Config:     cfg,
		Logger:     logger,
		Tracer:     tracer,
		Metrics:    metrics,
		Registerer: registry,
		Health:     healthHandler,
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return discordBot.Run(gctx)
	})
	g.Go(func() error {
		logger.InfoContext(gctx, "Serving health and metrics", slog.String("address", cfg.Metrics.Address))
		return healthHandler.Serve(gctx, cfg.Metrics.Address, registry)
	})

	err = g.Wait()
	logger.Info("Shutdown complete.")
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func registerCommands(out io.Writer, configPath, guildID string, dryRun bool) error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	if dryRun {
		return bot.SyncCommands(nil, logger, bot.SyncOptions{DryRun: true, Out: out})
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if guildID == "" {
		guildID = cfg.Discord.GuildID
	}

	discordSession, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	return bot.SyncCommands(discord.NewDiscordSession(discordSession, logger), logger, bot.SyncOptions{
		AppID:   cfg.Discord.AppID,
		GuildID: guildID,
		Out:     out,
	})
}
