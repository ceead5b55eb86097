package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/bot"
	discord "github.com/Black-And-White-Club/discord-ftcscout-bot/app/discordgo"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/config"
	"github.com/bwmarrin/discordgo"
)

func main() {
	var (
		guildID    = flag.String("guild", "", "Guild ID (defaults to discord.guild_id, empty registers global commands)")
		dryRun     = flag.Bool("dry-run", false, "Show what would be done")
		configPath = flag.String("config", "config.yaml", "Path to the config file")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if *dryRun {
		if err := bot.SyncCommands(nil, logger, bot.SyncOptions{DryRun: true, Out: os.Stdout}); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	target := cfg.Discord.GuildID
	if *guildID != "" {
		target = *guildID
	}

	s, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		fmt.Printf("Error: failed to create Discord session: %v\n", err)
		os.Exit(1)
	}

	err = bot.SyncCommands(discord.NewDiscordSession(s, logger), logger, bot.SyncOptions{
		AppID:   cfg.Discord.AppID,
		GuildID: target,
		Out:     os.Stdout,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
