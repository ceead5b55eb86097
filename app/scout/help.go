package scout

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/pagination"
	"github.com/bwmarrin/discordgo"
)

const (
	helpTitle   = "FTCScout Bot Help"
	helpWelcome = "Welcome to the FTCScout Bot! Here you can find information about the available commands."
)

// Help sends one landing card followed by one card per command.
func (sm *scoutManager) Help(ctx context.Context, i *discordgo.InteractionCreate) (ScoutOperationResult, error) {
	return sm.operationWrapper(ctx, "help", func(ctx context.Context) (ScoutOperationResult, error) {
		avatarURL := ""
		if user, err := sm.session.GetBotUser(); err != nil {
			sm.logger.WarnContext(ctx, "Could not load bot user for help card", slog.Any("error", err))
		} else if user != nil {
			avatarURL = user.AvatarURL("")
		}

		landing := LandingCard{
			AvatarURL:  avatarURL,
			Developers: sm.config.Scout.Developers,
			Version:    sm.config.DisplayVersion(),
		}
		pages := HelpPages(landing, sm.catalog)

		result, err := sm.paginator.Send(ctx, i, pages)
		if err != nil {
			return ScoutOperationResult{}, err
		}
		if result.Error != nil {
			return ScoutOperationResult{Error: result.Error}, nil
		}
		return ScoutOperationResult{Success: pages}, nil
	})
}

// LandingCard holds what the first help card shows.
type LandingCard struct {
	AvatarURL  string
	Developers []string
	Version    string
}

// HelpPages builds the landing card plus one card per catalog command other
// than help itself.
func HelpPages(landing LandingCard, catalog *Catalog) []pagination.Page {
	embeds := []*discordgo.MessageEmbed{landingEmbed(landing)}
	for _, cmd := range catalog.Commands() {
		if cmd.Name == "help" {
			continue
		}
		embeds = append(embeds, &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("/%s", cmd.Name),
			Description: cmd.Description,
			Color:       helpColor,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Usage", Value: cmd.Usage, Inline: false},
			},
		})
	}
	return pagination.FromEmbeds(embeds...)
}

func landingEmbed(landing LandingCard) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       helpTitle,
		Description: helpWelcome,
		Color:       landingColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Developers", Value: strings.Join(landing.Developers, " and "), Inline: false},
			{Name: "Version", Value: landing.Version, Inline: false},
		},
	}
	if landing.AvatarURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: landing.AvatarURL}
	}
	return embed
}
