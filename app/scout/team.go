package scout

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const teamFooter = "Use /team <team_number> for specific team details."

// Team shows the team card. The response is deferred because the avatar
// lookup may download the stylesheet.
func (sm *scoutManager) Team(ctx context.Context, i *discordgo.InteractionCreate) (ScoutOperationResult, error) {
	return sm.operationWrapper(ctx, "team", func(ctx context.Context) (ScoutOperationResult, error) {
		teamNumber := strings.TrimSpace(commandOptions(i)["team_number"])
		if teamNumber == "" {
			return sm.rejectInvalid(ctx, i, &ValidationError{Field: "team_number", Message: "Please provide a team number."})
		}

		err := sm.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		})
		if err != nil {
			return ScoutOperationResult{}, fmt.Errorf("failed to defer team response: %w", err)
		}

		info, err := sm.data.Team(ctx, teamNumber)
		if err != nil {
			sm.editText(ctx, i, genericErrorMessage)
			return ScoutOperationResult{}, fmt.Errorf("failed to fetch team %s: %w", teamNumber, err)
		}

		thumbnail, err := sm.avatars.AvatarURL(ctx, teamNumber)
		if err != nil {
			sm.logger.WarnContext(ctx, "Using placeholder avatar",
				slog.String("team_number", teamNumber),
				slog.Any("error", err))
		}

		embed := TeamEmbed(info, thumbnail)
		_, err = sm.session.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Embeds: &[]*discordgo.MessageEmbed{embed},
		})
		if err != nil {
			return ScoutOperationResult{}, fmt.Errorf("failed to send team card: %w", err)
		}

		return ScoutOperationResult{Success: embed}, nil
	})
}

// TeamEmbed renders the team card.
func TeamEmbed(info TeamInfo, thumbnailURL string) *discordgo.MessageEmbed {
	lines := []string{
		fmt.Sprintf("OPR for teleop: %.1f", info.TeleopOPR),
		fmt.Sprintf("OPR for auto: %.1f", info.AutoOPR),
		fmt.Sprintf("OPR for endgame: %.1f", info.EndgameOPR),
		fmt.Sprintf("Sponsors: %s", strings.Join(info.Sponsors, ", ")),
		fmt.Sprintf("Location: %s", info.Location),
		fmt.Sprintf("Website: %s", info.Website),
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Team information for Team %s", info.Number),
		Description: strings.Join(lines, "\n"),
		Color:       teamColor,
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: thumbnailURL},
		Footer:      &discordgo.MessageEmbedFooter{Text: teamFooter},
	}
}

func (sm *scoutManager) editText(ctx context.Context, i *discordgo.InteractionCreate, content string) {
	if _, err := sm.session.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content}); err != nil {
		sm.logger.WarnContext(ctx, "Failed to edit deferred response", slog.Any("error", err))
	}
}
