package scout

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const (
	matchFooter         = "Use /match <red_alliance> <blue_alliance> for specific match details."
	allianceSizeMessage = "Each alliance must have exactly 2 team numbers."
)

// ProcessAlliance splits a comma-separated alliance into trimmed team
// numbers.
func ProcessAlliance(alliance string) []string {
	parts := strings.Split(alliance, ",")
	for idx := range parts {
		parts[idx] = strings.TrimSpace(parts[idx])
	}
	return parts
}

// ValidateAlliances checks that red, and blue when given, hold exactly two
// comma-separated entries. Entries are not checked further, so "111," passes
// with an empty second team.
func ValidateAlliances(red, blue string) ([]string, []string, error) {
	redTeams := ProcessAlliance(red)
	if len(redTeams) != 2 {
		return nil, nil, &ValidationError{Field: "red_alliance", Message: allianceSizeMessage}
	}

	var blueTeams []string
	if blue != "" {
		blueTeams = ProcessAlliance(blue)
		if len(blueTeams) != 2 {
			return nil, nil, &ValidationError{Field: "blue_alliance", Message: allianceSizeMessage}
		}
	}
	return redTeams, blueTeams, nil
}

// Match shows the scorecard for the given alliances.
func (sm *scoutManager) Match(ctx context.Context, i *discordgo.InteractionCreate) (ScoutOperationResult, error) {
	return sm.operationWrapper(ctx, "match", func(ctx context.Context) (ScoutOperationResult, error) {
		options := commandOptions(i)

		red, blue, err := ValidateAlliances(options["red_alliance"], options["blue_alliance"])
		var invalid *ValidationError
		if errors.As(err, &invalid) {
			return sm.rejectInvalid(ctx, i, invalid)
		}

		summary, err := sm.data.Match(ctx, red, blue)
		if err != nil {
			return sm.dataFailure(ctx, i, "match", err)
		}

		embed := MatchEmbed(summary, red, blue)
		if err := sm.respond(i, &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}}); err != nil {
			return ScoutOperationResult{}, fmt.Errorf("failed to send match card: %w", err)
		}
		return ScoutOperationResult{Success: embed}, nil
	})
}

// MatchEmbed renders the scorecard. Blue fields appear only when a blue
// alliance was given.
func MatchEmbed(summary MatchSummary, red, blue []string) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Red Alliance", Value: strings.Join(red, "\n"), Inline: true},
	}
	if len(blue) > 0 {
		fields = append(fields,
			&discordgo.MessageEmbedField{Name: "Blue Alliance", Value: strings.Join(blue, "\n"), Inline: true},
			&discordgo.MessageEmbedField{Name: "Red Score", Value: strconv.Itoa(summary.RedScore), Inline: true},
			&discordgo.MessageEmbedField{Name: "Blue Score", Value: strconv.Itoa(summary.BlueScore), Inline: true},
		)
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Match %d - %s", summary.Number, summary.EventName),
		Description: fmt.Sprintf("**Match Time:** %s", summary.Time),
		Color:       matchColor,
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: matchFooter},
	}
}
