package scout

import (
	"context"
	"fmt"
	"strings"

	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/pagination"
	"github.com/bwmarrin/discordgo"
)

// TournamentSchedule sends the event schedule as a paginated card.
func (sm *scoutManager) TournamentSchedule(ctx context.Context, i *discordgo.InteractionCreate) (ScoutOperationResult, error) {
	return sm.operationWrapper(ctx, "tournament_schedule", func(ctx context.Context) (ScoutOperationResult, error) {
		eventCode := strings.TrimSpace(commandOptions(i)["event_code"])
		if eventCode == "" {
			return sm.rejectInvalid(ctx, i, &ValidationError{Field: "event_code", Message: "Please provide an event code."})
		}

		schedule, err := sm.data.TournamentSchedule(ctx, eventCode)
		if err != nil {
			return sm.dataFailure(ctx, i, "tournament schedule", err)
		}

		pages, err := pagination.Paginate("Tournament Schedule", schedule, scheduleColor, sm.config.Scout.SchedulePageSize)
		if err != nil {
			return ScoutOperationResult{}, err
		}

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

// TeamSchedule sends the schedule of one team.
func (sm *scoutManager) TeamSchedule(ctx context.Context, i *discordgo.InteractionCreate) (ScoutOperationResult, error) {
	return sm.operationWrapper(ctx, "team_schedule", func(ctx context.Context) (ScoutOperationResult, error) {
		teamNumber := strings.TrimSpace(commandOptions(i)["team_number"])
		if teamNumber == "" {
			return sm.rejectInvalid(ctx, i, &ValidationError{Field: "team_number", Message: "Please provide a team number."})
		}
		return sm.sendText(ctx, i, "team schedule", func(ctx context.Context) (string, error) {
			return sm.data.TeamSchedule(ctx, teamNumber)
		})
	})
}

// LiveScoring sends the current scores.
func (sm *scoutManager) LiveScoring(ctx context.Context, i *discordgo.InteractionCreate) (ScoutOperationResult, error) {
	return sm.operationWrapper(ctx, "live_scoring", func(ctx context.Context) (ScoutOperationResult, error) {
		return sm.sendText(ctx, i, "live scoring", sm.data.LiveScoring)
	})
}

// ListEvents sends the events at the tournament.
func (sm *scoutManager) ListEvents(ctx context.Context, i *discordgo.InteractionCreate) (ScoutOperationResult, error) {
	return sm.operationWrapper(ctx, "list_events", func(ctx context.Context) (ScoutOperationResult, error) {
		return sm.sendText(ctx, i, "events", sm.data.Events)
	})
}

func (sm *scoutManager) sendText(ctx context.Context, i *discordgo.InteractionCreate, what string, fetch func(context.Context) (string, error)) (ScoutOperationResult, error) {
	text, err := fetch(ctx)
	if err != nil {
		return sm.dataFailure(ctx, i, what, err)
	}
	if err := sm.respondText(i, text); err != nil {
		return ScoutOperationResult{}, fmt.Errorf("failed to send %s: %w", what, err)
	}
	return ScoutOperationResult{Success: text}, nil
}
