package scout

import (
	"context"
	"fmt"
)

// TeamInfo is the summary shown by /team.
type TeamInfo struct {
	Number     string
	TeleopOPR  float64
	AutoOPR    float64
	EndgameOPR float64
	Sponsors   []string
	Location   string
	Website    string
}

// MatchSummary is the scorecard shown by /match.
type MatchSummary struct {
	Number    int
	EventName string
	Time      string
	RedScore  int
	BlueScore int
}

// DataSource supplies competition data to the commands.
//
//go:generate mockgen -source=datasource.go -destination=mocks/mock_datasource.go -package=mocks
type DataSource interface {
	Team(ctx context.Context, teamNumber string) (TeamInfo, error)
	Match(ctx context.Context, red, blue []string) (MatchSummary, error)
	TournamentSchedule(ctx context.Context, eventCode string) ([]string, error)
	TeamSchedule(ctx context.Context, teamNumber string) (string, error)
	LiveScoring(ctx context.Context) (string, error)
	Events(ctx context.Context) (string, error)
}

// SampleDataSource returns fixed sample data until a scoring API client is
// wired in.
type SampleDataSource struct{}

func NewSampleDataSource() *SampleDataSource {
	return &SampleDataSource{}
}

func (SampleDataSource) Team(_ context.Context, teamNumber string) (TeamInfo, error) {
	return TeamInfo{
		Number:     teamNumber,
		TeleopOPR:  45.6,
		AutoOPR:    30.2,
		EndgameOPR: 25.4,
		Sponsors:   []string{"ABC Corp", "XYZ Inc."},
		Location:   "Phoenix, AZ",
		Website:    "http://team14584.org",
	}, nil
}

func (SampleDataSource) Match(_ context.Context, _, _ []string) (MatchSummary, error) {
	return MatchSummary{
		Number:    1,
		EventName: "Arizona Qualifier",
		Time:      "10:00 AM",
		RedScore:  150,
		BlueScore: 140,
	}, nil
}

func (SampleDataSource) TournamentSchedule(_ context.Context, _ string) ([]string, error) {
	schedule := make([]string, 0, 10)
	for idx := 0; idx < 10; idx++ {
		red, blue := 'A'+rune(2*idx), 'B'+rune(2*idx)
		schedule = append(schedule, fmt.Sprintf("Match %d: Team %c vs Team %c", idx+1, red, blue))
	}
	return schedule, nil
}

func (SampleDataSource) TeamSchedule(_ context.Context, _ string) (string, error) {
	return "Sample Team Schedule", nil
}

func (SampleDataSource) LiveScoring(_ context.Context) (string, error) {
	return "Sample Live Scoring", nil
}

func (SampleDataSource) Events(_ context.Context) (string, error) {
	return "Sample List of Events", nil
}
