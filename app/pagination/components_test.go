package pagination

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func navigationButtons(t *testing.T, components []discordgo.MessageComponent) (discordgo.Button, discordgo.Button) {
	t.Helper()
	if len(components) != 1 {
		t.Fatalf("expected one actions row, got %d", len(components))
	}
	row, ok := components[0].(discordgo.ActionsRow)
	if !ok || len(row.Components) != 2 {
		t.Fatalf("expected an actions row with two buttons, got %#v", components[0])
	}
	prev, ok := row.Components[0].(discordgo.Button)
	if !ok {
		t.Fatalf("expected previous button, got %#v", row.Components[0])
	}
	next, ok := row.Components[1].(discordgo.Button)
	if !ok {
		t.Fatalf("expected next button, got %#v", row.Components[1])
	}
	return prev, next
}

func TestNavigationComponents(t *testing.T) {
	tests := []struct {
		name         string
		cursor       int
		total        int
		prevDisabled bool
		nextDisabled bool
	}{
		{name: "first page", cursor: 0, total: 3, prevDisabled: true},
		{name: "middle page", cursor: 1, total: 3},
		{name: "last page", cursor: 2, total: 3, nextDisabled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev, next := navigationButtons(t, navigationComponents("abc", tt.cursor, tt.total))
			if prev.Label != "⬅️ Previous" || next.Label != "➡️ Next" {
				t.Errorf("unexpected labels %q %q", prev.Label, next.Label)
			}
			if prev.CustomID != "pagination_prev|abc" || next.CustomID != "pagination_next|abc" {
				t.Errorf("unexpected custom ids %q %q", prev.CustomID, next.CustomID)
			}
			if prev.Disabled != tt.prevDisabled || next.Disabled != tt.nextDisabled {
				t.Errorf("disabled = (%v, %v), want (%v, %v)", prev.Disabled, next.Disabled, tt.prevDisabled, tt.nextDisabled)
			}
		})
	}
}

func TestNavigationComponents_SinglePageHasNoRow(t *testing.T) {
	if components := navigationComponents("abc", 0, 1); components != nil {
		t.Fatalf("expected no components, got %#v", components)
	}
}

func TestParseCustomID(t *testing.T) {
	tests := []struct {
		name          string
		customID      string
		wantDirection Direction
		wantSession   string
		expectErr     bool
	}{
		{name: "next", customID: "pagination_next|s1", wantDirection: DirectionNext, wantSession: "s1"},
		{name: "previous", customID: "pagination_prev|s2", wantDirection: DirectionPrevious, wantSession: "s2"},
		{name: "unknown prefix", customID: "leaderboard_next|s1", expectErr: true},
		{name: "missing session", customID: "pagination_next|", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			direction, session, err := ParseCustomID(tt.customID)
			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if direction != tt.wantDirection || session != tt.wantSession {
				t.Errorf("got (%q, %q), want (%q, %q)", direction, session, tt.wantDirection, tt.wantSession)
			}
		})
	}
}
