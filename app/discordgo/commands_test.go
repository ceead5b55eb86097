package discord

import (
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func TestRegisterCommands_UsesBotUserWhenAppIDEmpty(t *testing.T) {
	fs := NewFakeSession()
	fs.GetBotUserFunc = func() (*discordgo.User, error) {
		return &discordgo.User{ID: "bot"}, nil
	}

	var gotAppID, gotGuildID string
	var gotNames []string
	fs.ApplicationCommandBulkOverwriteFunc = func(appID, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
		gotAppID, gotGuildID = appID, guildID
		for _, c := range commands {
			gotNames = append(gotNames, c.Name)
		}
		return commands, nil
	}

	defs := []*discordgo.ApplicationCommand{{Name: "team"}, {Name: "help"}}
	if err := RegisterCommands(fs, testLogger(), "", "g1", defs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAppID != "bot" {
		t.Errorf("expected app id from bot user, got %q", gotAppID)
	}
	if gotGuildID != "g1" {
		t.Errorf("expected guild g1, got %q", gotGuildID)
	}
	if !slices.Equal(gotNames, []string{"team", "help"}) {
		t.Errorf("unexpected command names: %v", gotNames)
	}
	if !slices.Contains(fs.Trace(), "GetBotUser") {
		t.Error("expected GetBotUser to be called")
	}
}

func TestRegisterCommands_ExplicitAppIDSkipsBotUser(t *testing.T) {
	fs := NewFakeSession()

	if err := RegisterCommands(fs, testLogger(), "app-1", "", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slices.Contains(fs.Trace(), "GetBotUser") {
		t.Error("GetBotUser should not be called when app id is configured")
	}
}

func TestRegisterCommands_Errors(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(fs *FakeSession)
		expectErr string
	}{
		{
			name: "bot user lookup fails",
			setup: func(fs *FakeSession) {
				fs.GetBotUserFunc = func() (*discordgo.User, error) {
					return nil, errors.New("unauthorized")
				}
			},
			expectErr: "failed to retrieve bot user",
		},
		{
			name: "overwrite fails",
			setup: func(fs *FakeSession) {
				fs.ApplicationCommandBulkOverwriteFunc = func(appID, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
					return nil, errors.New("missing access")
				}
			},
			expectErr: "failed to register slash commands",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := NewFakeSession()
			tt.setup(fs)

			err := RegisterCommands(fs, testLogger(), "", "g1", []*discordgo.ApplicationCommand{{Name: "team"}})
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.expectErr) {
				t.Errorf("expected error containing %q, got %v", tt.expectErr, err)
			}
		})
	}
}
