package favorites

import (
	"context"
	"errors"
	"testing"

	discord "github.com/Black-And-White-Club/discord-ftcscout-bot/app/discordgo"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/shared/testutils"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace/noop"
)

type nicknameCall struct {
	guildID, userID, nickname string
}

func newFavoriteMessage(t *testing.T, payload string) *message.Message {
	t.Helper()
	msg := message.NewMessage("msg-1", []byte(payload))
	msg.SetContext(context.Background())
	msg.Metadata.Set("correlation_id", "corr-1")
	return msg
}

func TestFavoriteHandlers_HandleFavoriteTeamSet(t *testing.T) {
	tests := []struct {
		name        string
		payload     string
		nicknameErr error
		wantCalls   []nicknameCall
	}{
		{
			name:      "renames bot",
			payload:   `{"guild_id":"guild-1","team_number":"14584"}`,
			wantCalls: []nicknameCall{{guildID: "guild-1", userID: "@me", nickname: "Team 14584 Bot"}},
		},
		{
			name:        "nickname failure is swallowed",
			payload:     `{"guild_id":"guild-1","team_number":"14584"}`,
			nicknameErr: errors.New("missing permissions"),
			wantCalls:   []nicknameCall{{guildID: "guild-1", userID: "@me", nickname: "Team 14584 Bot"}},
		},
		{
			name:    "malformed payload is dropped",
			payload: `{invalid json`,
		},
		{
			name:    "missing guild is dropped",
			payload: `{"team_number":"14584"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := discord.NewFakeSession()
			var calls []nicknameCall
			fs.GuildMemberNicknameFunc = func(guildID, userID, nickname string, options ...discordgo.RequestOption) error {
				calls = append(calls, nicknameCall{guildID: guildID, userID: userID, nickname: nickname})
				return tt.nicknameErr
			}

			h := NewFavoriteHandlers(testutils.NoOpLogger(), fs, noop.NewTracerProvider().Tracer("test"))
			err := h.HandleFavoriteTeamSet(newFavoriteMessage(t, tt.payload))

			assert.NoError(t, err)
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestNicknameFor(t *testing.T) {
	assert.Equal(t, "Team 16236 Bot", NicknameFor("16236"))
}
