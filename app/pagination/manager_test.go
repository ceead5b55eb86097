package pagination

import (
	"context"
	"errors"
	"net/http"
	"testing"

	discord "github.com/Black-And-White-Club/discord-ftcscout-bot/app/discordgo"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/shared/storage"
	"github.com/Black-And-White-Club/discord-ftcscout-bot/app/shared/testutils"
	"github.com/bwmarrin/discordgo"
	"go.opentelemetry.io/otel/trace/noop"
)

type responseLog struct {
	responses []*discordgo.InteractionResponse
	err       error
}

func newTestManager(t *testing.T, fs *discord.FakeSession) (*paginationManager, storage.Store[*View]) {
	t.Helper()
	sessions := storage.NewMemoryStore[*View](context.Background(), 0)
	pm := NewPaginationManager(fs, sessions, testutils.NoOpLogger(), noop.NewTracerProvider().Tracer("test"), nil).(*paginationManager)
	pm.newID = func() string { return "session-1" }
	return pm, sessions
}

func recordResponses(fs *discord.FakeSession, log *responseLog) {
	fs.InteractionRespondFunc = func(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
		if log.err != nil {
			return log.err
		}
		log.responses = append(log.responses, resp)
		return nil
	}
}

func commandInteraction() *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:   "cmd-1",
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{Name: "tournament_schedule"},
	}}
}

func pressInteraction(customID, messageID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:      "press-1",
		Type:    discordgo.InteractionMessageComponent,
		Message: &discordgo.Message{ID: messageID},
		Member:  &discordgo.Member{User: &discordgo.User{ID: "user-1"}},
		Data:    discordgo.MessageComponentInteractionData{CustomID: customID},
	}}
}

func schedulePages(t *testing.T, items int) []Page {
	t.Helper()
	pages, err := Paginate("Tournament Schedule", numberedItems(items), 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return pages
}

func TestPaginationManager_SendBindsView(t *testing.T) {
	fs := discord.NewFakeSession()
	log := &responseLog{}
	recordResponses(fs, log)
	fs.InteractionResponseFunc = func(interaction *discordgo.Interaction, options ...discordgo.RequestOption) (*discordgo.Message, error) {
		return &discordgo.Message{ID: "message-1"}, nil
	}
	pm, sessions := newTestManager(t, fs)

	result, err := pm.Send(context.Background(), commandInteraction(), schedulePages(t, 25))
	if err != nil || result.Error != nil {
		t.Fatalf("unexpected error: %v %v", err, result.Error)
	}

	if len(log.responses) != 1 {
		t.Fatalf("expected one response, got %d", len(log.responses))
	}
	resp := log.responses[0]
	if resp.Type != discordgo.InteractionResponseChannelMessageWithSource {
		t.Errorf("unexpected response type %v", resp.Type)
	}
	if resp.Data.Embeds[0].Footer.Text != "Page 1/3" {
		t.Errorf("expected first page, got %q", resp.Data.Embeds[0].Footer.Text)
	}
	prev, next := navigationButtons(t, resp.Data.Components)
	if !prev.Disabled || next.Disabled {
		t.Errorf("unexpected button state prev=%v next=%v", prev.Disabled, next.Disabled)
	}

	view, err := sessions.Get(context.Background(), "session-1")
	if err != nil {
		t.Fatalf("expected stored view: %v", err)
	}
	if view.MessageID() != "message-1" {
		t.Errorf("expected bound message, got %q", view.MessageID())
	}
}

func TestPaginationManager_SendSinglePageStoresNothing(t *testing.T) {
	fs := discord.NewFakeSession()
	log := &responseLog{}
	recordResponses(fs, log)
	pm, sessions := newTestManager(t, fs)

	result, err := pm.Send(context.Background(), commandInteraction(), schedulePages(t, 4))
	if err != nil || result.Error != nil {
		t.Fatalf("unexpected error: %v %v", err, result.Error)
	}
	if log.responses[0].Data.Components != nil {
		t.Error("expected no buttons for a single page")
	}
	if sessions.Len() != 0 {
		t.Errorf("expected no stored sessions, got %d", sessions.Len())
	}
	for _, step := range fs.Trace() {
		if step == "InteractionResponse" {
			t.Error("single page send should not fetch the message")
		}
	}
}

func TestPaginationManager_SendRejectsEmptyPages(t *testing.T) {
	pm, _ := newTestManager(t, discord.NewFakeSession())

	result, err := pm.Send(context.Background(), commandInteraction(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errors.Is(result.Error, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", result.Error)
	}
}

func TestPaginationManager_SendRespondError(t *testing.T) {
	fs := discord.NewFakeSession()
	recordResponses(fs, &responseLog{err: errors.New("discord down")})
	pm, _ := newTestManager(t, fs)

	_, err := pm.Send(context.Background(), commandInteraction(), schedulePages(t, 25))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestPaginationManager_HandleNavigation(t *testing.T) {
	tests := []struct {
		name        string
		customID    string
		messageID   string
		startCursor int
		renderErr   error
		wantSuccess interface{}
		wantFailure interface{}
		wantErr     bool
		wantCursor  int
		wantType    discordgo.InteractionResponseType
		wantFooter  string
	}{
		{
			name:        "next advances",
			customID:    "pagination_next|session-1",
			messageID:   "message-1",
			wantSuccess: "pagination updated",
			wantCursor:  1,
			wantType:    discordgo.InteractionResponseUpdateMessage,
			wantFooter:  "Page 2/3",
		},
		{
			name:        "previous at start is acknowledged",
			customID:    "pagination_prev|session-1",
			messageID:   "message-1",
			wantFailure: "page out of range",
			wantCursor:  0,
			wantType:    discordgo.InteractionResponseDeferredMessageUpdate,
		},
		{
			name:        "next at end is acknowledged",
			customID:    "pagination_next|session-1",
			messageID:   "message-1",
			startCursor: 2,
			wantFailure: "page out of range",
			wantCursor:  2,
			wantType:    discordgo.InteractionResponseDeferredMessageUpdate,
		},
		{
			name:        "other message is ignored",
			customID:    "pagination_next|session-1",
			messageID:   "message-2",
			wantFailure: ErrMessageMismatch.Error(),
			wantCursor:  0,
			wantType:    discordgo.InteractionResponseDeferredMessageUpdate,
		},
		{
			name:       "render failure is swallowed",
			customID:   "pagination_next|session-1",
			messageID:  "message-1",
			renderErr:  errors.New("unknown message"),
			wantErr:    true,
			wantCursor: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := discord.NewFakeSession()
			log := &responseLog{}
			recordResponses(fs, log)
			pm, sessions := newTestManager(t, fs)

			view, err := NewView("session-1", schedulePages(t, 25))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			view.Bind("message-1")
			view.cursor = tt.startCursor
			_ = sessions.Set(context.Background(), "session-1", view)

			log.err = tt.renderErr

			result, err := pm.HandleNavigation(context.Background(), pressInteraction(tt.customID, tt.messageID))
			if err != nil {
				t.Fatalf("navigation errors must not propagate: %v", err)
			}

			if tt.wantErr {
				if !IsRenderTargetUnavailable(result.Error) {
					t.Fatalf("expected RenderTargetUnavailableError, got %v", result.Error)
				}
			} else if result.Error != nil {
				t.Fatalf("unexpected result error: %v", result.Error)
			}
			if result.Success != tt.wantSuccess {
				t.Errorf("success = %v, want %v", result.Success, tt.wantSuccess)
			}
			if result.Failure != tt.wantFailure {
				t.Errorf("failure = %v, want %v", result.Failure, tt.wantFailure)
			}
			if view.Cursor() != tt.wantCursor {
				t.Errorf("cursor = %d, want %d", view.Cursor(), tt.wantCursor)
			}

			if tt.wantType == 0 {
				return
			}
			if len(log.responses) != 1 {
				t.Fatalf("expected one response, got %d", len(log.responses))
			}
			resp := log.responses[0]
			if resp.Type != tt.wantType {
				t.Errorf("response type = %v, want %v", resp.Type, tt.wantType)
			}
			if tt.wantFooter != "" && resp.Data.Embeds[0].Footer.Text != tt.wantFooter {
				t.Errorf("footer = %q, want %q", resp.Data.Embeds[0].Footer.Text, tt.wantFooter)
			}
		})
	}
}

func TestPaginationManager_HandleNavigationDropsSessionOfDeletedMessage(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantStored bool
	}{
		{name: "deleted message", status: http.StatusNotFound, wantStored: false},
		{name: "missing permissions", status: http.StatusForbidden, wantStored: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := discord.NewFakeSession()
			recordResponses(fs, &responseLog{err: &discordgo.RESTError{Response: &http.Response{StatusCode: tt.status}}})
			pm, sessions := newTestManager(t, fs)

			view, err := NewView("session-1", schedulePages(t, 25))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			view.Bind("message-1")
			_ = sessions.Set(context.Background(), "session-1", view)

			result, err := pm.HandleNavigation(context.Background(), pressInteraction("pagination_next|session-1", "message-1"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !IsRenderTargetUnavailable(result.Error) {
				t.Fatalf("expected RenderTargetUnavailableError, got %v", result.Error)
			}

			_, getErr := sessions.Get(context.Background(), "session-1")
			if stored := getErr == nil; stored != tt.wantStored {
				t.Errorf("session stored = %v, want %v", stored, tt.wantStored)
			}
		})
	}
}

func TestPaginationManager_HandleNavigationUnknownSession(t *testing.T) {
	fs := discord.NewFakeSession()
	log := &responseLog{}
	recordResponses(fs, log)
	pm, _ := newTestManager(t, fs)

	result, err := pm.HandleNavigation(context.Background(), pressInteraction("pagination_next|missing", "message-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Failure != "session not found" {
		t.Errorf("unexpected failure %v", result.Failure)
	}
	if len(log.responses) != 1 || log.responses[0].Data.Flags != discordgo.MessageFlagsEphemeral {
		t.Fatalf("expected ephemeral notice, got %+v", log.responses)
	}
}

func TestPaginationManager_HandleNavigationBadCustomID(t *testing.T) {
	pm, _ := newTestManager(t, discord.NewFakeSession())

	result, err := pm.HandleNavigation(context.Background(), pressInteraction("pagination_next|", "message-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Error == nil {
		t.Fatal("expected result error for a malformed custom id")
	}
}

func TestWrapPaginationOperation_RecoversPanic(t *testing.T) {
	result, err := wrapPaginationOperation(context.Background(), "boom", func(ctx context.Context) (PaginationOperationResult, error) {
		panic("boom")
	}, testutils.NoOpLogger(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Error == nil {
		t.Fatal("expected panic to be reported in the result")
	}
}
