package discord

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// FakeSession provides a programmable stub for the Session interface.
// Each interface method has a corresponding Func field that can be set per-test.
type FakeSession struct {
	mu    sync.Mutex
	trace []string

	// --- Interaction Methods ---
	InteractionRespondFunc      func(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseFunc     func(interaction *discordgo.Interaction, options ...discordgo.RequestOption) (*discordgo.Message, error)
	InteractionResponseEditFunc func(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)

	// --- Message/Member Methods ---
	MessageReactionAddFunc  func(channelID, messageID, emojiID string) error
	GuildMemberNicknameFunc func(guildID, userID, nickname string, options ...discordgo.RequestOption) error
	GetBotUserFunc          func() (*discordgo.User, error)

	// --- Application Command Methods ---
	ApplicationCommandBulkOverwriteFunc func(appID, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)

	// --- Handler/Lifecycle Methods ---
	AddHandlerFunc func(handler interface{}) func()
	OpenFunc       func() error
	CloseFunc      func() error
}

// NewFakeSession initializes a new FakeSession with an empty trace.
func NewFakeSession() *FakeSession {
	return &FakeSession{
		trace: []string{},
	}
}

func (f *FakeSession) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeSession) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// --- Interaction Methods Implementation ---

func (f *FakeSession) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
	f.record("InteractionRespond")
	if f.InteractionRespondFunc != nil {
		return f.InteractionRespondFunc(interaction, resp, options...)
	}
	return nil
}

func (f *FakeSession) InteractionResponse(interaction *discordgo.Interaction, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.record("InteractionResponse")
	if f.InteractionResponseFunc != nil {
		return f.InteractionResponseFunc(interaction, options...)
	}
	return &discordgo.Message{ID: "fake-message-id", ChannelID: interaction.ChannelID}, nil
}

func (f *FakeSession) InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.record("InteractionResponseEdit")
	if f.InteractionResponseEditFunc != nil {
		return f.InteractionResponseEditFunc(interaction, newresp, options...)
	}
	return &discordgo.Message{}, nil
}

// --- Message/Member Methods Implementation ---

func (f *FakeSession) MessageReactionAdd(channelID, messageID, emojiID string) error {
	f.record("MessageReactionAdd")
	if f.MessageReactionAddFunc != nil {
		return f.MessageReactionAddFunc(channelID, messageID, emojiID)
	}
	return nil
}

func (f *FakeSession) GuildMemberNickname(guildID, userID, nickname string, options ...discordgo.RequestOption) error {
	f.record("GuildMemberNickname")
	if f.GuildMemberNicknameFunc != nil {
		return f.GuildMemberNicknameFunc(guildID, userID, nickname, options...)
	}
	return nil
}

func (f *FakeSession) GetBotUser() (*discordgo.User, error) {
	f.record("GetBotUser")
	if f.GetBotUserFunc != nil {
		return f.GetBotUserFunc()
	}
	return &discordgo.User{ID: "bot-user-id"}, nil
}

// --- Application Command Methods Implementation ---

func (f *FakeSession) ApplicationCommandBulkOverwrite(appID, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	f.record("ApplicationCommandBulkOverwrite")
	if f.ApplicationCommandBulkOverwriteFunc != nil {
		return f.ApplicationCommandBulkOverwriteFunc(appID, guildID, commands, options...)
	}
	return commands, nil
}

// --- Handler/Lifecycle Methods Implementation ---

func (f *FakeSession) AddHandler(handler interface{}) func() {
	f.record("AddHandler")
	if f.AddHandlerFunc != nil {
		return f.AddHandlerFunc(handler)
	}
	return func() {}
}

func (f *FakeSession) Open() error {
	f.record("Open")
	if f.OpenFunc != nil {
		return f.OpenFunc()
	}
	return nil
}

func (f *FakeSession) Close() error {
	f.record("Close")
	if f.CloseFunc != nil {
		return f.CloseFunc()
	}
	return nil
}
