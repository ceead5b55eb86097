package testutils

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
)

// NoOpLogger returns a logger that discards everything.
func NoOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// FakePublisher is a programmable fake for message.Publisher. Published
// messages are kept per topic.
type FakePublisher struct {
	mu          sync.Mutex
	PublishFunc func(topic string, messages ...*message.Message) error
	published   map[string][]*message.Message
}

func (f *FakePublisher) Publish(topic string, messages ...*message.Message) error {
	if f.PublishFunc != nil {
		if err := f.PublishFunc(topic, messages...); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.published == nil {
		f.published = make(map[string][]*message.Message)
	}
	f.published[topic] = append(f.published[topic], messages...)
	return nil
}

func (f *FakePublisher) Close() error {
	return nil
}

// Published returns the messages published on topic.
func (f *FakePublisher) Published(topic string) []*message.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*message.Message(nil), f.published[topic]...)
}

// FakeDiscordMetrics is a programmable fake for DiscordMetrics
type FakeDiscordMetrics struct {
	RecordAPIRequestFunc         func(ctx context.Context, operation string)
	RecordAPIErrorFunc           func(ctx context.Context, operation, errorType string)
	RecordAPIRequestDurationFunc func(ctx context.Context, operation string, duration time.Duration)
	RecordPageTurnFunc           func(ctx context.Context, direction string)
}

func (f *FakeDiscordMetrics) RecordAPIRequest(ctx context.Context, operation string) {
	if f.RecordAPIRequestFunc != nil {
		f.RecordAPIRequestFunc(ctx, operation)
	}
}

func (f *FakeDiscordMetrics) RecordAPIError(ctx context.Context, operation, errorType string) {
	if f.RecordAPIErrorFunc != nil {
		f.RecordAPIErrorFunc(ctx, operation, errorType)
	}
}

func (f *FakeDiscordMetrics) RecordAPIRequestDuration(ctx context.Context, operation string, duration time.Duration) {
	if f.RecordAPIRequestDurationFunc != nil {
		f.RecordAPIRequestDurationFunc(ctx, operation, duration)
	}
}

func (f *FakeDiscordMetrics) RecordPageTurn(ctx context.Context, direction string) {
	if f.RecordPageTurnFunc != nil {
		f.RecordPageTurnFunc(ctx, direction)
	}
}
