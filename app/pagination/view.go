package pagination

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// RenderTarget replaces the displayed card of the bound message.
type RenderTarget interface {
	Render(ctx context.Context, page Page, components []discordgo.MessageComponent) error
}

// View is the navigation state of one paginated message. The cursor is
// shared by everyone who can see the message. All transitions hold mu
// across the cursor change and the render, so the cursor always matches
// the page on screen.
type View struct {
	mu        sync.Mutex
	id        string
	messageID string
	pages     []Page
	cursor    int
}

// NewView creates a view positioned on the first page.
func NewView(id string, pages []Page) (*View, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: a view needs at least one page", ErrInvalidConfiguration)
	}
	owned := make([]Page, len(pages))
	copy(owned, pages)
	return &View{id: id, pages: owned}, nil
}

// ID returns the session id used in the navigation buttons.
func (v *View) ID() string {
	return v.id
}

// Bind attaches the view to the message showing it.
func (v *View) Bind(messageID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.messageID = messageID
}

// MessageID returns the bound message id, empty when unbound.
func (v *View) MessageID() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.messageID
}

// Accepts reports whether an interaction on messageID may drive this view.
// An unbound view accepts any message.
func (v *View) Accepts(messageID string) bool {
	bound := v.MessageID()
	return bound == "" || messageID == "" || bound == messageID
}

func (v *View) Cursor() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cursor
}

func (v *View) PageCount() int {
	return len(v.pages)
}

// Current returns the page under the cursor.
func (v *View) Current() Page {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pages[v.cursor]
}

// Components returns the navigation row for the current cursor.
func (v *View) Components() []discordgo.MessageComponent {
	v.mu.Lock()
	defer v.mu.Unlock()
	return navigationComponents(v.id, v.cursor, len(v.pages))
}

// Next moves to the following page and renders it. At the last page it is
// a no-op and reports false.
func (v *View) Next(ctx context.Context, target RenderTarget) (bool, error) {
	return v.move(ctx, target, 1)
}

// Previous moves to the preceding page and renders it. At the first page it
// is a no-op and reports false.
func (v *View) Previous(ctx context.Context, target RenderTarget) (bool, error) {
	return v.move(ctx, target, -1)
}

// Render shows the current page again without moving.
func (v *View) Render(ctx context.Context, target RenderTarget) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.renderLocked(ctx, target)
}

func (v *View) move(ctx context.Context, target RenderTarget, delta int) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	next := v.cursor + delta
	if next < 0 || next >= len(v.pages) {
		return false, nil
	}

	previous := v.cursor
	v.cursor = next
	if err := v.renderLocked(ctx, target); err != nil {
		v.cursor = previous
		return false, err
	}
	return true, nil
}

func (v *View) renderLocked(ctx context.Context, target RenderTarget) error {
	page := v.pages[v.cursor]
	if err := target.Render(ctx, page, navigationComponents(v.id, v.cursor, len(v.pages))); err != nil {
		return newRenderTargetUnavailableError(v.messageID, err)
	}
	return nil
}
