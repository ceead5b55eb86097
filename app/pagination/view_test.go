package pagination

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/google/go-cmp/cmp"
)

func pageEmbed(title, footer string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{Title: title}
	if footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: footer}
	}
	return embed
}

type recordingTarget struct {
	mu       sync.Mutex
	rendered []string
	err      error
}

func (r *recordingTarget) Render(_ context.Context, page Page, _ []discordgo.MessageComponent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.rendered = append(r.rendered, page.Footer)
	return nil
}

func (r *recordingTarget) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.rendered...)
}

func newTestView(t *testing.T, items, perPage int) *View {
	t.Helper()
	pages, err := Paginate("T", numberedItems(items), 0, perPage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	view, err := NewView("session", pages)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return view
}

func TestNewView_RejectsEmptyPages(t *testing.T) {
	if _, err := NewView("s", nil); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestView_NextSaturatesAtLastPage(t *testing.T) {
	view := newTestView(t, 25, 10)
	target := &recordingTarget{}
	ctx := context.Background()

	for _, want := range []bool{true, true, false, false} {
		changed, err := view.Next(ctx, target)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if changed != want {
			t.Fatalf("changed = %v, want %v", changed, want)
		}
	}

	if view.Cursor() != 2 {
		t.Errorf("expected cursor 2, got %d", view.Cursor())
	}
	calls := target.calls()
	if len(calls) != 2 || calls[0] != "Page 2/3" || calls[1] != "Page 3/3" {
		t.Errorf("unexpected renders %v", calls)
	}
}

func TestView_PreviousAtFirstPageIsNoop(t *testing.T) {
	view := newTestView(t, 25, 10)
	target := &recordingTarget{}

	changed, err := view.Previous(context.Background(), target)
	if err != nil || changed {
		t.Fatalf("expected no-op, got changed=%v err=%v", changed, err)
	}
	if view.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", view.Cursor())
	}
	if len(target.calls()) != 0 {
		t.Errorf("expected no render, got %v", target.calls())
	}
}

func TestView_NextThenPreviousReturnsToStart(t *testing.T) {
	view := newTestView(t, 25, 10)
	target := &recordingTarget{}
	ctx := context.Background()

	if _, err := view.Next(ctx, target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := view.Previous(ctx, target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", view.Cursor())
	}
	if view.Current().Footer != "Page 1/3" {
		t.Errorf("unexpected current page %q", view.Current().Footer)
	}
}

type pageRender struct {
	Page       Page
	Components []discordgo.MessageComponent
}

type pageTarget struct {
	renders []pageRender
}

func (p *pageTarget) Render(_ context.Context, page Page, components []discordgo.MessageComponent) error {
	p.renders = append(p.renders, pageRender{Page: page, Components: components})
	return nil
}

func (p *pageTarget) last(t *testing.T) pageRender {
	t.Helper()
	if len(p.renders) == 0 {
		t.Fatal("nothing rendered")
	}
	return p.renders[len(p.renders)-1]
}

func TestView_RoundTripFromInteriorPageRendersSamePage(t *testing.T) {
	view := newTestView(t, 45, 10)
	if view.PageCount() != 5 {
		t.Fatalf("expected 5 pages, got %d", view.PageCount())
	}
	target := &pageTarget{}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := view.Next(ctx, target); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if view.Cursor() != 2 {
		t.Fatalf("expected cursor 2, got %d", view.Cursor())
	}
	before := target.last(t)

	if changed, err := view.Next(ctx, target); err != nil || !changed {
		t.Fatalf("Next: changed=%v err=%v", changed, err)
	}
	if changed, err := view.Previous(ctx, target); err != nil || !changed {
		t.Fatalf("Previous: changed=%v err=%v", changed, err)
	}

	if view.Cursor() != 2 {
		t.Errorf("expected cursor 2, got %d", view.Cursor())
	}
	if diff := cmp.Diff(before, target.last(t)); diff != "" {
		t.Errorf("render mismatch after round trip (-before +after):\n%s", diff)
	}
}

func TestView_SinglePageNeverMoves(t *testing.T) {
	view := newTestView(t, 3, 10)
	target := &recordingTarget{}
	ctx := context.Background()

	for _, move := range []func(context.Context, RenderTarget) (bool, error){view.Next, view.Previous} {
		changed, err := move(ctx, target)
		if err != nil || changed {
			t.Fatalf("expected no-op, got changed=%v err=%v", changed, err)
		}
	}
	if view.Components() != nil {
		t.Error("expected no navigation row for a single page")
	}
}

func TestView_RenderFailureKeepsCursor(t *testing.T) {
	view := newTestView(t, 25, 10)
	view.Bind("message-1")
	target := &recordingTarget{err: &discordgo.RESTError{Response: &http.Response{StatusCode: http.StatusNotFound}}}

	changed, err := view.Next(context.Background(), target)
	if changed {
		t.Error("expected no change on render failure")
	}
	if !IsRenderTargetUnavailable(err) {
		t.Fatalf("expected RenderTargetUnavailableError, got %v", err)
	}

	var rtErr *RenderTargetUnavailableError
	errors.As(err, &rtErr)
	if rtErr.MessageID != "message-1" || rtErr.Reason != "message not found" {
		t.Errorf("unexpected error fields: %+v", rtErr)
	}
	if view.Cursor() != 0 {
		t.Errorf("expected cursor to stay at 0, got %d", view.Cursor())
	}

	target.err = nil
	changed, err = view.Next(context.Background(), target)
	if err != nil || !changed {
		t.Fatalf("expected retry to succeed, got changed=%v err=%v", changed, err)
	}
	if view.Cursor() != 1 {
		t.Errorf("expected cursor 1, got %d", view.Cursor())
	}
}

func TestView_RenderIsIdempotent(t *testing.T) {
	view := newTestView(t, 25, 10)
	target := &recordingTarget{}

	for n := 0; n < 2; n++ {
		if err := view.Render(context.Background(), target); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	calls := target.calls()
	if len(calls) != 2 || calls[0] != "Page 1/3" || calls[1] != "Page 1/3" {
		t.Errorf("unexpected renders %v", calls)
	}
	if view.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", view.Cursor())
	}
}

func TestView_Accepts(t *testing.T) {
	view := newTestView(t, 25, 10)
	if !view.Accepts("anything") {
		t.Error("unbound view should accept any message")
	}

	view.Bind("message-1")
	if !view.Accepts("message-1") {
		t.Error("bound view should accept its message")
	}
	if view.Accepts("message-2") {
		t.Error("bound view should reject other messages")
	}
}

func TestView_ConcurrentPressesStayInBounds(t *testing.T) {
	view := newTestView(t, 50, 10)
	target := &recordingTarget{}
	ctx := context.Background()

	var wg sync.WaitGroup
	for idx := 0; idx < 40; idx++ {
		wg.Add(1)
		go func(forward bool) {
			defer wg.Done()
			if forward {
				_, _ = view.Next(ctx, target)
			} else {
				_, _ = view.Previous(ctx, target)
			}
		}(idx%3 != 0)
	}
	wg.Wait()

	cursor := view.Cursor()
	if cursor < 0 || cursor >= view.PageCount() {
		t.Fatalf("cursor %d out of range", cursor)
	}
	calls := target.calls()
	if len(calls) > 0 && calls[len(calls)-1] != view.Current().Footer {
		t.Errorf("last render %q does not match current page %q", calls[len(calls)-1], view.Current().Footer)
	}
}

func TestNewRenderTargetUnavailableError_Reasons(t *testing.T) {
	tests := []struct {
		name   string
		cause  error
		reason string
	}{
		{name: "not found", cause: &discordgo.RESTError{Response: &http.Response{StatusCode: http.StatusNotFound}}, reason: "message not found"},
		{name: "forbidden", cause: &discordgo.RESTError{Response: &http.Response{StatusCode: http.StatusForbidden}}, reason: "missing permissions"},
		{name: "other", cause: errors.New("boom"), reason: "edit rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newRenderTargetUnavailableError("m", tt.cause)
			if err.Reason != tt.reason {
				t.Errorf("reason = %q, want %q", err.Reason, tt.reason)
			}
			if !errors.Is(err, tt.cause) {
				t.Error("expected cause to be wrapped")
			}
		})
	}
}
