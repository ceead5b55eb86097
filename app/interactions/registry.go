package interactions

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sort"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// HandlerFunc handles one interaction.
type HandlerFunc func(ctx context.Context, i *discordgo.InteractionCreate)

// Middleware wraps a HandlerFunc.
type Middleware func(next HandlerFunc) HandlerFunc

// Registry routes interactions to handlers by command name or component
// custom id. Exact ids win; otherwise the longest registered prefix wins.
type Registry struct {
	mu                sync.RWMutex
	handlers          map[string]HandlerFunc
	prefixes          []string
	commandMiddleware []Middleware
	logger            *slog.Logger
}

func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		handlers: make(map[string]HandlerFunc),
		logger:   logger,
	}
}

func (r *Registry) RegisterHandler(id string, handler HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[id]; !exists {
		r.prefixes = append(r.prefixes, id)
		sort.SliceStable(r.prefixes, func(a, b int) bool {
			return len(r.prefixes[a]) > len(r.prefixes[b])
		})
	}
	r.handlers[id] = handler
}

// UseForCommands adds middleware that runs before every application command
// handler. Component and modal handlers are not wrapped.
func (r *Registry) UseForCommands(mw ...Middleware) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commandMiddleware = append(r.commandMiddleware, mw...)
}

// HandleInteraction matches discordgo's handler signature.
func (r *Registry) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	r.Dispatch(context.Background(), i)
}

// Dispatch runs the handler registered for i and reports whether one matched.
func (r *Registry) Dispatch(ctx context.Context, i *discordgo.InteractionCreate) bool {
	if i == nil || i.Interaction == nil {
		r.logger.Warn("Ignoring interaction with nil payload")
		return false
	}

	var id string
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		id = i.ApplicationCommandData().Name
	case discordgo.InteractionMessageComponent:
		id = i.MessageComponentData().CustomID
	case discordgo.InteractionModalSubmit:
		id = i.ModalSubmitData().CustomID
	}
	if id == "" {
		r.logger.Warn("Ignoring interaction without an id", slog.String("interaction_id", i.ID))
		return false
	}

	handler, ok := r.lookup(id)
	if !ok {
		r.logger.Warn("No handler registered for interaction", slog.String("id", id))
		return false
	}

	if i.Type == discordgo.InteractionApplicationCommand {
		handler = r.wrapCommand(handler)
	}

	r.run(ctx, id, i, handler)
	return true
}

func (r *Registry) lookup(id string) (HandlerFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if handler, ok := r.handlers[id]; ok {
		return handler, true
	}
	for _, prefix := range r.prefixes {
		if strings.HasPrefix(id, prefix) {
			return r.handlers[prefix], true
		}
	}
	return nil, false
}

func (r *Registry) wrapCommand(handler HandlerFunc) HandlerFunc {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for idx := len(r.commandMiddleware) - 1; idx >= 0; idx-- {
		handler = r.commandMiddleware[idx](handler)
	}
	return handler
}

func (r *Registry) run(ctx context.Context, id string, i *discordgo.InteractionCreate, handler HandlerFunc) {
	defer func() {
		if recovered := recover(); recovered != nil {
			r.logger.Error("Recovered panic from interaction handler",
				slog.String("id", id),
				slog.String("interaction_id", i.ID),
				slog.Any("panic", recovered),
				slog.String("stack_trace", string(debug.Stack())))
		}
	}()

	handler(ctx, i)
}
