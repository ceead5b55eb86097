package favorites

import (
	"context"
	"fmt"
	"log/slog"

	favoriteevents "github.com/Black-And-White-Club/discord-ftcscout-bot/app/events/favorite"
	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// FavoriteRouter routes favorite events to their handlers.
type FavoriteRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber message.Subscriber
	registerer prometheus.Registerer
}

// NewFavoriteRouter creates a new FavoriteRouter. A nil registerer skips
// router metrics.
func NewFavoriteRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber message.Subscriber,
	registerer prometheus.Registerer,
) *FavoriteRouter {
	return &FavoriteRouter{
		logger:     logger,
		Router:     router,
		subscriber: subscriber,
		registerer: registerer,
	}
}

// Configure sets up the router. Handlers are not retried.
func (r *FavoriteRouter) Configure(ctx context.Context, handlers Handlers) error {
	if r.registerer != nil {
		metricsBuilder := metrics.NewPrometheusMetricsBuilder(r.registerer, "ftcscout", "events")
		metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
	)

	if err := r.RegisterHandlers(ctx, handlers); err != nil {
		return fmt.Errorf("failed to register favorite handlers: %w", err)
	}
	return nil
}

// RegisterHandlers wires all event handlers.
func (r *FavoriteRouter) RegisterHandlers(ctx context.Context, handlers Handlers) error {
	r.logger.InfoContext(ctx, "Registering Favorite Handlers")

	eventsToHandlers := map[string]message.NoPublishHandlerFunc{
		favoriteevents.FavoriteTeamSetTopic: handlers.HandleFavoriteTeamSet,
	}

	for topic, handlerFunc := range eventsToHandlers {
		handlerName := fmt.Sprintf("discord-favorite.%s", topic)
		r.Router.AddNoPublisherHandler(
			handlerName,
			topic,
			r.subscriber,
			handlerFunc,
		)
	}
	return nil
}

// Close gracefully stops the router.
func (r *FavoriteRouter) Close() error {
	return r.Router.Close()
}
