package observability

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Black-And-White-Club/discord-ftcscout-bot/config"
	"github.com/grafana/loki-client-go/loki"
	slogloki "github.com/samber/slog-loki/v3"
)

// NewLogger builds the service logger. Logs are shipped to Loki when it is
// enabled, otherwise written as text to stdout. The returned stop func flushes
// the Loki client.
func NewLogger(cfg config.LokiConfig, serviceName string) (*slog.Logger, func(), error) {
	if !cfg.Enabled {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
		return logger.With(slog.String("service", serviceName)), func() {}, nil
	}

	lokiConfig, err := loki.NewDefaultConfig(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build loki config: %w", err)
	}
	lokiConfig.TenantID = cfg.TenantID

	client, err := loki.New(lokiConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create loki client: %w", err)
	}

	handler := slogloki.Option{Level: slog.LevelInfo, Client: client}.NewLokiHandler()
	logger := slog.New(handler).With(slog.String("service", serviceName))
	return logger, client.Stop, nil
}
