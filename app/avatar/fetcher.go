package avatar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	cache "github.com/Black-And-White-Club/discord-ftcscout-bot/bigcache"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const dataURIPrefix = "data:image/png;base64,"

// maxStylesheetSize bounds the stylesheet body read into memory.
const maxStylesheetSize = 32 << 20

// Fetcher resolves the thumbnail URL for a team.
//
//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type Fetcher interface {
	// AvatarURL always returns a usable URL. A non-nil error explains why
	// the placeholder was returned instead of the team's avatar.
	AvatarURL(ctx context.Context, teamNumber string) (string, error)
}

// Config configures a StylesheetFetcher.
type Config struct {
	StylesheetURL  string
	PlaceholderURL string
}

// StylesheetFetcher extracts base64 avatars from the composed avatar
// stylesheet, keeping the downloaded body in a TTL cache.
type StylesheetFetcher struct {
	client *http.Client
	cache  cache.CacheInterface
	cfg    Config
	logger *slog.Logger
	tracer trace.Tracer
}

// NewStylesheetFetcher creates a fetcher. A nil cache disables caching.
func NewStylesheetFetcher(client *http.Client, c cache.CacheInterface, cfg Config, logger *slog.Logger, tracer trace.Tracer) *StylesheetFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("noop")
	}
	return &StylesheetFetcher{
		client: client,
		cache:  c,
		cfg:    cfg,
		logger: logger,
		tracer: tracer,
	}
}

func (f *StylesheetFetcher) AvatarURL(ctx context.Context, teamNumber string) (string, error) {
	ctx, span := f.tracer.Start(ctx, "avatar.lookup", trace.WithAttributes(
		attribute.String("team_number", teamNumber),
	))
	defer span.End()

	css, err := f.stylesheet(ctx)
	if err != nil {
		span.RecordError(err)
		f.logger.WarnContext(ctx, "Avatar stylesheet unavailable, using placeholder",
			slog.String("team_number", teamNumber),
			slog.Any("error", err))
		return f.cfg.PlaceholderURL, err
	}

	if uri, ok := ExtractAvatar(css, teamNumber); ok {
		return uri, nil
	}

	f.logger.DebugContext(ctx, "No avatar for team", slog.String("team_number", teamNumber))
	return f.cfg.PlaceholderURL, nil
}

func (f *StylesheetFetcher) stylesheet(ctx context.Context) (string, error) {
	key := f.cfg.StylesheetURL
	if f.cache != nil {
		body, err := f.cache.Get(key)
		if err == nil {
			return string(body), nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			f.logger.WarnContext(ctx, "Stylesheet cache read failed", slog.Any("error", err))
		}
	}

	body, err := f.download(ctx)
	if err != nil {
		return "", err
	}

	if f.cache != nil {
		if err := f.cache.Set(key, body); err != nil {
			f.logger.WarnContext(ctx, "Failed to cache stylesheet", slog.Any("error", err))
		}
	}
	return string(body), nil
}

func (f *StylesheetFetcher) download(ctx context.Context) ([]byte, error) {
	url := f.cfg.StylesheetURL
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &ExternalFetchError{URL: url, Cause: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &ExternalFetchError{URL: url, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ExternalFetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxStylesheetSize))
	if err != nil {
		return nil, &ExternalFetchError{URL: url, Cause: fmt.Errorf("read body: %w", err)}
	}
	return body, nil
}

// ExtractAvatar finds the background-image data URI of the .team-<n> rule.
func ExtractAvatar(css, teamNumber string) (string, bool) {
	if teamNumber == "" {
		return "", false
	}
	pattern := regexp.MustCompile(`\.team-` + regexp.QuoteMeta(teamNumber) +
		` \{\s*background-image: url\("(data:image/png;base64,[^"]+)"\);`)

	match := pattern.FindStringSubmatch(css)
	if len(match) < 2 || !strings.HasPrefix(match[1], dataURIPrefix) {
		return "", false
	}
	return match[1], true
}
