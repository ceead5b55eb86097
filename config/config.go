package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config struct to hold the configuration settings
type Config struct {
	Discord DiscordConfig `yaml:"discord"`
	Service ServiceConfig `yaml:"service"`
	Loki    LokiConfig    `yaml:"loki"`
	Tempo   TempoConfig   `yaml:"tempo"`
	Metrics MetricsConfig `yaml:"metrics"`
	Scout   ScoutConfig   `yaml:"scout"`
}

// DiscordConfig holds Discord configuration.
type DiscordConfig struct {
	Token          string `yaml:"token" env:"DISCORD_TOKEN"`
	AppID          string `yaml:"app_id" env:"DISCORD_APP_ID"`
	GuildID        string `yaml:"guild_id" env:"DISCORD_GUILD_ID"`
	DebugMode      bool   `yaml:"debug_mode" env:"DISCORD_DEBUG_MODE"`
	DebugChannelID string `yaml:"debug_channel_id" env:"DISCORD_DEBUG_CHANNEL_ID"`
}

// ServiceConfig holds general service configuration
type ServiceConfig struct {
	Name    string `yaml:"name" env:"SERVICE_NAME"`
	Version string `yaml:"version" env:"SERVICE_VERSION"`
}

// LokiConfig holds Loki configuration.
type LokiConfig struct {
	URL      string `yaml:"url" env:"LOKI_URL"`
	TenantID string `yaml:"tenant_id" env:"LOKI_TENANT_ID"`
	Enabled  bool   `yaml:"enabled" env:"LOKI_ENABLED"`
}

type TempoConfig struct {
	Endpoint   string  `yaml:"url" env:"TEMPO_URL"`
	Insecure   bool    `yaml:"insecure" env:"TEMPO_INSECURE"`
	SampleRate float64 `yaml:"sample_rate" env:"TEMPO_SAMPLE_RATE"`
}

// MetricsConfig holds the address of the metrics and health server.
type MetricsConfig struct {
	Address string `yaml:"address" env:"METRICS_ADDRESS"`
}

// ScoutConfig holds settings for the FTC data commands.
type ScoutConfig struct {
	AvatarCSSURL         string        `yaml:"avatar_css_url" env:"SCOUT_AVATAR_CSS_URL"`
	PlaceholderAvatarURL string        `yaml:"placeholder_avatar_url" env:"SCOUT_PLACEHOLDER_AVATAR_URL"`
	AvatarCacheTTL       time.Duration `yaml:"avatar_cache_ttl" env:"SCOUT_AVATAR_CACHE_TTL"`
	HTTPTimeout          time.Duration `yaml:"http_timeout" env:"SCOUT_HTTP_TIMEOUT"`
	SchedulePageSize     int           `yaml:"schedule_page_size" env:"SCOUT_SCHEDULE_PAGE_SIZE"`
	Developers           []string      `yaml:"developers" env:"SCOUT_DEVELOPERS" envSeparator:","`
}

const (
	DefaultServiceName          = "discord-ftcscout-bot"
	DefaultVersion              = "2.0.0"
	DefaultMetricsAddress       = ":8080"
	DefaultAvatarCSSURL         = "https://ftc-scoring.firstinspires.org/avatars/composed/2025.css"
	DefaultPlaceholderAvatarURL = "https://via.placeholder.com/150"
	DefaultAvatarCacheTTL       = 10 * time.Minute
	DefaultHTTPTimeout          = 5 * time.Second
	DefaultSchedulePageSize     = 10
)

var defaultDevelopers = []string{"<@291420737204649985>", "<@751915057973035058>"}

// LoadConfig loads the configuration from a YAML file, a .env file and the
// process environment. Environment values win over the file.
func LoadConfig(filename string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	data, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Environment only.
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := loadConfigFromEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadConfigFromEnv overrides file values with any variables that are set.
func loadConfigFromEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Service.Name == "" {
		c.Service.Name = DefaultServiceName
	}
	if c.Service.Version == "" {
		c.Service.Version = DefaultVersion
	}
	if c.Metrics.Address == "" {
		c.Metrics.Address = DefaultMetricsAddress
	}
	if c.Tempo.SampleRate == 0 {
		c.Tempo.SampleRate = 1
	}
	if c.Scout.AvatarCSSURL == "" {
		c.Scout.AvatarCSSURL = DefaultAvatarCSSURL
	}
	if c.Scout.PlaceholderAvatarURL == "" {
		c.Scout.PlaceholderAvatarURL = DefaultPlaceholderAvatarURL
	}
	if c.Scout.AvatarCacheTTL == 0 {
		c.Scout.AvatarCacheTTL = DefaultAvatarCacheTTL
	}
	if c.Scout.HTTPTimeout == 0 {
		c.Scout.HTTPTimeout = DefaultHTTPTimeout
	}
	if c.Scout.SchedulePageSize == 0 {
		c.Scout.SchedulePageSize = DefaultSchedulePageSize
	}
	if len(c.Scout.Developers) == 0 {
		c.Scout.Developers = append([]string(nil), defaultDevelopers...)
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN environment variable not set")
	}
	if c.Discord.DebugMode && c.Discord.DebugChannelID == "" {
		return fmt.Errorf("debug mode requires a debug channel id")
	}
	if _, err := semver.NewVersion(c.Service.Version); err != nil {
		return fmt.Errorf("invalid service version %q: %w", c.Service.Version, err)
	}
	if c.Scout.SchedulePageSize < 0 {
		return fmt.Errorf("schedule page size must not be negative, got %d", c.Scout.SchedulePageSize)
	}
	return nil
}

// DisplayVersion returns the service version with a leading "v".
func (c *Config) DisplayVersion() string {
	v, err := semver.NewVersion(c.Service.Version)
	if err != nil {
		return c.Service.Version
	}
	return "v" + v.String()
}
