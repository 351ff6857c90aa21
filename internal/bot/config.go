package bot

import (
	"errors"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Default backend locations per environment.
const (
	defaultDevAPIURL  = "http://backenddev:3000/api"
	defaultProdAPIURL = "http://fateweaver-backend:3000/api"
)

// Config holds the bot configuration loaded from environment variables.
type Config struct {
	DiscordToken string     `env:"DISCORD_TOKEN"`
	ClientID     string     `env:"DISCORD_CLIENT_ID"`
	GuildID      string     `env:"DISCORD_GUILD_ID"`
	APIURL       string     `env:"API_URL"`
	Environment  string     `env:"NODE_ENV" envDefault:"development"`
	LogLevel     slog.Level `env:"LOG_LEVEL" envDefault:"info"`

	HealthPort int           `env:"HEALTH_PORT" envDefault:"3001"`
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
}

// Configuration errors.
var (
	ErrMissingToken    = errors.New("DISCORD_TOKEN is required")
	ErrMissingClientID = errors.New("DISCORD_CLIENT_ID is required")
)

// LoadConfig loads configuration from environment variables and validates it.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.APIURL == "" {
		cfg.APIURL = defaultProdAPIURL
		if cfg.IsDevelopment() {
			cfg.APIURL = defaultDevAPIURL
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsDevelopment reports whether the bot runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "" || c.Environment == "development"
}

// Validate checks required settings. Discord credentials may be absent in development.
func (c *Config) Validate() error {
	if c.IsDevelopment() {
		return nil
	}
	return c.RequireCredentials()
}

// RequireCredentials checks the Discord credentials whatever the environment.
func (c *Config) RequireCredentials() error {
	var errs []error
	if c.DiscordToken == "" {
		errs = append(errs, ErrMissingToken)
	}
	if c.ClientID == "" {
		errs = append(errs, ErrMissingClientID)
	}
	return errors.Join(errs...)
}
