package projects

import "time"

// Config holds the projects module configuration.
type Config struct {
	DraftTTL time.Duration `env:"PROJECT_DRAFT_TTL" envDefault:"30m"`
}
