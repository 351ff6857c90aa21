package expeditions

import "time"

// Config holds the expeditions module configuration.
type Config struct {
	DraftTTL time.Duration `env:"EXPEDITION_DRAFT_TTL" envDefault:"5m"`
}
