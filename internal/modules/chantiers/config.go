package chantiers

import "time"

// Config holds the chantiers module configuration.
type Config struct {
	DraftTTL time.Duration `env:"CHANTIER_DRAFT_TTL" envDefault:"30m"`
}
