package application

import (
	"time"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/core/domain"
	"github.com/disgoorg/snowflake/v2"
)

// PingInteractor measures how long interactions take to reach the bot.
type PingInteractor struct {
	now func() time.Time
}

// NewPingInteractor creates a new PingInteractor.
func NewPingInteractor() *PingInteractor {
	return &PingInteractor{now: time.Now}
}

// Execute builds the pong for an interaction. The issue time is read from the
// interaction's snowflake id; an id that does not parse leaves it unknown.
func (p *PingInteractor) Execute(interactionID string, heartbeat time.Duration) domain.Pong {
	pong := domain.Pong{
		HandledAt: p.now(),
		Heartbeat: heartbeat,
	}
	if id, err := snowflake.Parse(interactionID); err == nil && id != 0 {
		pong.IssuedAt = id.Time()
	}
	return pong
}
