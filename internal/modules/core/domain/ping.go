package domain

import (
	"fmt"
	"strings"
	"time"
)

// Pong is the answer to /ping.
type Pong struct {
	// IssuedAt is when Discord created the interaction, zero when unknown.
	IssuedAt time.Time
	// HandledAt is when the bot handled the interaction.
	HandledAt time.Time
	// Heartbeat is the gateway heartbeat latency, zero when unknown.
	Heartbeat time.Duration
}

// Latency returns the delay between the interaction and its handling.
// Clock skew can make it negative; it is then reported as zero.
func (p Pong) Latency() time.Duration {
	if p.IssuedAt.IsZero() {
		return 0
	}
	return max(p.HandledAt.Sub(p.IssuedAt), 0)
}

// Message formats the reply. It always starts with "pong".
func (p Pong) Message() string {
	var sb strings.Builder
	sb.WriteString("pong")
	if !p.IssuedAt.IsZero() {
		fmt.Fprintf(&sb, "\nLatence : %d ms", p.Latency().Milliseconds())
	}
	if p.Heartbeat > 0 {
		fmt.Fprintf(&sb, "\nHeartbeat : %d ms", p.Heartbeat.Milliseconds())
	}
	return sb.String()
}
