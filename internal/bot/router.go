package bot

import (
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
)

type prefixRoute struct {
	prefix  string
	handler InteractionHandler
}

// Router maps component customIds to handlers.
// Exact ids win over prefixes; among prefixes the longest match wins.
type Router struct {
	kind string

	mu       sync.RWMutex
	exact    map[string]InteractionHandler
	prefixes []prefixRoute
}

// NewRouter creates an empty Router. kind only appears in log output.
func NewRouter(kind string) *Router {
	return &Router{
		kind:  kind,
		exact: make(map[string]InteractionHandler),
	}
}

// Register adds an exact-match handler. A later registration for the same id replaces the earlier one.
func (r *Router) Register(id string, h InteractionHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.exact[id]; exists {
		slog.Warn("replaced component handler", "kind", r.kind, "custom_id", id)
	}
	r.exact[id] = h
}

// RegisterPrefix adds a handler for every customId starting with prefix.
func (r *Router) RegisterPrefix(prefix string, h InteractionHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx, route := range r.prefixes {
		if route.prefix == prefix {
			slog.Warn("replaced component prefix handler", "kind", r.kind, "prefix", prefix)
			r.prefixes[idx].handler = h
			return
		}
	}
	r.prefixes = append(r.prefixes, prefixRoute{prefix: prefix, handler: h})
}

// Lookup returns the handler for customID.
func (r *Router) Lookup(customID string) (InteractionHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if h, ok := r.exact[customID]; ok {
		return h, true
	}

	var (
		best    InteractionHandler
		bestLen = -1
	)
	for _, route := range r.prefixes {
		if len(route.prefix) > bestLen && strings.HasPrefix(customID, route.prefix) {
			best = route.handler
			bestLen = len(route.prefix)
		}
	}
	return best, best != nil
}

// Dispatch invokes the handler matching the interaction's customId.
// It reports false, without responding, when nothing matches.
func (r *Router) Dispatch(s *discordgo.Session, i *discordgo.InteractionCreate, resp Responder) (bool, error) {
	customID := CustomID(i)

	h, ok := r.Lookup(customID)
	if !ok {
		slog.Warn("found no handler for component", "kind", r.kind, "custom_id", customID)
		return false, nil
	}

	return true, h(s, i, resp)
}

// IDs returns the registered exact ids in sorted order.
func (r *Router) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.exact))
	for id := range r.exact {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Prefixes returns the registered prefixes in registration order.
func (r *Router) Prefixes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefixes := make([]string, len(r.prefixes))
	for idx, route := range r.prefixes {
		prefixes[idx] = route.prefix
	}
	return prefixes
}

// CustomID extracts the customId of a component or modal interaction.
func CustomID(i *discordgo.InteractionCreate) string {
	if i == nil || i.Interaction == nil {
		return ""
	}
	switch i.Type {
	case discordgo.InteractionMessageComponent:
		return i.MessageComponentData().CustomID
	case discordgo.InteractionModalSubmit:
		return i.ModalSubmitData().CustomID
	default:
		return ""
	}
}
