package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
)

// User-facing messages of capabilities.
const (
	MsgNoCapabilities     = "❌ Vous ne connaissez aucune capacité pour l'instant."
	MsgCapabilityNotFound = "Capacité non trouvée."
)

// MsgNotEnoughPA formats the refusal shown when a capability costs too much.
func MsgNotEnoughPA(cost int) string {
	return fmt.Sprintf("Vous n'avez pas assez de points d'action (nécessite %d PA).", cost)
}

// CapabilityService lists and performs character capabilities.
type CapabilityService struct {
	api     CharacterAPI
	seasons SeasonSource
}

// NewCapabilityService creates a new CapabilityService.
func NewCapabilityService(api CharacterAPI, seasons SeasonSource) *CapabilityService {
	return &CapabilityService{api: api, seasons: seasons}
}

// List returns the capabilities of a character.
func (s *CapabilityService) List(ctx context.Context, characterID string) ([]backend.Capability, error) {
	capabilities, err := s.api.GetCharacterCapabilities(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get capabilities: %w", err)
	}
	if len(capabilities) == 0 {
		return nil, common.Invalid(MsgNoCapabilities)
	}
	return capabilities, nil
}

// Search returns at most limit capabilities whose name or description
// contains query, ignoring case.
func (s *CapabilityService) Search(ctx context.Context, characterID, query string, limit int) ([]backend.Capability, error) {
	capabilities, err := s.api.GetCharacterCapabilities(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get capabilities: %w", err)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	matches := make([]backend.Capability, 0, min(len(capabilities), limit))
	for _, c := range capabilities {
		if len(matches) == limit {
			break
		}
		if strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(strings.ToLower(c.Description), query) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

// UseOutput is the outcome of a capability.
type UseOutput struct {
	Capability backend.Capability
	Result     *backend.CapabilityResult
}

// Use performs the capability called name for the character.
func (s *CapabilityService) Use(ctx context.Context, character *backend.Character, name string) (*UseOutput, error) {
	capabilities, err := s.api.GetCharacterCapabilities(ctx, character.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get capabilities: %w", err)
	}

	var capability *backend.Capability
	for idx := range capabilities {
		if strings.EqualFold(capabilities[idx].Name, strings.TrimSpace(name)) {
			capability = &capabilities[idx]
			break
		}
	}
	if capability == nil {
		return nil, common.Invalid(MsgCapabilityNotFound)
	}
	if character.PATotal < capability.CostPA {
		return nil, common.Invalid(MsgNotEnoughPA(capability.CostPA))
	}

	season, err := s.seasons.GetCurrentSeason(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	isSummer := strings.EqualFold(season.Name, backend.SeasonSummer)

	result, err := s.api.UseCapability(ctx, character.ID, capability.ID, isSummer)
	if err != nil {
		return nil, fmt.Errorf("failed to use capability: %w", err)
	}
	slog.Info("used capability",
		"character_id", character.ID,
		"capability", capability.Name,
		"summer", isSummer,
	)
	return &UseOutput{Capability: *capability, Result: result}, nil
}
