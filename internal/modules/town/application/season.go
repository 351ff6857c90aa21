package application

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/town/domain"
)

const MsgInvalidSeason = "❌ Saison invalide."

// SeasonService reads and changes the season.
type SeasonService struct {
	api SeasonAPI
}

// NewSeasonService creates a new SeasonService.
func NewSeasonService(api SeasonAPI) *SeasonService {
	return &SeasonService{api: api}
}

// Current returns the current season.
func (s *SeasonService) Current(ctx context.Context) (*backend.Season, error) {
	season, err := s.api.GetCurrentSeason(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	return season, nil
}

// Set changes the season on behalf of the admin with the given Discord id.
func (s *SeasonService) Set(ctx context.Context, season, adminID string) error {
	if !slices.Contains(domain.Seasons, season) {
		return common.Invalid(MsgInvalidSeason)
	}
	if err := s.api.SetSeason(ctx, season, adminID); err != nil {
		return fmt.Errorf("failed to set season: %w", err)
	}
	slog.Info("set season", "season", season, "admin_id", adminID)
	return nil
}
