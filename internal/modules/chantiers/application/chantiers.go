package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
)

// User-facing messages of chantier participation.
const (
	MsgNoChantiers       = "Aucun chantier n'a encore été créé."
	MsgNoOpenChantier    = "Aucun chantier n'est en cours."
	MsgChantierCompleted = "Ce chantier est déjà terminé."
	MsgNothingInvested   = "Vous devez investir des PA ou au moins une ressource."
)

// MsgResourcesFailedAfterPA formats the reply when the PA were invested but
// the resource contribution was refused.
func MsgResourcesFailedAfterPA(points int, reason string) string {
	return fmt.Sprintf("✅ %d PA investis, mais les ressources n'ont pas pu être ajoutées : %s", points, reason)
}

// ChantierService lists, deletes and funds chantiers.
type ChantierService struct {
	api ChantierAPI
}

// NewChantierService creates a new ChantierService.
func NewChantierService(api ChantierAPI) *ChantierService {
	return &ChantierService{api: api}
}

// List returns the chantiers of a guild.
func (s *ChantierService) List(ctx context.Context, guildID string) ([]backend.Chantier, error) {
	chantiers, err := s.api.GetChantiersByGuild(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chantiers: %w", err)
	}
	return chantiers, nil
}

// Open returns the chantiers still accepting contributions.
func (s *ChantierService) Open(ctx context.Context, guildID string) ([]backend.Chantier, error) {
	chantiers, err := s.List(ctx, guildID)
	if err != nil {
		return nil, err
	}

	open := make([]backend.Chantier, 0, len(chantiers))
	for _, c := range chantiers {
		if c.Status != backend.ChantierCompleted {
			open = append(open, c)
		}
	}
	if len(open) == 0 {
		return nil, common.Invalid(MsgNoOpenChantier)
	}
	return open, nil
}

// Get returns an open chantier.
func (s *ChantierService) Get(ctx context.Context, chantierID string) (*backend.Chantier, error) {
	chantier, err := s.api.GetChantier(ctx, chantierID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chantier: %w", err)
	}
	if chantier.Status == backend.ChantierCompleted {
		return nil, common.Invalid(MsgChantierCompleted)
	}
	return chantier, nil
}

// Delete removes a chantier.
func (s *ChantierService) Delete(ctx context.Context, chantierID string) error {
	if err := s.api.DeleteChantier(ctx, chantierID); err != nil {
		return fmt.Errorf("failed to delete chantier: %w", err)
	}
	slog.Info("deleted chantier", "chantier_id", chantierID)
	return nil
}

// InvestInput holds the raw fields of the invest modal.
type InvestInput struct {
	ChantierID  string
	CharacterID string
	Points      string
	// Resources maps resource type ids to typed quantities.
	Resources map[int]string
}

// InvestOutput describes what was actually given.
type InvestOutput struct {
	Chantier       *backend.Chantier
	PointsInvested int
	Contributions  []backend.ResourceContribution
	Clamped        bool
	Completed      bool
}

// Invest gives action points and resources to a chantier. Amounts above what
// the chantier still needs are reduced to the remainder.
func (s *ChantierService) Invest(ctx context.Context, in InvestInput) (*InvestOutput, error) {
	chantier, err := s.Get(ctx, in.ChantierID)
	if err != nil {
		return nil, err
	}

	contribution, err := common.ClampContribution(in.Points, chantier.RemainingPA(), in.Resources, chantier.ResourceCosts)
	if err != nil {
		return nil, err
	}
	if contribution.Empty() {
		return nil, common.Invalid(MsgNothingInvested)
	}

	out := &InvestOutput{
		Chantier:      chantier,
		Contributions: contribution.Resources,
		Clamped:       contribution.Clamped,
	}
	points := contribution.Points

	if points > 0 {
		res, err := s.api.InvestInChantier(ctx, chantier.ID, in.CharacterID, points)
		if err != nil {
			return nil, fmt.Errorf("failed to invest in chantier: %w", err)
		}
		out.PointsInvested = res.PointsInvested
		out.Completed = res.IsCompleted
	}

	if len(out.Contributions) > 0 {
		updated, err := s.api.ContributeResourcesToChantier(ctx, chantier.ID, in.CharacterID, out.Contributions)
		if err != nil && out.PointsInvested > 0 {
			slog.Error("failed to contribute resources after investing PA",
				"chantier_id", chantier.ID,
				"character_id", in.CharacterID,
				"points", out.PointsInvested,
				"error", err,
			)
			msg, _ := bot.UserMessage(err)
			return nil, common.Invalid(MsgResourcesFailedAfterPA(out.PointsInvested, msg))
		}
		if err != nil {
			return nil, fmt.Errorf("failed to contribute resources: %w", err)
		}
		out.Chantier = updated
		out.Completed = out.Completed || updated.Status == backend.ChantierCompleted
	}

	slog.Info("invested in chantier",
		"chantier_id", chantier.ID,
		"character_id", in.CharacterID,
		"points", out.PointsInvested,
		"resources", len(out.Contributions),
		"completed", out.Completed,
	)
	return out, nil
}
