package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
)

// User-facing messages of expedition membership.
const (
	MsgNoJoinable      = "Aucune expédition en cours de planification disponible."
	MsgNotOnExpedition = "Votre personnage ne participe à aucune expédition active."
	MsgCannotLeave     = "Vous ne pouvez pas quitter une expédition qui a déjà commencé."
	MsgNotJoinable     = "Cette expédition n'accepte plus de membres."
)

// MsgAlreadyOnExpedition formats the refusal shown to a character already away.
func MsgAlreadyOnExpedition(name string) string {
	return fmt.Sprintf("Votre personnage est déjà sur une expédition active : **%s**.", name)
}

// ExpeditionService handles joining and leaving expeditions.
type ExpeditionService struct {
	api ExpeditionAPI
}

// NewExpeditionService creates a new ExpeditionService.
func NewExpeditionService(api ExpeditionAPI) *ExpeditionService {
	return &ExpeditionService{api: api}
}

// Active returns the character's current expedition, or nil.
func (s *ExpeditionService) Active(ctx context.Context, characterID string) (*backend.Expedition, error) {
	expeditions, err := s.api.GetActiveExpeditionsForCharacter(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active expeditions: %w", err)
	}
	if len(expeditions) == 0 {
		return nil, nil
	}
	return &expeditions[0], nil
}

// EnsureAvailable fails when the character already belongs to an expedition.
func (s *ExpeditionService) EnsureAvailable(ctx context.Context, characterID string) error {
	active, err := s.Active(ctx, characterID)
	if err != nil {
		return err
	}
	if active != nil {
		return common.Invalid(MsgAlreadyOnExpedition(active.Name))
	}
	return nil
}

// Joinable lists the expeditions of a town still in planning.
func (s *ExpeditionService) Joinable(ctx context.Context, townID, characterID string) ([]backend.Expedition, error) {
	if err := s.EnsureAvailable(ctx, characterID); err != nil {
		return nil, err
	}

	expeditions, err := s.api.GetExpeditionsByTown(ctx, townID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expeditions: %w", err)
	}

	joinable := make([]backend.Expedition, 0, len(expeditions))
	for _, e := range expeditions {
		if e.Status == backend.ExpeditionPlanning {
			joinable = append(joinable, e)
		}
	}
	if len(joinable) == 0 {
		return nil, common.Invalid(MsgNoJoinable)
	}
	return joinable, nil
}

// Join adds a character to a planning expedition.
func (s *ExpeditionService) Join(ctx context.Context, expeditionID, characterID string) (*backend.Expedition, error) {
	if err := s.EnsureAvailable(ctx, characterID); err != nil {
		return nil, err
	}

	expedition, err := s.api.GetExpedition(ctx, expeditionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expedition: %w", err)
	}
	if expedition.Status != backend.ExpeditionPlanning {
		return nil, common.Invalid(MsgNotJoinable)
	}

	joined, err := s.api.JoinExpedition(ctx, expeditionID, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to join expedition: %w", err)
	}
	slog.Info("joined expedition", "expedition_id", expeditionID, "character_id", characterID)
	return joined, nil
}

// LeaveOutput describes a departure from an expedition.
type LeaveOutput struct {
	Expedition *backend.Expedition
	// Terminated is true when the last member left and the expedition ended.
	Terminated bool
}

// Leave removes a character from its planning expedition.
func (s *ExpeditionService) Leave(ctx context.Context, characterID string) (*LeaveOutput, error) {
	active, err := s.Active(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, common.Invalid(MsgNotOnExpedition)
	}
	if active.Status != backend.ExpeditionPlanning {
		return nil, common.Invalid(MsgCannotLeave)
	}

	if err := s.api.LeaveExpedition(ctx, active.ID, characterID); err != nil {
		return nil, fmt.Errorf("failed to leave expedition: %w", err)
	}

	out := &LeaveOutput{Expedition: active}
	updated, err := s.api.GetExpedition(ctx, active.ID)
	switch {
	case errors.Is(err, backend.ErrNotFound):
		out.Terminated = true
	case err != nil:
		slog.Warn("failed to reload expedition after leave", "expedition_id", active.ID, "error", err)
	default:
		out.Terminated = updated.Status == backend.ExpeditionReturned
	}

	slog.Info("left expedition",
		"expedition_id", active.ID,
		"character_id", characterID,
		"terminated", out.Terminated,
	)
	return out, nil
}
