package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/characters/domain"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"golang.org/x/sync/errgroup"
)

// User-facing messages of character creation.
const (
	MsgEmptyCharacterName = "Le nom du personnage ne peut pas être vide."
	MsgCharacterExists    = "Vous avez déjà un personnage actif dans cette ville."
)

// MaxNameLength is the longest accepted character name.
const MaxNameLength = 50

// ProfileService builds profiles and creates characters.
type ProfileService struct {
	api CharacterAPI
}

// NewProfileService creates a new ProfileService.
func NewProfileService(api CharacterAPI) *ProfileService {
	return &ProfileService{api: api}
}

// NeedsCreation reports whether the user has yet to create a character in the town.
func (s *ProfileService) NeedsCreation(ctx context.Context, userID, townID string) (bool, error) {
	needs, err := s.api.NeedsCharacterCreation(ctx, userID, townID)
	if err != nil {
		return false, fmt.Errorf("failed to check character creation: %w", err)
	}
	return needs, nil
}

// Profile loads the action points and capabilities of a character concurrently.
func (s *ProfileService) Profile(ctx context.Context, character *backend.Character) (*domain.Profile, error) {
	profile := &domain.Profile{
		Character:    *character,
		ActionPoints: character.PATotal,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ap, err := s.api.GetActionPoints(gctx, character.ID)
		if err != nil {
			return fmt.Errorf("failed to get action points: %w", err)
		}
		profile.ActionPoints = ap.Points
		return nil
	})
	g.Go(func() error {
		capabilities, err := s.api.GetCharacterCapabilities(gctx, character.ID)
		if err != nil {
			return fmt.Errorf("failed to get capabilities: %w", err)
		}
		profile.Capabilities = capabilities
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return profile, nil
}

// Create creates the first character of a user in a town.
func (s *ProfileService) Create(ctx context.Context, userID, townID, name string) (*backend.Character, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.Invalid(MsgEmptyCharacterName)
	}

	needs, err := s.NeedsCreation(ctx, userID, townID)
	if err != nil {
		return nil, err
	}
	if !needs {
		return nil, common.Invalid(MsgCharacterExists)
	}

	character, err := s.api.CreateCharacter(ctx, backend.CreateCharacterInput{
		UserID: userID,
		TownID: townID,
		Name:   common.Truncate(name, MaxNameLength),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create character: %w", err)
	}
	slog.Info("created character", "character_id", character.ID, "user_id", userID, "town_id", townID)
	return character, nil
}
