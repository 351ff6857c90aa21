package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
)

type mockCharacterAPI struct {
	mu           sync.Mutex
	needs        bool
	points       int
	capabilities []backend.Capability
	created      []backend.CreateCharacterInput
	used         []string
	usedSummer   []bool
	eatErr       error
	apErr        error
	season       string
}

func (m *mockCharacterAPI) NeedsCharacterCreation(_ context.Context, _, _ string) (bool, error) {
	return m.needs, nil
}

func (m *mockCharacterAPI) CreateCharacter(_ context.Context, in backend.CreateCharacterInput) (*backend.Character, error) {
	m.created = append(m.created, in)
	return &backend.Character{ID: "ch-new", Name: in.Name, UserID: in.UserID, TownID: in.TownID, IsActive: true}, nil
}

func (m *mockCharacterAPI) EatFood(_ context.Context, characterID string) (*backend.EatResult, error) {
	if m.eatErr != nil {
		return nil, m.eatErr
	}
	return &backend.EatResult{
		Character:    backend.Character{ID: characterID, HungerLevel: 0},
		Town:         backend.Town{FoodStock: 9},
		FoodConsumed: 1,
	}, nil
}

func (m *mockCharacterAPI) GetActionPoints(_ context.Context, _ string) (*backend.ActionPoints, error) {
	if m.apErr != nil {
		return nil, m.apErr
	}
	return &backend.ActionPoints{Points: m.points}, nil
}

func (m *mockCharacterAPI) GetCharacterCapabilities(_ context.Context, _ string) ([]backend.Capability, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.capabilities, nil
}

func (m *mockCharacterAPI) UseCapability(_ context.Context, _, capabilityID string, isSummer bool) (*backend.CapabilityResult, error) {
	m.used = append(m.used, capabilityID)
	m.usedSummer = append(m.usedSummer, isSummer)
	return &backend.CapabilityResult{Success: true, Message: "Vous avez pêché 2 poissons."}, nil
}

func (m *mockCharacterAPI) GetCurrentSeason(_ context.Context) (*backend.Season, error) {
	return &backend.Season{Name: m.season}, nil
}

func assertValidation(t *testing.T, err error, expected string) {
	t.Helper()
	var validation *common.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error %q, got %v", expected, err)
	}
	if validation.Message != expected {
		t.Errorf("expected %q, got %q", expected, validation.Message)
	}
}
