package application

import (
	"context"
	"errors"
	"testing"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
)

type stockCall struct {
	op             string
	locationType   string
	resourceTypeID int
	quantity       int
}

type mockTownAPI struct {
	stock     map[int]int
	calls     []stockCall
	season    string
	setBy     string
	foodStock int
	foodSets  []int
}

func newMockTownAPI() *mockTownAPI {
	return &mockTownAPI{stock: map[int]int{1: 10, 2: 0}, season: backend.SeasonSummer, foodStock: 30}
}

func (m *mockTownAPI) GetTownByGuild(_ context.Context, guildID string) (*backend.Town, error) {
	return &backend.Town{ID: "t1", Name: "Bourg", GuildID: guildID, FoodStock: m.foodStock}, nil
}

func (m *mockTownAPI) GetTown(_ context.Context, townID string) (*backend.Town, error) {
	if townID != "t1" {
		return nil, &backend.APIError{StatusCode: 404}
	}
	return &backend.Town{ID: "t1", Name: "Bourg", GuildID: "42", FoodStock: m.foodStock}, nil
}

func (m *mockTownAPI) UpdateTownFoodStock(_ context.Context, townID string, foodStock int) (*backend.Town, error) {
	m.foodSets = append(m.foodSets, foodStock)
	m.foodStock = foodStock
	return m.GetTown(context.Background(), townID)
}

func (m *mockTownAPI) GetResources(_ context.Context, _, _ string) ([]backend.Resource, error) {
	resources := make([]backend.Resource, 0, len(m.stock))
	for _, id := range []int{1, 2} {
		if qty, ok := m.stock[id]; ok {
			resources = append(resources, backend.Resource{ResourceTypeID: id, Quantity: qty, ResourceType: resourceTypes[id-1]})
		}
	}
	return resources, nil
}

func (m *mockTownAPI) AddResource(_ context.Context, locationType, _ string, resourceTypeID, quantity int) error {
	m.calls = append(m.calls, stockCall{"add", locationType, resourceTypeID, quantity})
	m.stock[resourceTypeID] += quantity
	return nil
}

func (m *mockTownAPI) RemoveResource(_ context.Context, locationType, _ string, resourceTypeID, quantity int) error {
	m.calls = append(m.calls, stockCall{"remove", locationType, resourceTypeID, quantity})
	m.stock[resourceTypeID] -= quantity
	return nil
}

func (m *mockTownAPI) GetCurrentSeason(_ context.Context) (*backend.Season, error) {
	return &backend.Season{Name: m.season}, nil
}

func (m *mockTownAPI) SetSeason(_ context.Context, season, adminID string) error {
	m.season = season
	m.setBy = adminID
	return nil
}

var resourceTypes = []backend.ResourceType{
	{ID: 1, Name: "Vivres", Emoji: "🍞"},
	{ID: 2, Name: "Bois", Emoji: "🪵"},
	{ID: 3, Name: "Minerai", Emoji: "⛏️"},
}

type mockCatalog struct{}

func (mockCatalog) ResourceTypes(_ context.Context) ([]backend.ResourceType, error) {
	return resourceTypes, nil
}

func (mockCatalog) ResourceType(_ context.Context, id int) (backend.ResourceType, bool, error) {
	for _, rt := range resourceTypes {
		if rt.ID == id {
			return rt, true, nil
		}
	}
	return backend.ResourceType{}, false, nil
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
