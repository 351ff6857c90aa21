package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
)

type mockExpeditionAPI struct {
	expeditions map[string]*backend.Expedition
	// active maps character ids to expedition ids.
	active  map[string]string
	stock   []backend.Resource
	created []backend.CreateExpeditionInput
	joined  []string
	left    []string

	deleteOnLeave bool
	createErr     error
	createDelay   time.Duration
	joinErr       error

	mu sync.Mutex
}

func newMockExpeditionAPI(expeditions ...backend.Expedition) *mockExpeditionAPI {
	m := &mockExpeditionAPI{
		expeditions: make(map[string]*backend.Expedition),
		active:      make(map[string]string),
		stock: []backend.Resource{
			{ResourceTypeID: 1, Quantity: 10, ResourceType: backend.ResourceType{ID: 1, Name: "Vivres", Emoji: "🍞"}},
			{ResourceTypeID: 2, Quantity: 0, ResourceType: backend.ResourceType{ID: 2, Name: "Bois", Emoji: "🪵"}},
		},
	}
	for idx := range expeditions {
		m.expeditions[expeditions[idx].ID] = &expeditions[idx]
	}
	return m
}

func (m *mockExpeditionAPI) GetActiveExpeditionsForCharacter(_ context.Context, characterID string) ([]backend.Expedition, error) {
	id, ok := m.active[characterID]
	if !ok {
		return nil, nil
	}
	return []backend.Expedition{*m.expeditions[id]}, nil
}

func (m *mockExpeditionAPI) GetExpeditionsByTown(_ context.Context, townID string) ([]backend.Expedition, error) {
	var list []backend.Expedition
	for _, e := range m.expeditions {
		if e.TownID == townID {
			list = append(list, *e)
		}
	}
	return list, nil
}

func (m *mockExpeditionAPI) GetExpedition(_ context.Context, id string) (*backend.Expedition, error) {
	e, ok := m.expeditions[id]
	if !ok {
		return nil, &backend.APIError{StatusCode: 404, Message: "Expédition introuvable"}
	}
	copied := *e
	return &copied, nil
}

func (m *mockExpeditionAPI) CreateExpedition(_ context.Context, in backend.CreateExpeditionInput) (*backend.Expedition, error) {
	time.Sleep(m.createDelay)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, in)
	e := &backend.Expedition{
		ID:               "e-new",
		Name:             in.Name,
		TownID:           in.TownID,
		Duration:         in.Duration,
		Status:           backend.ExpeditionPlanning,
		InitialDirection: in.InitialDirection,
	}
	m.expeditions[e.ID] = e
	return e, nil
}

func (m *mockExpeditionAPI) JoinExpedition(_ context.Context, expeditionID, characterID string) (*backend.Expedition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.joinErr != nil {
		return nil, m.joinErr
	}
	m.joined = append(m.joined, expeditionID+"/"+characterID)
	m.active[characterID] = expeditionID
	copied := *m.expeditions[expeditionID]
	return &copied, nil
}

func (m *mockExpeditionAPI) LeaveExpedition(_ context.Context, expeditionID, characterID string) error {
	m.left = append(m.left, expeditionID+"/"+characterID)
	delete(m.active, characterID)
	if m.deleteOnLeave {
		delete(m.expeditions, expeditionID)
	}
	return nil
}

func (m *mockExpeditionAPI) GetResources(_ context.Context, locationType, _ string) ([]backend.Resource, error) {
	if locationType != backend.LocationCity {
		return nil, errors.New("unexpected location type " + locationType)
	}
	return m.stock, nil
}

func assertValidation(t *testing.T, err error, expected string) {
	t.Helper()
	var validation *common.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError %q, got %v", expected, err)
	}
	if validation.Message != expected {
		t.Errorf("expected message %q, got %q", expected, validation.Message)
	}
}
