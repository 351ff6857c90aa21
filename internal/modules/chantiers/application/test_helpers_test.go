package application

import (
	"context"
	"sync"
	"time"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
)

type mockChantierAPI struct {
	chantiers     map[string]*backend.Chantier
	created       []backend.CreateChantierInput
	deleted       []string
	invested      []int
	contributions [][]backend.ResourceContribution
	createErr     error
	createDelay   time.Duration
	contributeErr error

	mu sync.Mutex
}

func newMockChantierAPI(chantiers ...backend.Chantier) *mockChantierAPI {
	m := &mockChantierAPI{chantiers: make(map[string]*backend.Chantier)}
	for idx := range chantiers {
		m.chantiers[chantiers[idx].ID] = &chantiers[idx]
	}
	return m
}

func (m *mockChantierAPI) GetChantiersByGuild(_ context.Context, _ string) ([]backend.Chantier, error) {
	list := make([]backend.Chantier, 0, len(m.chantiers))
	for _, c := range m.chantiers {
		list = append(list, *c)
	}
	return list, nil
}

func (m *mockChantierAPI) GetChantier(_ context.Context, id string) (*backend.Chantier, error) {
	c, ok := m.chantiers[id]
	if !ok {
		return nil, &backend.APIError{StatusCode: 404, Message: "Chantier introuvable"}
	}
	copied := *c
	return &copied, nil
}

func (m *mockChantierAPI) CreateChantier(_ context.Context, in backend.CreateChantierInput) (*backend.Chantier, error) {
	time.Sleep(m.createDelay)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, in)
	return &backend.Chantier{ID: "new", Name: in.Name, Cost: in.Cost, Status: backend.ChantierPlan}, nil
}

func (m *mockChantierAPI) DeleteChantier(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	delete(m.chantiers, id)
	return nil
}

func (m *mockChantierAPI) InvestInChantier(_ context.Context, id, _ string, points int) (*backend.InvestResult, error) {
	m.invested = append(m.invested, points)
	c := m.chantiers[id]
	c.SpendOnIt += points
	return &backend.InvestResult{
		PointsInvested:  points,
		RemainingPoints: c.RemainingPA(),
		IsCompleted:     c.RemainingPA() == 0,
	}, nil
}

func (m *mockChantierAPI) ContributeResourcesToChantier(
	_ context.Context,
	id, _ string,
	contributions []backend.ResourceContribution,
) (*backend.Chantier, error) {
	if m.contributeErr != nil {
		return nil, m.contributeErr
	}
	m.contributions = append(m.contributions, contributions)
	copied := *m.chantiers[id]
	return &copied, nil
}

type mockCatalog struct {
	types []backend.ResourceType
}

func (m *mockCatalog) ResourceTypes(_ context.Context) ([]backend.ResourceType, error) {
	return m.types, nil
}

func (m *mockCatalog) ResourceType(_ context.Context, id int) (backend.ResourceType, bool, error) {
	for _, rt := range m.types {
		if rt.ID == id {
			return rt, true, nil
		}
	}
	return backend.ResourceType{}, false, nil
}
