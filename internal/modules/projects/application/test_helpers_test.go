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

type mockProjectAPI struct {
	town          backend.Town
	projects      []backend.Project
	created       []backend.CreateProjectInput
	deleted       []string
	contributions []backend.ContributeProjectInput
	createErr     error
	createDelay   time.Duration

	mu sync.Mutex
}

func newMockProjectAPI(projects ...backend.Project) *mockProjectAPI {
	return &mockProjectAPI{
		town:     backend.Town{ID: "t1", Name: "Bourg", GuildID: "42"},
		projects: projects,
	}
}

func (m *mockProjectAPI) GetTownByGuild(_ context.Context, _ string) (*backend.Town, error) {
	town := m.town
	return &town, nil
}

func (m *mockProjectAPI) GetProjectsByTown(_ context.Context, _ string) ([]backend.Project, error) {
	return append([]backend.Project(nil), m.projects...), nil
}

func (m *mockProjectAPI) CreateProject(_ context.Context, in backend.CreateProjectInput) (*backend.Project, error) {
	time.Sleep(m.createDelay)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, in)
	return &backend.Project{ID: "new", Name: in.Name, PARequired: in.PARequired, Status: backend.ProjectActive}, nil
}

func (m *mockProjectAPI) DeleteProject(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockProjectAPI) ContributeToProject(
	_ context.Context,
	_, projectID string,
	in backend.ContributeProjectInput,
) (*backend.Project, error) {
	m.contributions = append(m.contributions, in)
	for idx := range m.projects {
		p := &m.projects[idx]
		if p.ID != projectID {
			continue
		}
		p.PAContributed += in.PAAmount
		if p.RemainingPA() == 0 {
			p.Status = backend.ProjectCompleted
		}
		copied := *p
		return &copied, nil
	}
	return nil, &backend.APIError{StatusCode: 404, Message: "Projet introuvable"}
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
