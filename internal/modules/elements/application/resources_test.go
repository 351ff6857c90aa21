package application

import (
	"context"
	"errors"
	"testing"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
)

type mockResourceAPI struct {
	created []backend.CreateResourceTypeInput
	err     error
}

func (m *mockResourceAPI) CreateResourceType(_ context.Context, in backend.CreateResourceTypeInput) (*backend.ResourceType, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = append(m.created, in)
	return &backend.ResourceType{
		ID:          len(m.created),
		Name:        in.Name,
		Emoji:       in.Emoji,
		Category:    in.Category,
		Description: in.Description,
	}, nil
}

type mockCatalog struct {
	invalidations int
}

func (m *mockCatalog) Invalidate() {
	m.invalidations++
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

func TestResourceService_Create(t *testing.T) {
	api := &mockResourceAPI{}
	catalog := &mockCatalog{}
	svc := NewResourceService(api, catalog)

	rt, err := svc.Create(context.Background(), ResourceInput{
		Name:     " Cuir ",
		Emoji:    "🟫",
		Category: "Transformé",
		AdminID:  "7",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rt.ID != 1 || rt.Name != "Cuir" || rt.Category != "transformé" {
		t.Errorf("unexpected resource type %+v", rt)
	}
	if catalog.invalidations != 1 {
		t.Errorf("expected the catalog to be invalidated once, got %d", catalog.invalidations)
	}
}

func TestResourceService_Create_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		input    ResourceInput
		expected string
	}{
		{"bad category", ResourceInput{Name: "Cuir", Emoji: "🟫", Category: "luxe"}, MsgInvalidResourceCategory},
		{"no name", ResourceInput{Emoji: "🟫", Category: "base"}, MsgMissingResourceName},
		{"no emoji", ResourceInput{Name: "Cuir", Category: "base"}, MsgMissingResourceEmoji},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &mockResourceAPI{}
			catalog := &mockCatalog{}
			_, err := NewResourceService(api, catalog).Create(context.Background(), tt.input)
			assertValidation(t, err, tt.expected)
			if len(api.created) != 0 || catalog.invalidations != 0 {
				t.Errorf("expected no call, got %d creations and %d invalidations", len(api.created), catalog.invalidations)
			}
		})
	}
}

func TestResourceService_Create_KeepsCacheOnAPIError(t *testing.T) {
	api := &mockResourceAPI{err: backend.ErrNotFound}
	catalog := &mockCatalog{}

	_, err := NewResourceService(api, catalog).Create(context.Background(), ResourceInput{Name: "Cuir", Emoji: "🟫", Category: "base"})
	if !errors.Is(err, backend.ErrNotFound) {
		t.Errorf("expected error %v, got %v", backend.ErrNotFound, err)
	}
	if catalog.invalidations != 0 {
		t.Errorf("expected no invalidation, got %d", catalog.invalidations)
	}
}
