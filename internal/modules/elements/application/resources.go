package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/elements/domain"
)

// User-facing messages.
const (
	MsgInvalidResourceCategory = "❌ Catégorie invalide. Utilisez : base, transformé ou science."
	MsgMissingResourceName     = "❌ Le nom de la ressource est requis."
	MsgMissingResourceEmoji    = "❌ L'emoji de la ressource est requis."
)

// ResourceService creates resource types for /new-element-admin.
type ResourceService struct {
	api     ResourceTypeAPI
	catalog CatalogCache
}

// NewResourceService creates a new ResourceService.
func NewResourceService(api ResourceTypeAPI, catalog CatalogCache) *ResourceService {
	return &ResourceService{api: api, catalog: catalog}
}

// ResourceInput is the content of the resource type modal.
type ResourceInput struct {
	Name        string
	Emoji       string
	Category    string
	Description string
	AdminID     string
}

// Create validates and creates a resource type, then drops the cached list
// so the new type shows up in every resource select.
func (s *ResourceService) Create(ctx context.Context, in ResourceInput) (*backend.ResourceType, error) {
	rt, err := domain.NewResourceType(in.Name, in.Emoji, in.Category, in.Description)
	switch {
	case errors.Is(err, domain.ErrMissingName):
		return nil, common.Invalid(MsgMissingResourceName)
	case errors.Is(err, domain.ErrMissingEmoji):
		return nil, common.Invalid(MsgMissingResourceEmoji)
	case errors.Is(err, domain.ErrInvalidResourceCategory):
		return nil, common.Invalid(MsgInvalidResourceCategory)
	case err != nil:
		return nil, err
	}

	created, err := s.api.CreateResourceType(ctx, backend.CreateResourceTypeInput{
		Name:        rt.Name,
		Emoji:       rt.Emoji,
		Category:    rt.Category,
		Description: rt.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create resource type: %w", err)
	}
	s.catalog.Invalidate()

	slog.Info("created resource type",
		"resource_type_id", created.ID,
		"name", created.Name,
		"category", created.Category,
		"admin_id", in.AdminID,
	)
	return created, nil
}
