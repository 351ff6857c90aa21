package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/draft"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/chantiers/domain"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
)

// User-facing messages of the creation wizard.
const (
	MsgEmptyName         = "Le nom du chantier ne peut pas être vide."
	MsgInvalidCost       = "Le coût doit être un nombre supérieur à 0."
	MsgAllResourcesAdded = "Toutes les ressources disponibles ont déjà été ajoutées."
	MsgDuplicateResource = "Cette ressource a déjà été ajoutée."
	MsgInvalidQuantity   = "La quantité doit être un nombre supérieur à 0."
)

// CreationService runs the chantier creation wizard.
// Drafts are keyed by the admin's Discord id, so each admin has at most one.
type CreationService struct {
	drafts  *draft.Store[*domain.ChantierDraft]
	api     ChantierAPI
	catalog ResourceCatalog
}

// NewCreationService creates a new CreationService.
func NewCreationService(
	drafts *draft.Store[*domain.ChantierDraft],
	api ChantierAPI,
	catalog ResourceCatalog,
) *CreationService {
	return &CreationService{
		drafts:  drafts,
		api:     api,
		catalog: catalog,
	}
}

// StartInput holds the raw fields of the creation modal.
type StartInput struct {
	GuildID        string
	UserID         string
	Name           string
	Cost           string
	CompletionText string
}

// Start creates a draft, replacing any previous draft of the same admin.
func (s *CreationService) Start(in StartInput) (*domain.ChantierDraft, error) {
	cost, err := common.ParsePositiveInt(in.Cost)
	if err != nil {
		return nil, common.Invalid(MsgInvalidCost)
	}

	d, err := domain.NewChantierDraft(in.Name, cost, in.CompletionText, in.GuildID, in.UserID)
	if err != nil {
		return nil, userError(err)
	}

	s.drafts.Put(in.UserID, in.UserID, d)
	slog.Debug("started chantier draft", "user_id", in.UserID, "name", d.Name)
	return d.Clone(), nil
}

// Draft returns a snapshot of the admin's current draft.
func (s *CreationService) Draft(userID string) (*domain.ChantierDraft, error) {
	var snapshot *domain.ChantierDraft
	err := s.drafts.View(userID, userID, func(d *domain.ChantierDraft) {
		snapshot = d.Clone()
	})
	return snapshot, err
}

// AvailableResources lists the resource types not yet in the draft, at most
// common.MaxSelectOptions of them.
func (s *CreationService) AvailableResources(ctx context.Context, userID string) ([]backend.ResourceType, error) {
	d, err := s.Draft(userID)
	if err != nil {
		return nil, err
	}
	if err := d.Edit(); err != nil {
		return nil, err
	}

	types, err := s.catalog.ResourceTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list resource types: %w", err)
	}

	available := make([]backend.ResourceType, 0, len(types))
	for _, rt := range types {
		if d.HasResource(rt.ID) {
			continue
		}
		available = append(available, rt)
		if len(available) == common.MaxSelectOptions {
			break
		}
	}
	if len(available) == 0 {
		return nil, common.Invalid(MsgAllResourcesAdded)
	}
	return available, nil
}

// AddResource adds a resource requirement to the admin's draft.
func (s *CreationService) AddResource(
	ctx context.Context,
	userID string,
	resourceTypeID int,
	quantity string,
) (*domain.ChantierDraft, error) {
	qty, err := common.ParsePositiveInt(quantity)
	if err != nil {
		return nil, common.Invalid(MsgInvalidQuantity)
	}

	rt, ok, err := s.catalog.ResourceType(ctx, resourceTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get resource type: %w", err)
	}
	if !ok {
		return nil, common.Invalid(common.MsgUnknownResource)
	}

	var snapshot *domain.ChantierDraft
	err = s.drafts.Update(userID, userID, func(d *domain.ChantierDraft) error {
		err := d.AddResource(domain.ResourceCost{
			ResourceTypeID: rt.ID,
			Name:           rt.Name,
			Emoji:          rt.Emoji,
			Quantity:       qty,
		})
		if err != nil {
			return err
		}
		snapshot = d.Clone()
		return nil
	})
	if err != nil {
		return nil, userError(err)
	}
	return snapshot, nil
}

// Submit creates the chantier from the draft and discards the draft.
// The draft leaves the store before the backend call, so a repeated click
// finds no draft; it is put back if the creation fails.
func (s *CreationService) Submit(ctx context.Context, userID string) (*backend.Chantier, error) {
	d, err := s.drafts.Take(userID, userID, func(d *domain.ChantierDraft) error {
		if err := d.Validate(); err != nil {
			return err
		}
		return d.MarkSubmitted()
	})
	if err != nil {
		return nil, userError(err)
	}

	in := backend.CreateChantierInput{
		Name:           d.Name,
		Cost:           d.Cost,
		CompletionText: d.CompletionText,
		ResourceCosts:  make([]backend.ChantierResourceInput, 0, len(d.ResourceCosts)),
		DiscordGuildID: d.GuildID,
		CreatedBy:      d.CreatedBy,
	}
	for _, rc := range d.ResourceCosts {
		in.ResourceCosts = append(in.ResourceCosts, backend.ChantierResourceInput{
			ResourceTypeID: rc.ResourceTypeID,
			Quantity:       rc.Quantity,
		})
	}

	chantier, err := s.api.CreateChantier(ctx, in)
	if err != nil {
		s.restore(userID, d)
		return nil, fmt.Errorf("failed to create chantier: %w", err)
	}

	slog.Info("created chantier", "chantier_id", chantier.ID, "guild_id", d.GuildID, "user_id", userID)
	return chantier, nil
}

func (s *CreationService) restore(userID string, d *domain.ChantierDraft) {
	if err := d.Reopen(); err != nil {
		return
	}
	if !s.drafts.Restore(userID, userID, d) {
		slog.Debug("dropped failed chantier draft", "user_id", userID)
	}
}

func userError(err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyName):
		return common.Invalid(MsgEmptyName)
	case errors.Is(err, domain.ErrInvalidCost):
		return common.Invalid(MsgInvalidCost)
	case errors.Is(err, domain.ErrInvalidQuantity):
		return common.Invalid(MsgInvalidQuantity)
	case errors.Is(err, domain.ErrDuplicateResource):
		return common.Invalid(MsgDuplicateResource)
	default:
		return err
	}
}
