package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/draft"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/projects/domain"
)

// User-facing messages of the creation wizard.
const (
	MsgEmptyName          = "Le nom du projet ne peut pas être vide."
	MsgInvalidPA          = "Les PA requis doivent être un nombre supérieur à 0."
	MsgInvalidOutput      = "La quantité produite doit être un nombre supérieur à 0."
	MsgNoCraftType        = "Sélectionnez au moins un type d'artisanat."
	MsgUnknownCraftType   = "Type d'artisanat inconnu."
	MsgNoOutput           = "Sélectionnez une ressource produite."
	MsgInvalidQuantity    = "La quantité doit être un nombre supérieur à 0."
	MsgDuplicateResource  = "Cette ressource a déjà été ajoutée."
	MsgAllResourcesAdded  = "Toutes les ressources disponibles ont déjà été ajoutées."
	MsgInvalidBlueprintPA = "Les PA du blueprint doivent être un nombre supérieur à 0."
)

// CreationService runs the project creation wizard. Drafts are keyed by a
// generated id carried in the customIds and bound to the admin who opened them.
type CreationService struct {
	drafts  *draft.Store[*domain.ProjectDraft]
	api     ProjectAPI
	catalog ResourceCatalog
}

// NewCreationService creates a new CreationService.
func NewCreationService(
	drafts *draft.Store[*domain.ProjectDraft],
	api ProjectAPI,
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
	PA             string
	OutputQuantity string
}

// Start creates a draft and returns its key.
func (s *CreationService) Start(in StartInput) (string, *domain.ProjectDraft, error) {
	pa, err := common.ParsePositiveInt(in.PA)
	if err != nil {
		return "", nil, common.Invalid(MsgInvalidPA)
	}
	output, err := common.ParsePositiveInt(in.OutputQuantity)
	if err != nil {
		return "", nil, common.Invalid(MsgInvalidOutput)
	}

	d, err := domain.NewProjectDraft(in.Name, pa, output, in.GuildID, in.UserID)
	if err != nil {
		return "", nil, userError(err)
	}

	key := s.drafts.Put(draft.NewKey(), in.UserID, d)
	slog.Debug("started project draft", "key", key, "user_id", in.UserID, "name", d.Name)
	return key, d.Clone(), nil
}

// Draft returns a snapshot of a draft owned by userID.
func (s *CreationService) Draft(key, userID string) (*domain.ProjectDraft, error) {
	var snapshot *domain.ProjectDraft
	err := s.drafts.View(key, userID, func(d *domain.ProjectDraft) {
		snapshot = d.Clone()
	})
	return snapshot, err
}

// update applies fn to a draft under the store lock and returns a snapshot of the result.
func (s *CreationService) update(key, userID string, fn func(*domain.ProjectDraft) error) (*domain.ProjectDraft, error) {
	var snapshot *domain.ProjectDraft
	err := s.drafts.Update(key, userID, func(d *domain.ProjectDraft) error {
		if err := fn(d); err != nil {
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

// SetCraftTypes sets the craft types picked in the select menu.
func (s *CreationService) SetCraftTypes(key, userID string, values []string) (*domain.ProjectDraft, error) {
	return s.update(key, userID, func(d *domain.ProjectDraft) error {
		types := make([]domain.CraftType, 0, len(values))
		for _, v := range values {
			ct, err := domain.ParseCraftType(v)
			if err != nil {
				return err
			}
			types = append(types, ct)
		}
		return d.SetCraftTypes(types)
	})
}

// OutputOptions lists the resource types a project can produce.
func (s *CreationService) OutputOptions(ctx context.Context) ([]backend.ResourceType, error) {
	types, err := s.catalog.ResourceTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list resource types: %w", err)
	}
	if len(types) > common.MaxSelectOptions {
		types = types[:common.MaxSelectOptions]
	}
	return types, nil
}

// SetOutput sets the produced resource type from a select value.
func (s *CreationService) SetOutput(ctx context.Context, key, userID, value string) (*domain.ProjectDraft, error) {
	rt, err := s.resourceType(ctx, value)
	if err != nil {
		return nil, err
	}
	return s.update(key, userID, func(d *domain.ProjectDraft) error {
		return d.SetOutput(rt.ID, common.ResourceLabel(rt.Emoji, rt.Name))
	})
}

// AvailableResources lists the resource types not yet required by the draft.
func (s *CreationService) AvailableResources(ctx context.Context, key, userID string) ([]backend.ResourceType, error) {
	d, err := s.Draft(key, userID)
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
		if !d.HasResource(rt.ID) {
			available = append(available, rt)
		}
		if len(available) == common.MaxSelectOptions {
			break
		}
	}
	if len(available) == 0 {
		return nil, common.Invalid(MsgAllResourcesAdded)
	}
	return available, nil
}

// AddResource adds a resource requirement.
func (s *CreationService) AddResource(
	ctx context.Context,
	key, userID string,
	resourceTypeID int,
	quantity string,
) (*domain.ProjectDraft, error) {
	qty, err := common.ParsePositiveInt(quantity)
	if err != nil {
		return nil, common.Invalid(MsgInvalidQuantity)
	}
	rt, err := s.resourceType(ctx, strconv.Itoa(resourceTypeID))
	if err != nil {
		return nil, err
	}

	return s.update(key, userID, func(d *domain.ProjectDraft) error {
		return d.AddResource(domain.ResourceCost{
			ResourceTypeID: rt.ID,
			Name:           rt.Name,
			Emoji:          rt.Emoji,
			Quantity:       qty,
		})
	})
}

// SetBlueprint sets the PA cost of the blueprint.
func (s *CreationService) SetBlueprint(key, userID, pa string) (*domain.ProjectDraft, error) {
	n, err := common.ParsePositiveInt(pa)
	if err != nil {
		return nil, common.Invalid(MsgInvalidBlueprintPA)
	}
	return s.update(key, userID, func(d *domain.ProjectDraft) error {
		return d.SetBlueprintPA(n)
	})
}

// Submit creates the project in the town of the draft's guild and discards the draft.
// The draft is taken out of the store for the duration of the call and put
// back if it fails.
func (s *CreationService) Submit(ctx context.Context, key, userID string) (*backend.Project, error) {
	d, err := s.drafts.Take(key, userID, func(d *domain.ProjectDraft) error {
		if err := d.Validate(); err != nil {
			return err
		}
		return d.MarkSubmitted()
	})
	if err != nil {
		return nil, userError(err)
	}

	town, err := s.api.GetTownByGuild(ctx, d.GuildID)
	if err != nil {
		s.restore(key, userID, d)
		return nil, fmt.Errorf("failed to get town: %w", err)
	}

	in := backend.CreateProjectInput{
		Name:                 d.Name,
		PARequired:           d.PARequired,
		TownID:               town.ID,
		CraftTypes:           make([]string, 0, len(d.CraftTypes)),
		OutputResourceTypeID: d.OutputResourceTypeID,
		OutputQuantity:       d.OutputQuantity,
		PABlueprintRequired:  d.BlueprintPA,
		CreatedBy:            d.CreatedBy,
	}
	for _, ct := range d.CraftTypes {
		in.CraftTypes = append(in.CraftTypes, string(ct))
	}
	for _, rc := range d.ResourceCosts {
		in.ResourceCosts = append(in.ResourceCosts, backend.ProjectCostInput{
			ResourceTypeID:   rc.ResourceTypeID,
			QuantityRequired: rc.Quantity,
		})
	}

	project, err := s.api.CreateProject(ctx, in)
	if err != nil {
		s.restore(key, userID, d)
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	slog.Info("created project", "project_id", project.ID, "town_id", town.ID, "user_id", userID)
	return project, nil
}

func (s *CreationService) restore(key, userID string, d *domain.ProjectDraft) {
	if err := d.Reopen(); err != nil {
		return
	}
	if !s.drafts.Restore(key, userID, d) {
		slog.Debug("dropped failed project draft", "key", key, "user_id", userID)
	}
}

func (s *CreationService) resourceType(ctx context.Context, value string) (backend.ResourceType, error) {
	id, err := strconv.Atoi(value)
	if err != nil {
		return backend.ResourceType{}, common.Invalid(common.MsgUnknownResource)
	}
	rt, ok, err := s.catalog.ResourceType(ctx, id)
	if err != nil {
		return backend.ResourceType{}, fmt.Errorf("failed to get resource type: %w", err)
	}
	if !ok {
		return backend.ResourceType{}, common.Invalid(common.MsgUnknownResource)
	}
	return rt, nil
}

func userError(err error) error {
	messages := []struct {
		target error
		msg    string
	}{
		{domain.ErrEmptyName, MsgEmptyName},
		{domain.ErrInvalidPA, MsgInvalidPA},
		{domain.ErrInvalidOutput, MsgInvalidOutput},
		{domain.ErrNoCraftType, MsgNoCraftType},
		{domain.ErrUnknownCraftType, MsgUnknownCraftType},
		{domain.ErrNoOutput, MsgNoOutput},
		{domain.ErrInvalidQuantity, MsgInvalidQuantity},
		{domain.ErrDuplicateResource, MsgDuplicateResource},
		{domain.ErrInvalidBlueprintPA, MsgInvalidBlueprintPA},
	}
	for _, m := range messages {
		if errors.Is(err, m.target) {
			return common.Invalid(m.msg)
		}
	}
	return err
}
