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
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/expeditions/domain"
)

// User-facing messages of the creation wizard.
const (
	MsgEmptyName        = "Le nom de l'expédition ne peut pas être vide."
	MsgInvalidDuration  = "La durée doit être d'au moins 1 jour."
	MsgInvalidQuantity  = "La quantité doit être un nombre positif."
	MsgNoTownStock      = "Aucune ressource disponible dans le stock de la ville."
	MsgResourceGone     = "Cette ressource n'est plus disponible."
	MsgUnknownDirection = "Direction inconnue."
)

// ErrJoinAfterCreate is returned with the created expedition when the creator
// could not be added to it.
var ErrJoinAfterCreate = errors.New("expedition created but creator could not join")

// MsgCreatedNotJoined formats the partial success shown when the creator could
// not join the expedition they just created.
func MsgCreatedNotJoined(name string) string {
	return fmt.Sprintf("L'expédition **%s** a été créée, mais impossible de la rejoindre. Utilisez /expedition pour réessayer.", name)
}

// MsgInsufficientStock formats the refusal shown when the town lacks stock.
func MsgInsufficientStock(available int) string {
	return fmt.Sprintf("Stock insuffisant. Disponible : %d", available)
}

// CreationService runs the expedition creation wizard.
type CreationService struct {
	drafts *draft.Store[*domain.ExpeditionDraft]
	api    ExpeditionAPI
}

// NewCreationService creates a new CreationService.
func NewCreationService(drafts *draft.Store[*domain.ExpeditionDraft], api ExpeditionAPI) *CreationService {
	return &CreationService{drafts: drafts, api: api}
}

// StartInput holds the creation modal fields and the creator's context.
type StartInput struct {
	UserID      string
	TownID      string
	CharacterID string
	Name        string
	Duration    string
}

// Start creates a draft and returns its key.
func (s *CreationService) Start(in StartInput) (string, *domain.ExpeditionDraft, error) {
	duration, err := strconv.Atoi(in.Duration)
	if err != nil {
		return "", nil, common.Invalid(MsgInvalidDuration)
	}

	d, err := domain.NewExpeditionDraft(in.Name, duration, in.TownID, in.CharacterID, in.UserID)
	if err != nil {
		return "", nil, userError(err)
	}

	key := s.drafts.Put(draft.NewKey(), in.UserID, d)
	slog.Debug("started expedition draft", "key", key, "user_id", in.UserID, "town_id", in.TownID)
	return key, d.Clone(), nil
}

// Draft returns a snapshot of a draft owned by userID.
func (s *CreationService) Draft(key, userID string) (*domain.ExpeditionDraft, error) {
	var snapshot *domain.ExpeditionDraft
	err := s.drafts.View(key, userID, func(d *domain.ExpeditionDraft) {
		snapshot = d.Clone()
	})
	return snapshot, err
}

func (s *CreationService) townStock(ctx context.Context, townID string) ([]backend.Resource, error) {
	resources, err := s.api.GetResources(ctx, backend.LocationCity, townID)
	if err != nil {
		return nil, fmt.Errorf("failed to get town stock: %w", err)
	}
	return resources, nil
}

// AvailableResources lists the town resources with a positive quantity.
func (s *CreationService) AvailableResources(ctx context.Context, key, userID string) ([]backend.Resource, error) {
	d, err := s.Draft(key, userID)
	if err != nil {
		return nil, err
	}
	if err := d.Edit(); err != nil {
		return nil, err
	}

	stock, err := s.townStock(ctx, d.TownID)
	if err != nil {
		return nil, err
	}

	available := make([]backend.Resource, 0, len(stock))
	for _, r := range stock {
		if r.Quantity > 0 {
			available = append(available, r)
		}
		if len(available) == common.MaxSelectOptions {
			break
		}
	}
	if len(available) == 0 {
		return nil, common.Invalid(MsgNoTownStock)
	}
	return available, nil
}

// StockOf returns the town stock of one resource type, failing when it is empty.
func (s *CreationService) StockOf(ctx context.Context, key, userID string, resourceTypeID int) (*backend.Resource, error) {
	d, err := s.Draft(key, userID)
	if err != nil {
		return nil, err
	}
	stock, err := s.townStock(ctx, d.TownID)
	if err != nil {
		return nil, err
	}
	for idx := range stock {
		if stock[idx].ResourceTypeID == resourceTypeID && stock[idx].Quantity > 0 {
			return &stock[idx], nil
		}
	}
	return nil, common.Invalid(MsgResourceGone)
}

// AddResource packs a resource, merging with an existing entry of the same
// type, after checking the town stock.
func (s *CreationService) AddResource(
	ctx context.Context,
	key, userID string,
	resourceTypeID int,
	quantity string,
) (*domain.ExpeditionDraft, error) {
	qty, err := strconv.Atoi(quantity)
	if err != nil || qty <= 0 {
		return nil, common.Invalid(MsgInvalidQuantity)
	}

	d, err := s.Draft(key, userID)
	if err != nil {
		return nil, err
	}
	stock, err := s.townStock(ctx, d.TownID)
	if err != nil {
		return nil, err
	}

	var held *backend.Resource
	for idx := range stock {
		if stock[idx].ResourceTypeID == resourceTypeID {
			held = &stock[idx]
			break
		}
	}
	if held == nil {
		return nil, common.Invalid(MsgInsufficientStock(0))
	}

	var snapshot *domain.ExpeditionDraft
	err = s.drafts.Update(key, userID, func(d *domain.ExpeditionDraft) error {
		err := d.AddResource(domain.Resource{
			ResourceTypeID: resourceTypeID,
			Name:           held.ResourceType.Name,
			Emoji:          held.ResourceType.Emoji,
			Quantity:       qty,
		}, held.Quantity)
		if errors.Is(err, domain.ErrInsufficientStock) {
			return common.Invalid(MsgInsufficientStock(held.Quantity - d.Quantity(resourceTypeID)))
		}
		if err != nil {
			return err
		}
		snapshot = d.Clone()
		return nil
	})
	if err != nil {
		return nil, userError(err)
	}

	slog.Debug("added resource to expedition draft",
		"key", key,
		"resource_type_id", resourceTypeID,
		"quantity", qty,
		"total_resources", len(snapshot.Resources),
	)
	return snapshot, nil
}

// Validate closes the draft to edits before the direction is chosen.
func (s *CreationService) Validate(key, userID string) (*domain.ExpeditionDraft, error) {
	var snapshot *domain.ExpeditionDraft
	err := s.drafts.Update(key, userID, func(d *domain.ExpeditionDraft) error {
		if err := d.Validate(); err != nil {
			return err
		}
		snapshot = d.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Submit creates the expedition heading in direction, makes the creator
// join it and discards the draft. When only the join fails, the created
// expedition is returned along with ErrJoinAfterCreate.
func (s *CreationService) Submit(ctx context.Context, key, userID, direction string) (*backend.Expedition, error) {
	dir, err := domain.ParseDirection(direction)
	if err != nil {
		return nil, common.Invalid(MsgUnknownDirection)
	}

	d, err := s.drafts.Take(key, userID, func(d *domain.ExpeditionDraft) error {
		if err := d.Validate(); err != nil {
			return err
		}
		return d.MarkSubmitted()
	})
	if err != nil {
		return nil, err
	}

	in := backend.CreateExpeditionInput{
		Name:             d.Name,
		TownID:           d.TownID,
		InitialResources: make([]backend.ExpeditionResourceInput, 0, len(d.Resources)),
		Duration:         d.Duration,
		InitialDirection: string(dir),
		CreatedBy:        d.CreatedBy,
		CharacterID:      d.CharacterID,
	}
	for _, r := range d.Resources {
		in.InitialResources = append(in.InitialResources, backend.ExpeditionResourceInput{
			ResourceTypeID:   r.ResourceTypeID,
			ResourceTypeName: r.Name,
			Quantity:         r.Quantity,
		})
	}

	expedition, err := s.api.CreateExpedition(ctx, in)
	if err != nil {
		if d.Reopen() == nil && !s.drafts.Restore(key, userID, d) {
			slog.Debug("dropped failed expedition draft", "key", key, "user_id", userID)
		}
		return nil, fmt.Errorf("failed to create expedition: %w", err)
	}

	if _, err := s.api.JoinExpedition(ctx, expedition.ID, d.CharacterID); err != nil {
		slog.Error("failed to join created expedition",
			"expedition_id", expedition.ID,
			"character_id", d.CharacterID,
			"error", err,
		)
		return expedition, fmt.Errorf("%w: %w", ErrJoinAfterCreate, err)
	}

	slog.Info("created expedition",
		"expedition_id", expedition.ID,
		"town_id", d.TownID,
		"character_id", d.CharacterID,
		"direction", dir,
		"duration", d.Duration,
	)
	return expedition, nil
}

func userError(err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyName):
		return common.Invalid(MsgEmptyName)
	case errors.Is(err, domain.ErrInvalidDuration):
		return common.Invalid(MsgInvalidDuration)
	case errors.Is(err, domain.ErrInvalidQuantity):
		return common.Invalid(MsgInvalidQuantity)
	default:
		return err
	}
}
