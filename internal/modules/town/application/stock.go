package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/town/domain"
)

// User-facing messages of the town stock.
const (
	MsgEmptyStock     = "❌ La ville n'a aucune ressource en stock."
	MsgNoResourceType = "❌ Aucun type de ressource n'est défini."
)

// MsgInsufficientStock formats the refusal of a removal larger than the stock.
func MsgInsufficientStock(held int, name string) string {
	return fmt.Sprintf("❌ Quantité insuffisante. Stock disponible: **%d** unités de %s.", held, name)
}

// StockService reads and adjusts the resources of a town.
type StockService struct {
	api     StockAPI
	catalog ResourceCatalog
}

// NewStockService creates a new StockService.
func NewStockService(api StockAPI, catalog ResourceCatalog) *StockService {
	return &StockService{api: api, catalog: catalog}
}

// Town returns the town of a guild.
func (s *StockService) Town(ctx context.Context, guildID string) (*backend.Town, error) {
	town, err := s.api.GetTownByGuild(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get town: %w", err)
	}
	return town, nil
}

// Resources lists the resources held by a town.
func (s *StockService) Resources(ctx context.Context, townID string) ([]backend.Resource, error) {
	resources, err := s.api.GetResources(ctx, backend.LocationCity, townID)
	if err != nil {
		return nil, fmt.Errorf("failed to get town resources: %w", err)
	}
	return resources, nil
}

// Candidates returns the resources an admin may pick for op: every resource
// type with its held quantity to add, or the held resources to remove.
func (s *StockService) Candidates(ctx context.Context, guildID string, op domain.Operation) ([]backend.Resource, error) {
	town, err := s.Town(ctx, guildID)
	if err != nil {
		return nil, err
	}
	held, err := s.Resources(ctx, town.ID)
	if err != nil {
		return nil, err
	}

	if op == domain.OperationRemove {
		candidates := make([]backend.Resource, 0, len(held))
		for _, r := range held {
			if r.Quantity > 0 {
				candidates = append(candidates, r)
			}
		}
		if len(candidates) == 0 {
			return nil, common.Invalid(MsgEmptyStock)
		}
		return candidates, nil
	}

	types, err := s.catalog.ResourceTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list resource types: %w", err)
	}
	if len(types) == 0 {
		return nil, common.Invalid(MsgNoResourceType)
	}
	quantities := make(map[int]int, len(held))
	for _, r := range held {
		quantities[r.ResourceTypeID] = r.Quantity
	}
	candidates := make([]backend.Resource, 0, len(types))
	for _, rt := range types {
		candidates = append(candidates, backend.Resource{
			ResourceTypeID: rt.ID,
			Quantity:       quantities[rt.ID],
			ResourceType:   rt,
		})
	}
	return candidates, nil
}

// ResourceType returns a resource type, or a ValidationError when unknown.
func (s *StockService) ResourceType(ctx context.Context, id int) (backend.ResourceType, error) {
	rt, ok, err := s.catalog.ResourceType(ctx, id)
	if err != nil {
		return backend.ResourceType{}, fmt.Errorf("failed to get resource type: %w", err)
	}
	if !ok {
		return backend.ResourceType{}, common.Invalid(common.MsgUnknownResource)
	}
	return rt, nil
}

// AdjustInput holds an admin stock change.
type AdjustInput struct {
	GuildID        string
	Operation      domain.Operation
	ResourceTypeID int
	Quantity       string
}

// AdjustOutput is the stock after a change.
type AdjustOutput struct {
	ResourceType backend.ResourceType
	Quantity     int
	Remaining    int
}

// Adjust adds to or removes from the town stock.
func (s *StockService) Adjust(ctx context.Context, in AdjustInput) (*AdjustOutput, error) {
	qty, err := common.ParsePositiveInt(in.Quantity)
	if err != nil {
		return nil, err
	}
	rt, err := s.ResourceType(ctx, in.ResourceTypeID)
	if err != nil {
		return nil, err
	}
	town, err := s.Town(ctx, in.GuildID)
	if err != nil {
		return nil, err
	}
	resources, err := s.Resources(ctx, town.ID)
	if err != nil {
		return nil, err
	}

	held := 0
	for _, r := range resources {
		if r.ResourceTypeID == rt.ID {
			held = r.Quantity
			break
		}
	}

	remaining, err := in.Operation.Apply(held, qty)
	if errors.Is(err, domain.ErrInsufficientStock) {
		return nil, common.Invalid(MsgInsufficientStock(held, rt.Name))
	}
	if in.Operation == domain.OperationRemove {
		err = s.api.RemoveResource(ctx, backend.LocationCity, town.ID, rt.ID, qty)
	} else {
		err = s.api.AddResource(ctx, backend.LocationCity, town.ID, rt.ID, qty)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to %s resource: %w", in.Operation, err)
	}

	slog.Info("adjusted town stock",
		"town_id", town.ID,
		"operation", in.Operation,
		"resource_type_id", rt.ID,
		"quantity", qty,
		"remaining", remaining,
	)
	return &AdjustOutput{ResourceType: rt, Quantity: qty, Remaining: remaining}, nil
}
