package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
)

// User-facing messages of meals.
const (
	MsgDeadCannotEat = "❌ Votre personnage est mort et ne peut plus manger."
	MsgNoFood        = "❌ La ville n'a plus de vivres disponibles."
	MsgNotEnoughFood = "❌ La ville n'a pas assez de vivres pour votre repas."
)

// EatOutput is the outcome of a meal. Result is nil when the character was
// not hungry.
type EatOutput struct {
	Result    *backend.EatResult
	NotHungry bool
}

// eatRefusals maps fragments of the API refusal to player messages.
var eatRefusals = []struct {
	fragment string
	message  string
}{
	{"mort", MsgDeadCannotEat},
	{"nécessaires", MsgNotEnoughFood},
	{"vivres", MsgNoFood},
}

// EatService feeds characters from the town food stock.
type EatService struct {
	api CharacterAPI
}

// NewEatService creates a new EatService.
func NewEatService(api CharacterAPI) *EatService {
	return &EatService{api: api}
}

// Eat makes the character eat one meal.
func (s *EatService) Eat(ctx context.Context, characterID string) (*EatOutput, error) {
	result, err := s.api.EatFood(ctx, characterID)
	if err == nil {
		slog.Info("character ate",
			"character_id", characterID,
			"food_consumed", result.FoodConsumed,
			"food_stock", result.Town.FoodStock,
		)
		return &EatOutput{Result: result}, nil
	}

	var apiErr *backend.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode >= 500 {
		return nil, fmt.Errorf("failed to eat: %w", err)
	}

	msg := strings.ToLower(apiErr.Message)
	if strings.Contains(msg, "pas faim") || strings.Contains(msg, "pas besoin de manger") {
		return &EatOutput{NotHungry: true}, nil
	}
	for _, r := range eatRefusals {
		if strings.Contains(msg, r.fragment) {
			return nil, common.Invalid(r.message)
		}
	}
	return nil, fmt.Errorf("failed to eat: %w", err)
}
