package domain

import (
	"errors"
	"fmt"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
)

var (
	// ErrUnknownOperation is returned for a stock operation other than add or remove.
	ErrUnknownOperation = errors.New("unknown stock operation")

	// ErrInsufficientStock is returned when removing more than is held.
	ErrInsufficientStock = errors.New("quantity exceeds stock")
)

// Operation is an admin change to the town stock.
type Operation string

const (
	OperationAdd    Operation = "add"
	OperationRemove Operation = "remove"
)

// ParseOperation validates an operation carried in a customId.
func ParseOperation(s string) (Operation, error) {
	switch op := Operation(s); op {
	case OperationAdd, OperationRemove:
		return op, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
	}
}

// Verb returns the past participle shown after the operation.
func (op Operation) Verb() string {
	if op == OperationRemove {
		return "retiré(s)"
	}
	return "ajouté(s)"
}

// Apply returns the stock left after applying op with qty to held.
func (op Operation) Apply(held, qty int) (int, error) {
	if op == OperationRemove {
		if qty > held {
			return held, ErrInsufficientStock
		}
		return held - qty, nil
	}
	return held + qty, nil
}

// FoodStockColor grades a food stock from green to red.
func FoodStockColor(stock int) int {
	switch {
	case stock > 100:
		return 0x00ff00
	case stock > 50:
		return 0xffff00
	case stock > 20:
		return 0xffa500
	default:
		return 0xff0000
	}
}

// FoodStockAdvice comments a food stock.
func FoodStockAdvice(stock int) string {
	switch {
	case stock <= 0:
		return "🚨 Aucun vivre ! La ville va mourir de faim !"
	case stock <= 20:
		return "⚠️ Vivres très faibles, mangez avec parcimonie !"
	case stock <= 50:
		return "⚡ Vivres modérées, surveillez la consommation"
	case stock <= 100:
		return "✅ Vivres correctes, vous pouvez manger normalement"
	default:
		return "🌟 Vivres élevées, profitez-en pour faire des réserves !"
	}
}

// Seasons lists the seasons an admin can pick.
var Seasons = []string{backend.SeasonSummer, backend.SeasonWinter}

// SeasonLabel renders a season name with its emoji.
func SeasonLabel(season string) string {
	switch season {
	case backend.SeasonSummer, "summer":
		return "☀️ Été"
	case backend.SeasonWinter, "winter":
		return "❄️ Hiver"
	default:
		return season
	}
}
