package common

import (
	"testing"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
)

func TestClampContribution(t *testing.T) {
	costs := []backend.ResourceCost{
		{ResourceTypeID: 1, QuantityRequired: 10, QuantityContributed: 8},
		{ResourceTypeID: 2, QuantityRequired: 5},
	}

	c, err := ClampContribution("7", 4, map[int]string{1: "5", 2: "3", 9: "100"}, costs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Points != 4 {
		t.Errorf("expected 4 points, got %d", c.Points)
	}
	if len(c.Resources) != 2 || c.Resources[0].Quantity != 2 || c.Resources[1].Quantity != 3 {
		t.Errorf("unexpected resources %+v", c.Resources)
	}
	if !c.Clamped {
		t.Error("expected Clamped to be true")
	}
}

func TestClampContribution_EmptyAndInvalid(t *testing.T) {
	c, err := ClampContribution("", 10, map[int]string{1: "0"}, []backend.ResourceCost{{ResourceTypeID: 1, QuantityRequired: 3}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Empty() {
		t.Errorf("expected empty contribution, got %+v", c)
	}

	if _, err := ClampContribution("x", 10, nil, nil); err == nil {
		t.Error("expected error for invalid points")
	}
	if _, err := ClampContribution("", 10, map[int]string{1: "-2"}, []backend.ResourceCost{{ResourceTypeID: 1}}); err == nil {
		t.Error("expected error for negative quantity")
	}
}
