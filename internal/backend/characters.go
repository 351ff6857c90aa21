package backend

import (
	"context"
	"errors"
)

// ErrNoActiveCharacter is returned when a user has no living active character in a town.
var ErrNoActiveCharacter = errors.New("no active character")

// GetTownCharacters lists the characters of a town.
func (c *Client) GetTownCharacters(ctx context.Context, townID string) ([]Character, error) {
	var characters []Character
	if err := c.get(ctx, "/characters/town/"+townID, &characters); err != nil {
		return nil, err
	}
	return characters, nil
}

// GetActiveCharacter returns the active character of a user in a town.
// userID is the backend user id, not the Discord id.
func (c *Client) GetActiveCharacter(ctx context.Context, userID, townID string) (*Character, error) {
	characters, err := c.GetTownCharacters(ctx, townID)
	if err != nil {
		return nil, err
	}
	for idx := range characters {
		ch := &characters[idx]
		if ch.UserID == userID && ch.IsActive {
			return ch, nil
		}
	}
	return nil, ErrNoActiveCharacter
}

type needsCreationResult struct {
	NeedsCreation bool `json:"needsCreation"`
}

// NeedsCharacterCreation reports whether the user must create a character before playing.
func (c *Client) NeedsCharacterCreation(ctx context.Context, userID, townID string) (bool, error) {
	var res needsCreationResult
	if err := c.get(ctx, "/characters/needs-creation/"+userID+"/"+townID, &res); err != nil {
		return false, err
	}
	return res.NeedsCreation, nil
}

// CreateCharacter creates a character.
func (c *Client) CreateCharacter(ctx context.Context, in CreateCharacterInput) (*Character, error) {
	var ch Character
	if err := c.post(ctx, "/characters", in, &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

// EatFood makes a character eat from the town food stock.
func (c *Client) EatFood(ctx context.Context, characterID string) (*EatResult, error) {
	var res EatResult
	if err := c.post(ctx, "/characters/"+characterID+"/eat", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetActionPoints fetches the action points of a character.
func (c *Client) GetActionPoints(ctx context.Context, characterID string) (*ActionPoints, error) {
	var ap ActionPoints
	if err := c.get(ctx, "/action-points/"+characterID, &ap); err != nil {
		return nil, err
	}
	return &ap, nil
}

// GetCharacterCapabilities lists the capabilities a character knows.
func (c *Client) GetCharacterCapabilities(ctx context.Context, characterID string) ([]Capability, error) {
	var rows []characterCapability
	if err := c.get(ctx, "/characters/"+characterID+"/capabilities", &rows); err != nil {
		return nil, err
	}

	capabilities := make([]Capability, 0, len(rows))
	for _, row := range rows {
		capability := row.Capability
		if capability.ID == "" {
			capability.ID = row.CapabilityID
		}
		capabilities = append(capabilities, capability)
	}
	return capabilities, nil
}

type useCapabilityInput struct {
	CapabilityID string `json:"capabilityId"`
	IsSummer     bool   `json:"isSummer"`
}

// UseCapability performs a capability for a character.
func (c *Client) UseCapability(ctx context.Context, characterID, capabilityID string, isSummer bool) (*CapabilityResult, error) {
	var res CapabilityResult
	in := useCapabilityInput{CapabilityID: capabilityID, IsSummer: isSummer}
	if err := c.post(ctx, "/characters/"+characterID+"/capabilities/use", in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
