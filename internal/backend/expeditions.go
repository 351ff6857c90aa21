package backend

import "context"

// GetActiveExpeditionsForCharacter lists the expeditions a character currently belongs to.
func (c *Client) GetActiveExpeditionsForCharacter(ctx context.Context, characterID string) ([]Expedition, error) {
	var expeditions []Expedition
	if err := c.get(ctx, "/expeditions/character/"+characterID+"/active", &expeditions); err != nil {
		return nil, err
	}
	return expeditions, nil
}

// GetExpeditionsByTown lists the expeditions of a town.
func (c *Client) GetExpeditionsByTown(ctx context.Context, townID string) ([]Expedition, error) {
	var expeditions []Expedition
	if err := c.get(ctx, "/expeditions/town/"+townID, &expeditions); err != nil {
		return nil, err
	}
	return expeditions, nil
}

// GetExpedition fetches an expedition by id.
func (c *Client) GetExpedition(ctx context.Context, expeditionID string) (*Expedition, error) {
	var expedition Expedition
	if err := c.get(ctx, "/expeditions/"+expeditionID, &expedition); err != nil {
		return nil, err
	}
	return &expedition, nil
}

// CreateExpedition creates an expedition.
func (c *Client) CreateExpedition(ctx context.Context, in CreateExpeditionInput) (*Expedition, error) {
	var expedition Expedition
	if err := c.post(ctx, "/expeditions", in, &expedition); err != nil {
		return nil, err
	}
	return &expedition, nil
}

type characterRef struct {
	CharacterID string `json:"characterId"`
}

// JoinExpedition adds a character to an expedition.
func (c *Client) JoinExpedition(ctx context.Context, expeditionID, characterID string) (*Expedition, error) {
	var expedition Expedition
	if err := c.post(ctx, "/expeditions/"+expeditionID+"/join", characterRef{CharacterID: characterID}, &expedition); err != nil {
		return nil, err
	}
	return &expedition, nil
}

// LeaveExpedition removes a character from an expedition.
func (c *Client) LeaveExpedition(ctx context.Context, expeditionID, characterID string) error {
	return c.post(ctx, "/expeditions/"+expeditionID+"/leave", characterRef{CharacterID: characterID}, nil)
}
