package backend

import "context"

// GetChantiersByGuild lists the chantiers of a Discord guild.
func (c *Client) GetChantiersByGuild(ctx context.Context, guildID string) ([]Chantier, error) {
	var chantiers []Chantier
	if err := c.get(ctx, "/chantiers/guild/"+guildID, &chantiers); err != nil {
		return nil, err
	}
	return chantiers, nil
}

// GetChantier fetches a chantier by id.
func (c *Client) GetChantier(ctx context.Context, chantierID string) (*Chantier, error) {
	var chantier Chantier
	if err := c.get(ctx, "/chantiers/"+chantierID, &chantier); err != nil {
		return nil, err
	}
	return &chantier, nil
}

// CreateChantier creates a chantier.
func (c *Client) CreateChantier(ctx context.Context, in CreateChantierInput) (*Chantier, error) {
	var chantier Chantier
	if err := c.post(ctx, "/chantiers", in, &chantier); err != nil {
		return nil, err
	}
	return &chantier, nil
}

// DeleteChantier deletes a chantier.
func (c *Client) DeleteChantier(ctx context.Context, chantierID string) error {
	return c.delete(ctx, "/chantiers/"+chantierID, nil)
}

type investInput struct {
	CharacterID string `json:"characterId"`
	Points      int    `json:"points"`
}

// InvestInChantier spends action points of a character on a chantier.
func (c *Client) InvestInChantier(ctx context.Context, chantierID, characterID string, points int) (*InvestResult, error) {
	var res InvestResult
	in := investInput{CharacterID: characterID, Points: points}
	if err := c.post(ctx, "/chantiers/"+chantierID+"/invest", in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

type contributeResourcesInput struct {
	CharacterID   string                 `json:"characterId"`
	Contributions []ResourceContribution `json:"contributions"`
}

// ContributeResourcesToChantier gives town resources to a chantier on behalf of a character.
func (c *Client) ContributeResourcesToChantier(
	ctx context.Context,
	chantierID, characterID string,
	contributions []ResourceContribution,
) (*Chantier, error) {
	var chantier Chantier
	in := contributeResourcesInput{CharacterID: characterID, Contributions: contributions}
	if err := c.post(ctx, "/chantiers/"+chantierID+"/contribute-resources", in, &chantier); err != nil {
		return nil, err
	}
	return &chantier, nil
}
