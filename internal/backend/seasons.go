package backend

import "context"

// GetCurrentSeason returns the current season.
func (c *Client) GetCurrentSeason(ctx context.Context) (*Season, error) {
	var season Season
	if err := c.get(ctx, "/seasons/current", &season); err != nil {
		return nil, err
	}
	return &season, nil
}

type setSeasonInput struct {
	Season  string `json:"season"`
	AdminID string `json:"adminId"`
}

// SetSeason changes the current season. adminID is the Discord id of the requester.
func (c *Client) SetSeason(ctx context.Context, season, adminID string) error {
	return c.post(ctx, "/seasons/set", setSeasonInput{Season: season, AdminID: adminID}, nil)
}
