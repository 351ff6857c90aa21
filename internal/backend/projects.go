package backend

import "context"

// GetProjectsByTown lists the projects of a town.
func (c *Client) GetProjectsByTown(ctx context.Context, townID string) ([]Project, error) {
	var projects []Project
	if err := c.get(ctx, "/projects/town/"+townID, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, in CreateProjectInput) (*Project, error) {
	var project Project
	if err := c.post(ctx, "/projects", in, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject deletes a project.
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	return c.delete(ctx, "/projects/"+projectID, nil)
}

// ContributeToProject gives action points and resources of a character to a project.
func (c *Client) ContributeToProject(
	ctx context.Context,
	characterID, projectID string,
	in ContributeProjectInput,
) (*Project, error) {
	var project Project
	path := "/projects/characters/" + characterID + "/projects/" + projectID + "/contribute"
	if err := c.post(ctx, path, in, &project); err != nil {
		return nil, err
	}
	return &project, nil
}
