package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
)

// User-facing messages of project participation.
const (
	MsgNoProjects         = "Aucun projet n'a encore été créé."
	MsgNoActiveProject    = "Aucun projet n'est en cours."
	MsgProjectNotFound    = "Projet introuvable."
	MsgProjectCompleted   = "Ce projet est déjà terminé."
	MsgNothingContributed = "Vous devez contribuer des PA ou au moins une ressource."
)

// ProjectService lists, deletes and funds the projects of a town.
type ProjectService struct {
	api ProjectAPI
}

// NewProjectService creates a new ProjectService.
func NewProjectService(api ProjectAPI) *ProjectService {
	return &ProjectService{api: api}
}

// List returns the projects of the town attached to a guild.
func (s *ProjectService) List(ctx context.Context, guildID string) ([]backend.Project, error) {
	town, err := s.api.GetTownByGuild(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get town: %w", err)
	}
	projects, err := s.api.GetProjectsByTown(ctx, town.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Active returns the projects still accepting contributions.
func (s *ProjectService) Active(ctx context.Context, guildID string) ([]backend.Project, error) {
	projects, err := s.List(ctx, guildID)
	if err != nil {
		return nil, err
	}

	active := make([]backend.Project, 0, len(projects))
	for _, p := range projects {
		if p.Status != backend.ProjectCompleted {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return nil, common.Invalid(MsgNoActiveProject)
	}
	return active, nil
}

// Get returns an active project of the guild's town.
func (s *ProjectService) Get(ctx context.Context, guildID, projectID string) (*backend.Project, error) {
	projects, err := s.List(ctx, guildID)
	if err != nil {
		return nil, err
	}
	for idx := range projects {
		if projects[idx].ID != projectID {
			continue
		}
		if projects[idx].Status == backend.ProjectCompleted {
			return nil, common.Invalid(MsgProjectCompleted)
		}
		return &projects[idx], nil
	}
	return nil, common.Invalid(MsgProjectNotFound)
}

// Delete removes a project.
func (s *ProjectService) Delete(ctx context.Context, projectID string) error {
	if err := s.api.DeleteProject(ctx, projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	slog.Info("deleted project", "project_id", projectID)
	return nil
}

// ContributeInput holds the raw fields of the contribution modal.
type ContributeInput struct {
	GuildID     string
	ProjectID   string
	CharacterID string
	Points      string
	// Resources maps resource type ids to typed quantities.
	Resources map[int]string
}

// ContributeOutput describes what was actually given.
type ContributeOutput struct {
	Project       *backend.Project
	Points        int
	Contributions []backend.ResourceContribution
	Clamped       bool
	Completed     bool
}

// Contribute gives action points and resources to a project in one call.
// Amounts above what the project still needs are reduced to the remainder.
func (s *ProjectService) Contribute(ctx context.Context, in ContributeInput) (*ContributeOutput, error) {
	project, err := s.Get(ctx, in.GuildID, in.ProjectID)
	if err != nil {
		return nil, err
	}

	contribution, err := common.ClampContribution(in.Points, project.RemainingPA(), in.Resources, project.ResourceCosts)
	if err != nil {
		return nil, err
	}
	if contribution.Empty() {
		return nil, common.Invalid(MsgNothingContributed)
	}

	resources := contribution.Resources
	if resources == nil {
		resources = []backend.ResourceContribution{}
	}
	updated, err := s.api.ContributeToProject(ctx, in.CharacterID, project.ID, backend.ContributeProjectInput{
		PAAmount:              contribution.Points,
		ResourceContributions: resources,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to contribute to project: %w", err)
	}

	out := &ContributeOutput{
		Project:       updated,
		Points:        contribution.Points,
		Contributions: contribution.Resources,
		Clamped:       contribution.Clamped,
		Completed:     updated.Status == backend.ProjectCompleted,
	}
	slog.Info("contributed to project",
		"project_id", project.ID,
		"character_id", in.CharacterID,
		"points", out.Points,
		"resources", len(out.Contributions),
		"completed", out.Completed,
	)
	return out, nil
}
