package projects

import (
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/draft"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/projects/application"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/projects/domain"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/projects/presentation"
	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"
)

var _ bot.ConfigurableModule = (*ProjectsModule)(nil)

// API is the part of the game API the module calls.
type API interface {
	application.ProjectAPI
	common.PlayerDirectory
}

// ProjectsModule runs the craft projects of a town.
type ProjectsModule struct {
	api      API
	catalog  application.ResourceCatalog
	config   *Config
	handlers *presentation.Handlers
}

// New creates the projects module.
func New(api API, catalog application.ResourceCatalog) *ProjectsModule {
	return &ProjectsModule{api: api, catalog: catalog}
}

func (m *ProjectsModule) Name() string {
	return "projects"
}

func (m *ProjectsModule) Commands() []*discordgo.ApplicationCommand {
	return presentation.Commands()
}

func (m *ProjectsModule) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		presentation.CommandProjects:      m.handlers.HandleList,
		presentation.CommandProjectsAdmin: m.handlers.HandleAdmin,
	}
}

func (m *ProjectsModule) RegisterComponents(c *bot.Components) {
	m.handlers.Register(c)
}

func (m *ProjectsModule) EventHandlers() []bot.EventHandler {
	return nil
}

// LoadConfig loads PROJECT_* variables.
func (m *ProjectsModule) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

func (m *ProjectsModule) Init(deps bot.ModuleDependencies) error {
	if m.config == nil {
		if err := m.LoadConfig(); err != nil {
			return err
		}
	}

	drafts := draft.NewStore[*domain.ProjectDraft]("project", m.config.DraftTTL)
	m.handlers = presentation.NewHandlers(
		application.NewProjectService(m.api),
		application.NewCreationService(drafts, m.api, m.catalog),
		m.catalog,
		m.api,
	)
	return nil
}

func (m *ProjectsModule) Shutdown() error {
	return nil
}
