package main

import (
	"time"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/chantiers"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/characters"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/core"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/elements"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/expeditions"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/projects"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/town"
)

const catalogTTL = time.Minute

// newRegistry builds every module on a shared backend client.
func newRegistry(cfg *bot.Config) *bot.Registry {
	client := backend.NewClient(cfg.APIURL, cfg.APITimeout)
	catalog := backend.NewCatalog(client, catalogTTL)

	registry := bot.NewRegistry()
	registry.Register(core.New(client, registry))
	registry.Register(characters.New(client))
	registry.Register(town.New(client, catalog))
	registry.Register(chantiers.New(client, catalog))
	registry.Register(projects.New(client, catalog))
	registry.Register(expeditions.New(client))
	registry.Register(elements.New(client, catalog))
	return registry
}
