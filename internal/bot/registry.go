package bot

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Registry holds registered modules.
// It is constructed by the caller and handed to NewBot; there is no
// package-level instance.
type Registry struct {
	mu      sync.RWMutex
	modules []Module
}

// NewRegistry creates a new module registry with the given modules.
func NewRegistry(modules ...Module) *Registry {
	r := &Registry{
		modules: make([]Module, 0, len(modules)),
	}
	for _, m := range modules {
		r.Register(m)
	}
	return r
}

// Register adds a module to the registry.
func (r *Registry) Register(m Module) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules = append(r.modules, m)
}

// Modules returns a snapshot of all registered modules.
func (r *Registry) Modules() []Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make([]Module, len(r.modules))
	copy(result, r.modules)
	return result
}

// Commands gathers the slash commands of every registered module.
func (r *Registry) Commands() []*discordgo.ApplicationCommand {
	var commands []*discordgo.ApplicationCommand
	for _, mod := range r.Modules() {
		commands = append(commands, mod.Commands()...)
	}
	return commands
}

// LoadConfigs calls LoadConfig on every module implementing ConfigurableModule.
func (r *Registry) LoadConfigs() error {
	for _, mod := range r.Modules() {
		cm, ok := mod.(ConfigurableModule)
		if !ok {
			continue
		}
		if err := cm.LoadConfig(); err != nil {
			return fmt.Errorf("failed to load %s module config: %w", mod.Name(), err)
		}
	}
	return nil
}
