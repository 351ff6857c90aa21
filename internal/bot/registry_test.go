package bot

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// stubModule is a test double for Module
type stubModule struct {
	name          string
	commands      []*discordgo.ApplicationCommand
	handlers      map[string]InteractionHandler
	buttons       map[string]InteractionHandler
	eventHandlers []EventHandler
	initErr       error
	shutErr       error
}

func (m *stubModule) Name() string                                   { return m.name }
func (m *stubModule) Commands() []*discordgo.ApplicationCommand      { return m.commands }
func (m *stubModule) CommandHandlers() map[string]InteractionHandler { return m.handlers }
func (m *stubModule) EventHandlers() []EventHandler                  { return m.eventHandlers }
func (m *stubModule) Init(deps ModuleDependencies) error             { return m.initErr }
func (m *stubModule) Shutdown() error                                { return m.shutErr }

func (m *stubModule) RegisterComponents(c *Components) {
	for id, h := range m.buttons {
		c.Buttons.Register(id, h)
	}
}

// configurableStubModule records LoadConfig calls.
type configurableStubModule struct {
	stubModule
	loaded  bool
	loadErr error
}

func (m *configurableStubModule) LoadConfig() error {
	m.loaded = true
	return m.loadErr
}

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()

	mod := &stubModule{name: "test-module"}
	reg.Register(mod)

	modules := reg.Modules()
	if len(modules) != 1 {
		t.Fatalf("expected 1 module, got %d", len(modules))
	}

	if modules[0].Name() != "test-module" {
		t.Errorf("expected module name %q, got %q", "test-module", modules[0].Name())
	}
}

func TestNewRegistry_WithModules(t *testing.T) {
	reg := NewRegistry(&stubModule{name: "module-1"}, &stubModule{name: "module-2"})

	modules := reg.Modules()
	if len(modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(modules))
	}
	if modules[1].Name() != "module-2" {
		t.Errorf("expected module name %q, got %q", "module-2", modules[1].Name())
	}
}

func TestRegistry_ModulesReturnsSnapshot(t *testing.T) {
	reg := NewRegistry()

	mod1 := &stubModule{name: "module-1"}
	reg.Register(mod1)

	modules := reg.Modules()

	// Register another module after getting snapshot
	mod2 := &stubModule{name: "module-2"}
	reg.Register(mod2)

	// Original snapshot should not be affected
	if len(modules) != 1 {
		t.Errorf("expected snapshot to have 1 module, got %d", len(modules))
	}
}

func TestRegistry_Commands(t *testing.T) {
	reg := NewRegistry(
		&stubModule{name: "a", commands: []*discordgo.ApplicationCommand{{Name: "ping"}}},
		&stubModule{name: "b", commands: []*discordgo.ApplicationCommand{{Name: "stock"}, {Name: "foodstock"}}},
	)

	commands := reg.Commands()
	if len(commands) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(commands))
	}
	if commands[0].Name != "ping" {
		t.Errorf("expected command name %q, got %q", "ping", commands[0].Name)
	}
}

func TestRegistry_LoadConfigs(t *testing.T) {
	configurable := &configurableStubModule{stubModule: stubModule{name: "configurable"}}
	reg := NewRegistry(&stubModule{name: "plain"}, configurable)

	if err := reg.LoadConfigs(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !configurable.loaded {
		t.Error("expected LoadConfig to be called")
	}
}

func TestRegistry_LoadConfigs_ReturnsError(t *testing.T) {
	expectedErr := errors.New("bad config")
	reg := NewRegistry(&configurableStubModule{
		stubModule: stubModule{name: "broken"},
		loadErr:    expectedErr,
	})

	err := reg.LoadConfigs()
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}
