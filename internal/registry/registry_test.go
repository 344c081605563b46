package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/gamecenter/internal/config"
	"github.com/vovakirdan/gamecenter/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) HandleInput(core.InputFrame) {}
func (g *stubGame) Update(time.Duration) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func withCleanRegistry(t *testing.T) {
	t.Helper()
	mu.Lock()
	saved := entries
	entries = make(map[string]Entry)
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		entries = saved
		mu.Unlock()
	})
}

func TestListOrdersBySlot(t *testing.T) {
	withCleanRegistry(t)

	Register("b", "B", 2, func(*config.Settings) Game { return &stubGame{id: "b"} })
	RegisterExternal("ext", "External", 1)
	Register("a", "A", 0, func(*config.Settings) Game { return &stubGame{id: "a"} })

	list := List()
	want := []string{"a", "ext", "b"}
	if len(list) != len(want) {
		t.Fatalf("List() returned %d entries, expected %d", len(list), len(want))
	}
	for i, id := range want {
		if list[i].ID != id {
			t.Errorf("List()[%d] = %q, expected %q", i, list[i].ID, id)
		}
	}
}

func TestCreate(t *testing.T) {
	withCleanRegistry(t)

	Register("a", "A", 0, func(*config.Settings) Game { return &stubGame{id: "a"} })
	RegisterExternal("ext", "External", 1)

	g, err := Create("a", nil)
	if err != nil {
		t.Fatalf("Create(a) error: %v", err)
	}
	if g.ID() != "a" {
		t.Errorf("ID() = %q, expected a", g.ID())
	}

	if _, err := Create("ext", nil); err == nil {
		t.Error("Create(ext) should fail for an external game")
	}
	if _, err := Create("missing", nil); err == nil {
		t.Error("Create(missing) should fail")
	}
	if !Exists("ext") || Exists("missing") {
		t.Error("Exists() mismatch")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	withCleanRegistry(t)
	RegisterExternal("x", "X", 0)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	RegisterExternal("x", "X", 1)
}
