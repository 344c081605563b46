// Package registry provides a global registry of launchable games.
// Games register themselves in init() functions, allowing the launcher to
// discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/gamecenter/internal/config"
	"github.com/vovakirdan/gamecenter/internal/core"
)

// Game is the capability set every in-process game implements. The shell
// drives it once per tick: HandleInput, then Update (skipped while
// paused), then Render.
type Game interface {
	// ID returns a unique identifier used by the CLI and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset puts the game into its initial state for a logical screen of
	// cfg.ScreenW x cfg.ScreenH. It is the only way to (re)initialize a game.
	Reset(cfg core.RuntimeConfig)

	// HandleInput consumes one tick's input and updates intent.
	HandleInput(in core.InputFrame)

	// Update advances the simulation by dt of game time.
	Update(dt time.Duration) core.StepResult

	// Render draws the current state into dst. It must not mutate state.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Factory creates a new game instance configured from settings.
type Factory func(s *config.Settings) Game

// Entry describes a registered game.
type Entry struct {
	ID       string
	Title    string
	Slot     int  // Position in the launcher grid
	External bool // Runs as a separate process; Factory is nil
	factory  Factory
}

var (
	entries = make(map[string]Entry)
	mu      sync.RWMutex
)

// Register adds an in-process game. Panics on a duplicate ID.
func Register(id, title string, slot int, f Factory) {
	add(Entry{ID: id, Title: title, Slot: slot, factory: f})
}

// RegisterExternal adds a game that runs as an external process.
func RegisterExternal(id, title string, slot int) {
	add(Entry{ID: id, Title: title, Slot: slot, External: true})
}

func add(e Entry) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[e.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", e.ID))
	}
	entries[e.ID] = e
}

// List returns all registered games in launcher order (slot, then ID).
func List() []Entry {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Entry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Slot != result[j].Slot {
			return result[i].Slot < result[j].Slot
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the entry for id.
func Lookup(id string) (Entry, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e, ok
}

// Create instantiates an in-process game by its ID.
func Create(id string, s *config.Settings) (Game, error) {
	e, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	if e.External {
		return nil, fmt.Errorf("registry: game %q runs as an external process", id)
	}
	if s == nil {
		s = config.Default()
	}
	return e.factory(s), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
