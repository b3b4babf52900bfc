// Package registry provides a global registry of puzzle factories.
// Variants register themselves in init() functions, allowing the platform
// to discover and instantiate puzzles without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-twisty/internal/puzzle"
)

// PuzzleInfo contains metadata about a registered puzzle.
type PuzzleInfo struct {
	ID    string
	Title string
}

// Factory creates a new solved puzzle bound to scene.
type Factory func(scene puzzle.Scene, opts puzzle.Options) puzzle.Puzzle

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a puzzle factory to the registry.
// Typically called from a variant's init() function.
// Panics if a puzzle with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: puzzle %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered puzzles, sorted by ID.
func List() []PuzzleInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PuzzleInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PuzzleInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new puzzle by its ID.
// Returns an error if the puzzle ID is not registered.
func Create(id string, scene puzzle.Scene, opts puzzle.Options) (puzzle.Puzzle, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown puzzle %q", id)
	}

	return f(scene, opts), nil
}

// Exists checks if a puzzle with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
