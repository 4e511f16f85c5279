// Package assets holds the sprite table. Sprites are declared in YAML sprite
// sheets and register themselves when the package is initialized, so the
// simulation and frontends can look them up by id without knowing where
// they came from.
package assets

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrAssetMissing is returned when a sprite id has not been registered.
var ErrAssetMissing = errors.New("asset missing")

// Info contains metadata about a registered sprite.
type Info struct {
	ID     string
	Width  int
	Height int
	Scale  int
}

var (
	sprites = make(map[string]*Sprite)
	mu      sync.RWMutex
)

// Register adds a sprite to the table.
// Panics if a sprite with the same id is already registered.
func Register(s *Sprite) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := sprites[s.ID]; exists {
		panic(fmt.Sprintf("assets: sprite %q already registered", s.ID))
	}
	sprites[s.ID] = s
}

// Replace registers a sprite, overwriting any existing sprite with the same id.
// Used for user-supplied sprite sheets.
func Replace(s *Sprite) {
	mu.Lock()
	defer mu.Unlock()
	sprites[s.ID] = s
}

// Get returns the sprite with the given id.
// The error wraps ErrAssetMissing if the id is unknown.
func Get(id string) (*Sprite, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := sprites[id]
	if !ok {
		return nil, fmt.Errorf("assets: sprite %q: %w", id, ErrAssetMissing)
	}
	return s, nil
}

// Resolve looks up every id at once and reports all missing ones together.
func Resolve(ids ...string) (map[string]*Sprite, error) {
	out := make(map[string]*Sprite, len(ids))
	var errs []error
	for _, id := range ids {
		s, err := Get(id)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out[id] = s
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

// List returns information about all registered sprites, sorted by id.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(sprites))
	for id, s := range sprites {
		result = append(result, Info{
			ID:     id,
			Width:  s.Width(),
			Height: s.Height(),
			Scale:  s.Scale,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Exists checks if a sprite with the given id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := sprites[id]
	return ok
}
