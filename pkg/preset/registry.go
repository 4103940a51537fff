package preset

import (
	"fmt"
	"slices"
	"sync"

	"github.com/aretw0/sprout/pkg/domain"
)

// Registry manages the available presets.
type Registry struct {
	mu      sync.RWMutex
	presets map[string]Preset
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		presets: make(map[string]Preset),
	}
}

// Register adds a preset to the registry.
// If a preset with the same name exists, it is overwritten.
func (r *Registry) Register(p Preset) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.presets[p.Name] = p
	return nil
}

// Get looks up a preset by name.
// Returns domain.ErrPresetNotFound if it is not registered.
func (r *Registry) Get(name string) (Preset, error) {
	r.mu.RLock()
	p, ok := r.presets[name]
	r.mu.RUnlock()

	if !ok {
		return Preset{}, fmt.Errorf("%w: %s", domain.ErrPresetNotFound, name)
	}
	return p, nil
}

// Names returns the registered preset names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Default returns a registry holding the built-in presets.
func Default() *Registry {
	r := NewRegistry()
	for _, p := range Builtins() {
		if err := r.Register(p); err != nil {
			panic(err) // built-ins are static
		}
	}
	return r
}
