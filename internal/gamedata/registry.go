package gamedata

import (
	"errors"
	"math/rand"
)

// InhabitantRegistry holds loaded creature definitions and provides
// spawning utilities.
type InhabitantRegistry struct {
	inhabitants []InhabitantDef
	totalWeight int
}

// NewInhabitantRegistry creates a registry from loaded creature definitions.
func NewInhabitantRegistry(inhabitants []InhabitantDef) *InhabitantRegistry {
	totalWeight := 0
	for _, inh := range inhabitants {
		totalWeight += inh.SpawnWeight
	}
	return &InhabitantRegistry{
		inhabitants: inhabitants,
		totalWeight: totalWeight,
	}
}

// LoadInhabitantRegistry loads and creates a registry from the embedded inhabitants.json.
func LoadInhabitantRegistry() (*InhabitantRegistry, error) {
	inhabitants, err := LoadInhabitants()
	if err != nil {
		return nil, err
	}
	if len(inhabitants) == 0 {
		return nil, errors.New("no inhabitants loaded from inhabitants.json")
	}
	return NewInhabitantRegistry(inhabitants), nil
}

// MustLoadInhabitantRegistry loads a registry, panicking on error.
func MustLoadInhabitantRegistry() *InhabitantRegistry {
	registry, err := LoadInhabitantRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a random creature definition using weighted probability.
// Creatures with higher spawnWeight are more likely to be selected.
func (r *InhabitantRegistry) SpawnRandom(rng *rand.Rand) *InhabitantDef {
	if r.totalWeight <= 0 || len(r.inhabitants) == 0 {
		return nil
	}

	// Pick a random value in the total weight range
	roll := rng.Intn(r.totalWeight)

	// Find which creature this roll corresponds to
	cumulative := 0
	for i := range r.inhabitants {
		cumulative += r.inhabitants[i].SpawnWeight
		if roll < cumulative {
			return &r.inhabitants[i]
		}
	}

	// Fallback (shouldn't happen)
	return &r.inhabitants[0]
}

// GetByID returns the creature definition with the given ID, or nil if not found.
func (r *InhabitantRegistry) GetByID(id string) *InhabitantDef {
	for i := range r.inhabitants {
		if r.inhabitants[i].ID == id {
			return &r.inhabitants[i]
		}
	}
	return nil
}

// All returns all creature definitions.
func (r *InhabitantRegistry) All() []InhabitantDef {
	return r.inhabitants
}

// Count returns the number of creature types in the registry.
func (r *InhabitantRegistry) Count() int {
	return len(r.inhabitants)
}

// =============================================================================
// ItemRegistry
// =============================================================================

// ItemRegistry holds loaded item definitions and provides lookup utilities.
type ItemRegistry struct {
	items map[string]*ItemDef
	all   []ItemDef
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(items []ItemDef) *ItemRegistry {
	registry := &ItemRegistry{
		items: make(map[string]*ItemDef),
		all:   items,
	}
	for i := range items {
		registry.items[items[i].ID] = &items[i]
	}
	return registry
}

// LoadItemRegistry loads and creates a registry from the embedded items.json.
func LoadItemRegistry() (*ItemRegistry, error) {
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}
	return NewItemRegistry(items), nil
}

// MustLoadItemRegistry loads a registry, panicking on error.
func MustLoadItemRegistry() *ItemRegistry {
	registry, err := LoadItemRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the item definition with the given ID, or nil if not found.
func (r *ItemRegistry) GetByID(id string) *ItemDef {
	return r.items[id]
}

// All returns all item definitions.
func (r *ItemRegistry) All() []ItemDef {
	return r.all
}

// Count returns the number of item types in the registry.
func (r *ItemRegistry) Count() int {
	return len(r.all)
}
