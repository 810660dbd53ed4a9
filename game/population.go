package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/petri/components"
)

// Population stores live cells in an ECS world and implements
// systems.PopulationRegistry. Births and deaths are queued and applied by
// Flush at end of tick, so the population can be mutated freely while an
// iteration over it is in progress.
type Population struct {
	world  *ecs.World
	mapper *ecs.Map1[components.Cell]
	filter *ecs.Filter1[components.Cell]

	byID   map[uint32]ecs.Entity
	nextID uint32

	births  []*components.Cell
	deaths  []uint32
	pending map[uint32]bool // IDs queued for removal this tick

	size int
}

// NewPopulation creates an empty population.
func NewPopulation() *Population {
	p := &Population{
		byID:    make(map[uint32]ecs.Entity),
		nextID:  1,
		pending: make(map[uint32]bool),
	}
	p.world = ecs.NewWorld()
	p.mapper = ecs.NewMap1[components.Cell](p.world)
	p.filter = ecs.NewFilter1[components.Cell](p.world)
	return p
}

// Add queues a cell for insertion at the next Flush. The cell is assigned an
// ID if it does not carry one yet. Safe to call during iteration.
func (p *Population) Add(c *components.Cell) {
	if c.ID == 0 {
		c.ID = p.nextID
		p.nextID++
	}
	p.births = append(p.births, c)
	p.size++
}

// Remove queues a cell for removal at the next Flush. Removing a cell that is
// unknown or already queued is a no-op. Safe to call during iteration.
func (p *Population) Remove(c *components.Cell) {
	if p.pending[c.ID] {
		return
	}
	if _, ok := p.byID[c.ID]; !ok {
		return
	}
	p.pending[c.ID] = true
	p.deaths = append(p.deaths, c.ID)
	p.size--
}

// Contains reports whether the cell with the given ID will receive future
// ticks. A cell queued for removal is already reported absent.
func (p *Population) Contains(id uint32) bool {
	if p.pending[id] {
		return false
	}
	if _, ok := p.byID[id]; ok {
		return true
	}
	for _, c := range p.births {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Len returns the number of live cells, counting queued births and excluding
// queued removals.
func (p *Population) Len() int {
	return p.size
}

// ForEach calls fn for every stored cell, skipping cells queued for removal.
// fn receives a pointer into storage and may mutate the cell in place; it may
// call Add and Remove but must not call Flush.
func (p *Population) ForEach(fn func(*components.Cell)) {
	query := p.filter.Query()
	for query.Next() {
		c := query.Get()
		if p.pending[c.ID] {
			continue
		}
		fn(c)
	}
}

// Flush applies queued deaths and births. Must be called between ticks, never
// during ForEach.
func (p *Population) Flush() {
	for _, id := range p.deaths {
		entity := p.byID[id]
		p.world.RemoveEntity(entity)
		delete(p.byID, id)
	}
	p.deaths = p.deaths[:0]
	clear(p.pending)

	for _, c := range p.births {
		entity := p.mapper.NewEntity(c)
		p.byID[c.ID] = entity
	}
	p.births = p.births[:0]
}
