package game

import (
	"testing"

	"github.com/pthm-cable/petri/components"
	"github.com/pthm-cable/petri/systems"
)

func newPopCell(energy float32) *components.Cell {
	return &components.Cell{
		Schedule:      components.DefaultSchedule(),
		Energy:        energy,
		MetabolicRate: 1.2,
		Footprint:     5,
	}
}

func TestPopulation_AddFlushIterate(t *testing.T) {
	p := NewPopulation()

	a := newPopCell(100)
	b := newPopCell(200)
	p.Add(a)
	p.Add(b)

	if p.Len() != 2 {
		t.Fatalf("len = %d, want 2", p.Len())
	}
	if !p.Contains(a.ID) || !p.Contains(b.ID) {
		t.Error("queued cells should already count as present")
	}

	// Not stored until flush: iteration sees nothing yet.
	seen := 0
	p.ForEach(func(*components.Cell) { seen++ })
	if seen != 0 {
		t.Errorf("iterated %d cells before flush, want 0", seen)
	}

	p.Flush()
	seen = 0
	p.ForEach(func(*components.Cell) { seen++ })
	if seen != 2 {
		t.Errorf("iterated %d cells after flush, want 2", seen)
	}
}

func TestPopulation_AssignsUniqueIDs(t *testing.T) {
	p := NewPopulation()

	ids := make(map[uint32]bool)
	for i := 0; i < 50; i++ {
		c := newPopCell(100)
		p.Add(c)
		if c.ID == 0 {
			t.Fatal("cell left without ID")
		}
		if ids[c.ID] {
			t.Fatalf("duplicate ID %d", c.ID)
		}
		ids[c.ID] = true
	}
}

func TestPopulation_RemoveIsDeferredAndIdempotent(t *testing.T) {
	p := NewPopulation()
	a := newPopCell(100)
	p.Add(a)
	p.Flush()

	p.Remove(a)
	p.Remove(a) // second removal must not corrupt the count

	if p.Len() != 0 {
		t.Errorf("len = %d, want 0", p.Len())
	}
	if p.Contains(a.ID) {
		t.Error("removed cell still reported present")
	}

	// Queued for removal: iteration already skips it.
	p.ForEach(func(c *components.Cell) {
		t.Errorf("iterated cell %d queued for removal", c.ID)
	})

	p.Flush()
	p.ForEach(func(c *components.Cell) {
		t.Errorf("iterated cell %d after flush", c.ID)
	})
}

func TestPopulation_RemoveUnknownIsNoOp(t *testing.T) {
	p := NewPopulation()
	a := newPopCell(100)
	p.Add(a)
	p.Flush()

	stranger := newPopCell(50)
	stranger.ID = 9999
	p.Remove(stranger)

	if p.Len() != 1 {
		t.Errorf("len = %d, want 1", p.Len())
	}
	p.Flush()
	if p.Len() != 1 {
		t.Errorf("len after flush = %d, want 1", p.Len())
	}
}

// A cell metabolized to exactly zero is gone immediately: absent from the
// registry the same tick, never iterated again, and a repeat removal after the
// flush leaves the count intact.
func TestPopulation_StarvedCellReceivesNoFurtherTicks(t *testing.T) {
	p := NewPopulation()
	c := newPopCell(1.2)
	p.Add(c)
	p.Flush()

	ticked := false
	p.ForEach(func(c *components.Cell) {
		ticked = true
		_, died := systems.Metabolize(c, p)
		if !died {
			t.Fatal("expected death at zero energy")
		}
	})
	if !ticked {
		t.Fatal("cell never iterated")
	}
	if p.Contains(c.ID) {
		t.Error("starved cell still reported present before flush")
	}
	if p.Len() != 0 {
		t.Errorf("len = %d, want 0", p.Len())
	}

	p.Flush()
	p.ForEach(func(c *components.Cell) {
		t.Errorf("starved cell %d iterated after flush", c.ID)
	})

	p.Remove(c)
	if p.Len() != 0 {
		t.Errorf("len after repeated remove = %d, want 0", p.Len())
	}
}

// Structural mutation while iterating: births queued mid-iteration are not
// visited this pass, removals queued mid-iteration take effect at flush.
func TestPopulation_MutationDuringIteration(t *testing.T) {
	p := NewPopulation()
	for i := 0; i < 4; i++ {
		p.Add(newPopCell(float32(100 + i)))
	}
	p.Flush()

	visited := 0
	p.ForEach(func(c *components.Cell) {
		visited++
		// Every visited cell spawns a child and dies.
		p.Add(newPopCell(c.Energy / 2))
		p.Remove(c)
	})

	if visited != 4 {
		t.Fatalf("visited %d cells, want 4 (children must not be iterated mid-pass)", visited)
	}
	if p.Len() != 4 {
		t.Fatalf("len = %d, want 4 (4 born, 4 dying)", p.Len())
	}

	p.Flush()
	survivors := 0
	p.ForEach(func(*components.Cell) { survivors++ })
	if survivors != 4 {
		t.Errorf("survivors = %d, want 4", survivors)
	}
}
