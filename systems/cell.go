// Package systems implements the per-tick simulation logic: the cell update
// cycle and the food field the cells graze.
package systems

import (
	"github.com/pthm-cable/petri/components"
)

// ResourceField supplies energy to cells. AbsorbFromArea depletes and
// returns the available energy in the half-open rectangle
// [minX,maxX) x [minY,maxY); the result is never negative.
type ResourceField interface {
	AbsorbFromArea(minX, maxX, minY, maxY int) float32
}

// PopulationRegistry tracks live cells. Implementations must tolerate Add
// and Remove being called while the population is iterated, and Remove must
// be safe to call for a cell already removed.
type PopulationRegistry interface {
	Add(c *components.Cell)
	Remove(c *components.Cell)
}

// Stationary bonus and discount shaping. Both collapse to neutral (x1)
// unless the schedule is almost entirely stationary.
const (
	absorbBonusScale    = 4
	metabolicDivisorMax = 50
)

// TickResult summarizes one cell update for the driver and telemetry.
type TickResult struct {
	Absorbed float32          // energy drawn from the field, after the bonus, before the cap
	Cost     float32          // energy charged in the metabolize step
	Child    *components.Cell // non-nil if the cell divided this tick
	Died     bool             // the cell hit zero energy and was removed
}

// UpdateCell runs one tick of the cell state machine: move, absorb, divide,
// metabolize, strictly in that order. It is not reentrant; the driver calls
// it once per cell per tick.
func UpdateCell(c *components.Cell, field ResourceField, reg PopulationRegistry, rng components.Rand) TickResult {
	MoveCell(c)
	absorbed := AbsorbEnergy(c, field)
	child := TryDivide(c, reg, rng)
	cost, died := Metabolize(c, reg)
	return TickResult{Absorbed: absorbed, Cost: cost, Child: child, Died: died}
}

// MoveCell advances the cell one tick along its schedule. When the current
// step's duration is exhausted the step index wraps first, so the boundary
// tick already moves in the new step's direction.
func MoveCell(c *components.Cell) {
	if c.DistanceMoved >= c.Schedule.Duration(c.StepIndex) {
		c.DistanceMoved = 0
		c.StepIndex = (c.StepIndex + 1) % c.Schedule.Len()
	}

	dx, dy := c.CurrentDirection().Delta()
	c.Pos.X += dx
	c.Pos.Y += dy
	c.DistanceMoved++
}

// AbsorbEnergy drains the food field under the cell's footprint and adds the
// result to its energy, clamped at MaxEnergy. A cell on a stationary step of
// a mostly-stationary schedule absorbs up to 4x as much. Returns the amount
// taken from the field with the bonus applied; when the cap clips the gain
// the stored energy is less than this.
func AbsorbEnergy(c *components.Cell, field ResourceField) float32 {
	amount := field.AbsorbFromArea(
		c.Pos.X, c.Pos.X+c.Footprint,
		c.Pos.Y, c.Pos.Y+c.Footprint,
	)

	if c.CurrentDirection() == components.DirNone {
		sf := c.Schedule.StationaryFraction()
		mult := absorbBonusScale * sf * sf * sf * sf
		if mult < 1 {
			mult = 1
		}
		amount *= mult
	}

	c.Energy += amount
	if c.Energy > components.MaxEnergy {
		c.Energy = components.MaxEnergy
	}
	return amount
}

// TryDivide splits the cell when its energy has reached MaxEnergy. Parent
// and child each keep exactly half; the child spawns within the parent's
// footprint distance on each axis, inherits schedule, footprint and
// metabolic rate, and is registered for future ticks. Returns the child, or
// nil if no division happened.
//
// Division can fire at most once per tick: post-division energy is half the
// cap, which cannot re-reach the gate before the next absorb.
func TryDivide(c *components.Cell, reg PopulationRegistry, rng components.Rand) *components.Cell {
	if c.Energy < components.MaxEnergy {
		return nil
	}

	half := c.Energy / 2
	c.Energy = half

	child := &components.Cell{
		Pos: components.Position{
			X: c.Pos.X + rng.Intn(c.Footprint*2) - c.Footprint,
			Y: c.Pos.Y + rng.Intn(c.Footprint*2) - c.Footprint,
		},
		Schedule:      c.Schedule,
		Energy:        half,
		MetabolicRate: c.MetabolicRate,
		Footprint:     c.Footprint,
	}
	reg.Add(child)
	return child
}

// Metabolize charges the cell its metabolic rate, discounted on stationary
// steps of mostly-stationary schedules (divisor up to 50, never below 1).
// Energy is floored at zero; a cell that reaches exactly zero is removed
// from the registry and receives no further ticks. Returns the cost charged
// and whether the cell died.
func Metabolize(c *components.Cell, reg PopulationRegistry) (cost float32, died bool) {
	cost = c.MetabolicRate
	if c.CurrentDirection() == components.DirNone {
		sf := c.Schedule.StationaryFraction()
		div := metabolicDivisorMax * sf * sf * sf * sf
		if div < 1 {
			div = 1
		}
		cost /= div
	}

	c.Energy -= cost
	if c.Energy < 0 {
		c.Energy = 0
	}
	if c.Energy == 0 {
		reg.Remove(c)
		died = true
	}
	return cost, died
}
