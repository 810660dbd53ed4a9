package components

// MaxEnergy is the energy ceiling for a cell. Reaching it triggers division;
// energy never exceeds it in observable state.
const MaxEnergy float32 = 1024

// Cell is a single patrolling organism. It repeats its movement schedule,
// absorbs energy from the food field under its footprint, divides when full,
// and dies when its energy runs out.
//
// StepIndex always satisfies 0 <= StepIndex < Schedule.Len();
// DistanceMoved resets to 0 whenever StepIndex advances.
type Cell struct {
	ID  uint32
	Pos Position

	// Schedule is shared between parent and child on division. Schedules
	// are treated as immutable after construction, so sharing is safe.
	Schedule *MovementSchedule

	StepIndex     int
	DistanceMoved int

	Energy        float32 // in [0, MaxEnergy]
	MetabolicRate float32 // constant per cell, inherited by children
	Footprint     int     // side length of the absorbed square
}

// CurrentDirection returns the direction of the step the cell is on.
func (c *Cell) CurrentDirection() Direction {
	return c.Schedule.Direction(c.StepIndex)
}

// EnergyFraction returns normalized energy in [0, 1], for external display.
func (c *Cell) EnergyFraction() float32 {
	return c.Energy / MaxEnergy
}

// Alive reports whether the cell still holds energy.
func (c *Cell) Alive() bool {
	return c.Energy > 0
}
