package components

import "fmt"

// Default schedule parameters, matching the out-of-the-box patrol square.
const (
	DefaultStepTicks = 20

	// Random schedule bounds.
	MaxRandomSteps    = 9
	MaxRandomDuration = 10
)

// Step is one leg of a patrol: hold a direction for Duration ticks.
type Step struct {
	Dir      Direction
	Duration int
}

// MovementSchedule is an ordered, cyclic list of patrol steps.
//
// The stationary fraction (share of total duration spent with DirNone) is
// cached: it is computed at construction and by Recompute, never when Steps
// are mutated in place. Callers that edit Steps must call Recompute before
// the next tick, otherwise the absorption bonus and metabolic discount keep
// using the stale value.
type MovementSchedule struct {
	Steps []Step

	stationary float32
}

// NewSchedule builds a schedule from the given steps. The step list must be
// non-empty and every duration strictly positive; anything else is a
// construction bug in the caller.
func NewSchedule(steps []Step) (*MovementSchedule, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("schedule: step list is empty")
	}
	for i, s := range steps {
		if s.Duration <= 0 {
			return nil, fmt.Errorf("schedule: step %d has non-positive duration %d", i, s.Duration)
		}
	}
	ms := &MovementSchedule{Steps: steps}
	ms.Recompute()
	return ms, nil
}

// MustSchedule is like NewSchedule but panics on invalid input.
func MustSchedule(steps []Step) *MovementSchedule {
	ms, err := NewSchedule(steps)
	if err != nil {
		panic(err)
	}
	return ms
}

// DefaultSchedule returns the fixed patrol square: up, right, down, left,
// each held for DefaultStepTicks.
func DefaultSchedule() *MovementSchedule {
	return MustSchedule([]Step{
		{Dir: DirUp, Duration: DefaultStepTicks},
		{Dir: DirRight, Duration: DefaultStepTicks},
		{Dir: DirDown, Duration: DefaultStepTicks},
		{Dir: DirLeft, Duration: DefaultStepTicks},
	})
}

// RandomSchedule draws between 1 and MaxRandomSteps steps, each with a
// uniform direction and a duration in [1, MaxRandomDuration].
func RandomSchedule(rng Rand) *MovementSchedule {
	count := rng.Intn(MaxRandomSteps) + 1
	steps := make([]Step, count)
	for i := range steps {
		steps[i] = Step{
			Dir:      Direction(rng.Intn(NumDirections)),
			Duration: rng.Intn(MaxRandomDuration) + 1,
		}
	}
	return MustSchedule(steps)
}

// Len returns the number of steps.
func (ms *MovementSchedule) Len() int {
	return len(ms.Steps)
}

// Direction returns the direction of the step at the given index.
func (ms *MovementSchedule) Direction(stepIndex int) Direction {
	return ms.Steps[stepIndex].Dir
}

// Duration returns the duration of the step at the given index.
func (ms *MovementSchedule) Duration(stepIndex int) int {
	return ms.Steps[stepIndex].Duration
}

// TotalDuration returns the tick count of one full patrol cycle.
func (ms *MovementSchedule) TotalDuration() int {
	total := 0
	for _, s := range ms.Steps {
		total += s.Duration
	}
	return total
}

// StationaryFraction returns the cached share of the schedule spent with
// DirNone, in [0, 1].
func (ms *MovementSchedule) StationaryFraction() float32 {
	return ms.stationary
}

// Recompute refreshes the cached stationary fraction from the current steps.
func (ms *MovementSchedule) Recompute() {
	var total, stationary float32
	for _, s := range ms.Steps {
		total += float32(s.Duration)
		if s.Dir == DirNone {
			stationary += float32(s.Duration)
		}
	}
	ms.stationary = stationary / total
}
