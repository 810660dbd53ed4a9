package components

import (
	"math"
	"math/rand"
	"testing"
)

func TestDefaultSchedule(t *testing.T) {
	s := DefaultSchedule()

	want := []Step{
		{Dir: DirUp, Duration: 20},
		{Dir: DirRight, Duration: 20},
		{Dir: DirDown, Duration: 20},
		{Dir: DirLeft, Duration: 20},
	}
	if len(s.Steps) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(s.Steps))
	}
	for i, step := range want {
		if s.Steps[i] != step {
			t.Errorf("step %d = %+v, want %+v", i, s.Steps[i], step)
		}
	}

	// The default patrol never stands still.
	if s.StationaryFraction() != 0 {
		t.Errorf("default schedule stationary fraction = %v, want 0", s.StationaryFraction())
	}
	if s.TotalDuration() != 80 {
		t.Errorf("default schedule total duration = %d, want 80", s.TotalDuration())
	}
}

func TestNewScheduleValidation(t *testing.T) {
	tests := []struct {
		name  string
		steps []Step
	}{
		{"empty", nil},
		{"zero duration", []Step{{Dir: DirUp, Duration: 0}}},
		{"negative duration", []Step{{Dir: DirUp, Duration: 5}, {Dir: DirNone, Duration: -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSchedule(tt.steps); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestStationaryFraction(t *testing.T) {
	tests := []struct {
		name  string
		steps []Step
		want  float32
	}{
		{"all stationary", []Step{{Dir: DirNone, Duration: 100}}, 1.0},
		{"no stationary", []Step{{Dir: DirUp, Duration: 10}, {Dir: DirDown, Duration: 10}}, 0.0},
		{"half stationary", []Step{{Dir: DirNone, Duration: 10}, {Dir: DirLeft, Duration: 10}}, 0.5},
		{"weighted by duration", []Step{{Dir: DirNone, Duration: 30}, {Dir: DirRight, Duration: 10}}, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MustSchedule(tt.steps)
			got := s.StationaryFraction()
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("stationary fraction = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("stationary fraction %v outside [0,1]", got)
			}
		})
	}
}

// Mutating steps in place must not change the cached fraction until
// Recompute is called.
func TestStationaryFractionRecomputeIsExplicit(t *testing.T) {
	s := MustSchedule([]Step{
		{Dir: DirNone, Duration: 10},
		{Dir: DirUp, Duration: 10},
	})
	if s.StationaryFraction() != 0.5 {
		t.Fatalf("initial stationary fraction = %v, want 0.5", s.StationaryFraction())
	}

	s.Steps[1].Dir = DirNone
	if s.StationaryFraction() != 0.5 {
		t.Errorf("in-place mutation changed cached fraction to %v", s.StationaryFraction())
	}

	s.Recompute()
	if s.StationaryFraction() != 1.0 {
		t.Errorf("after Recompute, stationary fraction = %v, want 1.0", s.StationaryFraction())
	}
}

func TestRandomScheduleBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		s := RandomSchedule(rng)

		if len(s.Steps) < 1 || len(s.Steps) > MaxRandomSteps {
			t.Fatalf("random schedule has %d steps, want 1..%d", len(s.Steps), MaxRandomSteps)
		}
		for j, step := range s.Steps {
			if step.Duration < 1 || step.Duration > MaxRandomDuration {
				t.Fatalf("step %d duration = %d, want 1..%d", j, step.Duration, MaxRandomDuration)
			}
			if step.Dir >= NumDirections {
				t.Fatalf("step %d direction = %d out of range", j, step.Dir)
			}
		}

		sf := s.StationaryFraction()
		if sf < 0 || sf > 1 {
			t.Fatalf("stationary fraction %v outside [0,1]", sf)
		}
	}
}

func TestRandomScheduleDeterministic(t *testing.T) {
	a := RandomSchedule(rand.New(rand.NewSource(99)))
	b := RandomSchedule(rand.New(rand.NewSource(99)))

	if len(a.Steps) != len(b.Steps) {
		t.Fatalf("same seed produced %d and %d steps", len(a.Steps), len(b.Steps))
	}
	for i := range a.Steps {
		if a.Steps[i] != b.Steps[i] {
			t.Errorf("step %d differs: %+v vs %+v", i, a.Steps[i], b.Steps[i])
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirNone, 0, 0},
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			dx, dy := tt.dir.Delta()
			if dx != tt.dx || dy != tt.dy {
				t.Errorf("Delta() = (%d,%d), want (%d,%d)", dx, dy, tt.dx, tt.dy)
			}
		})
	}
}
