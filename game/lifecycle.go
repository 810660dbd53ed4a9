package game

import (
	"github.com/pthm-cable/petri/components"
	"github.com/pthm-cable/petri/config"
)

// spawnInitialPopulation queues the starting cells. Each spawns at a random
// position on the food grid with a random energy in [0, MaxEnergy), the way
// the population is seeded out of the box; a configurable fraction gets a
// random patrol schedule instead of the default square.
func (g *Game) spawnInitialPopulation() {
	cfg := config.Cfg()
	defaultSchedule := components.DefaultSchedule()

	for i := 0; i < cfg.Population.Initial; i++ {
		schedule := defaultSchedule
		if cfg.Schedule.RandomFraction > 0 && g.rng.Float64() < cfg.Schedule.RandomFraction {
			schedule = components.RandomSchedule(g.rng)
		}

		cell := &components.Cell{
			Pos: components.Position{
				X: g.rng.Intn(cfg.World.Width),
				Y: g.rng.Intn(cfg.World.Height),
			},
			Schedule:      schedule,
			Energy:        float32(g.rng.Intn(int(components.MaxEnergy))),
			MetabolicRate: float32(cfg.Cell.MetabolicRate),
			Footprint:     cfg.Cell.Footprint,
		}
		g.pop.Add(cell)
	}
}
