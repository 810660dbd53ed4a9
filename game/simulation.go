package game

import (
	"log/slog"

	"github.com/pthm-cable/petri/components"
	"github.com/pthm-cable/petri/systems"
	"github.com/pthm-cable/petri/telemetry"
)

// Step advances the simulation by one tick: every live cell runs its update
// cycle against the food field and the registry, then queued births and
// deaths are applied, the food regrows, and the stats window rolls over if
// due. Iteration order over the population is the storage order, which is
// deterministic for a fixed seed.
func (g *Game) Step() {
	g.tick++

	g.pop.ForEach(func(c *components.Cell) {
		res := systems.UpdateCell(c, g.food, g.pop, g.rng)

		g.collector.RecordAbsorb(res.Absorbed)
		g.collector.RecordMetabolism(res.Cost)
		if res.Child != nil {
			g.collector.RecordBirth()
		}
		if res.Died {
			g.collector.RecordDeath()
		}
	})

	g.pop.Flush()
	g.food.Step()

	if g.tick%g.statsWindow == 0 {
		g.rollStatsWindow()
	}
}

// rollStatsWindow emits the current window's stats and resets the collector.
func (g *Game) rollStatsWindow() {
	stats := g.windowStats()

	if g.opts.LogStats {
		stats.LogStats()
	}
	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Warn("telemetry write failed", "error", err)
	}

	g.collector.Reset()
}

// windowStats samples the population and builds the window record.
func (g *Game) windowStats() telemetry.WindowStats {
	var energies []float64
	var stationarySum float64

	g.pop.ForEach(func(c *components.Cell) {
		energies = append(energies, float64(c.Energy))
		stationarySum += float64(c.Schedule.StationaryFraction())
	})

	mean, std, p10, p50, p90 := telemetry.ComputeEnergyStats(energies)

	stationaryMean := 0.0
	if len(energies) > 0 {
		stationaryMean = stationarySum / float64(len(energies))
	}

	return telemetry.WindowStats{
		WindowEndTick:     g.tick,
		Population:        g.pop.Len(),
		Births:            g.collector.Births(),
		Deaths:            g.collector.Deaths(),
		EnergyAbsorbed:    g.collector.EnergyAbsorbed(),
		EnergyMetabolized: g.collector.EnergyMetabolized(),
		EnergyMean:        mean,
		EnergyStd:         std,
		EnergyP10:         p10,
		EnergyP50:         p50,
		EnergyP90:         p90,
		StationaryMean:    stationaryMean,
		FoodTotal:         g.food.Total(),
	}
}
