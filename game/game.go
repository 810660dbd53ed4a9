// Package game wires the simulation together: population storage, food
// field, spawning, the tick loop, and telemetry hooks.
package game

import (
	"math/rand"

	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/systems"
	"github.com/pthm-cable/petri/telemetry"
)

// Options configures a simulation run.
type Options struct {
	Seed             int64
	LogStats         bool
	StatsWindowTicks int    // 0 = use config
	OutputDir        string // empty = no CSV output
}

// Game holds the complete simulation state.
type Game struct {
	opts Options
	rng  *rand.Rand

	pop  *Population
	food *systems.FoodField

	collector *telemetry.Collector
	output    *telemetry.OutputManager

	tick        int32
	statsWindow int32
}

// NewGameWithOptions creates a simulation from the global config and the
// given options, and spawns the initial population.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	g := &Game{
		opts:      opts,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		pop:       NewPopulation(),
		collector: telemetry.NewCollector(),
	}

	g.food = systems.NewFoodField(cfg.World.Width, cfg.World.Height, systems.FoodParams{
		Density:     cfg.Food.Density,
		RegrowRate:  cfg.Food.RegrowRate,
		NoiseScale:  cfg.Food.NoiseScale,
		Octaves:     cfg.Food.NoiseOctaves,
		Persistence: cfg.Food.NoisePersistence,
	}, opts.Seed)

	g.statsWindow = int32(cfg.Telemetry.StatsWindow)
	if opts.StatsWindowTicks > 0 {
		g.statsWindow = int32(opts.StatsWindowTicks)
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.output = output
	if err := g.output.WriteConfig(cfg); err != nil {
		g.output.Close()
		return nil, err
	}

	g.spawnInitialPopulation()
	g.pop.Flush()

	return g, nil
}

// Tick returns the current tick number.
func (g *Game) Tick() int32 {
	return g.tick
}

// Population returns the number of live cells.
func (g *Game) Population() int {
	return g.pop.Len()
}

// Food returns the food field, for external renderers.
func (g *Game) Food() *systems.FoodField {
	return g.food
}

// Close flushes and closes output files.
func (g *Game) Close() error {
	return g.output.Close()
}
