// Package telemetry aggregates per-window simulation statistics and writes
// them to structured logs and CSV.
package telemetry

// Collector accumulates event counts and energy flows within the current
// stats window. The driver records events as they happen and calls Reset
// when the window rolls over.
type Collector struct {
	births int
	deaths int

	energyAbsorbed    float64
	energyMetabolized float64
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// RecordBirth counts a division.
func (c *Collector) RecordBirth() {
	c.births++
}

// RecordDeath counts a starvation death.
func (c *Collector) RecordDeath() {
	c.deaths++
}

// RecordAbsorb adds energy drawn from the food field, before the storage cap.
func (c *Collector) RecordAbsorb(amount float32) {
	c.energyAbsorbed += float64(amount)
}

// RecordMetabolism adds energy paid as metabolic cost.
func (c *Collector) RecordMetabolism(cost float32) {
	c.energyMetabolized += float64(cost)
}

// Births returns the divisions recorded this window.
func (c *Collector) Births() int { return c.births }

// Deaths returns the deaths recorded this window.
func (c *Collector) Deaths() int { return c.deaths }

// EnergyAbsorbed returns the energy drawn from the field this window.
func (c *Collector) EnergyAbsorbed() float64 { return c.energyAbsorbed }

// EnergyMetabolized returns the energy spent this window.
func (c *Collector) EnergyMetabolized() float64 { return c.energyMetabolized }

// Reset clears the collector for the next window.
func (c *Collector) Reset() {
	*c = Collector{}
}
