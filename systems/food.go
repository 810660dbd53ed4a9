package systems

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// FoodField is a toroidal grid of depletable food energy. Absorption zeroes
// the queried tiles, so energy is consumed, never duplicated; Step regrows
// each tile toward its noise-shaped capacity.
type FoodField struct {
	W, H int

	// Food is the currently available energy per tile; Cap is the level
	// each tile regrows toward.
	Food []float32
	Cap  []float32

	// RegrowRate is the fraction of a tile's deficit restored per tick.
	RegrowRate float32
}

// FoodParams configures field generation.
type FoodParams struct {
	Density     float64 // peak energy per tile
	RegrowRate  float64 // per tick
	NoiseScale  float64 // base noise frequency
	Octaves     int
	Persistence float64
}

// NewFoodField builds a w x h field whose capacity is shaped by layered
// simplex noise under the given seed. The field starts at full capacity.
func NewFoodField(w, h int, params FoodParams, seed int64) *FoodField {
	f := &FoodField{
		W: w, H: h,
		Food:       make([]float32, w*h),
		Cap:        make([]float32, w*h),
		RegrowRate: float32(params.RegrowRate),
	}

	noise := opensimplex.NewNormalized(seed)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := octaveNoise(noise, float64(x), float64(y), params.Octaves, params.NoiseScale, params.Persistence)
			f.Cap[y*w+x] = float32(n * params.Density)
		}
	}
	copy(f.Food, f.Cap)

	return f
}

// AbsorbFromArea drains and returns all food in the half-open rectangle
// [minX,maxX) x [minY,maxY). Coordinates wrap toroidally, so cells that
// patrol past the edge keep grazing.
func (f *FoodField) AbsorbFromArea(minX, maxX, minY, maxY int) float32 {
	var sum float32
	for y := minY; y < maxY; y++ {
		yy := wrapInt(y, f.H)
		for x := minX; x < maxX; x++ {
			xx := wrapInt(x, f.W)
			i := yy*f.W + xx
			sum += f.Food[i]
			f.Food[i] = 0
		}
	}
	return sum
}

// Step regrows every tile toward its capacity by RegrowRate of the deficit.
func (f *FoodField) Step() {
	if f.RegrowRate <= 0 {
		return
	}
	for i := range f.Food {
		f.Food[i] += (f.Cap[i] - f.Food[i]) * f.RegrowRate
		if f.Food[i] > f.Cap[i] {
			f.Food[i] = f.Cap[i]
		}
	}
}

// Total returns the energy currently stored in the field.
func (f *FoodField) Total() float64 {
	var sum float64
	for _, v := range f.Food {
		sum += float64(v)
	}
	return sum
}

// octaveNoise layers simplex noise at doubling frequencies, normalized to
// [0, 1].
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

func wrapInt(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
