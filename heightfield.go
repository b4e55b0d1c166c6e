package citymodel

import (
	"image/color"
	"math"
	"math/rand"

	"golang.org/x/image/colornames"

	"github.com/voidshard/citymodel/internal/voronoi"
)

var (
	// low & high ends of the building colour ramp
	purple = color.RGBA{R: 109, G: 19, B: 126, A: 255}
	blue   = color.RGBA{R: 100, G: 177, B: 183, A: 255}

	waterColor    = colornames.Royalblue
	roadColor     = colornames.Dimgray
	boundaryColor = colornames.Black
)

// heightField computes per cell heights for one grid
type heightField struct {
	cfg   *GridConfig
	part  *voronoi.Partition
	noise NoiseSampler
}

// cellRNG returns the rng for the cell at index i, independent of the
// order cells are visited in
func cellRNG(seed int64, i int) *rand.Rand {
	return rand.New(rand.NewSource(seed + int64(i)*100))
}

// heightOf returns the (height, groundHeight) of cell x,z & whether it was
// flattened into an empty lot.
func (h *heightField) heightOf(x, z, i int) (float64, float64, bool) {
	cfg := h.cfg
	rng := cellRNG(cfg.Seed, i)

	seed := float64(cfg.Seed)
	perlinHeight := h.noise.Noise2D(
		float64(x)/worldRange*cfg.Scale+seed,
		float64(z)/worldRange*cfg.Scale+seed,
	) * cfg.MaxHeight

	voronoiHeight := float64(h.part.Category(x, z)) / float64(cfg.CategoryTypes) * cfg.MaxHeight

	// |influence - 1| rather than (1 - influence); they differ only
	// above 1 where noise takes over again
	influence := cfg.VoronoiPerlinInfluence
	height := math.Abs(influence-1)*perlinHeight + influence*voronoiHeight

	height += cfg.HeightRandomizationFactor * uniform(rng, -cfg.MaxHeight/2, cfg.MaxHeight/2)

	ground := cfg.WaterHeight + height*0.1

	empty := false
	if rng.Float64() < cfg.EmptyLotPercent {
		height = ground
		empty = true
	}

	if height <= cfg.WaterHeight {
		return cfg.WaterHeight, cfg.WaterHeight, false
	}
	// shave off buildings barely above the water
	if height <= cfg.WaterHeight+cfg.WaterHeight*0.1 {
		return cfg.WaterHeight, cfg.WaterHeight, false
	}
	// buildings just over the shave line can sit under their own ground
	if ground > height {
		ground = height
	}
	return height, ground, empty
}

// heightToColor maps height onto the purple -> blue ramp, anything at or
// under the water line is water coloured.
func heightToColor(height, maxHeight, waterHeight float64) color.RGBA {
	if height <= waterHeight {
		return waterColor
	}
	t := clamp01(height / maxHeight)
	return color.RGBA{
		R: lerpByte(purple.R, blue.R, t),
		G: lerpByte(purple.G, blue.G, t),
		B: lerpByte(purple.B, blue.B, t),
		A: 255,
	}
}
