package citymodel

import (
	"time"

	"github.com/boljen/go-bitmap"
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/essentials"
	"go.uber.org/zap"

	"github.com/voidshard/citymodel/internal/noise"
	"github.com/voidshard/citymodel/internal/voronoi"
)

// islandPasses is how many times lone islands are sunk; the second pass
// lets two cell deep peninsulas go under too.
const islandPasses = 2

// CellGrid holds a generated grid of cells.
// It is not modified after New returns.
type CellGrid struct {
	XResolution int
	ZResolution int
	Seed        int64

	// Cells indexed x*ZResolution + z
	Cells []Cell

	// voronoi category of each cell (same indexing as Cells) &
	// the indexes of the voronoi seed cells
	Categories  []int
	SeedIndices []int

	Stats *GridStats

	cfg  GridConfig
	log  *zap.Logger
	part *voronoi.Partition

	// half width of a cell in world units
	radiusX float64
	radiusZ float64
}

// New generates a CellGrid from the given config.
func New(cfg *GridConfig) (*CellGrid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &CellGrid{
		XResolution: cfg.XResolution,
		ZResolution: cfg.ZResolution,
		Seed:        cfg.Seed,
		Stats:       newGridStats(),
		cfg:         *cfg,
		log:         cfg.logger(),
		radiusX:     worldRange / float64(cfg.XResolution) / 2,
		radiusZ:     worldRange / float64(cfg.ZResolution) / 2,
	}
	return g, g.build()
}

// build runs each stage in turn; partitioning & island sinking look at
// neighbours so each must finish before the next begins.
func (g *CellGrid) build() error {
	start := time.Now()

	err := g.partition()
	if err != nil {
		return err
	}
	log := g.logger()

	sampler := g.cfg.Noise
	if sampler == nil {
		sampler = noise.NewPerlin(g.Seed)
	}
	hf := &heightField{cfg: &g.cfg, part: g.part, noise: sampler}

	empty := g.buildCells(hf)

	for i := 0; i < islandPasses; i++ {
		sunk := g.sinkLoneIslands(g.cfg.LoneIslandThreshold)
		g.Stats.Islands += sunk
		log.Debug("sank lone islands", zap.Int("pass", i), zap.Int("cells", sunk))
	}

	g.collectStats(empty)

	log.Debug(
		"generated cell grid",
		zap.Int("x", g.XResolution),
		zap.Int("z", g.ZResolution),
		zap.Int64("seed", g.Seed),
		zap.Int("water", g.Stats.Water),
		zap.Int("buildings", g.Stats.Buildings),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

// partition assigns voronoi categories, falling back to a single region
// if we can't place the requested number of seeds.
func (g *CellGrid) partition() error {
	p, err := voronoi.JumpFlood(g.XResolution, g.ZResolution, g.Seed, g.cfg.VoronoiRegionCount, g.cfg.CategoryTypes)
	if errors.Cause(err) == voronoi.ErrTooManyRegions {
		g.logger().Warn(
			"too many voronoi regions, using a single region",
			zap.Int("regions", g.cfg.VoronoiRegionCount),
			zap.Int("cells", g.XResolution*g.ZResolution),
		)
		p, err = voronoi.Degenerate(g.XResolution, g.ZResolution), nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to partition grid")
	}

	g.part = p
	g.Categories = p.Categories
	g.SeedIndices = p.Seeds
	return nil
}

// buildCells creates every cell, returning which became empty lots.
// Each cell depends only on (seed, index) so rows may be built in any order.
func (g *CellGrid) buildCells(hf *heightField) []bool {
	g.Cells = make([]Cell, g.XResolution*g.ZResolution)
	empty := make([]bool, len(g.Cells))

	row := func(x int) {
		for z := 0; z < g.ZResolution; z++ {
			i := x*g.ZResolution + z
			g.Cells[i], empty[i] = g.buildCell(hf, x, z, i)
		}
	}

	if g.cfg.Workers <= 1 {
		for x := 0; x < g.XResolution; x++ {
			row(x)
		}
		return empty
	}

	essentials.ConcurrentMap(g.cfg.Workers, g.XResolution, row)
	return empty
}

// buildCell creates the cell at x,z (linear index i)
func (g *CellGrid) buildCell(hf *heightField, x, z, i int) (Cell, bool) {
	cfg := &g.cfg
	centre := model3d.XYZ(
		float64(x)/float64(g.XResolution)*worldRange,
		0,
		float64(z)/float64(g.ZResolution)*worldRange,
	)

	height, ground, empty := hf.heightOf(x, z, i)

	col := heightToColor(height, cfg.MaxHeight, cfg.WaterHeight)
	groundCol := heightToColor(ground, cfg.MaxHeight, cfg.WaterHeight)
	if cfg.UseRoadColor {
		groundCol = roadColor
	}
	if g.IsBoundary(x, z) {
		col, groundCol = boundaryColor, boundaryColor
	}

	isWater := height <= cfg.WaterHeight
	rx, rz := g.radiusX, g.radiusZ
	if !isWater {
		rx *= cfg.BuildingWidth
		rz *= cfg.BuildingWidth
	}

	c := Cell{
		Index:        i,
		X:            x,
		Z:            z,
		Center:       centre,
		Color:        col,
		GroundColor:  groundCol,
		Height:       height,
		GroundHeight: ground,
		WaterHeight:  cfg.WaterHeight,
		IsWater:      isWater,
	}
	return newCell(
		c,
		footprint(centre, rx, rz, ground),
		footprint(centre, g.radiusX, g.radiusZ, ground),
	), empty && !isWater
}

// sinkLoneIslands turns land cells with more than `threshold` water
// neighbours into water. Neighbours are judged as they were when the sweep
// began. Returns the number of cells sunk.
func (g *CellGrid) sinkLoneIslands(threshold float64) int {
	water := bitmap.New(len(g.Cells))
	for i, c := range g.Cells {
		if c.IsWater {
			water.Set(i, true)
		}
	}

	sunk := 0
	for i, c := range g.Cells {
		if c.IsWater {
			continue
		}
		count := 0
		for _, d := range AllDirections() {
			dx, dz := d.Offset()
			j, ok := g.Index(c.X+dx, c.Z+dz)
			if ok && water.Get(j) {
				count++
			}
		}
		if float64(count) > threshold {
			g.Cells[i] = g.asWater(c)
			sunk++
		}
	}
	return sunk
}

// asWater returns a copy of c as a flat full width water tile
func (g *CellGrid) asWater(c Cell) Cell {
	col := waterColor
	if g.IsBoundary(c.X, c.Z) {
		col = boundaryColor
	}
	c.Color, c.GroundColor = col, col
	c.Height, c.GroundHeight = c.WaterHeight, c.WaterHeight
	c.IsWater = true

	fp := footprint(c.Center, g.radiusX, g.radiusZ, c.WaterHeight)
	return newCell(c, fp, fp)
}

// collectStats fills in Stats from the finished cells
func (g *CellGrid) collectStats(empty []bool) {
	g.Stats.Cells = len(g.Cells)
	for i, c := range g.Cells {
		g.Stats.CellsByCategory[g.Categories[i]]++
		switch {
		case c.IsWater:
			g.Stats.Water++
		case empty[i]:
			g.Stats.EmptyLots++
		default:
			g.Stats.Buildings++
		}
	}
}

// logger returns the grid's logger, or a no-op one for grids not made by New
func (g *CellGrid) logger() *zap.Logger {
	if g.log == nil {
		return zap.NewNop()
	}
	return g.log
}

// Index returns the linear index of x,z & false if it's out of bounds
func (g *CellGrid) Index(x, z int) (int, bool) {
	if x < 0 || z < 0 || x >= g.XResolution || z >= g.ZResolution {
		return -1, false
	}
	return x*g.ZResolution + z, true
}

// At returns the cell at x,z
func (g *CellGrid) At(x, z int) (Cell, bool) {
	i, ok := g.Index(x, z)
	if !ok {
		return Cell{}, false
	}
	return g.Cells[i], true
}

// Neighbour returns the cell next to x,z in the given direction, if any
func (g *CellGrid) Neighbour(x, z int, d Direction) (Cell, bool) {
	dx, dz := d.Offset()
	return g.At(x+dx, z+dz)
}

// IsBoundary returns if x,z is on the outer ring of the grid
func (g *CellGrid) IsBoundary(x, z int) bool {
	return x == 0 || z == 0 || x == g.XResolution-1 || z == g.ZResolution-1
}
