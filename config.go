package citymodel

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	// ErrInvalidConfig is returned (wrapped) for settings we refuse to
	// generate with.
	ErrInvalidConfig = errors.New("invalid grid config")
)

// GridConfig holds everything needed to generate a city grid.
// Generation is a pure function of these values (Workers & Logger aside),
// the same config always yields the same grid.
type GridConfig struct {
	// Number of cells along x & z. The world extent is fixed (see
	// worldRange) so higher resolutions mean smaller cells.
	XResolution int `yaml:"x_resolution"`
	ZResolution int `yaml:"z_resolution"`

	// Seed for all noise & rng
	Seed int64 `yaml:"seed"`

	// WaterHeight is the elevation of the water plane. Anything at or
	// below this is water.
	WaterHeight float64 `yaml:"water_height"`

	// MaxHeight of buildings. Must be positive.
	MaxHeight float64 `yaml:"max_height"`

	// Scale of the perlin noise; larger values give busier terrain
	Scale float64 `yaml:"scale"`

	// HeightRandomizationFactor scales per-cell jitter of up to
	// +/- MaxHeight/2
	HeightRandomizationFactor float64 `yaml:"height_randomization_factor"`

	// VoronoiPerlinInfluence blends noise height (0) with voronoi
	// category height (1). Nominally [0,1], not validated.
	VoronoiPerlinInfluence float64 `yaml:"voronoi_perlin_influence"`

	// VoronoiRegionCount is the number of voronoi seeds. Asking for more
	// regions than cells is allowed & yields a single flat region.
	VoronoiRegionCount int `yaml:"voronoi_region_count"`

	// CategoryTypes is the number of distinct voronoi categories
	CategoryTypes int `yaml:"category_types"`

	// BuildingWidth is the fraction of the cell a building footprint
	// covers, the rest is road. In [0,1]
	BuildingWidth float64 `yaml:"building_width"`

	// EmptyLotPercent is the chance a cell has no building. In [0,1]
	EmptyLotPercent float64 `yaml:"empty_lot_percent"`

	// LoneIslandThreshold land cells with more than this many water
	// neighbours (of 4) are sunk
	LoneIslandThreshold float64 `yaml:"lone_island_threshold"`

	// UseRoadColor paints all ground a flat road colour
	UseRoadColor bool `yaml:"use_road_color"`

	// Workers used when building cells, 0 or 1 builds serially.
	// Output does not depend on this.
	Workers int `yaml:"workers"`

	// Noise overrides the default perlin sampler (optional)
	Noise NoiseSampler `yaml:"-"`

	// Logger (optional)
	Logger *zap.Logger `yaml:"-"`
}

// DefaultConfig returns a reasonable GridConfig.
func DefaultConfig() *GridConfig {
	return &GridConfig{
		XResolution:               100,
		ZResolution:               100,
		WaterHeight:               0.4,
		MaxHeight:                 1.1,
		Scale:                     0.475,
		HeightRandomizationFactor: 0.1,
		VoronoiPerlinInfluence:    0.5,
		VoronoiRegionCount:        30,
		CategoryTypes:             5,
		BuildingWidth:             0.8,
		EmptyLotPercent:           0.1,
		LoneIslandThreshold:       2,
	}
}

// Validate returns an error (wrapping ErrInvalidConfig) if the config
// cannot be generated.
func (c *GridConfig) Validate() error {
	switch {
	case c.XResolution < 1 || c.ZResolution < 1:
		return errors.Wrapf(ErrInvalidConfig, "resolution must be positive, got %dx%d", c.XResolution, c.ZResolution)
	case c.MaxHeight <= 0:
		return errors.Wrapf(ErrInvalidConfig, "max height must be positive, got %f", c.MaxHeight)
	case c.VoronoiRegionCount < 1:
		return errors.Wrapf(ErrInvalidConfig, "voronoi region count must be positive, got %d", c.VoronoiRegionCount)
	case c.CategoryTypes < 1:
		return errors.Wrapf(ErrInvalidConfig, "category types must be positive, got %d", c.CategoryTypes)
	case c.BuildingWidth < 0 || c.BuildingWidth > 1:
		return errors.Wrapf(ErrInvalidConfig, "building width must be in [0,1], got %f", c.BuildingWidth)
	case c.EmptyLotPercent < 0 || c.EmptyLotPercent > 1:
		return errors.Wrapf(ErrInvalidConfig, "empty lot percent must be in [0,1], got %f", c.EmptyLotPercent)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// logger returns the configured logger or a no-op one
func (c *GridConfig) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
