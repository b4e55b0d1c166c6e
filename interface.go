package citymodel

// NoiseSampler supplies the smooth noise heights are derived from.
// Implementations must be deterministic & safe for concurrent use
// (cells may be built in parallel, see GridConfig.Workers).
type NoiseSampler interface {
	// Noise2D returns a value in [0,1] for the given point. Nearby points
	// should return nearby values.
	Noise2D(x, y float64) float64
}
