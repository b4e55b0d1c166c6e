package citymodel

import (
	"math/rand"

	"github.com/golang/geo/r2"
	"github.com/unixpickle/model3d/model3d"
)

// worldRange is the world size along both x & z regardless of resolution
const worldRange = 10.0

// uniform returns a float in [lo, hi)
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// clamp01 clamps v into [0,1]
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	} else if v > 1 {
		return 1
	}
	return v
}

// lerpByte interpolates between two channel values, truncating
func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// footprint returns the corners of a rx by rz (half widths) square around
// centre at elevation y, ordered (-,-), (-,+), (+,+), (+,-)
func footprint(centre model3d.Coord3D, rx, rz, y float64) [4]model3d.Coord3D {
	rect := r2.RectFromCenterSize(r2.Point{X: centre.X, Y: centre.Z}, r2.Point{X: rx * 2, Y: rz * 2})
	lo, hi := rect.Lo(), rect.Hi()
	return [4]model3d.Coord3D{
		model3d.XYZ(lo.X, y, lo.Y),
		model3d.XYZ(lo.X, y, hi.Y),
		model3d.XYZ(hi.X, y, hi.Y),
		model3d.XYZ(hi.X, y, lo.Y),
	}
}
