package noise

import (
	"math"
	"testing"
)

func TestNoise2DRange(t *testing.T) {
	n := NewPerlin(3)
	for x := -20.0; x < 20; x += 0.37 {
		for y := -20.0; y < 20; y += 0.41 {
			v := n.Noise2D(x, y)
			if v < 0 || v > 1 {
				t.Fatalf("noise at (%f,%f) = %f outside [0,1]", x, y, v)
			}
		}
	}
}

func TestNoise2DDeterministic(t *testing.T) {
	a := NewPerlin(99)
	b := NewPerlin(99)
	for i := 0; i < 100; i++ {
		x, y := float64(i)*0.13, float64(i)*0.29
		if a.Noise2D(x, y) != b.Noise2D(x, y) {
			t.Fatalf("samplers with equal seeds disagree at (%f,%f)", x, y)
		}
	}
}

func TestNoise2DContinuous(t *testing.T) {
	n := NewPerlin(5)
	for i := 0; i < 200; i++ {
		x := float64(i) * 0.05
		d := math.Abs(n.Noise2D(x, 1.5) - n.Noise2D(x+0.001, 1.5))
		if d > 0.05 {
			t.Fatalf("noise jumped by %f between adjacent samples at x=%f", d, x)
		}
	}
}
