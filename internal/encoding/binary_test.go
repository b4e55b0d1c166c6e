package encoding

import (
	"encoding/binary"
	"image/color"
	"math"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestPackRGBA(t *testing.T) {
	c := color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x78}
	if got := PackRGBA(c); got != 0x12345678 {
		t.Fatalf("expected 0x12345678, got %#x", got)
	}
	if got := UnpackRGBA(0x12345678); got != c {
		t.Errorf("expected %v, got %v", c, got)
	}
}

func TestFloat32s(t *testing.T) {
	got := Float32s([]model3d.Coord3D{model3d.XYZ(1, 2, 3), model3d.XYZ(-1, 0.5, 4)})
	want := []float32{1, 2, 3, -1, 0.5, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %d floats, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("float %d: expected %f, got %f", i, want[i], got[i])
		}
	}
}

func TestBytesLittleEndian(t *testing.T) {
	b := Uint32Bytes([]uint32{1, 0xdeadbeef})
	if len(b) != 8 {
		t.Fatalf("expected 8 bytes, got %d", len(b))
	}
	if binary.LittleEndian.Uint32(b[4:]) != 0xdeadbeef {
		t.Errorf("second value not little endian encoded")
	}

	f := Float32Bytes([]float32{1.5})
	if math.Float32frombits(binary.LittleEndian.Uint32(f)) != 1.5 {
		t.Errorf("float not round tripped")
	}
}
