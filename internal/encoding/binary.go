package encoding

import (
	"encoding/binary"
	"image/color"
	"math"

	"github.com/unixpickle/model3d/model3d"
)

// Split32 uint32 to two uint16
func Split32(in uint32) (uint16, uint16) {
	return uint16(in >> 16), uint16(in)
}

// Merge16 two uint16 to uint32
func Merge16(a, b uint16) uint32 {
	return (uint32(a) << 16) + uint32(b)
}

// Split16 uint16 to two uint8
func Split16(in uint16) (uint8, uint8) {
	return uint8(in >> 8), uint8(in)
}

// Merge8 two uint8 to uint16
func Merge8(a, b uint8) uint16 {
	return (uint16(a) << 8) + uint16(b)
}

// PackRGBA packs a colour as 0xRRGGBBAA
func PackRGBA(c color.RGBA) uint32 {
	return Merge16(Merge8(c.R, c.G), Merge8(c.B, c.A))
}

// UnpackRGBA is the inverse of PackRGBA
func UnpackRGBA(in uint32) color.RGBA {
	hi, lo := Split32(in)
	r, g := Split16(hi)
	b, a := Split16(lo)
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// Float32s flattens coords into x,y,z triples
func Float32s(in []model3d.Coord3D) []float32 {
	out := make([]float32, 0, len(in)*3)
	for _, c := range in {
		out = append(out, float32(c.X), float32(c.Y), float32(c.Z))
	}
	return out
}

// Float32Bytes encodes floats little endian, the layout GPUs expect
func Float32Bytes(in []float32) []byte {
	buf := make([]byte, len(in)*4)
	for i, f := range in {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// Uint32Bytes encodes uints little endian
func Uint32Bytes(in []uint32) []byte {
	buf := make([]byte, len(in)*4)
	for i, v := range in {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}
	return buf
}
