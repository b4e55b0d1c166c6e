package citymodel

import (
	"image/color"

	"github.com/unixpickle/model3d/model3d"
)

// GridStats holds generic stats about a generated grid
type GridStats struct {
	Cells     int
	Water     int // including cells sunk as lone islands
	Buildings int // land cells with something taller than the ground
	EmptyLots int // land cells flattened to ground height
	Islands   int // land cells converted to water after classification

	// CellsByCategory counts cells per voronoi category
	CellsByCategory map[int]int `json:",omitempty"`
}

// newGridStats returns blank GridStats
func newGridStats() *GridStats {
	return &GridStats{CellsByCategory: map[int]int{}}
}

// Cell is one unit of the grid; a building (or empty lot) surrounded by
// road, or a flat tile of water.
//
// Footprint corners are always ordered (-x,-z), (-x,+z), (+x,+z), (+x,-z)
// around the cell centre.
type Cell struct {
	// linear position x*ZResolution + z
	Index int
	X     int
	Z     int

	Center model3d.Coord3D

	Color       color.RGBA
	GroundColor color.RGBA

	Height       float64
	GroundHeight float64
	WaterHeight  float64

	IsWater bool

	// building footprint at ground height
	LowerVertices [4]model3d.Coord3D
	// LowerVertices raised to Height
	UpperVertices [4]model3d.Coord3D
	// full cell footprint at ground height, the outer edge of the road
	OuterLowerVertices [4]model3d.Coord3D
}

// newCell sets the cell footprints & upper vertices from lower
func newCell(base Cell, lower, outer [4]model3d.Coord3D) Cell {
	base.LowerVertices = lower
	base.OuterLowerVertices = outer
	for i, v := range lower {
		base.UpperVertices[i] = model3d.XYZ(v.X, base.Height, v.Z)
	}
	return base
}

// Direction is one of the four orthogonal grid neighbours
type Direction int

const (
	North Direction = iota // +z
	East                   // +x
	South                  // -z
	West                   // -x
)

// orthogonal offsets (dx, dz) by Direction
var orthogonal = [4][2]int{
	North: {0, 1},
	East:  {1, 0},
	South: {0, -1},
	West:  {-1, 0},
}

// AllDirections returns the four orthogonal directions
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// Offset returns the (dx, dz) step for the direction
func (d Direction) Offset() (int, int) {
	o := orthogonal[d]
	return o[0], o[1]
}
