package citymodel

import (
	"image/color"

	"github.com/unixpickle/model3d/model3d"
	"go.uber.org/zap"

	"github.com/voidshard/citymodel/internal/encoding"
)

const (
	// quads emitted for every cell: 4 walls & a roof
	baseQuads = 5
	// extra quads for land cells: 4 road & 4 skirt
	landQuads = 8
)

// Mesh is a flat coloured triangle mesh. Every quad owns its four
// vertices (nothing is welded), each sharing the quad's colour.
type Mesh struct {
	Vertices []model3d.Coord3D
	Colors   []color.RGBA
	Indices  []uint32
}

// Triangulate builds the building / road / water mesh of a grid.
func Triangulate(g *CellGrid) *Mesh {
	quads := 0
	for _, c := range g.Cells {
		quads += QuadCount(c)
	}

	m := &Mesh{
		Vertices: make([]model3d.Coord3D, 0, quads*4),
		Colors:   make([]color.RGBA, 0, quads*4),
		Indices:  make([]uint32, 0, quads*6),
	}
	for _, c := range g.Cells {
		m.addCell(c)
	}

	g.logger().Debug("triangulated grid", zap.Int("quads", quads), zap.Int("vertices", len(m.Vertices)))
	return m
}

// QuadCount returns how many quads Triangulate emits for c
func QuadCount(c Cell) int {
	if c.IsWater {
		return baseQuads
	}
	return baseQuads + landQuads
}

// addCell adds the quads of a single cell
func (m *Mesh) addCell(c Cell) {
	lo, up, out := c.LowerVertices, c.UpperVertices, c.OuterLowerVertices

	// walls
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		m.addQuad(c.Color, lo[i], lo[j], up[j], up[i])
	}

	// roof
	m.addQuad(c.Color, up[0], up[1], up[2], up[3])

	if c.IsWater {
		return
	}

	// road from the building out to the cell edge
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		m.addQuad(c.GroundColor, lo[i], out[i], out[j], lo[j])
	}

	// skirt from the cell edge down to the water
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		m.addQuad(
			c.GroundColor,
			out[j],
			out[i],
			model3d.XYZ(out[i].X, c.WaterHeight, out[i].Z),
			model3d.XYZ(out[j].X, c.WaterHeight, out[j].Z),
		)
	}
}

// addQuad adds a,b,c,d as triangles (a,b,c) & (a,c,d)
func (m *Mesh) addQuad(col color.RGBA, a, b, c, d model3d.Coord3D) {
	i := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, a, b, c, d)
	m.Colors = append(m.Colors, col, col, col, col)
	m.Indices = append(m.Indices, i, i+1, i+2, i, i+2, i+3)
}

// Normals returns per vertex normals; the normalised sum of the normals of
// every triangle using the vertex. Vertices of degenerate (zero area)
// quads get a zero normal.
func (m *Mesh) Normals() []model3d.Coord3D {
	normals := make([]model3d.Coord3D, len(m.Vertices))
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a, b, c := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		va, vb, vc := m.Vertices[a], m.Vertices[b], m.Vertices[c]
		face := vb.Sub(va).Cross(vc.Sub(va))
		normals[a] = normals[a].Add(face)
		normals[b] = normals[b].Add(face)
		normals[c] = normals[c].Add(face)
	}
	for i, n := range normals {
		if n.Norm() > 0 {
			normals[i] = n.Normalize()
		}
	}
	return normals
}

// Model returns the mesh as a model3d.Mesh, dropping degenerate triangles.
// Colours are not carried over.
func (m *Mesh) Model() *model3d.Mesh {
	out := model3d.NewMesh()
	for t := 0; t+2 < len(m.Indices); t += 3 {
		tri := &model3d.Triangle{
			m.Vertices[m.Indices[t]],
			m.Vertices[m.Indices[t+1]],
			m.Vertices[m.Indices[t+2]],
		}
		if tri.Area() == 0 {
			continue
		}
		out.Add(tri)
	}
	return out
}

// PositionBuffer returns vertices as packed x,y,z float32s
func (m *Mesh) PositionBuffer() []float32 {
	return encoding.Float32s(m.Vertices)
}

// ColorBuffer returns colours packed as 0xRRGGBBAA
func (m *Mesh) ColorBuffer() []uint32 {
	out := make([]uint32, len(m.Colors))
	for i, c := range m.Colors {
		out[i] = encoding.PackRGBA(c)
	}
	return out
}
