// Package meshgrid holds the flat, linearly-indexed buffers a dual
// contouring pass reads and writes: sample values on cell corners, edge
// intersections along cell edges, and solved vertices inside cells.
//
// All three buffers are reallocated only when the subdivision count changes; within a
// single Generate call they are reused in place, matching the original C
// generator's realloc-on-resize discipline.
package meshgrid

import "gonum.org/v1/gonum/spatial/r3"

// EdgeKind classifies whether and how an edge crosses the threshold.
type EdgeKind int

const (
	// EdgeNone indicates the edge does not cross the threshold.
	EdgeNone EdgeKind = iota
	// EdgePositive indicates the edge crosses from below to above the
	// threshold in the direction of increasing coordinate.
	EdgePositive
	// EdgeNegative indicates the edge crosses from above to below the
	// threshold in the direction of increasing coordinate.
	EdgeNegative
)

// Edge holds the resolved intersection point and normal for one grid edge,
// plus whether (and how) it crosses the threshold.
type Edge struct {
	Kind   EdgeKind
	Pos    r3.Vec
	Normal r3.Vec
}

// Dir names one of the three axis-aligned edge directions leaving a sample
// corner.
type Dir int

const (
	DirX Dir = iota
	DirY
	DirZ
)

// Grid owns the sample, edge, and vertex buffers for one generator run.
// Subdivisions is the number of cells along each axis; buffers are sized for
// Subdivisions+1 sample corners per axis (Samples, Edges) or Subdivisions
// cells per axis (Vertices).
type Grid struct {
	Subdivisions int
	Samples      []float64
	Edges        []Edge
	Vertices     []r3.Vec
}

// NewGrid allocates a Grid for the given subdivision count.
func NewGrid(subdivisions int) *Grid {
	g := &Grid{}
	g.Resize(subdivisions)
	return g
}

// Resize reallocates the three buffers for a new subdivision count. It is a
// no-op if subdivisions is unchanged, mirroring setGeneratorSize's early
// return.
func (g *Grid) Resize(subdivisions int) {
	if subdivisions == g.Subdivisions && g.Samples != nil {
		return
	}
	g.Subdivisions = subdivisions
	sampleSide := subdivisions + 1
	sampleCount := sampleSide * sampleSide * sampleSide
	g.Samples = make([]float64, sampleCount)
	g.Edges = make([]Edge, sampleCount*3)
	vertexCount := subdivisions * subdivisions * subdivisions
	g.Vertices = make([]r3.Vec, vertexCount)
}

// SampleIndex maps a sample-grid coordinate to its flat index. x, y, z each
// range over [0, Subdivisions].
func (g *Grid) SampleIndex(x, y, z int) int {
	stride := g.Subdivisions + 1
	return (z*stride+y)*stride + x
}

// EdgeIndex maps an edge-grid coordinate and direction to its flat index.
func (g *Grid) EdgeIndex(x, y, z int, dir Dir) int {
	stride := g.Subdivisions + 1
	return ((z*stride+y)*stride+x)*3 + int(dir)
}

// VertexIndex maps a cell coordinate to its flat index. x, y, z each range
// over [0, Subdivisions).
func (g *Grid) VertexIndex(x, y, z int) int {
	stride := g.Subdivisions
	return (z*stride+y)*stride + x
}

// ClearEdges resets every edge's Kind to EdgeNone, preparing the buffer for
// a fresh edge-resolution pass without reallocating it.
func (g *Grid) ClearEdges() {
	for i := range g.Edges {
		g.Edges[i].Kind = EdgeNone
	}
}
