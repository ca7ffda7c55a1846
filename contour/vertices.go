// SPDX-License-Identifier: MIT
package contour

import (
	"github.com/katalvlaran/isomesher/meshgrid"
	"gonum.org/v1/gonum/spatial/r3"
)

// cell collects the resolved edge intersections bordering one grid cell,
// plus their mean position (the mass point used to bias the solved vertex
// toward the intersections' centroid when the plane-fit system is
// under-determined).
type cell struct {
	intersections []*meshgrid.Edge
	massPoint     r3.Vec
}

func (c *cell) push(e *meshgrid.Edge) {
	c.intersections = append(c.intersections, e)
}

func (c *cell) calculateMassPoint() {
	var sum r3.Vec
	for _, e := range c.intersections {
		sum = r3.Add(sum, e.Pos)
	}
	c.massPoint = r3.Scale(1/float64(len(c.intersections)), sum)
}

// vertexError scores how well point satisfies the cell's intersecting
// planes (one per edge, defined by the edge's position and normal) plus a
// mass-point bias term that pulls the solution toward the mass point
// when the plane system alone is under-determined.
func vertexError(point r3.Vec, c *cell) float64 {
	var faceError float64
	for _, e := range c.intersections {
		relative := r3.Sub(point, e.Pos)
		planeDistance := r3.Dot(relative, e.Normal)
		faceError += planeDistance * planeDistance
	}
	faceError /= float64(len(c.intersections))
	diff := r3.Sub(point, c.massPoint)
	massError := r3.Dot(diff, diff)
	return faceError + massError*massBias
}

// descentStep returns the negative finite-difference gradient of
// vertexError at point, scaled so that applying it with stepSize moves
// point downhill.
func descentStep(point r3.Vec, c *cell, delta float64) r3.Vec {
	value := vertexError(point, c)
	dx := vertexError(r3.Add(point, r3.Vec{X: delta}), c) - value
	dy := vertexError(r3.Add(point, r3.Vec{Y: delta}), c) - value
	dz := vertexError(r3.Add(point, r3.Vec{Z: delta}), c) - value
	return r3.Scale(-1/delta, r3.Vec{X: dx, Y: dy, Z: dz})
}

// cellEdgeIndices lists the twelve edges bordering the cell at (x, y, z),
// in the same order the original generator scans them.
func (g *Generator) cellEdgeIndices(x, y, z int) [12]int {
	gr := g.grid
	return [12]int{
		gr.EdgeIndex(x, y, z, meshgrid.DirX),
		gr.EdgeIndex(x, y, z+1, meshgrid.DirX),
		gr.EdgeIndex(x, y+1, z, meshgrid.DirX),
		gr.EdgeIndex(x, y+1, z+1, meshgrid.DirX),
		gr.EdgeIndex(x, y, z, meshgrid.DirY),
		gr.EdgeIndex(x, y, z+1, meshgrid.DirY),
		gr.EdgeIndex(x+1, y, z, meshgrid.DirY),
		gr.EdgeIndex(x+1, y, z+1, meshgrid.DirY),
		gr.EdgeIndex(x, y, z, meshgrid.DirZ),
		gr.EdgeIndex(x, y+1, z, meshgrid.DirZ),
		gr.EdgeIndex(x+1, y, z, meshgrid.DirZ),
		gr.EdgeIndex(x+1, y+1, z, meshgrid.DirZ),
	}
}

// generateOneVertex solves the vertex for the cell at (x, y, z), leaving the
// grid's vertex slot untouched if the cell has no intersecting edges.
func (g *Generator) generateOneVertex(x, y, z int, minMove float64) {
	indices := g.cellEdgeIndices(x, y, z)
	var c cell
	for _, idx := range indices {
		if g.grid.Edges[idx].Kind != meshgrid.EdgeNone {
			c.push(&g.grid.Edges[idx])
		}
	}
	if len(c.intersections) == 0 {
		return
	}
	c.calculateMassPoint()

	vertex := c.massPoint
	for iterations := 0; iterations < maxDescentIterations; iterations++ {
		step := descentStep(vertex, &c, vecDelta)
		vertex = r3.Add(vertex, r3.Scale(stepSize, step))
		if r3.Norm2(step) <= minMove*minMove {
			break
		}
	}
	g.grid.Vertices[g.grid.VertexIndex(x, y, z)] = vertex
}

// generateVertices solves one vertex per interior cell via mass-point-biased
// gradient descent, seeded at the cell's mass point.
func (g *Generator) generateVertices() {
	extent := r3.Sub(g.window.Max, g.window.Min)
	diagonalLength := r3.Norm(extent)
	cellDiagonalLength := diagonalLength / float64(g.subdivisions)
	minMove := cellDiagonalLength * minMoveFrac

	side := g.subdivisions
	for z := 0; z < side; z++ {
		for y := 0; y < side; y++ {
			for x := 0; x < side; x++ {
				g.generateOneVertex(x, y, z, minMove)
			}
		}
	}
}
