// SPDX-License-Identifier: MIT
package contour

import (
	"math"

	"github.com/katalvlaran/isomesher/meshgrid"
	"gonum.org/v1/gonum/spatial/r3"
)

// approxNormal estimates the SDF's gradient at pos via forward differences
// of step delta along each axis, then normalizes it.
func (g *Generator) approxNormal(pos r3.Vec, delta float64) r3.Vec {
	value := g.eval(pos)
	nx := g.eval(r3.Add(pos, r3.Vec{X: delta})) - value
	ny := g.eval(r3.Add(pos, r3.Vec{Y: delta})) - value
	nz := g.eval(r3.Add(pos, r3.Vec{Z: delta})) - value
	n := r3.Vec{X: nx, Y: ny, Z: nz}
	return r3.Unit(n)
}

// edgeEndpoints returns the two sample-grid coordinates an edge in
// direction dir connects, starting from (x, y, z).
func edgeEndpoints(x, y, z int, dir meshgrid.Dir) (bx, by, bz int) {
	switch dir {
	case meshgrid.DirX:
		return x + 1, y, z
	case meshgrid.DirY:
		return x, y + 1, z
	default:
		return x, y, z + 1
	}
}

// generateOneEdge resolves the threshold crossing along the edge at
// (x, y, z) in direction dir via bisection-style interval refinement, then
// records the intersection position and its estimated normal.
func (g *Generator) generateOneEdge(x, y, z int, dir meshgrid.Dir) {
	a := g.sampleVector(x, y, z)
	bx, by, bz := edgeEndpoints(x, y, z, dir)
	b := g.sampleVector(bx, by, bz)
	valueA := g.grid.Samples[g.grid.SampleIndex(x, y, z)]
	valueB := g.grid.Samples[g.grid.SampleIndex(bx, by, bz)]

	rangeFrac := 1.0
	iterations := 0
	for rangeFrac > bisectionRangeFloor && iterations < maxBisectionIterations {
		t := (g.threshold - valueA) / (valueB - valueA)
		interp := lerp(a, b, t)
		newValue := g.eval(interp)
		if math.Abs(newValue-g.threshold) < zeroTolerance {
			break
		}
		if (newValue > g.threshold) == (valueA > g.threshold) {
			valueA = newValue
			a = interp
			rangeFrac *= 1 - t
		} else {
			valueB = newValue
			b = interp
			rangeFrac *= t
		}
		iterations++
	}

	index := g.grid.EdgeIndex(x, y, z, dir)
	t := (g.threshold - valueA) / (valueB - valueA)
	pos := lerp(a, b, t)
	g.grid.Edges[index].Pos = pos
	g.grid.Edges[index].Normal = g.approxNormal(pos, vecDelta)
}

// checkEdgeIntersection reports whether the edge at (x, y, z) in direction
// dir crosses the threshold, recording its polarity (EdgePositive if the
// field increases along the edge, EdgeNegative if it decreases) when it
// does. A NaN sample compares false on both sides, so it never registers a
// crossing.
func (g *Generator) checkEdgeIntersection(x, y, z int, dir meshgrid.Dir) bool {
	bx, by, bz := edgeEndpoints(x, y, z, dir)
	valueA := g.grid.Samples[g.grid.SampleIndex(x, y, z)] - g.threshold
	valueB := g.grid.Samples[g.grid.SampleIndex(bx, by, bz)] - g.threshold

	isIntersection := (valueA > 0) != (valueB > 0)
	if isIntersection {
		index := g.grid.EdgeIndex(x, y, z, dir)
		if valueA > valueB {
			g.grid.Edges[index].Kind = meshgrid.EdgeNegative
		} else {
			g.grid.Edges[index].Kind = meshgrid.EdgePositive
		}
	}
	return isIntersection
}

// generateEdges resolves every interior edge's threshold crossing. Edges on
// the grid's outer boundary in the direction perpendicular to the edge are
// skipped: they belong to no interior cell and so never contribute a face.
func (g *Generator) generateEdges() {
	g.grid.ClearEdges()
	side := g.subdivisions
	for z := 0; z < side; z++ {
		for y := 0; y < side; y++ {
			for x := 0; x < side; x++ {
				if y > 0 && z > 0 && g.checkEdgeIntersection(x, y, z, meshgrid.DirX) {
					g.generateOneEdge(x, y, z, meshgrid.DirX)
				}
				if x > 0 && z > 0 && g.checkEdgeIntersection(x, y, z, meshgrid.DirY) {
					g.generateOneEdge(x, y, z, meshgrid.DirY)
				}
				if x > 0 && y > 0 && g.checkEdgeIntersection(x, y, z, meshgrid.DirZ) {
					g.generateOneEdge(x, y, z, meshgrid.DirZ)
				}
			}
		}
	}
}

func lerp(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}
