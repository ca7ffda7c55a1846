// SPDX-License-Identifier: MIT
package contour

import "gonum.org/v1/gonum/spatial/r3"

// sampleVector maps a sample-grid coordinate (x, y, z in [0, subdivisions])
// to its position inside the window.
func (g *Generator) sampleVector(x, y, z int) r3.Vec {
	n := float64(g.subdivisions)
	unit := r3.Vec{X: float64(x) / n, Y: float64(y) / n, Z: float64(z) / n}
	extent := r3.Sub(g.window.Max, g.window.Min)
	return r3.Add(g.window.Min, r3.Vec{X: unit.X * extent.X, Y: unit.Y * extent.Y, Z: unit.Z * extent.Z})
}

// generateSamples evaluates the SDF at every sample-grid corner.
func (g *Generator) generateSamples() {
	side := g.subdivisions + 1
	for z := 0; z < side; z++ {
		for y := 0; y < side; y++ {
			for x := 0; x < side; x++ {
				p := g.sampleVector(x, y, z)
				g.grid.Samples[g.grid.SampleIndex(x, y, z)] = g.eval(p)
			}
		}
	}
}
