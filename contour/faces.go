// SPDX-License-Identifier: MIT
package contour

import (
	"github.com/katalvlaran/isomesher/isomesh"
	"github.com/katalvlaran/isomesher/meshgrid"
)

// quadCorners returns the four cell coordinates of the quad bordering the
// edge at (x, y, z) in direction dir, in winding order for a positive
// (field increasing along dir) crossing.
func quadCorners(x, y, z int, dir meshgrid.Dir) (a, b, c, d [3]int) {
	switch dir {
	case meshgrid.DirX:
		return [3]int{x, y - 1, z - 1}, [3]int{x, y, z - 1}, [3]int{x, y, z}, [3]int{x, y - 1, z}
	case meshgrid.DirY:
		return [3]int{x - 1, y, z - 1}, [3]int{x - 1, y, z}, [3]int{x, y, z}, [3]int{x, y, z - 1}
	default:
		return [3]int{x - 1, y - 1, z}, [3]int{x, y - 1, z}, [3]int{x, y, z}, [3]int{x - 1, y, z}
	}
}

// generateFaces walks every interior edge's resolved crossing and emits the
// quad bordering it into mesh, swapping winding for a negative crossing so
// the quad always faces from below the threshold to above it (before any
// invertNormals flip).
func (g *Generator) generateFaces(mesh isomesh.Appender, invertNormals bool) {
	side := g.subdivisions
	for z := 0; z < side; z++ {
		for y := 0; y < side; y++ {
			for x := 0; x < side; x++ {
				g.emitFacesAt(mesh, x, y, z, invertNormals)
			}
		}
	}
}

func (g *Generator) emitFacesAt(mesh isomesh.Appender, x, y, z int, invertNormals bool) {
	for _, dir := range [3]meshgrid.Dir{meshgrid.DirX, meshgrid.DirY, meshgrid.DirZ} {
		edge := g.grid.Edges[g.grid.EdgeIndex(x, y, z, dir)]
		if edge.Kind == meshgrid.EdgeNone {
			continue
		}
		a, b, c, d := quadCorners(x, y, z, dir)
		if edge.Kind == meshgrid.EdgeNegative {
			b, d = d, b
		}
		mesh.AddQuad(
			g.grid.Vertices[g.grid.VertexIndex(a[0], a[1], a[2])],
			g.grid.Vertices[g.grid.VertexIndex(b[0], b[1], b[2])],
			g.grid.Vertices[g.grid.VertexIndex(c[0], c[1], c[2])],
			g.grid.Vertices[g.grid.VertexIndex(d[0], d[1], d[2])],
			invertNormals,
		)
	}
}
