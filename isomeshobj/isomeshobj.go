// SPDX-License-Identifier: MIT

// Package isomeshobj writes a *isomesh.TriMesh out as a Wavefront OBJ file.
// It carries no meshing logic of its own; it is a thin convenience over
// isomesh.TriMesh's vertex buffer layout (six vertices per quad, two
// triangles, with the third and fourth corners shared).
package isomeshobj

import (
	"fmt"
	"io"

	"github.com/katalvlaran/isomesher/isomesh"
)

// Write emits m as Wavefront OBJ text to w: one `v` record per unique quad
// corner and one `f` record per quad, reconstructed from the six-vertices-
// per-quad layout AddQuad produces (vertices 0, 1, 5, 2 of every run of six
// are the quad's four distinct corners, in winding order).
func Write(w io.Writer, m *isomesh.TriMesh) error {
	vertices := m.Vertices()
	if len(vertices)%6 != 0 {
		return fmt.Errorf("isomeshobj: vertex buffer length %d is not a multiple of 6", len(vertices))
	}

	index := 1
	for i := 0; i+5 < len(vertices); i += 6 {
		corners := [4]int{i, i + 1, i + 5, i + 2}
		for _, c := range corners {
			p := vertices[c].Pos
			if _, err := fmt.Fprintf(w, "v %f %f %f\n", p.X, p.Y, p.Z); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "f"); err != nil {
			return err
		}
		for j := 0; j < 4; j++ {
			if _, err := fmt.Fprintf(w, " %d", index); err != nil {
				return err
			}
			index++
		}
		if _, err := fmt.Fprint(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
