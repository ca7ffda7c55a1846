package isomeshobj

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/isomesher/isomesh"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestWriteSingleQuad(t *testing.T) {
	m := isomesh.NewTriMesh()
	m.AddQuad(
		r3.Vec{X: 0, Y: 0, Z: 0},
		r3.Vec{X: 1, Y: 0, Z: 0},
		r3.Vec{X: 1, Y: 1, Z: 0},
		r3.Vec{X: 0, Y: 1, Z: 0},
		false,
	)
	var buf bytes.Buffer
	if err := Write(&buf, m); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5 (4 v + 1 f): %q", len(lines), buf.String())
	}
	for _, l := range lines[:4] {
		if !strings.HasPrefix(l, "v ") {
			t.Fatalf("line %q does not start with 'v '", l)
		}
	}
	if lines[4] != "f 1 2 3 4" {
		t.Fatalf("face line = %q, want %q", lines[4], "f 1 2 3 4")
	}
}

func TestWriteEmptyMeshProducesNoOutput(t *testing.T) {
	m := isomesh.NewTriMesh()
	var buf bytes.Buffer
	if err := Write(&buf, m); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("Write(empty mesh) produced %d bytes, want 0", buf.Len())
	}
}
