package contour

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomesher/exprlang"
	"github.com/katalvlaran/isomesher/isomesh"
	"github.com/katalvlaran/isomesher/meshgrid"
	"github.com/katalvlaran/isomesher/token"
	"gonum.org/v1/gonum/spatial/r3"
)

func mustSDF(t *testing.T, source string) []token.Token {
	t.Helper()
	tokens, err := exprlang.Parse(source, 64)
	require.NoError(t, err, "Parse(%q)", source)
	require.NoError(t, exprlang.Validate(tokens), "Validate(Parse(%q))", source)
	return tokens
}

func TestGenerateRequiresSubdivisionsAndSDF(t *testing.T) {
	g := New()
	mesh := isomesh.NewTriMesh()
	require.Error(t, g.Generate(mesh, false), "Generate with no subdivisions/SDF set")
	g.SetSubdivisions(4)
	require.Error(t, g.Generate(mesh, false), "Generate with no SDF set")
}

func TestGenerateEmptyFieldProducesNoGeometry(t *testing.T) {
	g := New()
	g.SetSubdivisions(4)
	g.SetWindow(r3.Vec{X: -1, Y: -1, Z: -1}, r3.Vec{X: 1, Y: 1, Z: 1})
	g.SetSDF(mustSDF(t, "1"))
	g.SetThreshold(0)

	mesh := isomesh.NewTriMesh()
	require.NoError(t, g.Generate(mesh, false))
	require.Empty(t, mesh.Vertices(), "constant field never crossing threshold")
}

func TestGenerateIsIdempotent(t *testing.T) {
	g := New()
	g.SetSubdivisions(6)
	g.SetWindow(r3.Vec{X: -1.5, Y: -1.5, Z: -1.5}, r3.Vec{X: 1.5, Y: 1.5, Z: 1.5})
	g.SetSDF(mustSDF(t, "x^2+y^2+z^2"))
	g.SetThreshold(1)

	meshA := isomesh.NewTriMesh()
	meshB := isomesh.NewTriMesh()
	require.NoError(t, g.Generate(meshA, false))
	require.NoError(t, g.Generate(meshB, false))

	va, vb := meshA.Vertices(), meshB.Vertices()
	require.Equal(t, len(va), len(vb), "Generate not idempotent across runs")
	for i := range va {
		require.Equal(t, va[i].Pos, vb[i].Pos, "vertex %d", i)
	}
}

func TestGenerateBoundarySphere(t *testing.T) {
	g := New()
	const n = 32
	g.SetSubdivisions(n)
	g.SetWindow(r3.Vec{X: -1.5, Y: -1.5, Z: -1.5}, r3.Vec{X: 1.5, Y: 1.5, Z: 1.5})
	g.SetSDF(mustSDF(t, "x^2+y^2+z^2"))
	g.SetThreshold(1)

	mesh := isomesh.NewTriMesh()
	require.NoError(t, g.Generate(mesh, false))
	vertices := mesh.Vertices()
	quadCount := len(vertices) / 6
	require.GreaterOrEqual(t, quadCount, 1000, "sphere quad count, N=%d", n)

	for i, v := range vertices {
		r := math.Sqrt(v.Pos.X*v.Pos.X + v.Pos.Y*v.Pos.Y + v.Pos.Z*v.Pos.Z)
		require.InDeltaf(t, 1.0, r, 0.15, "vertex %d radius %v, pos %v", i, r, v.Pos)
	}

	// Outward normals: each corner's normal should point away from the
	// origin, i.e. have a non-negative dot product with its own position.
	for i, v := range vertices {
		dot := v.Pos.X*v.Normal.X + v.Pos.Y*v.Normal.Y + v.Pos.Z*v.Normal.Z
		require.GreaterOrEqualf(t, dot, 0.0, "vertex %d normal %v points inward relative to position %v", i, v.Normal, v.Pos)
	}
}

func TestGenerateInvertNormalsProducesInwardNormals(t *testing.T) {
	g := New()
	g.SetSubdivisions(8)
	g.SetWindow(r3.Vec{X: -1.5, Y: -1.5, Z: -1.5}, r3.Vec{X: 1.5, Y: 1.5, Z: 1.5})
	g.SetSDF(mustSDF(t, "x^2+y^2+z^2"))
	g.SetThreshold(1)

	plain := isomesh.NewTriMesh()
	inverted := isomesh.NewTriMesh()
	require.NoError(t, g.Generate(plain, false))
	require.NoError(t, g.Generate(inverted, true))

	vp, vi := plain.Vertices(), inverted.Vertices()
	require.Equal(t, len(vp), len(vi))
	require.NotEmpty(t, vp)
	outwardCount, inwardCount := 0, 0
	for i := range vi {
		dot := vi[i].Pos.X*vi[i].Normal.X + vi[i].Pos.Y*vi[i].Normal.Y + vi[i].Pos.Z*vi[i].Normal.Z
		if dot >= 0 {
			outwardCount++
		} else {
			inwardCount++
		}
	}
	require.NotZerof(t, inwardCount, "invertNormals=true produced no inward-facing normals (outward=%d, inward=%d)", outwardCount, inwardCount)
}

func TestGenerateVertexPlacementConvergesOnPlanarField(t *testing.T) {
	g := New()
	g.SetSubdivisions(16)
	g.SetWindow(r3.Vec{X: -1, Y: -1, Z: -1}, r3.Vec{X: 1, Y: 1, Z: 1})
	g.SetSDF(mustSDF(t, "x"))
	g.SetThreshold(0)

	mesh := isomesh.NewTriMesh()
	require.NoError(t, g.Generate(mesh, false))
	vertices := mesh.Vertices()
	require.NotEmpty(t, vertices, "planar field x=0 produced no geometry")
	for i, v := range vertices {
		require.LessOrEqualf(t, math.Abs(v.Pos.X), 0.02, "vertex %d.X = %v, want |X| < 0.02 for the x=0 plane", i, v.Pos.X)
	}
}

// TestEdgeDirectionPolarity exercises spec §8's "edge-direction polarity"
// property directly on meshgrid.Edge.Kind, ahead of (and independent from)
// the face-emission assertions above: for the monotone field x with τ=0,
// every resolved edge must run along DirX, and Y/Z edges must never
// register an intersection since the field never varies along those axes.
func TestEdgeDirectionPolarity(t *testing.T) {
	g := New()
	g.SetSubdivisions(8)
	g.SetWindow(r3.Vec{X: -1, Y: -1, Z: -1}, r3.Vec{X: 1, Y: 1, Z: 1})
	g.SetSDF(mustSDF(t, "x"))
	g.SetThreshold(0)

	g.generateSamples()
	g.generateEdges()

	cases := []struct {
		dir  meshgrid.Dir
		name string
	}{
		{meshgrid.DirX, "DirX"},
		{meshgrid.DirY, "DirY"},
		{meshgrid.DirZ, "DirZ"},
	}

	side := g.subdivisions
	resolvedX := 0
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for z := 0; z <= side; z++ {
				for y := 0; y <= side; y++ {
					for x := 0; x <= side; x++ {
						kind := g.grid.Edges[g.grid.EdgeIndex(x, y, z, tc.dir)].Kind
						switch tc.dir {
						case meshgrid.DirX:
							require.NotEqualf(t, meshgrid.EdgeNegative, kind,
								"edge (%d,%d,%d) DirX must never be EdgeNegative for a monotone increasing field", x, y, z)
							if kind == meshgrid.EdgePositive {
								resolvedX++
							}
						default:
							require.Equalf(t, meshgrid.EdgeNone, kind,
								"edge (%d,%d,%d) %s must be EdgeNone: field x does not vary along this axis", x, y, z, tc.name)
						}
					}
				}
			}
		})
	}
	require.NotZero(t, resolvedX, "expected at least one resolved DirX edge crossing the x=0 threshold")
}
