// SPDX-License-Identifier: MIT
package contour

import (
	"github.com/katalvlaran/isomesher/exprlang"
	"github.com/katalvlaran/isomesher/isomesh"
	"github.com/katalvlaran/isomesher/meshgrid"
	"github.com/katalvlaran/isomesher/token"
	"gonum.org/v1/gonum/spatial/r3"
)

// vecDelta is the finite-difference step used for gradient estimation, both
// for edge normals and for vertex-error descent directions.
const vecDelta = 0.01

// stepSize scales each gradient-descent step applied to a cell's solved
// vertex.
const stepSize = 0.3

// massBias weights a vertex's squared distance to its cell's mass point
// against the quadratic plane-fit error in vertexError.
const massBias = 0.1

// minMoveFrac sets the fraction of a cell's diagonal length below which a
// descent step is considered converged.
const minMoveFrac = 1.0 / 20.0

// zeroTolerance is the |value - threshold| below which generateOneEdge
// accepts a bisection candidate as the intersection point.
const zeroTolerance = 0.001

// maxDescentIterations bounds generateOneVertex's gradient-descent loop.
const maxDescentIterations = 10

// maxBisectionIterations bounds generateOneEdge's interval-refinement loop.
const maxBisectionIterations = 5

// bisectionRangeFloor stops refining an edge's bracket once its shrunk
// fraction falls below this value.
const bisectionRangeFloor = 0.01

// Window is the axis-aligned box in field space that the sample grid spans.
type Window struct {
	Min, Max r3.Vec
}

// Generator owns the grid buffers and configuration for one dual contouring
// run. Its zero value is not ready to use; call New.
type Generator struct {
	grid         *meshgrid.Grid
	window       Window
	sdf          []token.Token
	threshold    float64
	subdivisions int
}

// New returns a Generator with no subdivisions configured; call
// SetSubdivisions before Generate.
func New() *Generator {
	return &Generator{grid: meshgrid.NewGrid(0)}
}

// SetSubdivisions sets the number of cells per axis, reallocating the grid
// buffers if the count has changed.
func (g *Generator) SetSubdivisions(n int) {
	g.subdivisions = n
	g.grid.Resize(n)
}

// SetWindow sets the field-space box the sample grid spans.
func (g *Generator) SetWindow(min, max r3.Vec) {
	g.window = Window{Min: min, Max: max}
}

// SetSDF sets the postfix token sequence Generate evaluates at each sample
// point. tokens must already be exprlang.Validate-accepted.
func (g *Generator) SetSDF(tokens []token.Token) {
	g.sdf = tokens
}

// SetThreshold sets the scalar field value that defines the surface.
func (g *Generator) SetThreshold(tau float64) {
	g.threshold = tau
}

func (g *Generator) eval(p r3.Vec) float64 {
	return exprlang.Eval(g.sdf, p)
}

// Generate runs all four phases and appends the resulting quads to mesh,
// clearing it first. invertNormals flips both the emitted winding and the
// per-corner normals, producing an inside-out mesh.
func (g *Generator) Generate(mesh isomesh.Appender, invertNormals bool) error {
	if g.subdivisions <= 0 {
		return ErrZeroSubdivisions
	}
	if g.sdf == nil {
		return ErrNoSDF
	}

	g.generateSamples()
	g.generateEdges()
	g.generateVertices()

	mesh.Clear()
	g.generateFaces(mesh, invertNormals)
	return nil
}
