// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/isomesher/contour"
	"github.com/katalvlaran/isomesher/exprlang"
	"github.com/katalvlaran/isomesher/isomesh"
	"github.com/katalvlaran/isomesher/isomeshobj"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
)

// options holds the flag values bound to the root command.
type options struct {
	expr          string
	threshold     float64
	subdivisions  int
	min           []float64
	max           []float64
	invertNormals bool
	outPath       string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "isomesher",
		Short: "Generate a mesh from an implicit-surface expression",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.expr, "expr", "", "scalar-field expression, e.g. x^2+y^2+z^2 (required)")
	flags.Float64Var(&opts.threshold, "threshold", 0, "surface threshold value")
	flags.IntVar(&opts.subdivisions, "subdivisions", 32, "number of cells per axis")
	flags.Float64SliceVar(&opts.min, "min", []float64{-1, -1, -1}, "window minimum corner, as x,y,z")
	flags.Float64SliceVar(&opts.max, "max", []float64{1, 1, 1}, "window maximum corner, as x,y,z")
	flags.BoolVar(&opts.invertNormals, "invert-normals", false, "invert the emitted mesh's winding and normals")
	flags.StringVar(&opts.outPath, "out", "out.obj", "output OBJ file path")
	_ = cmd.MarkFlagRequired("expr")

	return cmd
}

func vecFromSlice(v []float64, name string) (r3.Vec, error) {
	if len(v) != 3 {
		return r3.Vec{}, fmt.Errorf("isomesher: --%s requires exactly 3 components, got %d", name, len(v))
	}
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}

func run(opts *options) error {
	tokens, err := exprlang.Parse(opts.expr, 256)
	if err != nil {
		return fmt.Errorf("isomesher: %w", err)
	}
	if err := exprlang.Validate(tokens); err != nil {
		return fmt.Errorf("isomesher: %w", err)
	}

	min, err := vecFromSlice(opts.min, "min")
	if err != nil {
		return err
	}
	max, err := vecFromSlice(opts.max, "max")
	if err != nil {
		return err
	}

	gen := contour.New()
	gen.SetSubdivisions(opts.subdivisions)
	gen.SetWindow(min, max)
	gen.SetSDF(tokens)
	gen.SetThreshold(opts.threshold)

	mesh := isomesh.NewTriMesh()
	if err := gen.Generate(mesh, opts.invertNormals); err != nil {
		return fmt.Errorf("isomesher: %w", err)
	}

	out, err := os.Create(opts.outPath)
	if err != nil {
		return fmt.Errorf("isomesher: %w", err)
	}
	defer out.Close()

	if err := isomeshobj.Write(out, mesh); err != nil {
		return fmt.Errorf("isomesher: %w", err)
	}
	return nil
}
