// SPDX-License-Identifier: MIT

// Command isomesher is a thin command-line wrapper over the contour
// generator: it parses a scalar-field expression, drives one Generate call,
// and writes the resulting mesh as Wavefront OBJ.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
