// SPDX-License-Identifier: MIT

// Package contour implements dual contouring over a scalar field supplied
// as an exprlang postfix token sequence. A Generator owns three flat grid
// buffers (see meshgrid) and drives them through four phases per Generate
// call: sample every grid corner, resolve threshold-crossing edges with
// bisection-refined intersections and finite-difference normals, solve one
// vertex per interior cell with a mass-point-biased gradient descent, and
// finally walk the resolved edges emitting quads into an isomesh.Appender.
package contour
