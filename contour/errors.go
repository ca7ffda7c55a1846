// SPDX-License-Identifier: MIT
package contour

import "errors"

// ErrZeroSubdivisions is returned by Generate when SetSubdivisions has never
// been called with a positive count.
var ErrZeroSubdivisions = errors.New("contour: subdivisions must be set to a positive value before Generate")

// ErrNoSDF is returned by Generate when SetSDF has never been called.
var ErrNoSDF = errors.New("contour: an SDF expression must be set before Generate")
