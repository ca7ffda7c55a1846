// Package noise implements a deterministic 3-D gradient noise function for
// the expression evaluator's `noise(x, y, z)` token.
//
// The implementation follows the classic Perlin/simplex gradient-noise
// shape (a fixed permutation table plus per-lattice-corner gradient dot
// products with a quintic falloff), adapted to float64 from the retrieved
// fixed-point reference so it composes directly with the evaluator's
// float64 stack. There is no package-level mutable state: perm is a
// read-only table, never written after init, so repeated calls with the
// same point always return the same value.
package noise

import "math"

// perm is Ken Perlin's reference permutation table, duplicated so indices
// can be taken modulo 256 without a second bounds check.
var perm = [512]int{}

func init() {
	base := [256]int{
		151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
		140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
		247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
		57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
		74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
		60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
		65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
		200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
		52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
		207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
		119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
		129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
		218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
		81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
		184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
		222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
	}
	for i := 0; i < 512; i++ {
		perm[i] = base[i&255]
	}
}

// fade is the quintic smoothing polynomial 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad computes the dot product of a pseudo-random gradient vector (chosen
// by the low bits of hash) with (x, y, z).
func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	var u float64
	if h < 8 {
		u = x
	} else {
		u = y
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}
	result := 0.0
	if h&1 == 0 {
		result += u
	} else {
		result -= u
	}
	if h&2 == 0 {
		result += v
	} else {
		result -= v
	}
	return result
}

// Noise3 returns a deterministic 3-D gradient noise value in approximately
// [-1, 1] for the point (x, y, z). Equal inputs always produce equal
// outputs, across calls and across process runs, since perm is fixed at
// init and never mutated.
func Noise3(x, y, z float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	zi := int(math.Floor(z)) & 255

	xf := x - math.Floor(x)
	yf := y - math.Floor(y)
	zf := z - math.Floor(z)

	u := fade(xf)
	v := fade(yf)
	w := fade(zf)

	a := perm[xi] + yi
	aa := perm[a] + zi
	ab := perm[a+1] + zi
	b := perm[xi+1] + yi
	ba := perm[b] + zi
	bb := perm[b+1] + zi

	return lerp(w,
		lerp(v,
			lerp(u, grad(perm[aa], xf, yf, zf), grad(perm[ba], xf-1, yf, zf)),
			lerp(u, grad(perm[ab], xf, yf-1, zf), grad(perm[bb], xf-1, yf-1, zf)),
		),
		lerp(v,
			lerp(u, grad(perm[aa+1], xf, yf, zf-1), grad(perm[ba+1], xf-1, yf, zf-1)),
			lerp(u, grad(perm[ab+1], xf, yf-1, zf-1), grad(perm[bb+1], xf-1, yf-1, zf-1)),
		),
	)
}
