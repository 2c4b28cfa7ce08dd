// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"
)

// vonMises computes the equivalent stress from the six Voigt components
// {σxx, σyy, σzz, σxy, σyz, σxz}. Non-negative by construction
func vonMises(sx, sy, sz, sxy, syz, sxz float64) float64 {
	return math.Sqrt(0.5*((sx-sy)*(sx-sy)+(sy-sz)*(sy-sz)+(sz-sx)*(sz-sx)) +
		3.0*(sxy*sxy+syz*syz+sxz*sxz))
}

// degenTol detects a pair of (numerically) repeated eigenvalues; acos is
// ill-conditioned at ±1, so those cases take the exact two-equal-root branch
const degenTol = 1e-12

// principal3 computes the ordered eigenvalues σ1 ≥ σ2 ≥ σ3 of the symmetric
// stress tensor via the invariant (trigonometric) closed form
func principal3(sx, sy, sz, sxy, syz, sxz float64) (s1, s2, s3 float64) {
	p := (sx + sy + sz) / 3.0
	bx, by, bz := sx-p, sy-p, sz-p
	j2 := 0.5*(bx*bx+by*by+bz*bz) + sxy*sxy + syz*syz + sxz*sxz
	if j2 <= 0 {
		return p, p, p
	}
	j3 := bx*(by*bz-syz*syz) - sxy*(sxy*bz-syz*sxz) + sxz*(sxy*syz-by*sxz)
	q := math.Sqrt(j2 / 3.0)
	arg := j3 / (2.0 * q * q * q)
	if arg > 1.0-degenTol {
		return p + 2.0*q, p - q, p - q
	}
	if arg < -1.0+degenTol {
		return p + q, p + q, p - 2.0*q
	}
	θ := math.Acos(arg) / 3.0
	s1 = p + 2.0*q*math.Cos(θ)
	s2 = p + 2.0*q*math.Cos(θ-2.0*math.Pi/3.0)
	s3 = p + 2.0*q*math.Cos(θ-4.0*math.Pi/3.0)
	if s2 < s3 {
		s2, s3 = s3, s2
	}
	if s1 < s2 {
		s1, s2 = s2, s1
	}
	if s2 < s3 {
		s2, s3 = s3, s2
	}
	return
}

// fdDeriv computes dy/dt on the (possibly non-uniform) grid t: three-point
// central differences in the interior, first-order forward at the first
// sample and backward at the last
func fdDeriv(t, y, dy []float64) {
	n := len(t)
	dy[0] = (y[1] - y[0]) / (t[1] - t[0])
	dy[n-1] = (y[n-1] - y[n-2]) / (t[n-1] - t[n-2])
	for i := 1; i < n-1; i++ {
		h1 := t[i] - t[i-1]
		h2 := t[i+1] - t[i]
		dy[i] = -h2/(h1*(h1+h2))*y[i-1] + (h2-h1)/(h1*h2)*y[i] + h1/(h2*(h1+h2))*y[i+1]
	}
}

// toF64 casts a working-precision series into a float64 buffer
func toF64[T Float](dst []float64, src []T) {
	for i, v := range src {
		dst[i] = float64(v)
	}
}

// allFinite scans a set of component histories for NaN/Inf over the first nb rows
func allFinite[T Float](comps [][][]T, nb int) bool {
	for _, m := range comps {
		for i := 0; i < nb; i++ {
			for _, v := range m[i] {
				f := float64(v)
				if math.IsNaN(f) || math.IsInf(f, 0) {
					return false
				}
			}
		}
	}
	return true
}
