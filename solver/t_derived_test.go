// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_vm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vm01. von Mises stress")

	// uniaxial
	chk.Scalar(tst, "uniaxial", 1e-12, vonMises(100, 0, 0, 0, 0, 0), 100)

	// pure shear
	chk.Scalar(tst, "shear", 1e-12, vonMises(0, 0, 0, 50, 0, 0), 50*math.Sqrt(3))

	// hydrostatic state carries no deviatoric stress
	chk.Scalar(tst, "hydrostatic", 1e-12, vonMises(70, 70, 70, 0, 0, 0), 0)

	// equibiaxial
	chk.Scalar(tst, "equibiaxial", 1e-12, vonMises(100, 100, 0, 0, 0, 0), 100)
}

func Test_princ01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("princ01. principal stresses")

	// already diagonal
	s1, s2, s3 := principal3(3, 1, 2, 0, 0, 0)
	chk.Vector(tst, "diagonal", 1e-12, []float64{s1, s2, s3}, []float64{3, 2, 1})

	// uniaxial
	s1, s2, s3 = principal3(100, 0, 0, 0, 0, 0)
	chk.Vector(tst, "uniaxial", 1e-10, []float64{s1, s2, s3}, []float64{100, 0, 0})

	// pure shear rotates to ±τ
	s1, s2, s3 = principal3(0, 0, 0, 50, 0, 0)
	chk.Vector(tst, "shear", 1e-10, []float64{s1, s2, s3}, []float64{50, 0, -50})

	// isotropic
	s1, s2, s3 = principal3(7, 7, 7, 0, 0, 0)
	chk.Vector(tst, "isotropic", 1e-12, []float64{s1, s2, s3}, []float64{7, 7, 7})

	// invariants survive the transformation
	sx, sy, sz, sxy, syz, sxz := 12.0, -3.0, 8.0, 4.0, -5.0, 2.0
	s1, s2, s3 = principal3(sx, sy, sz, sxy, syz, sxz)
	io.Pforan("principals = %v %v %v\n", s1, s2, s3)
	if !(s1 >= s2 && s2 >= s3) {
		tst.Errorf("principal stresses must be ordered\n")
		return
	}
	chk.Scalar(tst, "trace", 1e-10, s1+s2+s3, sx+sy+sz)
	det := sx*(sy*sz-syz*syz) - sxy*(sxy*sz-syz*sxz) + sxz*(sxy*syz-sy*sxz)
	chk.Scalar(tst, "det", 1e-8, s1*s2*s3, det)
}

func Test_princ02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("princ02. repeated eigenvalues")

	// uniaxial tension: two roots coincide at zero
	s1, s2, s3 := principal3(200, 0, 0, 0, 0, 0)
	chk.Vector(tst, "uniaxial 200", 1e-10, []float64{s1, s2, s3}, []float64{200, 0, 0})

	s1, s2, s3 = principal3(100, 0, 0, 0, 0, 0)
	chk.Vector(tst, "uniaxial 100", 1e-10, []float64{s1, s2, s3}, []float64{100, 0, 0})

	// uniaxial compression: the repeated pair sits on top
	s1, s2, s3 = principal3(-150, 0, 0, 0, 0, 0)
	chk.Vector(tst, "compression", 1e-10, []float64{s1, s2, s3}, []float64{0, 0, -150})

	// equibiaxial: repeated maximum
	s1, s2, s3 = principal3(100, 100, 0, 0, 0, 0)
	chk.Vector(tst, "equibiaxial", 1e-10, []float64{s1, s2, s3}, []float64{100, 100, 0})

	// already diagonal with an exact pair
	s1, s2, s3 = principal3(1, 1, 4, 0, 0, 0)
	chk.Vector(tst, "diagonal pair", 1e-10, []float64{s1, s2, s3}, []float64{4, 1, 1})

	// hydrostatic offset keeps the pair exact
	s1, s2, s3 = principal3(210, 10, 10, 0, 0, 0)
	chk.Vector(tst, "shifted uniaxial", 1e-10, []float64{s1, s2, s3}, []float64{210, 10, 10})
}

func Test_fd01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fd01. finite differences on a non-uniform grid")

	t := []float64{0, 0.1, 0.3, 0.6}
	y := make([]float64, 4)
	dy := make([]float64, 4)

	// linear: exact everywhere including the one-sided ends
	for i, ti := range t {
		y[i] = 2.0*ti + 1.0
	}
	fdDeriv(t, y, dy)
	chk.Vector(tst, "linear", 1e-12, dy, []float64{2, 2, 2, 2})

	// quadratic: the three-point interior stencil is exact
	for i, ti := range t {
		y[i] = ti * ti
	}
	fdDeriv(t, y, dy)
	chk.Scalar(tst, "quad interior 1", 1e-12, dy[1], 0.2)
	chk.Scalar(tst, "quad interior 2", 1e-12, dy[2], 0.6)

	// the ends fall back to first order
	chk.Scalar(tst, "quad first", 1e-12, dy[0], 0.1)
	chk.Scalar(tst, "quad last", 1e-12, dy[3], 0.9)
}

func Test_bk01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bk01. cpu backend in both precisions")

	a64 := [][]float64{{1, 2, 3}, {4, 5, 6}}
	b64 := [][]float64{{7, 8}, {9, 10}, {11, 12}}
	c64 := [][]float64{{0, 0}, {0, 0}}

	bk64, err := NewBackend[float64]("cpu")
	if err != nil {
		tst.Errorf("backend construction failed: %v\n", err)
		return
	}
	bk64.Mul(c64, a64, b64)
	chk.Vector(tst, "c64 row0", 1e-14, c64[0], []float64{58, 64})
	chk.Vector(tst, "c64 row1", 1e-14, c64[1], []float64{139, 154})

	a32 := [][]float32{{1, 2, 3}, {4, 5, 6}}
	b32 := [][]float32{{7, 8}, {9, 10}, {11, 12}}
	c32 := [][]float32{{0, 0}, {0, 0}}

	bk32, err := NewBackend[float32]("cpu")
	if err != nil {
		tst.Errorf("backend construction failed: %v\n", err)
		return
	}
	bk32.Mul(c32, a32, b32)
	for i := range c32 {
		for j := range c32[i] {
			chk.Scalar(tst, io.Sf("c32[%d][%d]", i, j), 1e-5, float64(c32[i][j]), c64[i][j])
		}
	}

	// unknown and unavailable backends
	if _, err := NewBackend[float64]("tpu"); err == nil {
		tst.Errorf("unknown backend: error should have occurred\n")
		return
	}
	if _, err := NewBackend[float64]("gpu"); err == nil {
		tst.Errorf("gpu backend without cuda: error should have occurred\n")
	}
}
