// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_data01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("data01. modal series")

	ser := &ModalSeries{
		Time:  []float64{0, 1, 2},
		Coord: [][]float64{{1, 0}, {2, 1}, {3, 2}},
	}
	if err := ser.Check(); err != nil {
		tst.Errorf("check failed: %v\n", err)
		return
	}
	chk.Ints(tst, "dims", []int{ser.Ntime(), ser.Nmodes()}, []int{3, 2})

	q := make([]float64, 2)
	if err := ser.CoordAt(0.5, q); err != nil {
		tst.Errorf("interpolation failed: %v\n", err)
		return
	}
	chk.Vector(tst, "q(0.5)", 1e-15, q, []float64{1.5, 0.5})

	if err := ser.CoordAt(2.0, q); err != nil {
		tst.Errorf("interpolation at last station failed: %v\n", err)
		return
	}
	chk.Vector(tst, "q(2)", 1e-15, q, []float64{3, 2})

	if err := ser.CoordAt(2.5, q); err == nil {
		tst.Errorf("out-of-range time: error should have occurred\n")
		return
	}

	bad := &ModalSeries{Time: []float64{0, 1, 1}, Coord: [][]float64{{1}, {2}, {3}}}
	if err := bad.Check(); err == nil {
		tst.Errorf("non-increasing time: error should have occurred\n")
		return
	}

	bad = &ModalSeries{Time: []float64{0, 1}, Coord: [][]float64{{1, 2}, {3}}}
	if err := bad.Check(); err == nil {
		tst.Errorf("ragged coordinates: error should have occurred\n")
		return
	}

	bad = &ModalSeries{Time: []float64{0}, Coord: [][]float64{{1}}}
	if err := bad.Check(); err == nil {
		tst.Errorf("single station: error should have occurred\n")
	}
}

func Test_data02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("data02. dataset consistency")

	ser := &ModalSeries{
		Time:  []float64{0, 1},
		Coord: [][]float64{{1, 0}, {0, 1}},
	}
	str := &StressShape{
		Nods: []int{10, 20},
		SX:   [][]float64{{1, 0}, {0, 1}},
		SY:   [][]float64{{0, 0}, {0, 0}},
		SZ:   [][]float64{{0, 0}, {0, 0}},
		SXY:  [][]float64{{0, 0}, {0, 0}},
		SYZ:  [][]float64{{0, 0}, {0, 0}},
		SXZ:  [][]float64{{0, 0}, {0, 0}},
	}
	dat := &Dataset{Series: ser, Stress: str}
	if err := dat.Check(); err != nil {
		tst.Errorf("check failed: %v\n", err)
		return
	}
	chk.Ints(tst, "nods", dat.Nods(), []int{10, 20})
	chk.Ints(tst, "nnodes", []int{dat.Nnodes()}, []int{2})

	// steady-state with reordered node ids must be rejected
	dat.Steady = &SteadyState{
		Nods: []int{20, 10},
		SX:   []float64{1, 2}, SY: []float64{0, 0}, SZ: []float64{0, 0},
		SXY: []float64{0, 0}, SYZ: []float64{0, 0}, SXZ: []float64{0, 0},
	}
	if err := dat.Check(); err == nil {
		tst.Errorf("reordered steady-state ids: error should have occurred\n")
		return
	}
	io.Pf("ok: %v\n", dat.Check())
	dat.Steady.Nods = []int{10, 20}
	if err := dat.Check(); err != nil {
		tst.Errorf("check failed after fixing ids: %v\n", err)
		return
	}

	// temperature field with wrong length must be rejected
	dat.Temp = &TempField{Nods: []int{10, 20}, T: []float64{25}}
	if err := dat.Check(); err == nil {
		tst.Errorf("short temperature field: error should have occurred\n")
		return
	}
	dat.Temp = &TempField{Nods: []int{10, 20}, T: []float64{25, 30}}
	if err := dat.Check(); err != nil {
		tst.Errorf("check failed with temperatures: %v\n", err)
		return
	}

	// no shape field at all
	empty := &Dataset{Series: ser}
	if err := empty.Check(); err == nil {
		tst.Errorf("dataset without shape fields: error should have occurred\n")
	}
}
