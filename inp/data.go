// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp holds the typed in-memory inputs of the modal-superposition
// engine: modal coordinate series, per-mode shape fields, steady-state bias,
// temperature field, and the solver configuration. Loaders (external to this
// module) construct these structures once; the engine only borrows them.
package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// ModalSeries holds the time discretisation and the modal coordinate matrix
// resulting from a transient modal solution
type ModalSeries struct {
	Time  []float64   // time stations [ntime]; strictly increasing
	Coord [][]float64 // modal coordinates [ntime][nmodes]
}

// Ntime returns the number of time stations
func (o *ModalSeries) Ntime() int { return len(o.Time) }

// Nmodes returns the number of modes
func (o *ModalSeries) Nmodes() int {
	if len(o.Coord) < 1 {
		return 0
	}
	return len(o.Coord[0])
}

// Check verifies shape consistency and that time is strictly increasing
func (o *ModalSeries) Check() (err error) {
	if len(o.Time) < 2 {
		return chk.Err("modal series needs at least two time stations; got %d", len(o.Time))
	}
	if len(o.Coord) != len(o.Time) {
		return chk.Err("coordinate matrix has %d rows but time vector has %d stations", len(o.Coord), len(o.Time))
	}
	nmod := len(o.Coord[0])
	if nmod < 1 {
		return chk.Err("coordinate matrix has no modes")
	}
	for i, row := range o.Coord {
		if len(row) != nmod {
			return chk.Err("coordinate matrix is not rectangular: row %d has %d entries instead of %d", i, len(row), nmod)
		}
	}
	for i := 1; i < len(o.Time); i++ {
		if !(o.Time[i] > o.Time[i-1]) {
			return chk.Err("time vector must be strictly increasing: t[%d]=%g ≤ t[%d]=%g", i, o.Time[i], i-1, o.Time[i-1])
		}
	}
	return
}

// CoordAt interpolates one row of modal coordinates at time t (linear in time).
// t must lie within [Time[0], Time[ntime-1]]
func (o *ModalSeries) CoordAt(t float64, q []float64) (err error) {
	n := len(o.Time)
	if t < o.Time[0] || t > o.Time[n-1] {
		return chk.Err("time %g is outside the series range [%g, %g]", t, o.Time[0], o.Time[n-1])
	}
	// find bracketing interval
	k := 0
	for k < n-2 && o.Time[k+1] < t {
		k++
	}
	w := (t - o.Time[k]) / (o.Time[k+1] - o.Time[k])
	for m := 0; m < len(q); m++ {
		q[m] = (1.0-w)*o.Coord[k][m] + w*o.Coord[k+1][m]
	}
	return
}

// StressShape holds per-node per-mode modal stress components [nnodes][nmodes]
type StressShape struct {
	Nods []int       // node ids [nnodes]; unique
	SX   [][]float64 // σxx per mode
	SY   [][]float64 // σyy per mode
	SZ   [][]float64 // σzz per mode
	SXY  [][]float64 // σxy per mode
	SYZ  [][]float64 // σyz per mode
	SXZ  [][]float64 // σxz per mode
}

// Nnodes returns the number of nodes
func (o *StressShape) Nnodes() int { return len(o.Nods) }

// Comp returns the i-th component matrix in Voigt order {xx, yy, zz, xy, yz, xz}
func (o *StressShape) Comp(i int) [][]float64 {
	switch i {
	case 0:
		return o.SX
	case 1:
		return o.SY
	case 2:
		return o.SZ
	case 3:
		return o.SXY
	case 4:
		return o.SYZ
	case 5:
		return o.SXZ
	}
	chk.Panic("stress component index %d is invalid", i)
	return nil
}

// Check verifies shape consistency against the number of modes
func (o *StressShape) Check(nmodes int) (err error) {
	nn := len(o.Nods)
	if nn < 1 {
		return chk.Err("stress shape field has no nodes")
	}
	for i := 0; i < 6; i++ {
		m := o.Comp(i)
		if len(m) != nn {
			return chk.Err("stress component %d has %d rows but there are %d node ids", i, len(m), nn)
		}
		for j, row := range m {
			if len(row) != nmodes {
				return chk.Err("stress component %d: node-row %d has %d modes instead of %d", i, j, len(row), nmodes)
			}
		}
	}
	return
}

// DeformShape holds per-node per-mode modal displacement components [nnodes][nmodes]
type DeformShape struct {
	Nods []int       // node ids [nnodes]
	UX   [][]float64 // ux per mode
	UY   [][]float64 // uy per mode
	UZ   [][]float64 // uz per mode
}

// Nnodes returns the number of nodes
func (o *DeformShape) Nnodes() int { return len(o.Nods) }

// Comp returns the i-th displacement component matrix {ux, uy, uz}
func (o *DeformShape) Comp(i int) [][]float64 {
	switch i {
	case 0:
		return o.UX
	case 1:
		return o.UY
	case 2:
		return o.UZ
	}
	chk.Panic("displacement component index %d is invalid", i)
	return nil
}

// Check verifies shape consistency against the number of modes
func (o *DeformShape) Check(nmodes int) (err error) {
	nn := len(o.Nods)
	if nn < 1 {
		return chk.Err("deformation shape field has no nodes")
	}
	for i := 0; i < 3; i++ {
		m := o.Comp(i)
		if len(m) != nn {
			return chk.Err("displacement component %d has %d rows but there are %d node ids", i, len(m), nn)
		}
		for j, row := range m {
			if len(row) != nmodes {
				return chk.Err("displacement component %d: node-row %d has %d modes instead of %d", i, j, len(row), nmodes)
			}
		}
	}
	return
}

// SteadyState holds the static (time-invariant) stress bias per node
type SteadyState struct {
	Nods []int     // node ids [nnodes]
	SX   []float64 // σxx
	SY   []float64 // σyy
	SZ   []float64 // σzz
	SXY  []float64 // σxy
	SYZ  []float64 // σyz
	SXZ  []float64 // σxz
}

// Comp returns the i-th component vector in Voigt order
func (o *SteadyState) Comp(i int) []float64 {
	switch i {
	case 0:
		return o.SX
	case 1:
		return o.SY
	case 2:
		return o.SZ
	case 3:
		return o.SXY
	case 4:
		return o.SYZ
	case 5:
		return o.SXZ
	}
	chk.Panic("steady-state component index %d is invalid", i)
	return nil
}

// Check verifies shape consistency
func (o *SteadyState) Check() (err error) {
	nn := len(o.Nods)
	for i := 0; i < 6; i++ {
		if len(o.Comp(i)) != nn {
			return chk.Err("steady-state component %d has %d entries but there are %d node ids", i, len(o.Comp(i)), nn)
		}
	}
	return
}

// TempField holds one scalar temperature per node, same ordering as the shape fields
type TempField struct {
	Nods []int     // node ids [nnodes]
	T    []float64 // temperature per node
}

// Check verifies shape consistency and that temperatures are finite
func (o *TempField) Check() (err error) {
	if len(o.T) != len(o.Nods) {
		return chk.Err("temperature field has %d values but %d node ids", len(o.T), len(o.Nods))
	}
	for i, t := range o.T {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return chk.Err("temperature at node-row %d (id=%d) is not finite", i, o.Nods[i])
		}
	}
	return
}

// Dataset groups all engine inputs. Stress, Deform, Steady and Temp are
// optional depending on the selected outputs; Series is always required
type Dataset struct {
	Series *ModalSeries // modal coordinates over time
	Stress *StressShape // modal stress shapes (stress-derived outputs)
	Deform *DeformShape // modal displacement shapes (kinematic outputs)
	Steady *SteadyState // static stress bias (optional)
	Temp   *TempField   // nodal temperatures (plasticity only)
}

// Nnodes returns the node count of whichever shape field is present
func (o *Dataset) Nnodes() int {
	if o.Stress != nil {
		return o.Stress.Nnodes()
	}
	if o.Deform != nil {
		return o.Deform.Nnodes()
	}
	return 0
}

// Nods returns the node-id list of whichever shape field is present
func (o *Dataset) Nods() []int {
	if o.Stress != nil {
		return o.Stress.Nods
	}
	if o.Deform != nil {
		return o.Deform.Nods
	}
	return nil
}

// Check validates the series, each supplied field, and that all fields agree
// on node count and ordering (exact elementwise id equality)
func (o *Dataset) Check() (err error) {
	if o.Series == nil {
		return chk.Err("modal series is missing")
	}
	if err = o.Series.Check(); err != nil {
		return
	}
	nmod := o.Series.Nmodes()
	if o.Stress == nil && o.Deform == nil {
		return chk.Err("at least one shape field (stress or deformation) is required")
	}
	var ref []int
	if o.Stress != nil {
		if err = o.Stress.Check(nmod); err != nil {
			return
		}
		ref = o.Stress.Nods
	}
	if o.Deform != nil {
		if err = o.Deform.Check(nmod); err != nil {
			return
		}
		if ref == nil {
			ref = o.Deform.Nods
		} else if err = sameNods("deformation", ref, o.Deform.Nods); err != nil {
			return
		}
	}
	if o.Steady != nil {
		if err = o.Steady.Check(); err != nil {
			return
		}
		if err = sameNods("steady-state", ref, o.Steady.Nods); err != nil {
			return
		}
	}
	if o.Temp != nil {
		if err = o.Temp.Check(); err != nil {
			return
		}
		if err = sameNods("temperature", ref, o.Temp.Nods); err != nil {
			return
		}
	}
	return
}

// sameNods compares two node-id lists elementwise
func sameNods(label string, ref, other []int) (err error) {
	if len(other) != len(ref) {
		return chk.Err("%s field has %d nodes but the reference shape field has %d", label, len(other), len(ref))
	}
	for i := range ref {
		if other[i] != ref[i] {
			return chk.Err("%s field node ordering differs at row %d: id=%d instead of %d", label, i, other[i], ref[i])
		}
	}
	return
}
