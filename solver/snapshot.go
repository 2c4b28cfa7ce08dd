// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/msup/inp"
)

// Snapshot reconstructs one output kind over all nodes at time t. Snapshots
// are computed in double precision regardless of the engine precision; t may
// fall between time stations (linear interpolation of the modal coordinates).
// Damage is an aggregate over the whole history and has no snapshot
func (o *engine[T]) Snapshot(t float64, kind Output) (out []float64, err error) {
	switch kind {

	case VonMises, MaxPrinc, MinPrinc, CorrVM:
		if o.dat.Stress == nil {
			return nil, cfgErr("a %v snapshot needs the modal stress shape field", kind)
		}
		if kind == CorrVM && o.corr == nil {
			return nil, cfgErr("a corrvm snapshot needs plasticity correction to be enabled")
		}
		q := make([]float64, o.dat.Series.Nmodes())
		if err = o.dat.Series.CoordAt(t, q); err != nil {
			return nil, cfgErr("%v", err)
		}
		out = make([]float64, o.nnod)
		var σ [6]float64
		for i := 0; i < o.nnod; i++ {
			for c := 0; c < 6; c++ {
				σ[c] = la.VecDot(o.dat.Stress.Comp(c)[i][o.mlo:], q[o.mlo:])
				if o.cfg.UseSteady && o.dat.Steady != nil {
					σ[c] += o.dat.Steady.Comp(c)[i]
				}
			}
			switch kind {
			case VonMises, CorrVM:
				out[i] = vonMises(σ[0], σ[1], σ[2], σ[3], σ[4], σ[5])
			case MaxPrinc:
				out[i], _, _ = principal3(σ[0], σ[1], σ[2], σ[3], σ[4], σ[5])
			case MinPrinc:
				_, _, out[i] = principal3(σ[0], σ[1], σ[2], σ[3], σ[4], σ[5])
			}
		}
		if kind == CorrVM {
			σc := make([]float64, 1)
			εp := make([]float64, 1)
			for i := 0; i < o.nnod; i++ {
				o.corr.CorrectHistory(out[i:i+1], o.dat.Temp.T[i], σc, εp)
				out[i] = σc[0]
			}
		}
		return

	case Deform, Veloc, Accel:
		if o.dat.Deform == nil {
			return nil, cfgErr("a %v snapshot needs the modal displacement shape field", kind)
		}
		series := o.dat.Series
		if kind == Veloc {
			series = o.coordDeriv(1)
		}
		if kind == Accel {
			series = o.coordDeriv(2)
		}
		q := make([]float64, series.Nmodes())
		if err = series.CoordAt(t, q); err != nil {
			return nil, cfgErr("%v", err)
		}
		out = make([]float64, o.nnod)
		for i := 0; i < o.nnod; i++ {
			sum := 0.0
			for c := 0; c < 3; c++ {
				u := la.VecDot(o.dat.Deform.Comp(c)[i][o.mlo:], q[o.mlo:])
				sum += u * u
			}
			out[i] = math.Sqrt(sum)
		}
		return

	case Damage:
		return nil, cfgErr("damage is a whole-history aggregate and has no per-instant snapshot")
	}
	return nil, cfgErr("output kind %d is unknown", int(kind))
}

// coordDeriv differentiates every modal coordinate column order times on the
// time grid and wraps the result in a series sharing the original time vector
func (o *engine[T]) coordDeriv(order int) *inp.ModalSeries {
	time := o.dat.Series.Time
	nmod := o.dat.Series.Nmodes()
	y := make([]float64, o.ntim)
	dy := make([]float64, o.ntim)
	d := la.MatAlloc(o.ntim, nmod)
	for m := 0; m < nmod; m++ {
		for t := 0; t < o.ntim; t++ {
			y[t] = o.dat.Series.Coord[t][m]
		}
		for k := 0; k < order; k++ {
			fdDeriv(time, y, dy)
			copy(y, dy)
		}
		for t := 0; t < o.ntim; t++ {
			d[t][m] = y[t]
		}
	}
	return &inp.ModalSeries{Time: time, Coord: d}
}

// NodeHistory reconstructs the complete scalar time history of one output at
// the node with id nid, in double precision
func (o *engine[T]) NodeHistory(nid int, kind Output) (out []float64, err error) {
	row := -1
	for i, id := range o.dat.Nods() {
		if id == nid {
			row = i
			break
		}
	}
	if row < 0 {
		return nil, cfgErr("node id %d is not in the dataset", nid)
	}
	switch kind {

	case VonMises, MaxPrinc, MinPrinc, CorrVM:
		if o.dat.Stress == nil {
			return nil, cfgErr("a %v history needs the modal stress shape field", kind)
		}
		if kind == CorrVM && o.corr == nil {
			return nil, cfgErr("a corrvm history needs plasticity correction to be enabled")
		}
		σ := la.MatAlloc(6, o.ntim)
		for c := 0; c < 6; c++ {
			shape := o.dat.Stress.Comp(c)[row][o.mlo:]
			for t := 0; t < o.ntim; t++ {
				σ[c][t] = la.VecDot(shape, o.dat.Series.Coord[t][o.mlo:])
				if o.cfg.UseSteady && o.dat.Steady != nil {
					σ[c][t] += o.dat.Steady.Comp(c)[row]
				}
			}
		}
		out = make([]float64, o.ntim)
		for t := 0; t < o.ntim; t++ {
			switch kind {
			case VonMises, CorrVM:
				out[t] = vonMises(σ[0][t], σ[1][t], σ[2][t], σ[3][t], σ[4][t], σ[5][t])
			case MaxPrinc:
				out[t], _, _ = principal3(σ[0][t], σ[1][t], σ[2][t], σ[3][t], σ[4][t], σ[5][t])
			case MinPrinc:
				_, _, out[t] = principal3(σ[0][t], σ[1][t], σ[2][t], σ[3][t], σ[4][t], σ[5][t])
			}
		}
		if kind == CorrVM {
			σc := make([]float64, o.ntim)
			εp := make([]float64, o.ntim)
			o.corr.CorrectHistory(out, o.dat.Temp.T[row], σc, εp)
			copy(out, σc)
		}
		return

	case Deform, Veloc, Accel:
		if o.dat.Deform == nil {
			return nil, cfgErr("a %v history needs the modal displacement shape field", kind)
		}
		u := la.MatAlloc(3, o.ntim)
		du := make([]float64, o.ntim)
		for c := 0; c < 3; c++ {
			shape := o.dat.Deform.Comp(c)[row][o.mlo:]
			for t := 0; t < o.ntim; t++ {
				u[c][t] = la.VecDot(shape, o.dat.Series.Coord[t][o.mlo:])
			}
			order := 0
			if kind == Veloc {
				order = 1
			}
			if kind == Accel {
				order = 2
			}
			for k := 0; k < order; k++ {
				fdDeriv(o.dat.Series.Time, u[c], du)
				copy(u[c], du)
			}
		}
		out = make([]float64, o.ntim)
		for t := 0; t < o.ntim; t++ {
			out[t] = math.Sqrt(u[0][t]*u[0][t] + u[1][t]*u[1][t] + u[2][t]*u[2][t])
		}
		return

	case Damage:
		return nil, cfgErr("damage is a scalar aggregate; run the engine and read the results instead")
	}
	return nil, cfgErr("output kind %d is unknown", int(kind))
}
