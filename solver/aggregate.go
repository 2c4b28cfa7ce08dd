// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"

	"github.com/cpmech/msup/inp"
	"github.com/cpmech/msup/msolid"
	"gonum.org/v1/gonum/floats"
)

// Extremes accumulates the running per-node maxima/minima of one output and
// the time indices at which they occurred. Single writer; merged once per
// node per run
type Extremes struct {
	Max     []float64 // maximum value per node
	MaxTidx []int     // time index of the maximum
	Min     []float64 // minimum value per node
	MinTidx []int     // time index of the minimum
}

// newExtremes allocates the accumulator for n nodes
func newExtremes(n int) (o *Extremes) {
	o = &Extremes{
		Max:     make([]float64, n),
		MaxTidx: make([]int, n),
		Min:     make([]float64, n),
		MinTidx: make([]int, n),
	}
	for i := 0; i < n; i++ {
		o.Max[i] = math.Inf(-1)
		o.Min[i] = math.Inf(1)
		o.MaxTidx[i] = -1
		o.MinTidx[i] = -1
	}
	return
}

// Merge folds one node's scalar time history into the running extrema
func (o *Extremes) Merge(node int, s []float64) {
	imax := floats.MaxIdx(s)
	imin := floats.MinIdx(s)
	if s[imax] > o.Max[node] {
		o.Max[node] = s[imax]
		o.MaxTidx[node] = imax
	}
	if s[imin] < o.Min[node] {
		o.Min[node] = s[imin]
		o.MinTidx[node] = imin
	}
}

// PlastResults holds the plasticity-correction outputs per node
type PlastResults struct {
	CorrVM *Extremes          // corrected von Mises extrema and time indices
	EpsP   []float64          // cumulative equivalent plastic strain
	State  []msolid.NodeState // final correction state
	Failed []bool             // convergence-failure indicator
}

// Results aggregates per-node extrema for every selected output across all
// batches. It is mutated in place by the run and owned by the caller after
// the run completes. Not safe for concurrent mutation
type Results struct {
	Nods []int     // node ids, same ordering as the shape fields
	Time []float64 // time stations (borrowed from the modal series)

	VM   *Extremes // von Mises (nil unless selected)
	P1   *Extremes // maximum principal stress
	P3   *Extremes // minimum principal stress
	Defo *Extremes // displacement magnitude
	Vel  *Extremes // velocity magnitude
	Acc  *Extremes // acceleration magnitude

	Dmg []float64 // fatigue damage index per node (nil unless selected)

	Plast *PlastResults // plasticity outputs (nil unless enabled)
}

// newResults allocates accumulators for the selected outputs only
func newResults(cfg *inp.SolverConfig, nods []int, time []float64) (o *Results) {
	n := len(nods)
	o = &Results{Nods: nods, Time: time}
	if cfg.Out.VonMises {
		o.VM = newExtremes(n)
	}
	if cfg.Out.MaxPrinc {
		o.P1 = newExtremes(n)
	}
	if cfg.Out.MinPrinc {
		o.P3 = newExtremes(n)
	}
	if cfg.Out.Deform {
		o.Defo = newExtremes(n)
	}
	if cfg.Out.Veloc {
		o.Vel = newExtremes(n)
	}
	if cfg.Out.Accel {
		o.Acc = newExtremes(n)
	}
	if cfg.Out.Damage {
		o.Dmg = make([]float64, n)
	}
	if cfg.Plast.Enabled {
		o.Plast = &PlastResults{
			CorrVM: newExtremes(n),
			EpsP:   make([]float64, n),
			State:  make([]msolid.NodeState, n),
			Failed: make([]bool, n),
		}
	}
	return
}

// Of returns the extrema accumulator of one output kind, or nil
func (o *Results) Of(kind Output) *Extremes {
	switch kind {
	case VonMises:
		return o.VM
	case MaxPrinc:
		return o.P1
	case MinPrinc:
		return o.P3
	case Deform:
		return o.Defo
	case Veloc:
		return o.Vel
	case Accel:
		return o.Acc
	case CorrVM:
		if o.Plast != nil {
			return o.Plast.CorrVM
		}
	}
	return nil
}
