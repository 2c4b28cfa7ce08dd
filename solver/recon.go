// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"

	"github.com/cpmech/msup/fat"
	"github.com/cpmech/msup/inp"
	"github.com/cpmech/msup/msolid"
)

// workspace holds the per-batch buffers. Allocated once at the chunker's batch
// size and re-sliced for the (possibly smaller) last batch
type workspace[T Float] struct {

	// working precision
	a   [][]T   // staging block for active shape rows [size][nact]
	sig [][][]T // six stress component histories [6][size][ntim]
	dis [][][]T // three displacement component histories [3][size][ntim]

	// per-node float64 scratch
	c64 [][]float64 // component casts of one node [6][ntim]
	s1  []float64   // scalar series
	s2  []float64   // scalar series
	s3  []float64   // accumulator series
	s4  []float64   // accumulator series
	σc  []float64   // corrected stress
	εp  []float64   // plastic strain per step
}

func newWorkspace[T Float](cfg *inp.SolverConfig, size, ntim, nact int) (o *workspace[T]) {
	o = new(workspace[T])
	o.a = make([][]T, size)
	for i := range o.a {
		o.a[i] = make([]T, nact)
	}
	alloc := func(ncomp int) [][][]T {
		m := make([][][]T, ncomp)
		for c := range m {
			m[c] = make([][]T, size)
			for i := range m[c] {
				m[c][i] = make([]T, ntim)
			}
		}
		return m
	}
	if cfg.Out.NeedStress() {
		o.sig = alloc(6)
	}
	if cfg.Out.NeedDeform() {
		o.dis = alloc(3)
	}
	o.c64 = make([][]float64, 6)
	for c := range o.c64 {
		o.c64[c] = make([]float64, ntim)
	}
	o.s1 = make([]float64, ntim)
	o.s2 = make([]float64, ntim)
	o.s3 = make([]float64, ntim)
	o.s4 = make([]float64, ntim)
	if cfg.Plast.Enabled {
		o.σc = make([]float64, ntim)
		o.εp = make([]float64, ntim)
	}
	return
}

// recon reconstructs one component block: out[i][t] = Σ_m shape[lo+i][m]·q[t][m]
// over the active modes. The shape rows are staged into the working precision
// and multiplied against the transposed coordinate matrix on the backend
func (o *engine[T]) recon(ws *workspace[T], out [][]T, shape [][]float64, lo, hi int) {
	nb := hi - lo
	for i := 0; i < nb; i++ {
		row := shape[lo+i]
		ai := ws.a[i]
		for m := 0; m < o.nact; m++ {
			ai[m] = T(row[o.mlo+m])
		}
	}
	o.bk.Mul(out[:nb], ws.a[:nb], o.qT)
}

// runBatch reconstructs the component histories of node rows [lo, hi) and
// folds every node of the batch into the aggregated results
func (o *engine[T]) runBatch(ws *workspace[T], res *Results, lo, hi int) (err error) {
	nb := hi - lo
	if o.cfg.Out.NeedStress() {
		for c := 0; c < 6; c++ {
			o.recon(ws, ws.sig[c], o.dat.Stress.Comp(c), lo, hi)
			if o.cfg.UseSteady && o.dat.Steady != nil {
				bias := o.dat.Steady.Comp(c)
				for i := 0; i < nb; i++ {
					b := T(bias[lo+i])
					if b == 0 {
						continue
					}
					row := ws.sig[c][i]
					for t := range row {
						row[t] += b
					}
				}
			}
		}
		if !allFinite(ws.sig, nb) {
			return &NumericError{Lo: lo, Hi: hi}
		}
	}
	if o.cfg.Out.NeedDeform() {
		for c := 0; c < 3; c++ {
			o.recon(ws, ws.dis[c], o.dat.Deform.Comp(c), lo, hi)
		}
		if !allFinite(ws.dis, nb) {
			return &NumericError{Lo: lo, Hi: hi}
		}
	}
	for i := 0; i < nb; i++ {
		o.nodeStress(ws, res, lo+i, i)
		o.nodeKinematics(ws, res, lo+i, i)
	}
	return
}

// nodeStress computes the stress-derived scalar series of one node (batch row
// i, global row node) and merges them into the results
func (o *engine[T]) nodeStress(ws *workspace[T], res *Results, node, i int) {
	if !o.cfg.Out.NeedStress() {
		return
	}
	for c := 0; c < 6; c++ {
		toF64(ws.c64[c], ws.sig[c][i])
	}
	if o.cfg.Out.VonMises || o.cfg.Out.Damage {
		for t := 0; t < o.ntim; t++ {
			ws.s1[t] = vonMises(ws.c64[0][t], ws.c64[1][t], ws.c64[2][t],
				ws.c64[3][t], ws.c64[4][t], ws.c64[5][t])
		}
		if res.VM != nil {
			res.VM.Merge(node, ws.s1)
		}
		if res.Dmg != nil {
			res.Dmg[node] = fat.DamageHistory(ws.s1, o.cfg.Fatigue.Sigf, o.cfg.Fatigue.B)
		}
		if o.corr != nil {
			cum, _, state := o.corr.CorrectHistory(ws.s1, o.dat.Temp.T[node], ws.σc, ws.εp)
			res.Plast.CorrVM.Merge(node, ws.σc)
			res.Plast.EpsP[node] = cum
			res.Plast.State[node] = state
			res.Plast.Failed[node] = state == msolid.Failed
		}
	}
	if o.cfg.Out.MaxPrinc || o.cfg.Out.MinPrinc {
		for t := 0; t < o.ntim; t++ {
			p1, _, p3 := principal3(ws.c64[0][t], ws.c64[1][t], ws.c64[2][t],
				ws.c64[3][t], ws.c64[4][t], ws.c64[5][t])
			ws.s2[t] = p1
			ws.s3[t] = p3
		}
		if res.P1 != nil {
			res.P1.Merge(node, ws.s2)
		}
		if res.P3 != nil {
			res.P3.Merge(node, ws.s3)
		}
	}
}

// nodeKinematics computes the displacement, velocity and acceleration
// magnitudes of one node and merges them into the results
func (o *engine[T]) nodeKinematics(ws *workspace[T], res *Results, node, i int) {
	if !o.cfg.Out.NeedDeform() {
		return
	}
	for c := 0; c < 3; c++ {
		toF64(ws.c64[c], ws.dis[c][i])
	}
	if o.cfg.Out.Deform {
		for t := 0; t < o.ntim; t++ {
			ux, uy, uz := ws.c64[0][t], ws.c64[1][t], ws.c64[2][t]
			ws.s1[t] = math.Sqrt(ux*ux + uy*uy + uz*uz)
		}
		res.Defo.Merge(node, ws.s1)
	}
	if o.cfg.Out.Veloc || o.cfg.Out.Accel {
		time := o.dat.Series.Time
		for t := 0; t < o.ntim; t++ {
			ws.s3[t] = 0
			ws.s4[t] = 0
		}
		for c := 0; c < 3; c++ {
			fdDeriv(time, ws.c64[c], ws.s1)
			if o.cfg.Out.Veloc {
				for t := 0; t < o.ntim; t++ {
					ws.s3[t] += ws.s1[t] * ws.s1[t]
				}
			}
			if o.cfg.Out.Accel {
				fdDeriv(time, ws.s1, ws.s2)
				for t := 0; t < o.ntim; t++ {
					ws.s4[t] += ws.s2[t] * ws.s2[t]
				}
			}
		}
		if o.cfg.Out.Veloc {
			for t := 0; t < o.ntim; t++ {
				ws.s1[t] = math.Sqrt(ws.s3[t])
			}
			res.Vel.Merge(node, ws.s1)
		}
		if o.cfg.Out.Accel {
			for t := 0; t < o.ntim; t++ {
				ws.s1[t] = math.Sqrt(ws.s4[t])
			}
			res.Acc.Merge(node, ws.s1)
		}
	}
}
