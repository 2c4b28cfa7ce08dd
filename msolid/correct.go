// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"gonum.org/v1/gonum/floats"
)

// NodeState is the per-node progress of the notch correction
type NodeState int

const (
	// Elastic means the node never exceeded yield; no iteration ran
	Elastic NodeState = iota

	// Iterating means the corrector is running (transient; never reported)
	Iterating

	// Converged means every time step met the tolerance
	Converged

	// Failed means at least one time step exceeded the iteration limit;
	// the last iterate is reported together with this flag
	Failed
)

func (o NodeState) String() string {
	switch o {
	case Elastic:
		return "elastic"
	case Iterating:
		return "iterating"
	case Converged:
		return "converged"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Correction applies the Neuber or Glinka elastic-plastic notch correction to
// equivalent-stress time histories, one node at a time
type Correction struct {
	Mdl    *Profile // material hardening profile
	Glinka bool     // use Glinka strain-energy-density equivalence; otherwise Neuber
	Tol    float64  // relative tolerance on successive corrected-stress estimates
	ItMax  int      // maximum Newton iterations per time step
}

// NewCorrection returns a corrector configured from parameters:
//
//	"glinka" -- 1 selects the Glinka method; 0 (default) selects Neuber
//	"tol"    -- relative convergence tolerance (default 1e-10)
//	"itmax"  -- maximum iterations (default 60)
func NewCorrection(mdl *Profile, prms dbf.Params) (o *Correction, err error) {
	if mdl == nil {
		return nil, chk.Err("a material profile is required for the notch correction")
	}
	o = &Correction{Mdl: mdl, Tol: 1e-10, ItMax: 60}
	for _, p := range prms {
		switch p.N {
		case "glinka":
			o.Glinka = p.V > 0
		case "tol":
			o.Tol = p.V
		case "itmax":
			o.ItMax = int(p.V)
		default:
			return nil, chk.Err("correction: parameter named %q is incorrect", p.N)
		}
	}
	if o.Tol <= 0 {
		return nil, chk.Err("correction: tolerance must be positive; got %g", o.Tol)
	}
	if o.ItMax < 1 {
		return nil, chk.Err("correction: itmax must be at least 1; got %d", o.ItMax)
	}
	return
}

// CorrectHistory corrects one node's elastic equivalent-stress history σe at
// nodal temperature T. Results are written into σc (corrected stress) and εp
// (plastic strain per step), both of length len(σe).
//
//	Returns:
//	  cum   -- cumulative plastic strain: Σ max(0, εp[t]−εp[t−1])
//	  tpeak -- time index of the peak corrected stress
//	  state -- Elastic, Converged or Failed
func (o *Correction) CorrectHistory(σe []float64, T float64, σc, εp []float64) (cum float64, tpeak int, state NodeState) {
	σy := o.Mdl.Yield(T)
	state = Elastic
	for t, s := range σe {
		if s <= σy {
			σc[t] = s
			εp[t] = 0
			continue
		}
		if state == Elastic {
			state = Iterating
		}
		σ, ok := o.solveStep(s, T)
		σc[t] = σ
		εp[t] = o.Mdl.EpspAtSig(T, σ)
		if !ok {
			state = Failed
		}
	}
	if state == Iterating {
		state = Converged
	}
	for t := 1; t < len(εp); t++ {
		if dε := εp[t] - εp[t-1]; dε > 0 {
			cum += dε
		}
	}
	if len(εp) > 0 {
		cum += math.Max(εp[0], 0)
	}
	tpeak = floats.MaxIdx(σc)
	return
}

// solveStep solves the correction equation for one elastic stress value.
// Neuber enforces σ·ε(σ) = σe²/E; Glinka enforces strain-energy-density
// equivalence σ²/2E + Up(σ) = σe²/2E. Both reduce to a scalar root-find on σ,
// solved by Newton iteration with a numeric derivative. The last iterate is
// returned even on failure
func (o *Correction) solveStep(σe, T float64) (σ float64, ok bool) {
	E := o.Mdl.Emod(T)
	σ = math.Min(σe, o.Mdl.Yield(T))
	if σ <= 0 {
		σ = tiny
	}
	if o.Glinka {
		return o.newton(σ, func(s float64) float64 {
			return s*s/(2.0*E) + o.Mdl.PlasticEnergy(T, s) - σe*σe/(2.0*E)
		})
	}
	return o.newton(σ, func(s float64) float64 {
		return s/E + o.Mdl.EpspAtSig(T, s) - σe*σe/(s*E+tiny)
	})
}

// newton iterates σ ← σ − r(σ)/r'(σ) with a forward-difference derivative,
// halving instead of stepping below zero
func (o *Correction) newton(σ0 float64, resid func(σ float64) float64) (σ float64, ok bool) {
	σ = σ0
	for it := 0; it < o.ItMax; it++ {
		r := resid(σ)
		h := 1e-6 * math.Max(math.Abs(σ), 1.0)
		der := (resid(σ+h) - r) / h
		step := r / (der + tiny)
		σnew := σ - step
		if σnew <= 0 {
			σnew = 0.5 * σ
		}
		if math.Abs(σnew-σ)/(math.Abs(σ)+tiny) < o.Tol {
			return σnew, true
		}
		σ = σnew
	}
	return σ, false
}
