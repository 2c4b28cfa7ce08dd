// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements the temperature-blended multilinear hardening
// material model and the elastic-plastic notch correction (Neuber/Glinka)
// applied to reconstructed equivalent-stress histories
package msolid

import (
	"github.com/cpmech/gosl/chk"
)

// small number to protect divisions
const tiny = 1e-12

// Profile is a temperature-blended multilinear hardening database.
//
//	Temps -- temperatures [ntemp]; strictly increasing
//	E     -- Young's modulus at each temperature [ntemp]
//	Sig   -- true stress rows [ntemp][npts]; strictly increasing per row
//	Epsp  -- plastic strain rows [ntemp][npts]; non-decreasing per row
//
// The first stress point of each row defines the (approximate) yield stress.
// Beyond the last point the curve is extrapolated linearly, or clamped when
// Plateau is true
type Profile struct {
	Temps   []float64   // temperatures [ntemp]
	E       []float64   // Young's modulus per temperature [ntemp]
	Sig     [][]float64 // true stress per curve point [ntemp][npts]
	Epsp    [][]float64 // plastic strain per curve point [ntemp][npts]
	Plateau bool        // plateau extrapolation beyond last curve point
}

// NewProfile validates the tables and returns a new material profile
func NewProfile(temps, emod []float64, sig, epsp [][]float64, plateau bool) (o *Profile, err error) {
	nt := len(temps)
	if nt < 1 {
		return nil, chk.Err("material profile needs at least one temperature")
	}
	if len(emod) != nt {
		return nil, chk.Err("Young's modulus table has %d entries but there are %d temperatures", len(emod), nt)
	}
	if len(sig) != nt || len(epsp) != nt {
		return nil, chk.Err("hardening tables must have one row per temperature: got %d stress rows and %d strain rows for %d temperatures", len(sig), len(epsp), nt)
	}
	for i := 1; i < nt; i++ {
		if !(temps[i] > temps[i-1]) {
			return nil, chk.Err("temperatures must be strictly increasing: T[%d]=%g ≤ T[%d]=%g", i, temps[i], i-1, temps[i-1])
		}
	}
	for i := 0; i < nt; i++ {
		if emod[i] <= 0 {
			return nil, chk.Err("Young's modulus must be positive: E(%g)=%g", temps[i], emod[i])
		}
		np := len(sig[i])
		if np < 1 {
			return nil, chk.Err("hardening curve at T=%g has no points", temps[i])
		}
		if len(epsp[i]) != np {
			return nil, chk.Err("hardening curve at T=%g: %d stress points but %d strain points", temps[i], np, len(epsp[i]))
		}
		if sig[i][0] <= 0 {
			return nil, chk.Err("hardening curve at T=%g: first stress point (yield) must be positive; got %g", temps[i], sig[i][0])
		}
		for k := 1; k < np; k++ {
			if !(sig[i][k] > sig[i][k-1]) {
				return nil, chk.Err("hardening curve at T=%g: stress values must be strictly increasing at point %d", temps[i], k)
			}
			if epsp[i][k] < epsp[i][k-1] {
				return nil, chk.Err("hardening curve at T=%g: plastic strain values must be non-decreasing at point %d", temps[i], k)
			}
		}
	}
	o = &Profile{Temps: temps, E: emod, Sig: sig, Epsp: epsp, Plateau: plateau}
	return
}

// blend returns the bracketing temperature rows (i, j) and the linear weight
// w ∈ [0,1]. Temperatures outside the table clamp to the first/last row
func (o *Profile) blend(T float64) (i, j int, w float64) {
	nt := len(o.Temps)
	if T <= o.Temps[0] || nt == 1 {
		return 0, 0, 0
	}
	if T >= o.Temps[nt-1] {
		return nt - 1, nt - 1, 0
	}
	for i = 0; i < nt-2 && o.Temps[i+1] < T; i++ {
	}
	w = (T - o.Temps[i]) / (o.Temps[i+1] - o.Temps[i])
	return i, i + 1, w
}

// Emod returns the Young's modulus interpolated at temperature T
func (o *Profile) Emod(T float64) float64 {
	i, j, w := o.blend(T)
	return (1.0-w)*o.E[i] + w*o.E[j]
}

// Yield returns the yield stress (first curve point) interpolated at T
func (o *Profile) Yield(T float64) float64 {
	i, j, w := o.blend(T)
	return (1.0-w)*o.Sig[i][0] + w*o.Sig[j][0]
}

// EpspAtSig returns the plastic strain εp(T, σ) by blending the bracketing rows
func (o *Profile) EpspAtSig(T, σ float64) float64 {
	i, j, w := o.blend(T)
	e := o.epspOnRow(σ, o.Sig[i], o.Epsp[i])
	if i == j {
		return e
	}
	return (1.0-w)*e + w*o.epspOnRow(σ, o.Sig[j], o.Epsp[j])
}

// SigAtEpsp returns the flow stress σ(T, εp) by blending inverted rows
func (o *Profile) SigAtEpsp(T, εp float64) float64 {
	i, j, w := o.blend(T)
	s := o.sigOnRow(εp, o.Sig[i], o.Epsp[i])
	if i == j {
		return s
	}
	return (1.0-w)*s + w*o.sigOnRow(εp, o.Sig[j], o.Epsp[j])
}

// PlasticEnergy returns Up(T, σ) = ∫ σflow dεp up to εp(σ), by blending rows
func (o *Profile) PlasticEnergy(T, σ float64) float64 {
	i, j, w := o.blend(T)
	u := o.energyOnRow(σ, o.Sig[i], o.Epsp[i])
	if i == j {
		return u
	}
	return (1.0-w)*u + w*o.energyOnRow(σ, o.Sig[j], o.Epsp[j])
}

// epspOnRow evaluates εp(σ) on one curve row. Piecewise linear; extrapolation
// follows the profile's mode
func (o *Profile) epspOnRow(σ float64, sig, epsp []float64) float64 {
	if σ <= sig[0] {
		return 0
	}
	n := len(sig)
	for k := 0; k < n-1; k++ {
		if σ <= sig[k+1] {
			return epsp[k] + (σ-sig[k])*(epsp[k+1]-epsp[k])/(sig[k+1]-sig[k])
		}
	}
	if o.Plateau || n < 2 {
		return epsp[n-1]
	}
	slope := (epsp[n-1] - epsp[n-2]) / (sig[n-1] - sig[n-2])
	return epsp[n-1] + (σ-sig[n-1])*slope
}

// sigOnRow evaluates the inverse σflow(εp) on one curve row. Strain values
// may repeat (a stress jump at constant strain); those segments are the only
// degenerate denominators
func (o *Profile) sigOnRow(εp float64, sig, epsp []float64) float64 {
	if εp <= epsp[0] {
		return sig[0]
	}
	n := len(epsp)
	for k := 0; k < n-1; k++ {
		if εp <= epsp[k+1] {
			den := epsp[k+1] - epsp[k]
			if den == 0 {
				return sig[k+1]
			}
			t := (εp - epsp[k]) / den
			return sig[k] + t*(sig[k+1]-sig[k])
		}
	}
	if o.Plateau || n < 2 {
		return sig[n-1]
	}
	den := epsp[n-1] - epsp[n-2]
	if den == 0 {
		return sig[n-1]
	}
	slope := (sig[n-1] - sig[n-2]) / den
	return sig[n-1] + slope*(εp-epsp[n-1])
}

// energyOnRow integrates the plastic strain-energy density up to σ on one row
// using trapezoids
func (o *Profile) energyOnRow(σ float64, sig, epsp []float64) float64 {
	if σ <= sig[0] {
		return 0
	}
	area := 0.0
	n := len(sig)
	for k := 0; k < n-1; k++ {
		if σ <= sig[k+1] {
			et := epsp[k] + (σ-sig[k])*(epsp[k+1]-epsp[k])/(sig[k+1]-sig[k])
			return area + 0.5*(sig[k]+σ)*(et-epsp[k])
		}
		area += 0.5 * (sig[k] + sig[k+1]) * (epsp[k+1] - epsp[k])
	}
	if o.Plateau || n < 2 {
		return area
	}
	slope := (epsp[n-1] - epsp[n-2]) / (sig[n-1] - sig[n-2])
	et := epsp[n-1] + slope*(σ-sig[n-1])
	return area + 0.5*(sig[n-1]+σ)*(et-epsp[n-1])
}
