// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
)

// Outputs selects which derived quantities are computed
type Outputs struct {
	VonMises bool `json:"vonmises"` // von Mises equivalent stress
	MaxPrinc bool `json:"maxprinc"` // maximum principal stress σ1
	MinPrinc bool `json:"minprinc"` // minimum principal stress σ3
	Deform   bool `json:"deform"`   // displacement magnitude
	Veloc    bool `json:"veloc"`    // velocity magnitude
	Accel    bool `json:"accel"`    // acceleration magnitude
	Damage   bool `json:"damage"`   // rainflow fatigue damage index
}

// NeedStress tells whether any selected output consumes the stress tensor
func (o Outputs) NeedStress() bool {
	return o.VonMises || o.MaxPrinc || o.MinPrinc || o.Damage
}

// NeedDeform tells whether any selected output consumes displacements
func (o Outputs) NeedDeform() bool {
	return o.Deform || o.Veloc || o.Accel
}

// Any tells whether at least one output is selected
func (o Outputs) Any() bool {
	return o.NeedStress() || o.NeedDeform()
}

// FatigueData holds the two-parameter Basquin fatigue law: σa = σf' (2N)^b
type FatigueData struct {
	Sigf float64 `json:"sigf"` // fatigue strength coefficient σf'
	B    float64 `json:"b"`    // fatigue strength exponent b (negative)
}

// PlastData holds plasticity (notch) correction settings
type PlastData struct {
	Enabled bool    `json:"enabled"` // run Neuber/Glinka correction after reconstruction
	Method  string  `json:"method"`  // "neuber" or "glinka"
	Tol     float64 `json:"tol"`     // relative tolerance on successive corrected-stress estimates
	ItMax   int     `json:"itmax"`   // maximum iterations per (node, time) solve
	Plateau bool    `json:"plateau"` // plateau extrapolation of hardening curves; otherwise linear
}

// SolverConfig holds the immutable per-run configuration. Construct once with
// NewConfig and pass by reference; no component reads ambient state
type SolverConfig struct {

	// outputs and mode selection
	Out        Outputs `json:"out"`        // selected derived quantities
	SkipNmodes int     `json:"skipnmodes"` // number of leading modes to discard: 0 ≤ n < nmodes
	UseSteady  bool    `json:"usesteady"`  // superimpose the steady-state bias when present

	// numerics and hardware
	Precision string  `json:"precision"` // "single" (float32) or "double" (float64)
	Backend   string  `json:"backend"`   // "cpu" or "gpu"
	RAMfrac   float64 `json:"ramfrac"`   // fraction of RAMbytes one run may use: 0 < f ≤ 1
	RAMbytes  int64   `json:"rambytes"`  // total memory the host grants, in bytes

	// fatigue and plasticity
	Fatigue FatigueData `json:"fatigue"` // Basquin parameters (damage output)
	Plast   PlastData   `json:"plast"`   // notch correction settings

	// messages
	Verbose bool `json:"-"` // show progress messages
}

// NewConfig returns a configuration with default numerics: double precision,
// CPU backend, 90% RAM fraction, tight plasticity tolerances
func NewConfig() *SolverConfig {
	return &SolverConfig{
		Precision: "double",
		Backend:   "cpu",
		RAMfrac:   0.9,
		Plast: PlastData{
			Method: "neuber",
			Tol:    1e-10,
			ItMax:  60,
		},
	}
}

// Validate checks the configuration against the number of modes available.
// It never silently corrects values
func (o *SolverConfig) Validate(nmodes int) (err error) {
	if !o.Out.Any() {
		return chk.Err("no output is selected")
	}
	if o.SkipNmodes < 0 || o.SkipNmodes >= nmodes {
		return chk.Err("skipnmodes=%d is invalid: must satisfy 0 ≤ n < %d", o.SkipNmodes, nmodes)
	}
	switch o.Precision {
	case "single", "double":
	default:
		return chk.Err("precision %q is invalid: must be \"single\" or \"double\"", o.Precision)
	}
	switch o.Backend {
	case "cpu", "gpu":
	default:
		return chk.Err("backend %q is invalid: must be \"cpu\" or \"gpu\"", o.Backend)
	}
	if !(o.RAMfrac > 0 && o.RAMfrac <= 1) {
		return chk.Err("ramfrac=%g is invalid: must satisfy 0 < f ≤ 1", o.RAMfrac)
	}
	if o.RAMbytes <= 0 {
		return chk.Err("rambytes=%d is invalid: the host must grant a positive memory budget", o.RAMbytes)
	}
	if o.Out.Damage {
		if o.Fatigue.Sigf <= 0 {
			return chk.Err("damage output needs a positive fatigue strength coefficient; got σf'=%g", o.Fatigue.Sigf)
		}
		if o.Fatigue.B >= 0 {
			return chk.Err("damage output needs a negative fatigue strength exponent; got b=%g", o.Fatigue.B)
		}
	}
	if o.Plast.Enabled {
		if !o.Out.VonMises {
			return chk.Err("plasticity correction requires the von Mises output to be selected")
		}
		switch o.Plast.Method {
		case "neuber", "glinka":
		default:
			return chk.Err("plasticity method %q is invalid: must be \"neuber\" or \"glinka\"", o.Plast.Method)
		}
		if o.Plast.Tol <= 0 {
			return chk.Err("plasticity tolerance must be positive; got %g", o.Plast.Tol)
		}
		if o.Plast.ItMax < 1 {
			return chk.Err("plasticity max iterations must be at least 1; got %d", o.Plast.ItMax)
		}
	}
	return
}

// ActiveModes returns the active-mode index range [lo, hi) after skipping
func (o *SolverConfig) ActiveModes(nmodes int) (lo, hi int) {
	return o.SkipNmodes, nmodes
}

// Budget returns the memory budget in bytes for one run
func (o *SolverConfig) Budget() int64 {
	return int64(o.RAMfrac * float64(o.RAMbytes))
}

// ElemBytes returns the byte width of one element in the configured precision
func (o *SolverConfig) ElemBytes() int {
	if o.Precision == "single" {
		return 4
	}
	return 8
}
