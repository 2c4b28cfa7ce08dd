// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_conf01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conf01. defaults and validation")

	cfg := NewConfig()
	cfg.Out.VonMises = true
	cfg.RAMfrac = 0.5
	cfg.RAMbytes = 1000
	if err := cfg.Validate(12); err != nil {
		tst.Errorf("validation failed: %v\n", err)
		return
	}

	lo, hi := cfg.ActiveModes(12)
	chk.Ints(tst, "active modes", []int{lo, hi}, []int{0, 12})
	chk.Scalar(tst, "budget", 1e-17, float64(cfg.Budget()), 500)
	chk.Ints(tst, "elem bytes", []int{cfg.ElemBytes()}, []int{8})

	cfg.Precision = "single"
	chk.Ints(tst, "elem bytes (single)", []int{cfg.ElemBytes()}, []int{4})
	cfg.Precision = "double"

	cfg.SkipNmodes = 3
	lo, hi = cfg.ActiveModes(12)
	chk.Ints(tst, "active modes (skip)", []int{lo, hi}, []int{3, 12})
}

func Test_conf02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conf02. validation failures")

	newcfg := func() *SolverConfig {
		cfg := NewConfig()
		cfg.Out.VonMises = true
		cfg.RAMbytes = 1000
		return cfg
	}

	expectErr := func(label string, cfg *SolverConfig) {
		err := cfg.Validate(10)
		if err == nil {
			tst.Errorf("%s: error should have occurred\n", label)
			return
		}
		io.Pf("ok: %v\n", err)
	}

	cfg := newcfg()
	cfg.Out = Outputs{}
	expectErr("no outputs", cfg)

	cfg = newcfg()
	cfg.SkipNmodes = 10
	expectErr("skip all modes", cfg)

	cfg = newcfg()
	cfg.SkipNmodes = -1
	expectErr("negative skip", cfg)

	cfg = newcfg()
	cfg.Precision = "half"
	expectErr("bad precision", cfg)

	cfg = newcfg()
	cfg.Backend = "tpu"
	expectErr("bad backend", cfg)

	cfg = newcfg()
	cfg.RAMfrac = 0
	expectErr("zero ram fraction", cfg)

	cfg = newcfg()
	cfg.RAMfrac = 1.5
	expectErr("ram fraction above one", cfg)

	cfg = newcfg()
	cfg.RAMbytes = 0
	expectErr("no memory budget", cfg)

	cfg = newcfg()
	cfg.Out.Damage = true
	expectErr("damage without fatigue data", cfg)

	cfg = newcfg()
	cfg.Out.Damage = true
	cfg.Fatigue = FatigueData{Sigf: 1000, B: 0.1}
	expectErr("positive fatigue exponent", cfg)

	cfg = newcfg()
	cfg.Out = Outputs{Deform: true}
	cfg.Plast.Enabled = true
	expectErr("plasticity without von Mises", cfg)

	cfg = newcfg()
	cfg.Plast.Enabled = true
	cfg.Plast.Method = "ramberg"
	expectErr("bad plasticity method", cfg)

	cfg = newcfg()
	cfg.Plast.Enabled = true
	cfg.Plast.Tol = 0
	expectErr("zero plasticity tolerance", cfg)

	cfg = newcfg()
	cfg.Plast.Enabled = true
	cfg.Plast.ItMax = 0
	expectErr("zero plasticity iterations", cfg)
}

func Test_conf03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conf03. output selectors")

	out := Outputs{VonMises: true}
	if !out.NeedStress() || out.NeedDeform() {
		tst.Errorf("von Mises must need stress only\n")
		return
	}
	out = Outputs{Veloc: true}
	if out.NeedStress() || !out.NeedDeform() {
		tst.Errorf("velocity must need displacements only\n")
		return
	}
	out = Outputs{Damage: true}
	if !out.NeedStress() {
		tst.Errorf("damage must need stress\n")
		return
	}
	if (Outputs{}).Any() {
		tst.Errorf("empty selection must report no outputs\n")
	}
}
