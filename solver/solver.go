// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"context"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/msup/inp"
	"github.com/cpmech/msup/msolid"
)

// Engine reconstructs nodal time histories by modal superposition and reduces
// them to per-node extrema, damage and plasticity outputs. Construct with New;
// one Engine serves one (configuration, dataset) pair and is not safe for
// concurrent use
type Engine interface {

	// Run executes the full batched computation. On cancellation or a
	// NumericError the partially aggregated results are returned alongside
	// the error; on a ResourceError no results are returned
	Run(ctx context.Context) (*Results, error)

	// Snapshot reconstructs the full nodal field of one output kind at an
	// arbitrary time within the series range (Damage has no snapshot)
	Snapshot(t float64, kind Output) ([]float64, error)

	// NodeHistory reconstructs the complete scalar time history of one
	// output kind at a single node identified by its id
	NodeHistory(nid int, kind Output) ([]float64, error)

	// SetProgress registers a callback invoked after each finished batch
	SetProgress(fn func(done, total int))
}

// engine is the precision-parameterised implementation behind Engine
type engine[T Float] struct {
	cfg  *inp.SolverConfig
	dat  *inp.Dataset
	corr *msolid.Correction // nil unless plasticity is enabled
	bk   Backend[T]

	nnod int // number of nodes
	ntim int // number of time stations
	mlo  int // first active mode index
	mhi  int // one past the last active mode index
	nact int // number of active modes

	qT [][]T // transposed active modal coordinates [nact][ntim]

	progress func(done, total int)
}

// New validates the configuration and dataset and returns an engine in the
// configured precision. All input inconsistencies surface here as ConfigError;
// Run performs no further validation
func New(cfg *inp.SolverConfig, dat *inp.Dataset, mdl *msolid.Profile) (Engine, error) {
	if cfg == nil {
		return nil, cfgErr("a solver configuration is required")
	}
	if dat == nil {
		return nil, cfgErr("a dataset is required")
	}
	if err := dat.Check(); err != nil {
		return nil, cfgErr("%v", err)
	}
	if err := cfg.Validate(dat.Series.Nmodes()); err != nil {
		return nil, cfgErr("%v", err)
	}
	if cfg.Out.NeedStress() && dat.Stress == nil {
		return nil, cfgErr("the selected outputs need the modal stress shape field")
	}
	if cfg.Out.NeedDeform() && dat.Deform == nil {
		return nil, cfgErr("the selected outputs need the modal displacement shape field")
	}
	if cfg.UseSteady && dat.Steady == nil {
		return nil, cfgErr("usesteady is set but the dataset has no steady-state field")
	}
	if cfg.Plast.Enabled {
		if mdl == nil {
			return nil, cfgErr("plasticity correction needs a material hardening profile")
		}
		if dat.Temp == nil {
			return nil, cfgErr("plasticity correction needs the nodal temperature field")
		}
	}
	if cfg.Precision == "single" {
		return newEngine[float32](cfg, dat, mdl)
	}
	return newEngine[float64](cfg, dat, mdl)
}

func newEngine[T Float](cfg *inp.SolverConfig, dat *inp.Dataset, mdl *msolid.Profile) (o *engine[T], err error) {
	o = &engine[T]{cfg: cfg, dat: dat}
	o.nnod = dat.Nnodes()
	o.ntim = dat.Series.Ntime()
	o.mlo, o.mhi = cfg.ActiveModes(dat.Series.Nmodes())
	o.nact = o.mhi - o.mlo
	if o.bk, err = NewBackend[T](cfg.Backend); err != nil {
		return nil, err
	}
	if cfg.Plast.Enabled {
		m := *mdl
		m.Plateau = cfg.Plast.Plateau
		glinka := 0.0
		if cfg.Plast.Method == "glinka" {
			glinka = 1.0
		}
		o.corr, err = msolid.NewCorrection(&m, dbf.Params{
			&dbf.P{N: "glinka", V: glinka},
			&dbf.P{N: "tol", V: cfg.Plast.Tol},
			&dbf.P{N: "itmax", V: float64(cfg.Plast.ItMax)},
		})
		if err != nil {
			return nil, cfgErr("%v", err)
		}
	}
	o.qT = make([][]T, o.nact)
	for m := range o.qT {
		row := make([]T, o.ntim)
		for t := 0; t < o.ntim; t++ {
			row[t] = T(dat.Series.Coord[t][o.mlo+m])
		}
		o.qT[m] = row
	}
	return
}

// SetProgress registers the per-batch progress callback
func (o *engine[T]) SetProgress(fn func(done, total int)) {
	o.progress = fn
}

// Run executes the batched reconstruction and aggregation
func (o *engine[T]) Run(ctx context.Context) (*Results, error) {
	per := perNodeBytes(o.cfg, o.ntim, o.nact)
	fixed := fixedBytes(o.cfg, o.ntim, o.nact)
	ck, err := NewChunker(o.nnod, per, fixed, o.cfg.Budget())
	if err != nil {
		return nil, err
	}
	res := newResults(o.cfg, o.dat.Nods(), o.dat.Series.Time)
	ws := newWorkspace[T](o.cfg, ck.Size(), o.ntim, o.nact)
	nb := ck.Nbatches()
	if o.cfg.Verbose {
		io.Pf("running %d nodes in %d batches of up to %d (%s backend, %s precision)\n",
			o.nnod, nb, ck.Size(), o.bk.Name(), o.cfg.Precision)
	}
	done := 0
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		lo, hi, ok := ck.Next()
		if !ok {
			break
		}
		if err := o.runBatch(ws, res, lo, hi); err != nil {
			return res, err
		}
		done++
		if o.progress != nil {
			o.progress(done, nb)
		}
		if o.cfg.Verbose {
			io.Pf("  batch %3d/%d done: node rows [%d,%d)\n", done, nb, lo, hi)
		}
	}
	return res, nil
}
