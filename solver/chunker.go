// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/cpmech/msup/inp"
)

// Chunker yields contiguous node-index ranges [lo, hi) in ascending order,
// covering [0, nnod) exactly once with no gaps or overlaps. The batch size is
// derived from the memory budget, with a floor of one node per batch
type Chunker struct {
	nnod int // total number of nodes
	size int // nodes per batch
	next int // first node of the next batch
}

// NewChunker computes the batch size from the memory budget.
//
//	nnod   -- total number of nodes
//	per    -- bytes required per node within a batch
//	fixed  -- bytes required once per run (shared buffers)
//	budget -- total bytes granted
//
// Returns a ResourceError when even a single-node batch does not fit
func NewChunker(nnod int, per, fixed, budget int64) (o *Chunker, err error) {
	avail := budget - fixed
	if avail < per {
		return nil, &ResourceError{Need: fixed + per, Budget: budget}
	}
	size := int(avail / per)
	if size > nnod {
		size = nnod
	}
	return &Chunker{nnod: nnod, size: size}, nil
}

// Size returns the number of nodes per batch (the last batch may be smaller)
func (o *Chunker) Size() int { return o.size }

// Nbatches returns the total number of batches
func (o *Chunker) Nbatches() int {
	return (o.nnod + o.size - 1) / o.size
}

// Next returns the next node range. ok is false when all nodes are covered
func (o *Chunker) Next() (lo, hi int, ok bool) {
	if o.next >= o.nnod {
		return 0, 0, false
	}
	lo = o.next
	hi = lo + o.size
	if hi > o.nnod {
		hi = o.nnod
	}
	o.next = hi
	return lo, hi, true
}

// perNodeBytes estimates the batch memory footprint of one node: the staging
// row for the shape block plus every component time history that the
// reconstruction kernel and the derived-quantity calculator hold simultaneously
func perNodeBytes(cfg *inp.SolverConfig, ntim, nact int) int64 {
	esz := int64(cfg.ElemBytes())
	n := esz * int64(nact)
	if cfg.Out.NeedStress() || cfg.Plast.Enabled {
		n += 6 * esz * int64(ntim)
	}
	if cfg.Out.NeedDeform() {
		n += 3 * esz * int64(ntim)
	}
	return n
}

// fixedBytes estimates the run-constant memory: the transposed coordinate
// matrix plus every per-node float64 scratch buffer the workspace allocates:
// six component casts, four scalar/accumulator series, and the plasticity
// pair when the correction is enabled
func fixedBytes(cfg *inp.SolverConfig, ntim, nact int) int64 {
	esz := int64(cfg.ElemBytes())
	f := esz * int64(nact) * int64(ntim)
	f += (6 + 4) * 8 * int64(ntim)
	if cfg.Plast.Enabled {
		f += 2 * 8 * int64(ntim)
	}
	return f
}
