// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !cuda

package solver

// newGPUBackend reports the GPU backend as unavailable in builds without the
// cuda tag
func newGPUBackend[T Float]() (Backend[T], error) {
	return nil, cfgErr("the gpu backend requires building with -tags cuda on a CUDA-capable host")
}
