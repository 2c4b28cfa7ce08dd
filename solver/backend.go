// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

// Backend performs the dense matrix product at the heart of the
// reconstruction. Implementations must produce the same mathematical result
// up to the native rounding of the chosen precision; the GPU variant is a
// performance substitution, never an approximation
type Backend[T Float] interface {

	// Name returns the backend identifier
	Name() string

	// Mul computes c = a·b where a is [m][k], b is [k][n] and c is [m][n]
	Mul(c, a, b [][]T)
}

// NewBackend returns the backend selected by name: "cpu" (default) or "gpu"
func NewBackend[T Float](name string) (Backend[T], error) {
	switch name {
	case "", "cpu":
		return cpuBackend[T]{}, nil
	case "gpu":
		return newGPUBackend[T]()
	}
	return nil, cfgErr("backend %q is unknown", name)
}
