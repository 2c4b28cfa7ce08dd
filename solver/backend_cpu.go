// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/cpmech/gosl/la"
)

// cpuBackend multiplies on the host. The double-precision path delegates to
// the dense BLAS-style multiply in gosl/la; the single-precision path uses a
// cache-friendly i-k-j loop in float32 throughout
type cpuBackend[T Float] struct{}

func (o cpuBackend[T]) Name() string { return "cpu" }

func (o cpuBackend[T]) Mul(c, a, b [][]T) {
	if cc, ok := any(c).([][]float64); ok {
		la.MatMul(cc, 1, any(a).([][]float64), any(b).([][]float64))
		return
	}
	mulIKJ(c, a, b)
}

// mulIKJ computes c = a·b accumulating in the working precision
func mulIKJ[T Float](c, a, b [][]T) {
	n := len(b[0])
	for i := range a {
		ci := c[i]
		for j := 0; j < n; j++ {
			ci[j] = 0
		}
		for k, aik := range a[i] {
			if aik == 0 {
				continue
			}
			bk := b[k]
			for j := 0; j < n; j++ {
				ci[j] += aik * bk[j]
			}
		}
	}
}
