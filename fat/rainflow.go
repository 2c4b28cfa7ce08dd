// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fat implements rainflow cycle counting, Miner/Basquin fatigue
// damage accumulation, and a spectral helper for dominant response frequency
package fat

import (
	"math"
)

// Cycle is one counted stress cycle
type Cycle struct {
	Rng   float64 // stress range (peak minus valley)
	Mean  float64 // mean stress of the cycle
	Count float64 // 1 for full cycles; 0.5 for residue half cycles
}

// TurningPoints extracts the sequence of local extrema (reversals) from a
// time history, keeping the first and last samples. Flat segments collapse
func TurningPoints(s []float64) (tp []float64) {
	if len(s) < 2 {
		return append(tp, s...)
	}
	tp = append(tp, s[0])
	for i := 1; i < len(s)-1; i++ {
		d0 := s[i] - tp[len(tp)-1]
		d1 := s[i+1] - s[i]
		if d0 == 0 {
			continue
		}
		if d0 > 0 && d1 < 0 || d0 < 0 && d1 > 0 {
			tp = append(tp, s[i])
		}
	}
	if s[len(s)-1] != tp[len(tp)-1] {
		tp = append(tp, s[len(s)-1])
	}
	return
}

// Count performs rainflow counting on a time history following the
// three-point reversal rule (ASTM E1049). Ranges closed within the history
// count as full cycles; the residue counts as half cycles. A flat history
// yields no cycles
func Count(s []float64) (cycles []Cycle) {
	tp := TurningPoints(s)
	if len(tp) < 2 {
		return
	}
	var stack []float64
	for _, p := range tp {
		stack = append(stack, p)
		for len(stack) >= 3 {
			n := len(stack)
			x := math.Abs(stack[n-1] - stack[n-2])
			y := math.Abs(stack[n-2] - stack[n-3])
			if x < y {
				break
			}
			if n == 3 {
				// range Y contains the starting point: half cycle
				cycles = append(cycles, Cycle{
					Rng:   y,
					Mean:  0.5 * (stack[0] + stack[1]),
					Count: 0.5,
				})
				stack = stack[1:]
				continue
			}
			// range Y is enclosed: full cycle
			cycles = append(cycles, Cycle{
				Rng:   y,
				Mean:  0.5 * (stack[n-3] + stack[n-2]),
				Count: 1,
			})
			stack = append(stack[:n-3], stack[n-1])
		}
	}
	// residue: remaining ranges count as half cycles
	for i := 0; i+1 < len(stack); i++ {
		cycles = append(cycles, Cycle{
			Rng:   math.Abs(stack[i+1] - stack[i]),
			Mean:  0.5 * (stack[i] + stack[i+1]),
			Count: 0.5,
		})
	}
	return
}
