// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fat

import (
	"math"
)

// Damage accumulates Miner damage from rainflow cycles with the two-parameter
// Basquin law σa = σf' (2N)^b, i.e. N = ½ (σa/σf')^(1/b).
//
//	cycles -- counted cycles (see Count)
//	σf     -- fatigue strength coefficient (σf' > 0)
//	b      -- fatigue strength exponent (b < 0)
//
// Zero-range cycles contribute nothing; a flat history therefore yields zero
func Damage(cycles []Cycle, σf, b float64) (dmg float64) {
	for _, c := range cycles {
		σa := 0.5 * c.Rng
		if σa <= 0 {
			continue
		}
		nf := 0.5 * math.Pow(σa/σf, 1.0/b)
		dmg += c.Count / nf
	}
	return
}

// DamageHistory is a convenience wrapper counting and accumulating in one call
func DamageHistory(s []float64, σf, b float64) float64 {
	return Damage(Count(s), σf, b)
}
