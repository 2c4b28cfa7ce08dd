// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solver implements the modal-superposition reconstruction engine:
// memory-aware node batching, dense reconstruction of stress/deformation time
// histories on a selectable backend and precision, derived scalar fields
// (von Mises, principal stresses, kinematic magnitudes, fatigue damage),
// optional elastic-plastic notch correction, and result aggregation
package solver

// Float constrains the working precision of the reconstruction kernels
type Float interface {
	~float32 | ~float64
}

// Output identifies one derived quantity
type Output int

const (
	// VonMises is the von Mises equivalent stress
	VonMises Output = iota

	// MaxPrinc is the maximum principal stress σ1
	MaxPrinc

	// MinPrinc is the minimum principal stress σ3
	MinPrinc

	// Deform is the displacement magnitude
	Deform

	// Veloc is the velocity magnitude
	Veloc

	// Accel is the acceleration magnitude
	Accel

	// Damage is the rainflow fatigue damage index (scalar per node)
	Damage

	// CorrVM is the plasticity-corrected von Mises stress
	CorrVM
)

func (o Output) String() string {
	switch o {
	case VonMises:
		return "vonmises"
	case MaxPrinc:
		return "maxprinc"
	case MinPrinc:
		return "minprinc"
	case Deform:
		return "deform"
	case Veloc:
		return "veloc"
	case Accel:
		return "accel"
	case Damage:
		return "damage"
	case CorrVM:
		return "corrvm"
	}
	return "unknown"
}
