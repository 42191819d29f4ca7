/*
 * options.go, part of godock.
 *
 * Copyright 2023 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package kernel

import "math"

// CCElec is the CHARMM electrostatic conversion constant, in
// kcal/mol * Angstrom / e^2.
const CCElec = 332.0716

// Options carries the energy-model configuration handed verbatim to the
// kernel: the dielectric model and the per-channel clamp values. The clamps
// are enforced by the kernel, not by the grid generators.
type Options struct {
	coulomb    float64
	dielectric float64
	elecRepMax float64
	elecAttMax float64
	vdwRepMax  float64
	vdwAttMax  float64
	cdie       bool
}

// DefaultOptions returns an Options with the default energy model: radial
// dielectric of 2, electrostatics clamped to [-20, 40] and van der Waals
// channels clamped to -1 and 2 kcal/mol.
func DefaultOptions() *Options {
	O := new(Options)
	O.coulomb = CCElec
	O.dielectric = 2.0
	O.elecRepMax = 40
	O.elecAttMax = -20
	O.vdwRepMax = 2.0
	O.vdwAttMax = -1.0
	O.cdie = false
	return O
}

//Each of the following returns the value of the corresponding option, and
//sets it to the given value first, if any is given. Signs are normalized:
//repulsive clamps are kept positive and attractive clamps negative,
//whatever the sign given.

// Coulomb returns the electrostatic conversion constant.
func (O *Options) Coulomb(v ...float64) float64 {
	if len(v) > 0 {
		O.coulomb = v[0]
	}
	return O.coulomb
}

// Dielectric returns the dielectric constant.
func (O *Options) Dielectric(v ...float64) float64 {
	if len(v) > 0 {
		O.dielectric = math.Abs(v[0])
	}
	return O.dielectric
}

// ElecRepMax returns the clamp for the repulsive electrostatic values.
func (O *Options) ElecRepMax(v ...float64) float64 {
	if len(v) > 0 {
		O.elecRepMax = math.Abs(v[0])
	}
	return O.elecRepMax
}

// ElecAttrMax returns the clamp for the attractive electrostatic values.
func (O *Options) ElecAttrMax(v ...float64) float64 {
	if len(v) > 0 {
		O.elecAttMax = -math.Abs(v[0])
	}
	return O.elecAttMax
}

// VdwRepMax returns the clamp for the repulsive van der Waals values.
func (O *Options) VdwRepMax(v ...float64) float64 {
	if len(v) > 0 {
		O.vdwRepMax = math.Abs(v[0])
	}
	return O.vdwRepMax
}

// VdwAttrMax returns the clamp for the attractive van der Waals values.
func (O *Options) VdwAttrMax(v ...float64) float64 {
	if len(v) > 0 {
		O.vdwAttMax = -math.Abs(v[0])
	}
	return O.vdwAttMax
}

// ConstantDielectric returns whether a constant, rather than
// distance-dependent, dielectric is used.
func (O *Options) ConstantDielectric(v ...bool) bool {
	if len(v) > 0 {
		O.cdie = v[0]
	}
	return O.cdie
}
