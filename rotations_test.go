/*
 * rotations_test.go, part of godock.
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

package dock

import (
	"math"
	"testing"
)

func TestRotationSetLevels(Te *testing.T) {
	wantRows := map[int]int{0: 1, 1: 576, 2: 4068, 3: 36864}
	for level, want := range wantRows {
		q, err := RotationSet(level)
		if err != nil {
			Te.Fatal("level", level, err)
		}
		r, c := q.Dims()
		if r != want || c != 4 {
			Te.Error("level", level, "has shape", r, c, "want", want, 4)
		}
	}
	if _, err := RotationSet(4); !IsConfiguration(err) {
		Te.Error("out of range level accepted")
	}
	if _, err := RotationSet(-1); !IsConfiguration(err) {
		Te.Error("negative level accepted")
	}
}

func TestRotationSetUnitNorm(Te *testing.T) {
	//the sets are stored in single precision
	const tol = 1e-5
	for level := 0; level <= 1; level++ {
		q, err := RotationSet(level)
		if err != nil {
			Te.Fatal(err)
		}
		r, _ := q.Dims()
		for i := 0; i < r; i++ {
			n := 0.0
			for j := 0; j < 4; j++ {
				n += q.At(i, j) * q.At(i, j)
			}
			if math.Abs(math.Sqrt(n)-1) > tol {
				Te.Fatal("level", level, "row", i, "is not a unit quaternion")
			}
		}
	}
}

func TestRotationSetIdentity(Te *testing.T) {
	q, err := RotationSet(0)
	if err != nil {
		Te.Fatal(err)
	}
	if q.At(0, 0) != 1 || q.At(0, 1) != 0 || q.At(0, 2) != 0 || q.At(0, 3) != 0 {
		Te.Error("level 0 is not the identity")
	}
}

func TestRotationSetCached(Te *testing.T) {
	a, err := RotationSet(1)
	if err != nil {
		Te.Fatal(err)
	}
	b, err := RotationSet(1)
	if err != nil {
		Te.Fatal(err)
	}
	if a != b {
		Te.Error("rotation set decoded twice")
	}
}
