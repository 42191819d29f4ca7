/*
 * rotations.go, part of godock.
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
	"embed"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/klauspost/compress/gzip"
	"gonum.org/v1/gonum/mat"
)

//The packaged orientation sets are super-Fibonacci samplings of the
//rotation group, stored as little-endian float32 scalar-first quaternions.
//Level 0 is just the identity, kept in code.

//go:embed data/quaternions-1.bin.gz data/quaternions-2.bin.gz data/quaternions-3.bin.gz
var rotationData embed.FS

const maxRotationLevel = 3

var rotationSets [maxRotationLevel + 1]struct {
	once sync.Once
	m    *mat.Dense
	err  error
}

// RotationSet returns the packaged orientation set for the given level, as
// an N x 4 matrix of scalar-first w,x,y,z unit quaternions. Level 0 holds
// only the identity; levels 1 to 3 hold 576, 4068 and 36864 orientations.
// Each set is decoded once and shared afterwards; callers must not modify
// the returned matrix.
func RotationSet(level int) (*mat.Dense, error) {
	if level < 0 || level > maxRotationLevel {
		return nil, errorf(ErrConfiguration, "rotation level must be between 0 and %d, got %d", maxRotationLevel, level)
	}
	s := &rotationSets[level]
	s.once.Do(func() {
		if level == 0 {
			s.m = mat.NewDense(1, 4, []float64{1, 0, 0, 0})
			return
		}
		s.m, s.err = readRotationFile(fmt.Sprintf("data/quaternions-%d.bin.gz", level))
	})
	if s.err != nil {
		return nil, errDecorate(s.err, "RotationSet")
	}
	return s.m, nil
}

func readRotationFile(name string) (*mat.Dense, error) {
	f, err := rotationData.Open(name)
	if err != nil {
		return nil, errorf(ErrConfiguration, "packaged rotation set %s missing: %v", name, err)
	}
	defer f.Close()
	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, errorf(ErrConfiguration, "packaged rotation set %s unreadable: %v", name, err)
	}
	defer gz.Close()
	raw, err := io.ReadAll(gz)
	if err != nil {
		return nil, errorf(ErrConfiguration, "packaged rotation set %s truncated: %v", name, err)
	}
	//4 little-endian float32 per quaternion
	if len(raw) == 0 || len(raw)%16 != 0 {
		return nil, errorf(ErrConfiguration, "packaged rotation set %s has %d bytes, not a multiple of 16", name, len(raw))
	}
	n := len(raw) / 16
	data := make([]float64, 4*n)
	for i := range data {
		bits := binary.LittleEndian.Uint32(raw[4*i:])
		data[i] = float64(math.Float32frombits(bits))
	}
	return mat.NewDense(n, 4, data), nil
}
