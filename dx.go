/*
 * dx.go, part of godock.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

//The OpenDX layout here reproduces, field by field, the files consumed by
//the FFT docking pipeline, including its three-digit exponents
//(-5.000000e+000). Do not "fix" the formatting.

//fmtE formats v in scientific notation with 6 decimals and a three-digit
//exponent.
func fmtE(v float64) string {
	s := strconv.FormatFloat(v, 'e', 6, 64)
	i := strings.IndexByte(s, 'e')
	mant, exp := s[:i], s[i+2:]
	sign := s[i+1]
	for len(exp) < 3 {
		exp = "0" + exp
	}
	return mant + "e" + string(sign) + exp
}

// WriteDX writes a flat box-ordered grid (x varying fastest) as an OpenDX
// scalar field: dims points per axis, the given minimum corner, and a
// uniform spacing on the three axes. Values go six to a line.
func WriteDX(w io.Writer, gridVals []float64, dims [3]int, min [3]float64, spacing float64) error {
	if n := dims[0] * dims[1] * dims[2]; n != len(gridVals) {
		return errorf(ErrShapeMismatch, "grid has %d values for %dx%dx%d points", len(gridVals), dims[0], dims[1], dims[2])
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "#Generated dx file for fft grid\n")
	fmt.Fprintf(bw, "object 1 class gridpositions counts %d %d %d\n", dims[0], dims[1], dims[2])
	fmt.Fprintf(bw, "origin %s %s %s\n", fmtE(min[0]), fmtE(min[1]), fmtE(min[2]))
	fmt.Fprintf(bw, "delta %s 0.000000e+000 0.000000e+000\n", fmtE(spacing))
	fmt.Fprintf(bw, "delta 0.000000e+000 %s 0.000000e+000\n", fmtE(spacing))
	fmt.Fprintf(bw, "delta 0.000000e+000 0.000000e+000 %s\n", fmtE(spacing))
	fmt.Fprintf(bw, "object 2 class gridconnections counts %d %d %d\n", dims[0], dims[1], dims[2])
	fmt.Fprintf(bw, "object 3 class array type double rank 0 items %d data follows\n", len(gridVals))
	for i, v := range gridVals {
		fmt.Fprintf(bw, "%s ", fmtE(v))
		if (i+1)%6 == 0 {
			fmt.Fprintf(bw, "\n")
		}
	}
	fmt.Fprintf(bw, "\n")
	fmt.Fprintf(bw, "attribute \"dep\" string \"positions\"\n")
	fmt.Fprintf(bw, "object \"regular positions regular connections\" class field\n")
	fmt.Fprintf(bw, "component \"positions\" value 1\n")
	fmt.Fprintf(bw, "component \"connections\" value 2\n")
	fmt.Fprintf(bw, "component \"data\" value 3")
	if err := bw.Flush(); err != nil {
		return errorf(ErrConfiguration, "writing dx data: %v", err)
	}
	return nil
}

// SaveDX writes a grid to a DX file. The write goes to a temporary file in
// the destination directory, synced and then renamed over filename, so a
// crash never leaves a half-written grid behind.
func SaveDX(filename string, gridVals []float64, dims [3]int, min [3]float64, spacing float64) error {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp*")
	if err != nil {
		return errorf(ErrConfiguration, "creating %s: %v", filename, err)
	}
	defer os.Remove(tmp.Name()) //no-op after a successful rename
	if err := WriteDX(tmp, gridVals, dims, min, spacing); err != nil {
		tmp.Close()
		return errDecorate(err, "SaveDX "+filename)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errorf(ErrConfiguration, "syncing %s: %v", filename, err)
	}
	if err := tmp.Close(); err != nil {
		return errorf(ErrConfiguration, "closing %s: %v", filename, err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return errorf(ErrConfiguration, "renaming into %s: %v", filename, err)
	}
	return nil
}
