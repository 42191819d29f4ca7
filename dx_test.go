/*
 * dx_test.go, part of godock.
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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteDXLayout(Te *testing.T) {
	vals := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	var buf bytes.Buffer
	err := WriteDX(&buf, vals, [3]int{2, 2, 2}, [3]float64{-1, -1, -1}, 1.0)
	if err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	want := []string{
		"#Generated dx file for fft grid",
		"object 1 class gridpositions counts 2 2 2",
		"origin -1.000000e+000 -1.000000e+000 -1.000000e+000",
		"delta 1.000000e+000 0.000000e+000 0.000000e+000",
		"delta 0.000000e+000 1.000000e+000 0.000000e+000",
		"delta 0.000000e+000 0.000000e+000 1.000000e+000",
		"object 2 class gridconnections counts 2 2 2",
		"object 3 class array type double rank 0 items 8 data follows",
		"0.000000e+000 1.000000e+000 2.000000e+000 3.000000e+000 4.000000e+000 5.000000e+000 ",
		"6.000000e+000 7.000000e+000 ",
		"attribute \"dep\" string \"positions\"",
		"object \"regular positions regular connections\" class field",
		"component \"positions\" value 1",
		"component \"connections\" value 2",
		"component \"data\" value 3",
	}
	if len(lines) != len(want) {
		Te.Fatal("wrong number of lines:", len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			Te.Errorf("line %d:\n got %q\nwant %q", i, lines[i], want[i])
		}
	}
}

func TestWriteDXMismatch(Te *testing.T) {
	var buf bytes.Buffer
	err := WriteDX(&buf, make([]float64, 7), [3]int{2, 2, 2}, [3]float64{0, 0, 0}, 1.0)
	if !IsShapeMismatch(err) {
		Te.Error("size mismatch accepted")
	}
}

func TestSaveDX(Te *testing.T) {
	dir := Te.TempDir()
	name := filepath.Join(dir, "grid.dx")
	vals := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	if err := SaveDX(name, vals, [3]int{2, 2, 2}, [3]float64{0, 0, 0}, 0.5); err != nil {
		Te.Fatal(err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteDX(&buf, vals, [3]int{2, 2, 2}, [3]float64{0, 0, 0}, 0.5); err != nil {
		Te.Fatal(err)
	}
	if !bytes.Equal(data, buf.Bytes()) {
		Te.Error("file content differs from the writer output")
	}
	//no temporary files left behind
	entries, err := os.ReadDir(dir)
	if err != nil {
		Te.Fatal(err)
	}
	if len(entries) != 1 {
		Te.Error("temporary files left in the directory")
	}
}
