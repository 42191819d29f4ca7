/*
 * params_test.go, part of godock.
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
	"testing"
)

//testTables is a tiny stand-in for the CHARMM parameter files.
func testTables() ParamTables {
	return ParamTables{
		CatProtein: {
			"C":  {RminHalf: 2.0, Epsilon: -0.11},
			"NH": {RminHalf: 1.85, Epsilon: -0.2},
		},
		CatCgenff: {
			"CG331": {RminHalf: 2.05, Epsilon: -0.078},
			"C":     {RminHalf: 1.99, Epsilon: -0.1}, //collides with protein "C"
		},
		CatWaterIons: {
			"OT": {RminHalf: 1.77, Epsilon: -0.15},
		},
	}
}

//testAtom builds an atom with its topology already assigned.
func testAtom(name, atype string, charge float64) *Atom {
	return &Atom{Name: name, Symbol: name[:1], MolName: "RES", MolID: 1,
		Topo: &TopoDef{Type: atype, Charge: charge}}
}

//testProtein returns a protein chain of n atoms of type "C", with
//alternating +-0.1 charges.
func testProtein(n int) *Chain {
	ats := make([]*Atom, n)
	for i := range ats {
		q := 0.1
		if i%2 == 1 {
			q = -0.1
		}
		ats[i] = testAtom("CA", "C", q)
	}
	return NewChain("A", Protein, []*Residue{NewResidue("ALA", 1, ats)})
}

func TestNonbondedDictChain(Te *testing.T) {
	nb, err := NonbondedDict(testTables(), testProtein(3))
	if err != nil {
		Te.Fatal(err)
	}
	if len(nb) != 2 {
		Te.Error("wrong table size", len(nb))
	}
	if nb["C"].RminHalf != 2.0 {
		Te.Error("wrong protein C parameters", nb["C"])
	}
}

func TestNonbondedDictModelMerge(Te *testing.T) {
	prot := testProtein(2)
	lig := NewChain("B", Ligand, []*Residue{
		NewResidue("LIG", 1, []*Atom{testAtom("C1", "C", 0)}),
	})
	//the ligand chain comes last, so its "C" wins the collision
	nb, err := NonbondedDict(testTables(), NewModel([]*Chain{prot, lig}))
	if err != nil {
		Te.Fatal(err)
	}
	if nb["C"].RminHalf != 1.99 {
		Te.Error("collision not resolved last-wins", nb["C"])
	}
	if _, ok := nb["NH"]; !ok {
		Te.Error("protein types lost in the merge")
	}
}

func TestProbeAlwaysSmallMolecule(Te *testing.T) {
	p := NewProbe("ACEH", []*Atom{testAtom("C", "CG331", 0.2)})
	nb, err := NonbondedDict(testTables(), p)
	if err != nil {
		Te.Fatal(err)
	}
	if _, ok := nb["CG331"]; !ok {
		Te.Error("probe did not get the small-molecule table")
	}
	if _, ok := nb["NH"]; ok {
		Te.Error("probe got a protein table")
	}
}

func TestResidueUsesItsChain(Te *testing.T) {
	c := testProtein(2)
	res := c.Residues()[0]
	nb, err := NonbondedDict(testTables(), res)
	if err != nil {
		Te.Fatal(err)
	}
	if _, ok := nb["NH"]; !ok {
		Te.Error("residue did not resolve through its chain")
	}
	orphan := NewResidue("GLY", 2, []*Atom{testAtom("CA", "C", 0)})
	if _, err := NonbondedDict(testTables(), orphan); !IsUnsupportedEntity(err) {
		Te.Error("orphan residue accepted")
	}
}

type fakeEntity struct{}

func (fakeEntity) Atoms() []*Atom { return nil }

func TestUnsupportedEntity(Te *testing.T) {
	if _, err := NonbondedDict(testTables(), fakeEntity{}); !IsUnsupportedEntity(err) {
		Te.Error("arbitrary entity accepted")
	}
	water := NewChain("W", Solvent, nil)
	//solvent resolves to the water_ions table, so it is supported
	if _, err := NonbondedDict(testTables(), water); err != nil {
		Te.Error("solvent chain rejected:", err)
	}
}

func TestNonbondedDictBadArgs(Te *testing.T) {
	if _, err := NonbondedDict(nil, testProtein(1)); !IsConfiguration(err) {
		Te.Error("nil source accepted")
	}
	if _, err := NonbondedDict(testTables()); !IsConfiguration(err) {
		Te.Error("no entities accepted")
	}
	missing := ParamTables{}
	if _, err := NonbondedDict(missing, testProtein(1)); !IsConfiguration(err) {
		Te.Error("missing category table accepted")
	}
}

func TestErrorKinds(Te *testing.T) {
	err := errorf(ErrGeometry, "bad %s", "geometry")
	if err.Error() != "bad geometry" {
		Te.Error("wrong message", err.Error())
	}
	if !IsGeometry(err) || IsConfiguration(err) || IsState(err) {
		Te.Error("kind predicates wrong")
	}
	deco := err.Decorate("caller")
	if len(deco) != 1 || deco[0] != "caller" {
		Te.Error("decoration not recorded", deco)
	}
	if IsGeometry(nil) {
		Te.Error("nil error has a kind")
	}
}
