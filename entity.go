/*
 * entity.go, part of godock.
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

import "gonum.org/v1/gonum/mat"

//The entity model here is intentionally minimal: it carries only what grid
//generation needs (atom identity, topology assignment and the chemical
//category of each chain). Parsing structures into it, and assigning the
//topology, is the job of the caller.

// TopoDef is the topology assignment of one atom: its force-field atom type
// and its partial charge. Atoms without a TopoDef cannot be used for grid
// generation.
type TopoDef struct {
	Type   string
	Charge float64 //electron charges
}

// Atom contains the per-atom information used for parameter collection.
// Coordinates are kept separately, in a *mat.Dense with one row per atom,
// in the same order as the atoms.
type Atom struct {
	Name    string //the PDB-style atom name, e.g. "CA"
	Symbol  string
	MolName string //name of the residue this atom belongs to
	MolID   int
	Topo    *TopoDef //nil if topology has not been assigned
}

// ChainKind is the chemical category of a chain, which decides the
// force-field parameter table used for its atoms.
type ChainKind int

const (
	Protein ChainKind = iota + 1
	Nucleic
	Ligand
	NucleosidePhosphate
	CoSolvent
	Ion
	Solvent
)

var chainKindNames = map[ChainKind]string{
	Protein:             "Polypeptide(L)",
	Nucleic:             "Polyribonucleotide",
	Ligand:              "Ligand",
	NucleosidePhosphate: "NucleosidePhosphate",
	CoSolvent:           "CoSolvent",
	Ion:                 "Ion",
	Solvent:             "Solvent",
}

func (k ChainKind) String() string {
	if s, ok := chainKindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Entity is anything that can hand out an ordered list of atoms: a Chain, a
// Model, a Residue or a Probe.
type Entity interface {
	//Atoms returns the atoms of the entity, in a fixed, deterministic
	//order. For disordered atoms only the primary alternate location
	//should be present.
	Atoms() []*Atom
}

// Residue is a group of atoms with a name and an ID, belonging to a chain.
type Residue struct {
	Name  string
	ID    int
	atoms []*Atom
	chain *Chain
}

// NewResidue builds a residue from its atoms. The atoms keep the given
// order.
func NewResidue(name string, id int, atoms []*Atom) *Residue {
	return &Residue{Name: name, ID: id, atoms: atoms}
}

func (R *Residue) Atoms() []*Atom { return R.atoms }

// Chain returns the chain this residue belongs to, or nil if it is not part
// of one.
func (R *Residue) Chain() *Chain { return R.chain }

// Chain is an ordered set of residues sharing one chemical category.
type Chain struct {
	ID       string
	Kind     ChainKind
	residues []*Residue
}

// NewChain builds a chain and sets itself as the parent of every residue
// given.
func NewChain(id string, kind ChainKind, residues []*Residue) *Chain {
	C := &Chain{ID: id, Kind: kind, residues: residues}
	for _, r := range residues {
		r.chain = C
	}
	return C
}

func (C *Chain) Residues() []*Residue { return C.residues }

func (C *Chain) Atoms() []*Atom {
	var ats []*Atom
	for _, r := range C.residues {
		ats = append(ats, r.atoms...)
	}
	return ats
}

// Model is a set of chains, possibly of different chemical categories.
type Model struct {
	chains []*Chain
}

func NewModel(chains []*Chain) *Model { return &Model{chains: chains} }

func (M *Model) Chains() []*Chain { return M.chains }

func (M *Model) Atoms() []*Atom {
	var ats []*Atom
	for _, c := range M.chains {
		ats = append(ats, c.Atoms()...)
	}
	return ats
}

// Probe is one of the predefined small-molecule probe residues. Whatever
// chain it nominally sits in, its parameters always come from the
// small-molecule table.
type Probe struct {
	*Residue
}

// NewProbe builds a probe residue from its atoms.
func NewProbe(name string, atoms []*Atom) *Probe {
	return &Probe{Residue: NewResidue(name, 0, atoms)}
}

//Geometric helpers over (N,3) coordinate matrices.

// Centroid returns the mean of the given coordinates.
func Centroid(coords *mat.Dense) [3]float64 {
	n, _ := coords.Dims()
	var c [3]float64
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			c[j] += coords.At(i, j)
		}
	}
	for j := 0; j < 3; j++ {
		c[j] /= float64(n)
	}
	return c
}

//coordExtents returns the per-axis minimum and maximum of coords.
func coordExtents(coords *mat.Dense) (min, max [3]float64) {
	n, _ := coords.Dims()
	for j := 0; j < 3; j++ {
		min[j] = coords.At(0, j)
		max[j] = coords.At(0, j)
	}
	for i := 1; i < n; i++ {
		for j := 0; j < 3; j++ {
			v := coords.At(i, j)
			if v < min[j] {
				min[j] = v
			}
			if v > max[j] {
				max[j] = v
			}
		}
	}
	return min, max
}
