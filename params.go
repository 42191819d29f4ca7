/*
 * params.go, part of godock.
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

// NBParam holds the nonbonded Lennard-Jones parameters of one atom type, as
// tabulated in CHARMM-style parameter files: half the distance at the
// potential minimum, and the well depth.
type NBParam struct {
	RminHalf float64 //Angstrom
	Epsilon  float64 //kcal/mol
}

// NonbondedTable maps force-field atom types to their nonbonded parameters.
type NonbondedTable map[string]NBParam

// The parameter-table categories recognized for docking.
const (
	CatProtein   = "protein"
	CatNucleic   = "nucleic"
	CatCgenff    = "cgenff" //small molecules: ligands, co-solvents, probes
	CatWaterIons = "water_ions"
)

// ParamSource is the boundary to the force-field parameter store: it
// returns the nonbonded table of a named category.
type ParamSource interface {
	Nonbonded(category string) (NonbondedTable, error)
}

// ParamTables is a trivial in-memory ParamSource, mostly useful for tests
// and for callers that read their own parameter files.
type ParamTables map[string]NonbondedTable

func (P ParamTables) Nonbonded(category string) (NonbondedTable, error) {
	t, ok := P[category]
	if ok {
		return t, nil
	}
	return nil, errorf(ErrConfiguration, "no nonbonded table for category %q", category)
}

//chainCategory maps a chain's chemical category to its parameter table.
func chainCategory(k ChainKind) (string, error) {
	switch k {
	case Protein:
		return CatProtein, nil
	case Nucleic:
		return CatNucleic, nil
	case Ligand, NucleosidePhosphate, CoSolvent:
		return CatCgenff, nil
	case Ion, Solvent:
		return CatWaterIons, nil
	}
	return "", errorf(ErrUnsupportedEntity, "chain type %v not supported in FFT docking", k)
}

func chainNonbonded(src ParamSource, c *Chain) (NonbondedTable, error) {
	cat, err := chainCategory(c.Kind)
	if err != nil {
		return nil, errDecorate(err, "chainNonbonded")
	}
	t, err := src.Nonbonded(cat)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func entityNonbonded(src ParamSource, e Entity) (NonbondedTable, error) {
	ret := NonbondedTable{}
	merge := func(t NonbondedTable) {
		for k, v := range t {
			ret[k] = v
		}
	}
	switch e := e.(type) {
	case *Probe:
		//Predefined probe residues always use the small-molecule table,
		//regardless of the chain they sit in.
		return src.Nonbonded(CatCgenff)
	case *Chain:
		t, err := chainNonbonded(src, e)
		if err != nil {
			return nil, err
		}
		merge(t)
	case *Model:
		//Later chains overwrite earlier ones on atom-type collision.
		for _, c := range e.Chains() {
			t, err := chainNonbonded(src, c)
			if err != nil {
				return nil, err
			}
			merge(t)
		}
	case *Residue:
		if e.Chain() == nil {
			return nil, errorf(ErrUnsupportedEntity, "residue %s %d belongs to no chain", e.Name, e.ID)
		}
		t, err := chainNonbonded(src, e.Chain())
		if err != nil {
			return nil, err
		}
		merge(t)
	default:
		return nil, errorf(ErrUnsupportedEntity, "only Model, Chain, Residue or Probe entities are accepted for FFT docking, got %T", e)
	}
	return ret, nil
}

// NonbondedDict resolves the nonbonded parameter tables for one or more
// entities and merges them into a single table. On atom-type key collisions
// the last entity (and, within a Model, the last chain) wins; callers must
// make sure colliding atom types do not differ in meaning. Per-atom charges
// are not part of the result: they come from each atom's own topology
// assignment.
func NonbondedDict(src ParamSource, entities ...Entity) (NonbondedTable, error) {
	if src == nil {
		return nil, errorf(ErrConfiguration, "nil parameter source")
	}
	if len(entities) == 0 {
		return nil, errorf(ErrConfiguration, "no entities given")
	}
	ret := NonbondedTable{}
	for _, e := range entities {
		t, err := entityNonbonded(src, e)
		if err != nil {
			//the error may come from a caller-supplied ParamSource, so it
			//is not necessarily a dock.Error.
			if e2, ok := err.(Error); ok {
				e2.Decorate("NonbondedDict")
			}
			return nil, err
		}
		for k, v := range t {
			ret[k] = v
		}
	}
	return ret, nil
}
