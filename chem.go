/*
 * chem.go, part of stogto.
 *
 * Copyright 2025 The stogto Authors.
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

package stogto

import (
	"math"
	"strings"

	v3 "github.com/qcovlp/stogto/v3"
)

/**Note: Accessors here panic on out-of-range indexes instead of returning errors. If that happens
 * the program is wrong and should crash.**/

//AngMom is the angular momentum label of an orbital or shell.
//The set is closed, so an unsupported label can't sneak in as a string.
type AngMom int

const (
	S AngMom = iota
	P
	D
	F
	SP //combined Pople-style shell, one exponent with an s and a p coefficient
)

var angMomLabels = [...]string{"s", "p", "d", "f", "sp"}

func (L AngMom) String() string {
	if L < S || L > SP {
		return "?"
	}
	return angMomLabels[L]
}

//ParseAngMom returns the AngMom for the case-insensitive label s.
func ParseAngMom(s string) (AngMom, error) {
	l := strings.ToLower(strings.TrimSpace(s))
	for i, v := range angMomLabels {
		if v == l {
			return AngMom(i), nil
		}
	}
	return S, NewError(UnsupportedBasis, "ParseAngMom", "unknown angular momentum label %q", s)
}

//MarshalText implements encoding.TextMarshaler.
func (L AngMom) MarshalText() ([]byte, error) {
	if L < S || L > SP {
		return nil, NewError(UnsupportedBasis, "AngMom.MarshalText", "invalid angular momentum %d", int(L))
	}
	return []byte(L.String()), nil
}

//UnmarshalText implements encoding.TextUnmarshaler.
func (L *AngMom) UnmarshalText(text []byte) error {
	l, err := ParseAngMom(string(text))
	if err != nil {
		return err
	}
	*L = l
	return nil
}

//Axis selects a cartesian component of a p-type function.
type Axis int

const (
	NoAxis Axis = iota
	X
	Y
	Z
)

//Axes contains the cartesian axes in the order used for p-type functions.
var Axes = [3]Axis{X, Y, Z}

func (A Axis) String() string {
	switch A {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return ""
}

//ParseAxis returns the Axis for "x", "y" or "z" (case-insensitive),
//and NoAxis for the empty string.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return NoAxis, nil
	case "x":
		return X, nil
	case "y":
		return Y, nil
	case "z":
		return Z, nil
	}
	return NoAxis, NewError(MissingParameter, "ParseAxis", "invalid axis %q", s)
}

//MarshalText implements encoding.TextMarshaler. NoAxis is the empty string.
func (A Axis) MarshalText() ([]byte, error) {
	return []byte(A.String()), nil
}

//UnmarshalText implements encoding.TextUnmarshaler.
func (A *Axis) UnmarshalText(text []byte) error {
	a, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*A = a
	return nil
}

//Component returns the component of v along the axis. Panics for NoAxis.
func (A Axis) Component(v [3]float64) float64 {
	if A < X || A > Z {
		panic("stogto: Component requested for an invalid axis")
	}
	return v[A-X]
}

//Primitive is a primitive Gaussian of a contracted shell.
type Primitive struct {
	Exponent float64
	Coeffs   map[AngMom]float64
}

//Coeff returns the contraction coefficient for the angular momentum L,
//and whether the primitive has one.
func (p Primitive) Coeff(L AngMom) (float64, bool) {
	c, ok := p.Coeffs[L]
	return c, ok
}

//Shell is a contracted GTO shell.
type Shell struct {
	L          AngMom
	Scale      float64
	Primitives []Primitive
}

//MeanExponent returns the arithmetic mean of the exponents of the
//shell's primitives, or +Inf for a shell with no primitives.
func (sh *Shell) MeanExponent() float64 {
	if len(sh.Primitives) == 0 {
		return math.Inf(1)
	}
	var sum float64
	for _, p := range sh.Primitives {
		sum += p.Exponent
	}
	return sum / float64(len(sh.Primitives))
}

//Atom contains the information of an atom except for its coordinates,
//which are kept in the Molecule.
type Atom struct {
	Symbol string
	Id     int //as read from the input, 1-based in Molden files
	Z      int
}

/**Type Molecule**/

//Molecule contains the atoms, their coordinates (in Bohr) and the
//contracted GTO shells centered on each atom. It is not meant to be
//modified after creation.
type Molecule struct {
	Atoms  []*Atom
	Coords *v3.Matrix
	Basis  [][]*Shell
}

//NewMolecule makes a molecule with the atoms ats, coordinates coords and the
//per-atom shells basis. basis can be nil, in which case no atom has shells.
//It returns error if the number of atoms, coordinates and shell sets don't match.
func NewMolecule(ats []*Atom, coords *v3.Matrix, basis [][]*Shell) (*Molecule, error) {
	if ats == nil || coords == nil {
		return nil, NewError(ConfigurationError, "NewMolecule", "supplied nil atoms or coordinates")
	}
	if coords.NVecs() != len(ats) {
		return nil, NewError(ConfigurationError, "NewMolecule", "%d atoms but %d coordinates", len(ats), coords.NVecs())
	}
	if basis == nil {
		basis = make([][]*Shell, len(ats))
	}
	if len(basis) != len(ats) {
		return nil, NewError(ConfigurationError, "NewMolecule", "%d atoms but %d shell sets", len(ats), len(basis))
	}
	return &Molecule{Atoms: ats, Coords: coords, Basis: basis}, nil
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//Atom returns the Atom corresponding to the index i. Panics if
//out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i >= M.Len() {
		panic("Molecule: Requested Atom out of bounds")
	}
	return M.Atoms[i]
}

//Coord returns the coordinates of the atom i.
func (M *Molecule) Coord(i int) [3]float64 {
	return M.Coords.VecArray(i)
}

//Shells returns the shells centered on the atom i.
func (M *Molecule) Shells(i int) []*Shell {
	if i >= len(M.Basis) {
		panic("Molecule: Requested shells out of bounds")
	}
	return M.Basis[i]
}
