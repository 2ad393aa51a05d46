/*
 * molden.go, part of stogto.
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

//Package molden reads molecules and their contracted Gaussian basis from
//Molden files. Only the [Atoms] and [GTO] sections are used, everything
//else is skipped.
package molden

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/qcovlp/stogto"
	v3 "github.com/qcovlp/stogto/v3"
)

//just for brevity
var trim func(string) string = strings.TrimSpace

//State is the state of the reader.
type State int

const (
	SeekSection      State = iota //outside of any section we care about
	InAtomsBlock                  //reading atom lines
	InGTOAtomHeader               //expecting "index 0"
	InGTOShellHeader              //expecting "label nprim [scale]", or a blank line
	InGTOPrimitives               //reading "exponent coeff [coeffP]" lines
)

var stateNames = [...]string{"SeekSection", "InAtomsBlock", "InGTOAtomHeader", "InGTOShellHeader", "InGTOPrimitives"}

func (s State) String() string {
	if s < SeekSection || s > InGTOPrimitives {
		return "UnknownState"
	}
	return stateNames[s]
}

//Error is the error returned for malformed Molden files. errors.Is(err, stogto.ParseError)
//is true for it.
type Error struct {
	Line  int //1-based, 0 if the problem is not in a particular line
	State State
	msg   string
	deco  []string
}

func (err *Error) Error() string {
	if err.Line > 0 {
		return fmt.Sprintf("molden: line %d (%s): %s", err.Line, err.State, err.msg)
	}
	return fmt.Sprintf("molden: %s", err.msg)
}

//Decorate adds deco to the error's call trace, unless deco is empty,
//and returns the trace.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical always returns true, a malformed file can't be used.
func (err *Error) Critical() bool { return true }

//Is allows errors.Is(err, stogto.ParseError) to match.
func (err *Error) Is(target error) bool {
	return target == stogto.ParseError
}

//reader keeps the state of the parse.
type reader struct {
	state   State
	line    int
	factor  float64 //to convert the coordinates to Bohr at the end
	seen    bool    //an [Atoms] section was found
	atoms   []*stogto.Atom
	coords  []float64
	ids     map[int]int //atom id -> index in atoms
	shells  map[int][]*stogto.Shell
	current int //atom id for the GTO block being read
	label   stogto.AngMom
	nprim   int
	scale   float64
	prims   []stogto.Primitive
}

func (R *reader) errorf(format string, args ...interface{}) *Error {
	return &Error{Line: R.line, State: R.state, msg: fmt.Sprintf(format, args...), deco: []string{"molden.Read"}}
}

//Read reads a molecule, with its coordinates in Bohr and the GTO shells of each
//atom, from the Molden-format data in r.
//sp shells are split into an s and a p shell with the same primitives.
//Shells with a scale factor other than 1 get their exponents multiplied by the
//squared scale factor.
func Read(r io.Reader) (*stogto.Molecule, error) {
	R := &reader{ids: make(map[int]int), shells: make(map[int][]*stogto.Shell), factor: stogto.A2Bohr}
	in := bufio.NewReader(r)
	var l string
	var err error
	for l, err = in.ReadString('\n'); err == nil || (errors.Is(err, io.EOF) && l != ""); l, err = in.ReadString('\n') {
		R.line++
		if perr := R.parse(trim(l)); perr != nil {
			return nil, perr
		}
		if err != nil {
			break //last line without a newline
		}
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("molden: %w", err)
	}
	return R.molecule()
}

func (R *reader) parse(l string) error {
	if strings.HasPrefix(l, "[") {
		return R.section(l)
	}
	switch R.state {
	case SeekSection:
		return nil
	case InAtomsBlock:
		return R.atom(l)
	case InGTOAtomHeader:
		return R.gtoAtom(l)
	case InGTOShellHeader:
		return R.shellHeader(l)
	case InGTOPrimitives:
		return R.primitive(l)
	}
	return R.errorf("invalid state")
}

func (R *reader) section(l string) error {
	if R.state == InGTOPrimitives {
		return R.errorf("shell ended after %d of %d primitives", len(R.prims), R.nprim)
	}
	end := strings.Index(l, "]")
	if end < 0 {
		return R.errorf("unterminated section header %q", l)
	}
	name := strings.ToLower(trim(l[1:end]))
	rest := strings.ToLower(trim(l[end+1:]))
	switch name {
	case "atoms":
		if R.seen {
			return R.errorf("more than one [Atoms] section")
		}
		switch rest {
		case "au", "(au)":
			R.factor = 1
		case "", "angs", "(angs)":
			R.factor = stogto.A2Bohr
		default:
			return R.errorf("unknown units %q for [Atoms]", rest)
		}
		R.seen = true
		R.state = InAtomsBlock
	case "gto":
		R.state = InGTOAtomHeader
	default:
		R.state = SeekSection
	}
	return nil
}

//element_name number atomic_number x y z
func (R *reader) atom(l string) error {
	if l == "" {
		return nil
	}
	f := strings.Fields(l)
	if len(f) < 6 {
		return R.errorf("atom line needs 6 fields, got %d", len(f))
	}
	id, err := strconv.Atoi(f[1])
	if err != nil {
		return R.errorf("invalid atom number %q", f[1])
	}
	z, err := strconv.Atoi(f[2])
	if err != nil {
		return R.errorf("invalid atomic number %q", f[2])
	}
	if _, ok := R.ids[id]; ok {
		return R.errorf("atom number %d repeated", id)
	}
	sym, err := stogto.NormalizeSymbol(f[0])
	if err != nil {
		//names like "C1" are common, the atomic number is reliable.
		sym = stogto.SymbolFromZ(z)
		if sym == "" {
			return R.errorf("can't tell the element of atom %q with atomic number %d", f[0], z)
		}
	}
	for _, v := range f[3:6] {
		c, err := parseFloat(v)
		if err != nil {
			return R.errorf("invalid coordinate %q", v)
		}
		R.coords = append(R.coords, c)
	}
	R.ids[id] = len(R.atoms)
	R.atoms = append(R.atoms, &stogto.Atom{Symbol: sym, Id: id, Z: z})
	return nil
}

//atom_number 0
func (R *reader) gtoAtom(l string) error {
	if l == "" {
		return nil
	}
	f := strings.Fields(l)
	id, err := strconv.Atoi(f[0])
	if err != nil || len(f) > 2 {
		return R.errorf("expected an atom header, got %q", l)
	}
	if _, ok := R.shells[id]; ok {
		return R.errorf("basis for atom %d given twice", id)
	}
	R.current = id
	R.shells[id] = []*stogto.Shell{}
	R.state = InGTOShellHeader
	return nil
}

//label number_of_primitives [scale_factor]
func (R *reader) shellHeader(l string) error {
	if l == "" {
		R.state = InGTOAtomHeader
		return nil
	}
	f := strings.Fields(l)
	if len(f) < 2 {
		return R.errorf("shell header needs a label and a number of primitives, got %q", l)
	}
	L, err := stogto.ParseAngMom(f[0])
	if err != nil {
		return R.errorf("unknown shell label %q", f[0])
	}
	n, err := strconv.Atoi(f[1])
	if err != nil || n < 1 {
		return R.errorf("invalid number of primitives %q", f[1])
	}
	R.scale = 1
	if len(f) > 2 {
		R.scale, err = parseFloat(f[2])
		if err != nil || R.scale <= 0 {
			return R.errorf("invalid scale factor %q", f[2])
		}
	}
	R.label = L
	R.nprim = n
	R.prims = make([]stogto.Primitive, 0, n)
	R.state = InGTOPrimitives
	return nil
}

//exponent coefficient [p_coefficient]
func (R *reader) primitive(l string) error {
	if l == "" {
		return R.errorf("shell ended after %d of %d primitives", len(R.prims), R.nprim)
	}
	f := strings.Fields(l)
	need := 2
	if R.label == stogto.SP {
		need = 3
	}
	if len(f) < need {
		return R.errorf("%s primitive needs %d fields, got %d", R.label, need, len(f))
	}
	vals := make([]float64, need)
	for i := range vals {
		var err error
		vals[i], err = parseFloat(f[i])
		if err != nil {
			return R.errorf("invalid number %q", f[i])
		}
	}
	p := stogto.Primitive{Exponent: vals[0] * R.scale * R.scale, Coeffs: make(map[stogto.AngMom]float64, 2)}
	if R.label == stogto.SP {
		p.Coeffs[stogto.S] = vals[1]
		p.Coeffs[stogto.P] = vals[2]
	} else {
		p.Coeffs[R.label] = vals[1]
	}
	R.prims = append(R.prims, p)
	if len(R.prims) < R.nprim {
		return nil
	}
	sh := R.shells[R.current]
	if R.label == stogto.SP {
		sh = append(sh, &stogto.Shell{L: stogto.S, Scale: R.scale, Primitives: R.prims},
			&stogto.Shell{L: stogto.P, Scale: R.scale, Primitives: R.prims})
	} else {
		sh = append(sh, &stogto.Shell{L: R.label, Scale: R.scale, Primitives: R.prims})
	}
	R.shells[R.current] = sh
	R.prims = nil
	R.state = InGTOShellHeader
	return nil
}

func (R *reader) molecule() (*stogto.Molecule, error) {
	if R.state == InGTOPrimitives {
		return nil, R.errorf("file ended after %d of %d primitives", len(R.prims), R.nprim)
	}
	if !R.seen || len(R.atoms) == 0 {
		return nil, &Error{msg: "no atoms found, missing [Atoms] section", deco: []string{"molden.Read"}}
	}
	basis := make([][]*stogto.Shell, len(R.atoms))
	for id, sh := range R.shells {
		i, ok := R.ids[id]
		if !ok {
			return nil, &Error{msg: fmt.Sprintf("[GTO] has a basis for atom %d, which is not in [Atoms]", id), deco: []string{"molden.Read"}}
		}
		basis[i] = sh
	}
	coords, err := v3.NewMatrix(R.coords)
	if err != nil {
		return nil, stogto.ErrDecorate(err, "molden.Read")
	}
	if R.factor != 1 {
		coords.ScaleTo(coords, R.factor)
	}
	mol, err := stogto.NewMolecule(R.atoms, coords, basis)
	if err != nil {
		return nil, stogto.ErrDecorate(err, "molden.Read")
	}
	return mol, nil
}

//parseFloat also accepts Fortran double precision exponents, as in 1.0D+01.
func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.Map(func(r rune) rune {
		if r == 'D' || r == 'd' {
			return 'E'
		}
		return r
	}, s), 64)
}
