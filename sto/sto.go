/*
 * sto.go, part of stogto.
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

//Package sto keeps the Slater-type orbital parameters of each element.
//A Table is built once, and never modified afterwards. Tables that differ
//from an existing one are obtained with the With method, which returns
//a new Table.
package sto

import (
	"fmt"

	"github.com/qcovlp/stogto"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

//Orbital is one Slater orbital: principal quantum number N, angular momentum
//L (s or p) and exponent Zeta, in 1/Bohr. The normalization is not stored, it
//is computed from N and Zeta when needed.
type Orbital struct {
	N     int           `json:"n"`
	L     stogto.AngMom `json:"l"`
	Zeta  float64       `json:"zeta"`
	Label string        `json:"label,omitempty"`
}

func (o Orbital) String() string {
	if o.Label != "" {
		return fmt.Sprintf("%d%s(%s, zeta=%g)", o.N, o.L, o.Label, o.Zeta)
	}
	return fmt.Sprintf("%d%s(zeta=%g)", o.N, o.L, o.Zeta)
}

//Element contains all the STOs for one element, core and valence, in the
//order they were registered.
type Element struct {
	Symbol   string
	Orbitals []Orbital
}

//Table maps element symbols to their STO parameters.
type Table struct {
	elements map[string]Element
}

//NewTable builds a table from the given elements. An element given more than
//once replaces the previous one. It returns an error if a symbol is not a
//known element, or an orbital has n<1, an angular momentum other than s or p,
//or a negative exponent. A zero exponent is allowed, it marks core orbitals
//without parameters, which are never picked as valence if a higher n exists.
func NewTable(elems ...Element) (*Table, error) {
	T := &Table{elements: make(map[string]Element, len(elems))}
	if err := T.add(elems); err != nil {
		return nil, stogto.ErrDecorate(err, "sto.NewTable")
	}
	return T, nil
}

//With returns a new table with the elements of T, plus elems. Elements in elems
//replace those with the same symbol in T. T is not modified.
func (T *Table) With(elems ...Element) (*Table, error) {
	N := &Table{elements: make(map[string]Element, len(T.elements)+len(elems))}
	for k, v := range T.elements {
		N.elements[k] = v
	}
	if err := N.add(elems); err != nil {
		return nil, stogto.ErrDecorate(err, "sto.With")
	}
	return N, nil
}

func (T *Table) add(elems []Element) error {
	for _, e := range elems {
		sym, err := stogto.NormalizeSymbol(e.Symbol)
		if err != nil {
			return err
		}
		orbs := make([]Orbital, len(e.Orbitals))
		for i, o := range e.Orbitals {
			if o.N < 1 {
				return stogto.NewError(stogto.ConfigurationError, "add", "%s orbital %d: principal quantum number must be >= 1, got %d", sym, i, o.N)
			}
			if o.L != stogto.S && o.L != stogto.P {
				return stogto.NewError(stogto.ConfigurationError, "add", "%s orbital %d: only s and p STOs are supported, got %s", sym, i, o.L)
			}
			if o.Zeta < 0 {
				return stogto.NewError(stogto.ConfigurationError, "add", "%s orbital %d: negative exponent %g", sym, i, o.Zeta)
			}
			orbs[i] = o
		}
		T.elements[sym] = Element{Symbol: sym, Orbitals: orbs}
	}
	return nil
}

//Lookup returns the STO parameters for the element symbol, which is
//case-insensitive. It returns a ConfigurationError if the element is not
//in the table.
func (T *Table) Lookup(symbol string) (Element, error) {
	sym, err := stogto.NormalizeSymbol(symbol)
	if err != nil {
		return Element{}, stogto.NewError(stogto.ConfigurationError, "sto.Lookup", "no STO parameters registered for element %q", symbol)
	}
	e, ok := T.elements[sym]
	if !ok {
		return Element{}, stogto.NewError(stogto.ConfigurationError, "sto.Lookup", "no STO parameters registered for element %q", symbol)
	}
	//The caller gets its own copy of the orbitals, so the table stays immutable.
	return Element{Symbol: e.Symbol, Orbitals: slices.Clone(e.Orbitals)}, nil
}

//Symbols returns the sorted symbols of the elements in the table.
func (T *Table) Symbols() []string {
	k := maps.Keys(T.elements)
	slices.Sort(k)
	return k
}

//Len returns the number of elements in the table.
func (T *Table) Len() int {
	return len(T.elements)
}

//Valence returns, for the element e, the orbital with the largest n
//for the angular momentum L, and true, or false if the element has
//no orbitals of that type. Ties go to the first registered orbital.
func (e Element) Valence(L stogto.AngMom) (Orbital, bool) {
	var best Orbital
	found := false
	for _, o := range e.Orbitals {
		if o.L != L {
			continue
		}
		if !found || o.N > best.N {
			best = o
			found = true
		}
	}
	return best, found
}
