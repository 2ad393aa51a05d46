/*
 * valence.go, part of stogto.
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

package overlap

import (
	"fmt"

	"github.com/qcovlp/stogto"
	"github.com/qcovlp/stogto/sto"
)

//STOFn is one row of the valence overlap matrix: a valence STO of an atom,
//with the cartesian component for p-type orbitals.
type STOFn struct {
	Atom    int         `json:"atom"` //0-based index in the molecule
	Symbol  string      `json:"symbol"`
	Orbital sto.Orbital `json:"orbital"`
	Axis    stogto.Axis `json:"axis,omitempty"`
	Label   string      `json:"label"`
}

//GTOFn is one column of the valence overlap matrix: a valence shell
//of an atom, with the cartesian component for p shells.
type GTOFn struct {
	Atom    int           `json:"atom"`
	Symbol  string        `json:"symbol"`
	L       stogto.AngMom `json:"l"`
	Shell   int           `json:"shell"` //index among the shells of the atom
	Axis    stogto.Axis   `json:"axis,omitempty"`
	Label   string        `json:"label"`
	PShells int           `json:"pshells,omitempty"` //p shells on the atom, only the first is used
}

//ValenceSShell returns the index of the s shell with the smallest mean
//exponent (the most diffuse one) and true, or false if there are no s shells.
//Ties go to the first shell.
func ValenceSShell(shells []*stogto.Shell) (int, bool) {
	idx := -1
	var best float64
	for i, sh := range shells {
		if sh.L != stogto.S {
			continue
		}
		m := sh.MeanExponent()
		if idx < 0 || m < best {
			idx = i
			best = m
		}
	}
	return idx, idx >= 0
}

//FirstPShell returns the index of the first p shell, the number of p shells
//in shells, and true, or false if there are none.
//Split-valence basis sets have more than one p shell, and only the first
//is used for the valence space. The caller decides what to do about that.
func FirstPShell(shells []*stogto.Shell) (idx, count int, ok bool) {
	idx = -1
	for i, sh := range shells {
		if sh.L != stogto.P {
			continue
		}
		if idx < 0 {
			idx = i
		}
		count++
	}
	return idx, count, idx >= 0
}

//ValenceFunctions returns the valence STOs (rows) and the valence GTO functions
//(columns) of mol. For each atom, in order, the STO s and p orbitals with the
//largest n are taken from table, and the most diffuse s shell and the first p
//shell are taken from the basis. p functions are expanded into x, y and z
//components. An atom with more than one p shell is logged as a warning, if O
//has a logger, and its p columns have PShells > 1.
//It returns a ConfigurationError if an element is not in table.
func ValenceFunctions(mol stogto.Basiser, table *sto.Table, O *Options) ([]STOFn, []GTOFn, error) {
	if O == nil {
		O = DefaultOptions()
	}
	var rows []STOFn
	var cols []GTOFn
	for ai := 0; ai < mol.Len(); ai++ {
		at := mol.Atom(ai)
		el, err := table.Lookup(at.Symbol)
		if err != nil {
			return nil, nil, stogto.ErrDecorate(err, fmt.Sprintf("overlap.ValenceFunctions[atom %d]", ai+1))
		}
		sym := el.Symbol
		if o, ok := el.Valence(stogto.S); ok {
			rows = append(rows, STOFn{Atom: ai, Symbol: sym, Orbital: o, Label: fmt.Sprintf("%s%d %ds", sym, ai+1, o.N)})
		}
		if o, ok := el.Valence(stogto.P); ok {
			for _, ax := range stogto.Axes {
				rows = append(rows, STOFn{Atom: ai, Symbol: sym, Orbital: o, Axis: ax, Label: fmt.Sprintf("%s%d %dp_%s", sym, ai+1, o.N, ax)})
			}
		}
		shells := mol.Shells(ai)
		if si, ok := ValenceSShell(shells); ok {
			cols = append(cols, GTOFn{Atom: ai, Symbol: sym, L: stogto.S, Shell: si, Label: fmt.Sprintf("%s%d s_val", sym, ai+1)})
		}
		if pi, n, ok := FirstPShell(shells); ok {
			if n > 1 {
				O.warn("more than one p shell, only the first one is used", "atom", fmt.Sprintf("%s%d", sym, ai+1), "pshells", n)
			}
			for _, ax := range stogto.Axes {
				cols = append(cols, GTOFn{Atom: ai, Symbol: sym, L: stogto.P, Shell: pi, Axis: ax, Label: fmt.Sprintf("%s%d p_%s", sym, ai+1, ax), PShells: n})
			}
		}
	}
	return rows, cols, nil
}
