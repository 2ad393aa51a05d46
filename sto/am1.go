/*
 * am1.go, part of stogto.
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

package sto

import "github.com/qcovlp/stogto"

//AM1 exponents, in 1/Bohr, from M. J. S. Dewar, E. G. Zoebisch, E. F. Healy and
//J. J. P. Stewart, "AM1: A New General Purpose Quantum Mechanical Molecular Model",
//J. Am. Chem. Soc. 107, 3902 (1985). AM1 has no core orbitals, the C 1s entry
//is a placeholder.
var am1 = []Element{
	{Symbol: "H", Orbitals: []Orbital{
		{N: 1, L: stogto.S, Zeta: 1.88078, Label: "1s"},
	}},
	{Symbol: "C", Orbitals: []Orbital{
		{N: 1, L: stogto.S, Zeta: 0.0, Label: "1s_core"},
		{N: 2, L: stogto.S, Zeta: 1.808665, Label: "2s_val"},
		{N: 2, L: stogto.P, Zeta: 1.685116, Label: "2p_val"},
	}},
	{Symbol: "N", Orbitals: []Orbital{
		{N: 2, L: stogto.S, Zeta: 2.315410, Label: "2s_val"},
		{N: 2, L: stogto.P, Zeta: 2.157940, Label: "2p_val"},
	}},
	{Symbol: "O", Orbitals: []Orbital{
		{N: 2, L: stogto.S, Zeta: 3.108032, Label: "2s_val"},
		{N: 2, L: stogto.P, Zeta: 2.524039, Label: "2p_val"},
	}},
}

//Default returns a table with the AM1 parameters for H, C, N and O.
func Default() *Table {
	T, err := NewTable(am1...)
	if err != nil {
		panic("sto: invalid built-in AM1 table: " + err.Error())
	}
	return T
}
