/*
 * interfaces.go, part of stogto.
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

// Atomer is the basic interface for a set of atoms.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

// Basiser is an Atomer that also carries, for each atom,
// its centre and its ordered contracted GTO shells.
type Basiser interface {
	Atomer

	//Coord returns the position, in Bohr, of the atom with index i.
	Coord(i int) [3]float64

	//Shells returns the ordered shells centered on the atom i.
	Shells(i int) []*Shell
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the caller to the decoration slice and returns the slice. An empty string just returns the current value.
	Critical() bool
}
