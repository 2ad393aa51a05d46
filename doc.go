/*
 * doc.go, part of stogto.
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

/*
Package stogto is the main package of the stogto library. It provides the atom, shell and molecule
structures used to compute overlap matrices between Slater-type orbitals (STO) and contracted
Gaussian-type orbitals (GTO).

	**stogto Capabilities**

	Reads Molden files (plain, gzip or zstd compressed) into a Molecule: atoms, coordinates
	in Bohr and the contracted GTO shells of each atom (package molden).

	Keeps an immutable, per-element table of STO parameters (n, l, zeta), with AM1 defaults,
	that can be extended from TOML or YAML files (package sto).

	Generates Gauss-Laguerre quadrature rules of any order and evaluates physicists' Hermite
	polynomials (package quad).

	Evaluates STO-GTO overlap integrals for the s-s, s-p, p-s and p-p cases, for single shells
	or for the full valence overlap matrix of a molecule, serially or concurrently
	(package overlap).

	Reads molecular orbital coefficients and transition densities written by NEXMD (package
	nexmd), stores computed matrices in SQLite (package archive) and plots them as heat
	maps (package ovlplot).

All lengths in this library are in atomic units (Bohr). Coordinates read in Angstrom are converted
on input, using the A2Bohr constant.

Errors returned by the library implement the Error interface, and carry one of the ErrorKind
values, so they can be tested with errors.Is, for instance errors.Is(err, stogto.MissingParameter).
*/
package stogto
