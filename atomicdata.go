/*
 * atomicdata.go, part of stogto.
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

import "strings"

//Element symbols, indexed by atomic number. Index 0 is unused.
//Only the first five periods are present.
var symbols = [...]string{"",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn", "Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn", "Sb", "Te", "I", "Xe",
}

var symbolZ = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for z, s := range symbols {
		if s != "" {
			m[s] = z
		}
	}
	return m
}()

//NormalizeSymbol returns the canonical capitalization of the element
//symbol s ("c"->"C", "CL"->"Cl"), or an error if s is not a known element.
func NormalizeSymbol(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", NewError(ConfigurationError, "NormalizeSymbol", "empty element symbol")
	}
	canon := strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	if _, ok := symbolZ[canon]; !ok {
		return "", NewError(ConfigurationError, "NormalizeSymbol", "unknown element symbol %q", s)
	}
	return canon, nil
}

//SymbolFromZ returns the symbol for the atomic number z, or the empty
//string if z is out of range.
func SymbolFromZ(z int) string {
	if z <= 0 || z >= len(symbols) {
		return ""
	}
	return symbols[z]
}

//ZFromSymbol returns the atomic number of the element with symbol s, or 0 if unknown.
func ZFromSymbol(s string) int {
	canon, err := NormalizeSymbol(s)
	if err != nil {
		return 0
	}
	return symbolZ[canon]
}
