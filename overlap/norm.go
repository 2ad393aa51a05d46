/*
 * norm.go, part of stogto.
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
	"math"
)

//Normalization constants for the primitive functions. Exponents are in 1/Bohr^2
//for GTOs and 1/Bohr for STOs.

//NormGTOs returns the normalization constant of an s-type primitive Gaussian
//with exponent alpha, (2alpha/pi)^(3/4).
func NormGTOs(alpha float64) float64 {
	return math.Pow(2*alpha/math.Pi, 0.75)
}

//NormGTOp returns the normalization constant of one cartesian component of a
//p-type primitive Gaussian, sqrt(2)*(2alpha)^(5/4)*pi^(-3/4).
func NormGTOp(alpha float64) float64 {
	return math.Sqrt2 * math.Pow(2*alpha, 1.25) * math.Pow(math.Pi, -0.75)
}

//NormSTOs returns the normalization constant of an s-type Slater orbital with
//principal quantum number n and exponent zeta, (2zeta)^(n+1/2)/sqrt(4pi(2n)!).
func NormSTOs(n int, zeta float64) float64 {
	return math.Pow(2*zeta, float64(n)+0.5) / math.Sqrt(4*math.Pi*factorial(2*n))
}

//NormSTOp returns the normalization constant of one cartesian component of a
//p-type Slater orbital, sqrt(3) times NormSTOs.
func NormSTOp(n int, zeta float64) float64 {
	return math.Sqrt(3) * NormSTOs(n, zeta)
}

//factorial returns k! as a float64. The product is exact up to 22!.
func factorial(k int) float64 {
	f := 1.0
	for i := 2; i <= k; i++ {
		f *= float64(i)
	}
	return f
}
