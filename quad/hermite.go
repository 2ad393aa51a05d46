/*
 * hermite.go, part of stogto.
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

package quad

import "github.com/qcovlp/stogto"

//Hermite returns the physicists' Hermite polynomial H_m(x), from
//H_0=1, H_1=2x, H_{k+1} = 2x H_k - 2k H_{k-1}.
func Hermite(m int, x float64) (float64, error) {
	if m < 0 {
		return 0, stogto.NewError(stogto.NumericalDomain, "quad.Hermite", "negative Hermite degree %d", m)
	}
	return hermite(m, x), nil
}

//HermiteTo puts H_m(x[i]) in dst[i] and returns dst. If dst is nil,
//a new slice is allocated. Panics if dst is not nil and its length
//differs from that of x.
func HermiteTo(dst, x []float64, m int) ([]float64, error) {
	if m < 0 {
		return nil, stogto.NewError(stogto.NumericalDomain, "quad.HermiteTo", "negative Hermite degree %d", m)
	}
	if dst == nil {
		dst = make([]float64, len(x))
	}
	if len(dst) != len(x) {
		panic("quad.HermiteTo: length mismatch")
	}
	for i, v := range x {
		dst[i] = hermite(m, v)
	}
	return dst, nil
}

func hermite(m int, x float64) float64 {
	if m == 0 {
		return 1
	}
	prev := 1.0
	curr := 2 * x
	for k := 1; k < m; k++ {
		prev, curr = curr, 2*x*curr-2*float64(k)*prev
	}
	return curr
}
