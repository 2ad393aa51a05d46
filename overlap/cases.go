/*
 * cases.go, part of stogto.
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

	"github.com/qcovlp/stogto"
	"github.com/qcovlp/stogto/quad"
	"gonum.org/v1/gonum/floats"
)

//All four cases reduce, after the Gaussian transform of the Slater function,
//to a Gauss-Laguerre sum of the kernel
//
//	K(t) = (zeta^2/4)^(a+1) t^-(a+2) B^-b H_m(sqrt(t)) exp(-mu R^2) * ang(t)
//
//with B = alpha + zeta^2/(4t) and mu = alpha zeta^2/(zeta^2 + 4 alpha t).
//(a, b, m) depend on the case and on n, ang is 1 except for p-p.

//Case is one of the four STO/GTO angular momentum combinations.
type Case int

const (
	SS Case = iota //s STO, s GTO
	SP             //s STO, p GTO
	PS             //p STO, s GTO
	PP             //p STO, p GTO
)

var caseNames = [...]string{"ss", "sp", "ps", "pp"}

func (c Case) String() string {
	if c < SS || c > PP {
		return "??"
	}
	return caseNames[c]
}

//CaseFor returns the Case for an STO with angular momentum sto and a
//GTO with angular momentum gto. It returns an UnsupportedBasis error
//for anything other than s and p.
func CaseFor(sto, gto stogto.AngMom) (Case, error) {
	switch {
	case sto == stogto.S && gto == stogto.S:
		return SS, nil
	case sto == stogto.S && gto == stogto.P:
		return SP, nil
	case sto == stogto.P && gto == stogto.S:
		return PS, nil
	case sto == stogto.P && gto == stogto.P:
		return PP, nil
	}
	return SS, stogto.NewError(stogto.UnsupportedBasis, "overlap.CaseFor", "unsupported STO/GTO combination %s/%s", sto, gto)
}

//kernel parameters of a case
type params struct {
	a float64
	b float64
	m int
}

func (c Case) params(n int) params {
	fn := float64(n)
	switch c {
	case SS:
		return params{a: -0.5 - 0.5*fn, b: 1.5, m: n}
	case SP:
		return params{a: 0.5 - 0.5*fn, b: 2.5, m: n}
	case PS:
		return params{a: -0.5 * fn, b: 2.5, m: n - 1}
	case PP:
		return params{a: -0.5 * fn, b: 1.5, m: n - 1}
	}
	panic("overlap: invalid case")
}

//PrimitiveInput contains what is needed to obtain the overlap between
//one STO and one primitive Gaussian. Distances are in Bohr.
type PrimitiveInput struct {
	N     int     //principal quantum number of the STO
	Zeta  float64 //STO exponent
	Alpha float64 //GTO exponent
	R     float64 //distance between the centers
	//Rk is the component of the displacement (STO center minus GTO center)
	//along the axis of the p-type function in the sp and ps cases, and along
	//the STO axis in the pp case. Rl is the component along the GTO axis, and
	//Delta is 1 if both axes are the same and 0 otherwise. Both are only used for pp.
	Rk    float64
	Rl    float64
	Delta float64
}

func (in PrimitiveInput) check(caller string) error {
	if in.N < 1 {
		return stogto.NewError(stogto.NumericalDomain, caller, "principal quantum number must be >= 1, got %d", in.N)
	}
	if !(in.Zeta > 0) {
		return stogto.NewError(stogto.NumericalDomain, caller, "STO exponent must be positive, got %g", in.Zeta)
	}
	if !(in.Alpha > 0) {
		return stogto.NewError(stogto.NumericalDomain, caller, "GTO exponent must be positive, got %g", in.Alpha)
	}
	return nil
}

//Prefactor returns the constant that multiplies the quadrature sum for the
//case c. rk is ignored for ss and pp.
func Prefactor(c Case, n int, zeta, alpha, rk float64) float64 {
	switch c {
	case SS:
		return NormSTOs(n, zeta) * NormGTOs(alpha) * math.Pi * math.Pow(2, -float64(n))
	case SP:
		return NormSTOs(n, zeta) * NormGTOp(alpha) * math.Pi * math.Pow(2, -float64(n)) * rk
	case PS:
		return -NormSTOp(n, zeta) * NormGTOs(alpha) * math.Pi * math.Pow(2, -float64(n-1)) * alpha * rk
	case PP:
		return NormSTOp(n, zeta) * NormGTOp(alpha) * math.Pi * math.Pow(2, -float64(n-1))
	}
	panic("overlap: invalid case")
}

//QuadSum returns the Gauss-Laguerre sum of the kernel of the case c,
//without the prefactor.
func QuadSum(c Case, in PrimitiveInput, rule *quad.Rule) (float64, error) {
	if err := in.check("overlap.QuadSum"); err != nil {
		return 0, err
	}
	if c < SS || c > PP {
		return 0, stogto.NewError(stogto.UnsupportedBasis, "overlap.QuadSum", "invalid case %d", int(c))
	}
	if rule == nil || rule.Len() == 0 {
		return 0, stogto.NewError(stogto.NumericalDomain, "overlap.QuadSum", "empty quadrature rule")
	}
	p := c.params(in.N)
	roots := make([]float64, rule.Len())
	for i, t := range rule.Nodes {
		roots[i] = math.Sqrt(t)
	}
	herm, err := quad.HermiteTo(nil, roots, p.m)
	if err != nil {
		return 0, stogto.ErrDecorate(err, "overlap.QuadSum")
	}
	z2 := in.Zeta * in.Zeta
	alpha := in.Alpha
	r2 := in.R * in.R
	pref := math.Pow(z2/4, p.a+1)
	terms := make([]float64, rule.Len())
	for i, t := range rule.Nodes {
		B := alpha + z2/(4*t)
		mu := alpha * z2 / (z2 + 4*alpha*t)
		k := pref * math.Pow(t, -(p.a+2)) * math.Pow(B, -p.b) * herm[i] * math.Exp(-mu*r2)
		if c == PP {
			d := 4*alpha*t + z2
			k *= -4*alpha*z2*t/(d*d)*in.Rk*in.Rl + 2*t/d*in.Delta
		}
		terms[i] = k
	}
	return floats.Dot(rule.Weights, terms), nil
}

//Primitive returns the overlap between one STO and one normalized primitive
//Gaussian (without contraction coefficient) for the case c, using the
//quadrature rule.
func Primitive(c Case, in PrimitiveInput, rule *quad.Rule) (float64, error) {
	sum, err := QuadSum(c, in, rule)
	if err != nil {
		return 0, stogto.ErrDecorate(err, "overlap.Primitive")
	}
	return Prefactor(c, in.N, in.Zeta, in.Alpha, in.Rk) * sum, nil
}
