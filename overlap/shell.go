/*
 * shell.go, part of stogto.
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
	"strconv"

	"github.com/qcovlp/stogto"
	"github.com/qcovlp/stogto/quad"
	"github.com/qcovlp/stogto/sto"
)

//Shell returns the overlap between the STO orb, centered at a, and the
//contracted GTO shell sh, centered at b, both in Bohr. stoAxis and gtoAxis
//select the cartesian component of the p-type side(s), and are ignored for
//s-type sides. order is the number of Gauss-Laguerre points to use.
//The shell's exponents are used as they are, any scale factor must have
//been applied already.
func Shell(orb sto.Orbital, sh *stogto.Shell, a, b [3]float64, stoAxis, gtoAxis stogto.Axis, order int) (float64, error) {
	if err := checkShell(orb, sh, stoAxis, gtoAxis); err != nil {
		return 0, stogto.ErrDecorate(err, "overlap.Shell")
	}
	rule, err := quad.Laguerre(order)
	if err != nil {
		return 0, stogto.ErrDecorate(err, "overlap.Shell")
	}
	return ShellRule(orb, sh, a, b, stoAxis, gtoAxis, rule)
}

//ShellRule is like Shell, but takes the quadrature rule directly.
func ShellRule(orb sto.Orbital, sh *stogto.Shell, a, b [3]float64, stoAxis, gtoAxis stogto.Axis, rule *quad.Rule) (float64, error) {
	if err := checkShell(orb, sh, stoAxis, gtoAxis); err != nil {
		return 0, stogto.ErrDecorate(err, "overlap.ShellRule")
	}
	if rule == nil || rule.Len() == 0 {
		return 0, stogto.NewError(stogto.NumericalDomain, "overlap.ShellRule", "empty quadrature rule")
	}
	c, _ := CaseFor(orb.L, sh.L) //already checked
	var d [3]float64
	for i := range d {
		d[i] = a[i] - b[i]
	}
	in := PrimitiveInput{
		N:    orb.N,
		Zeta: orb.Zeta,
		R:    math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2]),
	}
	switch c {
	case SP:
		in.Rk = gtoAxis.Component(d)
	case PS:
		in.Rk = stoAxis.Component(d)
	case PP:
		in.Rk = stoAxis.Component(d)
		in.Rl = gtoAxis.Component(d)
		if stoAxis == gtoAxis {
			in.Delta = 1
		}
	}
	var total float64
	for i, p := range sh.Primitives {
		coef, ok := p.Coeff(sh.L)
		if !ok || coef == 0 {
			continue
		}
		in.Alpha = p.Exponent
		v, err := Primitive(c, in, rule)
		if err != nil {
			return 0, stogto.ErrDecorate(err, "overlap.ShellRule[primitive "+strconv.Itoa(i)+"]")
		}
		total += coef * v
	}
	return total, nil
}

func checkShell(orb sto.Orbital, sh *stogto.Shell, stoAxis, gtoAxis stogto.Axis) error {
	if sh == nil {
		return stogto.NewError(stogto.MissingParameter, "checkShell", "nil GTO shell")
	}
	if sh.L != stogto.S && sh.L != stogto.P {
		return stogto.NewError(stogto.UnsupportedBasis, "checkShell", "unsupported GTO shell %q, only s and p are supported", sh.L.String())
	}
	if _, err := CaseFor(orb.L, sh.L); err != nil {
		return err
	}
	if orb.L == stogto.P && !validAxis(stoAxis) {
		return stogto.NewError(stogto.MissingParameter, "checkShell", "p-type STO needs an axis")
	}
	if sh.L == stogto.P && !validAxis(gtoAxis) {
		return stogto.NewError(stogto.MissingParameter, "checkShell", "p-type GTO needs an axis")
	}
	if orb.N < 1 {
		return stogto.NewError(stogto.NumericalDomain, "checkShell", "principal quantum number must be >= 1, got %d", orb.N)
	}
	if !(orb.Zeta > 0) {
		return stogto.NewError(stogto.NumericalDomain, "checkShell", "STO exponent must be positive, got %g", orb.Zeta)
	}
	return nil
}

func validAxis(a stogto.Axis) bool {
	return a >= stogto.X && a <= stogto.Z
}
