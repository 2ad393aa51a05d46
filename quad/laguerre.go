/*
 * laguerre.go, part of stogto.
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

//Package quad provides the Gauss-Laguerre quadrature rules and the Hermite
//polynomials needed by the overlap integrals.
package quad

import (
	"math"
	"sort"

	"github.com/qcovlp/stogto"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	newtonMaxIter = 12
	newtonTol     = 1e-15
	//the Laguerre recurrence is rescaled whenever it goes over this.
	rescaleAt = 1e150
)

//Rule is a Gauss-Laguerre quadrature rule: the integral of exp(-t)f(t) over
//[0,inf) is approximated by the sum of Weights[i]*f(Nodes[i]).
//Rules returned by Laguerre are shared, so they must not be modified.
type Rule struct {
	Nodes   []float64
	Weights []float64
}

//Len returns the number of nodes in the rule.
func (R *Rule) Len() int {
	return len(R.Nodes)
}

//Integrate returns the sum of R.Weights[i]*f(R.Nodes[i]).
func (R *Rule) Integrate(f func(t float64) float64) float64 {
	vals := make([]float64, len(R.Nodes))
	for i, t := range R.Nodes {
		vals[i] = f(t)
	}
	return floats.Dot(R.Weights, vals)
}

//NewLaguerre builds the n-point Gauss-Laguerre rule. The nodes are first
//obtained as the eigenvalues of the symmetric tridiagonal Jacobi matrix
//of the Laguerre polynomials (Golub-Welsch), then polished with Newton
//steps on L_n. The weights come from the closed form
//w_i = t_i / (n^2 L_{n-1}(t_i)^2), evaluated in log space, and are finally
//normalized so they add to 1, the integral of exp(-t).
//All weights of a returned rule are positive. The weights of the largest
//nodes fall below the smallest float64 just under 200 points, and orders
//where that happens return a NumericalDomain error.
func NewLaguerre(n int) (*Rule, error) {
	if n < 1 {
		return nil, stogto.NewError(stogto.NumericalDomain, "quad.NewLaguerre", "quadrature order must be positive, got %d", n)
	}
	if n == 1 {
		return &Rule{Nodes: []float64{1}, Weights: []float64{1}}, nil
	}
	nodes, err := jacobiNodes(n)
	if err != nil {
		return nil, err
	}
	logw := make([]float64, n)
	for i, x := range nodes {
		x = polish(n, x)
		nodes[i] = x
		_, lnm1, logscale := laguerrePair(n, x)
		//w = x/(n^2 * L_{n-1}^2), with L_{n-1} = lnm1*exp(logscale)
		logw[i] = math.Log(x) - 2*math.Log(float64(n)) - 2*(math.Log(math.Abs(lnm1))+logscale)
	}
	if !sort.Float64sAreSorted(nodes) {
		sort.Sort(byNode{nodes, logw})
	}
	for i := 1; i < n; i++ {
		if nodes[i] <= nodes[i-1] || nodes[0] <= 0 {
			return nil, stogto.NewError(stogto.NumericalDomain, "quad.NewLaguerre", "degenerate quadrature nodes for order %d", n)
		}
	}
	//normalize against the largest weight first, to stay away from underflow.
	maxlog := floats.Max(logw)
	weights := make([]float64, n)
	for i, v := range logw {
		weights[i] = math.Exp(v - maxlog)
	}
	floats.Scale(1/floats.Sum(weights), weights)
	if w := floats.Min(weights); !(w > 0) {
		return nil, stogto.NewError(stogto.NumericalDomain, "quad.NewLaguerre", "order %d is too large, the smallest weights underflow to %g", n, w)
	}
	return &Rule{Nodes: nodes, Weights: weights}, nil
}

//jacobiNodes returns the eigenvalues of the Jacobi matrix for the
//Laguerre weight, in increasing order: diagonal 2i+1, off-diagonal i+1.
func jacobiNodes(n int) ([]float64, error) {
	J := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		J.SetSym(i, i, float64(2*i+1))
		if i < n-1 {
			J.SetSym(i, i+1, float64(i+1))
		}
	}
	var es mat.EigenSym
	if ok := es.Factorize(J, false); !ok {
		return nil, stogto.NewError(stogto.NumericalDomain, "quad.jacobiNodes", "eigendecomposition of the order %d Jacobi matrix failed", n)
	}
	vals := es.Values(nil)
	sort.Float64s(vals)
	return vals, nil
}

//polish refines x as a root of L_n with Newton's method.
func polish(n int, x float64) float64 {
	for it := 0; it < newtonMaxIter; it++ {
		ln, lnm1, _ := laguerrePair(n, x)
		//x L_n'(x) = n (L_n(x) - L_{n-1}(x)); both share the same scale.
		deriv := float64(n) * (ln - lnm1) / x
		if deriv == 0 {
			break
		}
		dx := ln / deriv
		if x-dx <= 0 {
			break
		}
		x -= dx
		if math.Abs(dx) <= newtonTol*math.Abs(x) {
			break
		}
	}
	return x
}

//laguerrePair returns L_n(x) and L_{n-1}(x), both divided by exp(logscale).
//The recurrence (k+1)L_{k+1} = (2k+1-x)L_k - k L_{k-1} is rescaled when the
//values grow too much, so large orders don't overflow.
func laguerrePair(n int, x float64) (ln, lnm1, logscale float64) {
	prev := 1.0   //L_0
	curr := 1 - x //L_1
	for k := 1; k < n; k++ {
		next := ((float64(2*k+1)-x)*curr - float64(k)*prev) / float64(k+1)
		prev, curr = curr, next
		if a := math.Abs(curr); a > rescaleAt {
			prev /= a
			curr /= a
			logscale += math.Log(a)
		}
	}
	return curr, prev, logscale
}

//sorts nodes and their log-weights together
type byNode struct {
	nodes, logw []float64
}

func (b byNode) Len() int           { return len(b.nodes) }
func (b byNode) Less(i, j int) bool { return b.nodes[i] < b.nodes[j] }
func (b byNode) Swap(i, j int) {
	b.nodes[i], b.nodes[j] = b.nodes[j], b.nodes[i]
	b.logw[i], b.logw[j] = b.logw[j], b.logw[i]
}
