/*
 * quad_test.go, part of stogto.
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

import (
	"errors"
	"math"
	"testing"

	"github.com/qcovlp/stogto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaguerreTwoPoints(t *testing.T) {
	R, err := NewLaguerre(2)
	require.NoError(t, err)
	s2 := math.Sqrt2
	assert.InDelta(t, 2-s2, R.Nodes[0], 1e-14)
	assert.InDelta(t, 2+s2, R.Nodes[1], 1e-14)
	assert.InDelta(t, (2+s2)/4, R.Weights[0], 1e-14)
	assert.InDelta(t, (2-s2)/4, R.Weights[1], 1e-14)
}

func TestLaguerreShape(t *testing.T) {
	for _, n := range []int{1, 3, 24, 48, 96, 128} {
		R, err := NewLaguerre(n)
		require.NoError(t, err, "order %d", n)
		require.Equal(t, n, R.Len())
		var sum float64
		for i := range R.Nodes {
			assert.Greater(t, R.Nodes[i], 0.0, "order %d node %d", n, i)
			assert.Greater(t, R.Weights[i], 0.0, "order %d weight %d", n, i)
			if i > 0 {
				assert.Greater(t, R.Nodes[i], R.Nodes[i-1], "order %d node %d", n, i)
			}
			assert.False(t, math.IsNaN(R.Weights[i]))
			sum += R.Weights[i]
		}
		assert.InDelta(t, 1.0, sum, 1e-13, "order %d", n)
	}
}

//An n-point rule is exact for polynomials up to degree 2n-1,
//and the integral of exp(-t) t^k is k!.
func TestLaguerreExactness(t *testing.T) {
	R, err := NewLaguerre(10)
	require.NoError(t, err)
	for k := 0; k < 20; k++ {
		got := R.Integrate(func(x float64) float64 { return math.Pow(x, float64(k)) })
		want := math.Gamma(float64(k + 1))
		assert.InEpsilon(t, want, got, 1e-9, "moment %d", k)
	}
	R, err = NewLaguerre(128)
	require.NoError(t, err)
	for k := 0; k < 8; k++ {
		got := R.Integrate(func(x float64) float64 { return math.Pow(x, float64(k)) })
		assert.InEpsilon(t, math.Gamma(float64(k+1)), got, 1e-11, "moment %d", k)
	}
	//integral of exp(-t)cos(t) is 1/2
	R, err = NewLaguerre(48)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, R.Integrate(math.Cos), 1e-8)
}

func TestLaguerreInvalidOrder(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := NewLaguerre(n)
		require.Error(t, err)
		assert.True(t, errors.Is(err, stogto.NumericalDomain))
		_, err = Laguerre(n)
		assert.True(t, errors.Is(err, stogto.NumericalDomain))
	}
}

func TestLaguerreUnderflow(t *testing.T) {
	_, err := NewLaguerre(250)
	require.Error(t, err)
	assert.True(t, errors.Is(err, stogto.NumericalDomain))
	_, err = Laguerre(250)
	assert.True(t, errors.Is(err, stogto.NumericalDomain))
}

func TestLaguerreCache(t *testing.T) {
	Purge()
	R1, err := Laguerre(64)
	require.NoError(t, err)
	R2, err := Laguerre(64)
	require.NoError(t, err)
	assert.Same(t, R1, R2)
	R3, err := NewLaguerre(64)
	require.NoError(t, err)
	assert.NotSame(t, R1, R3)
	assert.InDeltaSlice(t, R3.Nodes, R1.Nodes, 1e-12)
}

func TestHermite(t *testing.T) {
	for _, x := range []float64{-2.5, -1, 0, 0.3, 1.7, 4} {
		h, err := Hermite(0, x)
		require.NoError(t, err)
		assert.Equal(t, 1.0, h)
		h, _ = Hermite(1, x)
		assert.InDelta(t, 2*x, h, 1e-14)
		h, _ = Hermite(2, x)
		assert.InDelta(t, 4*x*x-2, h, 1e-12)
		h, _ = Hermite(3, x)
		assert.InDelta(t, 8*x*x*x-12*x, h, 1e-11)
	}
	//H_10(0) = (-1)^5 10!/5!
	h, err := Hermite(10, 0)
	require.NoError(t, err)
	assert.Equal(t, -30240.0, h)
	//H_10(1) = 8224
	h, _ = Hermite(10, 1)
	assert.InDelta(t, 8224.0, h, 1e-9)
}

func TestHermiteTo(t *testing.T) {
	x := []float64{-1, 0, 2}
	got, err := HermiteTo(nil, x, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, -2, 14}, got, 1e-14)
	dst := make([]float64, 3)
	_, err = HermiteTo(dst, x, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, 0, 4}, dst)
}

func TestHermiteNegativeDegree(t *testing.T) {
	_, err := Hermite(-1, 0.5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, stogto.NumericalDomain))
	_, err = HermiteTo(nil, []float64{1}, -2)
	assert.True(t, errors.Is(err, stogto.NumericalDomain))
}
