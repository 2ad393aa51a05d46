/*
 * v3_test.go, part of stogto.
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

package v3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix(t *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 6, 3})
	require.NoError(t, err)
	assert.Equal(t, 2, A.NVecs())
	assert.Equal(t, [3]float64{4, 6, 3}, A.VecArray(1))

	_, err = NewMatrix([]float64{1, 2, 3, 4})
	assert.Error(t, err)
	_, err = NewMatrix(nil)
	assert.Error(t, err)
}

func TestDisplacement(t *testing.T) {
	A := Zeros(2)
	A.SetVecArray(1, [3]float64{0, 3, 4})
	assert.Equal(t, [3]float64{0, -3, -4}, A.Displacement(0, 1))
	assert.InDelta(t, 5.0, A.Distance(0, 1), 1e-15)
	assert.InDelta(t, 5.0, A.Distance(1, 0), 1e-15)
}

func TestScaleTo(t *testing.T) {
	A, err := NewMatrix([]float64{1, -2, 0.5})
	require.NoError(t, err)
	B := Zeros(1)
	B.ScaleTo(A, 2)
	assert.Equal(t, [3]float64{2, -4, 1}, B.VecArray(0))
	assert.Equal(t, [3]float64{1, -2, 0.5}, A.VecArray(0))
}

func TestOutOfRange(t *testing.T) {
	A := Zeros(1)
	assert.PanicsWithValue(t, ErrIndexOutOfRange, func() { A.VecArray(1) })
}
