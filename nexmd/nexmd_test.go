/*
 * nexmd_test.go, part of stogto.
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

package nexmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qcovlp/stogto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const vhf = `0.00 1 2 3 4
0.10 5 6 7 8
0.20 1 2 3
`

func TestReadMO(t *testing.T) {
	M, time, err := ReadMO(strings.NewReader(vhf), 2)
	require.NoError(t, err)
	assert.Equal(t, 0.1, time)
	//the file has the transpose
	assert.True(t, mat.Equal(mat.NewDense(2, 2, []float64{5, 7, 6, 8}), M))

	_, _, err = ReadMO(strings.NewReader(vhf), 3)
	assert.True(t, errors.Is(err, stogto.ParseError))
	_, _, err = ReadMO(strings.NewReader(vhf), 4)
	assert.True(t, errors.Is(err, ErrNotFound))
	_, _, err = ReadMO(strings.NewReader(vhf), 0)
	assert.Error(t, err)
	_, _, err = ReadMO(strings.NewReader("0.0 1 x 3 4\n"), 1)
	assert.True(t, errors.Is(err, stogto.ParseError))
}

const tdm = `1 0.00 1 2 3 4
2 0.00 9 8 7 6
1 0.50 0.1 0.2 0.3 0.4
2 0.50 -1 -2 -3 -4`

func TestReadTDM(t *testing.T) {
	M, err := ReadTDM(strings.NewReader(tdm), 2, 0.5, true)
	require.NoError(t, err)
	assert.True(t, mat.Equal(mat.NewDense(2, 2, []float64{-1, -2, -3, -4}), M))

	D, err := ReadTDM(strings.NewReader(tdm), 1, 0.5, false)
	require.NoError(t, err)
	r, c := D.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 1, c)
	assert.Equal(t, 0.3, D.At(2, 0))

	_, err = ReadTDM(strings.NewReader(tdm), 3, 0.5, true)
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = ReadTDM(strings.NewReader(tdm), 1, 0.25, true)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	mo := filepath.Join(dir, "vhf.out")
	require.NoError(t, os.WriteFile(mo, []byte(vhf), 0o600))
	M, _, err := ReadMOFile(mo, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, M.At(0, 1))
	td := filepath.Join(dir, "transition-densities.out")
	require.NoError(t, os.WriteFile(td, []byte(tdm), 0o600))
	T, err := ReadTDMFile(td, 1, 0, true)
	require.NoError(t, err)
	assert.Equal(t, 2.0, T.At(0, 1))
	_, _, err = ReadMOFile(filepath.Join(dir, "nope"), 1)
	assert.Error(t, err)
}
