/*
 * molden_test.go, part of stogto.
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

package molden

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/qcovlp/stogto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//CH with STO-3G, in the format ORCA and Gaussian write.
const ch = `[Molden Format]
[Title]
 CH radical
[Atoms] AU
C     1    6     0.000000     0.000000     0.000000
H     2    1     0.000000     0.000000     2.116000
[GTO]
  1 0
 s    3 1.00
  0.7161683735D+02  0.1543289673D+00
  0.1304509632D+02  0.5353281423D+00
  0.3530512160D+01  0.4446345422D+00
 sp   3 1.00
  0.2941249355D+01 -0.9996722919D-01  0.1559162750D+00
  0.6834830964D+00  0.3995128261D+00  0.6076837186D+00
  0.2222899159D+00  0.7001154689D+00  0.3919573931D+00

  2 0
 s    3 1.24
  0.2227660584D+01  0.1543289673D+00
  0.4057711562D+00  0.5353281423D+00
  0.1098175104D+00  0.4446345422D+00

[MO]
 Sym= 1a
 Ene= -11.2
 Spin= Alpha
 Occup= 2.0
  1  0.99
`

func TestRead(t *testing.T) {
	mol, err := Read(strings.NewReader(ch))
	require.NoError(t, err)
	require.Equal(t, 2, mol.Len())
	assert.Equal(t, "C", mol.Atom(0).Symbol)
	assert.Equal(t, 2, mol.Atom(1).Id)
	assert.Equal(t, [3]float64{0, 0, 2.116}, mol.Coord(1))

	c := mol.Shells(0)
	require.Len(t, c, 3)
	assert.Equal(t, stogto.S, c[0].L)
	assert.Equal(t, stogto.S, c[1].L)
	assert.Equal(t, stogto.P, c[2].L)
	//the sp shell was split, both halves have both coefficients
	assert.Equal(t, c[1].Primitives, c[2].Primitives)
	cs, ok := c[2].Primitives[0].Coeff(stogto.S)
	require.True(t, ok)
	assert.InDelta(t, -0.09996722919, cs, 1e-15)
	cp, _ := c[2].Primitives[0].Coeff(stogto.P)
	assert.InDelta(t, 0.1559162750, cp, 1e-15)
	assert.InDelta(t, 71.61683735, c[0].Primitives[0].Exponent, 1e-10)

	//scale factor 1.24 on H
	h := mol.Shells(1)
	require.Len(t, h, 1)
	assert.Equal(t, 1.24, h[0].Scale)
	assert.InDelta(t, 0.2227660584*1.24*1.24, h[0].Primitives[0].Exponent, 1e-12)
	assert.InDelta(t, 0.16885540, h[0].Primitives[2].Exponent, 1e-6)
}

func TestAngstrom(t *testing.T) {
	in := "[Atoms] Angs\nC1 1 6 0.0 0.0 1.0\nO 2 8 0 0 0\n"
	mol, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.InDelta(t, stogto.A2Bohr, mol.Coord(0)[2], 1e-12)
	//"C1" is not a symbol, the atomic number decides
	assert.Equal(t, "C", mol.Atom(0).Symbol)
	assert.Empty(t, mol.Shells(1))
}

func TestHigherShells(t *testing.T) {
	in := `[Atoms] AU
O 1 8 0 0 0
[5D]
[GTO]
1 0
s 1 1.0
 1.0 1.0
d 1 1.0
 0.8 1.0
p 2
 5.0 0.3
 1.0 0.7
`
	mol, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	sh := mol.Shells(0)
	require.Len(t, sh, 3)
	assert.Equal(t, stogto.D, sh[1].L)
	assert.Equal(t, stogto.P, sh[2].L)
	assert.Len(t, sh[2].Primitives, 2)
}

func TestReadErrors(t *testing.T) {
	bad := []struct {
		name  string
		in    string
		line  int
		state State
	}{
		{"no atoms", "[GTO]\n1 0\ns 1 1.0\n 1.0 1.0\n", 0, SeekSection},
		{"short atom", "[Atoms] AU\nC 1 6 0 0\n", 2, InAtomsBlock},
		{"bad coordinate", "[Atoms] AU\nC 1 6 0 0 x\n", 2, InAtomsBlock},
		{"units", "[Atoms] nm\nC 1 6 0 0 0\n", 1, SeekSection},
		{"label", "[Atoms] AU\nC 1 6 0 0 0\n[GTO]\n1 0\ng 1 1.0\n 1.0 1.0\n", 5, InGTOShellHeader},
		{"count", "[Atoms] AU\nC 1 6 0 0 0\n[GTO]\n1 0\ns 3 1.0\n 1.0 1.0\n\n", 7, InGTOPrimitives},
		{"eof", "[Atoms] AU\nC 1 6 0 0 0\n[GTO]\n1 0\ns 3 1.0\n 1.0 1.0\n", 6, InGTOPrimitives},
		{"sp coefficients", "[Atoms] AU\nC 1 6 0 0 0\n[GTO]\n1 0\nsp 1 1.0\n 1.0 1.0\n", 6, InGTOPrimitives},
		{"unknown atom", "[Atoms] AU\nC 1 6 0 0 0\n[GTO]\n2 0\ns 1 1.0\n 1.0 1.0\n", 0, SeekSection},
		{"section", "[Atoms] AU\nC 1 6 0 0 0\n[GTO]\n1 0\ns 2 1.0\n 1.0 1.0\n[MO]\n", 7, InGTOPrimitives},
	}
	for _, v := range bad {
		_, err := Read(strings.NewReader(v.in))
		require.Error(t, err, v.name)
		assert.True(t, errors.Is(err, stogto.ParseError), v.name)
		var merr *Error
		require.True(t, errors.As(err, &merr), v.name)
		assert.Equal(t, v.line, merr.Line, v.name)
		if v.line > 0 {
			assert.Equal(t, v.state, merr.State, v.name)
		}
	}
}

func TestNoTrailingNewline(t *testing.T) {
	mol, err := Read(strings.NewReader("[Atoms] AU\nH 1 1 0 0 0\n[GTO]\n1 0\ns 1\n 1.0 1.0"))
	require.NoError(t, err)
	assert.Len(t, mol.Shells(0), 1)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "ch.molden")
	require.NoError(t, os.WriteFile(plain, []byte(ch), 0o600))

	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, err := gw.Write([]byte(ch))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	gzname := filepath.Join(dir, "ch.molden.gz")
	require.NoError(t, os.WriteFile(gzname, gz.Bytes(), 0o600))

	var zs bytes.Buffer
	zw, err := zstd.NewWriter(&zs)
	require.NoError(t, err)
	_, err = zw.Write([]byte(ch))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	zsname := filepath.Join(dir, "ch.molden.zst")
	require.NoError(t, os.WriteFile(zsname, zs.Bytes(), 0o600))

	ref, err := ReadFile(plain)
	require.NoError(t, err)
	for _, name := range []string{gzname, zsname} {
		mol, err := ReadFile(name)
		require.NoError(t, err, name)
		assert.Equal(t, ref.Atoms, mol.Atoms, name)
		assert.Equal(t, ref.Basis, mol.Basis, name)
	}
	_, err = ReadFile(filepath.Join(dir, "missing.molden"))
	assert.Error(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.gz"), []byte(ch), 0o600))
	_, err = ReadFile(filepath.Join(dir, "bad.gz"))
	assert.Error(t, err)
}
