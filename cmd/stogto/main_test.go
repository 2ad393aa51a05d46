/*
 * main_test.go, part of stogto.
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

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qcovlp/stogto"
	"github.com/qcovlp/stogto/overlap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ch = `[Molden Format]
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

`

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--log-file", filepath.Join(t.TempDir(), "stogto.log")))
	err := root.Execute()
	return out.String(), err
}

func TestMatrix(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "ch.molden")
	require.NoError(t, os.WriteFile(name, []byte(ch), 0o600))
	db := filepath.Join(dir, "runs.db")

	out, err := run(t, "matrix", name, "--format", "json", "--quad", "48", "--cpus", "2", "--archive", db)
	require.NoError(t, err)
	var M overlap.Matrix
	require.NoError(t, json.Unmarshal([]byte(out), &M))
	r, c := M.Dims()
	assert.Equal(t, 5, r)
	assert.Equal(t, 5, c)
	assert.Equal(t, "C1 2s", M.Rows[0].Label)
	assert.Equal(t, "H2 s_val", M.Cols[4].Label)

	out, err = run(t, "matrix", name, "--quad", "48", "--width", "10")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 6)

	out, err = run(t, "runs", "--archive", db)
	require.NoError(t, err)
	assert.Contains(t, out, "ch.molden")
	assert.Contains(t, out, "5x5 quad=48")

	_, err = run(t, "matrix", name, "--format", "xml")
	assert.Error(t, err)
	_, err = run(t, "matrix", filepath.Join(dir, "missing.molden"))
	assert.Error(t, err)
}

func TestOutputFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "ch.molden")
	require.NoError(t, os.WriteFile(name, []byte(ch), 0o600))
	stdout, err := run(t, "matrix", name, "--quad", "48")
	require.NoError(t, err)

	target := filepath.Join(dir, "S.txt")
	out, err := run(t, "matrix", name, "--quad", "48", "-o", target)
	require.NoError(t, err)
	assert.Empty(t, out)
	written, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, stdout, string(written))

	_, err = run(t, "matrix", name, "--quad", "48", "-o", filepath.Join(dir, "missing", "S.txt"))
	assert.Error(t, err)

	failed := errors.New("disk full")
	err = writeFile(filepath.Join(dir, "partial.txt"), func(w io.Writer) error { return failed })
	assert.ErrorIs(t, err, failed)
	assert.NoError(t, writeFile(filepath.Join(dir, "ok.txt"), func(w io.Writer) error {
		_, err := io.WriteString(w, "ok")
		return err
	}))
}

func TestEnvironment(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "ch.molden")
	require.NoError(t, os.WriteFile(name, []byte(ch), 0o600))
	t.Setenv("STOGTO_QUAD", "0")
	_, err := run(t, "matrix", name)
	require.Error(t, err)
	assert.True(t, errors.Is(err, stogto.NumericalDomain))
}

func TestElements(t *testing.T) {
	out, err := run(t, "elements")
	require.NoError(t, err)
	assert.Contains(t, out, "C  ")
	assert.Contains(t, out, "1.808665")

	reg := filepath.Join(t.TempDir(), "reg.yaml")
	require.NoError(t, os.WriteFile(reg, []byte("elements:\n  - symbol: he\n    orbitals:\n      - {n: 1, l: s, zeta: 1.6875}\n"), 0o600))
	out, err = run(t, "elements", "--registry", reg)
	require.NoError(t, err)
	assert.Equal(t, "He  1s(zeta=1.6875)\n", out)

	out, err = run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}
