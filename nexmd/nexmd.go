/*
 * nexmd.go, part of stogto.
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

//Package nexmd reads the molecular orbital and transition density matrices
//written by NEXMD excited-state dynamics runs, so they can be projected
//onto the valence overlap matrices.
package nexmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/qcovlp/stogto"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

//ErrNotFound is returned when the requested step, or state and time,
//is not in the file.
var ErrNotFound = errors.New("nexmd: data not found")

//TimeTol is the relative tolerance used to match times in ReadTDM.
const TimeTol = 1e-9

//ReadMO reads the MO coefficient matrix for the 1-based step from r, in the
//format of vhf.out: one line per step, with the time followed by the nBf*nBf
//coefficients of the transposed matrix. It returns the nBf x nBf matrix and the time.
func ReadMO(r io.Reader, step int) (*mat.Dense, float64, error) {
	if step < 1 {
		return nil, 0, stogto.NewError(stogto.ConfigurationError, "nexmd.ReadMO", "steps start at 1, got %d", step)
	}
	in := bufio.NewReader(r)
	n := 0
	var l string
	var err error
	for l, err = in.ReadString('\n'); err == nil || l != ""; l, err = in.ReadString('\n') {
		n++
		if n == step {
			vals, perr := parseLine(l, n)
			if perr != nil {
				return nil, 0, stogto.ErrDecorate(perr, "nexmd.ReadMO")
			}
			if len(vals) < 2 {
				return nil, 0, stogto.NewError(stogto.ParseError, "nexmd.ReadMO", "line %d has no coefficients", n)
			}
			M, merr := square(vals[1:], n)
			if merr != nil {
				return nil, 0, stogto.ErrDecorate(merr, "nexmd.ReadMO")
			}
			//the file has the transpose
			T := mat.DenseCopyOf(M.T())
			return T, vals[0], nil
		}
		if err != nil {
			break
		}
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, 0, fmt.Errorf("nexmd: %w", err)
	}
	return nil, 0, fmt.Errorf("%w: step %d, the file has %d", ErrNotFound, step, n)
}

//ReadTDM reads the transition density matrix for the given excited state and time
//from r, in the format of transition-densities.out: one line per state and step,
//with the state, the time, and the matrix elements. If full is true, the lines
//contain the whole nBf x nBf matrix, otherwise only its diagonal, which is
//returned as a nBf x 1 matrix.
func ReadTDM(r io.Reader, state int, time float64, full bool) (*mat.Dense, error) {
	in := bufio.NewReader(r)
	n := 0
	var l string
	var err error
	for l, err = in.ReadString('\n'); err == nil || l != ""; l, err = in.ReadString('\n') {
		n++
		f := strings.Fields(l)
		if len(f) >= 2 {
			st, serr := strconv.Atoi(f[0])
			t, terr := strconv.ParseFloat(f[1], 64)
			if serr == nil && terr == nil && st == state && scalar.EqualWithinAbsOrRel(t, time, TimeTol, TimeTol) {
				vals, perr := parseLine(l, n)
				if perr != nil {
					return nil, stogto.ErrDecorate(perr, "nexmd.ReadTDM")
				}
				vals = vals[2:]
				if len(vals) == 0 {
					return nil, stogto.NewError(stogto.ParseError, "nexmd.ReadTDM", "line %d has no matrix elements", n)
				}
				if !full {
					return mat.NewDense(len(vals), 1, vals), nil
				}
				M, merr := square(vals, n)
				if merr != nil {
					return nil, stogto.ErrDecorate(merr, "nexmd.ReadTDM")
				}
				return M, nil
			}
		}
		if err != nil {
			break
		}
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("nexmd: %w", err)
	}
	return nil, fmt.Errorf("%w: state %d at time %g", ErrNotFound, state, time)
}

//ReadMOFile is like ReadMO, but reads from the file name.
func ReadMOFile(name string, step int) (*mat.Dense, float64, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, 0, fmt.Errorf("nexmd: %w", err)
	}
	defer f.Close()
	return ReadMO(f, step)
}

//ReadTDMFile is like ReadTDM, but reads from the file name.
func ReadTDMFile(name string, state int, time float64, full bool) (*mat.Dense, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("nexmd: %w", err)
	}
	defer f.Close()
	return ReadTDM(f, state, time, full)
}

func parseLine(l string, lineno int) ([]float64, error) {
	f := strings.Fields(l)
	vals := make([]float64, len(f))
	for i, v := range f {
		var err error
		vals[i], err = strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, stogto.NewError(stogto.ParseError, "parseLine", "line %d, field %d: invalid number %q", lineno, i+1, v)
		}
	}
	return vals, nil
}

//square returns a row-major nBf x nBf matrix with the data in vals.
func square(vals []float64, lineno int) (*mat.Dense, error) {
	nbf := int(math.Round(math.Sqrt(float64(len(vals)))))
	if nbf*nbf != len(vals) {
		return nil, stogto.NewError(stogto.ParseError, "square", "line %d: %d elements is not a square matrix", lineno, len(vals))
	}
	return mat.NewDense(nbf, nbf, vals), nil
}
