/*
 * gonum.go, part of stogto.
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

//gonum.go contains what is needed for handling the gonum/mat types.

package v3

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space.
//Within the package it is understood that a "vector" is a row vector, i.e. the
//cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

//Returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//Generate and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 || l == 0 {
		return nil, &Error{fmt.Sprintf("Input slice length %d not divisible by %d or empty", l, cols), []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//return the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(not3xXMatrix)
	}
	return r
}

//VecArray returns the ith vector of F as an array.
func (F *Matrix) VecArray(i int) [3]float64 {
	if i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return [3]float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

//SetVecArray sets the ith vector of F to v.
func (F *Matrix) SetVecArray(i int, v [3]float64) {
	if i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	for k := 0; k < 3; k++ {
		F.Set(i, k, v[k])
	}
}

//Displacement returns the vector from the jth to the ith vector of F (vec_i - vec_j).
func (F *Matrix) Displacement(i, j int) [3]float64 {
	a := F.VecArray(i)
	b := F.VecArray(j)
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

//Distance returns the euclidean distance between the ith and jth vectors of F.
func (F *Matrix) Distance(i, j int) float64 {
	d := F.Displacement(i, j)
	return math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
}

//ScaleTo puts in F the matrix A scaled by factor, for instance, to change units.
func (F *Matrix) ScaleTo(A *Matrix, factor float64) {
	F.Scale(factor, A.Dense)
}

//Returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r, c := F.Dims()
	v := make([]string, r+2)
	v[0] = "\n["
	v[len(v)-1] = " ]"
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, F.Dense)
		if i == 0 {
			v[i+1] = fmt.Sprintf("%8.4f %8.4f %8.4f\n", row[0], row[1], row[2])
			continue
		}
		v[i+1] = fmt.Sprintf(" %8.4f %8.4f %8.4f\n", row[0], row[1], row[2])
	}
	v[len(v)-2] = strings.Replace(v[len(v)-2], "\n", "", 1)
	return strings.Join(v, "")
}

//Errors

//Error is the same as stogto.Error but avoids a circular import.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	return fmt.Sprintf("stogto/v3: %s", err.message)
}

//Decorate adds the dec string to the decoration slice of strings of the error,
//and returns the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

//PanicMsg is the type used for all the panics raised in the v3 package.
//Any panic that is not of this type comes from another package.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	not3xXMatrix       = PanicMsg("stogto/v3: A Matrix should have 3 columns")
	ErrIndexOutOfRange = PanicMsg("stogto/v3: Index out of range")
)
