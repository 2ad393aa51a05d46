/*
 * matrix.go, part of stogto.
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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/qcovlp/stogto"
	"github.com/qcovlp/stogto/quad"
	"github.com/qcovlp/stogto/sto"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

//Matrix is a valence overlap matrix. S[i,j] is the overlap between the
//STO Rows[i] and the GTO function Cols[j]. S is nil if there are no rows
//or no columns.
type Matrix struct {
	S    *mat.Dense
	Rows []STOFn
	Cols []GTOFn
}

//Dims returns the number of rows and columns of the matrix.
func (M *Matrix) Dims() (int, int) {
	return len(M.Rows), len(M.Cols)
}

//At returns the overlap between the STO i and the GTO function j.
func (M *Matrix) At(i, j int) float64 {
	return M.S.At(i, j)
}

//BuildValence returns the overlap matrix between the valence STOs and the
//valence GTO functions of mol, as selected by ValenceFunctions. Each element
//is obtained with an order-point Gauss-Laguerre rule. Any error aborts the
//whole matrix. If O.Cpus() is larger than 1, rows are computed concurrently.
//Atoms with several p shells are reported through the PShells field of the
//columns, and logged only if O carries a logger.
func BuildValence(mol stogto.Basiser, table *sto.Table, order int, O *Options) (*Matrix, error) {
	if O == nil {
		O = DefaultOptions()
	}
	rule, err := quad.Laguerre(order)
	if err != nil {
		return nil, stogto.ErrDecorate(err, "overlap.BuildValence")
	}
	rows, cols, err := ValenceFunctions(mol, table, O)
	if err != nil {
		return nil, stogto.ErrDecorate(err, "overlap.BuildValence")
	}
	M := &Matrix{Rows: rows, Cols: cols}
	O.debug("building valence overlap matrix", "rows", len(rows), "cols", len(cols), "order", order, "cpus", O.Cpus())
	if len(rows) == 0 || len(cols) == 0 {
		return M, nil
	}
	M.S = mat.NewDense(len(rows), len(cols), nil)
	fill := func(i int) error {
		r := rows[i]
		a := mol.Coord(r.Atom)
		for j, c := range cols {
			b := mol.Coord(c.Atom)
			sh := mol.Shells(c.Atom)[c.Shell]
			v, err := ShellRule(r.Orbital, sh, a, b, r.Axis, c.Axis, rule)
			if err != nil {
				return stogto.ErrDecorate(err, fmt.Sprintf("overlap.BuildValence[%s,%s]", r.Label, c.Label))
			}
			//each goroutine writes its own row only
			M.S.Set(i, j, v)
		}
		return nil
	}
	if O.Cpus() <= 1 {
		for i := range rows {
			if err := fill(i); err != nil {
				return nil, err
			}
		}
		return M, nil
	}
	var g errgroup.Group
	g.SetLimit(O.Cpus())
	for i := range rows {
		i := i
		g.Go(func() error { return fill(i) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return M, nil
}

//Format writes the matrix as a table with labelled rows and columns to w.
//Each field is width characters wide, and values have 6 decimals.
func (M *Matrix) Format(w io.Writer, width int) error {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", width))
	for _, c := range M.Cols {
		fmt.Fprintf(&b, "%*s", width, c.Label)
	}
	b.WriteString("\n")
	for i, r := range M.Rows {
		fmt.Fprintf(&b, "%*s", width, r.Label)
		for j := range M.Cols {
			fmt.Fprintf(&b, "%*.6f", width, M.S.At(i, j))
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (M *Matrix) String() string {
	var b strings.Builder
	M.Format(&b, 12)
	return b.String()
}

//data returns the elements of the matrix in row-major order.
func (M *Matrix) data() [][]float64 {
	r, c := M.Dims()
	d := make([][]float64, r)
	for i := range d {
		d[i] = make([]float64, c)
		if M.S != nil {
			mat.Row(d[i], i, M.S)
		}
	}
	return d
}

func (M *Matrix) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		Rows []STOFn     `json:"rows"`
		Cols []GTOFn     `json:"cols"`
		Data [][]float64 `json:"data"`
	}{
		Rows: M.Rows,
		Cols: M.Cols,
		Data: M.data(),
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (M *Matrix) UnmarshalJSON(b []byte) error {
	var a struct {
		Rows []STOFn     `json:"rows"`
		Cols []GTOFn     `json:"cols"`
		Data [][]float64 `json:"data"`
	}
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	if len(a.Data) != len(a.Rows) {
		return stogto.NewError(stogto.ParseError, "Matrix.UnmarshalJSON", "%d rows of data for %d row labels", len(a.Data), len(a.Rows))
	}
	M.Rows = a.Rows
	M.Cols = a.Cols
	M.S = nil
	if len(a.Rows) == 0 || len(a.Cols) == 0 {
		return nil
	}
	M.S = mat.NewDense(len(a.Rows), len(a.Cols), nil)
	for i, row := range a.Data {
		if len(row) != len(a.Cols) {
			return stogto.NewError(stogto.ParseError, "Matrix.UnmarshalJSON", "row %d has %d elements, expected %d", i, len(row), len(a.Cols))
		}
		M.S.SetRow(i, row)
	}
	return nil
}
