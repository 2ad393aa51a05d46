/*
 * heatmap.go, part of stogto.
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

//Package ovlplot draws overlap matrices.
package ovlplot

import (
	"math"

	"github.com/qcovlp/stogto"
	"github.com/qcovlp/stogto/overlap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

//grid adapts an overlap matrix to plotter.GridXYZ. Columns go along X
//and rows along Y, with the first row on top.
type grid struct {
	m *overlap.Matrix
}

func (g grid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g grid) Z(c, r int) float64 {
	nr, _ := g.m.Dims()
	return g.m.At(nr-1-r, c)
}

func (g grid) X(c int) float64 { return float64(c) }

func (g grid) Y(r int) float64 { return float64(r) }

//absMax returns the largest absolute value in the matrix, or 1 if it is 0.
func absMax(M *overlap.Matrix) float64 {
	r, c := M.Dims()
	max := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			max = math.Max(max, math.Abs(M.At(i, j)))
		}
	}
	if max == 0 {
		return 1
	}
	return max
}

//HeatMapPlot returns a heat map plot of M, with a diverging blue-red
//color scale centered at 0 and the function labels on the axes.
func HeatMapPlot(M *overlap.Matrix, title string) (*plot.Plot, error) {
	r, c := M.Dims()
	if r == 0 || c == 0 {
		return nil, stogto.NewError(stogto.MissingParameter, "ovlplot.HeatMapPlot", "can't plot an empty matrix")
	}
	max := absMax(M)
	cm := moreland.SmoothBlueRed()
	cm.SetMin(-max)
	cm.SetMax(max)
	h := plotter.NewHeatMap(grid{M}, cm.Palette(255))
	h.Min = -max
	h.Max = max

	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.Add(h)

	xt := make([]plot.Tick, c)
	for j, col := range M.Cols {
		xt[j] = plot.Tick{Value: float64(j), Label: col.Label}
	}
	yt := make([]plot.Tick, r)
	for i, row := range M.Rows {
		yt[i] = plot.Tick{Value: float64(r - 1 - i), Label: row.Label}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xt)
	p.Y.Tick.Marker = plot.ConstantTicks(yt)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	p.X.Label.Text = "GTO"
	p.Y.Label.Text = "STO"
	//Constant axes
	p.X.Min = -0.5
	p.X.Max = float64(c) - 0.5
	p.Y.Min = -0.5
	p.Y.Max = float64(r) - 0.5
	return p, nil
}

//HeatMap saves a heat map of M to filename. The format is given by
//the extension (png, svg, pdf...).
func HeatMap(M *overlap.Matrix, title, filename string) error {
	p, err := HeatMapPlot(M, title)
	if err != nil {
		return stogto.ErrDecorate(err, "ovlplot.HeatMap")
	}
	r, c := M.Dims()
	//about 1 cm per function, plus room for the labels
	w := vg.Length(c)*vg.Centimeter + 4*vg.Centimeter
	hgt := vg.Length(r)*vg.Centimeter + 4*vg.Centimeter
	if err := p.Save(w, hgt, filename); err != nil {
		return err
	}
	return nil
}
