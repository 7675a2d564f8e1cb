/*
* Sweep plotting module
* Copyright (C) 2025  Artem Stefankiv
*
* This program is free software: you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation, either version 3 of the License, or
* (at your option) any later version.
*
* This program is distributed in the hope that it will be useful,
* but WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
* GNU General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package main

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PlotSweep renders the true entropy (dashed, cross markers) and every
// estimator curve of one sweep against the parameter axis and saves the chart
// to fpath. NaN cells from failed estimator calls are skipped so the
// remaining points still draw.
func PlotSweep(result *SweepResult, fpath string) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = fmt.Sprintf("%s: len(X)=%d, dim(X)=%d", result.Family, result.NSamples, result.NFeatures)
	p.X.Label.Text = result.XLabel
	p.Y.Label.Text = "Estimated entropy, bits"

	trueLine, truePoints, err := plotter.NewLinePoints(curveXYs(result.Params, result.True))
	if err != nil {
		return err
	}
	trueLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	truePoints.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(trueLine, truePoints)
	p.Legend.Add("true", trueLine)

	for i, name := range result.Names {
		line, lineErr := plotter.NewLine(curveXYs(result.Params, result.Estimated[name]))
		if lineErr != nil {
			return lineErr
		}
		line.LineStyle.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(name, line)
	}

	return p.Save(8*vg.Inch, 6*vg.Inch, fpath)
}

func curveXYs(params, values []float64) plotter.XYs {
	xys := make(plotter.XYs, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		xys = append(xys, plotter.XY{X: params[i], Y: v})
	}
	return xys
}
