// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvlopt/economy"
)

const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// ErrEmptyHistory is returned when there is nothing to plot.
var ErrEmptyHistory = errors.New("report: empty history")

// PlotLaborers draws one line per labor (laborers against tick) and saves
// the chart to path. The image format follows the file extension
// (.png, .svg, .pdf, ...).
func PlotLaborers(history []economy.Snapshot, path string) error {
	if len(history) == 0 {
		return ErrEmptyHistory
	}

	p := plot.New()
	p.Title.Text = "Labor allocation"
	p.X.Label.Text = "tick"
	p.Y.Label.Text = "laborers"

	lines := make([]interface{}, 0, 2*economy.NumLabors)
	for _, l := range economy.Labors {
		pts := make(plotter.XYs, len(history))
		for i, snap := range history {
			pts[i].X = float64(snap.Tick)
			pts[i].Y = float64(snap.Laborers[l])
		}
		lines = append(lines, l.String(), pts)
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return fmt.Errorf("report: add lines: %w", err)
	}
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}

	return nil
}
