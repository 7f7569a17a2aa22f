// Copyright 2025 go-paxsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package chart draws benchmark timings as line charts of milliseconds
// against prefix size, one line per algorithm.
package chart

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/ajroetker/go-paxsort/bench"
)

// Scale selects the y axis of a chart.
type Scale int

const (
	Linear Scale = iota
	Log
)

// Base file names, without extension, written by SaveAll.
const (
	LinearFile = "sort_plot_linear"
	LogFile    = "sort_plot_log"
)

const (
	width  = 10 * vg.Inch
	height = 6 * vg.Inch
	dpi    = 300
)

// ErrNoTimings is returned when there is nothing to draw.
var ErrNoTimings = errors.New("no timings to plot")

// labels maps timing log columns to legend entries. Other columns are
// labelled with their own name.
var labels = map[string]string{
	"SelectionSort": "Selection Sort",
	"InsertionSort": "Insertion Sort",
	"QuickSort":     "Quick Sort",
	"StdSort":       "slices.SortFunc",
}

func (s Scale) title() string {
	if s == Log {
		return "Сортировка — логарифмическая шкала"
	}
	return "Сортировка — обычный масштаб"
}

// New builds a chart of results. names are the algorithm columns, and every
// result must carry one duration per name.
//
// A log scale cannot show zero, so on a Log chart points at 0 ms are left
// out of their line.
func New(names []string, results []bench.Result, scale Scale) (*plot.Plot, error) {
	if len(names) == 0 || len(results) == 0 {
		return nil, ErrNoTimings
	}
	for _, r := range results {
		if len(r.Durations) != len(names) {
			return nil, fmt.Errorf("timings for size %d have %d columns, want %d", r.Size, len(r.Durations), len(names))
		}
	}

	p := plot.New()
	p.Title.Text = scale.title()
	p.X.Label.Text = "Размер массива"
	p.Y.Label.Text = "Время (мс)"
	p.Legend.Top = true
	p.Legend.Left = true

	grid := plotter.NewGrid()
	if scale == Log {
		dashes := []vg.Length{vg.Points(3), vg.Points(3)}
		grid.Vertical.Dashes, grid.Horizontal.Dashes = dashes, dashes
		grid.Vertical.Width, grid.Horizontal.Width = vg.Points(0.5), vg.Points(0.5)
	}
	p.Add(grid)

	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, name := range names {
		xys := make(plotter.XYs, 0, len(results))
		for _, r := range results {
			ms := float64(r.Durations[i].Milliseconds())
			if scale == Log && ms <= 0 {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(r.Size), Y: ms})
			minY, maxY = math.Min(minY, ms), math.Max(maxY, ms)
		}
		if len(xys) == 0 {
			continue
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		p.Add(line, points)

		label, ok := labels[name]
		if !ok {
			label = name
		}
		p.Legend.Add(label, line, points)
	}

	if scale == Log {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
		// The axis range must stay positive and non-empty.
		switch {
		case math.IsInf(minY, 1):
			minY, maxY = 1, 10
		case minY == maxY:
			minY, maxY = minY/2, maxY*2
		}
		p.Y.Min, p.Y.Max = minY, maxY
	}
	return p, nil
}

// Save draws p into path. The format follows the file extension; PNG is
// rendered at 300 dpi.
func Save(p *plot.Plot, path string) (err error) {
	if filepath.Ext(path) != ".png" {
		return p.Save(width, height, path)
	}

	c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// SaveAll writes the linear and the log chart of results into dir as
// LinearFile and LogFile with the given extension (png, svg, pdf, ...). It
// returns the paths written.
func SaveAll(dir, format string, names []string, results []bench.Result) ([]string, error) {
	var paths []string
	for _, c := range []struct {
		file  string
		scale Scale
	}{
		{LinearFile, Linear},
		{LogFile, Log},
	} {
		p, err := New(names, results, c.scale)
		if err != nil {
			return paths, err
		}
		path := filepath.Join(dir, c.file+"."+format)
		if err := Save(p, path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
