// Package chart renders derived series as standalone HTML documents using
// go-echarts. Every call builds a fresh chart from the Plot it is given;
// nothing is shared between renderings.
package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/benzi604/earthquakes/internal/domain"
)

// Line renders the plot as a line chart, the shape used for the
// average-magnitude series.
func Line(w io.Writer, p domain.Plot) error {
	line := charts.NewLine()
	line.SetGlobalOptions(chartOptions(p)...)

	data := make([]opts.LineData, len(p.Series.Values))
	for i, v := range p.Series.Values {
		data[i] = opts.LineData{Value: v}
	}
	line.SetXAxis(yearLabels(p.Series.Years)).AddSeries(p.YLabel, data)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("render line chart: %w", err)
	}
	return nil
}

// Bar renders the plot as a bar chart, the shape used for the yearly
// event-count series.
func Bar(w io.Writer, p domain.Plot) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(chartOptions(p)...)

	data := make([]opts.BarData, len(p.Series.Values))
	for i, v := range p.Series.Values {
		data[i] = opts.BarData{Value: v}
	}
	bar.SetXAxis(yearLabels(p.Series.Years)).AddSeries(p.YLabel, data)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("render bar chart: %w", err)
	}
	return nil
}

// WriteLineFile renders a line chart to path, creating parent directories.
func WriteLineFile(path string, p domain.Plot) error {
	return writeFile(path, p, Line)
}

// WriteBarFile renders a bar chart to path, creating parent directories.
func WriteBarFile(path string, p domain.Plot) error {
	return writeFile(path, p, Bar)
}

func writeFile(path string, p domain.Plot, render func(io.Writer, domain.Plot) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create chart dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}

	if err := render(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func chartOptions(p domain.Plot) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{PageTitle: p.Title}),
		charts.WithTitleOpts(opts.Title{Title: p.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: p.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: p.YLabel}),
	}
}

func yearLabels(years []int) []string {
	labels := make([]string, len(years))
	for i, y := range years {
		labels[i] = strconv.Itoa(y)
	}
	return labels
}
