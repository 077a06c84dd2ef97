// Package charts renders breakpoint tables and spell comparisons as
// interactive HTML pages.
package charts

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-dpr/internal/errors"
)

// Config holds the chart look
type Config struct {
	Width  string
	Height string
	Theme  string
	Colors []string
}

// DefaultConfig returns the default chart look
func DefaultConfig() Config {
	return Config{
		Width:  "900px",
		Height: "500px",
		Theme:  "light",
		Colors: []string{"#5470C6", "#EE6666", "#91CC75", "#FAC858"},
	}
}

// BreakpointChart plots baseline and modified DPR against target AC. The
// subtitle names the breakpoint.
func BreakpointChart(title string, table *dnd5e.BreakpointTable, cfg Config) *charts.Line {
	line := charts.NewLine()
	subtitle := "Never worth it in this range"
	if table.Breakpoint > 0 {
		subtitle = fmt.Sprintf("Use %s up to AC %d", table.Option, table.Breakpoint)
	}
	line.SetGlobalOptions(globalOptions(cfg, title, subtitle, "Target AC", "Damage per round")...)

	xLabels := make([]string, len(table.Rows))
	baseline := make([]opts.LineData, len(table.Rows))
	modified := make([]opts.LineData, len(table.Rows))
	for i, row := range table.Rows {
		xLabels[i] = strconv.Itoa(row.AC)
		baseline[i] = opts.LineData{Value: row.BaselineDPR}
		modified[i] = opts.LineData{Value: row.ModifiedDPR}
	}

	line.SetXAxis(xLabels).
		AddSeries("Baseline", baseline).
		AddSeries(table.Option, modified).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false)}),
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}),
		)

	return line
}

// ComparisonChart is a bar chart of total expected damage per spell
func ComparisonChart(comparison *dnd5e.SpellComparison, cfg Config) *charts.Bar {
	bar := charts.NewBar()
	subtitle := ""
	if comparison.BestEfficiency != "" {
		subtitle = "Most efficient: " + comparison.BestEfficiency
	}
	bar.SetGlobalOptions(globalOptions(cfg, "Expected damage", subtitle, "Spell", "Damage")...)

	names := make([]string, len(comparison.Spells))
	damage := make([]opts.BarData, len(comparison.Spells))
	for i, a := range comparison.Spells {
		names[i] = a.Spell.Name
		damage[i] = opts.BarData{Value: a.TotalExpectedDamage()}
	}

	bar.SetXAxis(names).
		AddSeries("Total expected damage", damage).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}))

	return bar
}

// RenderBreakpoints writes one page with a chart for every table in the
// report. Reports with no tables are rejected.
func RenderBreakpoints(w io.Writer, report *dnd5e.BreakpointReport, cfg Config) error {
	if report == nil {
		return errors.InvalidArgument("report is required")
	}

	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("%s breakpoints", report.Character.Name)

	var count int
	if feat := report.Feat; feat != nil {
		if feat.Normal.Table != nil {
			page.AddCharts(BreakpointChart(feat.Feat+" (normal)", feat.Normal.Table, cfg))
			count++
		}
		if feat.WithAdvantage.Table != nil {
			page.AddCharts(BreakpointChart(feat.Feat+" (advantage)", feat.WithAdvantage.Table, cfg))
			count++
		}
	}
	if report.RecklessAttack != nil {
		page.AddCharts(BreakpointChart("Reckless Attack", report.RecklessAttack, cfg))
		count++
	}
	if count == 0 {
		return errors.FailedPrecondition("report has no breakpoint tables to chart")
	}

	if err := page.Render(w); err != nil {
		return errors.Wrap(err, "failed to render chart")
	}
	return nil
}

// RenderComparison writes the comparison bar chart
func RenderComparison(w io.Writer, comparison *dnd5e.SpellComparison, cfg Config) error {
	if comparison == nil || len(comparison.Spells) == 0 {
		return errors.InvalidArgument("comparison has no spells")
	}
	if err := ComparisonChart(comparison, cfg).Render(w); err != nil {
		return errors.Wrap(err, "failed to render chart")
	}
	return nil
}

// WriteFile creates path and hands it to render
func WriteFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create chart file %s", path)
	}
	defer f.Close()

	return render(f)
}

func globalOptions(cfg Config, title, subtitle, xName, yName string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Width:  cfg.Width,
			Height: cfg.Height,
			Theme:  cfg.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithColorsOpts(opts.Colors(cfg.Colors)),
		charts.WithXAxisOpts(opts.XAxis{Name: xName}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	}
}
