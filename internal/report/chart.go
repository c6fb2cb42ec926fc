package report

import (
	"fmt"
	"math"

	"fjacquet/finance-tracker/internal/store"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultChartTitle is the chart title unless configured otherwise.
const DefaultChartTitle = "Personal Finances Over a Year"

// ChartOptions controls the rendered image. Width and Height are inches.
type ChartOptions struct {
	Title  string
	Width  float64
	Height float64
}

// DefaultChartOptions returns a 10x6 inch chart with the default title.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{Title: DefaultChartTitle, Width: 10, Height: 6}
}

// RenderChart plots budgets, expense totals and (when any month has income
// data) income totals per month, and saves the image to path. The file
// extension selects the image format.
func RenderChart(s *store.RecordStore, path string, opts ChartOptions) error {
	if s.Len() == 0 {
		return store.ErrEmptyStore
	}
	if opts.Title == "" {
		opts.Title = DefaultChartTitle
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultChartOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Amount ($)"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	p.NominalX(s.Months()...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	budgets, expenses, incomes := Totals(s)
	lines := []interface{}{"Budgets", series(budgets), "Expenses", series(expenses)}
	if s.HasIncomeData() {
		lines = append(lines, "Incomes", series(incomes))
	}
	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return fmt.Errorf("error building chart: %w", err)
	}

	if err := p.Save(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch, path); err != nil {
		return fmt.Errorf("error saving chart to %s: %w", path, err)
	}
	return nil
}

// Totals returns the series the chart draws: budgets, expense totals and
// income totals per month.
func Totals(s *store.RecordStore) (budgets, expenses, incomes []float64) {
	for _, rec := range s.Records() {
		budgets = append(budgets, rec.Budget.InexactFloat64())
		expenses = append(expenses, rec.TotalExpenses().InexactFloat64())
		incomes = append(incomes, rec.TotalIncomes().InexactFloat64())
	}
	return budgets, expenses, incomes
}

func series(ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(ys))
	for i, y := range ys {
		pts[i] = plotter.XY{X: float64(i), Y: y}
	}
	return pts
}
