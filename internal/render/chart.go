package render

import (
	"bytes"
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/HowardChu-bme/Taxi-Receipt/internal/expense"
)

// ErrNoEntries is returned when there is nothing to chart yet.
var ErrNoEntries = errors.New("no entries")

// FareChart draws a PNG bar chart of the session's fares in insertion
// order, one bar per accepted record.
func FareChart(records []expense.Record) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrNoEntries
	}

	vals := make(plotter.Values, len(records))
	labels := make([]string, len(records))
	for i, r := range records {
		vals[i] = r.FareAmount
		labels[i] = r.DateOfTravel.Format("01-02")
	}

	p := plot.New()
	p.Title.Text = "Taxi fares this session"
	p.Y.Label.Text = "HK$"
	p.Y.Min = 0

	bars, err := plotter.NewBarChart(vals, vg.Points(20))
	if err != nil {
		return nil, fmt.Errorf("build bar chart: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = plotutil.Color(2)
	p.Add(bars)
	p.NominalX(labels...)

	wt, err := p.WriterTo(6*vg.Inch, 3*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("encode chart: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode chart: %w", err)
	}
	return buf.Bytes(), nil
}
