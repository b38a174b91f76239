package render

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/tickerlens/tickerlens/internal/models"
)

// RenderTargetChart renders a PNG bar chart of the four price levels.
// Returns raw PNG bytes. Errors when no level is positive, in which case the
// decision panel simply omits the chart.
func RenderTargetChart(t models.PriceTargets) ([]byte, error) {
	bars := []chart.Value{
		{Label: "Current", Value: t.CurrentPrice.Float64(), Style: barStyle("2563eb")}, // blue-600
		{Label: "Buy", Value: t.BuyTarget.Float64(), Style: barStyle("16a34a")},        // green-600
		{Label: "Fair", Value: t.FairValue.Float64(), Style: barStyle("9ca3af")},       // gray-400
		{Label: "Sell", Value: t.SellTarget.Float64(), Style: barStyle("dc2626")},      // red-600
	}

	max := 0.0
	for _, b := range bars {
		if b.Value > max {
			max = b.Value
		}
	}
	if max <= 0 {
		return nil, fmt.Errorf("no positive price levels to chart")
	}

	graph := chart.BarChart{
		Title:    "Price Targets",
		Width:    480,
		Height:   260,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: max * 1.15},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}

func barStyle(hex string) chart.Style {
	return chart.Style{
		FillColor:   drawing.ColorFromHex(hex),
		StrokeColor: drawing.ColorFromHex(hex),
		StrokeWidth: 0,
	}
}
