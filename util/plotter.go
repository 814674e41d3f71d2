package util

import (
	"fmt"
	"io"

	"aeris-weather/models/forecast"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderTemperatureChart writes an HTML page with a line chart of the daily
// maximum and minimum temperatures of f.
func RenderTemperatureChart(w io.Writer, f *forecast.Forecast) error {
	days := f.Days()
	dates := make([]string, 0, len(days))
	maxTemps := make([]opts.LineData, 0, len(days))
	minTemps := make([]opts.LineData, 0, len(days))
	for _, d := range days {
		dates = append(dates, d.Date)
		maxTemps = append(maxTemps, opts.LineData{Value: d.Day.MaxTempC})
		minTemps = append(minTemps, opts.LineData{Value: d.Day.MinTempC})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fmt.Sprintf("%s forecast", f.Location.Name),
			Width:     "800px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    f.Location.Label(),
			Subtitle: fmt.Sprintf("%d-day temperature forecast (°C)", len(days)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	)

	line.SetXAxis(dates).
		AddSeries("Max", maxTemps).
		AddSeries("Min", minTemps)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render temperature chart: %w", err)
	}
	return nil
}
