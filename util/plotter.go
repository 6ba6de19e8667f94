package util

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"callcenter-forecast/models"
)

// gap is how echarts leaves a hole in a line series.
const gap = "-"

// RenderAnalysisCharts writes an HTML page with the forecast and validation charts of an analysis.
func RenderAnalysisCharts(w io.Writer, resp *models.AnalysisResponse) error {
	page := components.NewPage()
	page.PageTitle = "Llamadas diarias - SARIMA"
	page.AddCharts(
		forecastChart(resp),
		validationChart(resp.Validation),
	)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render charts: %w", err)
	}
	return nil
}

// forecastChart plots the observed series and the forecast on a shared date axis.
func forecastChart(resp *models.AnalysisResponse) *charts.Line {
	observed := make(map[string]float64, len(resp.Series))
	for _, p := range resp.Series {
		observed[p.Date] = p.TotalCalls
	}
	predicted := make(map[string]float64, len(resp.Predictions))
	for _, p := range resp.Predictions {
		predicted[p.Date] = p.Prediction
	}
	axis := dateAxis(observed, predicted)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1100px", Height: "450px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Serie diaria y pronóstico",
			Subtitle: fmt.Sprintf("Entrenamiento hasta %s, validación desde %s", resp.KeyDates.TrainUntil, resp.KeyDates.ValidFrom),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)
	line.SetXAxis(axis).
		AddSeries("Llamadas totales", lineData(axis, observed)).
		AddSeries("Predicción", lineData(axis, predicted),
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}))
	return line
}

func validationChart(v models.Validation) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1100px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Validación: real vs predicción",
			Subtitle: fmt.Sprintf("RMSE %.2f  MAE %.2f  R² %.3f", v.RMSE, v.MAE, v.R2),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	)

	actual := make([]opts.LineData, len(v.Real))
	for i, value := range v.Real {
		actual[i] = opts.LineData{Value: value}
	}
	pred := make([]opts.LineData, len(v.Pred))
	for i, value := range v.Pred {
		pred[i] = opts.LineData{Value: value}
	}

	line.SetXAxis(v.Dates).
		AddSeries("Real", actual).
		AddSeries("Predicción", pred, charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}))
	return line
}

// dateAxis is the sorted union of the dates of both series.
func dateAxis(observed, predicted map[string]float64) []string {
	axis := make([]string, 0, len(observed)+len(predicted))
	for date := range observed {
		axis = append(axis, date)
	}
	for date := range predicted {
		if _, seen := observed[date]; !seen {
			axis = append(axis, date)
		}
	}
	sort.Strings(axis)
	return axis
}

// lineData aligns values to the axis, leaving gaps for dates without a value.
func lineData(axis []string, values map[string]float64) []opts.LineData {
	out := make([]opts.LineData, len(axis))
	for i, date := range axis {
		if v, ok := values[date]; ok {
			out[i] = opts.LineData{Value: v}
		} else {
			out[i] = opts.LineData{Value: gap}
		}
	}
	return out
}
