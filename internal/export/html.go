package export

import (
	"io"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/san-kum/vibelab/internal/dynamo"
)

// PanelChart builds an echarts line chart for p. Missing samples are emitted
// as "-" which echarts draws as a gap.
func PanelChart(p dynamo.Panel, width, height int) *charts.Line {
	line := charts.NewLine()

	yAxis := opts.YAxis{
		Name:      p.YLabel,
		Type:      "value",
		Scale:     opts.Bool(true),
		SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
	}
	if p.YRange != nil {
		yAxis.Min = p.YRange.Min
		yAxis.Max = p.YRange.Max
	}

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           strconv.Itoa(width) + "px",
			Height:          strconv.Itoa(height) + "px",
			PageTitle:       p.Title,
		}),
		charts.WithTitleOpts(opts.Title{Title: p.Title}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "bottom",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      p.XLabel,
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(yAxis),
	)

	series := p.Clipped()
	if len(series) == 0 {
		return line
	}

	x := make([]string, len(series[0].X))
	for i, v := range series[0].X {
		x[i] = strconv.FormatFloat(v, 'g', 6, 64)
	}
	line.SetXAxis(x)

	for _, s := range series {
		line.AddSeries(s.Label, lineData(s.Y))
	}
	return line
}

func lineData(ys []float64) []opts.LineData {
	data := make([]opts.LineData, len(ys))
	for i, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			data[i] = opts.LineData{Value: "-"}
			continue
		}
		data[i] = opts.LineData{Value: y}
	}
	return data
}

// WriteHTML renders one chart per panel on a single page.
func WriteHTML(w io.Writer, fig *dynamo.Figure, width, panelHeight int) error {
	page := components.NewPage()
	page.PageTitle = fig.Name
	for _, p := range fig.Panels {
		page.AddCharts(PanelChart(p, width, panelHeight))
	}
	return page.Render(w)
}
