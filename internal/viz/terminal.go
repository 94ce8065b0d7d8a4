package viz

import (
	"fmt"
	"io"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/vibelab/internal/dynamo"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 15
)

// Options controls the size of terminal plots.
type Options struct {
	Width  int
	Height int
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	return o
}

// Plot writes one chart per panel of fig to w.
func Plot(w io.Writer, fig *dynamo.Figure, opts Options) error {
	opts = opts.withDefaults()

	if _, err := fmt.Fprintln(w, HeaderStyle.Render(fig.Name)); err != nil {
		return err
	}
	for _, p := range fig.Panels {
		if _, err := fmt.Fprintln(w, PanelString(p, opts)); err != nil {
			return err
		}
	}
	return nil
}

// PanelString renders a single panel as an asciigraph chart with its title,
// axis extent and legend.
func PanelString(p dynamo.Panel, opts Options) string {
	opts = opts.withDefaults()
	series := p.Clipped()

	data := make([][]float64, 0, len(series))
	for _, s := range series {
		if len(s.Y) > 0 {
			data = append(data, s.Y)
		}
	}
	if len(data) == 0 {
		return p.Title + "\n  (no data)"
	}

	graphOpts := []asciigraph.Option{
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption(caption(p, series)),
	}
	if p.YRange != nil {
		graphOpts = append(graphOpts,
			asciigraph.LowerBound(p.YRange.Min),
			asciigraph.UpperBound(p.YRange.Max),
		)
	}
	if len(data) > 1 {
		colors := make([]asciigraph.AnsiColor, len(data))
		for i := range colors {
			colors[i] = seriesColors[i%len(seriesColors)]
		}
		graphOpts = append(graphOpts, asciigraph.SeriesColors(colors...))
	}

	var sb strings.Builder
	sb.WriteString(p.Title + "\n")
	sb.WriteString(graphStyle.Render(asciigraph.PlotMany(data, graphOpts...)))
	sb.WriteString("\n")
	for i, s := range series {
		if s.Label == "" {
			continue
		}
		marker := "─"
		if len(data) > 1 {
			marker = seriesColors[i%len(seriesColors)].String() + "─" + asciigraph.Default.String()
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", marker, s.Label))
	}
	return sb.String()
}

func caption(p dynamo.Panel, series []dynamo.Series) string {
	x := series[0].X
	if len(x) == 0 {
		return p.YLabel
	}
	return fmt.Sprintf("%s vs %s [%g .. %g]", p.YLabel, p.XLabel, x[0], x[len(x)-1])
}
