package export

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/vibelab/internal/dynamo"
)

const dpi = 96

var lineColors = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 140, G: 86, B: 75, A: 255},
}

// PanelPlot builds a gonum plot for p. NaN samples split a series into
// separate line segments.
func PanelPlot(p dynamo.Panel) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = p.Title
	pl.X.Label.Text = p.XLabel
	pl.Y.Label.Text = p.YLabel
	pl.Add(plotter.NewGrid())
	stylePlot(pl)

	for i, s := range p.Clipped() {
		for k, seg := range segments(s) {
			line, err := plotter.NewLine(seg)
			if err != nil {
				return nil, fmt.Errorf("series %q: %w", s.Label, err)
			}
			line.LineStyle.Width = vg.Points(1.5)
			line.LineStyle.Color = lineColors[i%len(lineColors)]
			pl.Add(line)
			if k == 0 && s.Label != "" {
				pl.Legend.Add(s.Label, line)
			}
		}
	}
	pl.Legend.Top = true

	if p.YRange != nil {
		pl.Y.Min = p.YRange.Min
		pl.Y.Max = p.YRange.Max
	}
	return pl, nil
}

func stylePlot(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.Padding = vg.Points(8)
	p.X.Label.TextStyle.Font.Size = vg.Points(11)
	p.Y.Label.TextStyle.Font.Size = vg.Points(11)
	p.X.Padding = vg.Points(4)
	p.Y.Padding = vg.Points(4)
}

func segments(s dynamo.Series) []plotter.XYs {
	var (
		out []plotter.XYs
		cur plotter.XYs
	)
	for i := range s.Y {
		if math.IsNaN(s.Y[i]) {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: s.X[i], Y: s.Y[i]})
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// WritePNG draws every panel of fig stacked vertically and encodes the
// result as PNG. width and panelHeight are in pixels.
func WritePNG(w io.Writer, fig *dynamo.Figure, width, panelHeight int) error {
	if len(fig.Panels) == 0 {
		return fmt.Errorf("figure %q has no panels", fig.Name)
	}

	plots := make([][]*plot.Plot, len(fig.Panels))
	for i, p := range fig.Panels {
		pl, err := PanelPlot(p)
		if err != nil {
			return err
		}
		plots[i] = []*plot.Plot{pl}
	}

	wl := vg.Length(width) * vg.Inch / dpi
	hl := vg.Length(panelHeight*len(fig.Panels)) * vg.Inch / dpi
	c := vgimg.NewWith(
		vgimg.UseWH(wl, hl),
		vgimg.UseDPI(dpi),
	)
	dc := draw.New(c)

	tiles := draw.Tiles{Rows: len(plots), Cols: 1, PadY: vg.Points(6)}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	bw := bufio.NewWriter(w)
	pngc := vgimg.PngCanvas{Canvas: c}
	if _, err := pngc.WriteTo(bw); err != nil {
		return fmt.Errorf("cannot write png: %w", err)
	}
	return bw.Flush()
}
