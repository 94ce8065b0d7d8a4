package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/vibelab/internal/dynamo"
)

var strokeColors = []string{"#00ff9f", "#ff6b6b", "#4dabf7", "#ffd43b", "#cc5de8", "#ff922b"}

// FigureToSVG stacks the panels of fig vertically, each panelHeight pixels tall.
func FigureToSVG(fig *dynamo.Figure, width, panelHeight int) string {
	height := panelHeight * max(len(fig.Panels), 1)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<title>%s</title>
`, width, height, width, height, escape(fig.Name)))

	for i, p := range fig.Panels {
		sb.WriteString(fmt.Sprintf("<g transform=\"translate(0,%d)\">\n", i*panelHeight))
		sb.WriteString(PanelToSVG(p, width, panelHeight))
		sb.WriteString("</g>\n")
	}
	sb.WriteString("</svg>")
	return sb.String()
}

// PanelToSVG draws the series of p as polylines inside a width x height box.
// Non-finite samples break the line.
func PanelToSVG(p dynamo.Panel, width, height int) string {
	const margin = 30.0

	series := p.Clipped()
	minX, maxX := xBounds(series)
	minY, maxY := p.Bounds()
	if p.YRange != nil {
		minY, maxY = p.YRange.Min, p.YRange.Max
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.05
	maxY += rangeY * 0.05
	rangeY = maxY - minY

	plotW := float64(width) - 2*margin
	plotH := float64(height) - 2*margin

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<text x="%.0f" y="%.0f" fill="#ffffff" font-family="monospace" font-size="12">%s</text>
`, margin, margin*0.6, escape(p.Title)))
	sb.WriteString(fmt.Sprintf(`<rect x="%.0f" y="%.0f" width="%.0f" height="%.0f" fill="none" stroke="#444444"/>
`, margin, margin, plotW, plotH))
	sb.WriteString(fmt.Sprintf(`<text x="%.0f" y="%.0f" fill="#888888" font-family="monospace" font-size="10">%s</text>
`, margin, float64(height)-margin*0.3, escape(p.XLabel)))

	for i, s := range series {
		color := strokeColors[i%len(strokeColors)]
		var d strings.Builder
		pen := false
		for j := range s.Y {
			if math.IsNaN(s.Y[j]) {
				pen = false
				continue
			}
			x := margin + (s.X[j]-minX)/rangeX*plotW
			y := margin + plotH - (s.Y[j]-minY)/rangeY*plotH
			if pen {
				d.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			} else {
				d.WriteString(fmt.Sprintf(" M%.1f,%.1f", x, y))
				pen = true
			}
		}
		if d.Len() == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="%s"/>
`, color, strings.TrimSpace(d.String())))
		if s.Label != "" {
			sb.WriteString(fmt.Sprintf(`<text x="%.0f" y="%.0f" fill="%s" font-family="monospace" font-size="10">%s</text>
`, margin+plotW-150, margin+12*float64(i+1), color, escape(s.Label)))
		}
	}
	return sb.String()
}

func xBounds(series []dynamo.Series) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, x := range s.X {
			lo = math.Min(lo, x)
			hi = math.Max(hi, x)
		}
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}

var svgEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string {
	return svgEscaper.Replace(s)
}
