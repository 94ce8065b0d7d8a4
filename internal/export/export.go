// Package export writes figures to image and HTML files.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/vibelab/internal/dynamo"
)

const (
	DefaultWidth       = 960
	DefaultPanelHeight = 400
)

type Format string

const (
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatHTML Format = "html"
)

// ParseFormat accepts a format name or a file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	case "html", "htm":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unsupported format %q", s)
}

// Options sets the pixel size of one panel. Zero values use the defaults.
type Options struct {
	Width       int
	PanelHeight int
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.PanelHeight <= 0 {
		o.PanelHeight = DefaultPanelHeight
	}
	return o
}

// DefaultPath derives an output file name from the figure name.
func DefaultPath(fig *dynamo.Figure, format Format) string {
	name := strings.ToLower(strings.Join(strings.Fields(fig.Name), "_"))
	if name == "" {
		name = "figure"
	}
	return name + "." + string(format)
}

// Save renders fig in the given format and writes it to path, creating
// parent directories as needed.
func Save(path string, fig *dynamo.Figure, format Format, opts Options) error {
	opts = opts.withDefaults()

	var buf bytes.Buffer
	switch format {
	case FormatPNG:
		if err := WritePNG(&buf, fig, opts.Width, opts.PanelHeight); err != nil {
			return err
		}
	case FormatSVG:
		buf.WriteString(FigureToSVG(fig, opts.Width, opts.PanelHeight))
	case FormatHTML:
		if err := WriteHTML(&buf, fig, opts.Width, opts.PanelHeight); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q", format)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create directory: %w", err)
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
