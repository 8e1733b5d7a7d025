package adapter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	m "svgflat.dev/pkg/svgflat/internal/model"
)

// Format names an export format.
type Format string

// Supported export formats.
const (
	FormatSVG  Format = "svg"
	FormatPlot Format = "plot"
	FormatYAML Format = "yaml"
)

// Formats lists every supported export format.
func Formats() []Format {
	return []Format{FormatSVG, FormatPlot, FormatYAML}
}

// Exporter serializes the flattened elements of one document.
type Exporter interface {
	// Extension is the file name extension, including the dot.
	Extension() string
	Export(w io.Writer, result m.Result) error
}

// NewExporter returns the Exporter for format.
func NewExporter(format Format) (Exporter, error) {
	switch Format(strings.ToLower(string(format))) {
	case FormatSVG:
		return &svgExporter{}, nil
	case FormatPlot:
		return &plotExporter{}, nil
	case FormatYAML:
		return &yamlExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q (supported: %v)", format, Formats())
	}
}

// EncodePathData re-expresses a flattened path as straight-line path data:
// one "M x,y x,y ..." run per subpath. Numbers use the shortest exact
// representation so that parsing the result reproduces the same points.
func EncodePathData(path m.Path) string {
	var b strings.Builder

	for i, sub := range path {
		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteString("M")

		for _, pt := range sub {
			b.WriteByte(' ')
			b.WriteString(formatFloat(pt.X))
			b.WriteByte(',')
			b.WriteString(formatFloat(pt.Y))
		}
	}

	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
