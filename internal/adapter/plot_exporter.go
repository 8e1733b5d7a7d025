package adapter

import (
	"bufio"
	"io"
	"strings"

	m "svgflat.dev/pkg/svgflat/internal/model"
)

// plotExporter writes pen-plotter instructions: "move x y" to the start of
// every subpath, then "plot x y" for each of its points.
type plotExporter struct{}

func (e *plotExporter) Extension() string { return ".plot" }

func (e *plotExporter) Export(w io.Writer, result m.Result) error {
	bw := bufio.NewWriter(w)

	for _, el := range result.Elements {
		writePlot(bw, el.Path)
	}

	return bw.Flush()
}

// writePlot writes the plot instructions of a single path. Write errors are
// reported by the final Flush.
func writePlot(bw *bufio.Writer, path m.Path) {
	for _, sub := range path {
		if len(sub) == 0 {
			continue
		}

		writeInstruction(bw, "move", sub[0])

		for _, pt := range sub {
			writeInstruction(bw, "plot", pt)
		}
	}
}

func writeInstruction(bw *bufio.Writer, op string, pt m.Point) {
	_, _ = bw.WriteString(op)
	_ = bw.WriteByte(' ')
	_, _ = bw.WriteString(formatFloat(pt.X))
	_ = bw.WriteByte(' ')
	_, _ = bw.WriteString(formatFloat(pt.Y))
	_ = bw.WriteByte('\n')
}

// PlotString renders a path as plot instructions.
func PlotString(path m.Path) string {
	var buf strings.Builder

	bw := bufio.NewWriter(&buf)
	writePlot(bw, path)
	_ = bw.Flush()

	return buf.String()
}
