package adapter

import (
	"encoding/xml"
	"fmt"
	"io"

	m "svgflat.dev/pkg/svgflat/internal/model"
)

// A4 page in millimetres, used when the source document has no size.
const (
	defaultSVGWidth   = "210mm"
	defaultSVGHeight  = "297mm"
	defaultSVGViewBox = "0 0 210 297"

	svgNamespace   = "http://www.w3.org/2000/svg"
	flatPathStyle  = "fill:none;stroke:#000000;stroke-width:1"
	flatLayerLabel = "flattened"
)

type svgRoot struct {
	XMLName xml.Name `xml:"svg"`
	Xmlns   string   `xml:"xmlns,attr"`
	Version string   `xml:"version,attr"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	ViewBox string   `xml:"viewBox,attr"`
	Layer   svgGroup `xml:"g"`
}

type svgGroup struct {
	ID    string    `xml:"id,attr"`
	Paths []svgPath `xml:"path"`
}

type svgPath struct {
	ID    string `xml:"id,attr,omitempty"`
	D     string `xml:"d,attr"`
	Style string `xml:"style,attr"`
}

// svgExporter writes a standalone SVG with one polyline path per input
// element.
type svgExporter struct{}

func (e *svgExporter) Extension() string { return ".svg" }

func (e *svgExporter) Export(w io.Writer, result m.Result) error {
	root := svgRoot{
		Xmlns:   svgNamespace,
		Version: "1.1",
		Width:   orDefault(result.Document.Width, defaultSVGWidth),
		Height:  orDefault(result.Document.Height, defaultSVGHeight),
		ViewBox: orDefault(result.Document.ViewBox, defaultSVGViewBox),
		Layer:   svgGroup{ID: flatLayerLabel},
	}

	for _, el := range result.Elements {
		if len(el.Path) == 0 {
			continue
		}

		root.Layer.Paths = append(root.Layer.Paths, svgPath{
			ID:    el.Element.ID,
			D:     EncodePathData(el.Path),
			Style: flatPathStyle,
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encode svg: %w", err)
	}

	if err := enc.Close(); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")

	return err
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
