package adapter

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
	m "svgflat.dev/pkg/svgflat/internal/model"
)

type yamlDocument struct {
	Source   string        `yaml:"source"`
	Elements []yamlElement `yaml:"elements"`
}

type yamlElement struct {
	Index    int           `yaml:"index"`
	ID       string        `yaml:"id,omitempty"`
	Error    string        `yaml:"error,omitempty"`
	Subpaths []yamlSubpath `yaml:"subpaths,omitempty"`
}

type yamlSubpath struct {
	Closed bool        `yaml:"closed"`
	Points [][]float64 `yaml:"points,flow"`
}

// yamlExporter writes the flattened elements as a YAML document.
type yamlExporter struct{}

func (e *yamlExporter) Extension() string { return ".yaml" }

func (e *yamlExporter) Export(w io.Writer, result m.Result) error {
	doc := yamlDocument{
		Source:   string(result.Document.Source),
		Elements: make([]yamlElement, 0, len(result.Elements)),
	}

	for _, el := range result.Elements {
		out := yamlElement{Index: el.Element.Index, ID: el.Element.ID}
		if el.Err != nil {
			out.Error = el.Err.Error()
		}

		for _, sub := range el.Path {
			points := make([][]float64, 0, len(sub))
			for _, pt := range sub {
				points = append(points, []float64{pt.X, pt.Y})
			}

			out.Subpaths = append(out.Subpaths, yamlSubpath{Closed: sub.Closed(), Points: points})
		}

		doc.Elements = append(doc.Elements, out)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}
