package adapter

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/net/html/charset"
	m "svgflat.dev/pkg/svgflat/internal/model"
)

// ErrNotSVG is returned when a document's root element is not <svg>.
var ErrNotSVG = errors.New("document root is not an svg element")

// DocumentLoader reads vector documents and extracts their path elements.
type DocumentLoader interface {
	// Load opens and decodes the document at path.
	Load(path m.FilePath) (m.Document, error)
	// Decode decodes a document from r; source is recorded on the result.
	Decode(r io.Reader, source m.FilePath) (m.Document, error)
}

type svgDocumentLoader struct {
	fs SourceFSAdapter
}

// NewSVGDocumentLoader creates a DocumentLoader for SVG files read through fs.
func NewSVGDocumentLoader(fs SourceFSAdapter) DocumentLoader {
	return &svgDocumentLoader{fs: fs}
}

func (l *svgDocumentLoader) Load(path m.FilePath) (m.Document, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return m.Document{}, err
	}

	defer func() {
		_ = f.Close()
	}()

	return l.Decode(f, path)
}

// Decode walks the XML token stream. Every <path> element contributes one
// Element, in document order, regardless of nesting.
func (l *svgDocumentLoader) Decode(r io.Reader, source m.FilePath) (m.Document, error) {
	decoder := xml.NewDecoder(r)
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel

	doc := m.Document{Source: source}
	rootSeen := false

	for {
		t, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return m.Document{}, fmt.Errorf("decode %s: %w", source, err)
		}

		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}

		if !rootSeen {
			if se.Name.Local != "svg" {
				return m.Document{}, fmt.Errorf("decode %s: %w (found <%s>)", source, ErrNotSVG, se.Name.Local)
			}

			rootSeen = true
			doc.Width = attr(se, "width")
			doc.Height = attr(se, "height")
			doc.ViewBox = attr(se, "viewBox")

			continue
		}

		if se.Name.Local != "path" {
			continue
		}

		doc.Elements = append(doc.Elements, m.Element{
			Index: len(doc.Elements),
			ID:    attr(se, "id"),
			Data:  attr(se, "d"),
		})
	}

	if !rootSeen {
		return m.Document{}, fmt.Errorf("decode %s: %w", source, ErrNotSVG)
	}

	slog.Debug("Decoded document", "source", source, "elements", len(doc.Elements))

	return doc, nil
}

func attr(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}

	return ""
}
