package adapter

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "svgflat.dev/pkg/svgflat/internal/model"
)

const drawingSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="100mm" height="50mm" viewBox="0 0 100 50">
  <g id="layer1">
    <path id="square" d="M 0,0 L 10,0 L 10,10 Z" style="fill:none"/>
    <g>
      <path d="M0,0 Q5,10 10,0"/>
    </g>
  </g>
  <rect x="1" y="1" width="2" height="2"/>
  <path id="third" d="m5,5 h5 v-5"/>
</svg>
`

func TestSVGDocumentLoader_Decode(t *testing.T) {
	loader := NewSVGDocumentLoader(NewLocalSourceFSAdapter())

	doc, err := loader.Decode(strings.NewReader(drawingSVG), "drawing.svg")
	require.NoError(t, err)

	assert.Equal(t, m.FilePath("drawing.svg"), doc.Source)
	assert.Equal(t, "100mm", doc.Width)
	assert.Equal(t, "50mm", doc.Height)
	assert.Equal(t, "0 0 100 50", doc.ViewBox)
	assert.Equal(t, []m.Element{
		{Index: 0, ID: "square", Data: "M 0,0 L 10,0 L 10,10 Z"},
		{Index: 1, Data: "M0,0 Q5,10 10,0"},
		{Index: 2, ID: "third", Data: "m5,5 h5 v-5"},
	}, doc.Elements)
}

func TestSVGDocumentLoader_DecodeLenient(t *testing.T) {
	loader := NewSVGDocumentLoader(NewLocalSourceFSAdapter())

	t.Run("html entities", func(t *testing.T) {
		doc, err := loader.Decode(strings.NewReader(`<svg><title>&copy; me</title><path d="M0,0 L1,1"/></svg>`), "x.svg")
		require.NoError(t, err)
		require.Len(t, doc.Elements, 1)
		assert.Equal(t, "M0,0 L1,1", doc.Elements[0].Data)
	})

	t.Run("latin1 charset", func(t *testing.T) {
		input := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><svg><path id=\"caf\xe9\" d=\"M1,1 L2,2\"/></svg>"

		doc, err := loader.Decode(strings.NewReader(input), "x.svg")
		require.NoError(t, err)
		require.Len(t, doc.Elements, 1)
		assert.Equal(t, "café", doc.Elements[0].ID)
	})

	t.Run("no paths", func(t *testing.T) {
		doc, err := loader.Decode(strings.NewReader(`<svg width="1" height="1"></svg>`), "x.svg")
		require.NoError(t, err)
		assert.Empty(t, doc.Elements)
	})
}

func TestSVGDocumentLoader_DecodeErrors(t *testing.T) {
	loader := NewSVGDocumentLoader(NewLocalSourceFSAdapter())

	_, err := loader.Decode(strings.NewReader(`<html><path d="M0,0"/></html>`), "page.html")
	require.ErrorIs(t, err, ErrNotSVG)

	_, err = loader.Decode(strings.NewReader(""), "empty.svg")
	require.ErrorIs(t, err, ErrNotSVG)
}

func TestSVGDocumentLoader_Load(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "drawing.svg")
	writeTestFile(t, path, drawingSVG)

	loader := NewSVGDocumentLoader(NewLocalSourceFSAdapter())

	doc, err := loader.Load(m.FilePath(path))
	require.NoError(t, err)
	assert.Equal(t, m.FilePath(path), doc.Source)
	assert.Len(t, doc.Elements, 3)

	_, err = loader.Load(m.FilePath(filepath.Join(root, "missing.svg")))
	require.Error(t, err)
}
