package adapter

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
	m "svgflat.dev/pkg/svgflat/internal/model"
)

// PreviewOptions controls the size and stroke of a rendered preview.
type PreviewOptions struct {
	Width       int
	Height      int
	StrokeWidth float64
	Margin      float64
}

// DefaultPreviewOptions returns the options used when none are configured.
func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{Width: 800, Height: 800, StrokeWidth: 1.5, Margin: 10}
}

// PreviewRenderer draws flattened polylines into an image.
type PreviewRenderer interface {
	Render(result m.Result, opts PreviewOptions) (*image.RGBA, error)
	Encode(w io.Writer, result m.Result, opts PreviewOptions) error
}

// NewPNGPreviewRenderer returns a PreviewRenderer encoding PNG images.
func NewPNGPreviewRenderer() PreviewRenderer {
	return &pngPreviewRenderer{}
}

type pngPreviewRenderer struct{}

// Render fits every point of result into the image, keeping the aspect ratio,
// and strokes each polyline segment. The background is white.
func (r *pngPreviewRenderer) Render(result m.Result, opts PreviewOptions) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid preview size %dx%d", opts.Width, opts.Height)
	}

	if opts.StrokeWidth <= 0 {
		return nil, fmt.Errorf("invalid stroke width %v", opts.StrokeWidth)
	}

	dst := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	fit, ok := newViewportFit(result, opts)
	if !ok {
		return dst, nil
	}

	raster := vector.NewRasterizer(opts.Width, opts.Height)
	halfWidth := opts.StrokeWidth / 2

	for _, el := range result.Elements {
		for _, sub := range el.Path {
			for i := 1; i < len(sub); i++ {
				strokeSegment(raster, fit.apply(sub[i-1]), fit.apply(sub[i]), halfWidth)
			}
		}
	}

	raster.DrawOp = draw.Over
	raster.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{})

	return dst, nil
}

func (r *pngPreviewRenderer) Encode(w io.Writer, result m.Result, opts PreviewOptions) error {
	img, err := r.Render(result, opts)
	if err != nil {
		return err
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	return nil
}

// strokeSegment adds the quad covering the segment a-b. The normal is always
// d rotated counter-clockwise, so every quad has the same winding.
func strokeSegment(raster *vector.Rasterizer, a, b m.Point, halfWidth float64) {
	d := b.Sub(a)

	length := math.Hypot(d.X, d.Y)
	if length == 0 {
		d = m.Pt(1, 0)
		length = 1
		a = a.Sub(m.Pt(halfWidth, 0))
		b = b.Add(m.Pt(halfWidth, 0))
	}

	n := m.Pt(-d.Y, d.X).Scale(halfWidth / length)

	moveTo(raster, a.Add(n))
	lineTo(raster, b.Add(n))
	lineTo(raster, b.Sub(n))
	lineTo(raster, a.Sub(n))
	raster.ClosePath()
}

func moveTo(raster *vector.Rasterizer, p m.Point) {
	raster.MoveTo(float32(p.X), float32(p.Y))
}

func lineTo(raster *vector.Rasterizer, p m.Point) {
	raster.LineTo(float32(p.X), float32(p.Y))
}

// viewportFit maps document coordinates onto the preview image.
type viewportFit struct {
	min    m.Point
	offset m.Point
	scale  float64
}

func newViewportFit(result m.Result, opts PreviewOptions) (viewportFit, bool) {
	lo := m.Pt(math.Inf(1), math.Inf(1))
	hi := m.Pt(math.Inf(-1), math.Inf(-1))
	found := false

	for _, el := range result.Elements {
		for _, sub := range el.Path {
			for _, pt := range sub {
				lo = m.Pt(math.Min(lo.X, pt.X), math.Min(lo.Y, pt.Y))
				hi = m.Pt(math.Max(hi.X, pt.X), math.Max(hi.Y, pt.Y))
				found = true
			}
		}
	}

	if !found {
		return viewportFit{}, false
	}

	margin := math.Max(opts.Margin, opts.StrokeWidth)
	availW := math.Max(float64(opts.Width)-2*margin, 1)
	availH := math.Max(float64(opts.Height)-2*margin, 1)
	size := hi.Sub(lo)

	scale := math.Inf(1)
	if size.X > 0 {
		scale = availW / size.X
	}

	if size.Y > 0 {
		scale = math.Min(scale, availH/size.Y)
	}

	if math.IsInf(scale, 1) {
		scale = 1
	}

	offset := m.Pt(
		margin+(availW-size.X*scale)/2,
		margin+(availH-size.Y*scale)/2,
	)

	return viewportFit{min: lo, offset: offset, scale: scale}, true
}

func (f viewportFit) apply(p m.Point) m.Point {
	return p.Sub(f.min).Scale(f.scale).Add(f.offset)
}
