// Package preview renders drawings to small raster images.
//
// The drawing is scaled uniformly to fit a square canvas, centred, and
// stroked with a constant pixel width. Plotter Y grows upwards, so the
// raster is flipped before it is returned.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"

	"github.com/tsawler/hpgl/model"
)

// ErrEmptyDrawing is returned when there is nothing to render
var ErrEmptyDrawing = errors.New("preview: drawing has no points")

// Options configures rendering
type Options struct {
	// Size is the width and height of the canvas in pixels
	Size int

	// Margin is the share of the canvas the drawing may fill, in (0, 1]
	Margin float64

	Background color.Color
	Stroke     color.Color

	// LineWidth is the stroke width in pixels
	LineWidth float64
}

// DefaultOptions returns a 300 pixel canvas with lime strokes on black
func DefaultOptions() Options {
	return Options{
		Size:       300,
		Margin:     0.9,
		Background: color.Black,
		Stroke:     color.NRGBA{R: 0, G: 255, B: 0, A: 255},
		LineWidth:  1,
	}
}

func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.Size <= 0 {
		o.Size = def.Size
	}
	if o.Margin <= 0 || o.Margin > 1 {
		o.Margin = def.Margin
	}
	if o.Background == nil {
		o.Background = def.Background
	}
	if o.Stroke == nil {
		o.Stroke = def.Stroke
	}
	if o.LineWidth <= 0 {
		o.LineWidth = def.LineWidth
	}
	return o
}

// Render draws d onto a new canvas.
func Render(d *model.Drawing, opts Options) (*image.NRGBA, error) {
	if d.Empty() {
		return nil, ErrEmptyDrawing
	}
	opts = opts.normalized()

	b := model.EmptyBBox()
	d.Each(func(p model.Point) {
		b = b.Extend(p)
	})

	size := float64(opts.Size)
	extent := math.Max(b.Width(), b.Height())
	scale := 1.0
	if extent > 0 {
		scale = size * opts.Margin / extent
	}
	c := b.Center()
	half := model.Pt(size/2, size/2)
	toCanvas := func(p model.Point) model.Point {
		return p.Sub(c).Mul(scale).Add(half)
	}

	canvas := imaging.New(opts.Size, opts.Size, opts.Background)
	r := vector.NewRasterizer(opts.Size, opts.Size)
	w := opts.LineWidth / 2

	for _, path := range d.Drawable() {
		cur := toCanvas(path[0])
		for _, pt := range path[1:] {
			dest := toCanvas(pt)
			strokeSegment(r, cur, dest, w)
			cur = dest
		}
	}
	r.Draw(canvas, canvas.Bounds(), image.NewUniform(opts.Stroke), image.Point{})

	return imaging.FlipV(canvas), nil
}

// strokeSegment adds the quad covering the segment a-b with half-width w.
func strokeSegment(r *vector.Rasterizer, a, b model.Point, w float64) {
	v := b.Sub(a)
	l := v.Length()
	if l == 0 {
		return
	}
	n := model.Pt(-v.Y/l*w, v.X/l*w)

	p1, p2 := a.Add(n), b.Add(n)
	p3, p4 := b.Sub(n), a.Sub(n)
	r.MoveTo(float32(p1.X), float32(p1.Y))
	r.LineTo(float32(p2.X), float32(p2.Y))
	r.LineTo(float32(p3.X), float32(p3.Y))
	r.LineTo(float32(p4.X), float32(p4.Y))
	r.ClosePath()
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("preview: encode png: %w", err)
	}
	return nil
}

// Save renders d and writes the PNG to the named file.
func Save(d *model.Drawing, path string, opts Options) error {
	img, err := Render(d, opts)
	if err != nil {
		return err
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("preview: save %s: %w", path, err)
	}
	return nil
}
