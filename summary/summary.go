// Package summary computes the extent of a drawing and writes the
// physical dimensions report.
package summary

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/hpgl/model"
)

// ErrEmptyDrawing is returned when a drawing holds no points
var ErrEmptyDrawing = errors.New("summary: drawing has no points")

// Bounds returns the bounding box of every point in d, in plotter units.
func Bounds(d *model.Drawing) (model.BBox, error) {
	if d.Empty() {
		return model.EmptyBBox(), ErrEmptyDrawing
	}

	b := model.EmptyBBox()
	d.Each(func(p model.Point) {
		b = b.Extend(p)
	})
	return b, nil
}

// Dimensions returns the width and height of d in millimetres.
func Dimensions(d *model.Drawing) (width, height float64, err error) {
	b, err := Bounds(d)
	if err != nil {
		return 0, 0, err
	}
	return b.Width() * model.UnitsToMM, b.Height() * model.UnitsToMM, nil
}

// Summary holds the physical size of a drawing in millimetres.
type Summary struct {
	Width  float64
	Height float64
}

// Of computes the summary of d.
func Of(d *model.Drawing) (Summary, error) {
	w, h, err := Dimensions(d)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Width: w, Height: h}, nil
}

// String returns the two-line report
func (s Summary) String() string {
	return fmt.Sprintf("Design Width: %.2f mm\nDesign Height: %.2f mm\n", s.Width, s.Height)
}

// WriteTo writes the report to w.
func (s Summary) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// Save writes the report to the named file, replacing it.
func (s Summary) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create summary: %w", err)
	}
	if _, err := s.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write summary: %w", err)
	}
	return f.Close()
}
