// Package dxf encodes drawings as DXF documents.
//
// Encoding happens in two steps. [Plan] converts every path with at
// least two points to millimetres; paths with a single point describe
// no segment and are left out. [Encode] then hands the plan to the DXF
// writer, either as one LWPOLYLINE per path or as one LINE per segment.
//
//	doc, err := dxf.Encode(d, dxf.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	return doc.Save("out.dxf")
package dxf

import (
	"errors"
	"fmt"

	dxflib "github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"github.com/tsawler/hpgl/model"
)

// ErrNothingToEncode is returned when no path has a segment
var ErrNothingToEncode = errors.New("dxf: drawing has no line segments")

// EntityMode selects the entity type written for each path.
type EntityMode int

const (
	// Polyline writes one LWPOLYLINE per path
	Polyline EntityMode = iota
	// Lines writes one LINE per segment
	Lines
)

// String returns the mode name
func (m EntityMode) String() string {
	switch m {
	case Polyline:
		return "polyline"
	case Lines:
		return "lines"
	default:
		return "unknown"
	}
}

// DefaultLayer is the layer entities are placed on when none is given.
const DefaultLayer = "PLOT"

// Options configures encoding
type Options struct {
	Mode  EntityMode
	Layer string
}

// DefaultOptions returns polyline output on the default layer
func DefaultOptions() Options {
	return Options{
		Mode:  Polyline,
		Layer: DefaultLayer,
	}
}

// PolylineMM is one path converted to millimetres.
type PolylineMM []model.Point

// Plan converts the drawable paths of d to millimetres, in order.
func Plan(d *model.Drawing) []PolylineMM {
	if d == nil {
		return nil
	}
	var plan []PolylineMM
	for _, p := range d.Paths {
		if !p.Drawable() {
			continue
		}
		pl := make(PolylineMM, len(p))
		for i, pt := range p {
			pl[i] = model.ToMM(pt)
		}
		plan = append(plan, pl)
	}
	return plan
}

// Document is an encoded drawing ready to be saved.
type Document struct {
	drawing  *drawing.Drawing
	plan     []PolylineMM
	entities int
	mode     EntityMode
}

// Encode builds a DXF document from d.
func Encode(d *model.Drawing, opts Options) (*Document, error) {
	plan := Plan(d)
	if len(plan) == 0 {
		return nil, ErrNothingToEncode
	}

	layer := opts.Layer
	if layer == "" {
		layer = DefaultLayer
	}

	dw := dxflib.NewDrawing()
	if _, err := dw.AddLayer(layer, dxflib.DefaultColor, dxflib.DefaultLineType, true); err != nil {
		// the layer already exists, e.g. "0"
		if err := dw.ChangeLayer(layer); err != nil {
			return nil, fmt.Errorf("dxf: select layer %q: %w", layer, err)
		}
	}

	doc := &Document{drawing: dw, plan: plan, mode: opts.Mode}
	for i, pl := range plan {
		var err error
		switch opts.Mode {
		case Lines:
			err = doc.addLines(pl)
		default:
			err = doc.addPolyline(pl)
		}
		if err != nil {
			return nil, fmt.Errorf("dxf: path %d: %w", i, err)
		}
	}
	return doc, nil
}

func (doc *Document) addPolyline(pl PolylineMM) error {
	vertices := make([][]float64, len(pl))
	for i, p := range pl {
		vertices[i] = []float64{p.X, p.Y}
	}
	if _, err := doc.drawing.LwPolyline(false, vertices...); err != nil {
		return err
	}
	doc.entities++
	return nil
}

func (doc *Document) addLines(pl PolylineMM) error {
	for i := 1; i < len(pl); i++ {
		a, b := pl[i-1], pl[i]
		if _, err := doc.drawing.Line(a.X, a.Y, 0, b.X, b.Y, 0); err != nil {
			return err
		}
		doc.entities++
	}
	return nil
}

// Entities returns the number of entities written
func (doc *Document) Entities() int {
	return doc.entities
}

// Mode returns the entity mode the document was encoded with
func (doc *Document) Mode() EntityMode {
	return doc.mode
}

// Polylines returns the encoded paths in millimetres
func (doc *Document) Polylines() []PolylineMM {
	return doc.plan
}

// Save writes the document to the named file.
func (doc *Document) Save(path string) error {
	if err := doc.drawing.SaveAs(path); err != nil {
		return fmt.Errorf("dxf: save %s: %w", path, err)
	}
	return nil
}
