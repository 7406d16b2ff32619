package plotter

import "github.com/tsawler/hpgl/model"

// Assembler collects recorded points into an ordered list of paths.
// A closed path is never reopened.
type Assembler struct {
	current model.Path
	closed  []model.Path
}

// NewAssembler creates an empty assembler
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Append adds a point to the current path, opening one if needed.
func (a *Assembler) Append(p model.Point) {
	a.current = append(a.current, p)
}

// Close stores the current path if it holds any point. Closing an empty
// path is a no-op, so repeated pen-ups never produce empty paths.
func (a *Assembler) Close() {
	if len(a.current) == 0 {
		return
	}
	a.closed = append(a.closed, a.current)
	a.current = nil
}

// Begin closes the current path and opens a new one starting at p.
func (a *Assembler) Begin(p model.Point) {
	a.Close()
	a.current = model.Path{p}
}

// Open reports whether a path is currently being built
func (a *Assembler) Open() bool {
	return len(a.current) > 0
}

// Len returns the number of closed paths
func (a *Assembler) Len() int {
	return len(a.closed)
}

// Finish closes the current path and returns every path in emission
// order. The assembler is reset afterwards.
func (a *Assembler) Finish() []model.Path {
	a.Close()
	paths := a.closed
	a.closed = nil
	return paths
}
