// Package model provides the geometric representation produced by parsing
// a plotter command stream.
//
// A [Drawing] is an ordered list of [Path] values; each path is one
// contiguous pen-down polyline made of [Point] values in plotter units.
// Nothing in a drawing points back to its owner, and paths are never
// modified once the parser has handed the drawing out.
//
// # Geometry
//
//   - [Point] - 2D position, an alias of seehuhn.de/go/geom/vec.Vec2
//   - [BBox] - axis-aligned bounding box with extend, union and expand
//
// # Units
//
// Coordinates stay in plotter units inside the model. Conversion to
// millimetres ([UnitsToMM], [ToMM]) happens once, when a drawing is
// summarised, encoded or rendered.
package model
