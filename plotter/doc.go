// Package plotter interprets motion commands and assembles the paths
// they draw.
//
// The interpreter is a small state machine. Its state is held in a
// [ParserState] value that callers create per stream, so independent
// streams can be parsed concurrently:
//
//   - Position - the current pen position in plotter units
//   - PenDown - whether motion is recorded
//   - Mode - absolute or relative coordinates
//
// Recorded points go to an [Assembler], which splits them into paths on
// every pen-up transition.
//
// # Transitions
//
//	PA x,y...  mode := absolute; position := (x,y) per pair
//	PR x,y...  mode := relative; position += (x,y) per pair
//	PU x,y...  pen up; close the current path; pairs move the pen only
//	PD x,y...  pen down; pairs move the pen and are recorded
//
// With the pen down, PA and PR record each new position. With the pen
// up they close the current path and start a new one at the new
// position.
//
// # Usage
//
//	d, skips, err := plotter.Parse("PU0,0;PD10,0,10,10;PU;")
//	if errors.Is(err, plotter.ErrEmptyInput) {
//	    // nothing to draw
//	}
package plotter
