// Package drawing models the raw vector primitives extracted from one page
// of an engineering diagram. A Primitive is an ordered list of drawing
// commands with absolute coordinates; the command set is closed, so consumers
// use exhaustive type switches instead of opcode comparisons.
package drawing

import "schematic-tracer/pkg/geometry"

// Command is one drawing instruction inside a Primitive. The implementations
// are MoveTo, LineTo, CurveTo, ClosePath and RectShape; no other command
// kinds exist.
type Command interface {
	isCommand()
}

// MoveTo lifts the pen and places it at P.
type MoveTo struct {
	P geometry.Point `json:"p"`
}

// LineTo draws a straight segment from From to To.
type LineTo struct {
	From geometry.Point `json:"from"`
	To   geometry.Point `json:"to"`
}

// CurveTo draws a cubic curve through the control points C1 and C2 to End.
type CurveTo struct {
	C1  geometry.Point `json:"c1"`
	C2  geometry.Point `json:"c2"`
	End geometry.Point `json:"end"`
}

// ClosePath closes the current subpath back to its starting point.
type ClosePath struct{}

// RectShape draws an axis-aligned rectangle between two opposite corners.
type RectShape struct {
	Min geometry.Point `json:"min"`
	Max geometry.Point `json:"max"`
}

func (MoveTo) isCommand()    {}
func (LineTo) isCommand()    {}
func (CurveTo) isCommand()   {}
func (ClosePath) isCommand() {}
func (RectShape) isCommand() {}
