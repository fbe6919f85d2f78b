// seehuhn.de/go/bizdoc - render fixed-layout business documents as PDF
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package draw describes page content as a list of primitive drawing
// commands.
//
// Commands are plain values.  Once recorded they are never modified, a page
// is changed only by appending further commands.  Lists of commands are
// replayed in order, so later commands paint over earlier ones.
//
// All coordinates are in PDF points (1/72 inch), measured from the
// bottom-left corner of the page.
package draw

import "fmt"

// MM is the length of one millimetre, in PDF points.
const MM = 72 / 25.4

// Command is one primitive drawing operation.
//
// The set of commands is closed: only the types in this package implement
// Command.
type Command interface {
	isCommand()
}

// SetFillColor sets the color used for filling shapes and for text.
type SetFillColor struct {
	Color Color
}

// SetStrokeColor sets the color used for lines and outlines.
type SetStrokeColor struct {
	Color Color
}

// SetLineWidth sets the width of lines and outlines.
type SetLineWidth struct {
	Width float64
}

// SetFont selects the font for the following text commands.
type SetFont struct {
	Font Font
	Size float64
}

// Text draws a string with its left end of the baseline at (X, Y).
type Text struct {
	X, Y float64
	S    string
}

// CenteredText draws a string, horizontally centered on X, with the
// baseline at Y.
type CenteredText struct {
	X, Y float64
	S    string
}

// Line strokes a straight line from (X1, Y1) to (X2, Y2).
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Rectangle draws a rectangle with lower left corner (X, Y).
// If Radius is positive, the corners are rounded.
type Rectangle struct {
	X, Y, W, H float64
	Radius     float64
	Fill       bool
	Stroke     bool
}

func (SetFillColor) isCommand()   {}
func (SetStrokeColor) isCommand() {}
func (SetLineWidth) isCommand()   {}
func (SetFont) isCommand()        {}
func (Text) isCommand()           {}
func (CenteredText) isCommand()   {}
func (Line) isCommand()           {}
func (Rectangle) isCommand()      {}

func (c SetFillColor) String() string {
	return fmt.Sprintf("fill %s", c.Color)
}

func (c SetStrokeColor) String() string {
	return fmt.Sprintf("stroke %s", c.Color)
}

func (c SetLineWidth) String() string {
	return fmt.Sprintf("linewidth %g", c.Width)
}

func (c SetFont) String() string {
	return fmt.Sprintf("font %s %g", c.Font, c.Size)
}

func (c Text) String() string {
	return fmt.Sprintf("text %.2f %.2f %q", c.X, c.Y, c.S)
}

func (c CenteredText) String() string {
	return fmt.Sprintf("ctext %.2f %.2f %q", c.X, c.Y, c.S)
}

func (c Line) String() string {
	return fmt.Sprintf("line %.2f %.2f %.2f %.2f", c.X1, c.Y1, c.X2, c.Y2)
}

func (c Rectangle) String() string {
	mode := ""
	if c.Fill {
		mode += "f"
	}
	if c.Stroke {
		mode += "s"
	}
	return fmt.Sprintf("rect %.2f %.2f %.2f %.2f r=%g %s", c.X, c.Y, c.W, c.H, c.Radius, mode)
}

// Weight is the stroke weight of a font.
type Weight int

// These are the supported font weights.
const (
	Regular Weight = iota
	Bold
)

func (w Weight) String() string {
	switch w {
	case Regular:
		return "Regular"
	case Bold:
		return "Bold"
	default:
		return fmt.Sprintf("Weight(%d)", int(w))
	}
}

// Font identifies a font by family name and weight.
type Font struct {
	Family string
	Weight Weight
}

func (f Font) String() string {
	return f.Family + "-" + f.Weight.String()
}
