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

package graphics

import "fmt"

// This file implements the "Path construction operators" and "Path-painting
// operators".  The operators implemented here are defined in tables 58, 59
// and 60 of ISO 32000-2:2020.

// MoveTo starts a new path at the given coordinates.
//
// This implements the PDF graphics operator "m".
func (w *Writer) MoveTo(x, y float64) {
	if !w.isValid("MoveTo", objPage|objPath) {
		return
	}
	w.currentObject = objPath

	_, w.Err = fmt.Fprintln(w.Content, coord(x), coord(y), "m")
}

// LineTo appends a straight line segment to the current path.
//
// This implements the PDF graphics operator "l".
func (w *Writer) LineTo(x, y float64) {
	if !w.isValid("LineTo", objPath) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, coord(x), coord(y), "l")
}

// CurveTo appends a cubic Bezier curve to the current path.
//
// This implements the PDF graphics operator "c".
func (w *Writer) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if !w.isValid("CurveTo", objPath) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content,
		coord(x1), coord(y1), coord(x2), coord(y2), coord(x3), coord(y3), "c")
}

// ClosePath closes the current subpath.
//
// This implements the PDF graphics operator "h".
func (w *Writer) ClosePath() {
	if !w.isValid("ClosePath", objPath) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, "h")
}

// Rectangle appends a rectangle to the current path as a closed subpath.
//
// This implements the PDF graphics operator "re".
func (w *Writer) Rectangle(x, y, width, height float64) {
	if !w.isValid("Rectangle", objPage|objPath) {
		return
	}
	w.currentObject = objPath

	_, w.Err = fmt.Fprintln(w.Content, coord(x), coord(y), coord(width), coord(height), "re")
}

// RoundedRectangle appends a rectangle with rounded corners to the current
// path, as a closed subpath.  The radius is reduced if it exceeds half the
// width or height.
func (w *Writer) RoundedRectangle(x, y, width, height, radius float64) {
	if width < 0 {
		x, width = x+width, -width
	}
	if height < 0 {
		y, height = y+height, -height
	}
	radius = min(radius, width/2, height/2)
	if radius <= 0 {
		w.Rectangle(x, y, width, height)
		return
	}

	// control point distance for a quarter circle
	k := radius * 0.5522847498

	x1, x2 := x+radius, x+width-radius
	y1, y2 := y+radius, y+height-radius
	xr, yt := x+width, y+height

	w.MoveTo(x1, y)
	w.LineTo(x2, y)
	w.CurveTo(x2+k, y, xr, y1-k, xr, y1)
	w.LineTo(xr, y2)
	w.CurveTo(xr, y2+k, x2+k, yt, x2, yt)
	w.LineTo(x1, yt)
	w.CurveTo(x1-k, yt, x, y2+k, x, y2)
	w.LineTo(x, y1)
	w.CurveTo(x, y1-k, x1-k, y, x1, y)
	w.ClosePath()
}

// Stroke strokes the current path.
//
// This implements the PDF graphics operator "S".
func (w *Writer) Stroke() {
	w.paint("Stroke", "S")
}

// Fill fills the current path, using the nonzero winding number rule.
//
// This implements the PDF graphics operator "f".
func (w *Writer) Fill() {
	w.paint("Fill", "f")
}

// FillAndStroke fills and strokes the current path, using the nonzero
// winding number rule.
//
// This implements the PDF graphics operator "B".
func (w *Writer) FillAndStroke() {
	w.paint("FillAndStroke", "B")
}

// EndPath ends the current path without filling or stroking it.
//
// This implements the PDF graphics operator "n".
func (w *Writer) EndPath() {
	w.paint("EndPath", "n")
}

func (w *Writer) paint(cmd, op string) {
	if !w.isValid(cmd, objPath) {
		return
	}
	w.currentObject = objPage

	_, w.Err = fmt.Fprintln(w.Content, op)
}
