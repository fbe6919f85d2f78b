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

// Package boxes implements a box model for the layout of business
// documents.
//
// Boxes are rectangular areas of known size.  Every box has a reference
// point on its baseline: the box extends Height above and Depth below the
// baseline, and Width to the right of the reference point.  Boxes are
// combined horizontally using [HBox] and vertically using
// [Parameters.VBox].  [Paragraph] and [Table] provide text with line breaks
// and tabular layout.
package boxes

import (
	"seehuhn.de/go/bizdoc/draw"
	"seehuhn.de/go/bizdoc/font"
)

// Parameters contains the parameter values used by the layout engine.
type Parameters struct {
	// BaseLineSkip is the minimal distance between the baselines of
	// consecutive boxes in a vertical list.
	BaseLineSkip float64
}

// Box represents marks on a page within a rectangular area of known size.
type Box interface {
	Extent() *BoxExtent
	Draw(r *draw.Recorder, xPos, yPos float64)
}

// Splitter is implemented by boxes which can be broken across pages.
// Stacking the pieces vertically, without additional space, gives the
// same result as the box itself.
type Splitter interface {
	Box
	Pieces() []Box
}

// BoxExtent gives the dimensions of a Box.
type BoxExtent struct {
	Width, Height, Depth float64
	WhiteSpaceOnly       bool
}

// Extent implements the Box interface.
func (obj BoxExtent) Extent() *BoxExtent {
	return &obj
}

// A RuleBox is a solidly filled rectangular region on the page.
type RuleBox struct {
	BoxExtent
	Color draw.Color
}

// Rule returns a new rule box, filled with the given color.
func Rule(col draw.Color, width, height, depth float64) Box {
	return &RuleBox{
		BoxExtent: BoxExtent{
			Width:  width,
			Height: height,
			Depth:  depth,
		},
		Color: col,
	}
}

// Draw implements the Box interface.
func (obj *RuleBox) Draw(r *draw.Recorder, xPos, yPos float64) {
	if obj.Width > 0 && obj.Depth+obj.Height > 0 {
		r.SetFillColor(obj.Color)
		r.FillRect(xPos, yPos-obj.Depth, obj.Width, obj.Depth+obj.Height)
	}
}

// Kern represents a fixed amount of space.
type Kern float64

// Extent implements the Box interface.
func (obj Kern) Extent() *BoxExtent {
	return &BoxExtent{
		Width:          float64(obj),
		Height:         float64(obj),
		WhiteSpaceOnly: true,
	}
}

// Draw implements the Box interface.
func (obj Kern) Draw(r *draw.Recorder, xPos, yPos float64) {}

// TextBox represents a single line of text, set in one font.
type TextBox struct {
	BoxExtent

	Font  draw.Font
	Size  float64
	Color draw.Color
	Text  string
}

// Text returns a new TextBox.  The height and depth of the box are the
// ascent and descent of the font, so that lines of text set in the same
// font have equal extents.
func Text(fonts *font.Registry, f draw.Font, size float64, col draw.Color, text string) *TextBox {
	box := &TextBox{
		Font:  f,
		Size:  size,
		Color: col,
		Text:  text,
	}
	if face := fonts.Face(f); face != nil {
		box.Width = face.Width(size, text)
		box.Height = face.Ascender(size)
		box.Depth = face.Descender(size)
	}
	return box
}

// Draw implements the Box interface.
func (obj *TextBox) Draw(r *draw.Recorder, xPos, yPos float64) {
	if obj.Text == "" {
		return
	}
	r.SetFillColor(obj.Color)
	r.SetFont(obj.Font, obj.Size)
	r.Text(xPos, yPos, obj.Text)
}

type walker interface {
	Walk(func(Box))
}

// Walk calls fn for every box in the tree rooted at box.
func Walk(box Box, fn func(Box)) {
	fn(box)
	if w, ok := box.(walker); ok {
		w.Walk(func(child Box) {
			Walk(child, fn)
		})
	}
}
