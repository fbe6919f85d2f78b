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

// Package graphics writes PDF content streams.
//
// A [Writer] exposes the PDF graphics operators needed for business
// documents as methods.  Errors are sticky: after the first error, all
// further operations are ignored and the error is kept in Writer.Err.
// Redundant state changes, for example setting the current fill color
// again, are omitted from the output.
//
// The method [Writer.Draw] replays drawing commands from
// [seehuhn.de/go/bizdoc/draw] onto a content stream.
package graphics

import (
	"fmt"
	"io"
	"strconv"

	"seehuhn.de/go/bizdoc/draw"
	"seehuhn.de/go/bizdoc/font"
	"seehuhn.de/go/bizdoc/pdf"
)

// Writer writes a PDF content stream.
type Writer struct {
	Content io.Writer
	Err     error

	// Fonts is used to encode and measure text.
	Fonts *font.Registry

	currentObject objectType
	nesting       []pairType

	State
	stack []State

	fontNames map[draw.Font]pdf.Name
	fontOrder []draw.Font

	// font selected by the last draw.SetFont command
	font     draw.Font
	fontSize float64
}

// State holds the parts of the graphics state which are tracked by the
// writer.
type State struct {
	Set StateBits

	FillColor   draw.Color
	StrokeColor draw.Color
	LineWidth   float64

	TextFont     draw.Font
	TextFontSize float64
}

// StateBits records which fields of [State] have been set.
type StateBits uint32

// Possible values for [StateBits].
const (
	StateFillColor StateBits = 1 << iota
	StateStrokeColor
	StateLineWidth
	StateTextFont
)

// NewWriter allocates a new Writer object.
// The font registry is used to encode text for the content stream.
func NewWriter(out io.Writer, fonts *font.Registry) *Writer {
	return &Writer{
		Content:       out,
		Fonts:         fonts,
		currentObject: objPage,
		fontNames:     make(map[draw.Font]pdf.Name),
	}
}

// FontResource describes one font used in the content stream.
type FontResource struct {
	Name pdf.Name
	Font draw.Font
}

// FontResources returns the fonts used in the content stream, in the
// order of first use.  The names must be used as keys in the /Font
// dictionary of the page resources.
func (w *Writer) FontResources() []FontResource {
	res := make([]FontResource, len(w.fontOrder))
	for i, f := range w.fontOrder {
		res[i] = FontResource{Name: w.fontNames[f], Font: f}
	}
	return res
}

// Close checks that all text objects and saved graphics states have been
// closed, and returns the first error encountered while writing.
func (w *Writer) Close() error {
	if w.Err != nil {
		return w.Err
	}
	if len(w.nesting) > 0 {
		return fmt.Errorf("graphics: %d unclosed pairs of operators", len(w.nesting))
	}
	return nil
}

// isValid returns true, if the current graphics object is one of the given
// types and if w.Err is nil.  Otherwise it sets w.Err and returns false.
func (w *Writer) isValid(cmd string, ss objectType) bool {
	if w.Err != nil {
		return false
	}

	if w.currentObject&ss != 0 {
		return true
	}

	w.Err = fmt.Errorf("unexpected state %q for %q", w.currentObject, cmd)
	return false
}

func (w *Writer) isSet(bits StateBits) bool {
	return w.State.Set&bits == bits
}

func (w *Writer) fontName(f draw.Font) pdf.Name {
	name, ok := w.fontNames[f]
	if !ok {
		name = pdf.Name("F" + strconv.Itoa(len(w.fontNames)+1))
		w.fontNames[f] = name
		w.fontOrder = append(w.fontOrder, f)
	}
	return name
}

func coord(x float64) string {
	return pdf.Format(x, 3)
}

// See Figure 9 (p. 113) of PDF 32000-1:2008.
type objectType int

const (
	objPage objectType = 1 << iota
	objPath
	objText
)

func (s objectType) String() string {
	switch s {
	case objPage:
		return "page"
	case objPath:
		return "path"
	case objText:
		return "text"
	default:
		return fmt.Sprintf("objectType(%d)", s)
	}
}

type pairType byte

const (
	pairTypeQ  pairType = iota + 1 // q ... Q
	pairTypeBT                     // BT ... ET
)

func nearlyEqual(a, b float64) bool {
	const eps = 1e-6
	return a-b < eps && b-a < eps
}
