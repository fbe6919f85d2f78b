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

// Package font provides the fonts used for business documents.
//
// Fonts are TrueType fonts from the Go font family.  Text is encoded using
// the single-byte WinAnsi encoding, so that every font is embedded into a
// PDF file as a simple TrueType font.  Characters which cannot be
// represented in WinAnsi are replaced by a question mark, both for drawing
// and for measuring.
//
// A [Registry] maps the font names used in drawing commands, see
// [seehuhn.de/go/bizdoc/draw.Font], to font faces.  The registry returned by
// [GoFonts] is shared between all documents and is safe for concurrent use.
package font

import "seehuhn.de/go/bizdoc/draw"

// Measurer measures the width of text.
type Measurer interface {
	// Width returns the advance width of s, in PDF points, when set in the
	// font f at the given size.
	Width(f draw.Font, size float64, s string) float64
}
