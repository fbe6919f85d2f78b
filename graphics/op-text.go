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

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/bizdoc/draw"
	"seehuhn.de/go/bizdoc/pdf"
)

// This file implements the text-related PDF operators needed here.  The
// operators are defined in tables 103, 105, 106 and 107 of ISO
// 32000-2:2020.

// TextStart starts a new text object.
//
// This implements the PDF graphics operator "BT".
func (w *Writer) TextStart() {
	if !w.isValid("TextStart", objPage) {
		return
	}
	w.currentObject = objText

	w.nesting = append(w.nesting, pairTypeBT)

	_, w.Err = fmt.Fprintln(w.Content, "BT")
}

// TextEnd ends the current text object.
//
// This implements the PDF graphics operator "ET".
func (w *Writer) TextEnd() {
	if !w.isValid("TextEnd", objText) {
		return
	}
	w.currentObject = objPage

	if len(w.nesting) == 0 || w.nesting[len(w.nesting)-1] != pairTypeBT {
		w.Err = errors.New("TextEnd: no matching TextStart")
		return
	}
	w.nesting = w.nesting[:len(w.nesting)-1]

	_, w.Err = fmt.Fprintln(w.Content, "ET")
}

// TextSetFont sets the font and font size.
//
// This implements the PDF graphics operator "Tf".
func (w *Writer) TextSetFont(f draw.Font, size float64) {
	if !w.isValid("TextSetFont", objText|objPage) {
		return
	}
	if w.isSet(StateTextFont) && w.TextFont == f && nearlyEqual(w.TextFontSize, size) {
		return
	}

	w.TextFont = f
	w.TextFontSize = size
	w.Set |= StateTextFont

	name := w.fontName(f)
	w.Err = name.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "", coord(size), "Tf")
}

// TextSetMatrix replaces the current text matrix and line matrix with M.
//
// This implements the PDF graphics operator "Tm".
func (w *Writer) TextSetMatrix(M matrix.Matrix) {
	if !w.isValid("TextSetMatrix", objText) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content,
		coord(M[0]), coord(M[1]), coord(M[2]), coord(M[3]), coord(M[4]), coord(M[5]), "Tm")
}

// TextShowRaw shows an already encoded text in the PDF file.
//
// This implements the PDF graphics operator "Tj".
func (w *Writer) TextShowRaw(s pdf.String) {
	if !w.isValid("TextShowRaw", objText) {
		return
	}
	if !w.isSet(StateTextFont) {
		w.Err = errors.New("TextShowRaw: no font set")
		return
	}

	w.Err = s.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, " Tj")
}

// TextShow encodes s using the current font and shows the result.
func (w *Writer) TextShow(s string) {
	if w.Err != nil {
		return
	}
	if !w.isSet(StateTextFont) {
		w.Err = errors.New("TextShow: no font set")
		return
	}
	face := w.Fonts.Face(w.TextFont)
	if face == nil {
		w.Err = fmt.Errorf("TextShow: font %s not available", w.TextFont)
		return
	}
	w.TextShowRaw(pdf.String(face.Encode(s)))
}
