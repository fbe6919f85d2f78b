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
	"fmt"

	"seehuhn.de/go/bizdoc/draw"
)

// This file implements the color operators for the DeviceRGB color space,
// see table 73 of ISO 32000-2:2020.

// SetStrokeColor sets the color to use for stroking operations.
//
// This implements the PDF graphics operator "RG".
func (w *Writer) SetStrokeColor(c draw.Color) {
	if !w.isValid("SetStrokeColor", objPage|objText) {
		return
	}
	if w.isSet(StateStrokeColor) && w.StrokeColor == c {
		return
	}

	w.StrokeColor = c
	w.Set |= StateStrokeColor

	_, w.Err = fmt.Fprintln(w.Content, component(c.R), component(c.G), component(c.B), "RG")
}

// SetFillColor sets the color to use for non-stroking operations.
//
// This implements the PDF graphics operator "rg".
func (w *Writer) SetFillColor(c draw.Color) {
	if !w.isValid("SetFillColor", objPage|objText) {
		return
	}
	if w.isSet(StateFillColor) && w.FillColor == c {
		return
	}

	w.FillColor = c
	w.Set |= StateFillColor

	_, w.Err = fmt.Fprintln(w.Content, component(c.R), component(c.G), component(c.B), "rg")
}

func component(x float64) string {
	if x < 0 {
		x = 0
	} else if x > 1 {
		x = 1
	}
	return coord(x)
}
