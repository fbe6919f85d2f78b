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

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/bizdoc/draw"
)

// Text drawn before any font has been selected uses this size.
const defaultFontSize = 12

// Draw replays the given drawing commands onto the content stream.
//
// Commands are replayed in order.  A [draw.SetFont] command stays in effect
// until the next one, also across calls to Draw.
func (w *Writer) Draw(cmds ...draw.Command) {
	for _, cmd := range cmds {
		if w.Err != nil {
			return
		}
		switch cmd := cmd.(type) {
		case draw.SetFillColor:
			w.SetFillColor(cmd.Color)
		case draw.SetStrokeColor:
			w.SetStrokeColor(cmd.Color)
		case draw.SetLineWidth:
			w.SetLineWidth(cmd.Width)
		case draw.SetFont:
			w.font = cmd.Font
			w.fontSize = cmd.Size
		case draw.Text:
			w.showText(cmd.X, cmd.Y, cmd.S)
		case draw.CenteredText:
			width := w.Fonts.Width(w.font, w.currentSize(), cmd.S)
			w.showText(cmd.X-width/2, cmd.Y, cmd.S)
		case draw.Line:
			w.MoveTo(cmd.X1, cmd.Y1)
			w.LineTo(cmd.X2, cmd.Y2)
			w.Stroke()
		case draw.Rectangle:
			w.drawRectangle(cmd)
		default:
			w.Err = fmt.Errorf("graphics: unsupported command %T", cmd)
		}
	}
}

// DrawIsolated replays cmds enclosed in a saved graphics state.  After the
// call, the graphics state and the font selection are the same as before.
func (w *Writer) DrawIsolated(cmds ...draw.Command) {
	if len(cmds) == 0 {
		return
	}
	f, size := w.font, w.fontSize
	w.PushGraphicsState()
	w.Draw(cmds...)
	w.PopGraphicsState()
	w.font, w.fontSize = f, size
}

func (w *Writer) currentSize() float64 {
	if w.fontSize > 0 {
		return w.fontSize
	}
	return defaultFontSize
}

func (w *Writer) showText(x, y float64, s string) {
	if s == "" {
		return
	}
	w.TextStart()
	w.TextSetFont(w.font, w.currentSize())
	w.TextSetMatrix(matrix.Translate(x, y))
	w.TextShow(s)
	w.TextEnd()
}

func (w *Writer) drawRectangle(r draw.Rectangle) {
	if !r.Fill && !r.Stroke {
		return
	}
	if r.Radius > 0 {
		w.RoundedRectangle(r.X, r.Y, r.W, r.H, r.Radius)
	} else {
		w.Rectangle(r.X, r.Y, r.W, r.H)
	}
	switch {
	case r.Fill && r.Stroke:
		w.FillAndStroke()
	case r.Fill:
		w.Fill()
	default:
		w.Stroke()
	}
}
