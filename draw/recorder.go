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

package draw

// Recorder collects drawing commands in the order they are issued.
// The zero value is an empty recorder, ready to use.
type Recorder struct {
	cmds []Command
}

// Commands returns a copy of the recorded commands.
func (r *Recorder) Commands() []Command {
	res := make([]Command, len(r.cmds))
	copy(res, r.cmds)
	return res
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.cmds)
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.cmds = r.cmds[:0]
}

// Append records arbitrary commands.
func (r *Recorder) Append(cmds ...Command) {
	r.cmds = append(r.cmds, cmds...)
}

// SetFillColor records a [SetFillColor] command.
func (r *Recorder) SetFillColor(col Color) {
	r.cmds = append(r.cmds, SetFillColor{Color: col})
}

// SetStrokeColor records a [SetStrokeColor] command.
func (r *Recorder) SetStrokeColor(col Color) {
	r.cmds = append(r.cmds, SetStrokeColor{Color: col})
}

// SetLineWidth records a [SetLineWidth] command.
func (r *Recorder) SetLineWidth(width float64) {
	r.cmds = append(r.cmds, SetLineWidth{Width: width})
}

// SetFont records a [SetFont] command.
func (r *Recorder) SetFont(f Font, size float64) {
	r.cmds = append(r.cmds, SetFont{Font: f, Size: size})
}

// Text records a [Text] command.
func (r *Recorder) Text(x, y float64, s string) {
	r.cmds = append(r.cmds, Text{X: x, Y: y, S: s})
}

// CenteredText records a [CenteredText] command.
func (r *Recorder) CenteredText(x, y float64, s string) {
	r.cmds = append(r.cmds, CenteredText{X: x, Y: y, S: s})
}

// Line records a [Line] command.
func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.cmds = append(r.cmds, Line{X1: x1, Y1: y1, X2: x2, Y2: y2})
}

// FillRect records a filled rectangle without outline.
func (r *Recorder) FillRect(x, y, w, h float64) {
	r.cmds = append(r.cmds, Rectangle{X: x, Y: y, W: w, H: h, Fill: true})
}

// Rectangle records a [Rectangle] command.
func (r *Recorder) Rectangle(x, y, w, h, radius float64, fill, stroke bool) {
	r.cmds = append(r.cmds, Rectangle{
		X: x, Y: y, W: w, H: h,
		Radius: radius,
		Fill:   fill,
		Stroke: stroke,
	})
}
