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

package boxes

import (
	"math"

	"seehuhn.de/go/bizdoc/draw"
)

// hBox represents a Box which contains a row of sub-objects.
type hBox struct {
	BoxExtent

	Contents []Box
}

// HBox creates a new HBox
func HBox(children ...Box) Box {
	hbox := &hBox{
		Contents: children,
	}
	for _, box := range children {
		hbox.Width += box.Extent().Width
	}
	hbox.setVertical()
	return hbox
}

// HBoxTo creates a new HBox with the given width
func HBoxTo(total float64, children ...Box) Box {
	hbox := &hBox{
		BoxExtent: BoxExtent{
			Width: total,
		},
		Contents: children,
	}
	hbox.setVertical()
	return hbox
}

func (obj *hBox) setVertical() {
	obj.Height = math.Inf(-1)
	obj.Depth = math.Inf(-1)
	for _, box := range obj.Contents {
		ext := box.Extent()
		if ext.Height > obj.Height && !ext.WhiteSpaceOnly {
			obj.Height = ext.Height
		}
		if ext.Depth > obj.Depth && !ext.WhiteSpaceOnly {
			obj.Depth = ext.Depth
		}
	}
	if math.IsInf(obj.Height, -1) {
		obj.Height = 0
		obj.WhiteSpaceOnly = true
	}
	if math.IsInf(obj.Depth, -1) {
		obj.Depth = 0
	}
}

// Draw implements the Box interface.
func (obj *hBox) Draw(r *draw.Recorder, xPos, yPos float64) {
	widths := setGlue(obj.Contents, obj.Width, func(ext *BoxExtent) float64 {
		return ext.Width
	})
	x := xPos
	for i, child := range obj.Contents {
		child.Draw(r, x, yPos)
		x += widths[i]
	}
}

// Walk calls fn for all direct children of the box.
func (obj *hBox) Walk(fn func(Box)) {
	for _, child := range obj.Contents {
		fn(child)
	}
}
