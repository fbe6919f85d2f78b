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

import "seehuhn.de/go/bizdoc/draw"

// Padding is the space between the edges of a table cell and its content.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// Line describes a horizontal rule across a table row.
type Line struct {
	Width float64
	Color draw.Color
}

// Row is one row of a [Table].
type Row struct {
	// Cells holds the content of the cells.  Nil cells are left empty.
	Cells []Box

	// Align gives the horizontal alignment for each cell.  Missing
	// entries mean [AlignLeft].
	Align []Align

	Background *draw.Color
	Padding    Padding
	LineAbove  *Line
	LineBelow  *Line
}

// Table is a box which arranges content in rows and columns of fixed
// width.  Cell content is aligned at the top of the cell.
type Table struct {
	BoxExtent
	rows []Box
}

// NewTable returns a new table with the given column widths.
func NewTable(colWidths []float64, rows ...*Row) *Table {
	t := &Table{}
	width := 0.0
	for _, w := range colWidths {
		width += w
	}
	t.Width = width
	for _, row := range rows {
		box := newRowBox(colWidths, width, row)
		t.rows = append(t.rows, box)
		t.Height += box.Height
	}
	return t
}

// Rows returns the number of rows in the table.
func (t *Table) Rows() int {
	return len(t.rows)
}

// Pieces implements the [Splitter] interface.
func (t *Table) Pieces() []Box {
	return t.rows
}

// Draw implements the Box interface.
func (t *Table) Draw(r *draw.Recorder, xPos, yPos float64) {
	y := yPos + t.Height
	for _, row := range t.rows {
		y -= row.Extent().Height
		row.Draw(r, xPos, y)
	}
}

// Walk calls fn for all rows of the table.
func (t *Table) Walk(fn func(Box)) {
	for _, row := range t.rows {
		fn(row)
	}
}

// rowBox is a table row.  The reference point is the bottom left corner
// of the row, the depth is always zero.
type rowBox struct {
	BoxExtent
	row    *Row
	widths []float64
}

func newRowBox(widths []float64, total float64, row *Row) *rowBox {
	content := 0.0
	for _, cell := range row.Cells {
		if cell == nil {
			continue
		}
		ext := cell.Extent()
		if h := ext.Height + ext.Depth; h > content {
			content = h
		}
	}
	return &rowBox{
		BoxExtent: BoxExtent{
			Width:  total,
			Height: row.Padding.Top + content + row.Padding.Bottom,
		},
		row:    row,
		widths: widths,
	}
}

// Draw implements the Box interface.
func (obj *rowBox) Draw(r *draw.Recorder, xPos, yPos float64) {
	row := obj.row
	top := yPos + obj.Height

	if row.Background != nil {
		r.SetFillColor(*row.Background)
		r.FillRect(xPos, yPos, obj.Width, obj.Height)
	}

	x := xPos
	for i, w := range obj.widths {
		if i >= len(row.Cells) {
			break
		}
		cell := row.Cells[i]
		if cell != nil {
			ext := cell.Extent()
			var align Align
			if i < len(row.Align) {
				align = row.Align[i]
			}
			avail := w - row.Padding.Left - row.Padding.Right
			cx := x + row.Padding.Left + align.offset(avail, ext.Width)
			cell.Draw(r, cx, top-row.Padding.Top-ext.Height)
		}
		x += w
	}

	if l := row.LineAbove; l != nil {
		r.SetStrokeColor(l.Color)
		r.SetLineWidth(l.Width)
		r.Line(xPos, top, xPos+obj.Width, top)
	}
	if l := row.LineBelow; l != nil {
		r.SetStrokeColor(l.Color)
		r.SetLineWidth(l.Width)
		r.Line(xPos, yPos, xPos+obj.Width, yPos)
	}
}

// Walk calls fn for all non-empty cells of the row.
func (obj *rowBox) Walk(fn func(Box)) {
	for _, cell := range obj.row.Cells {
		if cell != nil {
			fn(cell)
		}
	}
}
