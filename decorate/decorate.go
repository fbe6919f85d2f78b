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

// Package decorate computes the per-page decoration of business documents:
// a payment or reference box, a separator line, a company information line
// and a "page N of M" label.
//
// Decorations are drawn at fixed positions near the bottom of the page.
// The layout of the page content must leave this area free.  Text which
// does not fit into the available space is drawn anyway and may overflow
// its area.
package decorate

import (
	"golang.org/x/text/language"

	"seehuhn.de/go/bizdoc/draw"
	"seehuhn.de/go/bizdoc/font"
)

// Context describes the decoration of the pages of a document.
// All parts except the page label are optional.
//
// A Context must not be modified while a document using it is being
// generated.
type Context struct {
	// PageWidth is the width of the page.  Text lines and the page label
	// are centered on the page.
	PageWidth float64

	// Fonts is used to measure text which is composed of runs with
	// different weights.
	Fonts font.Measurer

	// Family is the font family for all decoration text.
	Family string

	Box       *Box
	Separator *Separator
	Info      *TextLine
	Label     PageLabel
}

// Box is a filled rectangle with lines of text, drawn at the same position
// on every page.
type Box struct {
	X, Y, W, H float64
	Radius     float64
	Background draw.Color

	// Padding is the distance between the left edge of the box and the
	// start of the text lines.
	Padding   float64
	TextColor draw.Color
	Size      float64
	Lines     []BoxLine
}

// BoxLine is a line of text inside a [Box].
type BoxLine struct {
	// Offset is the distance from the top of the box to the baseline.
	Offset float64
	Runs   []Run
}

// Run is a piece of text set in a single font weight.
type Run struct {
	Text   string
	Weight draw.Weight
}

// Separator is a horizontal line.
type Separator struct {
	Y      float64
	X1, X2 float64
	Width  float64
	Color  draw.Color
}

// TextLine is a line of text, centered on the page.
type TextLine struct {
	Text  string
	Size  float64
	Y     float64
	Color draw.Color
}

// PageLabel describes the "page N of M" label.
// If Size is zero, no label is drawn.
type PageLabel struct {
	Language language.Tag
	Size     float64
	Y        float64
	Color    draw.Color
}

// Render returns the decoration for page ordinal of a document with total
// pages.
//
// The result only depends on the arguments.  The box is drawn first,
// followed by the separator, the information line and the page label.
func Render(ctx *Context, ordinal, total int) []draw.Command {
	r := &draw.Recorder{}
	regular := draw.Font{Family: ctx.Family, Weight: draw.Regular}

	if box := ctx.Box; box != nil {
		r.SetFillColor(box.Background)
		r.Rectangle(box.X, box.Y, box.W, box.H, box.Radius, true, false)

		r.SetFillColor(box.TextColor)
		top := box.Y + box.H
		for _, line := range box.Lines {
			cmds, _ := LayoutRuns(ctx.Fonts, box.X+box.Padding, top-line.Offset, box.Size, ctx.Family, line.Runs)
			r.Append(cmds...)
		}
	}

	if sep := ctx.Separator; sep != nil {
		r.SetStrokeColor(sep.Color)
		r.SetLineWidth(sep.Width)
		r.Line(sep.X1, sep.Y, sep.X2, sep.Y)
	}

	if info := ctx.Info; info != nil && info.Text != "" {
		r.SetFont(regular, info.Size)
		r.SetFillColor(info.Color)
		r.CenteredText(ctx.PageWidth/2, info.Y, info.Text)
	}

	if label := ctx.Label; label.Size > 0 {
		r.SetFont(regular, label.Size)
		r.SetFillColor(label.Color)
		r.CenteredText(ctx.PageWidth/2, label.Y, PageText(label.Language, ordinal, total))
	}

	return r.Commands()
}

// LayoutRuns sets a line of text which is composed of runs with different
// font weights.  The first run starts at (x, y), every following run starts
// where the previous one ends.
//
// The function returns the drawing commands together with the total
// advance width, which equals the sum of the widths of the runs.
func LayoutRuns(m font.Measurer, x, y, size float64, family string, runs []Run) ([]draw.Command, float64) {
	r := &draw.Recorder{}
	advance := 0.0
	for _, run := range runs {
		if run.Text == "" {
			continue
		}
		f := draw.Font{Family: family, Weight: run.Weight}
		r.SetFont(f, size)
		r.Text(x+advance, y, run.Text)
		advance += m.Width(f, size, run.Text)
	}
	return r.Commands(), advance
}
