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
	"strings"

	"seehuhn.de/go/bizdoc/draw"
	"seehuhn.de/go/bizdoc/font"
)

// Align describes the horizontal placement of content within the
// available width.
type Align int

// These are the supported alignments.
const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// offset returns the distance from the left edge at which content of
// the given width starts.
func (a Align) offset(avail, width float64) float64 {
	switch a {
	case AlignRight:
		return avail - width
	case AlignCenter:
		return (avail - width) / 2
	default:
		return 0
	}
}

// Span is a piece of text set in one weight.  Newline characters force a
// line break.
type Span struct {
	Text   string
	Weight draw.Weight
}

// ParagraphStyle describes how the text of a paragraph is set.
type ParagraphStyle struct {
	Family string
	Size   float64

	// Leading is the distance between consecutive baselines.
	// If this is zero, 1.2 times the font size is used.
	Leading float64

	Color draw.Color
	Align Align
}

func (s *ParagraphStyle) leading() float64 {
	if s.Leading > 0 {
		return s.Leading
	}
	return 1.2 * s.Size
}

// Paragraph is a block of text, broken into lines of a given width.
type Paragraph struct {
	*vBox
	lines []Box
}

// NewParagraph breaks the given text into lines which fit into the given
// width.  Lines are broken greedily at white space.  Words which are wider
// than the available space are put on a line of their own and overflow
// to the right.
func NewParagraph(fonts *font.Registry, width float64, style *ParagraphStyle, spans ...Span) *Paragraph {
	b := &lineBuilder{
		fonts: fonts,
		style: style,
		width: width,
	}
	for _, w := range splitWords(spans) {
		b.add(w)
	}
	b.flush(false)

	p := &Paragraph{
		lines: b.lines,
	}
	p.vBox = (&Parameters{}).vBoxInternal(false, b.lines...)
	p.Width = width
	return p
}

// Lines returns the number of lines in the paragraph.
func (p *Paragraph) Lines() int {
	return len(p.lines)
}

// Pieces implements the [Splitter] interface.
func (p *Paragraph) Pieces() []Box {
	return p.lines
}

type word struct {
	Text        string
	Weight      draw.Weight
	SpaceBefore bool
	Break       bool
}

// splitWords splits the text of the spans at white space.  Text from
// adjacent spans which is not separated by white space ends up in
// consecutive words with SpaceBefore unset.
func splitWords(spans []Span) []word {
	var res []word
	space := false
	for _, span := range spans {
		cur := &strings.Builder{}
		flush := func() {
			if cur.Len() > 0 {
				res = append(res, word{
					Text:        cur.String(),
					Weight:      span.Weight,
					SpaceBefore: space,
				})
				cur.Reset()
				space = false
			}
		}
		for _, r := range span.Text {
			switch r {
			case '\n':
				flush()
				res = append(res, word{Break: true})
				space = false
			case ' ', '\t', '\r':
				flush()
				space = true
			default:
				cur.WriteRune(r)
			}
		}
		flush()
	}
	return res
}

type lineRun struct {
	X      float64
	Weight draw.Weight
	Text   string
}

type lineBuilder struct {
	fonts *font.Registry
	style *ParagraphStyle
	width float64

	runs  []lineRun
	x     float64
	lines []Box
}

func (b *lineBuilder) font(w draw.Weight) draw.Font {
	return draw.Font{Family: b.style.Family, Weight: w}
}

func (b *lineBuilder) add(w word) {
	if w.Break {
		b.flush(true)
		return
	}

	size := b.style.Size
	wordWidth := b.fonts.Width(b.font(w.Weight), size, w.Text)
	sep := ""
	if w.SpaceBefore && len(b.runs) > 0 {
		sep = " "
	}
	sepWidth := 0.0
	if sep != "" {
		sepWidth = b.fonts.Width(b.font(w.Weight), size, sep)
	}

	if len(b.runs) > 0 && b.x+sepWidth+wordWidth > b.width+1e-6 {
		b.flush(false)
		sep = ""
		sepWidth = 0
	}

	if n := len(b.runs); n > 0 && b.runs[n-1].Weight == w.Weight {
		b.runs[n-1].Text += sep + w.Text
	} else {
		b.runs = append(b.runs, lineRun{
			X:      b.x + sepWidth,
			Weight: w.Weight,
			Text:   w.Text,
		})
	}
	b.x += sepWidth + wordWidth
}

// flush finishes the current line.  Empty lines are only kept if force
// is set.
func (b *lineBuilder) flush(force bool) {
	if len(b.runs) == 0 && !force {
		return
	}

	leading := b.style.leading()
	height := 0.8 * leading
	depth := 0.2 * leading
	if face := b.fonts.Face(b.font(draw.Regular)); face != nil {
		height = math.Max(height, face.Ascender(b.style.Size))
		depth = math.Max(depth, face.Descender(b.style.Size))
	}

	b.lines = append(b.lines, &lineBox{
		BoxExtent: BoxExtent{
			Width:  b.width,
			Height: height,
			Depth:  depth,
		},
		Family: b.style.Family,
		Size:   b.style.Size,
		Color:  b.style.Color,
		Shift:  b.style.Align.offset(b.width, b.x),
		Runs:   b.runs,
	})
	b.runs = nil
	b.x = 0
}

// lineBox is one line of a paragraph.
type lineBox struct {
	BoxExtent

	Family string
	Size   float64
	Color  draw.Color
	Shift  float64
	Runs   []lineRun
}

// Draw implements the Box interface.
func (obj *lineBox) Draw(r *draw.Recorder, xPos, yPos float64) {
	if len(obj.Runs) == 0 {
		return
	}
	r.SetFillColor(obj.Color)
	for _, run := range obj.Runs {
		r.SetFont(draw.Font{Family: obj.Family, Weight: run.Weight}, obj.Size)
		r.Text(xPos+obj.Shift+run.X, yPos, run.Text)
	}
}
