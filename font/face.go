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

package font

import (
	"fmt"
	"math"

	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/bizdoc/draw"
)

// The range of character codes which can be used with a face.
// Codes below FirstChar are control characters in WinAnsi.
const (
	FirstChar = 32
	LastChar  = 255
)

// Face is a TrueType font together with the metrics needed for layout
// and embedding.
//
// All metrics are given in PDF glyph space units, i.e. in 1/1000 of the
// font size.  A Face is immutable and can be shared between goroutines.
type Face struct {
	// Font is the name under which the face is registered.
	Font draw.Font

	// PostScriptName is the PostScript name of the font program.
	PostScriptName string

	Ascent    float64
	Descent   float64 // negative
	CapHeight float64
	BBox      rect.Rect

	ItalicAngle  float64
	IsFixedPitch bool
	IsSerif      bool
	IsItalic     bool

	data   []byte
	gid    [256]glyph.ID
	widths [256]float64
}

// NewFace parses the TrueType font file data.
// The slice data is retained by the face and must not be modified.
func NewFace(name draw.Font, data []byte, info *sfnt.Font) (*Face, error) {
	cmap, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", name, err)
	}

	qv := info.FontMatrix[3] * 1000
	face := &Face{
		Font:           name,
		PostScriptName: info.PostScriptName(),
		Ascent:         math.Round(float64(info.Ascent) * qv),
		Descent:        math.Round(float64(info.Descent) * qv),
		CapHeight:      math.Round(float64(info.CapHeight) * qv),
		BBox:           info.FontBBoxPDF().Rounded(),
		ItalicAngle:    info.ItalicAngle,
		IsFixedPitch:   info.IsFixedPitch(),
		IsSerif:        info.IsSerif,
		IsItalic:       info.IsItalic,
		data:           data,
	}
	for c := FirstChar; c <= LastChar; c++ {
		r := charmap.Windows1252.DecodeByte(byte(c))
		gid := cmap.Lookup(r)
		face.gid[c] = gid
		face.widths[c] = info.GlyphWidthPDF(gid)
	}
	return face, nil
}

// Encode converts s to WinAnsi character codes.
// Characters which have no code, or which are not present in the font,
// are replaced by '?'.
func (f *Face) Encode(s string) []byte {
	res := make([]byte, 0, len(s))
	for _, r := range s {
		c, ok := charmap.Windows1252.EncodeRune(r)
		if !ok || c < FirstChar || (f.gid[c] == 0 && r != ' ') {
			c = '?'
		}
		res = append(res, c)
	}
	return res
}

// CodeWidth returns the width of the glyph for character code c,
// in glyph space units.
func (f *Face) CodeWidth(c byte) float64 {
	return f.widths[c]
}

// Width returns the advance width of s in PDF points, when set at the
// given font size.
func (f *Face) Width(size float64, s string) float64 {
	total := 0.0
	for _, c := range f.Encode(s) {
		total += f.widths[c]
	}
	return total * size / 1000
}

// Widths returns the glyph widths for the character codes
// FirstChar, ..., LastChar.
func (f *Face) Widths() []float64 {
	res := make([]float64, LastChar-FirstChar+1)
	copy(res, f.widths[FirstChar:])
	return res
}

// FontFile returns the TrueType font program.
// The returned slice must not be modified.
func (f *Face) FontFile() []byte {
	return f.data
}

// Ascender returns the ascent of the font at the given size, in PDF points.
func (f *Face) Ascender(size float64) float64 {
	return f.Ascent * size / 1000
}

// Descender returns the (positive) descent of the font at the given size,
// in PDF points.
func (f *Face) Descender(size float64) float64 {
	return -f.Descent * size / 1000
}
