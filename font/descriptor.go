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
	"seehuhn.de/go/bizdoc/pdf"
)

// Flags represents PDF Font Descriptor Flags.
// See section 9.8.2 of PDF 32000-1:2008.
type Flags uint32

// Possible values for PDF Font Descriptor Flags.
const (
	FlagFixedPitch  Flags = 1 << 0 // All glyphs have the same width.
	FlagSerif       Flags = 1 << 1 // Glyphs have serifs.
	FlagSymbolic    Flags = 1 << 2 // Font contains glyphs outside the Adobe standard Latin character set.
	FlagScript      Flags = 1 << 3 // Glyphs resemble cursive handwriting.
	FlagNonsymbolic Flags = 1 << 5 // Font uses the Adobe standard Latin character set or a subset of it.
	FlagItalic      Flags = 1 << 6 // Glyphs have dominant vertical strokes that are slanted.
)

// Flags returns the font descriptor flags for the face.
// Faces are always used with WinAnsi encoding and thus are nonsymbolic.
func (f *Face) Flags() Flags {
	flags := FlagNonsymbolic
	if f.IsFixedPitch {
		flags |= FlagFixedPitch
	}
	if f.IsSerif {
		flags |= FlagSerif
	}
	if f.IsItalic {
		flags |= FlagItalic
	}
	return flags
}

// descriptor returns the font descriptor dictionary for the face.
//
// See section 9.8.1 of PDF 32000-1:2008.
func (f *Face) descriptor(fontFile pdf.Reference) pdf.Dict {
	return pdf.Dict{
		"Type":        pdf.Name("FontDescriptor"),
		"FontName":    pdf.Name(f.PostScriptName),
		"Flags":       pdf.Integer(f.Flags()),
		"FontBBox":    pdf.Rect(f.BBox),
		"ItalicAngle": pdf.Real(f.ItalicAngle),
		"Ascent":      pdf.Real(f.Ascent),
		"Descent":     pdf.Real(f.Descent),
		"CapHeight":   pdf.Real(f.CapHeight),
		"StemV":       pdf.Integer(0), // unknown
		"FontFile2":   fontFile,
	}
}
