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
	"math"

	"seehuhn.de/go/bizdoc/pdf"
)

// Embed writes the face to w as a simple TrueType font, using ref for the
// font dictionary.  The complete font program is embedded.
//
// See section 9.6.3 of PDF 32000-1:2008.
func (f *Face) Embed(w *pdf.Writer, ref pdf.Reference) error {
	fdRef := w.Alloc()
	fileRef := w.Alloc()

	widths := make(pdf.Array, 0, LastChar-FirstChar+1)
	for _, wd := range f.Widths() {
		widths = append(widths, pdf.Integer(math.Round(wd)))
	}

	dict := pdf.Dict{
		"Type":           pdf.Name("Font"),
		"Subtype":        pdf.Name("TrueType"),
		"BaseFont":       pdf.Name(f.PostScriptName),
		"FirstChar":      pdf.Integer(FirstChar),
		"LastChar":       pdf.Integer(LastChar),
		"Widths":         widths,
		"Encoding":       pdf.Name("WinAnsiEncoding"),
		"FontDescriptor": fdRef,
	}
	err := w.Put(ref, dict)
	if err != nil {
		return err
	}
	err = w.Put(fdRef, f.descriptor(fileRef))
	if err != nil {
		return err
	}

	fileDict := pdf.Dict{
		"Length1": pdf.Integer(len(f.data)),
	}
	return w.PutStream(fileRef, fileDict, f.data, true)
}
