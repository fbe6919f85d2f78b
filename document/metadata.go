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

package document

import (
	"bytes"

	"golang.org/x/text/language"

	"seehuhn.de/go/xmp"

	"seehuhn.de/go/bizdoc/pdf"
)

// writeMetadata writes the XMP metadata stream for the document.
//
// See section 14.3.2 of ISO 32000-2:2020.
func (w *Writer) writeMetadata(ref pdf.Reference) error {
	lang := language.MustParse("x-default")

	dc := &xmp.DublinCore{}
	if w.opt.Title != "" {
		dc.Title.Set(lang, w.opt.Title)
	}
	if w.opt.Author != "" {
		dc.Creator.Append(xmp.NewProperName(w.opt.Author))
	}
	if w.opt.Subject != "" {
		dc.Description.Set(lang, w.opt.Subject)
	}

	basic := &xmp.Basic{}
	if !w.opt.CreationDate.IsZero() {
		basic.CreateDate = xmp.NewDate(w.opt.CreationDate)
	}

	pdfInfo := &xmpPDF{}
	if w.opt.Producer != "" {
		pdfInfo.Producer = xmp.NewAgentName(w.opt.Producer)
	}
	pdfInfo.PDFVersion = xmp.NewText(w.opt.Version.String())

	packet := xmp.NewPacket()
	packet.Set(dc, basic, pdfInfo)

	buf := &bytes.Buffer{}
	err := packet.Write(buf, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		return err
	}

	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	return w.out.PutStream(ref, dict, buf.Bytes(), false)
}

// xmpPDF is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type xmpPDF struct {
	_          xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_          xmp.Prefix    `xmp:"pdf"`
	PDFVersion xmp.Text
	Producer   xmp.AgentName
}
