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

// Package document writes multi-page PDF documents from lists of drawing
// commands.
//
// Pages are committed one at a time using [Writer.FinalizePage].  Once a page
// has been committed, it cannot be changed any more.  The finished file is
// returned by [Writer.Close].
package document

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/language"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/bizdoc/draw"
	"seehuhn.de/go/bizdoc/font"
	"seehuhn.de/go/bizdoc/graphics"
	"seehuhn.de/go/bizdoc/pdf"
)

// Options control the generated PDF file.
// The zero value gives a compressed PDF-1.7 file without metadata.
type Options struct {
	// Version is the PDF version of the output.  If this is zero, PDF-1.7
	// is used.
	Version pdf.Version

	// HumanReadable disables the compression of content streams.
	HumanReadable bool

	// Document information, written to the document information dictionary
	// and, if XMP is set, to the XMP metadata stream.
	Title    string
	Author   string
	Subject  string
	Creator  string
	Producer string

	// CreationDate is the creation date of the document.  If this is the
	// zero time, no date is recorded.
	CreationDate time.Time

	// Language, if set, is the natural language of the document text.
	Language language.Tag

	// XMP enables the XMP metadata stream.
	XMP bool
}

// Writer turns pages, given as lists of drawing commands, into a PDF file.
//
// Nothing is written until the first page is committed.  A Writer is not
// safe for concurrent use.
type Writer struct {
	pageSize rect.Rect
	fonts    *font.Registry
	opt      Options

	buf      *bytes.Buffer
	out      *pdf.Writer
	pagesRef pdf.Reference
	pageRefs []pdf.Reference

	fontRefs  map[draw.Font]pdf.Reference
	fontOrder []*font.Face

	closed bool
	err    error
}

// New returns a writer for a document with pages of the given size.
// Text is set using the faces in fonts.  If opt is nil, default options
// are used.
func New(pageSize rect.Rect, fonts *font.Registry, opt *Options) *Writer {
	w := &Writer{
		pageSize: pageSize,
		fonts:    fonts,
		fontRefs: make(map[draw.Font]pdf.Reference),
	}
	if opt != nil {
		w.opt = *opt
	}
	if w.opt.Version == 0 {
		w.opt.Version = pdf.V1_7
	}
	return w
}

// PageSize returns the size of the pages in the document.
func (w *Writer) PageSize() rect.Rect {
	return w.pageSize
}

// NumPages returns the number of pages committed so far.
func (w *Writer) NumPages() int {
	return len(w.pageRefs)
}

// FinalizePage replays the content and then the decoration onto a new
// page, and commits the page to the output.  The content is enclosed in a
// saved graphics state, so that the decoration is drawn starting from the
// initial graphics state.
//
// Pages appear in the document in the order of the calls to FinalizePage.
// If an error occurs, the writer becomes unusable and all further calls
// return the same error.
func (w *Writer) FinalizePage(content, decoration []draw.Command) error {
	if w.closed {
		return ErrClosed
	}
	if w.err != nil {
		return w.err
	}
	w.err = w.writePage(content, decoration)
	return w.err
}

func (w *Writer) writePage(content, decoration []draw.Command) error {
	if w.out == nil {
		w.buf = &bytes.Buffer{}
		out, err := pdf.NewWriter(w.buf, w.opt.Version)
		if err != nil {
			return err
		}
		w.out = out
		w.pagesRef = out.Alloc()
	}

	stream := &bytes.Buffer{}
	gw := graphics.NewWriter(stream, w.fonts)
	gw.DrawIsolated(content...)
	gw.Draw(decoration...)
	err := gw.Close()
	if err != nil {
		return fmt.Errorf("page %d: %w", len(w.pageRefs)+1, err)
	}

	fontDict := pdf.Dict{}
	for _, res := range gw.FontResources() {
		ref, err := w.fontRef(res.Font)
		if err != nil {
			return err
		}
		fontDict[res.Name] = ref
	}
	resources := pdf.Dict{
		"ProcSet": pdf.Array{pdf.Name("PDF"), pdf.Name("Text")},
	}
	if len(fontDict) > 0 {
		resources["Font"] = fontDict
	}

	contentRef := w.out.Alloc()
	err = w.out.PutStream(contentRef, nil, stream.Bytes(), !w.opt.HumanReadable)
	if err != nil {
		return err
	}

	pageRef := w.out.Alloc()
	pageDict := pdf.Dict{
		"Type":      pdf.Name("Page"),
		"Parent":    w.pagesRef,
		"Contents":  contentRef,
		"Resources": resources,
	}
	err = w.out.Put(pageRef, pageDict)
	if err != nil {
		return err
	}
	w.pageRefs = append(w.pageRefs, pageRef)
	return nil
}

// fontRef returns the reference used for the font dictionary of f.
// Fonts which map to the same face share one font dictionary.
func (w *Writer) fontRef(f draw.Font) (pdf.Reference, error) {
	face := w.fonts.Face(f)
	if face == nil {
		return 0, fmt.Errorf("font %s not available", f)
	}
	ref, ok := w.fontRefs[face.Font]
	if !ok {
		ref = w.out.Alloc()
		w.fontRefs[face.Font] = ref
		w.fontOrder = append(w.fontOrder, face)
	}
	return ref, nil
}

// Close completes the PDF file and returns its contents.
//
// The fonts used on the pages are embedded, and the page tree, the
// document catalog and the metadata are written.  After Close has been
// called, the writer cannot be used any more.
func (w *Writer) Close() ([]byte, error) {
	if w.closed {
		return nil, ErrClosed
	}
	w.closed = true
	if w.err != nil {
		return nil, w.err
	}
	if len(w.pageRefs) == 0 {
		return nil, errNoPages
	}

	for _, face := range w.fontOrder {
		err := face.Embed(w.out, w.fontRefs[face.Font])
		if err != nil {
			return nil, err
		}
	}

	kids := make(pdf.Array, len(w.pageRefs))
	for i, ref := range w.pageRefs {
		kids[i] = ref
	}
	err := w.out.Put(w.pagesRef, pdf.Dict{
		"Type":     pdf.Name("Pages"),
		"Kids":     kids,
		"Count":    pdf.Integer(len(w.pageRefs)),
		"MediaBox": pdf.Rect(w.pageSize),
	})
	if err != nil {
		return nil, err
	}

	catalog := pdf.Dict{
		"Type":  pdf.Name("Catalog"),
		"Pages": w.pagesRef,
	}
	if w.opt.Language != language.Und {
		catalog["Lang"] = pdf.TextString(w.opt.Language.String())
	}
	if w.opt.XMP {
		ref := w.out.Alloc()
		err = w.writeMetadata(ref)
		if err != nil {
			return nil, err
		}
		catalog["Metadata"] = ref
	}
	catalogRef := w.out.Alloc()
	err = w.out.Put(catalogRef, catalog)
	if err != nil {
		return nil, err
	}

	trailer := pdf.Dict{
		"Root": catalogRef,
	}
	if info := w.infoDict(); info != nil {
		infoRef := w.out.Alloc()
		err = w.out.Put(infoRef, info)
		if err != nil {
			return nil, err
		}
		trailer["Info"] = infoRef
	}

	err = w.out.Close(trailer)
	if err != nil {
		return nil, err
	}
	w.out = nil
	return w.buf.Bytes(), nil
}

// infoDict returns the document information dictionary, or nil if no
// information is set.
//
// See section 14.3.3 of ISO 32000-2:2020.
func (w *Writer) infoDict() pdf.Dict {
	info := pdf.Dict{}
	set := func(key pdf.Name, val string) {
		if val != "" {
			info[key] = pdf.TextString(val)
		}
	}
	set("Title", w.opt.Title)
	set("Author", w.opt.Author)
	set("Subject", w.opt.Subject)
	set("Creator", w.opt.Creator)
	set("Producer", w.opt.Producer)
	if !w.opt.CreationDate.IsZero() {
		info["CreationDate"] = pdf.Date(w.opt.CreationDate)
	}
	if len(info) == 0 {
		return nil
	}
	return info
}

var (
	// ErrClosed is returned when a [Writer] is used after Close.
	ErrClosed = errors.New("document: writer already closed")

	errNoPages = errors.New("document: no pages")
)
