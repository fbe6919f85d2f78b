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

package pdf

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
)

// Version represents a version of the PDF standard.
type Version int

// The PDF versions which can be written.
const (
	V1_4 Version = iota + 4
	V1_5
	V1_6
	V1_7
)

// String returns the version number in the form used in the file header.
func (v Version) String() string {
	return fmt.Sprintf("1.%d", int(v))
}

// Writer represents a PDF file open for writing.
// Objects are written sequentially, in the order of the calls to
// [Writer.Put] and [Writer.PutStream].
type Writer struct {
	Version Version

	w       *posWriter
	xref    map[uint32]int64
	nextRef uint32
}

// NewWriter prepares a PDF file for writing and writes the file header.
func NewWriter(w io.Writer, v Version) (*Writer, error) {
	if v < V1_4 || v > V1_7 {
		return nil, errVersion
	}
	pdf := &Writer{
		Version: v,
		w:       &posWriter{w: w},
		xref:    make(map[uint32]int64),
		nextRef: 1,
	}

	_, err := fmt.Fprintf(pdf.w, "%%PDF-%s\n%%\x80\x80\x80\x80\n", v)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

// Alloc allocates an object number for an indirect object.
func (pdf *Writer) Alloc() Reference {
	ref := NewReference(pdf.nextRef, 0)
	pdf.nextRef++
	return ref
}

// Put writes obj as the indirect object ref.
// Every reference can be written only once.
func (pdf *Writer) Put(ref Reference, obj Object) error {
	if pdf.w == nil {
		return ErrClosed
	}
	if _, seen := pdf.xref[ref.Number()]; seen {
		return fmt.Errorf("object %d already written", ref.Number())
	}
	if ref.Number() == 0 || ref.Number() >= pdf.nextRef {
		return fmt.Errorf("object %d was not allocated", ref.Number())
	}

	pdf.xref[ref.Number()] = pdf.w.pos
	_, err := fmt.Fprintf(pdf.w, "%d %d obj\n", ref.Number(), ref.Generation())
	if err != nil {
		return err
	}
	if obj == nil {
		_, err = io.WriteString(pdf.w, "null")
	} else {
		err = obj.PDF(pdf.w)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(pdf.w, "\nendobj\n")
	return err
}

// PutStream writes a stream object with the given dictionary and data.
// If compress is set, the data is compressed using the FlateDecode filter.
// The /Length and /Filter entries of dict are filled in automatically.
func (pdf *Writer) PutStream(ref Reference, dict Dict, data []byte, compress bool) error {
	if compress {
		buf := &bytes.Buffer{}
		zw := zlib.NewWriter(buf)
		_, err := zw.Write(data)
		if err != nil {
			return err
		}
		err = zw.Close()
		if err != nil {
			return err
		}
		data = buf.Bytes()
	}

	streamDict := make(Dict, len(dict)+2)
	for key, val := range dict {
		streamDict[key] = val
	}
	streamDict["Length"] = Integer(len(data))
	if compress {
		streamDict["Filter"] = Name("FlateDecode")
	}

	return pdf.Put(ref, &stream{dict: streamDict, data: data})
}

// Close writes the cross-reference table and the trailer.
// The trailer dictionary must contain the /Root entry, /Size is
// filled in automatically.
// If the underlying writer is an io.Closer, it is closed.
func (pdf *Writer) Close(trailer Dict) error {
	if pdf.w == nil {
		return ErrClosed
	}
	if _, ok := trailer["Root"].(Reference); !ok {
		return errors.New("missing /Root in trailer")
	}

	xRefPos := pdf.w.pos
	err := pdf.writeXRefTable()
	if err != nil {
		return err
	}

	xRefDict := make(Dict, len(trailer)+1)
	for key, val := range trailer {
		xRefDict[key] = val
	}
	xRefDict["Size"] = Integer(pdf.nextRef)
	_, err = io.WriteString(pdf.w, "trailer\n")
	if err != nil {
		return err
	}
	err = xRefDict.PDF(pdf.w)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}

	w := pdf.w.w
	// Make sure we don't accidentally write beyond the end of file.
	pdf.w = nil

	if closer, ok := w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// writeXRefTable writes a classic cross-reference table.
// Objects which were allocated but never written are marked as free.
//
// See section 7.5.4 of ISO 32000-2:2020.
func (pdf *Writer) writeXRefTable() error {
	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", pdf.nextRef)
	if err != nil {
		return err
	}
	for i := uint32(0); i < pdf.nextRef; i++ {
		pos, ok := pdf.xref[i]
		if ok {
			_, err = fmt.Fprintf(pdf.w, "%010d 00000 n\r\n", pos)
		} else {
			_, err = io.WriteString(pdf.w, "0000000000 65535 f\r\n")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type stream struct {
	dict Dict
	data []byte
}

func (x *stream) PDF(w io.Writer) error {
	err := x.dict.PDF(w)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\nstream\n")
	if err != nil {
		return err
	}
	_, err = w.Write(x.data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\nendstream")
	return err
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}

var (
	errVersion = errors.New("unsupported PDF version")

	// ErrClosed is returned when writing to a [Writer] after Close.
	ErrClosed = errors.New("pdf: writer already closed")
)
