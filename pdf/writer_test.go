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
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

func TestWriterXRef(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, V1_7)
	if err != nil {
		t.Fatal(err)
	}

	catalog := w.Alloc()
	pages := w.Alloc()
	w.Alloc() // never written, must show up as a free entry

	err = w.Put(pages, Dict{"Type": Name("Pages"), "Kids": Array{}, "Count": Integer(0)})
	if err != nil {
		t.Fatal(err)
	}
	err = w.Put(catalog, Dict{"Type": Name("Catalog"), "Pages": pages})
	if err != nil {
		t.Fatal(err)
	}
	err = w.Close(Dict{"Root": catalog})
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "%PDF-1.7\n") {
		t.Errorf("wrong header: %q", out[:10])
	}
	if !strings.HasSuffix(out, "%%EOF\n") {
		t.Error("missing end-of-file marker")
	}

	// every in-use xref entry must point at the matching "n 0 obj" line
	m := regexp.MustCompile(`startxref\n(\d+)\n`).FindStringSubmatch(out)
	if m == nil {
		t.Fatal("startxref not found")
	}
	xrefPos, _ := strconv.Atoi(m[1])
	if !strings.HasPrefix(out[xrefPos:], "xref\n0 4\n") {
		t.Fatalf("startxref does not point to xref table: %q", out[xrefPos:xrefPos+10])
	}
	for _, ref := range []Reference{catalog, pages} {
		pos := strings.Index(out, fmt.Sprintf("%d 0 obj\n", ref.Number()))
		entry := fmt.Sprintf("%010d 00000 n\r\n", pos)
		if !strings.Contains(out[xrefPos:], entry) {
			t.Errorf("object %d: xref entry %q missing", ref.Number(), entry)
		}
	}
	if !strings.Contains(out, "0000000000 65535 f\r\n0000000") {
		t.Error("object 0 must be free")
	}
	if !strings.Contains(out, "/Size 4") {
		t.Error("wrong trailer /Size")
	}
}

func TestWriterErrors(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, V1_7)
	if err != nil {
		t.Fatal(err)
	}
	ref := w.Alloc()

	err = w.Put(NewReference(99, 0), Integer(1))
	if err == nil {
		t.Error("writing an unallocated object succeeded")
	}
	err = w.Put(ref, Integer(1))
	if err != nil {
		t.Fatal(err)
	}
	err = w.Put(ref, Integer(2))
	if err == nil {
		t.Error("writing an object twice succeeded")
	}
	err = w.Close(Dict{})
	if err == nil {
		t.Error("closing without /Root succeeded")
	}
	err = w.Close(Dict{"Root": ref})
	if err != nil {
		t.Fatal(err)
	}
	err = w.Put(w.Alloc(), Integer(3))
	if !errors.Is(err, ErrClosed) {
		t.Errorf("got %v, want ErrClosed", err)
	}

	_, err = NewWriter(buf, Version(2))
	if err == nil {
		t.Error("unsupported version accepted")
	}
}

func TestPutStream(t *testing.T) {
	buf := &bytes.Buffer{}
	w, _ := NewWriter(buf, V1_7)
	ref := w.Alloc()
	err := w.PutStream(ref, Dict{"Type": Name("Test")}, []byte("0 0 m 10 10 l S"), false)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	want := "<<\n/Length 15\n/Type /Test\n>>\nstream\n0 0 m 10 10 l S\nendstream"
	if !strings.Contains(out, want) {
		t.Errorf("stream not found in %q", out)
	}

	ref = w.Alloc()
	err = w.PutStream(ref, nil, bytes.Repeat([]byte("q Q\n"), 100), true)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "/Filter /FlateDecode") {
		t.Error("compressed stream lacks /Filter")
	}
}
