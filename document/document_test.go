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
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/text/language"

	"seehuhn.de/go/bizdoc/draw"
	"seehuhn.de/go/bizdoc/font"
)

func pageCommands(i int) []draw.Command {
	r := &draw.Recorder{}
	r.SetFillColor(draw.Hex("#f8f9fa"))
	r.FillRect(50, 600, 200, 100)
	r.SetFillColor(draw.Black)
	r.SetFont(draw.Font{Family: font.Go, Weight: draw.Bold}, 12)
	r.Text(60, 650, fmt.Sprintf("Page number %d", i))
	r.SetFont(draw.Font{Family: font.Go}, 8)
	r.CenteredText(A4.URx/2, 20, "Æblegrød og øl")
	r.SetStrokeColor(draw.Gray)
	r.Line(50, 40, A4.URx-50, 40)
	return r.Commands()
}

func TestPageCount(t *testing.T) {
	for _, n := range []int{1, 3, 12} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			w := New(A4, font.GoFonts(), nil)
			for i := 1; i <= n; i++ {
				err := w.FinalizePage(pageCommands(i), nil)
				if err != nil {
					t.Fatal(err)
				}
			}
			data, err := w.Close()
			if err != nil {
				t.Fatal(err)
			}

			ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
			if err != nil {
				t.Fatal(err)
			}
			if ctx.PageCount != n {
				t.Errorf("got %d pages, want %d", ctx.PageCount, n)
			}

			// pages must appear in the order they were committed
			for i := 1; i <= n; i++ {
				r, err := pdfcpu.ExtractPageContent(ctx, i)
				if err != nil {
					t.Fatal(err)
				}
				body, err := io.ReadAll(r)
				if err != nil {
					t.Fatal(err)
				}
				want := fmt.Sprintf("(Page number %d) Tj", i)
				if !bytes.Contains(body, []byte(want)) {
					t.Errorf("page %d: %q not found", i, want)
				}
			}
		})
	}
}

func TestLazyOutput(t *testing.T) {
	w := New(A4, font.GoFonts(), nil)
	if w.out != nil || w.buf != nil {
		t.Fatal("output started before the first page")
	}
	err := w.FinalizePage(pageCommands(1), nil)
	if err != nil {
		t.Fatal(err)
	}
	if w.buf == nil || !strings.HasPrefix(w.buf.String(), "%PDF-1.7") {
		t.Error("first page did not start the output")
	}
}

func TestClosed(t *testing.T) {
	w := New(A5, font.GoFonts(), nil)
	err := w.FinalizePage(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = w.Close()
	if err != nil {
		t.Fatal(err)
	}
	if err := w.FinalizePage(nil, nil); !errors.Is(err, ErrClosed) {
		t.Errorf("FinalizePage after Close: got %v, want ErrClosed", err)
	}
	if _, err := w.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close: got %v, want ErrClosed", err)
	}
}

func TestNoPages(t *testing.T) {
	w := New(A4, font.GoFonts(), nil)
	data, err := w.Close()
	if err == nil || data != nil {
		t.Error("empty document accepted")
	}
}

func TestStickyError(t *testing.T) {
	w := New(A4, font.NewRegistry(font.Go), nil)
	bad := []draw.Command{draw.Text{X: 10, Y: 10, S: "no fonts"}}
	err1 := w.FinalizePage(bad, nil)
	if err1 == nil {
		t.Fatal("text without fonts accepted")
	}
	err2 := w.FinalizePage(nil, nil)
	if err2 != err1 {
		t.Errorf("error is not sticky: %v, %v", err1, err2)
	}
	if _, err := w.Close(); err == nil {
		t.Error("Close succeeded after a failed page")
	}
}

func TestFontsShared(t *testing.T) {
	w := New(A4, font.GoFonts(), &Options{HumanReadable: true})
	for i := 1; i <= 4; i++ {
		err := w.FinalizePage(pageCommands(i), nil)
		if err != nil {
			t.Fatal(err)
		}
	}
	data, err := w.Close()
	if err != nil {
		t.Fatal(err)
	}
	if n := bytes.Count(data, []byte("/Subtype /TrueType")); n != 2 {
		t.Errorf("found %d embedded fonts, want 2", n)
	}
	if !bytes.Contains(data, []byte("(Page number 4) Tj")) {
		t.Error("content stream is compressed")
	}
}

func TestDecorationState(t *testing.T) {
	body := draw.Font{Family: font.Go, Weight: draw.Bold}
	content := []draw.Command{
		draw.SetFillColor{Color: draw.Gray},
		draw.SetLineWidth{Width: 3},
		draw.SetFont{Font: body, Size: 12},
		draw.Text{X: 60, Y: 650, S: "body"},
	}
	decoration := []draw.Command{
		draw.SetFillColor{Color: draw.Gray},
		draw.SetFont{Font: body, Size: 12},
		draw.Text{X: 60, Y: 20, S: "footer"},
	}

	w := New(A4, font.GoFonts(), nil)
	if err := w.FinalizePage(content, decoration); err != nil {
		t.Fatal(err)
	}
	data, err := w.Close()
	if err != nil {
		t.Fatal(err)
	}
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		t.Fatal(err)
	}
	r, err := pdfcpu.ExtractPageContent(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	page, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	stream := string(page)

	if !strings.HasPrefix(strings.TrimSpace(stream), "q") {
		t.Errorf("content does not start with q:\n%s", stream)
	}
	bodyPos := strings.Index(stream, "(body) Tj")
	restorePos := strings.Index(stream, "\nQ\n")
	footerPos := strings.Index(stream, "(footer) Tj")
	if bodyPos < 0 || restorePos < bodyPos || footerPos < restorePos {
		t.Fatalf("unexpected operator order:\n%s", stream)
	}

	// colour and font were reset by Q, so they are set again
	tail := stream[restorePos:footerPos]
	for _, op := range []string{" rg\n", " Tf\n"} {
		if !strings.Contains(tail, op) {
			t.Errorf("%q not repeated for the decoration:\n%s", op, stream)
		}
	}
}

func TestMetadata(t *testing.T) {
	opt := &Options{
		Title:        "Faktura 2024-0042",
		Author:       "OrderFlow ApS",
		Subject:      "Faktura",
		Creator:      "docgen",
		Producer:     "seehuhn.de/go/bizdoc",
		CreationDate: time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
		Language:     language.Danish,
		XMP:          true,
	}
	w := New(A4, font.GoFonts(), opt)
	err := w.FinalizePage(pageCommands(1), nil)
	if err != nil {
		t.Fatal(err)
	}
	data, err := w.Close()
	if err != nil {
		t.Fatal(err)
	}

	out := string(data)
	for _, want := range []string{
		"/Title (Faktura 2024-0042)",
		"/Author (OrderFlow ApS)",
		"/CreationDate (D:20240301123000+00'00)",
		"/Lang (da)",
		"/Type /Metadata",
		"/Info ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q", want)
		}
	}

	// once in the info dictionary, once in the XMP packet
	if n := strings.Count(out, "Faktura 2024-0042"); n < 2 {
		t.Errorf("title found %d times, want at least 2", n)
	}

	_, err = api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		t.Error(err)
	}
}

func TestPaperSize(t *testing.T) {
	for _, name := range []string{"A4", "a5", "Letter"} {
		if _, ok := PaperSize(name); !ok {
			t.Errorf("paper size %q not found", name)
		}
	}
	if _, ok := PaperSize("B5"); ok {
		t.Error("unknown paper size accepted")
	}
}
