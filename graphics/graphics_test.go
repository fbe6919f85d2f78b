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

package graphics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/bizdoc/draw"
	"seehuhn.de/go/bizdoc/font"
)

func TestRedundantState(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf, font.GoFonts())
	w.SetFillColor(draw.Gray)
	w.SetFillColor(draw.Gray)
	w.SetLineWidth(0.5)
	w.SetLineWidth(0.5)
	w.SetStrokeColor(draw.Black)
	w.SetFillColor(draw.White)
	if w.Err != nil {
		t.Fatal(w.Err)
	}

	want := ".5 .5 .5 rg\n.5 w\n0 0 0 RG\n1 1 1 rg\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("content stream (-want +got):\n%s", d)
	}
}

func TestStateErrors(t *testing.T) {
	cases := []struct {
		name string
		ops  func(w *Writer)
	}{
		{"LineTo without MoveTo", func(w *Writer) { w.LineTo(1, 1) }},
		{"Stroke without path", func(w *Writer) { w.Stroke() }},
		{"TextEnd without TextStart", func(w *Writer) { w.TextEnd() }},
		{"Tj without BT", func(w *Writer) { w.TextShowRaw([]byte("x")) }},
		{"negative line width", func(w *Writer) { w.SetLineWidth(-1) }},
		{"Q without q", func(w *Writer) { w.PopGraphicsState() }},
		{"Tj without font", func(w *Writer) { w.TextStart(); w.TextShow("x") }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWriter(&bytes.Buffer{}, font.GoFonts())
			c.ops(w)
			if w.Err == nil {
				t.Error("error not detected")
			}
			// errors are sticky
			n := 0
			w.Content = writeCounter{&n}
			w.SetLineWidth(3)
			if n != 0 {
				t.Error("writer continued after error")
			}
		})
	}
}

type writeCounter struct {
	n *int
}

func (c writeCounter) Write(p []byte) (int, error) {
	*c.n += len(p)
	return len(p), nil
}

func TestUnclosed(t *testing.T) {
	w := NewWriter(&bytes.Buffer{}, font.GoFonts())
	w.PushGraphicsState()
	if w.Close() == nil {
		t.Error("unbalanced q not detected")
	}
	w.PopGraphicsState()
	if err := w.Close(); err != nil {
		t.Error(err)
	}
}

func TestPushPopRestoresState(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf, font.GoFonts())
	w.SetLineWidth(1)
	w.PushGraphicsState()
	w.SetLineWidth(2)
	w.PopGraphicsState()
	w.SetLineWidth(1) // restored by Q, must not be written again
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	want := "1 w\nq\n2 w\nQ\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("content stream (-want +got):\n%s", d)
	}
}

func TestDrawCommands(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf, font.GoFonts())
	bold := draw.Font{Family: font.Go, Weight: draw.Bold}
	w.Draw(
		draw.SetFillColor{Color: draw.Hex("#f8f9fa")},
		draw.Rectangle{X: 10, Y: 20, W: 100, H: 50, Fill: true},
		draw.SetFont{Font: bold, Size: 9},
		draw.SetFillColor{Color: draw.Black},
		draw.Text{X: 13, Y: 60, S: "Anfør"},
		draw.SetStrokeColor{Color: draw.Hex("#e0e0e0")},
		draw.SetLineWidth{Width: 0.5},
		draw.Line{X1: 0, Y1: 15, X2: 200, Y2: 15},
	)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	for _, want := range []string{
		"10 20 100 50 re\nf\n",
		"BT\n/F1 9 Tf\n1 0 0 1 13 60 Tm\n(Anf\\370r) Tj\nET\n",
		"0 15 m\n200 15 l\nS\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in\n%s", want, got)
		}
	}

	res := w.FontResources()
	wantRes := []FontResource{{Name: "F1", Font: bold}}
	if d := cmp.Diff(wantRes, res); d != "" {
		t.Errorf("font resources (-want +got):\n%s", d)
	}
}

func TestCenteredText(t *testing.T) {
	reg := font.GoFonts()
	regular := draw.Font{Family: font.Go}
	s := "Side 2 af 3"
	width := reg.Width(regular, 8, s)

	buf := &bytes.Buffer{}
	w := NewWriter(buf, reg)
	w.Draw(
		draw.SetFont{Font: regular, Size: 8},
		draw.CenteredText{X: 300, Y: 11, S: s},
	)
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	want := "1 0 0 1 " + coord(300-width/2) + " 11 Tm\n"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("missing %q in\n%s", want, buf.String())
	}
}

func TestRoundedRectangle(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf, font.GoFonts())
	w.Draw(draw.Rectangle{X: 0, Y: 0, W: 40, H: 20, Radius: 4, Fill: true, Stroke: true})
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	out := buf.String()
	if strings.Count(out, " c\n") != 4 {
		t.Errorf("expected four corner curves in\n%s", out)
	}
	if !strings.HasPrefix(out, "4 0 m\n") || !strings.HasSuffix(out, "h\nB\n") {
		t.Errorf("unexpected path\n%s", out)
	}
}

func TestDrawIsolated(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf, font.GoFonts())
	bold := draw.Font{Family: font.Go, Weight: draw.Bold}

	w.DrawIsolated(
		draw.SetFillColor{Color: draw.Gray},
		draw.SetLineWidth{Width: 2},
		draw.SetFont{Font: bold, Size: 14},
	)
	if w.font != (draw.Font{}) || w.fontSize != 0 {
		t.Errorf("font selection leaked: %v %g", w.font, w.fontSize)
	}
	w.Draw(draw.SetFillColor{Color: draw.Gray})
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	got := strings.Fields(buf.String())
	if len(got) == 0 || got[0] != "q" {
		t.Fatalf("content stream does not start with q: %q", buf.String())
	}
	if n := strings.Count(buf.String(), " rg\n"); n != 2 {
		t.Errorf("fill colour set %d times, want 2:\n%s", n, buf.String())
	}
	if strings.Index(buf.String(), "Q\n") > strings.LastIndex(buf.String(), " rg\n") {
		t.Errorf("colour after Q missing:\n%s", buf.String())
	}
}

func TestDrawIsolatedEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf, font.GoFonts())
	w.DrawIsolated()
	if buf.Len() != 0 || w.Close() != nil {
		t.Errorf("empty isolated group wrote %q", buf.String())
	}
}
