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

package layout

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/bizdoc/boxes"
	"seehuhn.de/go/bizdoc/draw"
	"seehuhn.de/go/bizdoc/pagination"
)

type pageCollector struct {
	pages [][]draw.Command
}

func (c *pageCollector) FinalizePage(content, decoration []draw.Command) error {
	c.pages = append(c.pages, append(content[:len(content):len(content)], decoration...))
	return nil
}

func (c *pageCollector) Close() ([]byte, error) {
	return nil, nil
}

var testFrame = &Frame{
	PageSize: rect.Rect{URx: 600, URy: 850},
	Top:      50,
	Right:    50,
	Bottom:   50,
	Left:     50,
}

// run flows the content and returns the rectangles drawn on each page.
func run(t *testing.T, content ...boxes.Box) [][]draw.Rectangle {
	t.Helper()
	out := &pageCollector{}
	s := pagination.NewSession(out, 0)
	err := Flow(s, testFrame, content...)
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.FinalizeAll(func(int, int, int) []draw.Command { return nil })
	if err != nil {
		t.Fatal(err)
	}

	res := make([][]draw.Rectangle, len(out.pages))
	for i, page := range out.pages {
		res[i] = []draw.Rectangle{}
		for _, cmd := range page {
			if r, ok := cmd.(draw.Rectangle); ok {
				res[i] = append(res[i], r)
			}
		}
	}
	return res
}

func rules(n int, height float64) []boxes.Box {
	res := make([]boxes.Box, n)
	for i := range res {
		res[i] = boxes.Rule(draw.Black, 10, height, 0)
	}
	return res
}

func TestFrame(t *testing.T) {
	if w := testFrame.TextWidth(); w != 500 {
		t.Errorf("text width %g, want 500", w)
	}
	if h := testFrame.TextHeight(); h != 750 {
		t.Errorf("text height %g, want 750", h)
	}
}

func TestFlowPages(t *testing.T) {
	pages := run(t, rules(20, 100)...)
	want := []int{7, 7, 6}
	if len(pages) != len(want) {
		t.Fatalf("got %d pages, want %d", len(pages), len(want))
	}
	for i, n := range want {
		if len(pages[i]) != n {
			t.Errorf("page %d: %d rules, want %d", i+1, len(pages[i]), n)
		}
		first := pages[i][0]
		if math.Abs(first.Y-700) > 1e-6 || first.X != 50 {
			t.Errorf("page %d: first rule at (%g, %g), want (50, 700)", i+1, first.X, first.Y)
		}
	}
}

func TestFlowEmpty(t *testing.T) {
	pages := run(t)
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	if len(pages[0]) != 0 {
		t.Errorf("empty document has content %v", pages[0])
	}
}

func TestFlowWhiteSpace(t *testing.T) {
	content := []boxes.Box{boxes.Kern(40)}
	content = append(content, rules(7, 100)...)
	content = append(content, boxes.Kern(60), boxes.Rule(draw.Black, 10, 100, 0))

	pages := run(t, content...)
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	for i, page := range pages {
		if math.Abs(page[0].Y-700) > 1e-6 {
			t.Errorf("page %d: first rule at y=%g, want 700", i+1, page[0].Y)
		}
	}
}

func TestFlowOversize(t *testing.T) {
	pages := run(t,
		boxes.Rule(draw.Black, 10, 100, 0),
		boxes.Rule(draw.Black, 10, 1000, 0),
		boxes.Rule(draw.Black, 10, 100, 0),
	)
	if len(pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(pages))
	}
	big := pages[1][0]
	if big.H != 1000 || math.Abs(big.Y+200) > 1e-6 {
		t.Errorf("oversized rule drawn at y=%g, h=%g", big.Y, big.H)
	}
}

func TestFlowSplitter(t *testing.T) {
	var rows []*boxes.Row
	for range 10 {
		rows = append(rows, &boxes.Row{
			Cells: []boxes.Box{boxes.Rule(draw.Black, 10, 90, 0)},
			Padding: boxes.Padding{
				Top:    5,
				Bottom: 5,
			},
		})
	}
	table := boxes.NewTable([]float64{100}, rows...)

	pages := run(t, table)
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	if len(pages[0]) != 7 || len(pages[1]) != 3 {
		t.Errorf("rows split %d/%d, want 7/3", len(pages[0]), len(pages[1]))
	}
}

func TestFlowPageBreak(t *testing.T) {
	content := []boxes.Box{PageBreak()}
	content = append(content, rules(2, 100)...)
	content = append(content, PageBreak(), PageBreak())
	content = append(content, rules(1, 100)...)
	content = append(content, PageBreak())

	pages := run(t, content...)
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	if len(pages[0]) != 2 || len(pages[1]) != 1 {
		t.Errorf("rules split %d/%d, want 2/1", len(pages[0]), len(pages[1]))
	}
}
