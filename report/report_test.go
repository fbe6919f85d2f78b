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

package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/bizdoc/config"
	"seehuhn.de/go/bizdoc/format"
)

func sample() *Data {
	cet := time.FixedZone("CET", 3600)
	return &Data{
		Date:           format.NewDay(2025, 12, 31),
		Opened:         time.Date(2025, 12, 31, 8, 15, 0, 0, cet),
		Closed:         time.Date(2025, 12, 31, 22, 40, 0, 0, cet),
		OpenedBy:       "Medarbejder",
		DocumentNumber: "DOC-2025-000417",
		Restaurant: Restaurant{
			Name:       "Restaurant Bella Vista ApS",
			Address:    "Nørrebrogade 45",
			PostalCity: "2200 København N",
			CVR:        "87654321",
		},
		GrossRevenue: 10250,
		Discounts:    250,
		Cash:         Payment{Sales: 3000, Revenue: 3000},
		Card:         Payment{Sales: 7000, Revenue: 7000, Surcharge: 35.5, Tips: 120},
	}
}

func TestFigures(t *testing.T) {
	rep := sample()
	cases := []struct {
		name      string
		got, want float64
	}{
		{"total revenue", rep.TotalRevenue(), 10000},
		{"VAT", rep.VATCollected(), 2000},
		{"sales excl. VAT", rep.SalesExVAT(), 8000},
		{"cash total", rep.Cash.Total(), 3000},
		{"card total", rep.Card.Total(), 7155.5},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: got %g, want %g", c.name, c.got, c.want)
		}
	}

	rep.VATRate = 12.5
	if got := rep.VATCollected(); got != 1111.11 {
		t.Errorf("VAT at 12.5%%: got %g, want 1111.11", got)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Data)
	}{
		{"date", func(d *Data) { d.Date = format.Day{} }},
		{"restaurant", func(d *Data) { d.Restaurant.Name = "" }},
		{"rate", func(d *Data) { d.VATRate = -1 }},
		{"times", func(d *Data) { d.Closed = d.Opened.Add(-time.Hour) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rep := sample()
			c.modify(rep)
			if err := rep.Validate(); err == nil {
				t.Error("invalid report accepted")
			}
			if _, err := Generate(config.DefaultStyle(), rep, nil); err == nil {
				t.Error("invalid report rendered")
			}
		})
	}
}

func TestDecode(t *testing.T) {
	in := `
date: 2025-12-31
opened: 2025-12-31T08:15:00+01:00
closed: 2025-12-31T22:40:00+01:00
restaurant:
  name: Café Øst
gross_revenue: 500
discounts: 0
card:
  sales: 500
  revenue: 500
`
	var rep Data
	if err := yaml.Unmarshal([]byte(in), &rep); err != nil {
		t.Fatal(err)
	}
	if err := rep.Validate(); err != nil {
		t.Fatal(err)
	}
	if rep.Date.String() != "31.12.2025" {
		t.Errorf("Date = %s", rep.Date)
	}
	if got := rep.Closed.Sub(rep.Opened); got != 14*time.Hour+25*time.Minute {
		t.Errorf("opening hours = %v", got)
	}
	if rep.Restaurant.Name != "Café Øst" || rep.Card.Total() != 500 {
		t.Errorf("wrong data: %+v", rep)
	}
}

func TestGenerate(t *testing.T) {
	data, err := Generate(config.DefaultStyle(), sample(), nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		t.Fatal(err)
	}
	if ctx.PageCount != 2 {
		t.Fatalf("got %d pages, want 2", ctx.PageCount)
	}

	want := [][]string{
		{"(DAGSRAPPORT) Tj", "(Detaljer) Tj", "(31.12.2025, 08:15) Tj", "(10.000,00 DKK) Tj"},
		{"(Betalingsfordeling) Tj", "(Momsspecifikation) Tj", "(Rate: 25%) Tj", "(7.155,50 DKK) Tj"},
	}
	for i := 1; i <= 2; i++ {
		r, err := pdfcpu.ExtractPageContent(ctx, i)
		if err != nil {
			t.Fatal(err)
		}
		body, err := io.ReadAll(r)
		if err != nil {
			t.Fatal(err)
		}
		text := string(body)
		for _, w := range append(want[i-1], fmt.Sprintf("(Side %d af 2) Tj", i)) {
			if !strings.Contains(text, w) {
				t.Errorf("page %d: %q not found", i, w)
			}
		}
	}
}
