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

// Package report generates daily sales reports.
package report

import (
	"time"

	"seehuhn.de/go/bizdoc/boxes"
	"seehuhn.de/go/bizdoc/config"
	"seehuhn.de/go/bizdoc/decorate"
	"seehuhn.de/go/bizdoc/draw"
	"seehuhn.de/go/bizdoc/font"
	"seehuhn.de/go/bizdoc/format"
	"seehuhn.de/go/bizdoc/layout"
	"seehuhn.de/go/bizdoc/render"
)

// Generate returns the PDF file for the report.
func Generate(style *config.Style, rep *Data, opt *render.Options) ([]byte, error) {
	job, err := Build(style, opt.GetFonts(), rep)
	if err != nil {
		return nil, err
	}
	return render.Render(style, job, opt)
}

// Build lays out the report.  The payment and VAT sections always start
// on a new page.
func Build(style *config.Style, fonts *font.Registry, rep *Data) (*render.Job, error) {
	if err := rep.Validate(); err != nil {
		return nil, err
	}

	b := &builder{
		style: style,
		fonts: fonts,
		f:     format.New(style.Language),
		width: style.ReportFrame.TextWidth(),
	}
	money := func(x float64) string {
		return b.f.Currency(x, style.Currency)
	}

	var content []boxes.Box
	content = append(content, b.header(rep)...)

	content = append(content, b.section("Detaljer", "Oversigt",
		item{"Åbnet", dateTime(rep.Opened)},
		item{"Lukket", dateTime(rep.Closed)},
		item{"Åbnet af", rep.OpenedBy},
		item{"Dokumentnummer", rep.DocumentNumber},
	)...)
	content = append(content, boxes.Kern(8*draw.MM))
	content = append(content, b.section("Salgsoversigt", "Oversigt",
		item{"Bruttoomsætning", money(rep.GrossRevenue)},
		item{"Rabatter", money(rep.Discounts)},
		item{"Totalomsætning", money(rep.TotalRevenue())},
		item{"Moms opkrævet", money(rep.VATCollected())},
		item{"Salg ekskl. moms", money(rep.SalesExVAT())},
	)...)

	content = append(content, layout.PageBreak())
	content = append(content, b.section("Betalingsfordeling", "Kontant",
		item{"Salg", money(rep.Cash.Sales)},
		item{"Omsætning", money(rep.Cash.Revenue)},
		item{"Total", money(rep.Cash.Total())},
	)...)
	content = append(content, boxes.Kern(6*draw.MM))
	content = append(content, b.section("", "Kort",
		item{"Salg", money(rep.Card.Sales)},
		item{"Omsætning", money(rep.Card.Revenue)},
		item{"Surcharge", money(rep.Card.Surcharge)},
		item{"Drikkepenge", money(rep.Card.Tips)},
		item{"Total", money(rep.Card.Total())},
	)...)

	content = append(content, boxes.Kern(8*draw.MM))
	content = append(content, b.section("Momsspecifikation", "Rate: "+b.f.Percent(rep.Rate()),
		item{"Net", money(rep.SalesExVAT())},
		item{"Moms", money(rep.VATCollected())},
		item{"Brutto", money(rep.TotalRevenue())},
	)...)
	content = append(content, boxes.Kern(6*draw.MM))
	content = append(content, b.section("", "Total",
		item{"Nettobeløb", money(rep.SalesExVAT())},
		item{"Momsbeløb", money(rep.VATCollected())},
		item{"Bruttobeløb", money(rep.TotalRevenue())},
	)...)

	job := &render.Job{
		Kind:       "report",
		Title:      "Dagsrapport " + rep.Date.String(),
		Subject:    "Dagsrapport " + rep.Date.String() + ", " + rep.Restaurant.Name,
		Frame:      style.ReportFrame,
		Content:    content,
		Decoration: b.decoration(),
	}
	return job, nil
}

func dateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return format.DateTime(t)
}

type builder struct {
	style *config.Style
	fonts *font.Registry
	f     *format.Formatter
	width float64
}

type item struct {
	label, value string
}

func (b *builder) para(width, size float64, col draw.Color, align boxes.Align, spans ...boxes.Span) *boxes.Paragraph {
	ps := &boxes.ParagraphStyle{
		Family: b.style.Family,
		Size:   size,
		Color:  col,
		Align:  align,
	}
	return boxes.NewParagraph(b.fonts, width, ps, spans...)
}

func (b *builder) text(w draw.Weight, size float64, col draw.Color, s string) boxes.Box {
	return boxes.Text(b.fonts, draw.Font{Family: b.style.Family, Weight: w}, size, col, s)
}

func (b *builder) header(rep *Data) []boxes.Box {
	s := b.style
	r := rep.Restaurant
	half := b.width / 2
	vp := &boxes.Parameters{}

	left := vp.VBox(
		b.para(half, 22, s.Primary, boxes.AlignLeft,
			boxes.Span{Text: "DAGSRAPPORT", Weight: draw.Bold}),
		b.para(half, 10, s.Accent, boxes.AlignLeft,
			boxes.Span{Text: s.Platform.CompanyName}),
	)

	right := vp.VBox(
		b.para(half, 10, s.Text, boxes.AlignRight,
			boxes.Span{Text: rep.Date.String()}),
		b.para(half, 11, s.Text, boxes.AlignRight,
			boxes.Span{Text: r.Name, Weight: draw.Bold}),
		b.para(half, 10, s.Text, boxes.AlignRight,
			boxes.Span{Text: format.Join("\n", r.Address, r.PostalCity, format.Prefix("CVR: ", r.CVR))}),
	)

	return []boxes.Box{
		boxes.NewTable([]float64{half, half}, &boxes.Row{
			Cells: []boxes.Box{left, right},
		}),
		boxes.Kern(3 * draw.MM),
		boxes.Rule(s.Primary, b.width, 2*draw.MM, 0),
		boxes.Kern(8 * draw.MM),
	}
}

// section returns a section of label/value rows.  The headings are kept
// on the same page as the first row, the remaining rows may be split
// between pages.  If title is empty, only the subtitle is printed.
func (b *builder) section(title, subtitle string, items ...item) []boxes.Box {
	s := b.style
	vp := &boxes.Parameters{}

	var rows []*boxes.Row
	for i, it := range items {
		line := &boxes.Line{Width: 0.5 * draw.MM, Color: s.MediumGray}
		if i == len(items)-1 {
			line = &boxes.Line{Width: 1 * draw.MM, Color: s.Primary}
		}
		rows = append(rows, &boxes.Row{
			Cells: []boxes.Box{
				b.text(draw.Regular, 10, s.Text, it.label),
				b.text(draw.Bold, 10, s.Primary, it.value),
			},
			Align:     []boxes.Align{boxes.AlignLeft, boxes.AlignRight},
			Padding:   boxes.Padding{Top: 2 * draw.MM, Bottom: 2 * draw.MM},
			LineBelow: line,
		})
	}
	widths := []float64{b.width / 2, b.width / 2}

	var head []boxes.Box
	if title != "" {
		head = append(head,
			b.text(draw.Bold, 14, s.Primary, title),
			boxes.Kern(2*draw.MM))
	}
	head = append(head,
		b.text(draw.Bold, 11, s.Accent, subtitle),
		boxes.Kern(1*draw.MM))
	if len(rows) > 0 {
		head = append(head, boxes.NewTable(widths, rows[0]))
	}

	res := []boxes.Box{vp.VBox(head...)}
	if len(rows) > 1 {
		res = append(res, boxes.NewTable(widths, rows[1:]...))
	}
	return res
}

// decoration returns the footer shared by all pages of a report.
func (b *builder) decoration() *decorate.Context {
	s := b.style
	p := s.Platform
	frame := s.ReportFrame
	pageWidth := s.PageSize.Dx()

	return &decorate.Context{
		PageWidth: pageWidth,
		Fonts:     b.fonts,
		Family:    s.Family,
		Separator: &decorate.Separator{
			Y:     config.ReportSeparatorY * draw.MM,
			X1:    frame.Left,
			X2:    pageWidth - frame.Right,
			Width: config.ReportSeparatorWidth * draw.MM,
			Color: s.MediumGray,
		},
		Info: &decorate.TextLine{
			Text: format.Join("  •  ",
				p.CompanyName,
				format.Join(", ", p.Address, p.PostalCity),
				format.Prefix("CVR: ", p.CVR)),
			Size:  8,
			Y:     11 * draw.MM,
			Color: s.Muted,
		},
		Label: decorate.PageLabel{
			Language: s.Language,
			Size:     9,
			Y:        15 * draw.MM,
			Color:    s.Text,
		},
	}
}
