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

// Package invoice generates invoices, credit notes and proforma invoices.
//
// Every page of an invoice carries the payment information box, a
// footer with the company details and the page number.  Invoices with
// many lines continue on further pages.
package invoice

import (
	"fmt"

	"seehuhn.de/go/bizdoc/boxes"
	"seehuhn.de/go/bizdoc/config"
	"seehuhn.de/go/bizdoc/decorate"
	"seehuhn.de/go/bizdoc/draw"
	"seehuhn.de/go/bizdoc/font"
	"seehuhn.de/go/bizdoc/format"
	"seehuhn.de/go/bizdoc/render"
)

// Generate returns the PDF file for the invoice.
func Generate(style *config.Style, inv *Data, opt *render.Options) ([]byte, error) {
	job, err := Build(style, opt.GetFonts(), inv)
	if err != nil {
		return nil, err
	}
	return render.Render(style, job, opt)
}

// Build lays out the invoice.
func Build(style *config.Style, fonts *font.Registry, inv *Data) (*render.Job, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	b := &builder{
		style: style,
		fonts: fonts,
		f:     format.New(style.Language),
		inv:   inv,
		width: style.InvoiceFrame.TextWidth(),
	}

	job := &render.Job{
		Kind:       "invoice",
		Title:      inv.Type.Title() + " " + inv.Number,
		Subject:    fmt.Sprintf("%s %s, %s", inv.Type.Title(), inv.Number, inv.Customer.CompanyName),
		Frame:      style.InvoiceFrame,
		Decoration: b.decoration(),
	}
	job.Content = append(job.Content, b.header()...)
	job.Content = append(job.Content,
		b.info(),
		boxes.Kern(8*draw.MM),
		b.lines(),
		boxes.Kern(6*draw.MM),
		b.totals(),
	)
	return job, nil
}

type builder struct {
	style *config.Style
	fonts *font.Registry
	f     *format.Formatter
	inv   *Data
	width float64
}

func (b *builder) para(width, size, leading float64, col draw.Color, align boxes.Align, spans ...boxes.Span) *boxes.Paragraph {
	ps := &boxes.ParagraphStyle{
		Family:  b.style.Family,
		Size:    size,
		Leading: leading,
		Color:   col,
		Align:   align,
	}
	return boxes.NewParagraph(b.fonts, width, ps, spans...)
}

func (b *builder) text(w draw.Weight, size float64, col draw.Color, s string) boxes.Box {
	return boxes.Text(b.fonts, draw.Font{Family: b.style.Family, Weight: w}, size, col, s)
}

func (b *builder) header() []boxes.Box {
	p := b.style.Platform
	s := b.style
	leftW := b.width * 0.55
	rightW := b.width * 0.45
	vp := &boxes.Parameters{}

	left := vp.VBox(
		b.para(leftW, 16, 19, s.Text, boxes.AlignLeft,
			boxes.Span{Text: p.CompanyName, Weight: draw.Bold}),
		b.para(leftW, 9, 11, s.Text, boxes.AlignLeft,
			boxes.Span{Text: format.Join(", ", p.Address, p.PostalCity) + "\n" +
				format.Join(" | ", format.Prefix("CVR: DK ", p.CVR), format.Prefix("Tlf: ", p.Phone)) + "\n" +
				p.Email}),
	)
	right := vp.VBox(
		b.para(rightW, 24, 28, s.Primary, boxes.AlignRight,
			boxes.Span{Text: b.inv.Type.Title(), Weight: draw.Bold}),
		b.para(rightW, 11, 14, s.Primary, boxes.AlignRight,
			boxes.Span{Text: "Nr. " + b.inv.Number}),
	)

	return []boxes.Box{
		boxes.NewTable([]float64{leftW, rightW}, &boxes.Row{
			Cells: []boxes.Box{left, right},
		}),
		boxes.Kern(4 * draw.MM),
		boxes.Rule(s.Primary, b.width, 1.5, 0),
		boxes.Kern(6 * draw.MM),
	}
}

func (b *builder) info() boxes.Box {
	s := b.style
	c := b.inv.Customer
	leftW := b.width * 0.55
	rightW := b.width * 0.45
	pad := 3 * draw.MM
	vp := &boxes.Parameters{}

	address := format.Join("\n",
		format.Prefix("Att: ", c.Attention),
		c.Address,
		c.PostalCity,
		format.Prefix("CVR: ", c.CVR))
	customer := vp.VBox(
		b.para(leftW-2*pad, 9, 11, s.Text, boxes.AlignLeft,
			boxes.Span{Text: "Faktureres til:", Weight: draw.Bold}),
		b.para(leftW-2*pad, 10, 12, s.Text, boxes.AlignLeft,
			boxes.Span{Text: c.CompanyName, Weight: draw.Bold}),
		b.para(leftW-2*pad, 9, 11, s.Text, boxes.AlignLeft,
			boxes.Span{Text: address}),
	)
	panel := boxes.NewTable([]float64{leftW}, &boxes.Row{
		Cells:      []boxes.Box{customer},
		Background: &s.LightGray,
		Padding:    boxes.Padding{Top: pad, Right: pad, Bottom: pad, Left: pad},
	})

	spans := []boxes.Span{
		{Text: "Fakturadato:", Weight: draw.Bold},
		{Text: " " + b.inv.Date.String() + "\n"},
		{Text: "Forfaldsdato:", Weight: draw.Bold},
		{Text: " " + b.inv.DueDate().String() + "\n"},
		{Text: "Betaling:", Weight: draw.Bold},
		{Text: " " + b.inv.Terms.Label()},
	}
	if ref := b.inv.OrderReference; ref != "" {
		spans = append(spans,
			boxes.Span{Text: "\nDeres ref.:", Weight: draw.Bold},
			boxes.Span{Text: " " + ref})
	}
	dates := b.para(rightW, 9, 12, s.Text, boxes.AlignRight, spans...)

	return boxes.NewTable([]float64{leftW, rightW}, &boxes.Row{
		Cells: []boxes.Box{panel, dates},
	})
}

var lineColumns = []struct {
	title string
	share float64
	align boxes.Align
}{
	{"Beskrivelse", 0.40, boxes.AlignLeft},
	{"Antal", 0.12, boxes.AlignRight},
	{"Enhed", 0.12, boxes.AlignRight},
	{"Enhedspris", 0.18, boxes.AlignRight},
	{"Beløb", 0.18, boxes.AlignRight},
}

// lines returns the table of invoice lines.  The table may be split
// between pages after every row.
func (b *builder) lines() boxes.Box {
	s := b.style
	const cellPad = 6
	widths := make([]float64, len(lineColumns))
	align := make([]boxes.Align, len(lineColumns))
	header := &boxes.Row{
		Background: &s.Primary,
		Padding:    boxes.Padding{Top: 2.5 * draw.MM, Right: cellPad, Bottom: 2.5 * draw.MM, Left: cellPad},
		Align:      align,
	}
	for i, col := range lineColumns {
		widths[i] = b.width * col.share
		align[i] = col.align
		header.Cells = append(header.Cells, b.text(draw.Bold, 9, draw.White, col.title))
	}

	rows := []*boxes.Row{header}
	for i := range b.inv.Lines {
		l := &b.inv.Lines[i]
		row := &boxes.Row{
			Cells: []boxes.Box{
				b.para(widths[0]-2*cellPad, 9, 11, s.Text, boxes.AlignLeft,
					boxes.Span{Text: l.Description}),
				b.text(draw.Regular, 9, s.Text, b.f.Quantity(l.Quantity)),
				b.text(draw.Regular, 9, s.Text, l.Unit),
				b.text(draw.Regular, 9, s.Text, b.f.Amount(l.UnitPrice)),
				b.text(draw.Regular, 9, s.Text, b.f.Amount(l.Net())),
			},
			Align:     align,
			Padding:   boxes.Padding{Top: 2 * draw.MM, Right: cellPad, Bottom: 2 * draw.MM, Left: cellPad},
			LineBelow: &boxes.Line{Width: 0.5, Color: s.MediumGray},
		}
		if i == len(b.inv.Lines)-1 {
			row.LineBelow = &boxes.Line{Width: 1, Color: s.Primary}
		}
		rows = append(rows, row)
	}
	return boxes.NewTable(widths, rows...)
}

func (b *builder) totals() boxes.Box {
	s := b.style
	inv := b.inv
	const cellPad = 6
	widths := []float64{b.width * 0.24, b.width * 0.20}
	right := []boxes.Align{boxes.AlignRight, boxes.AlignRight}
	pad := boxes.Padding{Top: 1.5 * draw.MM, Right: cellPad, Bottom: 1.5 * draw.MM, Left: cellPad}

	vatRate := 0.0
	for _, l := range inv.Lines {
		vatRate = max(vatRate, l.VAT.Percent())
	}

	row := func(label, value string) *boxes.Row {
		return &boxes.Row{
			Cells: []boxes.Box{
				b.text(draw.Regular, 9, s.Text, label),
				b.text(draw.Regular, 9, s.Text, value),
			},
			Align:   right,
			Padding: pad,
		}
	}
	table := boxes.NewTable(widths,
		row("Subtotal ekskl. moms:", b.f.Currency(inv.Subtotal(), s.Currency)),
		row("Moms "+b.f.Percent(vatRate)+":", b.f.Currency(inv.VAT(), s.Currency)),
		&boxes.Row{
			Cells: []boxes.Box{
				b.text(draw.Bold, 11, s.Text, "Total inkl. moms:"),
				b.text(draw.Bold, 11, s.Text, b.f.Currency(inv.Total(), s.Currency)),
			},
			Align:      right,
			Background: &s.LightGray,
			Padding:    boxes.Padding{Top: 2.5 * draw.MM, Right: cellPad, Bottom: 2.5 * draw.MM, Left: cellPad},
			LineAbove:  &boxes.Line{Width: 1, Color: s.Primary},
		},
	)
	return boxes.HBox(boxes.Kern(b.width*0.56), table)
}

// decoration returns the decoration shared by all pages: the payment
// box, a separator, the company line and the page label.
func (b *builder) decoration() *decorate.Context {
	s := b.style
	p := s.Platform
	frame := s.InvoiceFrame
	pageWidth := s.PageSize.Dx()

	return &decorate.Context{
		PageWidth: pageWidth,
		Fonts:     b.fonts,
		Family:    s.Family,
		Box: &decorate.Box{
			X:          frame.Left,
			Y:          config.InvoiceBoxY * draw.MM,
			W:          frame.TextWidth() * 0.55,
			H:          config.InvoiceBoxHeight * draw.MM,
			Background: s.LightGray,
			Padding:    3 * draw.MM,
			TextColor:  s.Text,
			Size:       9,
			Lines: []decorate.BoxLine{
				{
					Offset: 5 * draw.MM,
					Runs:   []decorate.Run{{Text: "Betalingsoplysninger", Weight: draw.Bold}},
				},
				{
					Offset: 10 * draw.MM,
					Runs: []decorate.Run{{Text: format.Join(" | ",
						p.BankName,
						format.Prefix("Reg: ", p.BankReg),
						format.Prefix("Konto: ", p.BankAccount))}},
				},
				{
					Offset: 15 * draw.MM,
					Runs: []decorate.Run{
						{Text: "Anfør fakturanr. "},
						{Text: b.inv.Number, Weight: draw.Bold},
						{Text: " ved betaling"},
					},
				},
			},
		},
		Separator: &decorate.Separator{
			Y:     15 * draw.MM,
			X1:    frame.Left,
			X2:    pageWidth - frame.Right,
			Width: 0.5,
			Color: s.MediumGray,
		},
		Info: &decorate.TextLine{
			Text: format.Join(" | ",
				p.CompanyName,
				format.Join(", ", p.Address, p.PostalCity),
				format.Prefix("CVR: DK ", p.CVR),
				p.Phone,
				p.Email,
				p.Website),
			Size:  7,
			Y:     9 * draw.MM,
			Color: s.Muted,
		},
		Label: decorate.PageLabel{
			Language: s.Language,
			Size:     8,
			Y:        4 * draw.MM,
			Color:    s.Muted,
		},
	}
}
