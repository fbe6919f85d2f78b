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

package invoice

import (
	"errors"
	"fmt"
	"strings"

	"seehuhn.de/go/bizdoc/format"
)

// PaymentTerms describe when an invoice is due.
type PaymentTerms int

// These are the supported payment terms.  The zero value is [Net14].
const (
	Net14 PaymentTerms = iota
	Net8
	Net30
	Cash
)

var termNames = []string{"net14", "net8", "net30", "cash"}

// Days returns the number of days between the invoice date and the due date.
func (p PaymentTerms) Days() int {
	switch p {
	case Net8:
		return 8
	case Net30:
		return 30
	case Cash:
		return 0
	default:
		return 14
	}
}

// Label returns the text printed on the invoice.
func (p PaymentTerms) Label() string {
	if p == Cash {
		return "Kontant"
	}
	return fmt.Sprintf("Netto %d dage", p.Days())
}

func (p PaymentTerms) String() string {
	if p >= 0 && int(p) < len(termNames) {
		return termNames[p]
	}
	return fmt.Sprintf("PaymentTerms(%d)", int(p))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (p PaymentTerms) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (p *PaymentTerms) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	if s == "immediate" {
		s = "cash"
	}
	for i, name := range termNames {
		if s == name {
			*p = PaymentTerms(i)
			return nil
		}
	}
	return fmt.Errorf("unknown payment terms %q", text)
}

// Type is the type of document.
type Type int

// These are the supported document types.  The zero value is [Invoice].
const (
	Invoice Type = iota
	CreditNote
	Proforma
)

var typeNames = []string{"invoice", "credit_note", "proforma"}

// Title returns the document title printed in the header.
func (t Type) Title() string {
	switch t {
	case CreditNote:
		return "KREDITNOTA"
	case Proforma:
		return "PROFORMA"
	default:
		return "FAKTURA"
	}
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (t *Type) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range typeNames {
		if s == name {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("unknown document type %q", text)
}

// VATRate is the rate of value added tax applied to an invoice line.
type VATRate int

// These are the supported VAT rates.  The zero value is [Standard].
const (
	Standard VATRate = iota // 25%
	Zero                    // 0%
)

// Percent returns the rate in percent.
func (v VATRate) Percent() float64 {
	if v == Zero {
		return 0
	}
	return 25
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (v VATRate) MarshalText() ([]byte, error) {
	if v == Zero {
		return []byte("0%"), nil
	}
	return []byte("25%"), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (v *VATRate) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "25%", "25", "standard":
		*v = Standard
	case "0%", "0", "zero":
		*v = Zero
	default:
		return fmt.Errorf("unsupported VAT rate %q", text)
	}
	return nil
}

// Customer is the recipient of an invoice.
type Customer struct {
	CompanyName string `yaml:"company_name" json:"company_name"`
	CVR         string `yaml:"cvr" json:"cvr"`
	Address     string `yaml:"address" json:"address"`
	PostalCity  string `yaml:"postal_city" json:"postal_city"`
	Attention   string `yaml:"attention,omitempty" json:"attention,omitempty"`
	Email       string `yaml:"email,omitempty" json:"email,omitempty"`
}

// Line is one line of an invoice.
type Line struct {
	Description string  `yaml:"description" json:"description"`
	Quantity    float64 `yaml:"quantity" json:"quantity"`
	Unit        string  `yaml:"unit" json:"unit"`
	UnitPrice   float64 `yaml:"unit_price" json:"unit_price"`
	VAT         VATRate `yaml:"vat_rate" json:"vat_rate"`
}

// Net returns the line total excluding VAT, rounded to cents.
func (l *Line) Net() float64 {
	return format.Cents(l.Quantity * l.UnitPrice)
}

// VATAmount returns the VAT for the line, rounded to cents.
func (l *Line) VATAmount() float64 {
	return format.Cents(l.Net() * l.VAT.Percent() / 100)
}

// Gross returns the line total including VAT.
func (l *Line) Gross() float64 {
	return format.Cents(l.Net() + l.VATAmount())
}

// Data holds the content of an invoice.
type Data struct {
	Number         string       `yaml:"number" json:"number"`
	Date           format.Day   `yaml:"date" json:"date"`
	Terms          PaymentTerms `yaml:"payment_terms" json:"payment_terms"`
	Type           Type         `yaml:"type" json:"type"`
	OrderReference string       `yaml:"order_reference,omitempty" json:"order_reference,omitempty"`
	Customer       Customer     `yaml:"customer" json:"customer"`
	Lines          []Line       `yaml:"lines" json:"lines"`
}

// DueDate returns the day the invoice must be paid.
func (d *Data) DueDate() format.Day {
	return d.Date.AddDays(d.Terms.Days())
}

// Subtotal returns the sum of the line totals excluding VAT.
func (d *Data) Subtotal() float64 {
	sum := 0.0
	for i := range d.Lines {
		sum += d.Lines[i].Net()
	}
	return format.Cents(sum)
}

// VAT returns the sum of the VAT amounts of all lines.
func (d *Data) VAT() float64 {
	sum := 0.0
	for i := range d.Lines {
		sum += d.Lines[i].VATAmount()
	}
	return format.Cents(sum)
}

// Total returns the amount due, including VAT.
func (d *Data) Total() float64 {
	return format.Cents(d.Subtotal() + d.VAT())
}

// Validate checks that the invoice can be printed.
func (d *Data) Validate() error {
	if d.Number == "" {
		return errors.New("invoice number is required")
	}
	if d.Date.IsZero() {
		return errors.New("invoice date is required")
	}
	if d.Customer.CompanyName == "" {
		return errors.New("customer company name is required")
	}
	if len(d.Lines) == 0 {
		return errors.New("invoice has no lines")
	}
	for i, l := range d.Lines {
		if l.Description == "" {
			return fmt.Errorf("line %d: description is required", i+1)
		}
	}
	return nil
}
