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
	"errors"
	"time"

	"seehuhn.de/go/bizdoc/format"
)

// Restaurant is the business the report is made for.
type Restaurant struct {
	Name       string `yaml:"name" json:"name"`
	Address    string `yaml:"address" json:"address"`
	PostalCity string `yaml:"postal_city" json:"postal_city"`
	CVR        string `yaml:"cvr" json:"cvr"`
}

// Payment sums up the payments received by one payment method.
type Payment struct {
	Sales     float64 `yaml:"sales" json:"sales"`
	Revenue   float64 `yaml:"revenue" json:"revenue"`
	Surcharge float64 `yaml:"surcharge,omitempty" json:"surcharge,omitempty"`
	Tips      float64 `yaml:"tips,omitempty" json:"tips,omitempty"`
}

// Total returns the total amount received, including surcharges and tips.
func (p *Payment) Total() float64 {
	return format.Cents(p.Sales + p.Surcharge + p.Tips)
}

// Data holds the figures of a daily report.
type Data struct {
	Date           format.Day `yaml:"date" json:"date"`
	Opened         time.Time  `yaml:"opened" json:"opened"`
	Closed         time.Time  `yaml:"closed" json:"closed"`
	OpenedBy       string     `yaml:"opened_by" json:"opened_by"`
	DocumentNumber string     `yaml:"document_number" json:"document_number"`
	Restaurant     Restaurant `yaml:"restaurant" json:"restaurant"`

	GrossRevenue float64 `yaml:"gross_revenue" json:"gross_revenue"`
	Discounts    float64 `yaml:"discounts" json:"discounts"`

	// VATRate is the VAT rate in percent.  If this is zero, 25% is used.
	VATRate float64 `yaml:"vat_rate,omitempty" json:"vat_rate,omitempty"`

	Cash Payment `yaml:"cash" json:"cash"`
	Card Payment `yaml:"card" json:"card"`
}

// Rate returns the VAT rate in percent.
func (d *Data) Rate() float64 {
	if d.VATRate == 0 {
		return 25
	}
	return d.VATRate
}

// TotalRevenue returns the revenue after discounts, including VAT.
func (d *Data) TotalRevenue() float64 {
	return format.Cents(d.GrossRevenue - d.Discounts)
}

// VATCollected returns the VAT contained in the total revenue.
func (d *Data) VATCollected() float64 {
	r := d.Rate()
	return format.Cents(d.TotalRevenue() * r / (100 + r))
}

// SalesExVAT returns the total revenue without VAT.
func (d *Data) SalesExVAT() float64 {
	return format.Cents(d.TotalRevenue() - d.VATCollected())
}

// Validate checks that the report can be printed.
func (d *Data) Validate() error {
	if d.Date.IsZero() {
		return errors.New("report date is required")
	}
	if d.Restaurant.Name == "" {
		return errors.New("restaurant name is required")
	}
	if d.VATRate < 0 {
		return errors.New("VAT rate must not be negative")
	}
	if !d.Opened.IsZero() && !d.Closed.IsZero() && d.Closed.Before(d.Opened) {
		return errors.New("closing time is before opening time")
	}
	return nil
}
