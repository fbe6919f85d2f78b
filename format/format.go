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

// Package format renders amounts, quantities and dates the way they are
// printed on business documents.
package format

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formats numbers using the conventions of a language.
// A Formatter is safe for concurrent use.
type Formatter struct {
	tag language.Tag
}

// New returns a formatter for the given language.
// If tag is [language.Und], Danish conventions are used.
func New(tag language.Tag) *Formatter {
	if tag == language.Und {
		tag = language.Danish
	}
	return &Formatter{tag: tag}
}

// Language returns the language used by the formatter.
func (f *Formatter) Language() language.Tag {
	return f.tag
}

func (f *Formatter) printer() *message.Printer {
	return message.NewPrinter(f.tag)
}

// Cents rounds an amount of money to two decimal places, rounding
// half away from zero.
func Cents(x float64) float64 {
	return math.Round(x*100) / 100
}

// Amount formats an amount of money with two decimals and digit grouping,
// for example "1.234,56" in Danish.
func (f *Formatter) Amount(x float64) string {
	return f.printer().Sprint(number.Decimal(Cents(x), number.Scale(2)))
}

// Currency formats an amount followed by a currency code, for example
// "1.234,56 DKK".
func (f *Formatter) Currency(x float64, code string) string {
	return f.Amount(x) + " " + code
}

// Quantity formats a quantity.  Whole numbers are printed without decimals,
// all other quantities with two decimals.  Digits are not grouped.
func (f *Formatter) Quantity(q float64) string {
	if q == math.Trunc(q) {
		return f.printer().Sprint(number.Decimal(q, number.NoSeparator(), number.Scale(0)))
	}
	return f.printer().Sprint(number.Decimal(q, number.NoSeparator(), number.Scale(2)))
}

// Percent formats a rate given in percent, for example "25%" or "12,5%".
func (f *Formatter) Percent(rate float64) string {
	return f.printer().Sprint(number.Decimal(rate, number.MaxFractionDigits(1))) + "%"
}

// Date formats a date as DD.MM.YYYY.
func Date(t time.Time) string {
	return t.Format("02.01.2006")
}

// DateTime formats a point in time as "DD.MM.YYYY, hh:mm".
func DateTime(t time.Time) string {
	return t.Format("02.01.2006, 15:04")
}

// ParseDate parses a date in ISO notation (YYYY-MM-DD) or in the notation
// used by [Date].
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err == nil {
		return t, nil
	}
	return time.Parse("02.01.2006", s)
}

// Join concatenates the non-empty parts, separated by sep.
func Join(sep string, parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, sep)
}

// Prefix returns label followed by value, or the empty string if value
// is empty.
func Prefix(label, value string) string {
	if value == "" {
		return ""
	}
	return label + value
}
