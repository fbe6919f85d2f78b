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

package format

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestAmount(t *testing.T) {
	da := New(language.Danish)
	en := New(language.English)
	cases := []struct {
		f    *Formatter
		in   float64
		want string
	}{
		{da, 0, "0,00"},
		{da, 7.5, "7,50"},
		{da, 1234.56, "1.234,56"},
		{da, 1234567.891, "1.234.567,89"},
		{en, 1234.56, "1,234.56"},
		{New(language.Und), 99.9, "99,90"},
	}
	for _, c := range cases {
		got := c.f.Amount(c.in)
		if got != c.want {
			t.Errorf("%s %g: got %q, want %q", c.f.Language(), c.in, got, c.want)
		}
	}
}

func TestCurrency(t *testing.T) {
	got := New(language.Danish).Currency(2622.5, "DKK")
	if got != "2.622,50 DKK" {
		t.Errorf("got %q", got)
	}
}

func TestQuantity(t *testing.T) {
	da := New(language.Danish)
	cases := []struct {
		in   float64
		want string
	}{
		{1, "1"},
		{15000, "15000"},
		{2.5, "2,50"},
	}
	for _, c := range cases {
		if got := da.Quantity(c.in); got != c.want {
			t.Errorf("%g: got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPercent(t *testing.T) {
	da := New(language.Danish)
	if got := da.Percent(25); got != "25%" {
		t.Errorf("got %q", got)
	}
	if got := da.Percent(12.5); got != "12,5%" {
		t.Errorf("got %q", got)
	}
}

func TestCents(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0.125, 0.13},
		{1.234, 1.23},
		{15000 * 0.02, 300},
		{-0.125, -0.13},
	}
	for _, c := range cases {
		if got := Cents(c.in); got != c.want {
			t.Errorf("Cents(%g) = %g, want %g", c.in, got, c.want)
		}
	}
}

func TestDates(t *testing.T) {
	tm := time.Date(2025, 12, 31, 8, 5, 0, 0, time.UTC)
	if got := Date(tm); got != "31.12.2025" {
		t.Errorf("Date: got %q", got)
	}
	if got := DateTime(tm); got != "31.12.2025, 08:05" {
		t.Errorf("DateTime: got %q", got)
	}

	for _, s := range []string{"2025-12-31", "31.12.2025"} {
		d, err := ParseDate(s)
		if err != nil {
			t.Errorf("%q: %v", s, err)
			continue
		}
		if !d.Equal(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("%q: got %v", s, d)
		}
	}
	if _, err := ParseDate("31/12/2025"); err == nil {
		t.Error("invalid date accepted")
	}
}

func TestDay(t *testing.T) {
	d := NewDay(2025, 12, 31)
	if d.String() != "31.12.2025" {
		t.Errorf("String: got %q", d.String())
	}
	if due := d.AddDays(14); !due.Equal(NewDay(2026, 1, 14)) {
		t.Errorf("AddDays: got %s", due)
	}

	text, err := d.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != "2025-12-31" {
		t.Errorf("MarshalText: got %q", text)
	}
	var back Day
	if err := back.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(d) {
		t.Errorf("UnmarshalText: got %s", back)
	}
	if err := back.UnmarshalText([]byte("yesterday")); err == nil {
		t.Error("invalid day accepted")
	}

	local := time.Date(2025, 3, 1, 23, 30, 0, 0, time.FixedZone("CET", 3600))
	if !DayOf(local).Equal(NewDay(2025, 3, 1)) {
		t.Errorf("DayOf: got %s", DayOf(local))
	}
}
