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

package pdf

import (
	"testing"
	"time"

	"seehuhn.de/go/geom/rect"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{0.5, ".5"},
		{-0.5, "-.5"},
		{1.25, "1.25"},
		{56.69291, "56.69291"},
		{1.0 / 3, ".33333"},
		{-0.000001, "0"},
		{595.276, "595.276"},
	}
	for _, c := range cases {
		got := Format(c.in, 5)
		if got != c.want {
			t.Errorf("Format(%g) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestObjects(t *testing.T) {
	cases := []struct {
		obj  Object
		want string
	}{
		{Boolean(true), "true"},
		{Integer(-7), "-7"},
		{Real(2), "2"},
		{Name("Type"), "/Type"},
		{Name("A B#"), "/A#20B#23"},
		{String("hello"), "(hello)"},
		{String("a(b)c"), "(a(b)c)"},
		{String("a)b"), `(a\)b)`},
		{String(`x\y`), `(x\\y)`},
		{String{0xE6, 'a', 'b', 'c'}, `(\346abc)`},
		{String{0xFE, 0xFF, 0, 'A'}, "<feff0041>"},
		{Array{Integer(1), nil, Name("X")}, "[1 null /X]"},
		{Dict{"B": Integer(2), "A": Integer(1), "C": nil}, "<<\n/A 1\n/B 2\n>>"},
		{NewReference(12, 0), "12 0 R"},
		{Rect(rect.Rect{URx: 10, URy: 20.5}), "[0 0 10 20.5]"},
	}
	for _, c := range cases {
		got := AsString(c.obj)
		if got != c.want {
			t.Errorf("%#v: got %q, want %q", c.obj, got, c.want)
		}
	}
}

func TestTextString(t *testing.T) {
	if got := string(TextString("Invoice 42")); got != "Invoice 42" {
		t.Errorf("ASCII text changed: %q", got)
	}
	got := TextString("Æ")
	want := String{0xFE, 0xFF, 0x00, 0xC6}
	if string(got) != string(want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestDate(t *testing.T) {
	tz := time.FixedZone("CET", 3600)
	d := time.Date(2025, 12, 31, 8, 14, 0, 0, tz)
	got := string(Date(d))
	want := "D:20251231081400+01'00"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
