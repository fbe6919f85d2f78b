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
	"time"
)

// Day is a calendar date without time of day.
//
// In YAML and JSON documents, days are written in ISO notation
// (YYYY-MM-DD).  The notation DD.MM.YYYY is accepted as input, too.
type Day struct {
	t time.Time
}

// NewDay returns the given day.
func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DayOf returns the day of t, in the location of t.
func DayOf(t time.Time) Day {
	return NewDay(t.Date())
}

// Time returns midnight UTC at the start of the day.
func (d Day) Time() time.Time {
	return d.t
}

// IsZero reports whether d is the zero day.
func (d Day) IsZero() bool {
	return d.t.IsZero()
}

// Equal reports whether d and other are the same day.
func (d Day) Equal(other Day) bool {
	return d.t.Equal(other.t)
}

// AddDays returns the day n days after d.
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// String returns the day in the notation DD.MM.YYYY.
func (d Day) String() string {
	return Date(d.t)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.t.Format(time.DateOnly)), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (d *Day) UnmarshalText(text []byte) error {
	t, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	d.t = t
	return nil
}
