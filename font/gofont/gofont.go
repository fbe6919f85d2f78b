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

// Package gofont provides access to the fonts of the Go font family which
// are used for business documents.
package gofont

import (
	"bytes"
	"fmt"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/sfnt"
)

// Font identifies individual fonts in the Go font family.
type Font int

// Constants for the available fonts.
const (
	Regular  Font = iota // Go Regular
	Bold                 // Go Semi Bold
	Mono                 // Go Mono Regular
	MonoBold             // Go Mono Semi Bold
)

func (f Font) String() string {
	switch f {
	case Regular:
		return "Go Regular"
	case Bold:
		return "Go Bold"
	case Mono:
		return "Go Mono"
	case MonoBold:
		return "Go Mono Bold"
	default:
		return fmt.Sprintf("gofont.Font(%d)", int(f))
	}
}

// TTF returns the TrueType font file for f.
// The returned slice must not be modified.
func (f Font) TTF() ([]byte, error) {
	data, ok := ttf[f]
	if !ok {
		return nil, fmt.Errorf("gofont: unknown font %d", f)
	}
	return data, nil
}

// Read parses the font program of f.
func (f Font) Read() (*sfnt.Font, error) {
	data, err := f.TTF()
	if err != nil {
		return nil, err
	}
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gofont: %s: %w", f, err)
	}
	return info, nil
}

var ttf = map[Font][]byte{
	Regular:  goregular.TTF,
	Bold:     gobold.TTF,
	Mono:     gomono.TTF,
	MonoBold: gomonobold.TTF,
}

// All contains all fonts available in this package.
var All = []Font{Regular, Bold, Mono, MonoBold}
