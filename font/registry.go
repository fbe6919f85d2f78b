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

package font

import (
	"fmt"
	"sync"

	"seehuhn.de/go/bizdoc/draw"
	"seehuhn.de/go/bizdoc/font/gofont"
)

// Font families provided by [GoFonts].
const (
	Go     = "Go"
	GoMono = "Go Mono"
)

// Registry maps font names to faces.
//
// A Registry must not be modified once it is used for measuring or
// drawing.  After that point, concurrent use is safe.
type Registry struct {
	faces         map[draw.Font]*Face
	defaultFamily string
}

// NewRegistry returns an empty registry.  Fonts from unknown families
// are replaced by the font of the same weight from defaultFamily.
func NewRegistry(defaultFamily string) *Registry {
	return &Registry{
		faces:         make(map[draw.Font]*Face),
		defaultFamily: defaultFamily,
	}
}

// Add registers a face under its name.
func (r *Registry) Add(face *Face) {
	r.faces[face.Font] = face
}

// Has reports whether a face is registered for the given family.
func (r *Registry) Has(family string) bool {
	for f := range r.faces {
		if f.Family == family {
			return true
		}
	}
	return false
}

// Face returns the face for f.
//
// If f is not registered, the same weight of the default family is used,
// and if this is missing too, the regular weight of the default family.
// Face returns nil only if the registry contains no usable face.
func (r *Registry) Face(f draw.Font) *Face {
	if face, ok := r.faces[f]; ok {
		return face
	}
	if face, ok := r.faces[draw.Font{Family: r.defaultFamily, Weight: f.Weight}]; ok {
		return face
	}
	return r.faces[draw.Font{Family: r.defaultFamily, Weight: draw.Regular}]
}

// Width implements the [Measurer] interface.
func (r *Registry) Width(f draw.Font, size float64, s string) float64 {
	face := r.Face(f)
	if face == nil {
		return 0
	}
	return face.Width(size, s)
}

// GoFonts returns the registry containing the fonts of the Go font family.
// The default family is [Go].
//
// The fonts are parsed on first use.  All calls return the same registry.
func GoFonts() *Registry {
	goFontsOnce.Do(func() {
		goFonts = NewRegistry(Go)
		for _, ff := range goFontNames {
			face, err := loadGoFont(ff.name, ff.font)
			if err != nil {
				panic(err)
			}
			goFonts.Add(face)
		}
	})
	return goFonts
}

func loadGoFont(name draw.Font, f gofont.Font) (*Face, error) {
	data, err := f.TTF()
	if err != nil {
		return nil, err
	}
	info, err := f.Read()
	if err != nil {
		return nil, err
	}
	face, err := NewFace(name, data, info)
	if err != nil {
		return nil, fmt.Errorf("gofont %s: %w", f, err)
	}
	return face, nil
}

var (
	goFontsOnce sync.Once
	goFonts     *Registry
)

var goFontNames = []struct {
	name draw.Font
	font gofont.Font
}{
	{draw.Font{Family: Go, Weight: draw.Regular}, gofont.Regular},
	{draw.Font{Family: Go, Weight: draw.Bold}, gofont.Bold},
	{draw.Font{Family: GoMono, Weight: draw.Regular}, gofont.Mono},
	{draw.Font{Family: GoMono, Weight: draw.Bold}, gofont.MonoBold},
}
