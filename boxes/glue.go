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

package boxes

import "seehuhn.de/go/bizdoc/draw"

type stretcher interface {
	Stretch() *stretchAmount
}

type shrinker interface {
	Shrink() *stretchAmount
}

// stretchAmount describes how much a box can grow or shrink.  Amounts of
// a higher level take precedence: if any child of a box has stretchability
// of level 1, all children with level 0 keep their natural size.
type stretchAmount struct {
	Val   float64
	Level int
}

type glue struct {
	Length float64
	Plus   stretchAmount
	Minus  stretchAmount
}

// NewGlue returns a new "glue" box with the given natural length and
// stretchability.
func NewGlue(length float64, plus float64, plusLevel int, minus float64, minusLevel int) Box {
	return &glue{
		Length: length,
		Plus:   stretchAmount{plus, plusLevel},
		Minus:  stretchAmount{minus, minusLevel},
	}
}

// Fill returns glue of length 0 which can stretch without bound.
// This is used to push neighbouring boxes apart, e.g. to right-align text.
func Fill() Box {
	return NewGlue(0, 1, 1, 0, 0)
}

func (obj *glue) Extent() *BoxExtent {
	return &BoxExtent{
		Width:          obj.Length,
		Height:         obj.Length,
		WhiteSpaceOnly: true,
	}
}

func (obj *glue) Draw(r *draw.Recorder, xPos, yPos float64) {}

func (obj *glue) Stretch() *stretchAmount {
	return &obj.Plus
}

func (obj *glue) Shrink() *stretchAmount {
	return &obj.Minus
}

// setGlue returns the sizes of the children of a box, after stretching or
// shrinking the glue so that the total comes out as close to target as
// possible.  The argument size extracts the natural size of a child in
// the relevant direction.
func setGlue(children []Box, target float64, size func(*BoxExtent) float64) []float64 {
	res := make([]float64, len(children))
	total := 0.0
	for i, child := range children {
		res[i] = size(child.Extent())
		total += res[i]
	}

	var sign float64
	var amount func(Box) (*stretchAmount, bool)
	switch {
	case total < target-1e-3:
		sign = 1
		amount = func(b Box) (*stretchAmount, bool) {
			s, ok := b.(stretcher)
			if !ok {
				return nil, false
			}
			return s.Stretch(), true
		}
	case total > target+1e-3:
		sign = -1
		amount = func(b Box) (*stretchAmount, bool) {
			s, ok := b.(shrinker)
			if !ok {
				return nil, false
			}
			return s.Shrink(), true
		}
	default:
		return res
	}

	level := -1
	var ii []int
	sum := 0.0
	for i, child := range children {
		info, ok := amount(child)
		if !ok || info.Val <= 0 {
			continue
		}
		if info.Level > level {
			level = info.Level
			ii = nil
			sum = 0
		} else if info.Level < level {
			continue
		}
		ii = append(ii, i)
		sum += info.Val
	}
	if sum <= 0 {
		return res
	}

	q := sign * (target - total) / sum
	if level == 0 && q > 1 {
		q = 1
	}
	for _, i := range ii {
		info, _ := amount(children[i])
		res[i] += sign * info.Val * q
	}
	return res
}
