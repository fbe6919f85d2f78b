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

// Package layout breaks a stream of boxes into pages.
package layout

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/bizdoc/boxes"
	"seehuhn.de/go/bizdoc/draw"
	"seehuhn.de/go/bizdoc/pagination"
)

// Pager receives the content of the pages produced by [Flow].
// This is implemented by [pagination.Session].
type Pager interface {
	BeginPage() (pagination.PageHandle, error)
	Append(h pagination.PageHandle, cmds ...draw.Command) error
	EndPage(h pagination.PageHandle) error
}

// Frame describes the area of a page which is available for content.
// All lengths are in PDF points.  The bottom margin includes the space
// reserved for page decorations.
type Frame struct {
	PageSize                 rect.Rect
	Top, Right, Bottom, Left float64
}

// TextWidth returns the width of the content area.
func (f *Frame) TextWidth() float64 {
	return f.PageSize.Dx() - f.Left - f.Right
}

// TextHeight returns the height of the content area.
func (f *Frame) TextHeight() float64 {
	return f.PageSize.Dy() - f.Top - f.Bottom
}

// pageBreak is a marker which ends the current page.
type pageBreak struct{}

func (pageBreak) Extent() *boxes.BoxExtent {
	return &boxes.BoxExtent{WhiteSpaceOnly: true}
}

func (pageBreak) Draw(*draw.Recorder, float64, float64) {}

// PageBreak returns a box which forces the following content onto a new
// page.  A page break at the top of a page has no effect.
func PageBreak() boxes.Box {
	return pageBreak{}
}

// Flow distributes the content over as many pages as needed, in order.
//
// Boxes which implement [boxes.Splitter] may be broken between their
// pieces, all other boxes are kept in one piece.  White space at the top
// of a page is dropped.  A box which is taller than the content area is
// put on a page by itself and extends below the bottom margin.
//
// Flow always produces at least one page.
func Flow(s Pager, f *Frame, content ...boxes.Box) error {
	c := make(chan boxes.Box)
	go func() {
		defer close(c)
		for _, box := range content {
			if sp, ok := box.(boxes.Splitter); ok {
				for _, piece := range sp.Pieces() {
					c <- piece
				}
			} else {
				c <- box
			}
		}
	}()
	err := MakePages(s, f, c)
	if err != nil {
		// drain the channel, so that the sending goroutine can exit
		for range c {
		}
	}
	return err
}

// MakePages breaks a stream of boxes into pages.
func MakePages(s Pager, f *Frame, c <-chan boxes.Box) error {
	maxHeight := f.TextHeight()
	top := f.PageSize.URy - f.Top

	p := boxes.Parameters{
		BaseLineSkip: 0,
	}

	var body []boxes.Box
	pageNo := 0
	flush := func() error {
		h, err := s.BeginPage()
		if err != nil {
			return err
		}

		pageBody := p.VBox(body...)
		r := &draw.Recorder{}
		pageBody.Draw(r, f.Left, top-pageBody.Extent().Height)
		err = s.Append(h, r.Commands()...)
		if err != nil {
			return err
		}
		err = s.EndPage(h)
		if err != nil {
			return err
		}

		body = body[:0]
		pageNo++
		return nil
	}

	var totalHeight float64
	for box := range c {
		if _, isBreak := box.(pageBreak); isBreak {
			if len(body) > 0 {
				err := flush()
				if err != nil {
					return err
				}
				totalHeight = 0
			}
			continue
		}

		ext := box.Extent()
		if len(body) == 0 && ext.WhiteSpaceOnly {
			continue
		}
		h := ext.Height + ext.Depth
		if len(body) > 0 && totalHeight+h > maxHeight+1e-6 {
			err := flush()
			if err != nil {
				return err
			}
			totalHeight = 0
			if ext.WhiteSpaceOnly {
				continue
			}
		}
		body = append(body, box)
		totalHeight += h
	}
	if len(body) > 0 || pageNo == 0 {
		return flush()
	}
	return nil
}
