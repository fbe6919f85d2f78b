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

package pagination

import (
	"fmt"

	"seehuhn.de/go/bizdoc/draw"
)

// Session collects the pages of one document and finally decorates and
// writes them.
//
// The type parameter C is the type of the decoration context, which is
// passed to the decoration function for every page.
type Session[C any] struct {
	out DocumentWriter
	ctx C
	tag *sessionTag

	pages     []*Snapshot[C]
	numOpen   int
	finalized bool
}

// NewSession starts a new document.  The pages are written to out, once
// [Session.FinalizeAll] is called.  The decoration context ctx is captured
// by every page of the session.
func NewSession[C any](out DocumentWriter, ctx C) *Session[C] {
	return &Session[C]{
		out: out,
		ctx: ctx,
		tag: &sessionTag{},
	}
}

// BeginPage starts a new page at the end of the document.
func (s *Session[C]) BeginPage() (PageHandle, error) {
	if s.finalized {
		return PageHandle{}, &SequenceError{Op: "BeginPage", Reason: "session already finalized"}
	}

	page := &Snapshot[C]{
		Ordinal: len(s.pages) + 1,
		Context: s.ctx,
	}
	s.pages = append(s.pages, page)
	s.numOpen++

	return PageHandle{owner: s.tag, ordinal: page.Ordinal}, nil
}

// Append adds drawing commands to the end of an open page.
func (s *Session[C]) Append(h PageHandle, cmds ...draw.Command) error {
	if s.finalized {
		return &SequenceError{Op: "Append", Reason: "session already finalized"}
	}
	page, err := s.lookup("Append", h)
	if err != nil {
		return err
	}
	if page.ended {
		return &InvalidHandleError{Op: "Append", Handle: h, Reason: "page already ended"}
	}

	page.content = append(page.content, cmds...)
	return nil
}

// EndPage freezes the content of a page.
// Calling EndPage for a page which has already been ended has no effect.
func (s *Session[C]) EndPage(h PageHandle) error {
	page, err := s.lookup("EndPage", h)
	if err != nil {
		return err
	}
	if page.ended {
		return nil
	}

	page.ended = true
	s.numOpen--
	return nil
}

// Page returns the snapshot for a page of the session.
func (s *Session[C]) Page(h PageHandle) (*Snapshot[C], error) {
	return s.lookup("Page", h)
}

// Pages returns the number of pages begun so far.
func (s *Session[C]) Pages() int {
	return len(s.pages)
}

// Finalized reports whether [Session.FinalizeAll] has run.
func (s *Session[C]) Finalized() bool {
	return s.finalized
}

func (s *Session[C]) lookup(op string, h PageHandle) (*Snapshot[C], error) {
	if h.owner == nil {
		return nil, &InvalidHandleError{Op: op, Handle: h, Reason: "zero handle"}
	}
	if h.owner != s.tag {
		return nil, &InvalidHandleError{Op: op, Handle: h, Reason: "page belongs to a different session"}
	}
	if h.ordinal < 1 || h.ordinal > len(s.pages) {
		return nil, &InvalidHandleError{Op: op, Handle: h, Reason: "unknown page"}
	}
	return s.pages[h.ordinal-1], nil
}

// FinalizeAll decorates all pages and writes the document.
//
// All pages must have been ended, and there must be at least one page.
// Otherwise a [*SequenceError] is returned and the session is left
// unchanged.
//
// For every page, in ascending order, decorate is called with the page's
// decoration context, the page number and the total number of pages.  The
// page content and the returned commands are then committed to the
// document writer.  Finally the document writer is closed
// and the resulting bytes are returned.  If decorate is nil, the pages are
// written without decoration.
//
// FinalizeAll can only run once per session.  Later calls return
// [ErrAlreadyFinalized], even if the first run failed.  Failures of the
// document writer are reported as [*IOError].  If an error is returned,
// no output is returned.
func (s *Session[C]) FinalizeAll(decorate DecorateFunc[C]) ([]byte, error) {
	if s.finalized {
		return nil, ErrAlreadyFinalized
	}
	if len(s.pages) == 0 {
		return nil, &SequenceError{Op: "FinalizeAll", Reason: "document has no pages"}
	}
	if s.numOpen > 0 {
		for _, page := range s.pages {
			if !page.ended {
				return nil, &SequenceError{
					Op:     "FinalizeAll",
					Reason: fmt.Sprintf("page %d not ended", page.Ordinal),
				}
			}
		}
	}
	s.finalized = true

	total := len(s.pages)
	for _, page := range s.pages {
		var decoration []draw.Command
		if decorate != nil {
			decoration = decorate(page.Context, page.Ordinal, total)
		}

		err := s.out.FinalizePage(page.content, decoration)
		page.content = nil
		page.committed = true
		if err != nil {
			return nil, &IOError{Page: page.Ordinal, Err: err}
		}
	}

	data, err := s.out.Close()
	if err != nil {
		return nil, &IOError{Err: err}
	}
	return data, nil
}
