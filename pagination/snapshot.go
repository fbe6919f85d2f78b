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
	"seehuhn.de/go/bizdoc/draw"
)

// DocumentWriter receives the finished pages of a session.
//
// FinalizePage is called exactly once for every page, in ascending page
// order, with the content of the page and the decoration to be drawn on
// top of it.  Close is called once, after the last page has been
// committed.
type DocumentWriter interface {
	FinalizePage(content, decoration []draw.Command) error
	Close() ([]byte, error)
}

// DecorateFunc computes the decoration for one page.
//
// The function is called with the decoration context of the page, the
// 1-based page number and the total number of pages.  It must not keep
// or modify state between calls: for equal arguments it must return
// equal commands.
type DecorateFunc[C any] func(ctx C, ordinal, total int) []draw.Command

// PageHandle refers to a page of a [Session].
// The zero value is not a valid handle.
type PageHandle struct {
	owner   *sessionTag
	ordinal int
}

// Ordinal returns the 1-based page number of the page, or 0 for the zero
// handle.
func (h PageHandle) Ordinal() int {
	return h.ordinal
}

// sessionTag identifies a session.  It must not be a zero-size type, so that
// different sessions get distinct pointers.
type sessionTag struct {
	_ byte
}

// Snapshot is the state of one page, from the moment the page is begun
// until the page is committed to the document writer.
type Snapshot[C any] struct {
	// Ordinal is the 1-based position of the page in the document.
	Ordinal int

	// Context is the decoration context, captured when the page was begun.
	Context C

	content   []draw.Command
	ended     bool
	committed bool
}

// Content returns a copy of the drawing commands of the page.
// After the page has been committed, the commands are released and
// Content returns nil.
func (s *Snapshot[C]) Content() []draw.Command {
	if s.content == nil {
		return nil
	}
	res := make([]draw.Command, len(s.content))
	copy(res, s.content)
	return res
}

// Ended reports whether the content of the page is frozen.
func (s *Snapshot[C]) Ended() bool {
	return s.ended
}

// Committed reports whether the page has been handed to the document
// writer.
func (s *Snapshot[C]) Committed() bool {
	return s.committed
}
