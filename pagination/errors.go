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
	"errors"
	"fmt"
)

// SequenceError is returned when an operation is called out of order.
type SequenceError struct {
	Op     string
	Reason string
}

func (err *SequenceError) Error() string {
	return "pagination: " + err.Op + ": " + err.Reason
}

// InvalidHandleError is returned when an operation refers to a page which
// does not exist in the session, or which can no longer be changed.
type InvalidHandleError struct {
	Op     string
	Handle PageHandle
	Reason string
}

func (err *InvalidHandleError) Error() string {
	return fmt.Sprintf("pagination: %s: page handle %d: %s", err.Op, err.Handle.ordinal, err.Reason)
}

// IOError is returned when the document writer fails.
// Page is the ordinal of the page being committed, or 0 if the failure
// occurred while closing the document.
type IOError struct {
	Page int
	Err  error
}

func (err *IOError) Error() string {
	if err.Page > 0 {
		return fmt.Sprintf("pagination: writing page %d: %v", err.Page, err.Err)
	}
	return fmt.Sprintf("pagination: closing document: %v", err.Err)
}

func (err *IOError) Unwrap() error {
	return err.Err
}

// ErrAlreadyFinalized is returned when [Session.FinalizeAll] is called more
// than once.
var ErrAlreadyFinalized = errors.New("pagination: session already finalized")
