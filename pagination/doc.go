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

// Package pagination adds page decorations which depend on the total number
// of pages, like "page N of M" footers, to a document.
//
// Documents are produced in two passes.  During the content pass, a layout
// engine calls [Session.BeginPage], [Session.Append] and [Session.EndPage]
// for every page, in document order.  Nothing is written at this stage;
// every page is kept as a [Snapshot] of its drawing commands.  Once the
// content is complete, [Session.FinalizeAll] knows the total page count.
// It calls the decoration function once for every page, appends the
// returned commands to the page, and commits the pages to the
// [DocumentWriter] in ascending order.
//
// Decoration only ever appends to a page.  Since commands are replayed in
// order, decorations are drawn on top of the page content.
//
// A session is used by a single goroutine.  Different sessions share no
// state and can be used concurrently.
package pagination
