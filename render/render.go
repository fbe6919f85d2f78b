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

// Package render turns laid-out document content into a finished PDF file.
//
// Content is distributed over pages by [layout.Flow], the pages are
// collected in a [pagination.Session] and, once the number of pages is
// known, every page receives its decoration from [decorate.Render].
package render

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"seehuhn.de/go/bizdoc/boxes"
	"seehuhn.de/go/bizdoc/config"
	"seehuhn.de/go/bizdoc/decorate"
	"seehuhn.de/go/bizdoc/document"
	"seehuhn.de/go/bizdoc/font"
	"seehuhn.de/go/bizdoc/layout"
	"seehuhn.de/go/bizdoc/pagination"
)

// Options control the generation of documents.
// The zero value is ready to use.
type Options struct {
	// Fonts is used to set all text.  If this is nil, [font.GoFonts] is
	// used.
	Fonts *font.Registry

	// Logger, if set, receives one debug record for every generated
	// document.
	Logger *slog.Logger

	// HumanReadable disables the compression of content streams.
	HumanReadable bool

	// XMP adds an XMP metadata stream to the documents.
	XMP bool

	// Now returns the creation time recorded in the documents.
	// If this is nil, [time.Now] is used.
	Now func() time.Time
}

// GetFonts returns the font registry to use.
func (opt *Options) GetFonts() *font.Registry {
	if opt != nil && opt.Fonts != nil {
		return opt.Fonts
	}
	return font.GoFonts()
}

func (opt *Options) now() time.Time {
	if opt != nil && opt.Now != nil {
		return opt.Now()
	}
	return time.Now()
}

// Job describes one document.
type Job struct {
	// Kind names the type of document, for log messages.
	Kind string

	Title   string
	Subject string

	Frame      *layout.Frame
	Content    []boxes.Box
	Decoration *decorate.Context
}

// Render lays out the content of the job and returns the PDF file.
func Render(style *config.Style, job *Job, opt *Options) ([]byte, error) {
	start := time.Now()

	docOpt := &document.Options{
		Title:        job.Title,
		Author:       style.Platform.CompanyName,
		Subject:      job.Subject,
		Creator:      style.Platform.CompanyName,
		Producer:     "seehuhn.de/go/bizdoc",
		CreationDate: opt.now(),
		Language:     style.Language,
	}
	if opt != nil {
		docOpt.HumanReadable = opt.HumanReadable
		docOpt.XMP = opt.XMP
	}
	doc := document.New(style.PageSize, opt.GetFonts(), docOpt)

	s := pagination.NewSession(doc, job.Decoration)
	err := layout.Flow(s, job.Frame, job.Content...)
	if err != nil {
		return nil, fmt.Errorf("%s: layout: %w", job.Kind, err)
	}
	pages := s.Pages()
	data, err := s.FinalizeAll(decorate.Render)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", job.Kind, err)
	}

	if opt != nil && opt.Logger != nil {
		opt.Logger.LogAttrs(context.Background(), slog.LevelDebug, "document generated",
			slog.String("kind", job.Kind),
			slog.Int("pages", pages),
			slog.Int("bytes", len(data)),
			slog.Duration("elapsed", time.Since(start)),
		)
	}
	return data, nil
}
