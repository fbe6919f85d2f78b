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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"seehuhn.de/go/bizdoc/config"
	"seehuhn.de/go/bizdoc/invoice"
	"seehuhn.de/go/bizdoc/render"
	"seehuhn.de/go/bizdoc/report"
)

// maxBody limits the size of request bodies.
const maxBody = 1 << 20

// newRouter returns the HTTP handler of the service.  Every request is
// rendered in its own session, so requests are served concurrently.
func newRouter(style *config.Style, opt *render.Options) http.Handler {
	h := &handler{style: style, opt: opt}

	r := chi.NewRouter()
	r.Use(h.requestID)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})
	r.Route("/v1", func(r chi.Router) {
		r.Post("/invoices", h.invoice)
		r.Post("/reports", h.report)
	})
	return r
}

type handler struct {
	style *config.Style
	opt   *render.Options
}

type ctxKey struct{}

func (h *handler) logger(r *http.Request) *slog.Logger {
	l := slog.Default()
	if h.opt != nil && h.opt.Logger != nil {
		l = h.opt.Logger
	}
	if id, ok := r.Context().Value(ctxKey{}).(string); ok {
		l = l.With("request_id", id)
	}
	return l
}

// requestID tags every request with a unique id, which is returned in the
// X-Request-Id header and included in log messages.
func (h *handler) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), ctxKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *handler) invoice(w http.ResponseWriter, r *http.Request) {
	inv := &invoice.Data{}
	if !h.decode(w, r, inv) {
		return
	}
	if err := inv.Validate(); err != nil {
		h.fail(w, r, http.StatusBadRequest, err)
		return
	}
	data, err := invoice.Generate(h.style, inv, h.options(r))
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	h.sendPDF(w, fmt.Sprintf("faktura-%s.pdf", inv.Number), data)
}

func (h *handler) report(w http.ResponseWriter, r *http.Request) {
	rep := &report.Data{}
	if !h.decode(w, r, rep) {
		return
	}
	if err := rep.Validate(); err != nil {
		h.fail(w, r, http.StatusBadRequest, err)
		return
	}
	data, err := report.Generate(h.style, rep, h.options(r))
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	name := rep.Date.Time().Format("02012006")
	h.sendPDF(w, "dagsrapport-"+name+".pdf", data)
}

// options returns the render options for one request, logging with the
// request id.
func (h *handler) options(r *http.Request) *render.Options {
	opt := &render.Options{}
	if h.opt != nil {
		*opt = *h.opt
	}
	opt.Logger = h.logger(r)
	return opt
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		h.fail(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return false
	}
	return true
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	level := slog.LevelInfo
	if status >= 500 {
		level = slog.LevelError
	}
	h.logger(r).Log(r.Context(), level, "request failed",
		"path", r.URL.Path, "status", status, "error", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func (h *handler) sendPDF(w http.ResponseWriter, name string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", name))
	w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
	w.Write(data)
}
