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
	"bytes"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func pageCount(t *testing.T, data []byte) int {
	t.Helper()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		t.Fatal(err)
	}
	return ctx.PageCount
}

func TestRun(t *testing.T) {
	cases := []struct {
		kind, input string
		pages       int
	}{
		{"invoice", "testdata/invoice.yaml", 1},
		{"report", "testdata/report.yaml", 2},
	}
	for _, c := range cases {
		t.Run(c.kind, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), c.kind+".pdf")
			logs := &bytes.Buffer{}
			err := run([]string{"-config", "testdata/config.yaml", "-kind", c.kind, "-o", out, c.input},
				os.Stdout, logs)
			if err != nil {
				t.Fatal(err)
			}
			data, err := os.ReadFile(out)
			if err != nil {
				t.Fatal(err)
			}
			if n := pageCount(t, data); n != c.pages {
				t.Errorf("got %d pages, want %d", n, c.pages)
			}
			if !bytes.Contains(logs.Bytes(), []byte("document written")) {
				t.Errorf("unexpected log output %q", logs.String())
			}
		})
	}
}

func TestRunStdout(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "stdout"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	err = run([]string{"-kind", "invoice", "testdata/invoice.yaml"}, f, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	if n := pageCount(t, data); n != 1 {
		t.Errorf("got %d pages, want 1", n)
	}
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"no input", []string{"-kind", "invoice"}},
		{"unknown kind", []string{"-kind", "receipt", "testdata/invoice.yaml"}},
		{"missing input", []string{"testdata/missing.yaml"}},
		{"missing config", []string{"-config", "testdata/missing.yaml", "testdata/invoice.yaml"}},
		{"wrong kind", []string{"-kind", "invoice", "testdata/report.yaml"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "out.pdf")
			args := append([]string{"-o", out}, c.args...)
			err := run(args, os.Stdout, io.Discard)
			if err == nil {
				t.Error("expected an error")
			}
		})
	}

	err := run(nil, os.Stdout, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("got %v, want flag.ErrHelp", err)
	}
}
