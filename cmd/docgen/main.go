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

// Docgen renders an invoice or a daily report, given as a YAML file, to PDF.
//
// Usage:
//
//	docgen [-config cfg.yaml] -kind invoice|report [-o out.pdf] input.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/bizdoc/config"
	"seehuhn.de/go/bizdoc/invoice"
	"seehuhn.de/go/bizdoc/render"
	"seehuhn.de/go/bizdoc/report"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "docgen: %v\n", err)
		os.Exit(1)
	}
}

var errTerminal = errors.New("refusing to write PDF data to a terminal, use -o")

func run(args []string, stdout *os.File, stderr io.Writer) error {
	flags := flag.NewFlagSet("docgen", flag.ContinueOnError)
	flags.SetOutput(stderr)
	cfgFile := flags.String("config", "", "configuration file (YAML)")
	kind := flags.String("kind", "invoice", "document kind: invoice or report")
	outFile := flags.String("o", "", "output file, \"-\" for standard output")
	verbose := flags.Bool("v", false, "log details about the generated document")
	uncompressed := flags.Bool("uncompressed", false, "do not compress content streams")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: docgen [options] input.yaml\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return flag.ErrHelp
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.DefaultConfig()
	if *cfgFile != "" {
		var err error
		cfg, err = config.LoadConfig(*cfgFile)
		if err != nil {
			return err
		}
	}
	style, err := cfg.Style()
	if err != nil {
		return err
	}

	input, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		return err
	}

	opt := &render.Options{
		Logger:        logger,
		HumanReadable: *uncompressed,
		XMP:           true,
	}
	var data []byte
	switch *kind {
	case "invoice":
		inv := &invoice.Data{}
		if err := yaml.Unmarshal(input, inv); err != nil {
			return fmt.Errorf("%s: %w", flags.Arg(0), err)
		}
		data, err = invoice.Generate(style, inv, opt)
	case "report":
		rep := &report.Data{}
		if err := yaml.Unmarshal(input, rep); err != nil {
			return fmt.Errorf("%s: %w", flags.Arg(0), err)
		}
		data, err = report.Generate(style, rep, opt)
	default:
		return fmt.Errorf("unknown document kind %q", *kind)
	}
	if err != nil {
		return err
	}

	if *outFile == "" || *outFile == "-" {
		if term.IsTerminal(int(stdout.Fd())) {
			return errTerminal
		}
		_, err = stdout.Write(data)
		return err
	}
	err = os.WriteFile(*outFile, data, 0o644)
	if err != nil {
		return err
	}
	logger.Info("document written", "kind", *kind, "file", *outFile, "bytes", len(data))
	return nil
}
