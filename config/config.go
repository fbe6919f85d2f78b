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

// Package config holds the settings shared by all generated documents:
// the issuing company, locale, paper, colors and fonts.
package config

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/bizdoc/document"
	"seehuhn.de/go/bizdoc/draw"
	"seehuhn.de/go/bizdoc/font"
	"seehuhn.de/go/bizdoc/layout"
)

// Config holds the full configuration.
type Config struct {
	Listen   string   `yaml:"listen"`
	Language string   `yaml:"language"`
	Paper    string   `yaml:"paper"`
	Currency string   `yaml:"currency"`
	Font     string   `yaml:"font"`
	Platform Platform `yaml:"platform"`
	Colors   Colors   `yaml:"colors"`

	InvoiceMargins Margins `yaml:"invoice_margins"`
	ReportMargins  Margins `yaml:"report_margins"`
}

// Platform describes the company which issues the documents.
type Platform struct {
	CompanyName string `yaml:"company_name"`
	Address     string `yaml:"address"`
	PostalCity  string `yaml:"postal_city"`
	CVR         string `yaml:"cvr"`
	Phone       string `yaml:"phone"`
	Email       string `yaml:"email"`
	Website     string `yaml:"website"`
	BankName    string `yaml:"bank_name"`
	BankReg     string `yaml:"bank_reg"`
	BankAccount string `yaml:"bank_account"`
}

// Colors holds the document colors in HTML notation.
type Colors struct {
	Primary    string `yaml:"primary"`
	Accent     string `yaml:"accent"`
	Text       string `yaml:"text"`
	MediumGray string `yaml:"medium_gray"`
	LightGray  string `yaml:"light_gray"`
	Muted      string `yaml:"muted"`
}

// Positions of the page decorations, in millimetres above the bottom edge
// of the page.
const (
	InvoiceBoxY      = 20.0
	InvoiceBoxHeight = 22.0

	ReportSeparatorY     = 20.0
	ReportSeparatorWidth = 0.5
)

// The bottom margins must reserve these bands, in millimetres, for the
// page decorations.
const (
	InvoiceBand = InvoiceBoxY + InvoiceBoxHeight
	ReportBand  = ReportSeparatorY + ReportSeparatorWidth/2
)

// Margins are page margins in millimetres.  The bottom margin includes
// the space used by page decorations.
type Margins struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// Frame converts the margins to a layout frame for the given page size.
func (m Margins) Frame(page rect.Rect) *layout.Frame {
	return &layout.Frame{
		PageSize: page,
		Top:      m.Top * draw.MM,
		Right:    m.Right * draw.MM,
		Bottom:   m.Bottom * draw.MM,
		Left:     m.Left * draw.MM,
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Listen:   ":8080",
		Language: "da",
		Paper:    "A4",
		Currency: "DKK",
		Font:     font.Go,
		Platform: Platform{
			CompanyName: "OrderFlow ApS",
			Address:     "Vestergade 12",
			PostalCity:  "2100 København Ø",
			CVR:         "12345678",
			Phone:       "+45 70 20 30 40",
			Email:       "faktura@orderflow.dk",
			Website:     "www.orderflow.dk",
			BankName:    "Danske Bank",
			BankReg:     "1234",
			BankAccount: "12345678",
		},
		Colors: Colors{
			Primary:    "#1a1a2e",
			Accent:     "#0f3460",
			Text:       "#333333",
			MediumGray: "#e0e0e0",
			LightGray:  "#f8f9fa",
			Muted:      "#808080",
		},
		InvoiceMargins: Margins{Top: 20, Right: 20, Bottom: 48, Left: 20},
		ReportMargins:  Margins{Top: 20, Right: 25, Bottom: 30, Left: 25},
	}
}

// LoadConfig reads and parses a YAML config file.  Settings missing from
// the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses a YAML configuration and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required fields are present and values are sane.
func (c *Config) Validate() error {
	if c.Platform.CompanyName == "" {
		return errors.New("platform.company_name is required")
	}
	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("language %q: %w", c.Language, err)
	}
	page, ok := document.PaperSize(c.Paper)
	if !ok {
		return fmt.Errorf("unsupported paper size %q", c.Paper)
	}
	if _, err := currency.ParseISO(c.Currency); err != nil {
		return fmt.Errorf("currency %q: %w", c.Currency, err)
	}
	switch c.Font {
	case font.Go, font.GoMono:
	default:
		return fmt.Errorf("unsupported font family %q", c.Font)
	}

	for _, col := range []struct {
		name, val string
	}{
		{"primary", c.Colors.Primary},
		{"accent", c.Colors.Accent},
		{"text", c.Colors.Text},
		{"medium_gray", c.Colors.MediumGray},
		{"light_gray", c.Colors.LightGray},
		{"muted", c.Colors.Muted},
	} {
		if _, err := draw.ParseHex(col.val); err != nil {
			return fmt.Errorf("colors.%s: %w", col.name, err)
		}
	}

	for _, m := range []struct {
		name string
		m    Margins
		band float64
	}{
		{"invoice_margins", c.InvoiceMargins, InvoiceBand},
		{"report_margins", c.ReportMargins, ReportBand},
	} {
		if m.m.Top < 0 || m.m.Right < 0 || m.m.Bottom < 0 || m.m.Left < 0 {
			return fmt.Errorf("%s: margins must not be negative", m.name)
		}
		if m.m.Bottom < m.band {
			return fmt.Errorf("%s: bottom margin %gmm overlaps the page decorations, need at least %gmm",
				m.name, m.m.Bottom, m.band)
		}
		f := m.m.Frame(page)
		if f.TextWidth() <= 0 || f.TextHeight() <= 0 {
			return fmt.Errorf("%s: no space left on %s paper", m.name, c.Paper)
		}
	}
	return nil
}

// Style is the validated, immutable form of a [Config], used while
// generating documents.
type Style struct {
	Platform Platform
	Language language.Tag
	PageSize rect.Rect
	Currency string
	Family   string

	Primary    draw.Color
	Accent     draw.Color
	Text       draw.Color
	MediumGray draw.Color
	LightGray  draw.Color
	Muted      draw.Color

	InvoiceFrame *layout.Frame
	ReportFrame  *layout.Frame
}

// Style validates the configuration and converts it into a [Style].
func (c *Config) Style() (*Style, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	page, _ := document.PaperSize(c.Paper)
	lang := language.Make(c.Language)
	if lang == language.Und {
		lang = language.Danish
	}
	s := &Style{
		Platform:     c.Platform,
		Language:     lang,
		PageSize:     page,
		Currency:     c.Currency,
		Family:       c.Font,
		Primary:      draw.Hex(c.Colors.Primary),
		Accent:       draw.Hex(c.Colors.Accent),
		Text:         draw.Hex(c.Colors.Text),
		MediumGray:   draw.Hex(c.Colors.MediumGray),
		LightGray:    draw.Hex(c.Colors.LightGray),
		Muted:        draw.Hex(c.Colors.Muted),
		InvoiceFrame: c.InvoiceMargins.Frame(page),
		ReportFrame:  c.ReportMargins.Frame(page),
	}
	return s, nil
}

// DefaultStyle returns the style for [DefaultConfig].
func DefaultStyle() *Style {
	s, err := DefaultConfig().Style()
	if err != nil {
		panic(err)
	}
	return s
}
