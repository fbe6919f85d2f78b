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

package decorate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// pageLabelKey is the message key for page labels.  The English text is
// used when no translation is available.
const pageLabelKey = "Page %d of %d"

var labels = newCatalog()

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	set := func(tag language.Tag, msg string) {
		err := b.SetString(tag, pageLabelKey, msg)
		if err != nil {
			panic(err)
		}
	}
	set(language.English, "Page %d of %d")
	set(language.Danish, "Side %d af %d")
	set(language.German, "Seite %d von %d")
	set(language.Norwegian, "Side %d av %d")
	set(language.Swedish, "Sida %d av %d")
	return b
}

// Languages returns the languages for which page labels are translated.
func Languages() []language.Tag {
	return labels.Languages()
}

// PageText returns the page label "Page ordinal of total" in the given
// language.  Labels for [language.Und] are in Danish.
func PageText(lang language.Tag, ordinal, total int) string {
	if lang == language.Und {
		lang = language.Danish
	}
	p := message.NewPrinter(lang, message.Catalog(labels))
	return p.Sprintf(pageLabelKey, ordinal, total)
}
