// Package localization holds the bilingual presentation strings used by reports
// and the invoice UI helpers. Business logic only ever sees message keys.
package localization

import (
	"fmt"
	"slices"

	"github.com/SscSPs/uk_books_app/internal/core/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifies a message independently of locale.
type Key string

// Localizer renders a message in every supported locale.
type Localizer interface {
	Localized(key Key, args ...any) domain.LocalizedText
}

// Catalog renders messages from an x/text message catalog.
type Catalog struct {
	locales  []language.Tag
	known    map[Key]struct{}
	printers map[language.Tag]*message.Printer
	matcher  language.Matcher
}

var _ Localizer = (*Catalog)(nil)

// NewCatalog builds a catalog from a message table. The first locale is the fallback
// and fills in any message missing for the other locales.
// Formats are printf-style, so a literal percent sign is written %%.
func NewCatalog(locales []language.Tag, messages map[Key]map[language.Tag]string) (*Catalog, error) {
	if len(locales) == 0 {
		return nil, fmt.Errorf("localization: at least one locale is required")
	}
	fallback := locales[0]
	builder := catalog.NewBuilder(catalog.Fallback(fallback))
	known := make(map[Key]struct{}, len(messages))

	for key, byLocale := range messages {
		known[key] = struct{}{}
		for _, tag := range locales {
			format, ok := byLocale[tag]
			if !ok {
				if format, ok = byLocale[fallback]; !ok {
					continue
				}
			}
			if err := builder.SetString(tag, string(key), format); err != nil {
				return nil, fmt.Errorf("localization: set %s/%s: %w", tag, key, err)
			}
		}
	}

	printers := make(map[language.Tag]*message.Printer, len(locales))
	for _, tag := range locales {
		printers[tag] = message.NewPrinter(tag, message.Catalog(builder))
	}

	return &Catalog{
		locales:  slices.Clone(locales),
		known:    known,
		printers: printers,
		matcher:  language.NewMatcher(locales),
	}, nil
}

// Default returns the bundled English/Turkish catalog.
func Default() *Catalog {
	c, err := NewCatalog([]language.Tag{language.English, language.Turkish}, defaultMessages)
	if err != nil {
		panic(err)
	}
	return c
}

// Locales lists the supported locales, fallback first.
func (c *Catalog) Locales() []language.Tag {
	return slices.Clone(c.locales)
}

// Text renders key in the given locale. Unsupported locales use the fallback locale
// and unknown keys render as the key itself.
func (c *Catalog) Text(key Key, tag language.Tag, args ...any) string {
	if _, ok := c.known[key]; !ok {
		return string(key)
	}
	p, ok := c.printers[tag]
	if !ok {
		p = c.printers[c.locales[0]]
	}
	return p.Sprintf(string(key), args...)
}

// Localized renders key in every supported locale, keyed by locale code.
func (c *Catalog) Localized(key Key, args ...any) domain.LocalizedText {
	out := make(domain.LocalizedText, len(c.locales))
	for _, tag := range c.locales {
		out[tag.String()] = c.Text(key, tag, args...)
	}
	return out
}

// Match picks the supported locale for an Accept-Language header value.
func (c *Catalog) Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return c.locales[0]
	}
	_, idx, _ := c.matcher.Match(tags...)
	return c.locales[idx]
}
