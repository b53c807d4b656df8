// Package i18n translates template text using gettext PO catalogs.
//
// A Catalog provides a lambda.  Bound into the data under a name such as
// "i18n", it translates the raw body of each {{#i18n}}...{{/i18n}} section,
// and the translation is then rendered like any lambda result:
//
//	{{#i18n}}Hello {{name}}!{{/i18n}}
//
// with the PO entry
//
//	msgid "Hello {{name}}!"
//	msgstr "Bonjour {{name}} !"
//
// renders "Bonjour Rob !".  Text without a translation is rendered as is.
package i18n

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/robfig/gettext/po"
	"github.com/robfig/stache/data"
	"golang.org/x/text/language"
)

// DefaultLambda is the section name conventionally bound to a catalog.
const DefaultLambda = "i18n"

// FileOpener defines an abstraction for opening a po file given a locale
type FileOpener interface {
	// Open returns ReadCloser for the po file indicated by locale. It returns
	// nil if the file does not exist
	Open(locale string) (io.ReadCloser, error)
}

// Provider holds the catalogs for a set of locales.
type Provider struct {
	catalogs map[string]*Catalog
}

// Load returns a Provider that takes its translations by passing in the
// specified locales to the given FileOpener.
//
// Supports fallbacks for when a given locale does not exist, as long as the
// fallback files are in canonical form.
func Load(opener FileOpener, locales []string) (*Provider, error) {
	var prov = &Provider{make(map[string]*Catalog)}
	for _, locale := range locales {
		r, err := opener.Open(locale)
		if err != nil {
			return nil, err
		}
		if r == nil {
			localeTag, err := language.Parse(locale)
			if err != nil {
				return nil, err
			}
			for _, fallbackLocale := range fallbacks(localeTag) {
				if r, err = opener.Open(fallbackLocale.String()); err != nil {
					return nil, err
				}
				if r != nil {
					break
				}
			}
			if r == nil {
				continue
			}
		}

		pofile, err := po.Parse(r)
		r.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", locale, err)
		}

		c, err := NewCatalog(locale, pofile)
		if err != nil {
			return nil, err
		}
		prov.catalogs[locale] = c
	}
	return prov, nil
}

// fsFileOpener is a FileOpener based on the filesystem and rooted at Dirname
type fsFileOpener struct {
	Dirname string
}

func (o fsFileOpener) Open(locale string) (io.ReadCloser, error) {
	switch f, err := os.Open(filepath.Join(o.Dirname, locale+".po")); {
	case os.IsNotExist(err):
		return nil, nil
	case err != nil:
		return nil, err
	default:
		return f, nil
	}
}

// Dir returns a Provider that takes translations from the given path.
// For example, if dir is "/usr/local/msgs", po files should be of the form:
//
//	/usr/local/msgs/<lang>.po
//	/usr/local/msgs/<lang>_<territory>.po
func Dir(dirname string) (*Provider, error) {
	var entries, err = os.ReadDir(dirname)
	if err != nil {
		return nil, err
	}
	var locales []string
	for _, entry := range entries {
		var name = entry.Name()
		if !entry.IsDir() && strings.HasSuffix(name, ".po") {
			locales = append(locales, strings.TrimSuffix(name, ".po"))
		}
	}
	return Load(fsFileOpener{dirname}, locales)
}

// Catalog returns the catalog for the given locale, or the closest more
// general one.  It returns nil if there is none.
func (p *Provider) Catalog(locale string) *Catalog {
	c, ok := p.catalogs[locale]
	if !ok {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil
		}
		for _, fb := range fallbacks(tag) {
			if c, ok = p.catalogs[fb.String()]; ok {
				break
			}
		}
	}
	return c
}

// Catalog is the set of translations for one locale.  A nil *Catalog
// translates nothing.
type Catalog struct {
	locale    string
	messages  map[string]po.Message // by msgid
	pluralize po.PluralSelector
}

// NewCatalog indexes the messages of a parsed PO file.
func NewCatalog(locale string, file po.File) (*Catalog, error) {
	var pluralize = file.Pluralize
	if pluralize == nil {
		pluralize = po.PluralSelectorForLanguage(locale)
	}
	if pluralize == nil {
		return nil, fmt.Errorf("%s: Plural-Forms must be specified", locale)
	}

	var msgs = make(map[string]po.Message)
	for _, msg := range file.Messages {
		if msg.Id == "" {
			continue
		}
		msgs[msg.Id] = msg
	}
	return &Catalog{locale, msgs, pluralize}, nil
}

// Locale returns the locale this catalog was loaded for.
func (c *Catalog) Locale() string {
	if c == nil {
		return ""
	}
	return c.locale
}

// Translate returns the translation of msgid, or msgid if it has none.
func (c *Catalog) Translate(msgid string) string {
	return c.TranslatePlural(msgid, 1)
}

// TranslatePlural returns the form of the translation of msgid that is used
// for a count of n.  For an untranslated message, msgid is returned.
func (c *Catalog) TranslatePlural(msgid string, n int) string {
	if c == nil {
		return msgid
	}
	var msg, ok = c.messages[msgid]
	if !ok || len(msg.Str) == 0 {
		return msgid
	}
	var idx = 0
	if msg.IdPlural != "" {
		idx = c.pluralize(n)
	}
	if idx < 0 || idx >= len(msg.Str) || msg.Str[idx] == "" {
		return msgid
	}
	return msg.Str[idx]
}

// Lambda returns a lambda that translates the raw text of its section.
func (c *Catalog) Lambda() data.Lambda {
	return c.Translate
}

// Plural returns a lambda that translates the raw text of its section using
// the plural form for n.
func (c *Catalog) Plural(n int) data.Lambda {
	return func(text string) string {
		return c.TranslatePlural(text, n)
	}
}
