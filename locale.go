package sapling

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Localizer translates a key into display text.
// What happens for an unknown key is up to the implementation.
type Localizer interface {
	Localize(key string) string
}

// LocalizerFunc adapts a function to Localizer.
type LocalizerFunc func(key string) string

// Localize calls f.
func (f LocalizerFunc) Localize(key string) string { return f(key) }

// Table is a Localizer backed by a map. Unknown keys are returned unchanged.
type Table map[string]string

// Localize implements Localizer.
func (t Table) Localize(key string) string {
	if s, ok := t[key]; ok {
		return s
	}
	return key
}

// CatalogLocalizer resolves keys through a golang.org/x/text message catalog
// for a single language. Unknown keys are returned unchanged.
type CatalogLocalizer struct {
	tag     language.Tag
	printer *message.Printer
	known   map[string]struct{}
}

// NewCatalogLocalizer builds a catalog for tag from the given key/message
// pairs. Messages are literal text; '%' needs no escaping.
func NewCatalogLocalizer(tag language.Tag, entries map[string]string) (*CatalogLocalizer, error) {
	b := catalog.NewBuilder(catalog.Fallback(tag))
	known := make(map[string]struct{}, len(entries))
	for key, msg := range entries {
		if err := b.SetString(tag, key, strings.ReplaceAll(msg, "%", "%%")); err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", key, err)
		}
		known[key] = struct{}{}
	}
	return &CatalogLocalizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b)),
		known:   known,
	}, nil
}

// Tag returns the catalog language.
func (c *CatalogLocalizer) Tag() language.Tag { return c.tag }

// Localize implements Localizer.
func (c *CatalogLocalizer) Localize(key string) string {
	if _, ok := c.known[key]; !ok {
		return key
	}
	return c.printer.Sprintf(key)
}

var defaultLocalizer Localizer = Table{}

// SetDefaultLocalizer sets the localizer used by references that have no
// Localizer of their own. nil restores an empty Table.
func SetDefaultLocalizer(l Localizer) {
	if l == nil {
		l = Table{}
	}
	defaultLocalizer = l
}

// DefaultLocalizer returns the package-wide default localizer.
func DefaultLocalizer() Localizer {
	return defaultLocalizer
}
