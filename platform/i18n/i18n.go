// Package i18n provides keyed message template rendering.
// This is part of the platform layer and contains no business logic.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Resolver renders keyed message templates for a fixed language.
type Resolver struct {
	printer *message.Printer
	known   map[string]bool
}

// NewResolver builds a resolver from a key -> template map. Templates use
// fmt verbs for substitution.
func NewResolver(lang language.Tag, messages map[string]string) (*Resolver, error) {
	builder := catalog.NewBuilder(catalog.Fallback(lang))
	known := make(map[string]bool, len(messages))
	for key, tmpl := range messages {
		if err := builder.SetString(lang, key, tmpl); err != nil {
			return nil, err
		}
		known[key] = true
	}

	return &Resolver{
		printer: message.NewPrinter(lang, message.Catalog(builder)),
		known:   known,
	}, nil
}

// Has reports whether a template is registered under key.
func (r *Resolver) Has(key string) bool {
	return r.known[key]
}

// Render substitutes args into the template registered under key. An
// unregistered key is rendered as a literal format string.
func (r *Resolver) Render(key string, args ...interface{}) string {
	return r.printer.Sprintf(key, args...)
}
