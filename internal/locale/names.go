// Package locale renders enum values and quantities for the console in the
// configured display language.
package locale

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/glavblock/glavblock/internal/data"
)

var supported = []language.Tag{language.English, language.Russian}

var matcher = language.NewMatcher(supported)

// Names turns enum values into display strings.
type Names struct {
	tag     language.Tag
	printer *message.Printer
}

// NewNames builds a printer for lang ("en", "ru", or any BCP 47 tag; the
// closest supported language wins).
func NewNames(lang string) (*Names, error) {
	want, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("display language %q: %w", lang, err)
	}
	_, idx, _ := matcher.Match(want)
	tag := supported[idx]

	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for t, table := range translations {
		for key, msg := range table {
			if err := b.SetString(t, key, msg); err != nil {
				return nil, fmt.Errorf("catalog %s %s: %w", t, key, err)
			}
		}
	}
	return &Names{tag: tag, printer: message.NewPrinter(tag, message.Catalog(b))}, nil
}

// Language is the tag actually in use.
func (n *Names) Language() language.Tag { return n.tag }

func (n *Names) lookup(kind, name string) string {
	key := kind + "." + name
	if out := n.printer.Sprintf(key); out != key {
		return out
	}
	return name
}

func (n *Names) Tier(t data.Tier) string             { return n.lookup("tier", t.String()) }
func (n *Names) Profession(p data.Profession) string { return n.lookup("profession", p.String()) }
func (n *Names) AreaType(a data.AreaType) string     { return n.lookup("area", a.String()) }
func (n *Names) Resource(r data.Resource) string     { return n.lookup("resource", r.String()) }
func (n *Names) Stationary(s data.Stationary) string { return n.lookup("stationary", s.String()) }
func (n *Names) Status(s data.TaskStatus) string     { return n.lookup("status", s.String()) }

func (n *Names) Cohort(c data.Cohort) string {
	return n.Profession(c.Profession) + " " + n.Tier(c.Tier)
}

// Number formats n with the language's digit grouping.
func (n *Names) Number(v int) string { return n.printer.Sprintf("%d", v) }
