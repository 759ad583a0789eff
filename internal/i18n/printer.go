package i18n

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DefaultLocale is used when the configured locale is empty or unsupported.
const DefaultLocale = "pt-BR"

var (
	supported = []language.Tag{language.BrazilianPortuguese, language.AmericanEnglish}
	matcher   = language.NewMatcher(supported)
	messages  = map[language.Tag]map[string]string{
		language.BrazilianPortuguese: ptBR,
		language.AmericanEnglish:     enUS,
	}
	defaultCatalog = mustBuildCatalog()
)

// Printer renders message keys for one locale.
type Printer struct {
	tag     language.Tag
	printer *message.Printer
}

// NewPrinter picks the closest supported locale for the given BCP 47 tag.
func NewPrinter(locale string) *Printer {
	tag := Match(locale)
	return &Printer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(defaultCatalog)),
	}
}

// Match returns the supported tag closest to locale, or the default one.
func Match(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return supported[0]
	}
	desired, err := language.Parse(locale)
	if err != nil {
		return supported[0]
	}
	_, idx, confidence := matcher.Match(desired)
	if confidence == language.No {
		return supported[0]
	}
	return supported[idx]
}

// Locale reports the resolved locale tag.
func (p *Printer) Locale() string {
	return p.tag.String()
}

func (p *Printer) sprintf(key string, args ...any) string {
	return p.printer.Sprintf(key, args...)
}

func (p *Printer) Fprintf(w io.Writer, key string, args ...any) {
	_, _ = p.printer.Fprintf(w, key, args...)
}

// Locales lists the supported locale tags.
func Locales() []string {
	out := make([]string, 0, len(supported))
	for _, tag := range supported {
		out = append(out, tag.String())
	}
	return out
}

// messageKeys lists every message key defined for the default locale.
func messageKeys() []string {
	keys := make([]string, 0, len(ptBR))
	for key := range ptBR {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func mustBuildCatalog() *catalog.Builder {
	b, err := buildCatalog(messages)
	if err != nil {
		panic(err)
	}
	return b
}

func buildCatalog(byTag map[language.Tag]map[string]string) (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(supported[0]))
	for tag, msgs := range byTag {
		keys := make([]string, 0, len(msgs))
		for key := range msgs {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := b.SetString(tag, key, msgs[key]); err != nil {
				return nil, fmt.Errorf("register %s %q: %w", tag, key, err)
			}
		}
	}
	return b, nil
}
