package i18n

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	messages = newCatalog()
	matcher  = language.NewMatcher(Supported)
)

// Translator renders labels for one language
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New creates a translator for the given language tag
func New(tag language.Tag) *Translator {
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(messages)),
	}
}

// Lang returns the base language code, e.g. "vi"
func (t *Translator) Lang() string {
	base, _ := t.tag.Base()
	return base.String()
}

// Text returns the localized label, formatting any arguments into it
func (t *Translator) Text(label Label, args ...interface{}) string {
	return t.printer.Sprintf(string(label), args...)
}

// All returns every plain label keyed by its English text
func (t *Translator) All() map[string]string {
	out := make(map[string]string, len(Labels))
	for _, label := range Labels {
		out[string(label)] = t.Text(label)
	}
	return out
}

// Match negotiates the best supported language for an Accept-Language header
// or a bare language code. Unparseable input yields the fallback.
func Match(preference string, fallback language.Tag) language.Tag {
	preference = strings.TrimSpace(preference)
	if preference == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(preference)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	return Supported[index]
}

// ParseTag resolves a configured locale to a supported language
func ParseTag(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", s, err)
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Und, fmt.Errorf("unsupported locale: %s", s)
	}
	return Supported[index], nil
}

// FormatAmount renders a monetary amount in whole thousands, e.g. "1,250k".
// Halves round away from zero.
func FormatAmount(amount decimal.Decimal) string {
	return humanize.Comma(amount.Round(0).IntPart()) + "k"
}
