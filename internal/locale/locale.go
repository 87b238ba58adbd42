// Package locale translates weekday and month names shown by the picker.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/hy4ri/calpicker/internal/calendar"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Default is the language used when none is configured.
const Default = "en"

// Translator resolves calendar names for one language.
type Translator struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// Bundle holds every embedded translation.
type Bundle struct {
	bundle *i18n.Bundle
	langs  []string
}

// LoadBundle reads the embedded locale files.
func LoadBundle() (*Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read locales: %w", err)
	}

	var langs []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			return nil, fmt.Errorf("failed to load locale %s: %w", name, err)
		}
		langs = append(langs, strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json"))
	}

	return &Bundle{bundle: bundle, langs: langs}, nil
}

// Languages lists the language codes with a translation file.
func (b *Bundle) Languages() []string {
	out := make([]string, len(b.langs))
	copy(out, b.langs)
	return out
}

// Translator returns a translator for lang. Unknown or malformed tags fall
// back to English.
func (b *Bundle) Translator(lang string) *Translator {
	tag, err := ParseTag(lang)
	if err != nil {
		slog.Warn("unknown locale, using default",
			"component", "locale",
			"locale", lang,
			"error", err,
		)
		tag = language.English
	}
	return &Translator{
		tag:       tag,
		localizer: i18n.NewLocalizer(b.bundle, tag.String()),
	}
}

// ParseTag validates a BCP 47 language tag. An empty string is Default.
func ParseTag(lang string) (language.Tag, error) {
	if strings.TrimSpace(lang) == "" {
		lang = Default
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", lang, err)
	}
	return tag, nil
}

// Tag returns the requested language.
func (t *Translator) Tag() language.Tag {
	return t.tag
}

// Weekdays returns localized weekday names, Sunday first.
func (t *Translator) Weekdays(set calendar.LabelSet) calendar.DayOfWeek {
	fallback := calendar.DefaultLabels(set)
	kind := "short"
	if set == calendar.Expanded {
		kind = "long"
	}

	var out calendar.DayOfWeek
	for i := range out {
		out[i] = t.lookup("weekday."+kind+"."+strconv.Itoa(i), fallback[i])
	}
	return out
}

// ShortMonth returns the abbreviated month name.
func (t *Translator) ShortMonth(m time.Month) string {
	return t.lookup("month.short."+strconv.Itoa(int(m)), m.String()[:3])
}

// MonthYear returns a page title such as "Jan, 2024".
func (t *Translator) MonthYear(m time.Month, year int) string {
	return t.ShortMonth(m) + ", " + strconv.Itoa(year)
}

func (t *Translator) lookup(id, fallback string) string {
	if t == nil || t.localizer == nil {
		return fallback
	}
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if msg == "" {
		slog.Debug("missing translation",
			"component", "locale",
			"key", id,
			"error", err,
		)
		return fallback
	}
	return msg
}
