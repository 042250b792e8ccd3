// Package i18n provides the read-time display translator. It loads the
// compiled catalogs the generator writes and resolves request locales
// against the configured language list.
package i18n

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"

	"oneplace/translation/internal/logger"
)

type Translator struct {
	dir       string
	languages []string

	matcher language.Matcher
	// matched holds the configured codes in matcher tag order, so the
	// match index maps straight back to a code, e.g. "de-DE" -> "de_DE".
	matched []string

	mu       sync.RWMutex
	catalogs map[string]*gotext.Mo
}

// New builds a translator over dir for the configured language codes.
// Codes use gettext underscore form ("de_DE"); request values in
// hyphenated BCP 47 form are matched onto them.
func New(dir string, languages []string) *Translator {
	tags := make([]language.Tag, 0, len(languages))
	matched := make([]string, 0, len(languages))

	for _, code := range languages {
		t, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
		if err != nil {
			logger.Warn("skipping invalid language code", "module", "i18n", "language", code, "error", err)
			continue
		}
		tags = append(tags, t)
		matched = append(matched, code)
	}

	var matcher language.Matcher
	if len(tags) > 0 {
		matcher = language.NewMatcher(tags)
	}

	return &Translator{
		dir:       dir,
		languages: languages,
		matcher:   matcher,
		matched:   matched,
		catalogs:  make(map[string]*gotext.Mo),
	}
}

// Resolve maps a requested locale onto a configured language code.
// Unknown or empty values fall back to the first configured language.
func (t *Translator) Resolve(requested string) string {
	if requested == "" {
		return t.fallback()
	}
	for _, code := range t.languages {
		if code == requested {
			return code
		}
	}
	if t.matcher == nil {
		return t.fallback()
	}
	// The returned tag can carry pieces of the request; the index is the
	// reliable way back to a configured code.
	_, idx := language.MatchStrings(t.matcher, strings.ReplaceAll(requested, "_", "-"))
	if idx >= 0 && idx < len(t.matched) {
		return t.matched[idx]
	}
	return t.fallback()
}

func (t *Translator) fallback() string {
	if len(t.languages) == 0 {
		return "en_US"
	}
	return t.languages[0]
}

// Translate returns the catalog translation of s for lang, or s itself
// when no catalog or no entry exists.
func (t *Translator) Translate(lang, s string) string {
	if s == "" {
		return s
	}

	mo := t.catalog(lang)
	if mo == nil {
		return s
	}
	return mo.Get(s)
}

// Invalidate drops the cached catalog for lang so the next lookup
// re-reads the compiled file. Called after catalog regeneration.
func (t *Translator) Invalidate(lang string) {
	t.mu.Lock()
	delete(t.catalogs, lang)
	t.mu.Unlock()
}

func (t *Translator) catalog(lang string) *gotext.Mo {
	t.mu.RLock()
	mo, ok := t.catalogs[lang]
	t.mu.RUnlock()
	if ok {
		return mo
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if mo, ok := t.catalogs[lang]; ok {
		return mo
	}

	path := filepath.Join(t.dir, lang+".mo")
	if _, err := os.Stat(path); err != nil {
		// Missing catalogs are expected before first generation.
		t.catalogs[lang] = nil
		return nil
	}

	mo = gotext.NewMo()
	mo.ParseFile(path)
	t.catalogs[lang] = mo

	logger.Debug("loaded catalog", "module", "i18n", "language", lang, "path", path)
	return mo
}
