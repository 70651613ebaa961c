// Package i18n resolves the request language and prints catalog messages for
// web pages.
package i18n

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "sg_lang"
)

// Localizer prints catalog messages for one language.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

var supported = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

// Supported returns the supported language tags, default first.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supported))
	copy(tags, supported)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return supported[0]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ParseTag parses value and maps it onto a supported tag by base language.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return Default(), false
	}
	return match(tag)
}

// MatchTags returns the first supported tag in preference order.
func MatchTags(tags []language.Tag) language.Tag {
	for _, tag := range tags {
		if matched, ok := match(tag); ok {
			return matched
		}
	}
	return Default()
}

func match(tag language.Tag) (language.Tag, bool) {
	base, confidence := tag.Base()
	if confidence == language.No {
		return Default(), false
	}
	for _, candidate := range supported {
		candidateBase, _ := candidate.Base()
		if candidateBase == base {
			return candidate, true
		}
	}
	return Default(), false
}

// ResolveTag determines the language for the request: query param, then
// cookie, then Accept-Language. The bool reports whether the query param
// selected it and should be persisted.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}
	if r.URL != nil {
		if tag, ok := ParseTag(r.URL.Query().Get(LangParam)); ok {
			return tag, true
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return MatchTags(tags), false
		}
	}
	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer resolves the request language, persists an explicit choice,
// and returns a printer with the language tag string.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return Printer(tag), tag.String()
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// LanguageOptions lists the supported languages for the switcher, with links
// that keep the current path and query.
func LanguageOptions(r *http.Request, active string) []LanguageOption {
	path := "/"
	query := ""
	if r != nil && r.URL != nil {
		path = r.URL.Path
		query = r.URL.RawQuery
	}
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  languageLabel(tag),
			URL:    languageURL(path, query, tag.String()),
			Active: tag.String() == active,
		})
	}
	return options
}

func languageLabel(tag language.Tag) string {
	if tag == language.BrazilianPortuguese {
		return "PT-BR"
	}
	return "EN"
}

func languageURL(path string, rawQuery string, tag string) string {
	if strings.TrimSpace(path) == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return path + "?" + LangParam + "=" + tag
	}
	query.Set(LangParam, tag)
	return path + "?" + query.Encode()
}
