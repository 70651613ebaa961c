package templates

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate

import (
	"strconv"

	webi18n "github.com/snapgram/web/internal/services/web/platform/i18n"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// PageContext provides shared layout context for public pages.
type PageContext struct {
	Title           string
	MetaDescription string
	Lang            string
	Loc             Localizer
	Languages       []webi18n.LanguageOption
	Toast           *AppToast
	// RefreshSeconds asks the browser to reload the page while a request is in flight.
	RefreshSeconds int
}

func (p PageContext) lang() string {
	if p.Lang == "" {
		return webi18n.Default().String()
	}
	return p.Lang
}

func (p PageContext) refresh() string {
	return strconv.Itoa(p.RefreshSeconds)
}

// AppToast is a one-shot notice rendered at the top of the page.
type AppToast struct {
	Kind    string
	Message string
}

func (t *AppToast) visible() bool {
	return t != nil && t.Message != ""
}

func (t *AppToast) className() string {
	if t.Kind == "" {
		return "toast toast-info"
	}
	return "toast toast-" + t.Kind
}
