// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	flashnotice "github.com/snapgram/web/internal/services/web/platform/flash"
	"github.com/snapgram/web/internal/services/web/platform/httpx"
	webi18n "github.com/snapgram/web/internal/services/web/platform/i18n"
	"github.com/snapgram/web/internal/services/web/platform/requestmeta"
	webtemplates "github.com/snapgram/web/internal/services/web/templates"
)

// PublicPage describes a full-page response rendered inside the auth layout.
type PublicPage struct {
	// Title is the page name; the layout appends the brand.
	Title           string
	MetaDescription string
	StatusCode      int
	Body            templ.Component
	RefreshSeconds  int
	// SchemePolicy marks the flash cookie clear Secure like the module's other cookies.
	SchemePolicy requestmeta.SchemePolicy
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePublicPage renders page inside the auth layout, consuming any pending
// flash notice into a toast.
func WritePublicPage(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer, lang string, page PublicPage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = emptyComponent{}
	}
	metaDescription := strings.TrimSpace(page.MetaDescription)
	if metaDescription == "" {
		metaDescription = webtemplates.T(loc, "layout.meta_description")
	}
	layout := webtemplates.AuthLayout(webtemplates.PageContext{
		Title:           webtemplates.T(loc, "layout.title", page.Title),
		MetaDescription: metaDescription,
		Lang:            lang,
		Loc:             loc,
		Languages:       webi18n.LanguageOptions(r, lang),
		Toast:           resolveFlashToast(w, r, loc, flashnotice.Jar{Policy: page.SchemePolicy}),
		RefreshSeconds:  page.RefreshSeconds,
	})

	var buf bytes.Buffer
	if err := layout.Render(templ.WithChildren(httpx.RequestContext(r), body), &buf); err != nil {
		log.Printf("render page failed path=%s err=%v", requestPath(r), err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return err
	}
	return httpx.WriteHTML(w, statusCode, buf.String())
}

// WriteFragment renders a component without the document shell, for HTMX swaps.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if fragment == nil {
		fragment = emptyComponent{}
	}
	var buf bytes.Buffer
	if err := fragment.Render(httpx.RequestContext(r), &buf); err != nil {
		log.Printf("render fragment failed path=%s err=%v", requestPath(r), err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return err
	}
	return httpx.WriteHTML(w, statusCode, buf.String())
}

func resolveFlashToast(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer, jar flashnotice.Jar) *webtemplates.AppToast {
	notice, ok := jar.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	message := strings.TrimSpace(webtemplates.T(loc, notice.Key))
	if message == "" {
		message = strings.TrimSpace(notice.Key)
	}
	if message == "" {
		return nil
	}
	return &webtemplates.AppToast{
		Kind:    string(notice.Kind),
		Message: message,
	}
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return "-"
	}
	return r.URL.Path
}
