package home

import (
	"net/http"

	"github.com/snapgram/web/internal/services/web/platform/httpx"
	webi18n "github.com/snapgram/web/internal/services/web/platform/i18n"
	"github.com/snapgram/web/internal/services/web/platform/pagerender"
	"github.com/snapgram/web/internal/services/web/platform/requestmeta"
	"github.com/snapgram/web/internal/services/web/platform/weberror"
	"github.com/snapgram/web/internal/services/web/routepath"
	webtemplates "github.com/snapgram/web/internal/services/web/templates"
)

const (
	healthOK       = "ok"
	healthDegraded = "degraded"
)

type handlers struct {
	healthy func() bool
	policy  requestmeta.SchemePolicy
}

func newHandlers(healthy func() bool, policy requestmeta.SchemePolicy) handlers {
	return handlers{healthy: healthy, policy: policy}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	_ = pagerender.WritePublicPage(w, r, loc, lang, pagerender.PublicPage{
		Title: webtemplates.T(loc, "home.title"),
		Body: webtemplates.HomePage(webtemplates.HomeView{
			Body:            webtemplates.T(loc, "home.body"),
			BottomCTA:       webtemplates.T(loc, "home.bottom.cta"),
			BottomLinkURL:   routepath.SignUp,
			BottomLinkLabel: webtemplates.T(loc, "home.bottom.link"),
		}),
		SchemePolicy: h.policy,
	})
}

// handleHealth always answers 200 so liveness probes do not restart a
// service that is only missing its account backend; the body says which.
func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	body := healthOK
	if h.healthy != nil && !h.healthy() {
		body = healthDegraded
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		httpx.MethodNotAllowed("GET, HEAD")(w, r)
		return
	}
	weberror.WriteAppError(w, r, http.StatusNotFound)
}
