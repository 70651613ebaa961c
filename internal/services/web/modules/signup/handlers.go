package signup

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	apperrors "github.com/snapgram/web/internal/services/web/platform/errors"
	flashnotice "github.com/snapgram/web/internal/services/web/platform/flash"
	"github.com/snapgram/web/internal/services/web/platform/httpx"
	webi18n "github.com/snapgram/web/internal/services/web/platform/i18n"
	"github.com/snapgram/web/internal/services/web/platform/pagerender"
	"github.com/snapgram/web/internal/services/web/platform/requestmeta"
	"github.com/snapgram/web/internal/services/web/platform/weberror"
	webtemplates "github.com/snapgram/web/internal/services/web/templates"
)

const (
	formCookieName     = "sg_signup"
	formTokenField     = "form_token"
	focusFieldParam    = "field"
	htmxTriggerName    = "HX-Trigger-Name"
	maxFormBytes       = 64 << 10
	busyRefreshSeconds = 2
)

var (
	errCrossOrigin = apperrors.E(apperrors.KindForbidden, "cross-origin form post")
	errFormExpired = errors.New("sign-up form expired")
)

type handlers struct {
	gateway AccountGateway
	forms   *formStore
	tokens  formTokens
	policy  requestmeta.SchemePolicy
}

func newHandlers(gateway AccountGateway, forms *formStore, tokens formTokens, policy requestmeta.SchemePolicy) handlers {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return handlers{gateway: gateway, forms: forms, tokens: tokens, policy: policy}
}

// formSession is the controller bound to the current browser.
type formSession struct {
	id         string
	token      string
	controller *Controller
}

func (h handlers) handleSignUpPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	session, err := h.resumeForm(w, r)
	if err != nil {
		log.Printf("signup start form failed err=%v", err)
		weberror.WriteModuleError(w, r, err)
		return
	}
	if intent, ok := session.controller.TakeIntent(); ok {
		h.forms.delete(session.id)
		h.navigate(w, r, intent)
		return
	}
	h.writePage(w, r, loc, lang, session, http.StatusOK)
}

func (h handlers) handleSignUpSubmit(w http.ResponseWriter, r *http.Request) {
	if !h.acceptPost(w, r) {
		return
	}
	loc, lang := webi18n.ResolveLocalizer(w, r)

	session, err := h.postedForm(r)
	if err != nil {
		// Never submit on behalf of an unverified form; start over with the
		// posted values so nothing typed is lost.
		fresh, startErr := h.startForm(w, r)
		if startErr != nil {
			log.Printf("signup start form failed err=%v", startErr)
			weberror.WriteModuleError(w, r, startErr)
			return
		}
		applyValues(fresh.controller, r.PostForm)
		fresh.controller.expire()
		h.writePage(w, r, loc, lang, fresh, http.StatusForbidden)
		return
	}
	if session.controller == nil {
		fresh, startErr := h.startForm(w, r)
		if startErr != nil {
			log.Printf("signup start form failed err=%v", startErr)
			weberror.WriteModuleError(w, r, startErr)
			return
		}
		session = fresh
	}

	applyValues(session.controller, r.PostForm)
	result, err := session.controller.Submit(r.Context(), h.gateway)
	status := http.StatusOK
	switch result {
	case SubmitSucceeded:
		// The form holds the password; drop it as soon as the account exists.
		intent, _ := session.controller.TakeIntent()
		h.forms.delete(session.id)
		h.navigate(w, r, intent)
		return
	case SubmitInvalid, SubmitRejected:
		status = http.StatusUnprocessableEntity
	case SubmitDropped, SubmitStale:
		status = http.StatusConflict
	case SubmitUnavailable:
		log.Printf("signup create account failed form=%s err=%v status=%d", session.id, err, apperrors.HTTPStatus(err))
		status = http.StatusServiceUnavailable
	}
	h.writePage(w, r, loc, lang, session, status)
}

func (h handlers) handleValidate(w http.ResponseWriter, r *http.Request) {
	if !h.acceptPost(w, r) {
		return
	}
	session, ok := h.liveForm(w, r)
	if !ok {
		return
	}
	applyValues(session.controller, r.PostForm)
	h.writeState(w, r, session)
}

func (h handlers) handleFocus(w http.ResponseWriter, r *http.Request) {
	if !h.acceptPost(w, r) {
		return
	}
	session, ok := h.liveForm(w, r)
	if !ok {
		return
	}
	field := strings.TrimSpace(r.Header.Get(htmxTriggerName))
	if field == "" {
		field = strings.TrimSpace(r.PostForm.Get(focusFieldParam))
	}
	session.controller.Focus(Field(field))
	h.writeState(w, r, session)
}

// acceptPost rejects cross-origin posts and parses the form body.
func (h handlers) acceptPost(w http.ResponseWriter, r *http.Request) bool {
	if requestmeta.IsCrossOriginWithPolicy(r, h.policy) {
		weberror.WriteModuleError(w, r, errCrossOrigin)
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
			return false
		}
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "", "parse sign-up form", err))
		return false
	}
	return true
}

// postedForm verifies the posted token against the form cookie. A verified
// token whose session is gone yields a session without a controller.
func (h handlers) postedForm(r *http.Request) (formSession, error) {
	token := strings.TrimSpace(r.PostForm.Get(formTokenField))
	cookie, err := r.Cookie(formCookieName)
	if err != nil || cookie.Value != token {
		return formSession{}, errInvalidFormToken
	}
	formID, err := h.tokens.verify(token)
	if err != nil {
		return formSession{}, err
	}
	controller, _ := h.forms.get(formID)
	return formSession{id: formID, token: token, controller: controller}, nil
}

// liveForm resolves the session for fragment endpoints, answering 403 when it
// cannot.
func (h handlers) liveForm(w http.ResponseWriter, r *http.Request) (formSession, bool) {
	session, err := h.postedForm(r)
	if err == nil && session.controller == nil {
		err = errFormExpired
	}
	if err != nil {
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindForbidden, "", "resolve sign-up form", err))
		return formSession{}, false
	}
	return session, true
}

// resumeForm returns the session named by the form cookie or starts one.
func (h handlers) resumeForm(w http.ResponseWriter, r *http.Request) (formSession, error) {
	if cookie, err := r.Cookie(formCookieName); err == nil {
		if formID, err := h.tokens.verify(cookie.Value); err == nil {
			if controller, ok := h.forms.get(formID); ok {
				return formSession{id: formID, token: cookie.Value, controller: controller}, nil
			}
		}
	}
	return h.startForm(w, r)
}

func (h handlers) startForm(w http.ResponseWriter, r *http.Request) (formSession, error) {
	formID, controller, err := h.forms.create()
	if err != nil {
		return formSession{}, err
	}
	token, err := h.tokens.issue(formID)
	if err != nil {
		h.forms.delete(formID)
		return formSession{}, err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     formCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, h.policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.tokens.ttl.Seconds()),
	})
	return formSession{id: formID, token: token, controller: controller}, nil
}

func (h handlers) clearFormCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     formCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, h.policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// navigate performs a navigation intent: the notice rides the flash cookie to
// the destination, which renders it once.
func (h handlers) navigate(w http.ResponseWriter, r *http.Request, intent NavigationIntent) {
	flashnotice.Jar{Policy: h.policy}.Write(w, r, flashnotice.NoticeSuccess(intent.MessageKey))
	h.clearFormCookie(w, r)
	httpx.WriteRedirect(w, r, routeFor(intent.Route))
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer, lang string, session formSession, status int) {
	view := session.controller.View()
	refresh := 0
	if view.Busy {
		refresh = busyRefreshSeconds
	}
	w.Header().Set("Cache-Control", "no-store")
	_ = pagerender.WritePublicPage(w, r, loc, lang, pagerender.PublicPage{
		Title:           webtemplates.T(loc, "signup.title"),
		MetaDescription: webtemplates.T(loc, "signup.subtitle"),
		StatusCode:      status,
		Body:            webtemplates.SignUpPage(mapSignUpView(view, session.token, loc)),
		RefreshSeconds:  refresh,
		SchemePolicy:    h.policy,
	})
}

func (h handlers) writeState(w http.ResponseWriter, r *http.Request, session formSession) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	view := session.controller.View()
	w.Header().Set("Cache-Control", "no-store")
	_ = pagerender.WriteFragment(w, r, http.StatusOK, webtemplates.SignUpState(mapSignUpView(view, session.token, loc)))
}

// applyValues turns posted fields into change events.
func applyValues(controller *Controller, form url.Values) {
	for _, field := range inputFields {
		values, ok := form[string(field)]
		if !ok || len(values) == 0 {
			continue
		}
		controller.Change(field, values[0])
	}
}
