// Package flash carries one-time notices across a redirect in a cookie.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/snapgram/web/internal/services/web/platform/requestmeta"
)

// CookieName is the cookie holding the pending notice.
const CookieName = "sg_flash"

// Kind classifies notice presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notice references one catalog message to show on the next page.
type Notice struct {
	Kind Kind   `json:"kind"`
	Key  string `json:"key"`
}

// NoticeSuccess creates a success notice for the provided localization key.
func NoticeSuccess(key string) Notice {
	return Notice{Kind: KindSuccess, Key: key}
}

// Jar stores notices in a cookie. Policy decides when the cookie is marked
// Secure, for both writes and clears.
type Jar struct {
	Policy requestmeta.SchemePolicy
}

// Write stores the notice for the next page render. Invalid notices are
// dropped.
func (j Jar) Write(w http.ResponseWriter, r *http.Request, notice Notice) {
	if w == nil {
		return
	}
	value, ok := encode(notice)
	if !ok {
		return
	}
	http.SetCookie(w, j.cookie(r, value, 0))
}

// ReadAndClear returns the pending notice, if any. A present cookie is
// always expired, even when it does not decode, so a notice renders once.
func (j Jar) ReadAndClear(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	if r == nil {
		return Notice{}, false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Notice{}, false
	}
	j.Clear(w, r)
	return decode(cookie.Value)
}

// Clear expires any notice cookie.
func (j Jar) Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, j.cookie(r, "", -1))
}

func (j Jar) cookie(r *http.Request, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, j.Policy),
		SameSite: http.SameSiteLaxMode,
	}
}

func encode(notice Notice) (string, bool) {
	notice, ok := normalize(notice)
	if !ok {
		return "", false
	}
	payload, err := json.Marshal(notice)
	if err != nil {
		return "", false
	}
	return base64.RawURLEncoding.EncodeToString(payload), true
}

func decode(raw string) (Notice, bool) {
	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(raw))
	if err != nil || len(payload) == 0 {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(payload, &notice); err != nil {
		return Notice{}, false
	}
	return normalize(notice)
}

func normalize(notice Notice) (Notice, bool) {
	notice.Key = strings.TrimSpace(notice.Key)
	notice.Kind = Kind(strings.ToLower(strings.TrimSpace(string(notice.Kind))))
	if notice.Key == "" {
		return Notice{}, false
	}
	switch notice.Kind {
	case KindSuccess, KindInfo, KindWarning, KindError:
		return notice, true
	}
	return Notice{}, false
}
