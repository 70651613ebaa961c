// Package requestmeta resolves request scheme and origin facts for cookies and
// cross-origin checks.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how the request scheme is resolved.
//
// X-Forwarded-Proto is only honoured when TrustForwardedProto is set, so the
// header is ignored unless a trusted proxy sits in front of the service.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// IsHTTPSWithPolicy reports whether a request should be treated as HTTPS.
func IsHTTPSWithPolicy(r *http.Request, policy SchemePolicy) bool {
	return scheme(r, policy) == "https"
}

// IsCrossOriginWithPolicy reports whether the request carries an Origin header
// naming a different origin. Requests without Origin are not cross-origin here;
// plain HTML form posts from older browsers omit it.
func IsCrossOriginWithPolicy(r *http.Request, policy SchemePolicy) bool {
	if r == nil {
		return false
	}
	origin := strings.TrimSpace(r.Header.Get("Origin"))
	if origin == "" {
		return false
	}
	return !sameOrigin(r, origin, policy)
}

// HasSameOriginProofWithPolicy reports whether Origin or Referer proves the
// request came from this origin.
func HasSameOriginProofWithPolicy(r *http.Request, policy SchemePolicy) bool {
	if r == nil {
		return false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		return sameOrigin(r, origin, policy)
	}
	if referer := strings.TrimSpace(r.Header.Get("Referer")); referer != "" {
		return sameOrigin(r, referer, policy)
	}
	return false
}

func sameOrigin(r *http.Request, raw string, policy SchemePolicy) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	wantScheme := scheme(r, policy)
	wantHost, wantPort := hostParts(r.Host)
	if wantHost == "" && r.URL != nil {
		wantHost, wantPort = hostParts(r.URL.Host)
	}
	if wantHost == "" {
		return false
	}
	if wantPort == "" {
		wantPort = defaultPort(wantScheme)
	}

	gotScheme := strings.ToLower(strings.TrimSpace(parsed.Scheme))
	if gotScheme == "" || gotScheme != wantScheme {
		return false
	}
	if strings.ToLower(parsed.Hostname()) != wantHost {
		return false
	}
	gotPort := strings.TrimSpace(parsed.Port())
	if gotPort == "" {
		gotPort = defaultPort(gotScheme)
	}
	return gotPort != "" && gotPort == wantPort
}

func scheme(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedProto {
		if forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded == "http" || forwarded == "https" {
			return forwarded
		}
	}
	if r.URL != nil {
		if s := strings.ToLower(r.URL.Scheme); s == "http" || s == "https" {
			return s
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func defaultPort(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}

func hostParts(rawHost string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(rawHost))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(parsed.Hostname()), parsed.Port()
}
