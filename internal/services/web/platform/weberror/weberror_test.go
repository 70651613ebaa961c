package weberror

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/snapgram/web/internal/services/web/platform/errors"
	webi18n "github.com/snapgram/web/internal/services/web/platform/i18n"
	"golang.org/x/text/language"
)

func TestWriteModuleErrorRendersAppErrorPageForNotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.E(apperrors.KindNotFound, "missing"))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="app-error-state"`) {
		t.Fatalf("body missing app error state marker: %q", body)
	}
	if !strings.Contains(body, "<title>Page not found | Snapgram</title>") {
		t.Fatalf("body missing localized title: %q", body)
	}
}

func TestWriteModuleErrorWritesPlainTextForBadRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/sign-up", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.E(apperrors.KindInvalidInput, "bad form"))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	body := rr.Body.String()
	if !strings.Contains(body, http.StatusText(http.StatusBadRequest)) {
		t.Fatalf("body = %q, want generic bad-request message", body)
	}
	if strings.Contains(body, "bad form") {
		t.Fatalf("body leaked internal error text: %q", body)
	}
}

func TestWriteAppErrorRendersFragmentForHTMX(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	WriteAppError(rr, req, http.StatusServiceUnavailable)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	body := rr.Body.String()
	if strings.Contains(strings.ToLower(body), "<html") {
		t.Fatalf("htmx error should be a fragment: %q", body)
	}
	if !strings.Contains(body, `id="app-error-state"`) {
		t.Fatalf("body missing app error state marker: %q", body)
	}
}

func TestWriteAppErrorNormalizesStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteAppError(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusTeapot)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestPublicMessagePrefersLocalizedKey(t *testing.T) {
	t.Parallel()

	loc := webi18n.Printer(language.AmericanEnglish)
	err := apperrors.Wrap(apperrors.KindUnavailable, "signup.error.unavailable", "create account", http.ErrHandlerTimeout)
	if got := PublicMessage(loc, err); got != "We could not reach the server. Please try again." {
		t.Fatalf("PublicMessage() = %q", got)
	}
	if got := PublicMessage(loc, apperrors.E(apperrors.KindConflict, "busy")); got != http.StatusText(http.StatusConflict) {
		t.Fatalf("PublicMessage(conflict) = %q", got)
	}
	if got := PublicMessage(loc, nil); got != "" {
		t.Fatalf("PublicMessage(nil) = %q, want empty", got)
	}
}
