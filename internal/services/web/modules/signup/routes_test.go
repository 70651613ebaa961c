package signup

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/snapgram/web/internal/services/web/platform/requestmeta"
	"github.com/snapgram/web/internal/services/web/routepath"
)

func TestRegisterRoutesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, handlers{})
}

func TestRegisterRoutesServesSignUpPaths(t *testing.T) {
	t.Parallel()

	tokens, err := newFormTokens([]byte("secret"), 0, nil)
	if err != nil {
		t.Fatalf("newFormTokens() error = %v", err)
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(nil, newFormStore(0, nil), tokens, requestmeta.SchemePolicy{}))

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{method: http.MethodGet, path: routepath.SignUp, want: http.StatusOK},
		{method: http.MethodHead, path: routepath.SignUp, want: http.StatusOK},
		{method: http.MethodPost, path: routepath.SignUpValidate, want: http.StatusForbidden},
		{method: http.MethodPost, path: routepath.SignUpFocus, want: http.StatusForbidden},
		{method: http.MethodGet, path: routepath.SignUpPrefix + "other", want: http.StatusNotFound},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
		if rr.Code != tc.want {
			t.Fatalf("%s %s status = %d, want %d", tc.method, tc.path, rr.Code, tc.want)
		}
	}
}
