package signup

import (
	"net/http"

	"github.com/snapgram/web/internal/services/web/platform/httpx"
	"github.com/snapgram/web/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.SignUp, h.handleSignUpPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.SignUp, h.handleSignUpSubmit)
	mux.HandleFunc(http.MethodPost+" "+routepath.SignUpValidate, h.handleValidate)
	mux.HandleFunc(http.MethodPost+" "+routepath.SignUpFocus, h.handleFocus)
	mux.HandleFunc(routepath.SignUp, httpx.MethodNotAllowed("GET, HEAD, POST"))
	mux.HandleFunc(routepath.SignUpValidate, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(routepath.SignUpFocus, httpx.MethodNotAllowed(http.MethodPost))
}
