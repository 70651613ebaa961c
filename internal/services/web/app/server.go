package app

import (
	"net/http"

	"github.com/snapgram/web/internal/services/web/platform/httpx"
)

// BuildRootHandler composes the root mux and wraps it in the shared
// middleware chain.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	root, err := Compose(ComposeInput{Modules: cfg.Modules})
	if err != nil {
		return nil, err
	}
	if cfg.DisableMiddleware {
		return root, nil
	}
	return httpx.Chain(root, httpx.RequestID(), httpx.AccessLog(), httpx.RecoverPanic()), nil
}
