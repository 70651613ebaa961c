// Package home serves the landing route reached after sign-up, the health
// probe and the not-found page.
package home

import (
	"net/http"

	"github.com/snapgram/web/internal/services/web/module"
	"github.com/snapgram/web/internal/services/web/platform/requestmeta"
	"github.com/snapgram/web/internal/services/web/routepath"
)

// Option configures a home module.
type Option func(*Module)

// WithHealth sets the check reported by the health probe.
func WithHealth(check func() bool) Option {
	return func(m *Module) { m.healthy = check }
}

// WithSchemePolicy sets the request scheme policy for cookie handling.
func WithSchemePolicy(p requestmeta.SchemePolicy) Option {
	return func(m *Module) { m.requestMeta = p }
}

// Module provides the root routes.
type Module struct {
	healthy     func() bool
	requestMeta requestmeta.SchemePolicy
}

// New returns a home module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires the root route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.healthy, m.requestMeta))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
