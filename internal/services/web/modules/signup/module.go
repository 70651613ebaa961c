// Package signup serves the sign-up form and submits new accounts to the
// account service.
package signup

import (
	"log"
	"net/http"
	"time"

	"github.com/snapgram/web/internal/services/web/module"
	"github.com/snapgram/web/internal/services/web/platform/requestmeta"
	"github.com/snapgram/web/internal/services/web/routepath"
)

// Option configures a sign-up module.
type Option func(*Module)

// WithGateway sets the account gateway.
func WithGateway(g AccountGateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithSchemePolicy sets the request scheme policy for cookie handling.
func WithSchemePolicy(p requestmeta.SchemePolicy) Option {
	return func(m *Module) { m.requestMeta = p }
}

// WithFormSecret sets the key that signs form tokens.
func WithFormSecret(secret []byte) Option {
	return func(m *Module) { m.formSecret = secret }
}

// WithFormTTL sets how long an idle form session lives.
func WithFormTTL(ttl time.Duration) Option {
	return func(m *Module) { m.formTTL = ttl }
}

// WithClock overrides the time source for form expiry.
func WithClock(now func() time.Time) Option {
	return func(m *Module) { m.now = now }
}

// Module provides the sign-up routes.
type Module struct {
	gateway     AccountGateway
	requestMeta requestmeta.SchemePolicy
	formSecret  []byte
	formTTL     time.Duration
	now         func() time.Time
}

// New returns a sign-up module configured by the given options.
// Without a gateway the module starts in degraded mode.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "signup" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires sign-up route handlers.
func (m Module) Mount() (module.Mount, error) {
	if len(m.formSecret) == 0 {
		log.Printf("signup form secret not configured, tokens will not survive a restart")
	}
	tokens, err := newFormTokens(m.formSecret, m.formTTL, m.now)
	if err != nil {
		return module.Mount{}, err
	}
	mux := http.NewServeMux()
	h := newHandlers(m.gateway, newFormStore(m.formTTL, m.now), tokens, m.requestMeta)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.SignUpPrefix, Handler: mux}, nil
}
