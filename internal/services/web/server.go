package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/snapgram/web/internal/platform/timeouts"
	webapp "github.com/snapgram/web/internal/services/web/app"
	"github.com/snapgram/web/internal/services/web/modules"
	"github.com/snapgram/web/internal/services/web/modules/signup"
	"github.com/snapgram/web/internal/services/web/platform/requestmeta"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// GraphQLURL is the account service endpoint. Sign-up reports the service
	// as unavailable when it is empty.
	GraphQLURL     string
	GraphQLTimeout time.Duration
	// FormSecret signs form tokens. A random secret is generated per process
	// when it is empty, so forms do not survive restarts.
	FormSecret          string
	FormTTL             time.Duration
	TrustForwardedProto bool
	// AccountGateway replaces the GraphQL gateway when set.
	AccountGateway signup.AccountGateway
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root HTTP handler with every module mounted.
func NewHandler(config Config) (http.Handler, error) {
	gateway := config.AccountGateway
	if gateway == nil {
		timeout := config.GraphQLTimeout
		if timeout <= 0 {
			timeout = timeouts.GraphQLRequest
		}
		gateway = signup.NewGraphQLGateway(strings.TrimSpace(config.GraphQLURL), &http.Client{Timeout: timeout})
	}
	var secret []byte
	if s := strings.TrimSpace(config.FormSecret); s != "" {
		secret = []byte(s)
	}
	handler, err := webapp.BuildRootHandler(webapp.Config{
		Modules: modules.DefaultModules(modules.Dependencies{
			AccountGateway: gateway,
			RequestMeta:    requestmeta.SchemePolicy{TrustForwardedProto: config.TrustForwardedProto},
			FormSecret:     secret,
			FormTTL:        config.FormTTL,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	return handler, nil
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if strings.TrimSpace(config.GraphQLURL) == "" && config.AccountGateway == nil {
		log.Printf("account graphql url not configured, sign-up runs in degraded mode")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, err
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops the HTTP server immediately.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		log.Printf("close http server: %v", err)
	}
}
