// Package web parses web command configuration and runs the web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/snapgram/web/internal/platform/cmd"
	"github.com/snapgram/web/internal/platform/config"
	"github.com/snapgram/web/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"SNAPGRAM_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	GraphQLURL          string        `env:"SNAPGRAM_WEB_GRAPHQL_URL" envDefault:"http://localhost:4000/graphql"`
	GraphQLTimeout      time.Duration `env:"SNAPGRAM_WEB_GRAPHQL_TIMEOUT" envDefault:"10s"`
	FormSecret          string        `env:"SNAPGRAM_WEB_FORM_SECRET"`
	FormTTL             time.Duration `env:"SNAPGRAM_WEB_FORM_TTL" envDefault:"30m"`
	TrustForwardedProto bool          `env:"SNAPGRAM_WEB_TRUST_FORWARDED_PROTO"`
}

// ParseConfig reads environment defaults and then applies flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	return bindFlags(cfg, fs, args)
}

// ParseConfigFrom is ParseConfig with an explicit environment.
func ParseConfigFrom(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	var cfg Config
	if err := config.ParseEnvFrom(&cfg, environ); err != nil {
		return Config{}, err
	}
	return bindFlags(cfg, fs, args)
}

func bindFlags(cfg Config, fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, fmt.Errorf("flag set is required")
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.GraphQLURL, "graphql-url", cfg.GraphQLURL, "Account service GraphQL endpoint")
	fs.DurationVar(&cfg.GraphQLTimeout, "graphql-timeout", cfg.GraphQLTimeout, "Timeout for one GraphQL request")
	fs.DurationVar(&cfg.FormTTL, "form-ttl", cfg.FormTTL, "Idle lifetime of a sign-up form")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Honour X-Forwarded-Proto from a trusted proxy")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.GraphQLTimeout <= 0 {
		return Config{}, fmt.Errorf("graphql timeout must be positive")
	}
	if cfg.FormTTL <= 0 {
		return Config{}, fmt.Errorf("form ttl must be positive")
	}
	return cfg, nil
}

// Run starts the web server under telemetry and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			GraphQLURL:          cfg.GraphQLURL,
			GraphQLTimeout:      cfg.GraphQLTimeout,
			FormSecret:          cfg.FormSecret,
			FormTTL:             cfg.FormTTL,
			TrustForwardedProto: cfg.TrustForwardedProto,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
