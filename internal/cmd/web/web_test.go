package web

import (
	"context"
	"flag"
	"io"
	"testing"
	"time"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfigFrom(newFlagSet(), nil, nil)
	if err != nil {
		t.Fatalf("ParseConfigFrom() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.GraphQLURL != "http://localhost:4000/graphql" {
		t.Fatalf("GraphQLURL = %q", cfg.GraphQLURL)
	}
	if cfg.GraphQLTimeout != 10*time.Second {
		t.Fatalf("GraphQLTimeout = %v, want 10s", cfg.GraphQLTimeout)
	}
	if cfg.FormTTL != 30*time.Minute {
		t.Fatalf("FormTTL = %v, want 30m", cfg.FormTTL)
	}
	if cfg.FormSecret != "" || cfg.TrustForwardedProto {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseConfigReadsEnvironment(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfigFrom(newFlagSet(), nil, map[string]string{
		"SNAPGRAM_WEB_HTTP_ADDR":             ":9000",
		"SNAPGRAM_WEB_GRAPHQL_URL":           "https://api.example.com/graphql",
		"SNAPGRAM_WEB_GRAPHQL_TIMEOUT":       "3s",
		"SNAPGRAM_WEB_FORM_SECRET":           "s3cret",
		"SNAPGRAM_WEB_FORM_TTL":              "5m",
		"SNAPGRAM_WEB_TRUST_FORWARDED_PROTO": "true",
	})
	if err != nil {
		t.Fatalf("ParseConfigFrom() error = %v", err)
	}
	want := Config{
		HTTPAddr:            ":9000",
		GraphQLURL:          "https://api.example.com/graphql",
		GraphQLTimeout:      3 * time.Second,
		FormSecret:          "s3cret",
		FormTTL:             5 * time.Minute,
		TrustForwardedProto: true,
	}
	if cfg != want {
		t.Fatalf("config = %+v, want %+v", cfg, want)
	}
}

func TestParseConfigFlagsOverrideEnvironment(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfigFrom(newFlagSet(), []string{"-http-addr", "127.0.0.1:9002", "-graphql-timeout", "1s"}, map[string]string{
		"SNAPGRAM_WEB_HTTP_ADDR": ":9000",
	})
	if err != nil {
		t.Fatalf("ParseConfigFrom() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
	if cfg.GraphQLTimeout != time.Second {
		t.Fatalf("GraphQLTimeout = %v, want 1s", cfg.GraphQLTimeout)
	}
}

func TestParseConfigRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		environ map[string]string
	}{
		{name: "bad env duration", environ: map[string]string{"SNAPGRAM_WEB_FORM_TTL": "forever"}},
		{name: "zero timeout", args: []string{"-graphql-timeout", "0s"}},
		{name: "negative ttl", args: []string{"-form-ttl", "-1m"}},
		{name: "unknown flag", args: []string{"-nope"}},
	}
	for _, tc := range tests {
		if _, err := ParseConfigFrom(newFlagSet(), tc.args, tc.environ); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestParseConfigReadsProcessEnvironment(t *testing.T) {
	t.Setenv("SNAPGRAM_WEB_HTTP_ADDR", ":7000")

	cfg, err := ParseConfig(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != ":7000" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":7000")
	}
}

func TestRunRejectsMissingAddress(t *testing.T) {
	t.Setenv("SNAPGRAM_OTEL_ENDPOINT", "")

	if err := Run(context.Background(), Config{}); err == nil {
		t.Fatal("expected init error")
	}
}
