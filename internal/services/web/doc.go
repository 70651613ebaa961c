// Package web serves the browser-facing sign-up flow.
//
// It wires the feature modules onto one HTTP server, builds the account
// gateway from configuration and owns the listen and shutdown lifecycle.
package web
