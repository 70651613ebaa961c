// Package timeouts defines shared timeout constants for the web service.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// GraphQLRequest caps a single call to the account GraphQL endpoint.
const GraphQLRequest = 10 * time.Second
