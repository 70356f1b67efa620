// Package timeouts defines shared timeout constants for the HTTP server.
//
// Upstream user API calls deliberately have no entry here: they run with the
// transport defaults only.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
