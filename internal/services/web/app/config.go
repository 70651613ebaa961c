package app

import module "github.com/snapgram/web/internal/services/web/module"

// Config captures the composition inputs for the web root handler.
type Config struct {
	Modules []module.Module
	// DisableMiddleware mounts modules without the request ID, access log and
	// panic recovery chain.
	DisableMiddleware bool
}
