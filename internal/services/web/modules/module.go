// Package modules defines web module registry helpers.
package modules

import (
	"time"

	module "github.com/snapgram/web/internal/services/web/module"
	"github.com/snapgram/web/internal/services/web/modules/signup"
	"github.com/snapgram/web/internal/services/web/platform/requestmeta"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the gateways and shared config required to compose
// the web module registry.
type Dependencies struct {
	AccountGateway signup.AccountGateway
	RequestMeta    requestmeta.SchemePolicy
	FormSecret     []byte
	FormTTL        time.Duration
}
