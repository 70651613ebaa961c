package modules

import (
	module "github.com/snapgram/web/internal/services/web/module"
	"github.com/snapgram/web/internal/services/web/modules/home"
	"github.com/snapgram/web/internal/services/web/modules/signup"
)

// FeatureModules returns the modules that depend on backend gateways.
func FeatureModules(deps Dependencies) []Module {
	return []Module{
		signup.New(
			signup.WithGateway(deps.AccountGateway),
			signup.WithSchemePolicy(deps.RequestMeta),
			signup.WithFormSecret(deps.FormSecret),
			signup.WithFormTTL(deps.FormTTL),
		),
	}
}

// DefaultModules returns every module served by the web service. The home
// module's health probe reflects the feature modules.
func DefaultModules(deps Dependencies) []Module {
	features := FeatureModules(deps)
	return append(features, home.New(
		home.WithHealth(func() bool { return Healthy(features) }),
		home.WithSchemePolicy(deps.RequestMeta),
	))
}

// Healthy reports whether every module that reports health is healthy.
func Healthy(mods []Module) bool {
	for _, m := range mods {
		reporter, ok := m.(module.HealthReporter)
		if ok && !reporter.Healthy() {
			return false
		}
	}
	return true
}
