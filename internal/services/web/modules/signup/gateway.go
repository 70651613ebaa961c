package signup

import "context"

// AccountGateway sends the createAccount mutation. A non-nil error means the
// service was not reached or did not answer; a rejected sign-up is reported
// through Outcome.
type AccountGateway interface {
	CreateAccount(context.Context, NewAccount) (Outcome, error)
}
