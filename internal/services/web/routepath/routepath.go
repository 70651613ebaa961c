// Package routepath stores canonical HTTP paths for web modules.
package routepath

const (
	Root           = "/"
	Health         = "/up"
	SignUp         = "/sign-up"
	SignUpPrefix   = "/sign-up/"
	SignUpValidate = "/sign-up/validate"
	SignUpFocus    = "/sign-up/focus"
)
