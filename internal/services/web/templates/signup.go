package templates

const (
	// SignUpFormID is the DOM id of the sign-up form.
	SignUpFormID = "signup-form"
	// SignUpSubmitID is the DOM id of the sign-up submit button.
	SignUpSubmitID = "signup-submit"
	// SignUpResultID is the DOM id of the form-level error slot.
	SignUpResultID = "signup-result"

	signUpValidateTrigger = "input changed delay:250ms"
)

// SignUpView is the render model for the sign-up page.
type SignUpView struct {
	Action      string
	ValidateURL string
	TokenField  string
	Token       string

	Subtitle       string
	FacebookLabel  string
	SeparatorLabel string

	Fields      []InputView
	Submit      ButtonView
	ResultError string

	BottomCTA       string
	BottomLinkURL   string
	BottomLinkLabel string
}

func (v SignUpView) facebookButton() ButtonView {
	return ButtonView{Type: "button", Label: v.FacebookLabel, Class: "button-facebook"}
}

// submitButton returns the submit control, either in place or as an
// out-of-band swap.
func (v SignUpView) submitButton(oob bool) ButtonView {
	submit := v.Submit
	submit.ID = SignUpSubmitID
	submit.Type = "submit"
	submit.OOB = oob
	return submit
}
