package signup

import (
	webi18n "github.com/snapgram/web/internal/services/web/platform/i18n"
	"github.com/snapgram/web/internal/services/web/routepath"
	webtemplates "github.com/snapgram/web/internal/services/web/templates"
)

var fieldLabelKeys = map[Field]string{
	FieldFirstName: "signup.field.first_name",
	FieldLastName:  "signup.field.last_name",
	FieldEmail:     "signup.field.email",
	FieldUsername:  "signup.field.username",
	FieldPassword:  "signup.field.password",
}

func mapSignUpView(view View, token string, loc webi18n.Localizer) webtemplates.SignUpView {
	fields := make([]webtemplates.InputView, 0, len(inputFields))
	for _, field := range inputFields {
		input := webtemplates.InputView{
			Name:        string(field),
			Type:        "text",
			Placeholder: webtemplates.T(loc, fieldLabelKeys[field]),
			Value:       view.Values.Get(field),
			HTMX:        webtemplates.HTMXAttrs{Post: routepath.SignUpFocus, Trigger: "focus"},
		}
		if field == FieldPassword {
			// The password never travels back to the browser.
			input.Type = "password"
			input.Value = ""
		}
		if key := view.FieldErrors[field]; key != "" {
			input.Error = webtemplates.T(loc, key)
		}
		fields = append(fields, input)
	}

	return webtemplates.SignUpView{
		Action:         routepath.SignUp,
		ValidateURL:    routepath.SignUpValidate,
		TokenField:     formTokenField,
		Token:          token,
		Subtitle:       webtemplates.T(loc, "signup.subtitle"),
		FacebookLabel:  webtemplates.T(loc, "signup.facebook"),
		SeparatorLabel: webtemplates.T(loc, "signup.separator"),
		Fields:         fields,
		Submit: webtemplates.ButtonView{
			Label:    webtemplates.T(loc, view.SubmitLabelKey),
			Disabled: !view.CanSubmit,
			Busy:     view.Busy,
		},
		ResultError:     resultMessage(view, loc),
		BottomCTA:       webtemplates.T(loc, "signup.bottom.cta"),
		BottomLinkURL:   routepath.Root,
		BottomLinkLabel: webtemplates.T(loc, "signup.bottom.link"),
	}
}

// resultMessage shows server text verbatim and localizes our own failures.
func resultMessage(view View, loc webi18n.Localizer) string {
	if view.ResultError != "" {
		return view.ResultError
	}
	if view.ResultErrorKey != "" {
		return webtemplates.T(loc, view.ResultErrorKey)
	}
	return ""
}

var intentRoutes = map[string]string{
	RouteHome: routepath.Root,
}

func routeFor(route string) string {
	if path, ok := intentRoutes[route]; ok {
		return path
	}
	return routepath.Root
}
