package signup

import (
	"regexp"
	"unicode/utf16"
)

// Field names one slot of the sign-up form.
type Field string

const (
	FieldFirstName Field = "firstName"
	FieldLastName  Field = "lastName"
	FieldEmail     Field = "email"
	FieldUsername  Field = "username"
	FieldPassword  Field = "password"
	// FieldResult holds the server-side error; it is never user-entered.
	FieldResult Field = "result"
)

// Catalog keys for validation and submission messages.
const (
	MsgFirstNameRequired = "signup.error.first_name_required"
	MsgEmailRequired     = "signup.error.email_required"
	MsgUsernameRequired  = "signup.error.username_required"
	MsgUsernameMinLength = "signup.error.username_min_length"
	MsgUsernamePattern   = "signup.error.username_pattern"
	MsgPasswordRequired  = "signup.error.password_required"
	MsgUnavailable       = "signup.error.unavailable"
	MsgCreateFailed      = "signup.error.create_failed"
	MsgFormExpired       = "signup.error.form_expired"
	MsgAccountCreated    = "signup.notice.account_created"
)

const usernameMinLength = 3

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]{3,18}$`)

var inputFields = []Field{FieldFirstName, FieldLastName, FieldEmail, FieldUsername, FieldPassword}

// InputFields returns the user-entered fields in display order.
func InputFields() []Field {
	fields := make([]Field, len(inputFields))
	copy(fields, inputFields)
	return fields
}

func isInputField(field Field) bool {
	for _, f := range inputFields {
		if f == field {
			return true
		}
	}
	return false
}

// FormValues holds the current value of every form slot.
type FormValues struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
	Result    string
}

// Get returns the value stored for field.
func (v FormValues) Get(field Field) string {
	switch field {
	case FieldFirstName:
		return v.FirstName
	case FieldLastName:
		return v.LastName
	case FieldUsername:
		return v.Username
	case FieldEmail:
		return v.Email
	case FieldPassword:
		return v.Password
	case FieldResult:
		return v.Result
	default:
		return ""
	}
}

func (v *FormValues) set(field Field, value string) {
	switch field {
	case FieldFirstName:
		v.FirstName = value
	case FieldLastName:
		v.LastName = value
	case FieldUsername:
		v.Username = value
	case FieldEmail:
		v.Email = value
	case FieldPassword:
		v.Password = value
	case FieldResult:
		v.Result = value
	}
}

type rule struct {
	key   string
	check func(string) bool
}

func required(value string) bool {
	return value != ""
}

// browserLength counts UTF-16 code units, the way a browser measures a
// string's length.
func browserLength(value string) int {
	return len(utf16.Encode([]rune(value)))
}

var fieldRules = map[Field][]rule{
	FieldFirstName: {{key: MsgFirstNameRequired, check: required}},
	FieldEmail:     {{key: MsgEmailRequired, check: required}},
	FieldUsername: {
		{key: MsgUsernameRequired, check: required},
		{key: MsgUsernameMinLength, check: func(v string) bool { return browserLength(v) >= usernameMinLength }},
		{key: MsgUsernamePattern, check: usernamePattern.MatchString},
	},
	FieldPassword: {{key: MsgPasswordRequired, check: required}},
}

// ValidateField returns the message key of the first rule value fails for
// field, or "" when every rule passes.
func ValidateField(field Field, value string) string {
	for _, r := range fieldRules[field] {
		if !r.check(value) {
			return r.key
		}
	}
	return ""
}

// Errors maps each failing field to its message key.
type Errors map[Field]string

// Valid reports whether no field has a failing rule.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Validate evaluates every field rule against values.
func Validate(values FormValues) Errors {
	errs := Errors{}
	for _, field := range inputFields {
		if key := ValidateField(field, values.Get(field)); key != "" {
			errs[field] = key
		}
	}
	return errs
}
