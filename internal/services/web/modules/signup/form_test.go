package signup

import (
	"strings"
	"testing"
)

func TestValidateFieldUsernameRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "empty", value: "", want: MsgUsernameRequired},
		{name: "too short", value: "ab", want: MsgUsernameMinLength},
		{name: "underscore and bang", value: "valid_user!", want: MsgUsernamePattern},
		{name: "space", value: "ab cd", want: MsgUsernamePattern},
		{name: "too long", value: strings.Repeat("a", 19), want: MsgUsernamePattern},
		{name: "non ascii letters", value: "josé", want: MsgUsernamePattern},
		{name: "one astral rune is two units", value: "😀", want: MsgUsernameMinLength},
		{name: "two astral runes pass length", value: "😀😀", want: MsgUsernamePattern},
		{name: "minimum", value: "abc", want: ""},
		{name: "maximum", value: strings.Repeat("a", 18), want: ""},
		{name: "mixed case digits", value: "Ada1815", want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ValidateField(FieldUsername, tc.value); got != tc.want {
				t.Fatalf("ValidateField(username, %q) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestBrowserLengthCountsUTF16Units(t *testing.T) {
	t.Parallel()

	for value, want := range map[string]int{"": 0, "abc": 3, "josé": 4, "😀": 2, "😀😀": 4} {
		if got := browserLength(value); got != want {
			t.Fatalf("browserLength(%q) = %d, want %d", value, got, want)
		}
	}
}

func TestValidateFieldRequiredRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field Field
		want  string
	}{
		{field: FieldFirstName, want: MsgFirstNameRequired},
		{field: FieldEmail, want: MsgEmailRequired},
		{field: FieldPassword, want: MsgPasswordRequired},
		{field: FieldLastName, want: ""},
		{field: FieldResult, want: ""},
	}
	for _, tc := range tests {
		if got := ValidateField(tc.field, ""); got != tc.want {
			t.Fatalf("ValidateField(%s, \"\") = %q, want %q", tc.field, got, tc.want)
		}
		if got := ValidateField(tc.field, "x"); got != "" {
			t.Fatalf("ValidateField(%s, \"x\") = %q, want empty", tc.field, got)
		}
	}
}

func TestValidateCollectsEveryFailingField(t *testing.T) {
	t.Parallel()

	errs := Validate(FormValues{})
	want := Errors{
		FieldFirstName: MsgFirstNameRequired,
		FieldEmail:     MsgEmailRequired,
		FieldUsername:  MsgUsernameRequired,
		FieldPassword:  MsgPasswordRequired,
	}
	if len(errs) != len(want) {
		t.Fatalf("Validate() = %v, want %v", errs, want)
	}
	for field, key := range want {
		if errs[field] != key {
			t.Fatalf("Validate()[%s] = %q, want %q", field, errs[field], key)
		}
	}
	if errs.Valid() {
		t.Fatalf("Valid() = true for empty form")
	}

	valid := Validate(FormValues{FirstName: "Ada", Email: "a@b.c", Username: "ada", Password: "pw"})
	if !valid.Valid() {
		t.Fatalf("Valid() = false, errors %v", valid)
	}
}

func TestInputFieldsReturnsCopyInDisplayOrder(t *testing.T) {
	t.Parallel()

	fields := InputFields()
	want := []Field{FieldFirstName, FieldLastName, FieldEmail, FieldUsername, FieldPassword}
	if len(fields) != len(want) {
		t.Fatalf("InputFields() = %v", fields)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Fatalf("InputFields()[%d] = %q, want %q", i, fields[i], want[i])
		}
	}
	fields[0] = FieldResult
	if InputFields()[0] != FieldFirstName {
		t.Fatalf("InputFields() exposed internal slice")
	}
}

func TestFormValuesGetUnknownField(t *testing.T) {
	t.Parallel()

	values := FormValues{FirstName: "Ada", Result: "taken"}
	if got := values.Get(Field("nickname")); got != "" {
		t.Fatalf("Get(unknown) = %q, want empty", got)
	}
	if got := values.Get(FieldResult); got != "taken" {
		t.Fatalf("Get(result) = %q", got)
	}
}
