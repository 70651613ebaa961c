package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Layout
	message.SetString(lang, "layout.title", "%s | Snapgram")
	message.SetString(lang, "layout.meta_description", "Share photos and videos with your friends.")
	message.SetString(lang, "layout.language", "Language")

	// Sign up
	message.SetString(lang, "signup.title", "Sign Up")
	message.SetString(lang, "signup.subtitle", "Sign up to see photos and videos from your friends.")
	message.SetString(lang, "signup.facebook", "Log in with Facebook")
	message.SetString(lang, "signup.separator", "Or")
	message.SetString(lang, "signup.field.first_name", "First Name")
	message.SetString(lang, "signup.field.last_name", "Last Name")
	message.SetString(lang, "signup.field.email", "Email")
	message.SetString(lang, "signup.field.username", "Username")
	message.SetString(lang, "signup.field.password", "Password")
	message.SetString(lang, "signup.submit", "Sign Up")
	message.SetString(lang, "signup.loading", "Loading...")
	message.SetString(lang, "signup.bottom.cta", "Have an account?")
	message.SetString(lang, "signup.bottom.link", "Log in")

	// Sign up validation and results
	message.SetString(lang, "signup.error.first_name_required", "First Name is required")
	message.SetString(lang, "signup.error.email_required", "Email is required.")
	message.SetString(lang, "signup.error.username_required", "Username is required.")
	message.SetString(lang, "signup.error.username_min_length", "Username should be longer than 3 chars")
	message.SetString(lang, "signup.error.username_pattern", "username is not validate")
	message.SetString(lang, "signup.error.password_required", "Password is required")
	message.SetString(lang, "signup.error.unavailable", "We could not reach the server. Please try again.")
	message.SetString(lang, "signup.error.create_failed", "We could not create your account.")
	message.SetString(lang, "signup.error.form_expired", "This sign-up form expired. Please try again.")
	message.SetString(lang, "signup.notice.account_created", "Account created. Please log in")

	// Home
	message.SetString(lang, "home.title", "Log In")
	message.SetString(lang, "home.heading", "Snapgram")
	message.SetString(lang, "home.body", "Log in to see photos and videos from your friends.")
	message.SetString(lang, "home.bottom.cta", "Don't have an account?")
	message.SetString(lang, "home.bottom.link", "Sign up")

	// Errors
	message.SetString(lang, "error.page_title_not_found", "Page not found")
	message.SetString(lang, "error.page_title_server_error", "Something went wrong")
	message.SetString(lang, "error.message_not_found", "The page you are looking for does not exist.")
	message.SetString(lang, "error.message_server_error", "We could not complete your request. Please try again.")
	message.SetString(lang, "error.action_home", "Back to home")
}
