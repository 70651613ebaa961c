package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	// Layout
	message.SetString(lang, "layout.title", "%s | Snapgram")
	message.SetString(lang, "layout.meta_description", "Compartilhe fotos e vídeos com seus amigos.")
	message.SetString(lang, "layout.language", "Idioma")

	// Sign up
	message.SetString(lang, "signup.title", "Cadastre-se")
	message.SetString(lang, "signup.subtitle", "Cadastre-se para ver fotos e vídeos dos seus amigos.")
	message.SetString(lang, "signup.facebook", "Entrar com o Facebook")
	message.SetString(lang, "signup.separator", "Ou")
	message.SetString(lang, "signup.field.first_name", "Nome")
	message.SetString(lang, "signup.field.last_name", "Sobrenome")
	message.SetString(lang, "signup.field.email", "E-mail")
	message.SetString(lang, "signup.field.username", "Nome de usuário")
	message.SetString(lang, "signup.field.password", "Senha")
	message.SetString(lang, "signup.submit", "Cadastrar")
	message.SetString(lang, "signup.loading", "Carregando...")
	message.SetString(lang, "signup.bottom.cta", "Já tem uma conta?")
	message.SetString(lang, "signup.bottom.link", "Entrar")

	// Sign up validation and results
	message.SetString(lang, "signup.error.first_name_required", "O nome é obrigatório")
	message.SetString(lang, "signup.error.email_required", "O e-mail é obrigatório.")
	message.SetString(lang, "signup.error.username_required", "O nome de usuário é obrigatório.")
	message.SetString(lang, "signup.error.username_min_length", "O nome de usuário deve ter mais de 3 caracteres")
	message.SetString(lang, "signup.error.username_pattern", "nome de usuário inválido")
	message.SetString(lang, "signup.error.password_required", "A senha é obrigatória")
	message.SetString(lang, "signup.error.unavailable", "Não foi possível falar com o servidor. Tente novamente.")
	message.SetString(lang, "signup.error.create_failed", "Não foi possível criar sua conta.")
	message.SetString(lang, "signup.error.form_expired", "Este formulário expirou. Tente novamente.")
	message.SetString(lang, "signup.notice.account_created", "Conta criada. Faça login")

	// Home
	message.SetString(lang, "home.title", "Entrar")
	message.SetString(lang, "home.heading", "Snapgram")
	message.SetString(lang, "home.body", "Entre para ver fotos e vídeos dos seus amigos.")
	message.SetString(lang, "home.bottom.cta", "Não tem uma conta?")
	message.SetString(lang, "home.bottom.link", "Cadastre-se")

	// Errors
	message.SetString(lang, "error.page_title_not_found", "Página não encontrada")
	message.SetString(lang, "error.page_title_server_error", "Algo deu errado")
	message.SetString(lang, "error.message_not_found", "A página que você procura não existe.")
	message.SetString(lang, "error.message_server_error", "Não foi possível concluir sua solicitação. Tente novamente.")
	message.SetString(lang, "error.action_home", "Voltar ao início")
}
