package templates

// HomeView is the render model for the landing page.
type HomeView struct {
	Body            string
	BottomCTA       string
	BottomLinkURL   string
	BottomLinkLabel string
}
