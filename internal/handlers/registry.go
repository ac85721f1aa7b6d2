package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler   *AuthHandler
	UserHandler   *UserHandler
	LeadHandler   *LeadHandler
	AdminHandler  *AdminHandler
	ClientHandler *ClientHandler
}
