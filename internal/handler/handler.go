package handler

import "promptpix/internal/service"

type Handlers struct {
	Auth     *AuthHandler
	Creation *CreationHandler
	Feed     *FeedHandler
	Admin    *AdminHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:     NewAuthHandler(services.Auth),
		Creation: NewCreationHandler(services.Creation),
		Feed:     NewFeedHandler(services.Creation),
		Admin:    NewAdminHandler(services.Creation),
	}
}
