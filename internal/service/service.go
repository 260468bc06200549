package service

import (
	"github.com/redis/go-redis/v9"

	"promptpix/internal/config"
	"promptpix/internal/repository"
	"promptpix/internal/storage"
)

type Services struct {
	Auth     AuthService
	Creation CreationService
}

func NewServices(repos *repository.Repositories, store storage.Store, redis *redis.Client, cfg *config.Config) *Services {
	return &Services{
		Auth:     NewAuthService(repos.User, repos.Session, cfg),
		Creation: NewCreationService(repos.Creation, repos.User, store, redis, cfg),
	}
}
