package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User     UserRepository
	Creation CreationRepository
	Session  SessionRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Creation: NewCreationRepository(db),
		Session:  NewSessionRepository(db),
	}
}
