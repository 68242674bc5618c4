package router

import (
	"github.com/pulseline/pulseline/internal/application"
	"github.com/pulseline/pulseline/internal/container"
	pginfra "github.com/pulseline/pulseline/internal/infrastructure/postgres"
	handlers "github.com/pulseline/pulseline/internal/interface/http"
	"github.com/pulseline/pulseline/internal/router/modules"
)

// InitModules wires repositories, services and handlers from the container
// singletons and adds every feature module to the registry. Called once at
// startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	users := pginfra.NewUserRepository(pool)
	sessions := pginfra.NewSessionRepository(pool)
	posts := pginfra.NewPostRepository(pool)
	follows := pginfra.NewFollowRepository(pool)

	authSvc := application.NewAuthService(users, sessions, container.GetJWT(), cfg.SessionTTL, logger)
	userSvc := application.NewUserService(users, follows, logger)
	postSvc := application.NewPostService(posts, users, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), authSvc))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, authSvc, logger)))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger)))
}
