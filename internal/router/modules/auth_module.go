package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/pulseline/pulseline/internal/application"
	handlers "github.com/pulseline/pulseline/internal/interface/http"
	"github.com/pulseline/pulseline/internal/interface/middleware"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	Auth    *application.AuthService
}

func NewAuthModule(h *handlers.AuthHandler, auth *application.AuthService) *AuthModule {
	return &AuthModule{Handler: h, Auth: auth}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/register", m.Handler.Register)
	rg.POST("/auth/login", m.Handler.Login)

	protected := rg.Group("/")
	protected.Use(middleware.Auth(m.Auth))
	{
		protected.GET("/auth/me", m.Handler.Me)
	}
}
