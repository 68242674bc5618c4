package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/pulseline/pulseline/internal/interface/http"
)

type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users", m.Handler.Create)
	rg.GET("/users", m.Handler.List)
	rg.POST("/users/:id/follow/:target_id", m.Handler.Follow)
}
