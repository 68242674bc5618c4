package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/pulseline/pulseline/internal/interface/http"
)

type PostModule struct {
	Handler *handlers.PostHandler
}

func NewPostModule(h *handlers.PostHandler) *PostModule {
	return &PostModule{Handler: h}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	rg.POST("/posts", m.Handler.Create)
	rg.GET("/posts", m.Handler.List)
	rg.POST("/posts/:id/comments", m.Handler.AddComment)
	rg.POST("/posts/:id/likes", m.Handler.AddLike)
}
