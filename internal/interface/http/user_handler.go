package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pulseline/pulseline/internal/application"
	"github.com/pulseline/pulseline/pkg/response"
	"github.com/pulseline/pulseline/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Auth   *application.AuthService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, auth *application.AuthService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Auth: auth, Logger: logger}
}

type listQuery struct {
	Limit  int `form:"limit,default=20" binding:"gte=1,lte=100"`
	Offset int `form:"offset,default=0" binding:"gte=0"`
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid path parameter", map[string]string{name: "must be an integer"})
		return 0, false
	}
	return id, true
}

// Create POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Auth.Register(c.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, userView(u), "user created", nil)
}

// List GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query", validation.ToDetails(err))
		return
	}
	users, err := h.Svc.List(c.Request.Context(), q.Limit, q.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, userView(&users[i]))
	}
	response.Success(c, http.StatusOK, out, "users", gin.H{"limit": q.Limit, "offset": q.Offset})
}

// Follow POST /api/users/:id/follow/:target_id
func (h *UserHandler) Follow(c *gin.Context) {
	followerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	followingID, ok := pathID(c, "target_id")
	if !ok {
		return
	}
	f, err := h.Svc.Follow(c.Request.Context(), followerID, followingID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"id":           f.ID,
		"follower_id":  f.FollowerID,
		"following_id": f.FollowingID,
		"created_at":   f.CreatedAt,
	}, "follow created", nil)
}
