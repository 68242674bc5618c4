package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pulseline/pulseline/internal/application"
	"github.com/pulseline/pulseline/internal/domain/entity"
	"github.com/pulseline/pulseline/pkg/response"
	"github.com/pulseline/pulseline/pkg/validation"
)

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type createPostRequest struct {
	AuthorID int64  `json:"author_id" binding:"required"`
	Content  string `json:"content" binding:"required,min=1,max=1000"`
}

type createCommentRequest struct {
	AuthorID int64  `json:"author_id" binding:"required"`
	Content  string `json:"content" binding:"required,min=1,max=1000"`
}

type likeRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}

func postView(p *entity.Post) gin.H {
	return gin.H{
		"id":         p.ID,
		"author_id":  p.AuthorID,
		"content":    p.Content,
		"created_at": p.CreatedAt,
	}
}

// Create POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), req.AuthorID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, postView(p), "post created", nil)
}

// List GET /api/posts
func (h *PostHandler) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query", validation.ToDetails(err))
		return
	}
	posts, err := h.Svc.List(c.Request.Context(), q.Limit, q.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]gin.H, 0, len(posts))
	for i := range posts {
		out = append(out, postView(&posts[i]))
	}
	response.Success(c, http.StatusOK, out, "posts", gin.H{"limit": q.Limit, "offset": q.Offset})
}

// AddComment POST /api/posts/:id/comments
func (h *PostHandler) AddComment(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cm, err := h.Svc.AddComment(c.Request.Context(), postID, req.AuthorID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"id":         cm.ID,
		"post_id":    cm.PostID,
		"author_id":  cm.AuthorID,
		"content":    cm.Content,
		"created_at": cm.CreatedAt,
	}, "comment created", nil)
}

// AddLike POST /api/posts/:id/likes
func (h *PostHandler) AddLike(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	l, err := h.Svc.AddLike(c.Request.Context(), postID, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"id":         l.ID,
		"post_id":    l.PostID,
		"user_id":    l.UserID,
		"created_at": l.CreatedAt,
	}, "like created", nil)
}
