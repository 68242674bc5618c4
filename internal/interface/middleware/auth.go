package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pulseline/pulseline/internal/application"
	"github.com/pulseline/pulseline/pkg/response"
)

const (
	CtxUserIDKey = "userID"
	CtxUserKey   = "currentUser"
)

// Auth reads the Authorization bearer header, verifies the access token and
// loads the subject user. All failures answer 401 with a fixed message.
func Auth(svc *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing authorization token")
			return
		}
		user, err := svc.Authenticate(c.Request.Context(), token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		c.Set(CtxUserIDKey, user.ID)
		c.Set(CtxUserKey, user)
		c.Next()
	}
}
