package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pulseline/pulseline/internal/domain/errs"
	"github.com/pulseline/pulseline/pkg/response"
)

// respondError maps the domain error taxonomy onto HTTP statuses with fixed
// messages. Anything unclassified is an internal failure; its detail is
// never exposed to the caller.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrAlreadyExists):
		response.Error(c, http.StatusBadRequest, errs.ErrAlreadyExists.Error(), nil)
	case errors.Is(err, errs.ErrNotFound):
		response.Error(c, http.StatusNotFound, errs.ErrNotFound.Error(), nil)
	case errors.Is(err, errs.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, errs.ErrInvalidCredentials.Error(), nil)
	case errors.Is(err, errs.ErrUnauthenticated):
		response.Error(c, http.StatusUnauthorized, errs.ErrUnauthenticated.Error(), nil)
	case errors.Is(err, errs.ErrSelfFollow):
		response.Error(c, http.StatusBadRequest, errs.ErrSelfFollow.Error(), nil)
	default:
		response.Error(c, http.StatusInternalServerError, "internal error", nil)
	}
}
