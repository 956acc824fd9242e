package controllers

import (
	"errors"
	"strconv"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/pkg/resp"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps business errors to client responses; anything
// unrecognized is logged with context and surfaced as an opaque 500.
func respondError(c *gin.Context, log *zap.Logger, op string, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrInvalidCode):
		resp.NotFound(c, "invalid code")
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, "conflict")
	case errors.Is(err, services.ErrAlreadyClosed):
		resp.Conflict(c, "already closed")
	case errors.Is(err, services.ErrAlreadySettled):
		resp.Conflict(c, "already settled")
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, "invalid transition")
	case errors.Is(err, services.ErrInvalidQuantity):
		resp.Unprocessable(c, "invalid quantity")
	case errors.Is(err, services.ErrInsufficientStock):
		resp.Unprocessable(c, "insufficient stock")
	case errors.Is(err, services.ErrEmptyCart):
		resp.Unprocessable(c, "empty cart")
	case errors.Is(err, services.ErrInvalidMethod):
		resp.BadRequest(c, "invalid payment method")
	case errors.Is(err, services.ErrBadCredentials):
		resp.Unauthorized(c, "invalid email or password")
	default:
		log.Error("request failed", zap.String("op", op), zap.Error(err))
		resp.ServerError(c)
	}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
