package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"abc-retail/libs"
	"abc-retail/middleware"
	"abc-retail/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// userMessage strips the sentinel prefix from validation errors.
func userMessage(err error) string {
	return strings.TrimPrefix(err.Error(), models.ErrValidation.Error()+": ")
}

// respondError maps model sentinels to status codes; anything else is logged
// and answered with a generic message.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: userMessage(err)})
	case errors.Is(err, models.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Success: false, Message: "Invalid email or password."})
	case errors.Is(err, models.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Your cart is empty."})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Not found"})
	case errors.Is(err, models.ErrConflict):
		c.JSON(http.StatusConflict, models.ErrorResponse{Success: false, Message: "The record was changed by someone else. Reload and try again."})
	case errors.Is(err, models.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Success: false, Message: "Storage is not configured"})
	default:
		zap.S().Errorw(fallback, "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: fallback})
	}
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

func sessionValue(ctx context.Context, c *gin.Context, store libs.SessionStore, key string) string {
	value, _, err := store.Get(ctx, middleware.SessionID(c), key)
	if err != nil {
		zap.S().Warnw("session read failed", "key", key, "error", err)
		return ""
	}
	return value
}

func sendAttachment(c *gin.Context, name string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/octet-stream", data)
}

// respondFileError keeps storage detail out of admin file responses.
func respondFileError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, models.ErrNotFound) || errors.Is(err, libs.ErrFileNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "File not found"})
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: userMessage(err)})
	default:
		zap.S().Errorw(message, "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: message})
	}
}
