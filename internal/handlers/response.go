package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/conduit-dev/conduit/internal/apperror"
	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto statuses. Anything outside the
// apperror taxonomy is a server fault and gets logged.
func respondError(ctx *gin.Context, err error) {
	var appErr *apperror.AppError

	if errors.As(err, &appErr) {
		ctx.JSON(statusFor(appErr), gin.H{"error": appErr.Message})
		return
	}

	log.Printf("Unhandled error: %v", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

func statusFor(err *apperror.AppError) int {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperror.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrUnprocessable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
