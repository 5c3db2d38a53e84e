package handlers

import (
	"net/http"

	"github.com/conduit-dev/conduit/internal/services"
	"github.com/conduit-dev/conduit/internal/utils"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profiles *services.ProfileService
}

func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) Get(ctx *gin.Context) {
	callerID := utils.OptionalUserID(ctx)

	profile, err := h.profiles.Get(callerID, ctx.Param("username"))

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *ProfileHandler) Follow(ctx *gin.Context) {
	callerID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	profile, err := h.profiles.Follow(callerID, ctx.Param("username"))

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *ProfileHandler) Unfollow(ctx *gin.Context) {
	callerID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	profile, err := h.profiles.Unfollow(callerID, ctx.Param("username"))

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"profile": profile})
}
