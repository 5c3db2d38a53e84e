package handlers

import (
	"net/http"

	"github.com/conduit-dev/conduit/internal/services"
	"github.com/conduit-dev/conduit/internal/utils"
	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favorites *services.FavoriteService
}

func NewFavoriteHandler(favorites *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

func (h *FavoriteHandler) Add(ctx *gin.Context) {
	callerID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	article, err := h.favorites.Add(ctx.Param("slug"), callerID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"article": article})
}

func (h *FavoriteHandler) Remove(ctx *gin.Context) {
	callerID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	article, err := h.favorites.Remove(ctx.Param("slug"), callerID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"article": article})
}
