package handlers

import (
	"net/http"

	"github.com/conduit-dev/conduit/internal/services"
	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tags *services.TagService
}

func NewTagHandler(tags *services.TagService) *TagHandler {
	return &TagHandler{tags: tags}
}

func (h *TagHandler) List(ctx *gin.Context) {
	tags, err := h.tags.List()

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"tags": tags})
}
