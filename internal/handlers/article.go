package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/conduit-dev/conduit/internal/services"
	"github.com/conduit-dev/conduit/internal/utils"
	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articles *services.ArticleService
}

func NewArticleHandler(articles *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

type CreateArticleRequest struct {
	Article struct {
		Title       string   `json:"title" binding:"required"`
		Description string   `json:"description" binding:"required"`
		Body        string   `json:"body" binding:"required"`
		TagList     []string `json:"tagList"`
	} `json:"article" binding:"required"`
}

type UpdateArticleRequest struct {
	Article struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Body        *string `json:"body"`
	} `json:"article" binding:"required"`
}

func (h *ArticleHandler) List(ctx *gin.Context) {
	callerID := utils.OptionalUserID(ctx)

	query := services.ListQuery{
		Tag:       ctx.Query("tag"),
		Author:    ctx.Query("author"),
		Favorited: ctx.Query("favorited"),
		Limit:     parseIntQuery(ctx, "limit"),
		Offset:    parseIntQuery(ctx, "offset"),
	}

	response, err := h.articles.List(callerID, query)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ArticleHandler) Feed(ctx *gin.Context) {
	callerID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := h.articles.Feed(callerID, parseIntQuery(ctx, "limit"), parseIntQuery(ctx, "offset"))

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ArticleHandler) Create(ctx *gin.Context) {
	callerID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body CreateArticleRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	article, err := h.articles.Create(callerID, services.CreateArticleInput{
		Title:       body.Article.Title,
		Description: body.Article.Description,
		Body:        body.Article.Body,
		TagList:     body.Article.TagList,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"article": article})
}

func (h *ArticleHandler) Get(ctx *gin.Context) {
	callerID := utils.OptionalUserID(ctx)

	article, err := h.articles.Get(callerID, ctx.Param("slug"))

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"article": article})
}

func (h *ArticleHandler) Update(ctx *gin.Context) {
	callerID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body UpdateArticleRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	article, err := h.articles.Update(ctx.Param("slug"), callerID, services.UpdateArticleInput{
		Title:       body.Article.Title,
		Description: body.Article.Description,
		Body:        body.Article.Body,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"article": article})
}

func (h *ArticleHandler) Delete(ctx *gin.Context) {
	callerID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.articles.Delete(ctx.Param("slug"), callerID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func parseIntQuery(ctx *gin.Context, name string) int {
	value, err := strconv.Atoi(ctx.Query(name))

	if err != nil {
		return 0
	}

	return value
}
