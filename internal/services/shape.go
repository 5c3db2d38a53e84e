package services

import (
	"strings"

	"github.com/conduit-dev/conduit/internal/models"
	"github.com/conduit-dev/conduit/internal/types"
)

// Tag lists live in a single comma-joined column. The article listing's tag
// filter does a LIKE match on that column, so "react" also matches an article
// tagged "reactive".
func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func splitTags(tagList string) []string {
	if tagList == "" {
		return []string{}
	}

	return strings.Split(tagList, ",")
}

func buildProfile(user models.User, following bool) types.Profile {
	return types.Profile{
		Username:  user.Username,
		Bio:       user.Bio,
		Image:     user.Image,
		Following: following,
	}
}

func buildArticle(article models.Article, favorited bool, following bool) types.ArticleResponse {
	return types.ArticleResponse{
		Slug:           article.Slug,
		Title:          article.Title,
		Description:    article.Description,
		Body:           article.Body,
		TagList:        splitTags(article.TagList),
		CreatedAt:      article.CreatedAt,
		UpdatedAt:      article.UpdatedAt,
		Favorited:      favorited,
		FavoritesCount: article.FavoritesCount,
		Author:         buildProfile(article.Author, following),
	}
}

func buildComment(comment models.Comment, following bool) types.CommentResponse {
	return types.CommentResponse{
		ID:        comment.ID,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
		Author:    buildProfile(comment.Author, following),
	}
}
