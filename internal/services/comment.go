package services

import (
	"errors"

	"github.com/conduit-dev/conduit/internal/apperror"
	"github.com/conduit-dev/conduit/internal/models"
	"github.com/conduit-dev/conduit/internal/types"
	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

func (s *CommentService) Add(slug string, authorID uint, body string) (*types.CommentResponse, error) {
	article, err := s.findArticle(slug)

	if err != nil {
		return nil, err
	}

	var author models.User

	if err := s.db.First(&author, authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User")
		}
		return nil, err
	}

	comment := models.Comment{
		Body:      body,
		ArticleID: article.ID,
		AuthorID:  author.ID,
	}

	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	comment.Author = author

	// The stored author is profile-shaped in the response; following is not
	// computed at write time.
	response := buildComment(comment, false)
	return &response, nil
}

// List returns an article's comments newest first. The caller's follow set is
// resolved once and each comment author's following flag is looked up in it.
func (s *CommentService) List(slug string, callerID uint) ([]types.CommentResponse, error) {
	article, err := s.findArticle(slug)

	if err != nil {
		return nil, err
	}

	var comments []models.Comment

	if err := s.db.Preload("Author").Where("article_id = ?", article.ID).Order("created_at DESC").Find(&comments).Error; err != nil {
		return nil, err
	}

	following := map[uint]bool{}

	if callerID != 0 {
		following, err = followingIDSet(s.db, callerID)

		if err != nil {
			return nil, err
		}
	}

	response := make([]types.CommentResponse, 0, len(comments))

	for _, comment := range comments {
		response = append(response, buildComment(comment, following[comment.AuthorID]))
	}

	return response, nil
}

// Delete removes a comment. The article is resolved first so a bad slug is a
// NotFound even when the comment id exists.
func (s *CommentService) Delete(slug string, callerID uint, commentID uint) error {
	if _, err := s.findArticle(slug); err != nil {
		return err
	}

	var comment models.Comment

	if err := s.db.First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Comment")
		}
		return err
	}

	if comment.AuthorID != callerID {
		return apperror.Forbidden("Permission denied")
	}

	return s.db.Delete(&models.Comment{}, commentID).Error
}

func (s *CommentService) findArticle(slug string) (*models.Article, error) {
	var article models.Article

	if err := s.db.Where("slug = ?", slug).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Article")
		}
		return nil, err
	}

	return &article, nil
}
