package services

import (
	"errors"

	"github.com/conduit-dev/conduit/internal/apperror"
	"github.com/conduit-dev/conduit/internal/models"
	"github.com/conduit-dev/conduit/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// Add favorites an article for a user. Favoriting twice is a no-op: the join
// row's primary key rejects the duplicate insert, and the counter only moves
// when a row was actually inserted, so the pair can never drift apart.
func (s *FavoriteService) Add(slug string, userID uint) (*types.ArticleResponse, error) {
	article, err := s.findArticle(slug)

	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		favorite := models.Favorite{UserID: userID, ArticleID: article.ID}

		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&favorite)

		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			// Already favorited
			return nil
		}

		return tx.Model(&models.Article{}).Where("id = ?", article.ID).
			UpdateColumn("favorites_count", gorm.Expr("favorites_count + 1")).Error
	})

	if err != nil {
		return nil, err
	}

	return s.respond(article.ID, true)
}

// Remove unfavorites an article. Removing a favorite that does not exist is a
// no-op and the counter is untouched.
func (s *FavoriteService) Remove(slug string, userID uint) (*types.ArticleResponse, error) {
	article, err := s.findArticle(slug)

	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND article_id = ?", userID, article.ID).Delete(&models.Favorite{})

		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return nil
		}

		return tx.Model(&models.Article{}).Where("id = ?", article.ID).
			UpdateColumn("favorites_count", gorm.Expr("favorites_count - 1")).Error
	})

	if err != nil {
		return nil, err
	}

	return s.respond(article.ID, false)
}

func (s *FavoriteService) findArticle(slug string) (*models.Article, error) {
	var article models.Article

	if err := s.db.Where("slug = ?", slug).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Article")
		}
		return nil, err
	}

	return &article, nil
}

func (s *FavoriteService) respond(articleID uint, favorited bool) (*types.ArticleResponse, error) {
	var article models.Article

	if err := s.db.Preload("Author").First(&article, articleID).Error; err != nil {
		return nil, err
	}

	response := buildArticle(article, favorited, false)
	return &response, nil
}
