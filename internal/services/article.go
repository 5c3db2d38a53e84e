package services

import (
	"errors"

	"github.com/conduit-dev/conduit/internal/apperror"
	"github.com/conduit-dev/conduit/internal/models"
	"github.com/conduit-dev/conduit/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const DefaultListLimit = 20

type ArticleService struct {
	db *gorm.DB
}

func NewArticleService(db *gorm.DB) *ArticleService {
	return &ArticleService{db: db}
}

type ListQuery struct {
	Tag       string
	Author    string
	Favorited string
	Limit     int
	Offset    int
}

type CreateArticleInput struct {
	Title       string
	Description string
	Body        string
	TagList     []string
}

type UpdateArticleInput struct {
	Title       *string
	Description *string
	Body        *string
}

// List returns articles ordered newest first, filtered by the optional query
// parameters. The count reflects the filters, not the pagination window.
// callerID 0 means anonymous; anonymous callers get favorited=false on every
// article.
func (s *ArticleService) List(callerID uint, q ListQuery) (*types.ArticlesResponse, error) {
	empty := &types.ArticlesResponse{Articles: []types.ArticleResponse{}, ArticlesCount: 0}

	query := s.db.Model(&models.Article{})

	if q.Author != "" {
		var author models.User

		err := s.db.Where("username = ?", q.Author).First(&author).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return empty, nil
		}

		if err != nil {
			return nil, err
		}

		query = query.Where("author_id = ?", author.ID)
	}

	if q.Tag != "" {
		// Substring match on the comma-joined column, not exact membership.
		query = query.Where("tag_list LIKE ?", "%"+q.Tag+"%")
	}

	if q.Favorited != "" {
		var user models.User

		err := s.db.Where("username = ?", q.Favorited).First(&user).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return empty, nil
		}

		if err != nil {
			return nil, err
		}

		var favoritedIDs []uint

		if err := s.db.Model(&models.Favorite{}).Where("user_id = ?", user.ID).Pluck("article_id", &favoritedIDs).Error; err != nil {
			return nil, err
		}

		if len(favoritedIDs) == 0 {
			// An empty IN clause would fall back to "all articles"
			return empty, nil
		}

		query = query.Where("id IN ?", favoritedIDs)
	}

	var count int64

	if err := query.Count(&count).Error; err != nil {
		return nil, err
	}

	limit := q.Limit

	if limit <= 0 {
		limit = DefaultListLimit
	}

	offset := q.Offset

	if offset < 0 {
		offset = 0
	}

	var articles []models.Article

	if err := query.Preload("Author").Order("created_at DESC").Limit(limit).Offset(offset).Find(&articles).Error; err != nil {
		return nil, err
	}

	callerFavorites := map[uint]bool{}

	if callerID != 0 {
		var err error

		callerFavorites, err = favoriteIDSet(s.db, callerID)

		if err != nil {
			return nil, err
		}
	}

	response := &types.ArticlesResponse{
		Articles:      make([]types.ArticleResponse, 0, len(articles)),
		ArticlesCount: count,
	}

	for _, article := range articles {
		response.Articles = append(response.Articles, buildArticle(article, callerFavorites[article.ID], false))
	}

	return response, nil
}

// Feed returns articles authored by users the caller follows. A caller who
// follows nobody gets an empty result without an article query being issued.
// Feed rows carry no favorited annotation.
func (s *ArticleService) Feed(callerID uint, limit, offset int) (*types.ArticlesResponse, error) {
	var followingIDs []uint

	if err := s.db.Model(&models.Follow{}).Where("follower_id = ?", callerID).Pluck("following_id", &followingIDs).Error; err != nil {
		return nil, err
	}

	if len(followingIDs) == 0 {
		return &types.ArticlesResponse{Articles: []types.ArticleResponse{}, ArticlesCount: 0}, nil
	}

	query := s.db.Model(&models.Article{}).Where("author_id IN ?", followingIDs)

	var count int64

	if err := query.Count(&count).Error; err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultListLimit
	}

	if offset < 0 {
		offset = 0
	}

	var articles []models.Article

	if err := query.Preload("Author").Order("created_at DESC").Limit(limit).Offset(offset).Find(&articles).Error; err != nil {
		return nil, err
	}

	response := &types.ArticlesResponse{
		Articles:      make([]types.ArticleResponse, 0, len(articles)),
		ArticlesCount: count,
	}

	for _, article := range articles {
		response.Articles = append(response.Articles, buildArticle(article, false, false))
	}

	return response, nil
}

func (s *ArticleService) Create(authorID uint, input CreateArticleInput) (*types.ArticleResponse, error) {
	var author models.User

	if err := s.db.First(&author, authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User")
		}
		return nil, err
	}

	tagList := input.TagList

	if tagList == nil {
		tagList = []string{}
	}

	article := models.Article{
		Slug:        makeSlug(input.Title),
		Title:       input.Title,
		Description: input.Description,
		Body:        input.Body,
		TagList:     joinTags(tagList),
		AuthorID:    author.ID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&article).Error; err != nil {
			return err
		}

		for _, name := range tagList {
			tag := models.Tag{Name: name}

			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&tag).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	article.Author = author

	response := buildArticle(article, false, false)
	return &response, nil
}

// Get fetches a single article by slug. The favorited flag is computed for the
// caller when one is present.
func (s *ArticleService) Get(callerID uint, slug string) (*types.ArticleResponse, error) {
	article, err := s.getBySlug(slug)

	if err != nil {
		return nil, err
	}

	favorited := false

	if callerID != 0 {
		favorited, err = s.isFavorited(callerID, article.ID)

		if err != nil {
			return nil, err
		}
	}

	response := buildArticle(*article, favorited, false)
	return &response, nil
}

func (s *ArticleService) Update(slug string, callerID uint, input UpdateArticleInput) (*types.ArticleResponse, error) {
	article, err := s.getBySlug(slug)

	if err != nil {
		return nil, err
	}

	if article.AuthorID != callerID {
		return nil, apperror.Forbidden("Permission denied")
	}

	if input.Title != nil {
		article.Title = *input.Title
		// A resent title gets a fresh suffix even when its text is unchanged.
		article.Slug = makeSlug(*input.Title)
	}

	if input.Description != nil {
		article.Description = *input.Description
	}

	if input.Body != nil {
		article.Body = *input.Body
	}

	if err := s.db.Omit(clause.Associations).Save(article).Error; err != nil {
		return nil, err
	}

	favorited, err := s.isFavorited(callerID, article.ID)

	if err != nil {
		return nil, err
	}

	response := buildArticle(*article, favorited, false)
	return &response, nil
}

// Delete removes an article and, in the same transaction, every comment and
// favorite row that references it.
func (s *ArticleService) Delete(slug string, callerID uint) error {
	article, err := s.getBySlug(slug)

	if err != nil {
		return err
	}

	if article.AuthorID != callerID {
		return apperror.Forbidden("Permission denied")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", article.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("article_id = ?", article.ID).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Article{}, article.ID).Error
	})
}

func (s *ArticleService) getBySlug(slug string) (*models.Article, error) {
	var article models.Article

	if err := s.db.Preload("Author").Where("slug = ?", slug).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Article")
		}
		return nil, err
	}

	return &article, nil
}

func (s *ArticleService) isFavorited(userID, articleID uint) (bool, error) {
	var count int64

	err := s.db.Model(&models.Favorite{}).Where("user_id = ? AND article_id = ?", userID, articleID).Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
