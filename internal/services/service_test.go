package services

import (
	"testing"
	"time"

	"github.com/conduit-dev/conduit/internal/auth"
	"github.com/conduit-dev/conduit/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory sqlite database with the full schema migrated.
// Every test gets its own database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.Comment{},
		&models.Follow{},
		&models.Favorite{},
		&models.Tag{},
	)
	require.NoError(t, err)

	require.NoError(t, auth.InitJWT("test-secret", 1))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: hash,
	}

	require.NoError(t, db.Create(user).Error)

	return user
}

// createTestArticle persists an article with an explicit creation time so
// ordering assertions are deterministic.
func createTestArticle(t *testing.T, db *gorm.DB, author *models.User, title string, createdAt time.Time, tags ...string) *models.Article {
	t.Helper()

	article := &models.Article{
		Slug:        makeSlug(title),
		Title:       title,
		Description: "about " + title,
		Body:        "body of " + title,
		TagList:     joinTags(tags),
		AuthorID:    author.ID,
	}
	article.CreatedAt = createdAt

	require.NoError(t, db.Create(article).Error)

	return article
}

func follow(t *testing.T, db *gorm.DB, follower, following *models.User) {
	t.Helper()

	require.NoError(t, db.Create(&models.Follow{FollowerID: follower.ID, FollowingID: following.ID}).Error)
}
