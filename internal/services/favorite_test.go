package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/conduit-dev/conduit/internal/apperror"
	"github.com/conduit-dev/conduit/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteAddIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoriteService(db)
	jake := createTestUser(t, db, "jake")
	anna := createTestUser(t, db, "anna")
	article := createTestArticle(t, db, jake, "A Post", time.Now())

	first, err := svc.Add(article.Slug, anna.ID)
	require.NoError(t, err)
	assert.True(t, first.Favorited)
	assert.Equal(t, 1, first.FavoritesCount)

	// Favoriting twice moves nothing
	second, err := svc.Add(article.Slug, anna.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, second.FavoritesCount)

	var rows int64
	require.NoError(t, db.Model(&models.Favorite{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestFavoriteRemove(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoriteService(db)
	jake := createTestUser(t, db, "jake")
	anna := createTestUser(t, db, "anna")
	article := createTestArticle(t, db, jake, "A Post", time.Now())

	_, err := svc.Add(article.Slug, anna.ID)
	require.NoError(t, err)

	removed, err := svc.Remove(article.Slug, anna.ID)
	require.NoError(t, err)
	assert.False(t, removed.Favorited)
	assert.Equal(t, 0, removed.FavoritesCount)

	// Removing when not favorited is a no-op, not an underflow
	removed, err = svc.Remove(article.Slug, anna.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, removed.FavoritesCount)
}

func TestFavoriteCountMatchesMembership(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoriteService(db)
	jake := createTestUser(t, db, "jake")
	anna := createTestUser(t, db, "anna")
	bella := createTestUser(t, db, "bella")
	article := createTestArticle(t, db, jake, "Popular", time.Now())

	_, err := svc.Add(article.Slug, anna.ID)
	require.NoError(t, err)
	_, err = svc.Add(article.Slug, bella.ID)
	require.NoError(t, err)
	_, err = svc.Remove(article.Slug, anna.ID)
	require.NoError(t, err)
	_, err = svc.Add(article.Slug, anna.ID)
	require.NoError(t, err)

	var stored models.Article
	require.NoError(t, db.First(&stored, article.ID).Error)

	var rows int64
	require.NoError(t, db.Model(&models.Favorite{}).Where("article_id = ?", article.ID).Count(&rows).Error)

	assert.Equal(t, int64(stored.FavoritesCount), rows)
	assert.Equal(t, 2, stored.FavoritesCount)
}

func TestFavoriteConcurrentToggles(t *testing.T) {
	db := newTestDB(t)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every goroutine must land on the same in-memory database, so pin the
	// pool to a single connection.
	sqlDB.SetMaxOpenConns(1)

	svc := NewFavoriteService(db)
	jake := createTestUser(t, db, "jake")
	article := createTestArticle(t, db, jake, "Contested", time.Now())

	userIDs := make([]uint, 0, 5)

	for i := 0; i < 5; i++ {
		user := createTestUser(t, db, fmt.Sprintf("reader%d", i))
		userIDs = append(userIDs, user.ID)
	}

	var wg sync.WaitGroup

	// Each user favorites twice and one unfavorites, all in flight together
	for _, id := range userIDs {
		wg.Add(1)

		go func(userID uint) {
			defer wg.Done()

			if _, err := svc.Add(article.Slug, userID); err != nil {
				t.Errorf("Add() error = %v", err)
			}

			if _, err := svc.Add(article.Slug, userID); err != nil {
				t.Errorf("Add() error = %v", err)
			}
		}(id)
	}

	wg.Add(1)

	go func() {
		defer wg.Done()

		if _, err := svc.Remove(article.Slug, userIDs[0]); err != nil {
			t.Errorf("Remove() error = %v", err)
		}
	}()

	wg.Wait()

	// Whatever the interleaving, the counter equals the membership
	var stored models.Article
	require.NoError(t, db.First(&stored, article.ID).Error)

	var rows int64
	require.NoError(t, db.Model(&models.Favorite{}).Where("article_id = ?", article.ID).Count(&rows).Error)

	assert.Equal(t, int64(stored.FavoritesCount), rows)
}

func TestFavoriteUnknownSlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoriteService(db)
	anna := createTestUser(t, db, "anna")

	_, err := svc.Add("missing", anna.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = svc.Remove("missing", anna.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
