package services

import (
	"testing"
	"time"

	"github.com/conduit-dev/conduit/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentAdd(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	jake := createTestUser(t, db, "jake")
	anna := createTestUser(t, db, "anna")
	article := createTestArticle(t, db, jake, "A Post", time.Now())

	comment, err := svc.Add(article.Slug, anna.ID, "great read")
	require.NoError(t, err)

	assert.Equal(t, "great read", comment.Body)
	assert.Equal(t, "anna", comment.Author.Username)
	// Following is not computed at write time
	assert.False(t, comment.Author.Following)
}

func TestCommentAddUnknownSlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	anna := createTestUser(t, db, "anna")

	_, err := svc.Add("missing", anna.ID, "hello")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCommentListOrderingAndFollowing(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	jake := createTestUser(t, db, "jake")
	anna := createTestUser(t, db, "anna")
	bella := createTestUser(t, db, "bella")
	article := createTestArticle(t, db, jake, "A Post", time.Now())

	follow(t, db, bella, anna)

	_, err := svc.Add(article.Slug, jake.ID, "first")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = svc.Add(article.Slug, anna.ID, "second")
	require.NoError(t, err)

	comments, err := svc.List(article.Slug, bella.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)

	// Newest first
	assert.Equal(t, "second", comments[0].Body)
	assert.Equal(t, "first", comments[1].Body)

	// bella follows anna but not jake
	assert.True(t, comments[0].Author.Following)
	assert.False(t, comments[1].Author.Following)

	// Anonymous callers see following=false everywhere
	comments, err = svc.List(article.Slug, 0)
	require.NoError(t, err)

	for _, comment := range comments {
		assert.False(t, comment.Author.Following)
	}
}

func TestCommentDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	jake := createTestUser(t, db, "jake")
	anna := createTestUser(t, db, "anna")
	article := createTestArticle(t, db, jake, "A Post", time.Now())

	comment, err := svc.Add(article.Slug, anna.ID, "mine")
	require.NoError(t, err)

	// Only the comment's author may delete it
	err = svc.Delete(article.Slug, jake.ID, comment.ID)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	// A bad slug is a NotFound even though the comment id exists
	err = svc.Delete("missing", anna.ID, comment.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	require.NoError(t, svc.Delete(article.Slug, anna.ID, comment.ID))

	comments, err := svc.List(article.Slug, 0)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentDeleteUnknownComment(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	jake := createTestUser(t, db, "jake")
	article := createTestArticle(t, db, jake, "A Post", time.Now())

	err := svc.Delete(article.Slug, jake.ID, 999)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
