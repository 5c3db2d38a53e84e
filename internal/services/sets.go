package services

import (
	"github.com/conduit-dev/conduit/internal/models"
	"gorm.io/gorm"
)

// favoriteIDSet loads the article ids a user has favorited, once per request.
func favoriteIDSet(db *gorm.DB, userID uint) (map[uint]bool, error) {
	var ids []uint

	if err := db.Model(&models.Favorite{}).Where("user_id = ?", userID).Pluck("article_id", &ids).Error; err != nil {
		return nil, err
	}

	set := make(map[uint]bool, len(ids))

	for _, id := range ids {
		set[id] = true
	}

	return set, nil
}

// followingIDSet loads the user ids a user follows, once per request.
func followingIDSet(db *gorm.DB, userID uint) (map[uint]bool, error) {
	var ids []uint

	if err := db.Model(&models.Follow{}).Where("follower_id = ?", userID).Pluck("following_id", &ids).Error; err != nil {
		return nil, err
	}

	set := make(map[uint]bool, len(ids))

	for _, id := range ids {
		set[id] = true
	}

	return set, nil
}
