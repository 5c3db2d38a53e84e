package services

import (
	"errors"

	"github.com/conduit-dev/conduit/internal/apperror"
	"github.com/conduit-dev/conduit/internal/models"
	"github.com/conduit-dev/conduit/internal/types"
	"gorm.io/gorm"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

func (s *ProfileService) Get(callerID uint, username string) (*types.Profile, error) {
	user, err := s.findByUsername(username)

	if err != nil {
		return nil, err
	}

	following := false

	if callerID != 0 {
		following, err = s.isFollowing(callerID, user.ID)

		if err != nil {
			return nil, err
		}
	}

	profile := buildProfile(*user, following)
	return &profile, nil
}

// Follow creates the edge caller -> username. Following twice leaves exactly
// one edge.
func (s *ProfileService) Follow(callerID uint, username string) (*types.Profile, error) {
	user, err := s.findByUsername(username)

	if err != nil {
		return nil, err
	}

	if user.ID == callerID {
		return nil, apperror.BadRequest("Follower and following can't be equal")
	}

	following, err := s.isFollowing(callerID, user.ID)

	if err != nil {
		return nil, err
	}

	if !following {
		follow := models.Follow{FollowerID: callerID, FollowingID: user.ID}

		if err := s.db.Create(&follow).Error; err != nil {
			return nil, err
		}
	}

	profile := buildProfile(*user, true)
	return &profile, nil
}

// Unfollow deletes the edge unconditionally; removing a missing edge is a
// no-op, not an error.
func (s *ProfileService) Unfollow(callerID uint, username string) (*types.Profile, error) {
	user, err := s.findByUsername(username)

	if err != nil {
		return nil, err
	}

	if user.ID == callerID {
		return nil, apperror.BadRequest("Follower and following can't be equal")
	}

	if err := s.db.Where("follower_id = ? AND following_id = ?", callerID, user.ID).Delete(&models.Follow{}).Error; err != nil {
		return nil, err
	}

	profile := buildProfile(*user, false)
	return &profile, nil
}

func (s *ProfileService) findByUsername(username string) (*models.User, error) {
	var user models.User

	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Profile")
		}
		return nil, err
	}

	return &user, nil
}

func (s *ProfileService) isFollowing(followerID, followingID uint) (bool, error) {
	var count int64

	err := s.db.Model(&models.Follow{}).Where("follower_id = ? AND following_id = ?", followerID, followingID).Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
