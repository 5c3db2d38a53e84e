package services

import (
	"github.com/conduit-dev/conduit/internal/models"
	"gorm.io/gorm"
)

type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

func (s *TagService) List() ([]string, error) {
	var tags []string

	if err := s.db.Model(&models.Tag{}).Order("name").Pluck("name", &tags).Error; err != nil {
		return nil, err
	}

	if tags == nil {
		tags = []string{}
	}

	return tags, nil
}
