package services

import (
	"errors"
	"strings"

	"github.com/conduit-dev/conduit/internal/apperror"
	"github.com/conduit-dev/conduit/internal/auth"
	"github.com/conduit-dev/conduit/internal/models"
	"github.com/conduit-dev/conduit/internal/types"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	Bio      *string
	Image    *string
}

func (s *UserService) Register(input RegisterInput) (*types.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	username := strings.TrimSpace(input.Username)

	taken, err := s.emailOrUsernameTaken(email, username, 0)

	if err != nil {
		return nil, err
	}

	if taken {
		return nil, apperror.Unprocessable("Email or username are taken")
	}

	passwordHash, err := auth.HashPassword(input.Password)

	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return s.respond(user)
}

func (s *UserService) Login(email, password string) (*types.UserResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User

	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User")
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, apperror.BadRequest("Invalid email or password")
	}

	return s.respond(user)
}

func (s *UserService) Get(id uint) (*types.UserResponse, error) {
	var user models.User

	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User")
		}
		return nil, err
	}

	return s.respond(user)
}

func (s *UserService) Update(id uint, input UpdateUserInput) (*types.UserResponse, error) {
	var user models.User

	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User")
		}
		return nil, err
	}

	email := user.Email
	username := user.Username

	if input.Email != nil {
		email = strings.ToLower(strings.TrimSpace(*input.Email))
	}

	if input.Username != nil {
		username = strings.TrimSpace(*input.Username)
	}

	if email != user.Email || username != user.Username {
		taken, err := s.emailOrUsernameTaken(email, username, user.ID)

		if err != nil {
			return nil, err
		}

		if taken {
			return nil, apperror.Unprocessable("Email or username are taken")
		}
	}

	user.Email = email
	user.Username = username

	if input.Bio != nil {
		user.Bio = *input.Bio
	}

	if input.Image != nil {
		user.Image = *input.Image
	}

	if input.Password != nil {
		passwordHash, err := auth.HashPassword(*input.Password)

		if err != nil {
			return nil, err
		}

		user.PasswordHash = passwordHash
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}

	return s.respond(user)
}

// emailOrUsernameTaken checks both unique columns against rows other than
// excludeID.
func (s *UserService) emailOrUsernameTaken(email, username string, excludeID uint) (bool, error) {
	var count int64

	query := s.db.Model(&models.User{}).Where("email = ? OR username = ?", email, username)

	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}

	if err := query.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (s *UserService) respond(user models.User) (*types.UserResponse, error) {
	token, err := auth.GenerateJWT(user.ID, user.Email)

	if err != nil {
		return nil, err
	}

	return &types.UserResponse{
		Email:    user.Email,
		Token:    token,
		Username: user.Username,
		Bio:      user.Bio,
		Image:    user.Image,
	}, nil
}
