package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dsofts/core/internal/database"
	"github.com/dsofts/core/internal/models"
)

const bcryptCost = 10

// Service implements account creation and credential checks.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Signup creates a new account. Every self-registered account starts with
// the user role.
func (s *Service) Signup(dto SignupDTO) (*models.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	var count int64
	if err := s.db.Model(&models.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.UserModel{
		Name:         strings.TrimSpace(dto.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := s.db.Create(user).Error; err != nil {
		// The unique index backstops the pre-check under concurrent signups.
		if database.IsDuplicateKeyError(err) {
			return nil, errEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns the account. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(dto LoginDTO) (*models.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	var user models.UserModel
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)) != nil {
		return nil, errInvalidCredentials
	}
	return &user, nil
}

// GetByID loads an account by id.
func (s *Service) GetByID(id string) (*models.UserModel, error) {
	var user models.UserModel
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
