package services

import (
	"errors"

	"langart/internal/auth"
	"langart/internal/models"
	"langart/internal/types"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UserService owns admin accounts.
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a UserService.
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// EnsureAdmin seeds the first admin account on an empty users table from
// the configured credentials. Existing installs are never touched.
func (s *UserService) EnsureAdmin(authConfig types.AuthConfig) error {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if authConfig.AdminPassword == "" {
		return errors.New("ADMIN_PASSWORD is required to seed the first admin user")
	}

	hash, err := auth.HashPassword(authConfig.AdminPassword)
	if err != nil {
		return err
	}

	user := &models.User{
		Username:     authConfig.AdminUsername,
		PasswordHash: hash,
	}
	if err := s.db.Create(user).Error; err != nil {
		return err
	}

	logrus.Infof("Seeded admin user %q", user.Username)
	return nil
}

// Authenticate verifies a username/password pair. It reports a single
// failure mode so callers cannot distinguish an unknown user from a wrong
// password.
func (s *UserService) Authenticate(username, password string) (*models.User, bool) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, false
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, false
	}
	return &user, true
}

// GetByID fetches an admin user by primary key.
func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword stores a new bcrypt hash for the user.
func (s *UserService) UpdatePassword(userID uint, newPassword string) error {
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.db.Model(&models.User{}).Where("id = ?", userID).
		Update("password_hash", hash).Error
}
