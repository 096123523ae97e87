package services

import (
	"errors"
	"strings"

	"github.com/Someya222/yoga-backend/models"
	"github.com/Someya222/yoga-backend/utils"

	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	db     *gorm.DB
	secret string
}

func NewAuthService(db *gorm.DB, secret string) *AuthService {
	return &AuthService{db: db, secret: secret}
}

// Register creates a user with a bcrypt-hashed password. Emails are stored
// lowercase so uniqueness is case-insensitive.
func (s *AuthService) Register(username, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Username: strings.TrimSpace(username),
		Email:    email,
		Password: hashed,
	}
	return s.db.Create(&user).Error
}

// Login checks the password and returns a signed token carrying the user's id.
func (s *AuthService) Login(email, password string) (string, error) {
	var user models.User
	err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWT(user.ID, s.secret)
}
