package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/bmi"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	minPasswordLength = 6
	// bcrypt only accepts passwords up to this many bytes.
	maxPasswordBytes = 72
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AuthService struct {
	db       *gorm.DB
	tokens   *token.Issuer
	hashCost int
}

func NewAuthService(db *gorm.DB, tokens *token.Issuer, cfg *config.Config) *AuthService {
	return &AuthService{
		db:       db,
		tokens:   tokens,
		hashCost: cfg.HashCost(),
	}
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return nil, invalid("", "name, email and password are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, invalid("email", "invalid email address")
	}
	if utf8.RuneCountInString(req.Password) < minPasswordLength {
		return nil, invalid("password", "password must be at least 6 characters long")
	}
	if len(req.Password) > maxPasswordBytes {
		return nil, invalid("password", "password must be at most 72 bytes")
	}

	taken, err := s.emailTaken(email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.authResponse(&user)
}

// Login never tells an unknown email apart from a wrong password.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, invalid("", "email and password are required")
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(&user)
}

func (s *AuthService) Me(userID uint) (*dto.UserResponse, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	resp := userResponse(user)
	return &resp, nil
}

func (s *AuthService) UpdateProfile(userID uint, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if name == "" || email == "" {
		return nil, invalid("", "name and email are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, invalid("email", "invalid email address")
	}

	var gender *models.Gender
	if req.Gender != nil && *req.Gender != "" {
		g, ok := models.ParseGender(strings.ToLower(strings.TrimSpace(*req.Gender)))
		if !ok {
			return nil, invalid("gender", "gender must be one of male, female, diverse")
		}
		gender = &g
	}

	var birthDate *datatypes.Date
	if req.BirthDate != nil && strings.TrimSpace(*req.BirthDate) != "" {
		t, err := time.Parse(time.DateOnly, strings.TrimSpace(*req.BirthDate))
		if err != nil {
			return nil, invalid("birthDate", "birth date must use the format YYYY-MM-DD")
		}
		d := datatypes.Date(t)
		birthDate = &d
	}

	var height *float64
	if req.Height != nil && *req.Height != 0 {
		h := *req.Height
		if h < 0 {
			return nil, invalid("height", "height must be a positive number")
		}
		if h < bmi.MinHeightCm || h > bmi.MaxHeightCm {
			return nil, invalid("height", "height must be between 50 and 300 cm")
		}
		height = &h
	}

	if email != user.Email {
		taken, err := s.emailTaken(email, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
	}

	err = s.db.Model(user).Updates(map[string]interface{}{
		"name":       name,
		"email":      email,
		"gender":     gender,
		"birth_date": birthDate,
		"height":     height,
	}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return s.Me(userID)
}

func (s *AuthService) findUser(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

// emailTaken reports whether another user than exceptID holds email.
func (s *AuthService) emailTaken(email string, exceptID uint) (bool, error) {
	var count int64
	q := s.db.Model(&models.User{}).Where("email = ?", email)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

func (s *AuthService) authResponse(user *models.User) (*dto.AuthResponse, error) {
	signed, err := s.tokens.Create(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		User:  dto.AuthUser{ID: user.ID, Name: user.Name, Email: user.Email},
		Token: signed,
	}, nil
}

func userResponse(user *models.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Height: user.Height,
	}
	if user.Gender != nil {
		g := string(*user.Gender)
		resp.Gender = &g
	}
	if user.BirthDate != nil {
		d := time.Time(*user.BirthDate).Format(time.DateOnly)
		resp.BirthDate = &d
	}
	return resp
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
