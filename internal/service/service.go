package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/contatoscormecial-rgb/zap/internal/config"
	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/contatoscormecial-rgb/zap/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// RateSource supplies the reference-currency quote used to restate the
// invested total. A nil source disables the conversion.
type RateSource interface {
	GetCurrencyRate() (float64, error)
	Currency() string
}

// Service handles business logic
type Service struct {
	repo   *repository.Repository
	log    *logrus.Logger
	config *config.Config
	rates  RateSource
}

// NewService initializes a new service
func NewService(repo *repository.Repository, log *logrus.Logger, cfg *config.Config, rates RateSource) *Service {
	return &Service{repo: repo, log: log, config: cfg, rates: rates}
}

// Register creates a new user with hashed password
func (s *Service) Register(fullName, email, password string) (*models.User, error) {
	if err := requireText("full_name", fullName); err != nil {
		return nil, err
	}
	if err := requireText("email", email); err != nil {
		return nil, err
	}
	if err := requireText("password", password); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		FullName:     strings.TrimSpace(fullName),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hashedPassword),
		Theme:        models.ThemeLight,
	}

	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(email, password string) (string, error) {
	user, err := s.repo.FindUserByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, nil
}

// CurrentUser returns the authenticated user's profile
func (s *Service) CurrentUser(userID uuid.UUID) (*models.User, error) {
	return s.repo.FindUserByID(userID)
}

// UpdateTheme persists the user's light/dark display preference
func (s *Service) UpdateTheme(userID uuid.UUID, theme string) error {
	if theme != models.ThemeLight && theme != models.ThemeDark {
		return validationErrorf("theme must be %q or %q", models.ThemeLight, models.ThemeDark)
	}
	return s.repo.UpdateUserTheme(userID, theme)
}

// requireText rejects empty required text fields.
func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return validationErrorf("%s is required", field)
	}
	return nil
}

// requireAmount rejects amounts that are not strictly positive.
func requireAmount(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return validationErrorf("%s must be greater than zero", field)
	}
	return nil
}
