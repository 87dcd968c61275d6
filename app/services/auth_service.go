package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/vendora/app/models"
	"github.com/shashiranjanraj/vendora/app/repositories"
	"github.com/shashiranjanraj/vendora/pkg/auth"
	"github.com/shashiranjanraj/vendora/pkg/metrics"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

// AuthService implements signup, login, token refresh and password changes.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// Signup registers a new account. The password is stored bcrypt-hashed.
func (s *AuthService) Signup(name, email, password string) (models.User, error) {
	if _, err := s.users.FindByEmail(email); err == nil {
		return models.User{}, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{Name: name, Email: email, Password: hash}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login verifies credentials and issues an access/refresh token pair.
// Unknown email and wrong password both return ErrInvalidCredentials so the
// response does not reveal which accounts exist.
func (s *AuthService) Login(email, password string) (models.User, auth.Pair, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, auth.Pair{}, ErrInvalidCredentials
		}
		return models.User{}, auth.Pair{}, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return models.User{}, auth.Pair{}, ErrInvalidCredentials
	}

	pair, err := auth.GeneratePair(user.ID, user.Admin)
	if err != nil {
		return models.User{}, auth.Pair{}, err
	}
	return user, pair, nil
}

// Refresh validates a refresh token and mints a fresh access token. The
// refresh token itself is not rotated.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := auth.ValidateRefresh(refreshToken)
	if err != nil {
		metrics.TokenRefreshes.WithLabelValues("failed").Inc()
		return "", err
	}

	// Re-read the user so a revoked account or demoted admin cannot keep
	// minting tokens with stale claims.
	user, err := s.users.FindByID(claims.UserID)
	if err != nil {
		metrics.TokenRefreshes.WithLabelValues("failed").Inc()
		return "", ErrInvalidCredentials
	}

	access, err := auth.GenerateAccess(user.ID, user.Admin)
	if err != nil {
		metrics.TokenRefreshes.WithLabelValues("failed").Inc()
		return "", err
	}

	metrics.TokenRefreshes.WithLabelValues("success").Inc()
	return access, nil
}

// Profile returns the account for an authenticated user ID.
func (s *AuthService) Profile(userID uint) (models.User, error) {
	return s.users.FindByID(userID)
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AuthService) ChangePassword(userID uint, current, next string) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, current) {
		return ErrWrongPassword
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}

	user.Password = hash
	return s.users.Update(&user)
}
