package service

import (
	"errors"
	"log"

	"shareabyte/config"
	"shareabyte/internal/auth"
	"shareabyte/internal/domain"
	"shareabyte/internal/models"
	"shareabyte/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailExists    = errors.New("email already registered")
	ErrUsernameExists = errors.New("username already taken")
	ErrInvalidCreds   = errors.New("invalid email or password")
)

type AuthService struct {
	cfg       *config.Config
	userRepo  *repository.UserRepository
	scoreRepo *repository.ScoreRepository
}

func NewAuthService(cfg *config.Config, userRepo *repository.UserRepository, scoreRepo *repository.ScoreRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo, scoreRepo: scoreRepo}
}

// Register creates the account and seeds its share score with the sign-up
// allotment. A failed seed is logged, not fatal; the score is created lazily
// elsewhere if missing.
func (s *AuthService) Register(email, username, password, firstName, lastName string) (*models.User, auth.TokenPair, error) {
	_, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return nil, auth.TokenPair{}, ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, auth.TokenPair{}, err
	}
	_, err = s.userRepo.GetByUsername(username)
	if err == nil {
		return nil, auth.TokenPair{}, ErrUsernameExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, auth.TokenPair{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, auth.TokenPair{}, err
	}
	u := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		Role:         domain.RoleUser,
	}
	if err := s.userRepo.Create(u); err != nil {
		return nil, auth.TokenPair{}, err
	}
	if _, err := s.scoreRepo.CreateForUser(u.ID, u.Email, s.cfg.Score.InitialScore); err != nil {
		log.Printf("[auth] seeding share score for user %d failed: %v", u.ID, err)
	}
	tokens, err := auth.IssueTokens(&s.cfg.JWT, u.ID, u.Email, u.Role)
	if err != nil {
		return u, auth.TokenPair{}, err
	}
	return u, tokens, nil
}

func (s *AuthService) Login(email, password string) (*models.User, auth.TokenPair, error) {
	u, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.TokenPair{}, ErrInvalidCreds
		}
		return nil, auth.TokenPair{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, auth.TokenPair{}, ErrInvalidCreds
	}
	tokens, err := auth.IssueTokens(&s.cfg.JWT, u.ID, u.Email, u.Role)
	if err != nil {
		return nil, auth.TokenPair{}, err
	}
	return u, tokens, nil
}

// ChangePassword updates the user's password. Requires current password verification.
func (s *AuthService) ChangePassword(userID uint, currentPassword, newPassword string) error {
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		return ErrInvalidCreds
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCreds
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return s.userRepo.Update(u)
}

// RefreshToken exchanges a valid refresh token for a new pair.
func (s *AuthService) RefreshToken(refreshToken string) (auth.TokenPair, error) {
	userID, err := auth.ParseRefreshSubject(&s.cfg.JWT, refreshToken)
	if err != nil {
		return auth.TokenPair{}, err
	}
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}
	return auth.IssueTokens(&s.cfg.JWT, u.ID, u.Email, u.Role)
}
