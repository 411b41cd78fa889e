package service

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/devconnect/devconnect-go/internal/crypto"
	"github.com/devconnect/devconnect-go/internal/model"
	"github.com/devconnect/devconnect-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("Invalid Credentials")
	ErrUserExists         = errors.New("User already exists")
)

// dummyHash is a valid bcrypt hash compared against when login hits an
// unknown email, so that path costs the same as a password mismatch.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService handles registration and authentication business logic.
type AuthService struct {
	repo       UserStore
	jwtSecret  string
	jwtExpiry  time.Duration
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo UserStore, secret string, expiry time.Duration, bcryptCost int) *AuthService {
	return &AuthService{
		repo:       repo,
		jwtSecret:  secret,
		jwtExpiry:  expiry,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new user account and returns an auth token.
// Exactly one user record is persisted per successful call; a duplicate
// email short-circuits before any write.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.TokenResponse, error) {
	ve := &model.ValidationError{}
	if req.Name == "" {
		ve.Add("name", "Name is required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		ve.Add("email", "Please include a valid email")
	}
	if len(req.Password) < 6 {
		ve.Add("password", "Please enter a password with 6 or more characters")
	}
	if ve.HasErrors() {
		return model.TokenResponse{}, ve
	}

	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return model.TokenResponse{}, ErrUserExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return model.TokenResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return model.TokenResponse{}, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Avatar:       crypto.AvatarURL(req.Email),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		// The unique index backstops the lookup above under concurrent registration.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.TokenResponse{}, ErrUserExists
		}
		return model.TokenResponse{}, err
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{Token: token}, nil
}

// Login authenticates a user and returns an auth token. An unknown email and
// a wrong password yield the same error so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.TokenResponse, error) {
	ve := &model.ValidationError{}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		ve.Add("email", "Please include a valid email")
	}
	if req.Password == "" {
		ve.Add("password", "Password is required")
	}
	if ve.HasErrors() {
		return model.TokenResponse{}, ve
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			crypto.VerifyPassword(req.Password, dummyHash)
			return model.TokenResponse{}, ErrInvalidCredentials
		}
		return model.TokenResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return model.TokenResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{Token: token}, nil
}

// GetUser retrieves a user by ID and returns safe user data.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}

	return model.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
	}, nil
}
