package service

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/pulselytics/pulselytics-go/internal/crypto"
	"github.com/pulselytics/pulselytics-go/internal/model"
	"github.com/pulselytics/pulselytics-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailRequired      = errors.New("email is required")
	ErrEmailInvalid       = errors.New("invalid email address")
	ErrPasswordRequired   = errors.New("password is required")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUnauthorized       = errors.New("unauthorized")
)

// UserStore is the persistence surface AuthService depends on. It is
// satisfied by *repository.UserRepository and by test fakes.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthService handles registration, login, and token-based user
// resolution.
type AuthService struct {
	users       UserStore
	jwtSecret   string
	tokenExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:       users,
		jwtSecret:   secret,
		tokenExpiry: expiry,
	}
}

// Register creates a new user account and returns a signed token for
// it. The email must be unique; registration never sets a display name.
func (s *AuthService) Register(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error) {
	if err := validateCredentials(req); err != nil {
		return model.AuthResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Email:        req.Email,
		Name:         nil,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	token, err := crypto.GenerateToken(user.Email, s.jwtSecret, s.tokenExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Token: token, Email: user.Email, Name: nil}, nil
}

// Login authenticates a user and returns a signed token. An unknown
// email and a wrong password both yield ErrInvalidCredentials, so the
// response does not reveal whether the account exists.
func (s *AuthService) Login(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.Email, s.jwtSecret, s.tokenExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Token: token, Email: user.Email, Name: user.Name}, nil
}

// CurrentUser resolves a token to the user it asserts. It fails with
// ErrUnauthorized when the token is invalid or the account no longer
// exists.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	subject, err := crypto.ValidateToken(token, s.jwtSecret)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := s.users.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	return user, nil
}

// Subject verifies a bearer token and returns its subject. The second
// return value reports whether a subject was resolved; callers that
// tolerate anonymous access check it instead of an error.
func (s *AuthService) Subject(token string) (string, bool) {
	subject, err := crypto.ValidateToken(token, s.jwtSecret)
	if err != nil {
		return "", false
	}
	return subject, true
}

func validateCredentials(req model.AuthRequest) error {
	if req.Email == "" {
		return ErrEmailRequired
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return ErrEmailInvalid
	}
	if req.Password == "" {
		return ErrPasswordRequired
	}
	return nil
}
