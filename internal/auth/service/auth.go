package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/fieldtrack/fieldtrack-backend/internal/auth/jwt"
	userrepo "github.com/fieldtrack/fieldtrack-backend/internal/user/repository"
	"github.com/fieldtrack/fieldtrack-backend/pkg/errors"
	"github.com/fieldtrack/fieldtrack-backend/pkg/httputil"
	"github.com/fieldtrack/fieldtrack-backend/pkg/logger"
)

// AuthService handles login and token refresh
type AuthService struct {
	users      *userrepo.UserRepository
	jwtManager *jwt.Manager
	logger     *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(users *userrepo.UserRepository, jwtManager *jwt.Manager, log *logger.Logger) *AuthService {
	return &AuthService{
		users:      users,
		jwtManager: jwtManager,
		logger:     log.WithComponent("auth-service"),
	}
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest is the token refresh payload
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LoginResponse carries the token pair and the authenticated user's profile
type LoginResponse struct {
	User   UserProfile    `json:"user"`
	Tokens *jwt.TokenPair `json:"tokens"`
}

// UserProfile is the public view of the authenticated user
type UserProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Login verifies the credentials and issues a token pair. Unknown emails
// and wrong passwords produce the same error so the response does not
// reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if err := httputil.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return nil, errors.InvalidCredentials()
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn().Str("email", req.Email).Msg("failed login attempt")
		return nil, errors.InvalidCredentials()
	}

	tokens, err := s.jwtManager.GenerateTokenPair(&jwt.UserInfo{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	})
	if err != nil {
		return nil, errors.Internal("failed to generate tokens")
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user logged in")

	return &LoginResponse{
		User: UserProfile{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
		Tokens: tokens,
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair. The user is
// re-read so role or profile changes take effect on refresh.
func (s *AuthService) Refresh(ctx context.Context, req *RefreshRequest) (*jwt.TokenPair, error) {
	if err := httputil.Validate(req); err != nil {
		return nil, err
	}

	claims, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return nil, errors.TokenInvalid()
		}
		return nil, err
	}

	tokens, err := s.jwtManager.GenerateTokenPair(&jwt.UserInfo{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	})
	if err != nil {
		return nil, errors.Internal("failed to generate tokens")
	}

	return tokens, nil
}
