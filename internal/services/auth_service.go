package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SAP-F-2025/course-service/internal/auth"
	"github.com/SAP-F-2025/course-service/internal/events"
	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
)

type authService struct {
	deps
	jwt *auth.JWTManager
}

func NewAuthService(d deps, jwt *auth.JWTManager) AuthService {
	return &authService{deps: d, jwt: jwt}
}

func (s *authService) Signup(ctx context.Context, req *SignupRequest) (*models.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.Email)
	taken, err := s.repo.User().ExistsByEmail(ctx, nil, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:           strings.TrimSpace(req.Name),
		Email:          email,
		HashedPassword: hashed,
		Role:           models.RoleStudent,
		Batch:          req.Batch,
	}
	// signup is open: callers pick any known role, admin included
	if req.Role != nil {
		user.Role = *req.Role
	}

	if err := s.repo.User().Create(ctx, nil, user); err != nil {
		if repositories.IsDuplicateError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("User registered", "user_id", user.ID, "role", user.Role)
	s.invalidateStats(ctx)
	s.publish(ctx, events.UserRegistered, events.UserRegisteredData{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
	})

	return user, nil
}

func (s *authService) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.repo.User().GetByEmail(ctx, nil, strings.TrimSpace(req.Username))
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !auth.VerifyPassword(req.Password, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Token issued", "user_id", user.ID)
	return &TokenResponse{AccessToken: token, TokenType: auth.TokenTypeBearer}, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	claims, err := s.jwt.Decode(token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil, fmt.Errorf("token expired: %w", ErrInvalidToken)
		}
		return nil, ErrInvalidToken
	}

	user, err := s.repo.User().GetByID(ctx, nil, claims.UserID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("user not found: %w", ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}
