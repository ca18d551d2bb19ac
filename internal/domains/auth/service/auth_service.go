package service

import (
	"context"
	"fmt"
	"strings"

	"vitrine-backend/internal/domains/auth/model"
	"vitrine-backend/pkg/cache"
	"vitrine-backend/pkg/jwt"
	"vitrine-backend/pkg/logger"
)

type authService struct {
	jwt   *jwt.Manager
	cache cache.Cache
}

// NewAuthService creates the login stub service.
// There is no account store: any form that passes validation gets an admin token.
func NewAuthService(jwtManager *jwt.Manager, c cache.Cache) ServiceInterface {
	return &authService{
		jwt:   jwtManager,
		cache: c,
	}
}

// Login validates the form and issues an access token
func (s *authService) Login(_ context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	token, claims, err := s.jwt.GenerateAccessToken(email, model.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	logger.Info("Admin logged in", map[string]interface{}{"email": email})

	return &model.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   claims.ExpiresAt.Time,
		User: model.UserDTO{
			Email: email,
			Role:  model.RoleAdmin,
		},
	}, nil
}

// Logout marks the token's jti as revoked until the token would have expired anyway
func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if claims == nil || claims.ID == "" {
		return model.ErrMissingJTI
	}

	ttl := s.jwt.RemainingTTL(claims)
	if ttl <= 0 {
		return nil
	}

	if err := s.cache.Set(ctx, model.RevokedTokenKey(claims.ID), true, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	logger.Info("Admin logged out", map[string]interface{}{"email": claims.Email})
	return nil
}

func (s *authService) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return true, nil
	}
	return s.cache.Exists(ctx, model.RevokedTokenKey(jti))
}
