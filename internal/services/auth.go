package services

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/dto"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/entities"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/store"
	"github.com/TATAaunt/hospital-surgery-equipment-management/pkg/config"
	"github.com/TATAaunt/hospital-surgery-equipment-management/pkg/contextkeys"
	apperrors "github.com/TATAaunt/hospital-surgery-equipment-management/pkg/errors"
	"github.com/TATAaunt/hospital-surgery-equipment-management/pkg/service"
	"github.com/TATAaunt/hospital-surgery-equipment-management/pkg/utils"
)

const AdminUserID = "usr-admin"

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*entities.User, error)
}

// AuthService is the session gate. It is not a security boundary: there is a
// single admin identity seeded from config, kept only so the dashboard has a
// login flow and the API a bearer token.
type AuthService struct {
	cfg       *config.AuthConfig
	jwtSvc    service.JWTService
	cache     store.Cache
	logger    *zap.Logger
	adminHash string
}

func NewAuthService(cfg *config.AuthConfig, jwtSvc service.JWTService, cache store.Cache, logger *zap.Logger) (*AuthService, error) {
	adminHash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		cfg:       cfg,
		jwtSvc:    jwtSvc,
		cache:     cache,
		logger:    logger,
		adminHash: adminHash,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	logger := s.logger.With(zap.String("username", payload.Username))

	lockoutKey := fmt.Sprintf("login_attempts:%s", payload.Username)
	if attemptsStr, err := s.cache.Get(ctx, lockoutKey); err == nil {
		if attempts, _ := strconv.Atoi(attemptsStr); attempts >= s.cfg.MaxLoginAttempts {
			logger.Warn("login locked out")
			return nil, apperrors.ErrTooManyAttempts
		}
	}

	if payload.Username != s.cfg.AdminUsername || utils.ComparePasswords(s.adminHash, payload.Password) != nil {
		if _, err := s.cache.Incr(ctx, lockoutKey); err == nil {
			s.cache.Expire(ctx, lockoutKey, s.cfg.LockoutDuration)
		}
		logger.Warn("login failed")
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.cache.Del(ctx, lockoutKey); err != nil {
		logger.Warn("failed to reset login attempts", zap.Error(err))
	}

	accessToken, refreshToken, err := s.jwtSvc.GenerateTokens(AdminUserID, payload.Username)
	if err != nil {
		logger.Error("failed to issue tokens", zap.Error(err))
		return nil, err
	}

	logger.Info("login succeeded")
	return &dto.LoginResponseDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: &entities.User{
			ID:        AdminUserID,
			Username:  payload.Username,
			Name:      "System Administrator",
			Role:      "admin",
			LoginTime: now(),
		},
	}, nil
}

// Logout has no server-side session to tear down; tokens simply expire.
func (s *AuthService) Logout(ctx context.Context) error {
	if username, ok := ctx.Value(contextkeys.UsernameKey).(string); ok {
		s.logger.Info("logout", zap.String("username", username))
	}
	return nil
}

func (s *AuthService) CurrentUser(ctx context.Context) (*entities.User, error) {
	userID, _ := ctx.Value(contextkeys.UserIDKey).(string)
	username, _ := ctx.Value(contextkeys.UsernameKey).(string)
	if userID == "" || username == "" {
		return nil, apperrors.ErrUserNotFoundInContext
	}
	return &entities.User{
		ID:       userID,
		Username: username,
		Name:     "System Administrator",
		Role:     "admin",
	}, nil
}
