package commands

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	reqdto "lounge-pos/internal/handler/dto/request"
	"lounge-pos/internal/pkg/config"
	"lounge-pos/internal/pkg/errs"
	"lounge-pos/internal/pkg/jwt"
	"lounge-pos/internal/pkg/password"
)

type LoginResult struct {
	Operator    string
	AccessToken string
	ExpiresIn   time.Duration
}

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	admin      config.AdminConfig
	jwtService *jwt.Service
	logger     *slog.Logger
}

func NewAuthCommands(admin config.AdminConfig, jwtService *jwt.Service, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		admin:      admin,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	username := req.NormalizedUsername()

	// Same error for unknown user and wrong password to prevent user enumeration
	userMatches := subtle.ConstantTimeCompare([]byte(username), []byte(a.admin.Username)) == 1
	if err := password.ComparePassword(a.admin.PasswordHash, req.Password); err != nil || !userMatches {
		a.logger.Warn("login rejected", "username", username)
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(a.admin.Username)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Operator:    a.admin.Username,
		AccessToken: token,
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}
