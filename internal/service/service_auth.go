// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SomaHealth

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/somahealth/vault-companion/internal/config"
	"github.com/somahealth/vault-companion/internal/logger"
	"github.com/somahealth/vault-companion/internal/utils"
	"github.com/somahealth/vault-companion/internal/validators"
	"github.com/somahealth/vault-companion/models"
)

// demoUser is the single account the demo backend authenticates. The
// password behind the hash is "securepassword".
var demoUser = models.User{
	ID:           "1742961914546",
	Name:         "James Cona",
	Email:        "james@conasishow.com",
	PasswordHash: "$2b$10$/AxKKCcwRsj2GXNqf08/He/.OMCcAaycjGeMlzKCx9MVGHa0kI9VW",
}

// authService implements AuthService against the fixed demo account.
// Registration is accepted but does not persist anything: every login
// resolves against demoUser.
type authService struct {
	app    config.App
	logger *logger.Logger
}

// NewAuthService constructs an AuthService with token settings taken
// from the application config.
func NewAuthService(app config.App, logger *logger.Logger) AuthService {
	return &authService{
		app:    app,
		logger: logger,
	}
}

// Register validates the payload and echoes back a user profile. The
// demo backend keeps no user table, so nothing is stored; the returned
// profile reuses the demo account id.
func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateRegisterRequest(req); err != nil {
		return models.User{}, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	log.Info().Str("email", req.Email).Msg("demo registration accepted")

	return models.User{
		ID:           demoUser.ID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}, nil
}

// Login checks the credentials against the demo account. Returns
// ErrInvalidCredentials on any mismatch, without distinguishing an
// unknown email from a wrong password.
func (s *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateLoginRequest(req); err != nil {
		return models.User{}, err
	}

	if req.Email != demoUser.Email {
		log.Warn().Str("email", req.Email).Msg("login with unknown email")
		return models.User{}, ErrInvalidCredentials
	}

	if !utils.CheckPassword(req.Password, demoUser.PasswordHash) {
		log.Warn().Str("email", req.Email).Msg("login with wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return demoUser, nil
}

// CreateToken issues a signed JWT for the user.
func (s *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.app.TokenIssuer, user.ID, s.app.TokenDuration, s.app.TokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("token generation failed: %w", err)
	}

	return token, nil
}

// ParseToken validates a signed token string and extracts its claims.
// Expired tokens map to ErrTokenIsExpired; any other validation failure
// maps to ErrInvalidCredentials.
func (s *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.app.TokenSignKey, s.app.TokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("token validation failed")

		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrInvalidCredentials
	}

	return token, nil
}
