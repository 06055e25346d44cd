// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package access issues admin bearer tokens.

VVDex has a single operator credential: the bcrypt hash in ADMIN_PASSWORD_HASH.
Exchanging the matching password at POST /auth/token yields an RS256 token with
the admin role, which the write endpoints of documents and update logs require.
*/
package access

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/vvdex/internal/platform/apperr"
	"github.com/taibuivan/vvdex/internal/platform/constants"
	"github.com/taibuivan/vvdex/internal/platform/sec"
	"github.com/taibuivan/vvdex/internal/platform/validate"
)

// TokenIssuer signs access tokens. [*sec.TokenService] satisfies it.
type TokenIssuer interface {
	GenerateAccessToken(operator string, role sec.UserRole, timeToLive time.Duration) (string, time.Time, error)
}

// Credentials is the token request payload.
type Credentials struct {
	Operator string `json:"operator"`
	Password string `json:"password"`
}

// Token is the token response payload.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Service checks the admin password and issues tokens.
type Service struct {
	passwordHash string
	issuer       TokenIssuer
	logger       *slog.Logger
}

// NewService constructs a new [Service].
func NewService(passwordHash string, issuer TokenIssuer, logger *slog.Logger) *Service {
	return &Service{passwordHash: passwordHash, issuer: issuer, logger: logger}
}

/*
IssueToken exchanges the admin password for an access token.

Description: The operator name is only recorded in the token for audit logs;
it defaults to "admin". A wrong password yields the same 401 as an unknown
operator would.
*/
func (service *Service) IssueToken(ctx context.Context, credentials Credentials) (*Token, error) {
	if err := (&validate.Validator{}).Required("password", credentials.Password).MaxLen("operator", credentials.Operator, 64).Err(); err != nil {
		return nil, err
	}

	operator := strings.TrimSpace(credentials.Operator)
	if operator == "" {
		operator = constants.AdminOperator
	}

	if !sec.CheckPasswordHash(credentials.Password, service.passwordHash) {
		service.logger.WarnContext(ctx, "access_token_denied", slog.String("operator", operator))
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	accessToken, expiresAt, err := service.issuer.GenerateAccessToken(operator, sec.RoleAdmin, constants.AdminTokenTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.InfoContext(ctx, "access_token_issued",
		slog.String("operator", operator),
		slog.Time("expires_at", expiresAt),
	)

	return &Token{AccessToken: accessToken, TokenType: "Bearer", ExpiresAt: expiresAt}, nil
}
