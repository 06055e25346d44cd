// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package access_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vvdex/internal/core/access"
	"github.com/taibuivan/vvdex/internal/platform/apiclient"
	"github.com/taibuivan/vvdex/internal/platform/apperr"
	"github.com/taibuivan/vvdex/internal/platform/config"
	"github.com/taibuivan/vvdex/internal/platform/sec"
)

/*
TestLogin_RoundTrip issues a token over HTTP and verifies its claims.
*/
func TestLogin_RoundTrip(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	tokens := sec.NewTokenServiceFromKey(key, "vvdex.test")

	hash, err := sec.HashPassword("sea-breeze")
	require.NoError(t, err)

	service := access.NewService(hash, tokens, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	router := chi.NewRouter()
	router.Route("/auth", access.NewHandler(service).RegisterRoutes)

	server := httptest.NewServer(router)
	defer server.Close()

	client := apiclient.New(config.ClientConfig{BaseURL: server.URL, Timeout: 5 * time.Second}, nil)
	ctx := context.Background()

	tests := []struct {
		name        string
		credentials access.Credentials
		status      int
		operator    string
	}{
		{"default_operator", access.Credentials{Password: "sea-breeze"}, 0, "admin"},
		{"named_operator", access.Credentials{Operator: " misaki ", Password: "sea-breeze"}, 0, "misaki"},
		{"wrong_password", access.Credentials{Password: "nope"}, http.StatusUnauthorized, ""},
		{"missing_password", access.Credentials{}, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := access.Login(ctx, client, tt.credentials)
			if tt.status != 0 {
				assert.True(t, apperr.HasStatus(err, tt.status))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Bearer", token.TokenType)
			assert.True(t, token.ExpiresAt.After(time.Now()))

			claims, err := tokens.VerifyToken(token.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, tt.operator, claims.Operator)
			assert.Equal(t, string(sec.RoleAdmin), claims.Role)
		})
	}
}
