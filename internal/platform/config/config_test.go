// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vvdex/internal/platform/apperr"
	"github.com/taibuivan/vvdex/internal/platform/config"
)

/*
TestLoadClient_Defaults verifies the client defaults when only the URL is set.
*/
func TestLoadClient_Defaults(t *testing.T) {
	t.Setenv("VVDEX_API_URL", "https://api.vvdex.app/api/v1")
	t.Setenv("VVDEX_API_TOKEN", "")

	cfg, err := config.LoadClient()
	require.NoError(t, err)

	assert.Equal(t, "https://api.vvdex.app/api/v1", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, 100, cfg.PageLimit)
	assert.Empty(t, cfg.Token)
}

/*
TestClientConfig_Validate checks each rejected setting.
*/
func TestClientConfig_Validate(t *testing.T) {
	valid := config.ClientConfig{BaseURL: "http://localhost:8080/api/v1", Timeout: time.Second, PageLimit: 10}

	tests := []struct {
		name   string
		mutate func(*config.ClientConfig)
		field  string
	}{
		{"relative_url", func(c *config.ClientConfig) { c.BaseURL = "/api/v1" }, "VVDEX_API_URL"},
		{"ftp_url", func(c *config.ClientConfig) { c.BaseURL = "ftp://host/api" }, "VVDEX_API_URL"},
		{"zero_timeout", func(c *config.ClientConfig) { c.Timeout = 0 }, "VVDEX_API_TIMEOUT"},
		{"huge_limit", func(c *config.ClientConfig) { c.PageLimit = 100000 }, "VVDEX_PAGE_LIMIT"},
	}

	require.NoError(t, valid.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			ae := apperr.As(cfg.Validate())
			require.NotNil(t, ae)
			require.Len(t, ae.Details, 1)
			assert.Equal(t, tt.field, ae.Details[0].Field)
		})
	}
}

/*
TestConfig_Origins verifies comma splitting of ALLOWED_ORIGINS.
*/
func TestConfig_Origins(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: " https://admin.vvdex.app, ,https://vvdex.app "}
	assert.Equal(t, []string{"https://admin.vvdex.app", "https://vvdex.app"}, cfg.Origins())
	assert.Empty(t, (&config.Config{}).Origins())
}
