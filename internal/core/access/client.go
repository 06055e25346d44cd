// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package access

import (
	"context"
	"net/http"

	"github.com/taibuivan/vvdex/internal/platform/apiclient"
)

// Login requests a token from a running server.
func Login(ctx context.Context, client *apiclient.Client, credentials Credentials) (*Token, error) {
	var token Token
	if err := client.Do(ctx, http.MethodPost, "/auth/token", nil, credentials, &token); err != nil {
		return nil, err
	}
	return &token, nil
}
