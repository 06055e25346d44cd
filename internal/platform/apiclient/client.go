// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apiclient talks to the VVDex Content API over HTTP.

It is the client half of the envelope contract in package respond: success
bodies are unwrapped from {"data": ...} and error bodies are rebuilt into
[*apperr.AppError] so callers handle remote and local failures the same way.

Transport failures (DNS, refused connections, timeouts, cancelled contexts)
are returned wrapped but NOT as AppError; the store treats them as
unrecognized and surfaces its fallback message.
*/
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/taibuivan/vvdex/internal/platform/apperr"
	"github.com/taibuivan/vvdex/internal/platform/config"
	"github.com/taibuivan/vvdex/internal/platform/constants"
	"github.com/taibuivan/vvdex/internal/platform/respond"
	"github.com/taibuivan/vvdex/pkg/uuid"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// Client is a JSON client bound to one API base URL.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// New builds a [Client] from the client configuration.
func New(cfg config.ClientConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// WithHTTPClient replaces the underlying transport client. Used by tests.
func (client *Client) WithHTTPClient(httpClient *http.Client) *Client {
	client.httpClient = httpClient
	return client
}

// WithToken returns a copy of the client that sends the given bearer token.
func (client *Client) WithToken(token string) *Client {
	clone := *client
	clone.token = token
	return &clone
}

// Do sends a JSON request and decodes the "data" member of the response into out.
//
// # Parameters
//   - path: Resource path relative to the base URL, starting with "/".
//   - query: Optional query string values (nil for none).
//   - body: Optional request payload, encoded as JSON when non-nil.
//   - out: Optional destination; ignored for 204 responses.
func (client *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := client.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient: failed to encode %s %s body: %w", method, path, err)
		}
		payload = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("apiclient: failed to build %s %s: %w", method, path, err)
	}

	requestID := uuid.RequestID()
	request.Header.Set("Accept", "application/json")
	request.Header.Set(constants.HeaderXRequestID, requestID)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if client.token != "" {
		request.Header.Set(constants.HeaderAuthorization, "Bearer "+client.token)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	client.logger.DebugContext(ctx, "api_request_finished",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", response.StatusCode),
		slog.String("request_id", requestID),
	)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return decodeError(response)
	}

	if out == nil || response.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, response.Body)
		return nil
	}

	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("apiclient: failed to decode %s %s response: %w", method, path, err)
	}

	if len(envelope.Data) == 0 {
		return fmt.Errorf("apiclient: %s %s response has no data member", method, path)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("apiclient: failed to decode %s %s data: %w", method, path, err)
	}

	return nil
}

// decodeError rebuilds the server's error envelope. Bodies that are not an
// envelope still produce an AppError carrying the HTTP status.
func decodeError(response *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBody))

	var envelope respond.ErrorEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return apperr.FromResponse(response.StatusCode, "", "", nil)
	}

	return apperr.FromResponse(response.StatusCode, envelope.Code, envelope.Error, envelope.Details)
}
