// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vvdex/internal/platform/sec"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func fakeAPI(t *testing.T, routes map[string]http.HandlerFunc) string {
	t.Helper()

	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.HandleFunc(pattern, handler)
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server.URL + "/api/v1"
}

func writeJSON(status int, body string) http.HandlerFunc {
	return func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_, _ = writer.Write([]byte(body))
	}
}

// dataRows returns the non-header lines of a table, first column only.
func dataRows(output string) []string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	ids := []string{}
	for _, line := range lines[1:] {
		ids = append(ids, strings.Fields(line)[0])
	}
	return ids
}

/*
TestHashPassword verifies the printed hash matches the password read from stdin.
*/
func TestHashPassword(t *testing.T) {
	output, err := execute(t, "hunter2\n", "hash-password")
	require.NoError(t, err)
	assert.True(t, sec.CheckPasswordHash("hunter2", strings.TrimSpace(output)))

	_, err = execute(t, "", "hash-password")
	assert.Error(t, err)
}

/*
TestDocsList verifies the local category filter and sort expression.
*/
func TestDocsList(t *testing.T) {
	var query string
	apiURL := fakeAPI(t, map[string]http.HandlerFunc{
		"GET /api/v1/documents": func(writer http.ResponseWriter, request *http.Request) {
			query = request.URL.RawQuery
			writeJSON(http.StatusOK, `{"data":[
				{"id":"d1","title":"Zack island","category":"guide","is_published":true},
				{"id":"d2","title":"Patch notes","category":"news","is_published":true},
				{"id":"d3","title":"Akane basics","category":" guide ","isPublished":true}
			],"meta":{"page":1,"limit":100,"total":3}}`)(writer, request)
		},
	})

	tests := []struct {
		name        string
		args        []string
		expectedIDs []string
	}{
		{"server_order", nil, []string{"d1", "d2", "d3"}},
		{"category", []string{"--category", "guide"}, []string{"d1", "d3"}},
		{"category_sorted", []string{"--category", "guide", "--sort", "title:asc"}, []string{"d3", "d1"}},
		{"multi_key", []string{"--sort", "category:desc,title"}, []string{"d2", "d3", "d1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"docs", "list", "--api-url", apiURL}, tt.args...)
			output, err := execute(t, "", args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedIDs, dataRows(output))
		})
	}

	_, err := execute(t, "", "docs", "list", "--api-url", apiURL, "--published", "true")
	require.NoError(t, err)
	assert.Contains(t, query, "published=true")
	assert.Contains(t, query, "sort=created_at")

	_, err = execute(t, "", "docs", "list", "--api-url", apiURL, "--published", "maybe")
	assert.ErrorContains(t, err, "invalid --published")
}

/*
TestDocsMutations verifies update validation and the error surfaced from the API.
*/
func TestDocsMutations(t *testing.T) {
	apiURL := fakeAPI(t, map[string]http.HandlerFunc{
		"DELETE /api/v1/documents/{id}": writeJSON(http.StatusForbidden, `{"error":"Admin role required","code":"FORBIDDEN"}`),
		"PATCH /api/v1/documents/{id}":  writeJSON(http.StatusOK, `{"data":{"id":"d1","title":"Renamed","category":"guide"}}`),
	})

	_, err := execute(t, "", "docs", "update", "d1", "--api-url", apiURL)
	assert.ErrorIs(t, err, errNothingToUpdate)

	output, err := execute(t, "", "docs", "update", "d1", "--title", "Renamed", "--api-url", apiURL)
	require.NoError(t, err)
	assert.Contains(t, output, "Renamed")

	_, err = execute(t, "", "docs", "delete", "d1", "--api-url", apiURL, "--token", "editor-token")
	assert.ErrorContains(t, err, "Admin role required")
}

/*
TestLogsAdd_ReleasedAt verifies that the release date flag is validated before any request.
*/
func TestLogsAdd_ReleasedAt(t *testing.T) {
	apiURL := fakeAPI(t, map[string]http.HandlerFunc{
		"POST /api/v1/update-logs": writeJSON(http.StatusCreated, `{"data":{"id":"u1","version":"2.14.0"}}`),
	})

	_, err := execute(t, "", "logs", "add", "--version", "2.14.0", "--released-at", "yesterday", "--api-url", apiURL)
	assert.ErrorContains(t, err, "invalid --released-at")

	output, err := execute(t, "", "logs", "add", "--version", "2.14.0", "--released-at", "2026-10-01", "--api-url", apiURL)
	require.NoError(t, err)
	assert.Equal(t, "u1", strings.TrimSpace(output))
}

/*
TestCatalogSort verifies that catalog lists are re-sorted locally with the given expression.
*/
func TestCatalogSort(t *testing.T) {
	apiURL := fakeAPI(t, map[string]http.HandlerFunc{
		"GET /api/v1/swimsuits": writeJSON(http.StatusOK, `{"data":[
			{"id":"s1","name":"Venus","type":"POW","rarity":"SR","stats":{"pow":120,"tec":30}},
			{"id":"s2","name":"Sunset","type":"TEC","rarity":"SSR","stats":{"pow":80,"tec":90}},
			{"id":"s3","name":"Breeze","type":"POW","rarity":"ssr","stats":{"pow":100,"tec":10}}
		]}`),
	})

	tests := []struct {
		name        string
		by          string
		expectedIDs []string
	}{
		{"default", "", []string{"s2", "s3", "s1"}},
		{"single_stat", "stats.pow:desc", []string{"s1", "s3", "s2"}},
		{"name", "name", []string{"s3", "s2", "s1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := execute(t, "", "catalog", "sort", "--kind", "swimsuits", "--by", tt.by, "--api-url", apiURL)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedIDs, dataRows(output))
		})
	}

	_, err := execute(t, "", "catalog", "sort", "--kind", "boats", "--api-url", apiURL)
	assert.Error(t, err)

	_, err = execute(t, "", "catalog", "sort", "--by", "name:sideways", "--api-url", apiURL)
	assert.Error(t, err)
}
