// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package access

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/vvdex/internal/platform/request"
	"github.com/taibuivan/vvdex/internal/platform/respond"
)

// Handler exposes token issuance over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs an access [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts POST /token on router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/token", handler.issueToken)
}

func (handler *Handler) issueToken(writer http.ResponseWriter, request *http.Request) {
	var input Credentials
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.service.IssueToken(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, token)
}
