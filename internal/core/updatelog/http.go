// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package updatelog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/vvdex/internal/platform/middleware"
	requestutil "github.com/taibuivan/vvdex/internal/platform/request"
	"github.com/taibuivan/vvdex/internal/platform/respond"
	"github.com/taibuivan/vvdex/internal/platform/sec"
	"github.com/taibuivan/vvdex/pkg/convert"
	"github.com/taibuivan/vvdex/pkg/pagination"
)

// Handler exposes update logs over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs an update log [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the update log endpoints on router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listUpdateLogs)
	router.Get("/{id}", handler.getUpdateLog)

	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createUpdateLog)
		editorRoute.Patch("/{id}", handler.updateUpdateLog)

		editorRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteUpdateLog)
	})
}

func (handler *Handler) listUpdateLogs(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Published: convert.ToBoolPtr(requestutil.Query(request, "published")),
		Category:  requestutil.Query(request, "category"),
		Version:   requestutil.Query(request, "version"),
		SortBy:    requestutil.Query(request, "sort"),
		SortOrder: requestutil.Query(request, "order"),
	}

	logs, total, err := handler.service.ListUpdateLogs(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, logs, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getUpdateLog(writer http.ResponseWriter, request *http.Request) {
	log, err := handler.service.GetUpdateLog(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, log)
}

func (handler *Handler) createUpdateLog(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Draft
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.Author == "" {
		input.Author = claims.Operator
	}

	log, err := handler.service.CreateUpdateLog(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, log)
}

func (handler *Handler) updateUpdateLog(writer http.ResponseWriter, request *http.Request) {
	var input Patch
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	log, err := handler.service.UpdateUpdateLog(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, log)
}

func (handler *Handler) deleteUpdateLog(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteUpdateLog(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
