// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package document

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

// Handler exposes documents over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a document [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the document endpoints on router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listDocuments)
	router.Get("/{id}", handler.getDocument)

	// Editors write, admins delete
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createDocument)
		editorRoute.Patch("/{id}", handler.updateDocument)

		editorRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteDocument)
	})
}

func (handler *Handler) listDocuments(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Published: convert.ToBoolPtr(requestutil.Query(request, "published")),
		Category:  requestutil.Query(request, "category"),
		SortBy:    requestutil.Query(request, "sort"),
		SortOrder: requestutil.Query(request, "order"),
	}

	documents, total, err := handler.service.ListDocuments(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, documents, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getDocument(writer http.ResponseWriter, request *http.Request) {
	document, err := handler.service.GetDocument(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, document)
}

func (handler *Handler) createDocument(writer http.ResponseWriter, request *http.Request) {
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

	// Unsigned drafts are attributed to the operator who posted them
	if input.Author == "" {
		input.Author = claims.Operator
	}

	document, err := handler.service.CreateDocument(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, document)
}

func (handler *Handler) updateDocument(writer http.ResponseWriter, request *http.Request) {
	var input Patch
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	document, err := handler.service.UpdateDocument(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, document)
}

func (handler *Handler) deleteDocument(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteDocument(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
