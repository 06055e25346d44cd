// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/vvdex/internal/platform/request"
	"github.com/taibuivan/vvdex/internal/platform/respond"
	"github.com/taibuivan/vvdex/pkg/pagination"
)

// Handler exposes the catalog collections over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a catalog [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts /characters, /swimsuits and /skills on router. All are public.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	for _, kind := range Kinds() {
		router.Route("/"+string(kind), func(kindRoute chi.Router) {
			kindRoute.Get("/", handler.listItems(kind))
			kindRoute.Get("/{id}", handler.getItem(kind))
		})
	}
}

func (handler *Handler) listItems(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		paginationParams := pagination.FromRequest(request)

		query := Query{
			Sort:   requestutil.Query(request, "sort"),
			Type:   requestutil.Query(request, "type"),
			Rarity: requestutil.Query(request, "rarity"),
		}

		items, err := handler.service.List(request.Context(), kind, query)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		total := len(items)
		start := min(paginationParams.Offset(), total)
		end := min(start+paginationParams.Limit, total)

		respond.Paginated(writer, items[start:end], pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
	}
}

func (handler *Handler) getItem(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		item, err := handler.service.Get(request.Context(), kind, requestutil.ID(request, "id"))
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, item)
	}
}
