// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/flagdex/internal/core/catalog"
	"github.com/taibuivan/flagdex/internal/core/filter"
	"github.com/taibuivan/flagdex/internal/core/query"
	"github.com/taibuivan/flagdex/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/flagdex/internal/platform/request"
	"github.com/taibuivan/flagdex/internal/platform/respond"
	"github.com/taibuivan/flagdex/pkg/pagination"
)

// FlagsView is the data block of a session query.
type FlagsView struct {
	Session      *State                `json:"session"`
	Flags        []catalog.FlagSummary `json:"flags"`
	Availability query.Availability    `json:"availability"`
}

type createRequest struct {
	Language string `json:"language"`
}

type toggleRequest struct {
	Category string `json:"category"`
	Element  string `json:"element"`
}

// # Handler Implementation

// Handler implements the session endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new session [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the session endpoints.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/sessions", func(r chi.Router) {
		r.Post("/", handler.create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handler.get)
			r.Patch("/", handler.update)
			r.Delete("/", handler.delete)

			r.Post("/filters", handler.toggleFilter)
			r.Delete("/filters", handler.clearFilters)
			r.Put("/pattern", handler.setPattern)
			r.Get("/flags", handler.listFlags)
		})
	})
}

// # Endpoints

/*
POST /api/v1/sessions.

Request (optional body):
  - language: string (fr, en). Defaults to the negotiated language.

Response:
  - 201: State
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var body createRequest
	if request.ContentLength != 0 {
		if err := requestutil.DecodeJSON(request, &body); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}
	if body.Language == "" {
		body.Language = ctxutil.GetLanguage(request.Context())
	}

	state, err := handler.service.Create(request.Context(), body.Language)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, state)
}

/*
GET /api/v1/sessions/{id}.

Response:
  - 200: State
  - 404: NOT_FOUND
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	state, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, state)
}

/*
PATCH /api/v1/sessions/{id}.

Request:
  - search, mode, sort, language: string (each optional)

Response:
  - 200: State
  - 400: VALIDATION_ERROR
  - 404: NOT_FOUND
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var body Update
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	state, err := handler.service.Update(request.Context(), requestutil.Param(request, "id"), body)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, state)
}

/*
DELETE /api/v1/sessions/{id}.

Response:
  - 204: No Content
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

/*
POST /api/v1/sessions/{id}/filters.

Description: Toggles one (category, element) pair.

Response:
  - 200: ToggleResult
  - 400: VALIDATION_ERROR
  - 404: NOT_FOUND
  - 422: UNPROCESSABLE (pair unknown to the taxonomy)
*/
func (handler *Handler) toggleFilter(writer http.ResponseWriter, request *http.Request) {
	var body toggleRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.ToggleFilter(request.Context(), requestutil.Param(request, "id"), filter.New(body.Category, body.Element))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

/*
DELETE /api/v1/sessions/{id}/filters.

Description: Clears every filter and the pattern filter.
*/
func (handler *Handler) clearFilters(writer http.ResponseWriter, request *http.Request) {
	state, err := handler.service.ClearFilters(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, state)
}

/*
PUT /api/v1/sessions/{id}/pattern.

Request:
  - schema: string (empty clears the pattern)
  - colors: []string (one per band, "" or "*" is a wildcard)
  - require_symbol: bool
*/
func (handler *Handler) setPattern(writer http.ResponseWriter, request *http.Request) {
	var body PatternInput
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	state, err := handler.service.SetPattern(request.Context(), requestutil.Param(request, "id"), body)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, state)
}

/*
GET /api/v1/sessions/{id}/flags.

Description: Runs the session's query and returns one page of matches together
with the availability of every taxonomy node.

Response:
  - 200: FlagsView with catalog.ListMeta
  - 404: NOT_FOUND
*/
func (handler *Handler) listFlags(writer http.ResponseWriter, request *http.Request) {
	state, exploration, err := handler.service.Explore(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page := pagination.FromRequest(request)
	records := pagination.Window(exploration.Result.Records, page)

	respond.Paginated(writer, FlagsView{
		Session:      state,
		Flags:        handler.service.Summaries(records, state),
		Availability: exploration.Availability,
	}, catalog.ListMeta{
		Meta:         pagination.NewMeta(page.Page, page.Limit, exploration.Result.Filtered()),
		DatasetTotal: exploration.Result.Total,
	})
}
