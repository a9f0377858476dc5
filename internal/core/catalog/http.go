// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/flagdex/internal/core/country"
	"github.com/taibuivan/flagdex/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/flagdex/internal/platform/request"
	"github.com/taibuivan/flagdex/internal/platform/respond"
	"github.com/taibuivan/flagdex/pkg/convert"
	"github.com/taibuivan/flagdex/pkg/pagination"
)

// ListMeta is the pagination block of flag lists. Total counts matching flags,
// DatasetTotal counts every flag.
type ListMeta struct {
	pagination.Meta
	DatasetTotal int `json:"dataset_total"`
}

// # Handler Implementation

// Handler implements the read-only catalog endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new catalog [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the catalog endpoints.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/taxonomy", handler.getTaxonomy)
	router.Get("/flags", handler.listFlags)
	router.Get("/flags/availability", handler.getAvailability)
	router.Get("/flags/{slug}", handler.getFlag)
}

// # Endpoints

/*
GET /api/v1/taxonomy.

Response:
  - 200: taxonomy.Taxonomy: The category tree with bilingual labels
*/
func (handler *Handler) getTaxonomy(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Taxonomy())
}

/*
GET /api/v1/flags.

Description: Runs a stateless query over the dataset.

Request:
  - filter: []string (category:element, repeatable or comma separated)
  - q: string (name, keyword or motto search)
  - mode: string (or, and, not)
  - schema: string (pattern schema id)
  - colors: string (comma separated band colors, empty slot is a wildcard)
  - symbol: bool (pattern requires a symbol)
  - sort: string (name_asc, name_desc, population_asc, ...)
  - lang: string (fr, en)
  - page, limit: int

Response:
  - 200: []FlagSummary: Paginated matches with ListMeta
  - 400: VALIDATION_ERROR
*/
func (handler *Handler) listFlags(writer http.ResponseWriter, request *http.Request) {
	params, err := InputFromRequest(request).Params()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	exploration, err := handler.service.Explore(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page := pagination.FromRequest(request)
	records := pagination.Window(exploration.Result.Records, page)

	respond.Paginated(writer, handler.service.Summaries(records, params.Language), ListMeta{
		Meta:         pagination.NewMeta(page.Page, page.Limit, exploration.Result.Filtered()),
		DatasetTotal: exploration.Result.Total,
	})
}

/*
GET /api/v1/flags/availability.

Description: Accepts the same parameters as the list endpoint and reports, for every
taxonomy node, whether selecting it would leave at least one flag.

Response:
  - 200: AvailabilityView
  - 400: VALIDATION_ERROR
*/
func (handler *Handler) getAvailability(writer http.ResponseWriter, request *http.Request) {
	params, err := InputFromRequest(request).Params()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	exploration, err := handler.service.Explore(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, AvailabilityView{
		Filtered:     exploration.Result.Filtered(),
		Total:        exploration.Result.Total,
		Availability: exploration.Availability,
	})
}

/*
GET /api/v1/flags/{slug}.

Response:
  - 200: FlagDetail
  - 404: NOT_FOUND
*/
func (handler *Handler) getFlag(writer http.ResponseWriter, request *http.Request) {
	lang, _ := country.ParseLanguage(requestLanguage(request))

	detail, err := handler.service.Detail(request.Context(), requestutil.Param(request, "slug"), lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

// # Request Parsing

// InputFromRequest reads the query values shared by the list and availability endpoints.
func InputFromRequest(request *http.Request) Input {
	return Input{
		Filters:       requestutil.QueryAll(request, "filter"),
		Search:        requestutil.Query(request, "q"),
		Mode:          requestutil.Query(request, "mode"),
		Schema:        requestutil.Query(request, "schema"),
		Colors:        convert.ToSlots(request.URL.Query().Get("colors")),
		RequireSymbol: convert.ToBool(requestutil.Query(request, "symbol")),
		Sort:          requestutil.Query(request, "sort"),
		Language:      requestLanguage(request),
	}
}

// requestLanguage prefers the negotiated language and falls back to the raw parameter.
func requestLanguage(request *http.Request) string {
	if lang := ctxutil.GetLanguage(request.Context()); lang != "" {
		return lang
	}
	return requestutil.Query(request, "lang")
}
