// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/flagdex/internal/platform/request"
	"github.com/taibuivan/flagdex/internal/platform/respond"
)

// Handler implements the preference endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new preference [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the preference endpoints.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/preferences/{clientID}", handler.get)
	router.Put("/preferences/{clientID}", handler.update)
}

/*
GET /api/v1/preferences/{clientID}.

Response:
  - 200: Preference: Stored settings, or the defaults
  - 400: VALIDATION_ERROR
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	pref, err := handler.service.Get(request.Context(), requestutil.Param(request, "clientID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pref)
}

/*
PUT /api/v1/preferences/{clientID}.

Request:
  - zoom: int (50-200)
  - theme: string (light, dark, system)
  - language: string (fr, en)

Response:
  - 200: Preference: The persisted settings
  - 400: VALIDATION_ERROR
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	pref, err := handler.service.Update(request.Context(), requestutil.Param(request, "clientID"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pref)
}
