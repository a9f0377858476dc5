// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preference

import (
	stdctx "context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/taibuivan/flagdex/internal/platform/apperr"
	"github.com/taibuivan/flagdex/internal/platform/validate"
	"github.com/taibuivan/flagdex/pkg/pointer"
)

var clientIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// # Service Layer

// Service validates and persists client settings.
type Service struct {
	repository Repository
	logger     *slog.Logger
	now        func() time.Time
}

// NewService constructs a new [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
		now:        time.Now,
	}
}

/*
Get retrieves the settings of a client.

Description: A client without stored settings receives the defaults.

Returns:
  - *Preference: Stored or default settings
  - error: VALIDATION_ERROR for a malformed id, or a storage failure
*/
func (service *Service) Get(context stdctx.Context, clientID string) (*Preference, error) {
	if err := checkClientID(clientID); err != nil {
		return nil, err
	}

	pref, err := service.repository.FindByClientID(context, clientID)
	if apperr.HasCode(err, apperr.CodeNotFound) {
		return Defaults(clientID), nil
	}
	if err != nil {
		return nil, err
	}
	return pref, nil
}

/*
Update merges patch into the current settings and saves the result.

Parameters:
  - context: context.Context
  - clientID: string
  - patch: Patch (nil fields are kept)

Returns:
  - *Preference: The persisted settings
  - error: VALIDATION_ERROR listing every invalid field
*/
func (service *Service) Update(context stdctx.Context, clientID string, patch Patch) (*Preference, error) {
	current, err := service.Get(context, clientID)
	if err != nil {
		return nil, err
	}

	next := &Preference{
		ClientID:  clientID,
		Zoom:      pointer.Fallback(patch.Zoom, current.Zoom),
		Theme:     strings.ToLower(strings.TrimSpace(pointer.Fallback(patch.Theme, current.Theme))),
		Language:  strings.ToLower(strings.TrimSpace(pointer.Fallback(patch.Language, current.Language))),
		UpdatedAt: service.now().UTC(),
	}

	v := &validate.Validator{}
	v.Range("zoom", next.Zoom, MinZoom, MaxZoom)
	v.OneOf("theme", next.Theme, Themes...)
	v.OneOf("language", next.Language, "fr", "en")
	if err := v.Err(); err != nil {
		return nil, err
	}

	if err := service.repository.Upsert(context, next); err != nil {
		return nil, err
	}

	service.logger.Info("client_preferences_updated", slog.String("client_id", clientID))
	return next, nil
}

// SetClock replaces the time source. Tests use it to control timestamps.
func (service *Service) SetClock(now func() time.Time) {
	service.now = now
}

func checkClientID(clientID string) error {
	v := &validate.Validator{}
	v.Required("client_id", clientID)
	v.MaxLen("client_id", clientID, maxClientIDLen)
	v.Custom("client_id", clientID != "" && !clientIDRegex.MatchString(clientID), "Only letters, digits, hyphens and underscores")
	return v.Err()
}
