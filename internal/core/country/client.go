// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package country

import (
	stdctx "context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/taibuivan/flagdex/internal/platform/constants"
)

const (
	// DefaultClientTimeout bounds one bulk lookup.
	DefaultClientTimeout = 10 * time.Second

	// maxResponseSize caps the bulk payload (the full list is a few hundred KB).
	maxResponseSize = 8 * 1024 * 1024
)

// Source fetches figures keyed by the lookup's own country names.
type Source interface {
	FetchAll(context stdctx.Context) (map[string]Figures, error)
}

// Client queries a REST Countries compatible API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for baseURL. A zero timeout uses [DefaultClientTimeout].
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultClientTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type apiCountry struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Population int64   `json:"population"`
	Area       float64 `json:"area"`
}

// FetchAll downloads population and area for every country in one request.
func (c *Client) FetchAll(context stdctx.Context) (map[string]Figures, error) {
	url := c.baseURL + "/all?fields=name,population,area"

	req, err := http.NewRequestWithContext(context, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("country: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constants.AppName+"/"+constants.AppVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("country: fetch %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("country: fetch %s: unexpected status %s", url, resp.Status)
	}

	var countries []apiCountry
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&countries); err != nil {
		return nil, fmt.Errorf("country: decode response: %w", err)
	}

	figures := make(map[string]Figures, len(countries))
	for _, entry := range countries {
		if entry.Name.Common == "" {
			continue
		}
		figures[entry.Name.Common] = Figures{Population: entry.Population, Area: entry.Area}
	}
	return figures, nil
}
