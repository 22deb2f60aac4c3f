// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListCases returns one page of the user's cases, newest first unless
// options say otherwise.
func (c *Client) ListCases(ctx context.Context, options ListOptions) (*CasePage, error) {
	query := url.Values{}
	if options.Page > 0 {
		query.Set("page", strconv.Itoa(options.Page))
	}
	if options.Size > 0 {
		query.Set("size", strconv.Itoa(options.Size))
	}
	if options.SortBy != "" {
		query.Set("sortBy", options.SortBy)
	}
	if options.SortDirection != "" {
		query.Set("sortDirection", options.SortDirection)
	}

	body, err := c.doRequest(ctx, http.MethodGet, "/cases/", nil, query)
	if err != nil {
		return nil, fmt.Errorf("client: listing cases failed: %w", err)
	}

	var page CasePage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("client: failed to parse case listing: %w", err)
	}
	return &page, nil
}

// CreateCase opens a new case with the given title and description.
func (c *Client) CreateCase(ctx context.Context, title, description string) (*Case, error) {
	if title == "" {
		return nil, fmt.Errorf("client: case title is required")
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/cases/create-case", map[string]string{
		"title":       title,
		"description": description,
	})
	if err != nil {
		return nil, fmt.Errorf("client: creating case failed: %w", err)
	}

	var created Case
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("client: failed to parse created case: %w", err)
	}
	c.logger.Info("case created", "id", created.ID, "title", created.Title)
	return &created, nil
}

// GetCase fetches a single case by ID.
func (c *Client) GetCase(ctx context.Context, id int64) (*Case, error) {
	body, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/cases/%d", id), nil)
	if err != nil {
		return nil, fmt.Errorf("client: fetching case %d failed: %w", id, err)
	}

	var result Case
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("client: failed to parse case: %w", err)
	}
	return &result, nil
}
