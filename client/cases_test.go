// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"net/http"
	"testing"
)

func TestListCases(t *testing.T) {
	tc := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cases/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("page = %q", got)
		}
		if got := r.URL.Query().Get("sortBy"); got != "title" {
			t.Errorf("sortBy = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"content": [
				{"id":1,"title":"NDA review","description":"vendor NDA","createdAt":"2026-08-01","userId":42},
				{"id":2,"title":"Lease dispute","description":"","createdAt":"2026-08-12","userId":42}
			],
			"totalElements": 12,
			"totalPages": 2,
			"number": 2,
			"size": 10
		}`))
	}))
	tc.authenticate(t)

	page, err := tc.ListCases(context.Background(), ListOptions{Page: 2, SortBy: "title"})
	if err != nil {
		t.Fatalf("ListCases failed: %v", err)
	}
	if len(page.Content) != 2 {
		t.Fatalf("got %d cases, want 2", len(page.Content))
	}
	if page.Content[0].Title != "NDA review" || page.Content[0].ID != 1 {
		t.Errorf("unexpected first case: %+v", page.Content[0])
	}
	if page.TotalElements != 12 || page.TotalPages != 2 {
		t.Errorf("unexpected paging: %+v", page)
	}
}

func TestCreateCase(t *testing.T) {
	tc := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/cases/create-case" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":3,"title":"Contract breach","description":"supplier","createdAt":"2026-08-29","userId":42}`))
	}))
	tc.authenticate(t)

	created, err := tc.CreateCase(context.Background(), "Contract breach", "supplier")
	if err != nil {
		t.Fatalf("CreateCase failed: %v", err)
	}
	if created.ID != 3 || created.Title != "Contract breach" {
		t.Errorf("unexpected case: %+v", created)
	}

	if _, err := tc.CreateCase(context.Background(), "", ""); err == nil {
		t.Error("expected error for empty title")
	}
}

func TestGetCase(t *testing.T) {
	tc := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cases/7" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":7,"title":"Estate","description":"probate","createdAt":"2026-07-04","userId":42}`))
	}))
	tc.authenticate(t)

	result, err := tc.GetCase(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetCase failed: %v", err)
	}
	if result.ID != 7 || result.Description != "probate" {
		t.Errorf("unexpected case: %+v", result)
	}
}
