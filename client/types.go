// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package client

// Case is a legal case owned by the authenticated user.
type Case struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// CreatedAt is an ISO-8601 date as sent by the server. It is kept
	// as a string because the backend serializes dates without a zone.
	CreatedAt string `json:"createdAt"`
	UserID    int64  `json:"userId"`
}

// CasePage is one page of a case listing.
type CasePage struct {
	Content       []Case `json:"content"`
	TotalElements int64  `json:"totalElements"`
	TotalPages    int    `json:"totalPages"`
	Number        int    `json:"number"`
	Size          int    `json:"size"`
}

// ListOptions selects a page of a case listing. The zero value asks
// for the server defaults (first page, newest first).
type ListOptions struct {
	Page          int
	Size          int
	SortBy        string
	SortDirection string
}

// Document is an uploaded file attached to a case.
type Document struct {
	ID          int64  `json:"id"`
	FileName    string `json:"fileName"`
	FileType    string `json:"fileType"`
	FileSize    int64  `json:"fileSize"`
	FilePath    string `json:"filePath"`
	DownloadURL string `json:"downloadUrl"`
	CreatedAt   string `json:"createdAt"`
	CaseID      int64  `json:"caseId"`
}

// Summary is the AI analysis of a document.
type Summary struct {
	SummaryText      string            `json:"summaryText"`
	ExtractedClauses []string          `json:"extractedClauses"`
	QuestionAnswers  map[string]string `json:"questionAnswers"`
	AnalyzedAt       string            `json:"analyzedAt"`
	UpToDate         bool              `json:"upToDate"`
}
