// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// SummarizeDocument runs the AI analysis for a document and waits for
// the result. The backend extracts the document text and sends it to
// the analysis model, so this call can take minutes for large files;
// bound it with the context.
func (c *Client) SummarizeDocument(ctx context.Context, documentID int64) (*Summary, error) {
	body, err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/summary/sync/%d", documentID), nil)
	if err != nil {
		return nil, fmt.Errorf("client: summarizing document %d failed: %w", documentID, err)
	}

	var summary Summary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("client: failed to parse summary: %w", err)
	}
	return &summary, nil
}

// RequestSummaryAsync queues the AI analysis for a document without
// waiting. The backend answers 202 Accepted; fetch the result later
// with SummarizeDocument, which returns the cached summary when it is
// up to date.
func (c *Client) RequestSummaryAsync(ctx context.Context, documentID int64) error {
	if _, err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/summary/async/%d", documentID), nil); err != nil {
		return fmt.Errorf("client: queueing summary for document %d failed: %w", documentID, err)
	}
	c.logger.Info("summary queued", "document", documentID)
	return nil
}
