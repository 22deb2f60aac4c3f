// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/zeebo/blake3"
)

// UploadResult is the outcome of a document upload: the created
// document record and the BLAKE3 digest of the bytes that went over
// the wire, for audit logs and duplicate detection.
type UploadResult struct {
	Document Document
	Digest   string
}

// ProgressFunc reports upload progress. total is the file size in
// bytes; sent grows monotonically up to total.
type ProgressFunc func(sent, total int64)

// UploadDocument streams the file at path into the given case as a
// multipart upload. The file is never buffered whole in memory. If
// maxBytes is positive, files larger than that are rejected before any
// bytes are sent. onProgress may be nil.
func (c *Client) UploadDocument(ctx context.Context, caseID int64, path string, maxBytes int64, onProgress ProgressFunc) (*UploadResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("client: opening document: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("client: stat document: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("client: %s is a directory", path)
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return nil, fmt.Errorf("client: %s is %d bytes, exceeding the %d byte upload limit", path, info.Size(), maxBytes)
	}

	hasher := blake3.New()
	counter := &progressReader{
		reader:   io.TeeReader(file, hasher),
		total:    info.Size(),
		callback: onProgress,
	}

	pipeReader, pipeWriter := io.Pipe()
	form := multipart.NewWriter(pipeWriter)

	go func() {
		if err := form.WriteField("caseId", strconv.FormatInt(caseID, 10)); err != nil {
			pipeWriter.CloseWithError(err)
			return
		}
		part, err := form.CreateFormFile("file", filepath.Base(path))
		if err != nil {
			pipeWriter.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, counter); err != nil {
			pipeWriter.CloseWithError(err)
			return
		}
		pipeWriter.CloseWithError(form.Close())
	}()

	body, err := c.doRequestRaw(ctx, http.MethodPost, "/documents/upload", form.FormDataContentType(), pipeReader)
	if err != nil {
		return nil, fmt.Errorf("client: uploading document: %w", err)
	}

	var created Document
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("client: failed to parse uploaded document: %w", err)
	}

	digest := hex.EncodeToString(hasher.Sum(nil))
	c.logger.Info("document uploaded",
		"id", created.ID,
		"case", caseID,
		"file", created.FileName,
		"bytes", info.Size(),
		"blake3", digest)

	return &UploadResult{Document: created, Digest: digest}, nil
}

// ListDocuments returns the documents attached to a case.
func (c *Client) ListDocuments(ctx context.Context, caseID int64) ([]Document, error) {
	body, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/documents/case/%d", caseID), nil)
	if err != nil {
		return nil, fmt.Errorf("client: listing documents for case %d failed: %w", caseID, err)
	}

	var documents []Document
	if err := json.Unmarshal(body, &documents); err != nil {
		return nil, fmt.Errorf("client: failed to parse document listing: %w", err)
	}
	return documents, nil
}

// DownloadDocument streams the named file into destination and returns
// the number of bytes written. The response is never buffered whole.
func (c *Client) DownloadDocument(ctx context.Context, fileName string, destination io.Writer) (int64, error) {
	if fileName == "" {
		return 0, fmt.Errorf("client: file name is required for download")
	}

	stream, err := c.doRequestStream(ctx, "/documents/download/"+url.PathEscape(fileName))
	if err != nil {
		return 0, fmt.Errorf("client: downloading %s: %w", fileName, err)
	}
	defer stream.Close()

	written, err := io.Copy(destination, stream)
	if err != nil {
		return written, fmt.Errorf("client: writing %s: %w", fileName, err)
	}
	return written, nil
}

// DeleteDocument removes a document and its stored file.
func (c *Client) DeleteDocument(ctx context.Context, id int64) error {
	if _, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/documents/%d", id), nil); err != nil {
		return fmt.Errorf("client: deleting document %d failed: %w", id, err)
	}
	c.logger.Info("document deleted", "id", id)
	return nil
}

// progressReader counts bytes as they are read and reports them to the
// callback.
type progressReader struct {
	reader   io.Reader
	sent     int64
	total    int64
	callback ProgressFunc
}

func (p *progressReader) Read(buffer []byte) (int, error) {
	n, err := p.reader.Read(buffer)
	if n > 0 {
		p.sent += int64(n)
		if p.callback != nil {
			p.callback(p.sent, p.total)
		}
	}
	return n, err
}
