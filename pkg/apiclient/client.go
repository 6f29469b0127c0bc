// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

// Package apiclient is a Go client for the Hirevine HTTP API.
//
// # Mutation Handling
//
// Every mutating call returns a plain error. When a server-side write guard
// refused the operation, that error is a [*VetoError] carrying the guard's
// machine code and human-readable message; extract it with [AsVeto] at one
// call boundary instead of special-casing each mutation. All other failures
// surface as [*APIError].
//
// # Caching
//
// Candidate detail responses are memoized per client and dropped after any
// candidate or document mutation touching that candidate, so a read issued
// right after a write never serves the stale pre-write detail.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"
)

// Candidate mirrors the server's candidate resource.
type Candidate struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Phone          *string   `json:"phone"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CandidateInput is the payload for creating or updating a candidate.
type CandidateInput struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
}

// Document mirrors the server's document metadata resource. The server never
// exposes the underlying storage key; the id is the only handle.
type Document struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	CandidateID    string    `json:"candidate_id"`
	DocType        string    `json:"doc_type"`
	FileName       string    `json:"file_name"`
	MimeType       string    `json:"mime_type"`
	SizeBytes      int64     `json:"size_bytes"`
	CreatedAt      time.Time `json:"created_at"`
}

// Client talks to one Hirevine API server. Safe for concurrent use.
//
// Authentication is cookie-based: Login stores the session cookie in the
// client's jar and every subsequent call carries it automatically.
type Client struct {
	baseURL string
	http    *http.Client

	mu            sync.Mutex
	candidateMemo map[string]*Candidate
}

// New builds a client for the API at baseURL (no trailing slash required).
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("apiclient: cookie jar: %w", err)
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
		candidateMemo: make(map[string]*Candidate),
	}, nil
}

// Login authenticates and stores the session cookie for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) error {
	payload := map[string]string{"email": email, "password": password}
	return c.mutateJSON(ctx, http.MethodPost, "/api/v1/auth/login", payload, nil)
}

// Logout terminates the server-side session.
func (c *Client) Logout(ctx context.Context) error {
	return c.mutateJSON(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil)
}

// GetCandidate fetches one candidate, serving a memoized copy when fresh.
func (c *Client) GetCandidate(ctx context.Context, id string) (*Candidate, error) {
	c.mu.Lock()
	if cached, ok := c.candidateMemo[id]; ok {
		copied := *cached
		c.mu.Unlock()
		return &copied, nil
	}
	c.mu.Unlock()

	var cand Candidate
	if err := c.get(ctx, "/api/v1/candidates/"+id, &cand); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.candidateMemo[id] = &cand
	c.mu.Unlock()

	copied := cand
	return &copied, nil
}

// CreateCandidate creates a candidate in the session's active organization.
func (c *Client) CreateCandidate(ctx context.Context, input CandidateInput) (*Candidate, error) {
	var cand Candidate
	if err := c.mutateJSON(ctx, http.MethodPost, "/api/v1/candidates", input, &cand); err != nil {
		return nil, err
	}
	return &cand, nil
}

// UpdateCandidate updates a candidate and drops its memoized detail.
func (c *Client) UpdateCandidate(ctx context.Context, id string, input CandidateInput) (*Candidate, error) {
	var cand Candidate
	if err := c.mutateJSON(ctx, http.MethodPut, "/api/v1/candidates/"+id, input, &cand); err != nil {
		return nil, err
	}
	c.dropMemo(id)
	return &cand, nil
}

// DeleteCandidate deletes a candidate and drops its memoized detail.
func (c *Client) DeleteCandidate(ctx context.Context, id string) error {
	if err := c.mutateJSON(ctx, http.MethodDelete, "/api/v1/candidates/"+id, nil, nil); err != nil {
		return err
	}
	c.dropMemo(id)
	return nil
}

// ListDocuments lists document metadata for one candidate.
func (c *Client) ListDocuments(ctx context.Context, candidateID string) ([]Document, error) {
	var docs []Document
	if err := c.get(ctx, "/api/v1/candidates/"+candidateID+"/documents", &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// UploadDocument uploads one binary for a candidate and drops the candidate's
// memoized detail on success.
func (c *Client) UploadDocument(ctx context.Context, candidateID, docType, fileName string, body io.Reader) (*Document, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	if err := form.WriteField("doc_type", docType); err != nil {
		return nil, fmt.Errorf("apiclient: build form: %w", err)
	}
	part, err := form.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("apiclient: build form: %w", err)
	}
	if _, err := io.Copy(part, body); err != nil {
		return nil, fmt.Errorf("apiclient: read file: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("apiclient: build form: %w", err)
	}

	var doc Document
	path := "/api/v1/candidates/" + candidateID + "/documents"
	if err := c.mutate(ctx, http.MethodPost, path, form.FormDataContentType(), &buf, &doc); err != nil {
		return nil, err
	}
	c.dropMemo(candidateID)
	return &doc, nil
}

// DeleteDocument deletes one document and drops the owning candidate's
// memoized detail.
func (c *Client) DeleteDocument(ctx context.Context, candidateID, documentID string) error {
	if err := c.mutateJSON(ctx, http.MethodDelete, "/api/v1/documents/"+documentID, nil, nil); err != nil {
		return err
	}
	c.dropMemo(candidateID)
	return nil
}

func (c *Client) dropMemo(candidateID string) {
	c.mu.Lock()
	delete(c.candidateMemo, candidateID)
	c.mu.Unlock()
}

// successEnvelope matches the server's {data} wrapper.
type successEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// errorEnvelope matches the server's {error, code} wrapper.
type errorEnvelope struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("apiclient: build request: %w", err)
	}
	return c.do(request, out)
}

func (c *Client) mutateJSON(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("apiclient: encode payload: %w", err)
		}
		body = bytes.NewReader(encoded)
	}
	return c.mutate(ctx, method, path, "application/json", body, out)
}

func (c *Client) mutate(ctx context.Context, method, path, contentType string, body io.Reader, out interface{}) error {
	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("apiclient: build request: %w", err)
	}
	if body != nil {
		request.Header.Set("Content-Type", contentType)
	}
	return c.do(request, out)
}

// do executes the request and decodes either the success envelope into out or
// the error envelope into a typed error. Guard refusals become [*VetoError];
// everything else becomes [*APIError].
func (c *Client) do(request *http.Request, out interface{}) error {
	response, err := c.http.Do(request)
	if err != nil {
		return fmt.Errorf("apiclient: %s %s: %w", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	if response.StatusCode >= 400 {
		var envelope errorEnvelope
		if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil {
			return &APIError{StatusCode: response.StatusCode, Code: "UNKNOWN", Message: "malformed error response"}
		}
		if response.StatusCode == http.StatusForbidden && isVetoCode(envelope.Code) {
			return &VetoError{Code: envelope.Code, Message: envelope.Error}
		}
		return &APIError{StatusCode: response.StatusCode, Code: envelope.Code, Message: envelope.Error}
	}

	if out == nil || response.StatusCode == http.StatusNoContent {
		return nil
	}

	var envelope successEnvelope
	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("apiclient: decode response: %w", err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("apiclient: decode response data: %w", err)
	}
	return nil
}
