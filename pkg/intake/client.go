// Package intake is the client side of the submission pipeline: it
// validates a candidate with the form rules before anything touches
// the network, posts valid candidates to the intake API and renders
// the per-mission confirmation copy for accepted submissions.
package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nird-intake/internal/analysis"
	"nird-intake/internal/domain"
	"nird-intake/internal/validation"
)

// FieldErrors maps form field names to validation messages. Submit
// returns it without performing any network call.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	return fmt.Sprintf("validation failed on fields: %s", strings.Join(fields, ", "))
}

// Client talks to the intake API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an intake client for the given API base URL,
// e.g. "http://localhost:8080/api"
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SubmitResult is the outcome of an accepted submission
type SubmitResult struct {
	Submission   domain.Submission
	Analysis     *analysis.Result
	Confirmation Confirmation
}

// createResponse mirrors the API's creation envelope
type createResponse struct {
	Message  string            `json:"message"`
	ID       string            `json:"id"`
	Data     domain.Submission `json:"data"`
	Analysis *analysis.Result  `json:"analysis"`
}

// errorResponse mirrors the API's failure envelope
type errorResponse struct {
	Error string `json:"error"`
}

// Submit validates the candidate and, if it passes, posts it to the
// API. An invalid candidate returns FieldErrors and performs no side
// effect. A non-success response surfaces as a single error; there is
// no retry, and a caller retrying by hand will create a duplicate
// record since no idempotency key exists.
func (c *Client) Submit(ctx context.Context, cand validation.Candidate) (*SubmitResult, error) {
	if errs := validation.Validate(cand); len(errs) > 0 {
		return nil, FieldErrors(errs)
	}

	req := domain.SubmissionRequest{
		MissionType:  cand.MissionType,
		FirstName:    cand.FirstName,
		LastName:     cand.LastName,
		Email:        cand.Email,
		Phone:        cand.Phone,
		Message:      cand.Message,
		SchoolName:   cand.SchoolName,
		StudentCount: cand.StudentCount,
	}

	var resp createResponse
	if err := c.do(ctx, http.MethodPost, "/submissions", &req, http.StatusCreated, &resp); err != nil {
		return nil, err
	}

	return &SubmitResult{
		Submission:   resp.Data,
		Analysis:     resp.Analysis,
		Confirmation: BuildConfirmation(resp.Data),
	}, nil
}

// List fetches all submissions, newest first
func (c *Client) List(ctx context.Context) ([]domain.Submission, error) {
	var subs []domain.Submission
	if err := c.do(ctx, http.MethodGet, "/submissions", nil, http.StatusOK, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// Get fetches a single submission by id
func (c *Client) Get(ctx context.Context, id string) (*domain.Submission, error) {
	var sub domain.Submission
	if err := c.do(ctx, http.MethodGet, "/submissions/"+id, nil, http.StatusOK, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// Delete removes a submission by id
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/submissions/"+id, nil, http.StatusOK, nil)
}

// Health checks the API health endpoint
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, http.StatusOK, nil)
}

// do issues one request and decodes the response into out when the
// status matches; any other status becomes a single error
func (c *Client) do(ctx context.Context, method, path string, body interface{}, wantStatus int, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call intake API: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != wantStatus {
		var apiErr errorResponse
		if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("intake API returned status %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("intake API returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse intake API response: %w", err)
	}
	return nil
}
