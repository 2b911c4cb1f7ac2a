// Package scoring is the HTTP client for the remote lead-scoring service.
// Four operations, one attempt each; no retry or backoff. Errors carry a
// Kind so the coordinator can map them to the right banner.
package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"leadscore/internal/leads"
)

// HealthStatus is the service liveness/readiness report.
type HealthStatus struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

// Healthy reports whether the service considers itself reachable and
// serving.
func (h HealthStatus) Healthy() bool { return h.Status == "healthy" }

// Client talks to the scoring service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Submit scores one lead. Rejections surface as KindSubmission with the
// server's detail message when it provides one.
func (c *Client) Submit(ctx context.Context, f leads.LeadForm) (leads.LeadScore, error) {
	const op = "scoring.Submit"
	var score leads.LeadScore
	body, err := json.Marshal(f)
	if err != nil {
		return score, newError(KindSubmission, op, "encoding lead failed", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/score", bytes.NewReader(body))
	if err != nil {
		return score, newError(KindSubmission, op, "building request failed", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return score, newError(KindSubmission, op, "Failed to score lead. Please try again.", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return score, newError(KindSubmission, op, errorDetail(resp), nil)
	}
	if err := json.NewDecoder(resp.Body).Decode(&score); err != nil {
		return score, newError(KindSubmission, op, "decoding score failed", err)
	}
	return score, nil
}

// Leads fetches the full scored-lead collection in server order.
func (c *Client) Leads(ctx context.Context) ([]leads.Lead, error) {
	var out []leads.Lead
	if err := c.get(ctx, "scoring.Leads", "/leads", KindFetch, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats fetches the aggregate lead statistics.
func (c *Client) Stats(ctx context.Context) (leads.LeadStats, error) {
	var out leads.LeadStats
	if err := c.get(ctx, "scoring.Stats", "/leads/stats", KindFetch, &out); err != nil {
		return leads.LeadStats{}, err
	}
	return out, nil
}

// Health probes the service. Transport failures are KindConnectivity.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	var out HealthStatus
	if err := c.get(ctx, "scoring.Health", "/health", KindConnectivity, &out); err != nil {
		return HealthStatus{}, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, op, path string, kind Kind, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return newError(kind, op, "building request failed", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return newError(kind, op, "request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(kind, op, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return newError(kind, op, "decoding response failed", err)
	}
	return nil
}

// errorDetail pulls the optional human-readable detail out of a non-2xx
// response body, falling back to a generic message.
func errorDetail(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err == nil {
		var payload struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(body, &payload) == nil && payload.Detail != "" {
			return payload.Detail
		}
	}
	return "Failed to score lead. Please try again."
}
