package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client wraps the remote catalog/payment backend. Every persistent
// collection (products, categories, payment modes, payments) lives behind it.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Client{http: client}
}

// APIError carries the backend's status code and message payload so handlers
// can relay them instead of a generic failure.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gateway request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("gateway request failed with status %d: %s", e.StatusCode, e.Message)
}

func apiError(resp *resty.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode()}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	} else if len(resp.Body()) > 0 {
		apiErr.Message = string(resp.Body())
	}
	return apiErr
}

func decode(resp *resty.Response, out any) error {
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to parse gateway response: %w", err)
	}
	return nil
}
