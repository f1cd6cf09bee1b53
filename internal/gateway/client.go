package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// DefaultBaseURL points at a local development backend.
const DefaultBaseURL = "http://localhost:8080/api/interview"

// Client is the HTTP implementation of Gateway. Every operation is a
// single attempt; retrying is a user decision, not a client policy.
type Client struct {
	http *resty.Client
}

var _ Gateway = (*Client)(nil)

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithTimeout sets the per-request timeout. Default: 30s.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// NewClient creates a Client talking to the backend at baseURL.
// An empty baseURL falls back to DefaultBaseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	hc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(0)

	c := &Client{http: hc}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchQuestion implements Gateway.
func (c *Client) FetchQuestion(ctx context.Context, role string) (*Question, error) {
	const op = "fetch question"

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", uuid.NewString()).
		SetQueryParam("role", role).
		Get("/question")
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &NetworkError{Op: op, Status: resp.StatusCode(), Body: snippet(resp.Body())}
	}

	body := resp.Body()
	if err := validateBody(questionSchema, body); err != nil {
		return nil, &DecodeError{Op: op, Body: body, Err: err}
	}

	var q Question
	if err := json.Unmarshal(body, &q); err != nil {
		return nil, &DecodeError{Op: op, Body: body, Err: err}
	}
	return &q, nil
}

// SubmitAnswer implements Gateway.
func (c *Client) SubmitAnswer(ctx context.Context, answer Answer) (*Feedback, error) {
	const op = "submit answer"

	if answer.SubmittedAt == nil {
		now := time.Now().UTC()
		answer.SubmittedAt = &now
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", uuid.NewString()).
		SetBody(answer).
		Post("/answer")
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &NetworkError{Op: op, Status: resp.StatusCode(), Body: snippet(resp.Body())}
	}

	body := resp.Body()
	if err := validateBody(feedbackSchema, body); err != nil {
		return nil, &DecodeError{Op: op, Body: body, Err: err}
	}

	var fb Feedback
	if err := json.Unmarshal(body, &fb); err != nil {
		return nil, &DecodeError{Op: op, Body: body, Err: err}
	}
	return &fb, nil
}

// BaseURL reports the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// String describes the client for logs.
func (c *Client) String() string {
	return fmt.Sprintf("gateway.Client(%s)", c.http.BaseURL)
}
