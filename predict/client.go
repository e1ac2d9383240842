package predict

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// DefaultEndpoint is the prediction service address. It is fixed.
const DefaultEndpoint = "http://127.0.0.1:8000/predict"

// Client posts symptom lists to the prediction service.
type Client struct {
	http     *resty.Client
	endpoint string
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint points the client at another URL.
func WithEndpoint(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.endpoint = url
		}
	}
}

// WithRestyClient replaces the underlying HTTP client.
func WithRestyClient(rc *resty.Client) Option {
	return func(c *Client) {
		if rc != nil {
			c.http = rc
		}
	}
}

func New(opts ...Option) *Client {
	c := &Client{
		http:     resty.New(),
		endpoint: DefaultEndpoint,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Endpoint reports the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Predict performs exactly one request. It does not retry.
func (c *Client) Predict(ctx context.Context, req Request) (Result, error) {
	var body response
	r := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		ForceContentType("application/json").
		SetBody(req).
		SetResult(&body)
	if req.ID != "" {
		r.SetHeader("X-Request-ID", req.ID)
	}

	resp, err := r.Post(c.endpoint)
	if err != nil {
		// A received response means the body failed to decode.
		if resp != nil && resp.RawResponse != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		return Result{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if !resp.IsSuccess() {
		return Result{}, &StatusError{Code: resp.StatusCode(), Body: string(resp.Body())}
	}
	if body.Prediction == nil || body.Confidence == nil {
		return Result{}, fmt.Errorf("%w: missing prediction or confidence", ErrMalformedResponse)
	}
	return Result{Disease: *body.Prediction, Confidence: *body.Confidence}, nil
}
