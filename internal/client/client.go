// Package client is a small HTTP client for the hydrocore API.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Vireya-Hydrocore/hydrocore-api-machine-learning/pkg/types"
)

type Client struct {
	rest *resty.Client
}

// New returns a client for the server at baseURL. A non-positive timeout falls back to 5s.
func New(baseURL string, timeout time.Duration) *Client {
	r := resty.New().SetBaseURL(strings.TrimRight(baseURL, "/"))
	if timeout > 0 {
		r.SetTimeout(timeout)
	} else {
		r.SetTimeout(5 * time.Second) // default fallback
	}
	r.SetHeader("Accept", "application/json")
	return &Client{rest: r}
}

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
	Detail  []types.ValidationError
}

func (e *APIError) Error() string {
	if len(e.Detail) == 0 {
		return fmt.Sprintf("hydrocore: %d %s", e.Status, e.Message)
	}
	parts := make([]string, 0, len(e.Detail))
	for _, d := range e.Detail {
		loc := make([]string, len(d.Loc))
		for i, l := range d.Loc {
			loc[i] = fmt.Sprint(l)
		}
		parts = append(parts, strings.Join(loc, ".")+": "+d.Msg)
	}
	return fmt.Sprintf("hydrocore: %d %s (%s)", e.Status, e.Message, strings.Join(parts, "; "))
}

func newAPIError(resp *resty.Response, msg string, detail []types.ValidationError) *APIError {
	if msg == "" {
		msg = strings.TrimSpace(resp.String())
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}
	return &APIError{Status: resp.StatusCode(), Message: msg, Detail: detail}
}

// StatusCode lets callers map the error back onto an HTTP status.
func (e *APIError) StatusCode() int { return e.Status }

// Predict posts a raw JSON document to /predict. Sending bytes rather than a
// WaterSample lets callers forward partial or loosely typed records and see
// the server's validation errors.
func (c *Client) Predict(ctx context.Context, body []byte) (types.PredictionResponse, error) {
	var out types.PredictionResponse
	var apiErr types.ValidationErrorResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&out).
		SetError(&apiErr).
		Post("/predict")
	if err != nil {
		return out, err
	}
	if resp.IsError() {
		return out, newAPIError(resp, apiErr.Error, apiErr.Detail)
	}
	return out, nil
}

// PredictSample posts a fully populated sample.
func (c *Client) PredictSample(ctx context.Context, s types.WaterSample) (types.PredictionResponse, error) {
	var out types.PredictionResponse
	var apiErr types.ValidationErrorResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(s).
		SetResult(&out).
		SetError(&apiErr).
		Post("/predict")
	if err != nil {
		return out, err
	}
	if resp.IsError() {
		return out, newAPIError(resp, apiErr.Error, apiErr.Detail)
	}
	return out, nil
}

// Model fetches metadata about the server's loaded model.
func (c *Client) Model(ctx context.Context) (types.ModelInfo, error) {
	var info types.ModelInfo
	var apiErr types.ErrorResponse
	resp, err := c.rest.R().SetContext(ctx).SetResult(&info).SetError(&apiErr).Get("/model")
	if err != nil {
		return info, err
	}
	if resp.IsError() {
		return info, newAPIError(resp, apiErr.Error, nil)
	}
	return info, nil
}

// Ready reports whether /readyz answers 200.
func (c *Client) Ready(ctx context.Context) (bool, error) {
	resp, err := c.rest.R().SetContext(ctx).Get("/readyz")
	if err != nil {
		return false, err
	}
	return resp.StatusCode() == http.StatusOK, nil
}
