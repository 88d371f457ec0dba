/*
Package api implements the thin REST client for the huecas backend.

This file defines the Client struct and its request core: every call injects
the current bearer token, stamps a request ID, and normalizes failures into
the errs taxonomy (server-provided error text preferred, transport message
next, generic string last).
*/
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"huecas/internal/pkg/errs"
	"huecas/internal/pkg/logx"
)

// TokenSource supplies the current bearer credential for outgoing requests.
// The session store satisfies it; an empty token means "send no header".
type TokenSource interface {
	Token() string
}

// Client is the REST client consumed by all CRUD features. It performs no
// retries and configures no request timeout beyond the transport defaults.
type Client struct {
	// httpClient is the underlying transport.
	httpClient *http.Client

	// baseURL is the backend root, without a trailing slash.
	baseURL string

	// tokens supplies the bearer credential per request.
	tokens TokenSource

	// structured logger with client context.
	logger zerolog.Logger
}

// NewClient constructs a Client for the backend at baseURL.
func NewClient(baseURL string, tokens TokenSource) *Client {
	clientLogger := logx.Logger().With().
		Str("component", "APIClient").
		Str("base_url", baseURL).
		Logger()

	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		tokens:     tokens,
		logger:     clientLogger,
	}
}

// serverErrorBody is the error envelope the backend uses for failed requests.
type serverErrorBody struct {
	Error string `json:"error"`
}

// do executes one request against the backend. A non-nil body is sent as
// JSON; a non-nil out receives the decoded response body. All failures come
// back as *errs.CustomError per the client's error taxonomy.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) *errs.CustomError {
	requestID := uuid.New().String()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			c.logger.Error().Err(err).Str("path", path).Msg("Failed to encode request body")
			return errs.NewError(errs.ErrUnknown, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		c.logger.Error().Err(err).Str("path", path).Msg("Failed to build request")
		return errs.NewError(errs.ErrUnknown, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Msg("Request failed before reaching the server")

		return transportError(err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return c.statusError(res, method, path, requestID)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		c.logger.Error().Err(err).
			Str("path", path).
			Str("request_id", requestID).
			Msg("Failed to decode response body")

		return errs.NewError(errs.ErrBadServerResponse)
	}

	return nil
}

// transportError maps a failed round trip to the transport taxonomy, keeping
// the transport's own message as the user-facing fallback text.
func transportError(err error) *errs.CustomError {
	customErr := errs.NewError(errs.ErrNetworkFailure)
	if msg := err.Error(); msg != "" {
		customErr.Message = msg
	}
	return customErr
}

// statusError maps a non-2xx response to the error taxonomy. The server's
// error text, when decodable, is carried verbatim.
func (c *Client) statusError(res *http.Response, method, path, requestID string) *errs.CustomError {
	var serverBody serverErrorBody

	raw, readErr := io.ReadAll(io.LimitReader(res.Body, 1<<16))
	if readErr == nil && len(raw) > 0 {
		// best-effort decode; any shape other than the error envelope is ignored
		_ = json.Unmarshal(raw, &serverBody)
	}

	code := errs.ErrUnknown
	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		code = errs.ErrUnauthorized
	case res.StatusCode == http.StatusNotFound:
		code = errs.ErrNotFound
	case res.StatusCode >= 400 && res.StatusCode < 500:
		code = errs.ErrInvalidInput
	}

	c.logger.Warn().
		Int("status", res.StatusCode).
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Str("server_error", serverBody.Error).
		Msg("Server rejected request")

	return errs.NewServerError(code, res.StatusCode, serverBody.Error)
}

// get is a convenience wrapper for GET requests.
func (c *Client) get(ctx context.Context, path string, out any) *errs.CustomError {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// post is a convenience wrapper for POST requests.
func (c *Client) post(ctx context.Context, path string, body, out any) *errs.CustomError {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// put is a convenience wrapper for PUT requests.
func (c *Client) put(ctx context.Context, path string, body, out any) *errs.CustomError {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// delete is a convenience wrapper for DELETE requests.
func (c *Client) delete(ctx context.Context, path string) *errs.CustomError {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
