package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type client struct {
	host string

	token string

	c *http.Client
}

// NewClient returns client with http.DefaultClient. token is the Quick Auth
// bearer sent with authenticated requests, pass an empty string for
// public-only usage.
func NewClient(host, token string) Clinkers {
	return NewClientWithHTTPClient(host, token, &http.Client{})
}

// NewClientWithHTTPClient returns client with provided http.Client.
func NewClientWithHTTPClient(host, token string, c *http.Client) Clinkers {
	return &client{
		host:  strings.TrimSuffix(host, "/"),
		token: token,
		c:     c,
	}
}

// Generate runs the personalization pipeline for the fid.
// Generate can return ErrInvalidRequest, ErrNotAuthorized, ErrForbidden,
// ErrAlreadyMinted, ErrThrottled and ErrUnavailable besides general api
// package's errors.
func (c *client) Generate(ctx context.Context, fid uint64, salt uint32) (*Generation, error) {
	req := GenerateRequest{
		FID:  fid,
		Salt: salt,
	}
	resp := Generation{}

	if err := c.sendRequest(ctx, http.MethodPost, GenerateEndpoint, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to make Generate request: %w", err)
	}

	return &resp, nil
}

// TokenURI pins token metadata for the generation and returns its ipfs uri.
// TokenURI can return ErrInvalidRequest, ErrNotAuthorized, ErrForbidden,
// ErrNotFound and ErrUnavailable besides general api package's errors.
func (c *client) TokenURI(ctx context.Context, fid uint64, generationID uuid.UUID) (string, error) {
	req := TokenURIRequest{
		FID:          fid,
		GenerationID: generationID,
	}
	resp := TokenURIResponse{}

	if err := c.sendRequest(ctx, http.MethodPost, TokenURIEndpoint, req, &resp); err != nil {
		return "", fmt.Errorf("failed to make TokenURI request: %w", err)
	}

	return resp.TokenURI, nil
}

// Clinker returns the merged mint and artwork status of the fid.
// Clinker can return ErrInvalidRequest and ErrNotFound besides general api
// package's errors.
func (c *client) Clinker(ctx context.Context, fid uint64) (*ClinkerStatus, error) {
	if fid == 0 {
		return nil, ErrInvalidRequest
	}

	resp := ClinkerStatus{}

	if err := c.sendRequest(ctx, http.MethodGet, fmt.Sprintf("%s/%d", ClinkersEndpoint, fid), nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to make Clinker request: %w", err)
	}

	return &resp, nil
}

// ListClinkers lists minted clinkers, newest first.
// ListClinkers can return ErrInvalidRequest besides general api package's
// errors.
func (c *client) ListClinkers(ctx context.Context, from uint64, limit uint16) (*ClinkerList, error) {
	resp := ClinkerList{}

	url := fmt.Sprintf("%s?from=%d&limit=%d", ClinkersEndpoint, from, limit)
	if err := c.sendRequest(ctx, http.MethodGet, url, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to make ListClinkers request: %w", err)
	}

	return &resp, nil
}

// MintParams returns the contract's current mint terms.
func (c *client) MintParams(ctx context.Context) (*MintParams, error) {
	resp := MintParams{}

	if err := c.sendRequest(ctx, http.MethodGet, MintParamsEndpoint, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to make MintParams request: %w", err)
	}

	return &resp, nil
}

// sendRequest is utility method which validates and sends a request, and
// converts http.StatusCode to package's errors.
func (c *client) sendRequest(ctx context.Context, method string, endpoint string, data interface{}, resp interface{}) error {
	if v, ok := data.(Validator); ok && !v.IsValid() {
		return ErrInvalidRequest
	}

	var body *bytes.Reader
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	r, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s%s", c.host, endpoint), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if c.token != "" {
		r.Header.Set("Authorization", "Bearer "+c.token)
	}
	if data != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	rr, err := c.c.Do(r)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer rr.Body.Close() // nolint

	if rr.StatusCode < 200 || rr.StatusCode >= 300 {
		switch rr.StatusCode {
		case http.StatusBadRequest:
			return ErrInvalidRequest
		case http.StatusUnauthorized:
			return ErrNotAuthorized
		case http.StatusForbidden:
			return ErrForbidden
		case http.StatusNotFound:
			return ErrNotFound
		case http.StatusConflict:
			return ErrAlreadyMinted
		case http.StatusTooManyRequests:
			return ErrThrottled
		case http.StatusBadGateway:
			return ErrUnavailable
		default:
			var e Error
			if err := json.NewDecoder(rr.Body).Decode(&e); err != nil {
				return fmt.Errorf("request failed with status %d", rr.StatusCode) // nolint:goerr113
			}
			return fmt.Errorf("request failed: %s", e.Error) // nolint:goerr113
		}
	}

	if err := json.NewDecoder(rr.Body).Decode(resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
