package farcaster

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

//go:generate mockgen -destination=./mock/notify.go -package=mock -source=notify.go

var _ Notifier = &notifier{}

var (
	// ErrTokenInvalid is returned when the gateway rejects the token; the
	// caller should purge it instead of retrying.
	ErrTokenInvalid = errors.New("notification token is invalid")
	// ErrRateLimited is returned when the gateway throttled the token.
	ErrRateLimited = errors.New("notification rate limited")
)

// Notification is one push message shown in the Farcaster client.
type Notification struct {
	ID        string `json:"notificationId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	TargetURL string `json:"targetUrl"`
}

// Notifier delivers push notifications through the url+token pair the client
// registered via the webhook.
type Notifier interface {
	Notify(ctx context.Context, url, token string, n Notification) error
}

// notifier encapsulates the notification gateway HTTP client.
type notifier struct {
	client *http.Client
}

// NewNotifier creates a new Notifier.
func NewNotifier() Notifier {
	return &notifier{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Notify sends the notification to a single token.
func (s *notifier) Notify(ctx context.Context, url, token string, n Notification) error {
	reqBody := new(bytes.Buffer)
	if err := json.NewEncoder(reqBody).Encode(struct {
		Notification
		Tokens []string `json:"tokens"`
	}{n, []string{token}}); err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := s.client.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close() // nolint

	if httpResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(httpResp.Body)
		return fmt.Errorf("unexpected status code: %d, body: %s", httpResp.StatusCode, string(body))
	}

	var resp struct {
		InvalidTokens     []string `json:"invalidTokens"`
		RateLimitedTokens []string `json:"rateLimitedTokens"`
	}
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return fmt.Errorf("failed to decode body: %w", err)
	}

	for _, t := range resp.InvalidTokens {
		if t == token {
			return ErrTokenInvalid
		}
	}
	for _, t := range resp.RateLimitedTokens {
		if t == token {
			return ErrRateLimited
		}
	}

	return nil
}
