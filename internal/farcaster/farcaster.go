// Package farcaster contains clients for the Farcaster social graph and the
// mini-app notification gateway.
package farcaster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Adefolalu/clinkers/internal/entities"
)

//go:generate mockgen -destination=./mock/farcaster.go -package=mock -source=farcaster.go

var _ Client = &client{}

// ErrUserNotFound is returned when no profile exists for the requested FID.
var ErrUserNotFound = errors.New("farcaster user not found")

// pingFID is a long-lived protocol account used for health probes.
const pingFID = 3

// Client is an interface for fetching Farcaster profiles.
type Client interface {
	UserByFID(ctx context.Context, fid uint64) (*entities.Profile, error)
	Ping(ctx context.Context) error
}

// client encapsulates a Neynar-compatible HTTP client.
type client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// New creates a new farcaster Client.
func New(baseURL, apiKey string) Client {
	return &client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// UserByFID fetches the profile for the given FID.
func (c *client) UserByFID(ctx context.Context, fid uint64) (*entities.Profile, error) {
	path, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base url: %w", err)
	}

	path.Path = "/v2/farcaster/user/bulk"

	q := url.Values{}
	q.Set("fids", strconv.FormatUint(fid, 10))
	path.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx,
		http.MethodGet, path.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close() // nolint

	if httpResp.StatusCode == http.StatusNotFound {
		return nil, ErrUserNotFound
	}

	if httpResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(httpResp.Body)
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", httpResp.StatusCode, string(body))
	}

	var resp usersResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode body: %w", err)
	}

	if len(resp.Users) == 0 {
		return nil, ErrUserNotFound
	}

	p := resp.Users[0].toProfile()
	return &p, nil
}

// Ping checks that the API is reachable and the key is valid.
func (c *client) Ping(ctx context.Context) error {
	if _, err := c.UserByFID(ctx, pingFID); err != nil && !errors.Is(err, ErrUserNotFound) {
		return err
	}
	return nil
}

type usersResponse struct {
	Users []userDTO `json:"users"`
}

// userDTO mirrors the hub response. Optional fields decode to zero values,
// which is exactly the defaulting the rest of the pipeline expects.
type userDTO struct {
	FID            uint64 `json:"fid"`
	Username       string `json:"username"`
	DisplayName    string `json:"display_name"`
	PfpURL         string `json:"pfp_url"`
	CustodyAddress string `json:"custody_address"`
	Profile        struct {
		Bio struct {
			Text string `json:"text"`
		} `json:"bio"`
	} `json:"profile"`
	FollowerCount     uint64  `json:"follower_count"`
	FollowingCount    uint64  `json:"following_count"`
	PowerBadge        bool    `json:"power_badge"`
	Score             float64 `json:"score"`
	VerifiedAddresses struct {
		EthAddresses []string `json:"eth_addresses"`
	} `json:"verified_addresses"`
}

func (u userDTO) toProfile() entities.Profile {
	return entities.Profile{
		FID:             u.FID,
		Handle:          u.Username,
		DisplayName:     u.DisplayName,
		AvatarURL:       u.PfpURL,
		FollowerCount:   u.FollowerCount,
		FollowingCount:  u.FollowingCount,
		Bio:             u.Profile.Bio.Text,
		HasBadge:        u.PowerBadge,
		InfluenceScore:  u.Score,
		VerifiedWallets: u.VerifiedAddresses.EthAddresses,
		CustodyWallet:   u.CustodyAddress,
	}
}
