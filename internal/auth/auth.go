// Package auth verifies Farcaster Quick Auth tokens.
package auth

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	cache "github.com/patrickmn/go-cache"
)

//go:generate mockgen -destination=./mock/auth.go -package=mock -source=auth.go

// DefaultIssuer is the Farcaster Quick Auth server.
const DefaultIssuer = "https://auth.farcaster.xyz"

var (
	// ErrNoToken is returned when the request carries no bearer token.
	ErrNoToken = errors.New("no bearer token")
	// ErrInvalidToken is returned when the token is malformed, has a wrong
	// signature or is expired.
	ErrInvalidToken = errors.New("token is invalid")
	// ErrWrongAudience is returned when the token was issued for another domain.
	ErrWrongAudience = errors.New("token audience mismatch")
)

// Verifier checks Quick Auth tokens and extracts the authenticated fid.
type Verifier interface {
	Verify(ctx context.Context, token string) (uint64, error)
}

type verifier struct {
	issuer   string
	audience string

	keys *cache.Cache
	http *http.Client
}

// NewVerifier creates a Verifier for tokens issued by issuer for audience.
// The issuer's signing keys are fetched from its jwks endpoint and cached for
// keysTTL.
func NewVerifier(issuer, audience string, keysTTL time.Duration) Verifier {
	return &verifier{
		issuer:   strings.TrimSuffix(issuer, "/"),
		audience: audience,
		keys:     cache.New(keysTTL, keysTTL),
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *verifier) Verify(ctx context.Context, token string) (uint64, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodES256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
	)

	var claims jwt.RegisteredClaims
	if _, err := parser.ParseWithClaims(token, &claims, v.keyfunc(ctx)); err != nil {
		if errors.Is(err, jwt.ErrTokenInvalidAudience) {
			return 0, ErrWrongAudience
		}
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err) // nolint:errorlint
	}

	// Quick Auth puts the fid into the subject claim.
	fid, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: subject is not a fid", ErrInvalidToken)
	}

	return fid, nil
}

func (v *verifier) keyfunc(ctx context.Context) jwt.Keyfunc {
	return func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("token has no kid header") // nolint:goerr113
		}

		if k, ok := v.keys.Get(kid); ok {
			return k, nil
		}

		if err := v.refreshKeys(ctx); err != nil {
			return nil, err
		}

		if k, ok := v.keys.Get(kid); ok {
			return k, nil
		}

		return nil, fmt.Errorf("unknown signing key %q", kid) // nolint:goerr113
	}
}

func (v *verifier) refreshKeys(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.issuer+"/.well-known/jwks.json", nil)
	if err != nil {
		return fmt.Errorf("failed to create jwks request: %w", err)
	}

	resp, err := v.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch jwks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jwks endpoint returned %d", resp.StatusCode) // nolint:goerr113
	}

	var body struct {
		Keys []struct {
			Kty string `json:"kty"`
			Crv string `json:"crv"`
			Kid string `json:"kid"`
			X   string `json:"x"`
			Y   string `json:"y"`
		} `json:"keys"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode jwks: %w", err)
	}

	for _, k := range body.Keys {
		if k.Kty != "EC" || k.Crv != "P-256" {
			continue
		}

		x, err := base64.RawURLEncoding.DecodeString(k.X)
		if err != nil {
			continue
		}
		y, err := base64.RawURLEncoding.DecodeString(k.Y)
		if err != nil {
			continue
		}

		v.keys.Set(k.Kid, &ecdsa.PublicKey{
			Curve: elliptic.P256(),
			X:     new(big.Int).SetBytes(x),
			Y:     new(big.Int).SetBytes(y),
		}, cache.DefaultExpiration)
	}

	return nil
}
