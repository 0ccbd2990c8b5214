// Package api provides API and client to Clinkers.
package api

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=./api_mock.go -package=api -source=api.go

// GenerateEndpoint ...
const GenerateEndpoint = "/v1/clinkers/generate"

// TokenURIEndpoint ...
const TokenURIEndpoint = "/v1/clinkers/token-uri"

// ClinkersEndpoint ...
const ClinkersEndpoint = "/v1/clinkers"

// MintParamsEndpoint ...
const MintParamsEndpoint = "/v1/mint-params"

// ErrInvalidRequest is returned when request is invalid.
var ErrInvalidRequest = errors.New("invalid request")

// ErrNotAuthorized is returned when the bearer token is missing or rejected.
var ErrNotAuthorized = errors.New("not authorized")

// ErrForbidden is returned when the token was issued for another fid.
var ErrForbidden = errors.New("forbidden")

// ErrNotFound is returned when object is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyMinted is returned when the fid already forged its clinker.
var ErrAlreadyMinted = errors.New("clinker is already minted")

// ErrThrottled is returned when generation is requested too often.
var ErrThrottled = errors.New("too many requests")

// ErrUnavailable is returned when artwork generation or pinning failed upstream.
var ErrUnavailable = errors.New("generation temporarily unavailable")

// Clinkers provides user-friendly API methods.
type Clinkers interface {
	Generate(ctx context.Context, fid uint64, salt uint32) (*Generation, error)
	TokenURI(ctx context.Context, fid uint64, generationID uuid.UUID) (string, error)
	Clinker(ctx context.Context, fid uint64) (*ClinkerStatus, error)
	ListClinkers(ctx context.Context, from uint64, limit uint16) (*ClinkerList, error)
	MintParams(ctx context.Context) (*MintParams, error)
}
