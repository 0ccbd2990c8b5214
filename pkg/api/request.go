package api

import "github.com/google/uuid"

// Validator interface provides method for validation.
type Validator interface {
	IsValid() bool
}

// GenerateRequest ...
type GenerateRequest struct {
	FID  uint64 `json:"fid"`
	Salt uint32 `json:"salt"`
}

// IsValid ...
func (r GenerateRequest) IsValid() bool {
	return r.FID != 0
}

// TokenURIRequest ...
type TokenURIRequest struct {
	FID          uint64    `json:"fid"`
	GenerationID uuid.UUID `json:"generation_id"`
}

// IsValid ...
func (r TokenURIRequest) IsValid() bool {
	return r.FID != 0 && r.GenerationID != uuid.Nil
}
