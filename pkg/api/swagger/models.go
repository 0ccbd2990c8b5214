// Package swagger re-declares api models so swagger picks them up for
// spec generation.
package swagger

import "github.com/Adefolalu/clinkers/pkg/api"

// Error ...
// swagger:model Error
type Error struct {
	api.Error
}

// GenerateRequest ...
// swagger:model GenerateRequest
type GenerateRequest struct {
	api.GenerateRequest
}

// TokenURIRequest ...
// swagger:model TokenURIRequest
type TokenURIRequest struct {
	api.TokenURIRequest
}

// Generation ...
// swagger:model Generation
type Generation struct {
	api.Generation
}

// TokenURIResponse ...
// swagger:model TokenURIResponse
type TokenURIResponse struct {
	api.TokenURIResponse
}

// ClinkerStatus ...
// swagger:model ClinkerStatus
type ClinkerStatus struct {
	api.ClinkerStatus
}

// ClinkerList ...
// swagger:model ClinkerList
type ClinkerList struct {
	api.ClinkerList
}

// MintParams ...
// swagger:model MintParams
type MintParams struct {
	api.MintParams
}
