package api

import (
	"time"

	"github.com/google/uuid"
)

// Error ...
type Error struct {
	Error string `json:"error"`
}

// Palette is the derived three-color identity of a clinker.
type Palette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// Traits is the categorical part of a clinker's identity.
type Traits struct {
	Silhouette  string   `json:"silhouette"`
	Expression  string   `json:"expression"`
	Texture     string   `json:"texture"`
	Accessories []string `json:"accessories"`
}

// Generation is a single run of the personalization pipeline.
type Generation struct {
	ID        uuid.UUID `json:"id"`
	FID       uint64    `json:"fid"`
	Salt      uint32    `json:"salt"`
	Phase     int       `json:"phase"`
	Palette   Palette   `json:"palette"`
	Traits    Traits    `json:"traits"`
	ImageURL  string    `json:"image_url"`
	ThumbURL  string    `json:"thumb_url"`
	ImageCID  string    `json:"image_cid"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenURIResponse ...
type TokenURIResponse struct {
	TokenURI string `json:"token_uri"`
	CID      string `json:"cid"`
}

// Clinker is a minted token.
type Clinker struct {
	FID      uint64     `json:"fid"`
	TokenID  uint64     `json:"token_id"`
	Owner    string     `json:"owner"`
	TxHash   string     `json:"tx_hash,omitempty"`
	MintedAt *time.Time `json:"minted_at,omitempty"`
}

// ClinkerStatus is the merged mint and artwork view of a fid.
type ClinkerStatus struct {
	FID        uint64      `json:"fid"`
	Minted     bool        `json:"minted"`
	Clinker    *Clinker    `json:"clinker,omitempty"`
	Generation *Generation `json:"generation,omitempty"`
}

// ClinkerList is a page of minted clinkers, newest first.
type ClinkerList struct {
	Clinkers []Clinker `json:"clinkers"`
	Total    uint64    `json:"total"`
}

// MintParams are the contract's current mint terms.
type MintParams struct {
	FeeWei      string `json:"fee_wei"`
	TotalSupply uint64 `json:"total_supply"`
	MaxSupply   uint64 `json:"max_supply"`
}
