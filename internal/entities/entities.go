// Package entities contains service-wide models.
package entities

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a Farcaster user profile as returned by the social graph API.
// Optional fields default to their zero value, never nil-propagate.
type Profile struct {
	FID             uint64
	Handle          string
	DisplayName     string
	AvatarURL       string
	FollowerCount   uint64
	FollowingCount  uint64
	Bio             string
	HasBadge        bool
	InfluenceScore  float64
	VerifiedWallets []string
	CustodyWallet   string
}

// Generation is a single run of the personalization pipeline for a FID.
type Generation struct {
	ID          uuid.UUID
	FID         uint64
	Salt        uint32
	Tier        int
	Primary     string
	Secondary   string
	Accent      string
	Silhouette  string
	Expression  string
	Texture     string
	Accessories []string
	Prompt      string
	ImageCID    string
	ImageURL    string
	ThumbURL    string
	MetadataCID string
	CreatedAt   time.Time
}

// TokenURI returns the ipfs uri of the pinned metadata, empty if metadata wasn't prepared yet.
func (g Generation) TokenURI() string {
	if g.MetadataCID == "" {
		return ""
	}
	return "ipfs://" + g.MetadataCID
}

// Clinker is a minted token observed on chain.
type Clinker struct {
	FID         uint64
	TokenID     uint64
	Owner       string
	TxHash      string
	BlockHeight uint64
	MintedAt    time.Time
}

// ClinkerStatus is the merged mint and artwork view of a fid. Clinker is nil
// until the fid minted, Generation is nil when the fid never ran the
// pipeline.
type ClinkerStatus struct {
	FID        uint64
	Minted     bool
	Clinker    *Clinker
	Generation *Generation
}

// MintEvent is a ClinkerForged contract event. MintedAt is the timestamp of
// the block the event landed in.
type MintEvent struct {
	FID         uint64
	TokenID     uint64
	Owner       string
	TxHash      string
	BlockHeight uint64
	MintedAt    time.Time
}

// MintParams are the contract's current mint terms.
type MintParams struct {
	FeeWei      string
	TotalSupply uint64
	MaxSupply   uint64
}

// NotificationToken is a Farcaster client notification grant for a FID.
type NotificationToken struct {
	FID       uint64
	Token     string
	URL       string
	Enabled   bool
	UpdatedAt time.Time
}
