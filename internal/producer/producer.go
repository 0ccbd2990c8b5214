// Package producer contains the interface of producer.
package producer

import (
	"context"
)

//go:generate mockgen -destination=./mock/producer.go -package=mock -source=producer.go

// MintMessage is emitted for every mint the indexer observes.
type MintMessage struct {
	FID         uint64
	TokenID     uint64
	Owner       string
	TxHash      string
	BlockHeight uint64
}

// Producer ...
type Producer interface {
	Produce(ctx context.Context, m *MintMessage) error
}
