// Package chain polls the clinker contract for mint events.
package chain

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	contract "github.com/Adefolalu/clinkers/internal/chain"
	"github.com/Adefolalu/clinkers/internal/consumer"
	"github.com/Adefolalu/clinkers/internal/entities"
	"github.com/Adefolalu/clinkers/internal/producer"
	"github.com/Adefolalu/clinkers/internal/storage"
)

var log = logrus.WithField("package", "consumer.chain")

type chain struct {
	cl contract.Client
	is storage.IndexStorage
	p  producer.Producer

	confirmations uint64
	startBlock    uint64
	batchSize     uint64

	retryInterval     time.Duration
	lastBlockInterval time.Duration
}

// New returns new chain consumer instance.
func New(cl contract.Client, is storage.IndexStorage, p producer.Producer,
	confirmations, startBlock, batchSize uint64,
	retryInterval, lastBlockInterval time.Duration,
) consumer.Consumer {
	if batchSize == 0 {
		batchSize = 1
	}

	return chain{
		cl: cl,
		is: is,
		p:  p,

		confirmations: confirmations,
		startBlock:    startBlock,
		batchSize:     batchSize,

		retryInterval:     retryInterval,
		lastBlockInterval: lastBlockInterval,
	}
}

// Run follows ClinkerForged events until ctx is done.
func (c chain) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		caughtUp, err := c.sync(ctx)

		interval := c.lastBlockInterval
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			log.WithError(err).Error("failed to sync mints")
			interval = c.retryInterval
		} else if !caughtUp {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

// sync advances the index by at most one batch of confirmed blocks and tells
// whether the cursor reached the safe head.
func (c chain) sync(ctx context.Context) (bool, error) {
	head, err := c.cl.LatestBlock(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get latest block: %w", err)
	}

	if head < c.confirmations {
		return true, nil
	}
	safe := head - c.confirmations

	cursor, err := c.is.GetHeight(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current height: %w", err)
	}

	from := cursor + 1
	if from < c.startBlock {
		from = c.startBlock
	}
	if from > safe {
		return true, nil
	}

	to := from + c.batchSize - 1
	if to > safe {
		to = safe
	}

	events, err := c.cl.FilterMints(ctx, from, to)
	if err != nil {
		return false, fmt.Errorf("failed to filter mints: %w", err)
	}

	if err := c.is.InTx(ctx, func(is storage.IndexStorage) error {
		log := log.WithField("from", from).WithField("to", to).WithField("mints", len(events))
		log.Info("processing blocks")

		for i := range events {
			e := events[i]

			log.WithFields(logrus.Fields{
				"fid":   e.FID,
				"token": e.TokenID,
				"owner": e.Owner,
			}).Info("mint observed")

			if err := is.UpsertClinker(ctx, &entities.Clinker{
				FID:         e.FID,
				TokenID:     e.TokenID,
				Owner:       e.Owner,
				TxHash:      e.TxHash,
				BlockHeight: e.BlockHeight,
				MintedAt:    e.MintedAt,
			}); err != nil {
				return fmt.Errorf("failed to upsert clinker: %w", err)
			}
		}

		if err := is.SetHeight(ctx, to); err != nil {
			return fmt.Errorf("failed to set height: %w", err)
		}

		return nil
	}); err != nil {
		return false, fmt.Errorf("failed to process blocks: %w", err)
	}

	// messages are emitted after the commit, a lost one only costs a push
	for i := range events {
		e := events[i]

		if err := c.p.Produce(ctx, &producer.MintMessage{
			FID:         e.FID,
			TokenID:     e.TokenID,
			Owner:       e.Owner,
			TxHash:      e.TxHash,
			BlockHeight: e.BlockHeight,
		}); err != nil {
			log.WithError(err).WithField("fid", e.FID).Error("failed to produce mint message")
		}
	}

	return to == safe, nil
}
