package chain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chainmock "github.com/Adefolalu/clinkers/internal/chain/mock"
	"github.com/Adefolalu/clinkers/internal/entities"
	"github.com/Adefolalu/clinkers/internal/producer"
	producermock "github.com/Adefolalu/clinkers/internal/producer/mock"
	"github.com/Adefolalu/clinkers/internal/storage"
	storagemock "github.com/Adefolalu/clinkers/internal/storage/mock"
)

var errTest = errors.New("test")

func TestChain_sync(t *testing.T) {
	ctrl := gomock.NewController(t)

	cl := chainmock.NewMockClient(ctrl)
	is := storagemock.NewMockIndexStorage(ctrl)
	p := producermock.NewMockProducer(ctrl)

	c := chain{cl: cl, is: is, p: p, confirmations: 12, batchSize: 50}

	now := time.Now().UTC()
	events := []entities.MintEvent{
		{
			FID:         1,
			TokenID:     1,
			Owner:       "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
			TxHash:      "0x01",
			BlockHeight: 910,
			MintedAt:    now,
		},
		{
			FID:         2,
			TokenID:     2,
			Owner:       "0xd1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
			TxHash:      "0x02",
			BlockHeight: 930,
			MintedAt:    now,
		},
	}

	cl.EXPECT().LatestBlock(gomock.Any()).Return(uint64(1000), nil)
	is.EXPECT().GetHeight(gomock.Any()).Return(uint64(900), nil)
	cl.EXPECT().FilterMints(gomock.Any(), uint64(901), uint64(950)).Return(events, nil)

	is.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f func(_ storage.IndexStorage) error) error {
		return f(is)
	})

	for i := range events {
		e := events[i]

		is.EXPECT().UpsertClinker(gomock.Any(), &entities.Clinker{
			FID:         e.FID,
			TokenID:     e.TokenID,
			Owner:       e.Owner,
			TxHash:      e.TxHash,
			BlockHeight: e.BlockHeight,
			MintedAt:    e.MintedAt,
		}).Return(nil)

		p.EXPECT().Produce(gomock.Any(), &producer.MintMessage{
			FID:         e.FID,
			TokenID:     e.TokenID,
			Owner:       e.Owner,
			TxHash:      e.TxHash,
			BlockHeight: e.BlockHeight,
		}).Return(nil)
	}

	is.EXPECT().SetHeight(gomock.Any(), uint64(950)).Return(nil)

	caughtUp, err := c.sync(context.Background())
	require.NoError(t, err)
	assert.False(t, caughtUp)
}

func TestChain_sync_caughtUp(t *testing.T) {
	ctrl := gomock.NewController(t)

	cl := chainmock.NewMockClient(ctrl)
	is := storagemock.NewMockIndexStorage(ctrl)

	cl.EXPECT().LatestBlock(gomock.Any()).Return(uint64(1000), nil)
	is.EXPECT().GetHeight(gomock.Any()).Return(uint64(988), nil)

	caughtUp, err := chain{cl: cl, is: is, confirmations: 12, batchSize: 50}.sync(context.Background())
	require.NoError(t, err)
	assert.True(t, caughtUp)
}

func TestChain_sync_shortChain(t *testing.T) {
	ctrl := gomock.NewController(t)

	cl := chainmock.NewMockClient(ctrl)

	cl.EXPECT().LatestBlock(gomock.Any()).Return(uint64(5), nil)

	caughtUp, err := chain{cl: cl, confirmations: 12, batchSize: 50}.sync(context.Background())
	require.NoError(t, err)
	assert.True(t, caughtUp)
}

func TestChain_sync_startBlock(t *testing.T) {
	ctrl := gomock.NewController(t)

	cl := chainmock.NewMockClient(ctrl)
	is := storagemock.NewMockIndexStorage(ctrl)

	cl.EXPECT().LatestBlock(gomock.Any()).Return(uint64(1000), nil)
	is.EXPECT().GetHeight(gomock.Any()).Return(uint64(0), nil)
	cl.EXPECT().FilterMints(gomock.Any(), uint64(500), uint64(549)).Return(nil, nil)
	is.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f func(_ storage.IndexStorage) error) error {
		return f(is)
	})
	is.EXPECT().SetHeight(gomock.Any(), uint64(549)).Return(nil)

	caughtUp, err := chain{cl: cl, is: is, confirmations: 12, startBlock: 500, batchSize: 50}.sync(context.Background())
	require.NoError(t, err)
	assert.False(t, caughtUp)
}

func TestChain_sync_produceError(t *testing.T) {
	ctrl := gomock.NewController(t)

	cl := chainmock.NewMockClient(ctrl)
	is := storagemock.NewMockIndexStorage(ctrl)
	p := producermock.NewMockProducer(ctrl)

	cl.EXPECT().LatestBlock(gomock.Any()).Return(uint64(1000), nil)
	is.EXPECT().GetHeight(gomock.Any()).Return(uint64(987), nil)
	cl.EXPECT().FilterMints(gomock.Any(), uint64(988), uint64(988)).
		Return([]entities.MintEvent{{FID: 1, TokenID: 1, BlockHeight: 988}}, nil)
	is.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f func(_ storage.IndexStorage) error) error {
		return f(is)
	})
	is.EXPECT().UpsertClinker(gomock.Any(), gomock.Any()).Return(nil)
	is.EXPECT().SetHeight(gomock.Any(), uint64(988)).Return(nil)
	p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errTest)

	caughtUp, err := chain{cl: cl, is: is, p: p, confirmations: 12, batchSize: 50}.sync(context.Background())
	require.NoError(t, err)
	assert.True(t, caughtUp)
}

func TestChain_sync_errors(t *testing.T) {
	tt := []struct {
		name   string
		expect func(cl *chainmock.MockClient, is *storagemock.MockIndexStorage)
	}{
		{
			name: "latest_block",
			expect: func(cl *chainmock.MockClient, is *storagemock.MockIndexStorage) {
				cl.EXPECT().LatestBlock(gomock.Any()).Return(uint64(0), errTest)
			},
		},
		{
			name: "get_height",
			expect: func(cl *chainmock.MockClient, is *storagemock.MockIndexStorage) {
				cl.EXPECT().LatestBlock(gomock.Any()).Return(uint64(1000), nil)
				is.EXPECT().GetHeight(gomock.Any()).Return(uint64(0), errTest)
			},
		},
		{
			name: "filter_mints",
			expect: func(cl *chainmock.MockClient, is *storagemock.MockIndexStorage) {
				cl.EXPECT().LatestBlock(gomock.Any()).Return(uint64(1000), nil)
				is.EXPECT().GetHeight(gomock.Any()).Return(uint64(900), nil)
				cl.EXPECT().FilterMints(gomock.Any(), uint64(901), uint64(950)).Return(nil, errTest)
			},
		},
		{
			name: "upsert_clinker",
			expect: func(cl *chainmock.MockClient, is *storagemock.MockIndexStorage) {
				cl.EXPECT().LatestBlock(gomock.Any()).Return(uint64(1000), nil)
				is.EXPECT().GetHeight(gomock.Any()).Return(uint64(900), nil)
				cl.EXPECT().FilterMints(gomock.Any(), uint64(901), uint64(950)).
					Return([]entities.MintEvent{{FID: 1}}, nil)
				is.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f func(_ storage.IndexStorage) error) error {
					return f(is)
				})
				is.EXPECT().UpsertClinker(gomock.Any(), gomock.Any()).Return(errTest)
			},
		},
		{
			name: "set_height",
			expect: func(cl *chainmock.MockClient, is *storagemock.MockIndexStorage) {
				cl.EXPECT().LatestBlock(gomock.Any()).Return(uint64(1000), nil)
				is.EXPECT().GetHeight(gomock.Any()).Return(uint64(900), nil)
				cl.EXPECT().FilterMints(gomock.Any(), uint64(901), uint64(950)).Return(nil, nil)
				is.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f func(_ storage.IndexStorage) error) error {
					return f(is)
				})
				is.EXPECT().SetHeight(gomock.Any(), uint64(950)).Return(errTest)
			},
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)

			cl := chainmock.NewMockClient(ctrl)
			is := storagemock.NewMockIndexStorage(ctrl)

			tc.expect(cl, is)

			_, err := chain{cl: cl, is: is, confirmations: 12, batchSize: 50}.sync(context.Background())
			require.ErrorIs(t, err, errTest)
		})
	}
}

func TestChain_Run(t *testing.T) {
	ctrl := gomock.NewController(t)

	cl := chainmock.NewMockClient(ctrl)
	is := storagemock.NewMockIndexStorage(ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	cl.EXPECT().LatestBlock(gomock.Any()).Return(uint64(1000), nil)
	is.EXPECT().GetHeight(gomock.Any()).DoAndReturn(func(_ context.Context) (uint64, error) {
		cancel()
		return uint64(988), nil
	})

	c := chain{
		cl:            cl,
		is:            is,
		confirmations: 12,
		batchSize:     50,

		retryInterval:     time.Nanosecond,
		lastBlockInterval: time.Nanosecond,
	}

	require.ErrorIs(t, c.Run(ctx), context.Canceled)
}

func TestChain_Run_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, chain{}.Run(ctx), context.Canceled)
}
