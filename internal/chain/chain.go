// Package chain contains a read-only client of the Clinkers contract.
package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/Adefolalu/clinkers/internal/entities"
	"github.com/Adefolalu/clinkers/internal/health"
)

//go:generate mockgen -destination=./mock/chain.go -package=mock -source=chain.go

// ErrNotMinted is returned when a fid has no token yet.
var ErrNotMinted = errors.New("clinker is not minted")

// contractABI covers the read surface of the Clinkers contract the service
// needs. Token ids start at 1, tokenOf returns 0 for fids without a token.
const contractABI = `[
	{"type":"function","name":"hasMinted","stateMutability":"view","inputs":[{"name":"fid","type":"uint256"}],"outputs":[{"type":"bool"}]},
	{"type":"function","name":"tokenOf","stateMutability":"view","inputs":[{"name":"fid","type":"uint256"}],"outputs":[{"type":"uint256"}]},
	{"type":"function","name":"ownerOf","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"type":"address"}]},
	{"type":"function","name":"mintFee","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},
	{"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},
	{"type":"function","name":"maxSupply","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},
	{"type":"event","name":"ClinkerForged","inputs":[{"name":"fid","type":"uint256","indexed":true},{"name":"tokenId","type":"uint256","indexed":true},{"name":"owner","type":"address","indexed":true}]}
]`

// Client is a read-only view of the Clinkers contract.
type Client interface {
	health.Pinger

	HasMinted(ctx context.Context, fid uint64) (bool, error)
	TokenOf(ctx context.Context, fid uint64) (uint64, error)
	OwnerOf(ctx context.Context, tokenID uint64) (string, error)
	MintParams(ctx context.Context) (*entities.MintParams, error)
	LatestBlock(ctx context.Context) (uint64, error)
	FilterMints(ctx context.Context, from, to uint64) ([]entities.MintEvent, error)
}

type client struct {
	eth      *ethclient.Client
	contract common.Address
	abi      abi.ABI

	forgedTopic common.Hash
}

// NewClient dials the json-rpc node and binds the contract at addr.
func NewClient(nodeURL, addr string) (Client, error) {
	if !common.IsHexAddress(addr) {
		return nil, fmt.Errorf("invalid contract address %q", addr) // nolint:goerr113
	}

	eth, err := ethclient.Dial(nodeURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial node: %w", err)
	}

	cabi, err := abi.JSON(strings.NewReader(contractABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse abi: %w", err)
	}

	return &client{
		eth:         eth,
		contract:    common.HexToAddress(addr),
		abi:         cabi,
		forgedTopic: cabi.Events["ClinkerForged"].ID,
	}, nil
}

func (c *client) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	out, err := c.eth.CallContract(ctx, ethereum.CallMsg{To: &c.contract, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("%s call failed: %w", method, err)
	}

	res, err := c.abi.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s result: %w", method, err)
	}

	return res, nil
}

func (c *client) HasMinted(ctx context.Context, fid uint64) (bool, error) {
	res, err := c.call(ctx, "hasMinted", new(big.Int).SetUint64(fid))
	if err != nil {
		return false, err
	}

	return res[0].(bool), nil
}

func (c *client) TokenOf(ctx context.Context, fid uint64) (uint64, error) {
	res, err := c.call(ctx, "tokenOf", new(big.Int).SetUint64(fid))
	if err != nil {
		return 0, err
	}

	id := res[0].(*big.Int)
	if id.Sign() == 0 {
		return 0, ErrNotMinted
	}

	return id.Uint64(), nil
}

func (c *client) OwnerOf(ctx context.Context, tokenID uint64) (string, error) {
	res, err := c.call(ctx, "ownerOf", new(big.Int).SetUint64(tokenID))
	if err != nil {
		return "", err
	}

	return res[0].(common.Address).Hex(), nil
}

func (c *client) MintParams(ctx context.Context) (*entities.MintParams, error) {
	fee, err := c.call(ctx, "mintFee")
	if err != nil {
		return nil, err
	}

	total, err := c.call(ctx, "totalSupply")
	if err != nil {
		return nil, err
	}

	max, err := c.call(ctx, "maxSupply")
	if err != nil {
		return nil, err
	}

	return &entities.MintParams{
		FeeWei:      fee[0].(*big.Int).String(),
		TotalSupply: total[0].(*big.Int).Uint64(),
		MaxSupply:   max[0].(*big.Int).Uint64(),
	}, nil
}

func (c *client) LatestBlock(ctx context.Context) (uint64, error) {
	n, err := c.eth.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get block number: %w", err)
	}

	return n, nil
}

// FilterMints returns ClinkerForged events from the [from, to] block span in
// chain order.
func (c *client) FilterMints(ctx context.Context, from, to uint64) ([]entities.MintEvent, error) {
	logs, err := c.eth.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(to),
		Addresses: []common.Address{c.contract},
		Topics:    [][]common.Hash{{c.forgedTopic}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to filter logs: %w", err)
	}

	blockTimes := make(map[uint64]time.Time)

	out := make([]entities.MintEvent, 0, len(logs))
	for _, l := range logs {
		if l.Removed || len(l.Topics) != 4 {
			continue
		}

		ts, ok := blockTimes[l.BlockNumber]
		if !ok {
			h, err := c.eth.HeaderByNumber(ctx, new(big.Int).SetUint64(l.BlockNumber))
			if err != nil {
				return nil, fmt.Errorf("failed to get block header: %w", err)
			}
			ts = time.Unix(int64(h.Time), 0).UTC()
			blockTimes[l.BlockNumber] = ts
		}

		out = append(out, entities.MintEvent{
			FID:         l.Topics[1].Big().Uint64(),
			TokenID:     l.Topics[2].Big().Uint64(),
			Owner:       common.BytesToAddress(l.Topics[3].Bytes()).Hex(),
			TxHash:      l.TxHash.Hex(),
			BlockHeight: l.BlockNumber,
			MintedAt:    ts,
		})
	}

	return out, nil
}

func (c *client) Ping(ctx context.Context) error {
	if _, err := c.eth.BlockNumber(ctx); err != nil {
		return errors.New("connection with chain rpc seems broken") // nolint:goerr113
	}
	return nil
}
