package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Adefolalu/clinkers/internal/chain"
	chainconsumer "github.com/Adefolalu/clinkers/internal/consumer/chain"
	"github.com/Adefolalu/clinkers/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	ChainNode              string        `long:"chain.node" env:"CHAIN_NODE" default:"https://mainnet.base.org" description:"evm node json-rpc url"`
	ChainContract          string        `long:"chain.contract" env:"CHAIN_CONTRACT" description:"clinkers contract address"`
	ChainConfirmations     uint64        `long:"chain.confirmations" env:"CHAIN_CONFIRMATIONS" default:"12" description:"blocks to lag behind the head before indexing"`
	ChainStartBlock        uint64        `long:"chain.start_block" env:"CHAIN_START_BLOCK" default:"0" description:"block the contract was deployed at"`
	ChainBatchSize         uint64        `long:"chain.batch_size" env:"CHAIN_BATCH_SIZE" default:"2000" description:"max blocks per log filter request"`
	ChainRetryInterval     time.Duration `long:"chain.retry_interval" env:"CHAIN_RETRY_INTERVAL" default:"2s" description:"interval to be waited on error before retry"`
	ChainLastBlockInterval time.Duration `long:"chain.last_block_interval" env:"CHAIN_LAST_BLOCK_INTERVAL" default:"2s" description:"duration to be waited when the safe head is reached"`

	LogLevel string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`

	SQSOpts
	DBOpts
}{}

var errTerminated = errors.New("terminated")

func main() {
	_ = godotenv.Load()

	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Indexer"
	parser.LongDescription = "Indexer"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Warn("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	logrus.Info("service started")
	logrus.Infof("%+v", opts)

	cl, err := chain.NewClient(opts.ChainNode, opts.ChainContract)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create chain client")
	}

	db := mustGetDB()

	c := chainconsumer.New(cl, postgres.New(db), mustGetProducer(),
		opts.ChainConfirmations, opts.ChainStartBlock, opts.ChainBatchSize,
		opts.ChainRetryInterval, opts.ChainLastBlockInterval)

	ctx, cancel := context.WithCancel(context.Background())

	gr, _ := errgroup.WithContext(context.Background())
	gr.Go(func() error {
		if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}

		return nil
	})

	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		s := <-sigs

		logrus.Infof("terminating by %s signal", s)

		cancel()

		return errTerminated
	})

	logrus.Info("service started")

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) {
		logrus.WithError(err).Fatal("service unexpectedly closed")
	}
}
