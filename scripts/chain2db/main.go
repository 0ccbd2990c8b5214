package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/Adefolalu/clinkers/internal/chain"
	"github.com/Adefolalu/clinkers/internal/entities"
	"github.com/Adefolalu/clinkers/internal/storage"
	"github.com/Adefolalu/clinkers/internal/storage/postgres"
)

type DBOpts struct {
	Postgres                   string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"migrations/postgres" description:"postgres migrations directory"`
}

type ChainOpts struct {
	ChainNode          string `long:"chain.node" env:"CHAIN_NODE" default:"https://mainnet.base.org" description:"evm node json-rpc url"`
	ChainContract      string `long:"chain.contract" env:"CHAIN_CONTRACT" description:"clinkers contract address"`
	ChainConfirmations uint64 `long:"chain.confirmations" env:"CHAIN_CONFIRMATIONS" default:"12" description:"blocks to lag behind the head"`
	ChainStartBlock    uint64 `long:"chain.start_block" env:"CHAIN_START_BLOCK" default:"0" description:"block the contract was deployed at"`
	ChainBatchSize     uint64 `long:"chain.batch_size" env:"CHAIN_BATCH_SIZE" default:"2000" description:"max blocks per log filter request"`
}

var opts = struct {
	ChainOpts
	DBOpts
}{}

func main() {
	parser := flags.NewParser(&opts, flags.Default)

	_, err := parser.Parse()
	if err != nil {
		logrus.WithError(err).Fatal(err)
	}

	if opts.ChainBatchSize == 0 {
		opts.ChainBatchSize = 1
	}

	ctx := context.Background()

	is := postgres.New(mustGetDB())

	cl, err := chain.NewClient(opts.ChainNode, opts.ChainContract)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create chain client")
	}

	head, err := cl.LatestBlock(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get latest block")
	}

	if head < opts.ChainConfirmations {
		logrus.Fatal("chain is shorter than the confirmation lag")
	}
	safe := head - opts.ChainConfirmations

	var mints int

	for from := opts.ChainStartBlock; from <= safe; from += opts.ChainBatchSize {
		to := from + opts.ChainBatchSize - 1
		if to > safe {
			to = safe
		}

		events, err := cl.FilterMints(ctx, from, to)
		if err != nil {
			logrus.WithError(err).WithField("from", from).Fatal("failed to filter mints")
		}

		if err := is.InTx(ctx, func(is storage.IndexStorage) error {
			for i := range events {
				e := events[i]

				logrus.WithFields(logrus.Fields{
					"fid":   e.FID,
					"token": e.TokenID,
					"block": e.BlockHeight,
				}).Info("mint found")

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

			return is.SetHeight(ctx, to)
		}); err != nil {
			logrus.WithError(err).Fatal("failed to save mints")
		}

		mints += len(events)
	}

	logrus.WithField("mints", mints).WithField("height", safe).Info("backfill finished")
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}
	db.SetMaxOpenConns(opts.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(opts.PostgresMaxIdleConnections)

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}
