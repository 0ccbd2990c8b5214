package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	shell "github.com/ipfs/go-ipfs-api"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Adefolalu/clinkers/internal/auth"
	"github.com/Adefolalu/clinkers/internal/chain"
	"github.com/Adefolalu/clinkers/internal/farcaster"
	"github.com/Adefolalu/clinkers/internal/health"
	"github.com/Adefolalu/clinkers/internal/server"
	"github.com/Adefolalu/clinkers/internal/service"
	"github.com/Adefolalu/clinkers/internal/storage/ipfs"
	"github.com/Adefolalu/clinkers/internal/storage/postgres"
	"github.com/Adefolalu/clinkers/internal/throttler"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"localhost" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on for insecure connections"`
	MaxBodySize    int64         `long:"http.max-body-size" env:"HTTP_MAX_BODY_SIZE" default:"65536" description:"max request's body size"`
	RequestTimeout time.Duration `long:"http.request-timeout" env:"HTTP_REQUEST_TIMEOUT" default:"60s" description:"request processing timeout"`
	AllowedOrigins []string      `long:"http.allowed-origins" env:"HTTP_ALLOWED_ORIGINS" env-delim:"," default:"*" description:"allowed CORS origins"`

	AuthAudience string        `long:"auth.audience" env:"AUTH_AUDIENCE" default:"clinkers.xyz" description:"domain quick auth tokens must be issued for"`
	AuthIssuer   string        `long:"auth.issuer" env:"AUTH_ISSUER" default:"https://auth.farcaster.xyz" description:"quick auth token issuer"`
	AuthKeysTTL  time.Duration `long:"auth.keys-ttl" env:"AUTH_KEYS_TTL" default:"1h" description:"how long issuer's signing keys are cached"`

	FarcasterAPIURL string `long:"farcaster.api-url" env:"FARCASTER_API_URL" default:"https://api.neynar.com" description:"farcaster profile api url"`
	FarcasterAPIKey string `long:"farcaster.api-key" env:"FARCASTER_API_KEY" description:"farcaster profile api key"`

	IPFSNode string `long:"ipfs.node" env:"IPFS_NODE" default:"localhost:5001" description:"ipfs node api address"`

	ChainNode     string `long:"chain.node" env:"CHAIN_NODE" default:"https://mainnet.base.org" description:"evm node json-rpc url"`
	ChainContract string `long:"chain.contract" env:"CHAIN_CONTRACT" description:"clinkers contract address"`

	ThrottlePeriod time.Duration `long:"generate.throttle-period" env:"GENERATE_THROTTLE_PERIOD" default:"30s" description:"min delay between generations per fid"`

	AppURL string `long:"app.url" env:"APP_URL" default:"https://clinkers.xyz" description:"public url of the mini app"`

	LogLevel string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`

	ImageGenOpts
	S3Opts
	DBOpts
}{}

var errTerminated = errors.New("terminated")

func main() {
	_ = godotenv.Load()

	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Clinkers"
	parser.LongDescription = "Clinkers"

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

	fc := farcaster.New(opts.FarcasterAPIURL, opts.FarcasterAPIKey)
	ig := mustGetImageGenerator()

	cl, err := chain.NewClient(opts.ChainNode, opts.ChainContract)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create chain client")
	}

	pin := ipfs.NewStorage(shell.NewShell(opts.IPFSNode))
	web := mustGetWebStorage()

	db := mustGetDB()

	svc := service.New(fc, ig, cl, throttler.New(opts.ThrottlePeriod), pin, web, postgres.New(db), opts.AppURL)

	r := chi.NewMux()
	server.SetupRouter(svc, auth.NewVerifier(opts.AuthIssuer, opts.AuthAudience, opts.AuthKeysTTL), r,
		opts.MaxBodySize, opts.RequestTimeout, opts.AllowedOrigins)
	health.SetupRouter(r, health.Checks{
		"ipfs":     pin,
		"s3":       web,
		"chain":    cl,
		"neynar":   fc,
		"postgres": health.PingFunc(db.PingContext),
	})

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	gr, _ := errgroup.WithContext(context.Background())
	gr.Go(srv.ListenAndServe)

	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		s := <-sigs

		logrus.Infof("terminating by %s signal", s)

		if err := srv.Shutdown(context.Background()); err != nil {
			logrus.WithError(err).Error("failed to gracefully shutdown server")
		}

		return errTerminated
	})

	logrus.Info("service started")

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("service unexpectedly closed")
	}
}
