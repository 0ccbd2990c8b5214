// Package health exposes the health endpoint reporting per-dependency status.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// nolint:gochecknoglobals
var (
	version = "dev"
	commit  = "unknown"
)

// GetVersion returns service's version and commit.
func GetVersion() string {
	return fmt.Sprintf("%s-%s", version, commit)
}

// Pinger pings external service.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc is wrapper for raw func.
type PingFunc func(ctx context.Context) error

// Ping ...
func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// Checks maps dependency names to their pingers.
type Checks map[string]Pinger

// StatusResponse ...
type StatusResponse struct {
	Version string            `json:"version"`
	Commit  string            `json:"commit"`
	Checks  map[string]string `json:"checks,omitempty"`
}

const pingTimeout = time.Second * 5

// SetupRouter mounts the health endpoint. Every dependency is pinged in
// parallel and reported under its name; any failure turns the response
// into a 500. Checks run to completion even when a sibling fails, so the
// body always shows which dependencies are down.
func SetupRouter(r chi.Router, checks Checks) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		out := StatusResponse{
			Version: version,
			Commit:  commit,
			Checks:  make(map[string]string, len(checks)),
		}

		var gr errgroup.Group
		var mu sync.Mutex

		for name, p := range checks {
			name, p := name, p
			gr.Go(func() error {
				err := p.Ping(ctx)

				mu.Lock()
				defer mu.Unlock()

				if err != nil {
					logrus.WithError(err).WithField("check", name).Error("health check failed")
					out.Checks[name] = err.Error()
					return err
				}

				out.Checks[name] = "ok"
				return nil
			})
		}

		status := http.StatusOK
		if gr.Wait() != nil {
			status = http.StatusInternalServerError
		}

		data, _ := json.Marshal(out)

		w.WriteHeader(status)
		w.Write(data) // nolint
	})
}
