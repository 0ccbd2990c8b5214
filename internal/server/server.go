// Package server Clinkers
//
// The Clinkers API forges one-per-Farcaster-identity creatures: it derives a
// deterministic visual identity for a fid, renders it through an image
// backend and pins artwork and token metadata to IPFS for minting.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
//     SecurityDefinitions:
//     bearer:
//          type: apiKey
//          name: Authorization
//          in: header
//          description: |-
//            Farcaster Quick Auth token, sent as `Bearer {token}`.<br>
//            The token's sub claim is the authenticated fid; requests acting
//            on a fid must carry a token issued for that fid.
//
// swagger:meta
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	lru "github.com/hashicorp/golang-lru"
	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/Adefolalu/clinkers/internal/auth"
	"github.com/Adefolalu/clinkers/internal/service"
	"github.com/Adefolalu/clinkers/pkg/api"
	_ "github.com/Adefolalu/clinkers/pkg/api/swagger" // import models to be generated into swagger.json
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

const statusCacheSize = 100000

const (
	defaultLimit uint16 = 100
	maxLimit     uint16 = 1000
)

const (
	mintParamsCacheKey = "mint-params"
	mintParamsTTL      = 30 * time.Second
)

type server struct {
	s service.Service
	v auth.Verifier

	statusCache     *lru.ARCCache
	mintParamsCache *cache.Cache
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, v auth.Verifier, r chi.Router, maxBodySize int64, requestTimeout time.Duration, allowedOrigins []string) {
	r.Use(
		swaggerMiddleware,
		loggerMiddleware,
		requestIDMiddleware,
		setHeadersMiddleware,
		middleware.StripSlashes,
		cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
			MaxAge:         300,
		}),
		recovererMiddleware,
		timeoutMiddleware(requestTimeout),
		bodyLimiterMiddleware(maxBodySize),
	)

	c, err := lru.NewARC(statusCacheSize)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create cache")
	}

	srv := server{
		s: s,
		v: v,

		statusCache:     c,
		mintParamsCache: cache.New(mintParamsTTL, time.Minute),
	}

	r.With(srv.authMiddleware).Post("/v1/clinkers/generate", srv.generateHandler)
	r.With(srv.authMiddleware).Post("/v1/clinkers/token-uri", srv.tokenURIHandler)
	r.Get("/v1/clinkers", srv.listClinkersHandler)
	r.Get("/v1/clinkers/{fid}", srv.getClinkerHandler)
	r.Get("/v1/mint-params", srv.mintParamsHandler)
	r.Post("/v1/webhook", srv.webhookHandler)
}

func getLogger(ctx context.Context) logrus.FieldLogger {
	return ctx.Value(logCtxKey{}).(logrus.FieldLogger)
}

func writeErrorf(w http.ResponseWriter, status int, format string, args ...interface{}) {
	body, _ := json.Marshal(api.Error{
		Error: fmt.Sprintf(format, args...),
	})

	w.WriteHeader(status)
	// nolint:gosec,errcheck
	w.Write(body)
}

func writeError(w http.ResponseWriter, s int, message string) {
	writeErrorf(w, s, "%s", message)
}

func writeInternalError(l logrus.FieldLogger, w http.ResponseWriter, message string) {
	l.Error(string(debug.Stack()))
	l.Error(message)
	// We don't want to expose internal error to user. So we will just send typical error.
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	body, _ := json.Marshal(v)

	w.WriteHeader(status)
	// nolint:gosec,errcheck
	w.Write(body)
}

func writeAuthError(l logrus.FieldLogger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrNoToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrWrongAudience):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		writeInternalError(l, w, err.Error())
	}
}

func writeServiceError(l logrus.FieldLogger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAlreadyMinted):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrThrottled):
		writeError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, service.ErrGeneration), errors.Is(err, service.ErrUpload):
		l.Error(err.Error())
		writeError(w, http.StatusBadGateway, "artwork backend is unavailable")
	default:
		writeInternalError(l, w, err.Error())
	}
}
