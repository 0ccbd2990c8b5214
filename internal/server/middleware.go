package server

import (
	"context"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tomasen/realip"

	"github.com/Adefolalu/clinkers/internal/auth"
)

type logCtxKey struct{}

// recovererMiddleware handles panics.
func recovererMiddleware(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				log := getLogger(r.Context())
				log.Error("service recovered from panic")
				log.Error("stacktrace:")
				log.Error(string(debug.Stack()))
				log.Error("panic:")
				log.Error(spew.Sdump(rvr))

				writeInternalError(log, w, "panic: internal error")
			}
		}()

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

// loggerMiddleware puts logger with client's info into context.
func loggerMiddleware(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		log := logrus.WithField("ip", realip.FromRequest(r))

		ctx := context.WithValue(r.Context(), logCtxKey{}, log)
		next.ServeHTTP(w, r.WithContext(ctx))
	}

	return http.HandlerFunc(fn)
}

// requestIDMiddleware adds request_id to the logger and the response.
func requestIDMiddleware(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()

		w.Header().Set("X-Request-ID", id)

		log := getLogger(r.Context()).WithField("request_id", id)
		ctx := context.WithValue(r.Context(), logCtxKey{}, log)
		next.ServeHTTP(w, r.WithContext(ctx))
	}

	return http.HandlerFunc(fn)
}

// timeoutMiddleware puts timeout into request's context and logs elapsed time.
func timeoutMiddleware(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))

			getLogger(r.Context()).WithField("elapsed_time", time.Since(start)).Debug("request handled")
		}

		return http.HandlerFunc(fn)
	}
}

// setHeadersMiddleware sets predefined headers to response.
func setHeadersMiddleware(next http.Handler) http.Handler {
	fn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		next.ServeHTTP(w, r)
	})

	return http.Handler(fn)
}

// bodyLimiterMiddleware refuses to read request bodies over maxBodySize.
func bodyLimiterMiddleware(maxBodySize int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

// authMiddleware verifies the bearer token and puts the authenticated fid
// into context.
func (s *server) authMiddleware(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.TokenFromRequest(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}

		fid, err := s.v.Verify(r.Context(), token)
		if err != nil {
			writeAuthError(getLogger(r.Context()), w, err)
			return
		}

		log := getLogger(r.Context()).WithField("fid", fid)

		ctx := context.WithValue(auth.WithFID(r.Context(), fid), logCtxKey{}, log)
		next.ServeHTTP(w, r.WithContext(ctx))
	}

	return http.HandlerFunc(fn)
}

// swaggerMiddleware for swagger-ui.
func swaggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Shortcut helpers for swagger-ui
		if r.URL.Path == "/docs" {
			http.Redirect(w, r, "/docs/", http.StatusFound)
			return
		}
		// Serving ./swagger-ui/
		if strings.Index(r.URL.Path, "/docs/") == 0 {
			http.StripPrefix("/docs/", http.FileServer(http.Dir("static"))).ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
