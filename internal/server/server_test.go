package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Adefolalu/clinkers/internal/auth"
	"github.com/Adefolalu/clinkers/internal/service"
)

func Test_writeOK(t *testing.T) {
	w := httptest.NewRecorder()
	writeOK(w, http.StatusCreated, struct {
		M int
		N string
	}{
		M: 5,
		N: "str",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, `{"M":5,"N":"str"}`, w.Body.String())
}

func Test_writeError(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, http.StatusNotFound, "some error")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, `{"error":"some error"}`, w.Body.String())
}

func Test_writeErrorf(t *testing.T) {
	w := httptest.NewRecorder()
	writeErrorf(w, http.StatusForbidden, "some error %d", 1)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, `{"error":"some error 1"}`, w.Body.String())
}

func Test_writeInternalError(t *testing.T) {
	b, w, r := newTestParameters(t, http.MethodGet, "", nil)

	writeInternalError(getLogger(r.Context()), w, "some error")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Greater(t, len(b.String()), 20) // stacktrace
	assert.True(t, strings.Contains(b.String(), "some error"))
	assert.Equal(t, `{"error":"internal error"}`, w.Body.String())
}

func Test_writeAuthError(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		b, w, r := newTestParameters(t, http.MethodGet, "", nil)

		writeAuthError(getLogger(r.Context()), w, auth.ErrNoToken)

		assert.Empty(t, b.String())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, `{"error":"no bearer token"}`, w.Body.String())
	})

	t.Run("invalid token", func(t *testing.T) {
		b, w, r := newTestParameters(t, http.MethodGet, "", nil)

		writeAuthError(getLogger(r.Context()), w, auth.ErrInvalidToken)

		assert.Empty(t, b.String())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, `{"error":"token is invalid"}`, w.Body.String())
	})

	t.Run("internal error", func(t *testing.T) {
		b, w, r := newTestParameters(t, http.MethodGet, "", nil)

		writeAuthError(getLogger(r.Context()), w, errors.New("some error"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Greater(t, len(b.String()), 20) // stacktrace
		assert.True(t, strings.Contains(b.String(), "some error"))
		assert.Equal(t, `{"error":"internal error"}`, w.Body.String())
	})
}

func Test_writeServiceError(t *testing.T) {
	tt := []struct {
		name  string
		err   error
		rcode int
		rdata string
		rlog  string
	}{
		{
			name:  "not found",
			err:   service.ErrNotFound,
			rcode: http.StatusNotFound,
			rdata: `{"error":"not found"}`,
		},
		{
			name:  "profile not found",
			err:   service.ErrProfileNotFound,
			rcode: http.StatusNotFound,
			rdata: `{"error":"profile not found"}`,
		},
		{
			name:  "already minted",
			err:   service.ErrAlreadyMinted,
			rcode: http.StatusConflict,
			rdata: `{"error":"clinker is already minted"}`,
		},
		{
			name:  "throttled",
			err:   service.ErrThrottled,
			rcode: http.StatusTooManyRequests,
			rdata: `{"error":"generation is throttled"}`,
		},
		{
			name:  "generation failed",
			err:   service.ErrGeneration,
			rcode: http.StatusBadGateway,
			rdata: `{"error":"artwork backend is unavailable"}`,
			rlog:  "image generation failed",
		},
		{
			name:  "upload failed",
			err:   service.ErrUpload,
			rcode: http.StatusBadGateway,
			rdata: `{"error":"artwork backend is unavailable"}`,
			rlog:  "artwork upload failed",
		},
		{
			name:  "internal error",
			err:   errors.New("some error"),
			rcode: http.StatusInternalServerError,
			rdata: `{"error":"internal error"}`,
			rlog:  "some error",
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b, w, r := newTestParameters(t, http.MethodGet, "", nil)

			writeServiceError(getLogger(r.Context()), w, tc.err)

			assert.True(t, strings.Contains(b.String(), tc.rlog))
			assert.Equal(t, tc.rcode, w.Code)
			assert.Equal(t, tc.rdata, w.Body.String())
		})
	}
}
