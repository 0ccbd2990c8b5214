package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	valid "github.com/asaskevich/govalidator"
	"github.com/go-chi/chi"
	"github.com/sirupsen/logrus"

	"github.com/Adefolalu/clinkers/internal/auth"
	"github.com/Adefolalu/clinkers/internal/entities"
	"github.com/Adefolalu/clinkers/internal/service"
	"github.com/Adefolalu/clinkers/internal/webhook"
	"github.com/Adefolalu/clinkers/pkg/api"
)

// generateHandler runs the personalization pipeline for the authenticated fid.
func (s *server) generateHandler(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /clinkers/generate Clinkers Generate
	//
	// Forges a clinker preview
	//
	// Derives the fid's visual identity, renders the artwork and pins it.
	// The salt reissues the roll, identical requests produce identical
	// identities.
	//
	// ---
	// security:
	// - bearer: []
	// produces:
	// - application/json
	// consumes:
	// - application/json
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/GenerateRequest"
	// responses:
	//   '201':
	//     description: generation was created
	//     schema:
	//       "$ref": "#/definitions/Generation"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '401':
	//     description: bearer token wasn't verified
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '403':
	//     description: token was issued for another fid
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: clinker is already minted
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '429':
	//     description: fid rerolls too often
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '502':
	//     description: artwork backend is unavailable
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//      description: internal server error
	//      schema:
	//        "$ref": "#/definitions/Error"

	fid, ok := auth.FIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req api.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorf(w, http.StatusBadRequest, "request is invalid: %s", err.Error())
		return
	}
	r.Body.Close() // nolint

	if !req.IsValid() {
		writeError(w, http.StatusBadRequest, "invalid fid")
		return
	}

	if req.FID != fid {
		writeError(w, http.StatusForbidden, "fid doesn't match the token")
		return
	}

	g, err := s.s.Generate(r.Context(), fid, req.Salt)
	if err != nil {
		writeServiceError(getLogger(r.Context()), w, err)
		return
	}

	writeOK(w, http.StatusCreated, toGenerationView(g))
}

// tokenURIHandler pins token metadata for a generation of the authenticated fid.
func (s *server) tokenURIHandler(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /clinkers/token-uri Clinkers TokenURI
	//
	// Pins token metadata
	//
	// Builds the ERC-721 metadata document for the generation, pins it and
	// returns the ipfs uri to pass to the mint transaction. Idempotent.
	//
	// ---
	// security:
	// - bearer: []
	// produces:
	// - application/json
	// consumes:
	// - application/json
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/TokenURIRequest"
	// responses:
	//   '200':
	//     description: metadata is pinned
	//     schema:
	//       "$ref": "#/definitions/TokenURIResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '401':
	//     description: bearer token wasn't verified
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '403':
	//     description: token was issued for another fid
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: generation doesn't exist
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '502':
	//     description: pinning backend is unavailable
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//      description: internal server error
	//      schema:
	//        "$ref": "#/definitions/Error"

	fid, ok := auth.FIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req api.TokenURIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorf(w, http.StatusBadRequest, "request is invalid: %s", err.Error())
		return
	}
	r.Body.Close() // nolint

	if !req.IsValid() {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.FID != fid {
		writeError(w, http.StatusForbidden, "fid doesn't match the token")
		return
	}

	uri, err := s.s.TokenURI(r.Context(), fid, req.GenerationID)
	if err != nil {
		writeServiceError(getLogger(r.Context()), w, err)
		return
	}

	writeOK(w, http.StatusOK, api.TokenURIResponse{
		TokenURI: uri,
		CID:      strings.TrimPrefix(uri, "ipfs://"),
	})
}

// getClinkerHandler returns the merged mint and artwork status of a fid.
func (s *server) getClinkerHandler(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /clinkers/{fid} Clinkers GetClinker
	//
	// Get clinker status
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: fid
	//   description: Farcaster id
	//   in: path
	//   required: true
	//   type: integer
	// responses:
	//   '200':
	//     description: clinker status
	//     schema:
	//       "$ref": "#/definitions/ClinkerStatus"
	//   '404':
	//     description: fid neither generated nor minted
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	fid, err := strconv.ParseUint(chi.URLParam(r, "fid"), 10, 64)
	if err != nil || fid == 0 {
		writeError(w, http.StatusBadRequest, "invalid fid")
		return
	}

	if v, ok := s.statusCache.Get(fid); ok {
		writeOK(w, http.StatusOK, v.(api.ClinkerStatus)) // nolint
		return
	}

	status, err := s.s.Clinker(r.Context(), fid)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeErrorf(w, http.StatusNotFound, "clinker for fid %d not found", fid)
			return
		}
		writeInternalError(getLogger(r.Context()), w, err.Error())
		return
	}

	view := toStatusView(status)

	// minted state never changes again, unminted views would go stale
	if status.Minted {
		s.statusCache.Add(fid, view)
	}

	writeOK(w, http.StatusOK, view)
}

// listClinkersHandler lists minted clinkers, newest first.
func (s *server) listClinkersHandler(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /clinkers Clinkers ListClinkers
	//
	// List minted clinkers
	//
	// Returns a page of minted clinkers ordered by token id descending.
	// from is an exclusive token id cursor, 0 starts from the newest.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: from
	//   description: exclusive token id cursor
	//   in: query
	//   required: false
	//   type: integer
	// - name: limit
	//   description: page size, 1000 at most
	//   in: query
	//   required: false
	//   type: integer
	// responses:
	//   '200':
	//     description: page of clinkers
	//     schema:
	//       "$ref": "#/definitions/ClinkerList"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var from uint64
	limit := defaultLimit

	if v := r.URL.Query().Get("from"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid from")
			return
		}
		from = parsed
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 16)
		if err != nil || parsed == 0 || uint16(parsed) > maxLimit {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = uint16(parsed)
	}

	clinkers, err := s.s.ListClinkers(r.Context(), from, limit)
	if err != nil {
		writeInternalError(getLogger(r.Context()), w, err.Error())
		return
	}

	total, err := s.s.CountClinkers(r.Context())
	if err != nil {
		writeInternalError(getLogger(r.Context()), w, err.Error())
		return
	}

	list := api.ClinkerList{
		Clinkers: make([]api.Clinker, len(clinkers)),
		Total:    total,
	}
	for i, c := range clinkers {
		list.Clinkers[i] = toClinkerView(c)
	}

	writeOK(w, http.StatusOK, list)
}

// mintParamsHandler returns the contract's current mint terms.
func (s *server) mintParamsHandler(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /mint-params Clinkers MintParams
	//
	// Get mint params
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: current mint terms
	//     schema:
	//       "$ref": "#/definitions/MintParams"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	if v, ok := s.mintParamsCache.Get(mintParamsCacheKey); ok {
		writeOK(w, http.StatusOK, v.(api.MintParams)) // nolint
		return
	}

	params, err := s.s.MintParams(r.Context())
	if err != nil {
		writeInternalError(getLogger(r.Context()), w, err.Error())
		return
	}

	view := api.MintParams{
		FeeWei:      params.FeeWei,
		TotalSupply: params.TotalSupply,
		MaxSupply:   params.MaxSupply,
	}
	s.mintParamsCache.SetDefault(mintParamsCacheKey, view)

	writeOK(w, http.StatusOK, view)
}

// webhookHandler handles signed mini-app lifecycle events from Farcaster
// clients.
func (s *server) webhookHandler(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /webhook Webhook HandleEvent
	//
	// Handle mini-app event
	//
	// Verifies the signed envelope and stores or revokes the fid's push
	// notification grant.
	//
	// ---
	// produces:
	// - application/json
	// consumes:
	// - application/json
	// responses:
	//   '200':
	//     description: event was handled
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '401':
	//     description: event signature wasn't verified
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}
	r.Body.Close() // nolint

	event, err := webhook.Decode(data)
	if err != nil {
		if errors.Is(err, webhook.ErrInvalidSignature) {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		writeErrorf(w, http.StatusBadRequest, "request is invalid: %s", err.Error())
		return
	}

	log := getLogger(r.Context()).WithFields(logrus.Fields{
		"fid":   event.FID,
		"event": event.Type,
	})

	switch event.Type {
	case webhook.EventFrameAdded, webhook.EventNotificationsEnabled:
		// clients may add the app with notifications off
		if event.NotificationDetails == nil {
			break
		}

		if event.NotificationDetails.Token == "" || !valid.IsURL(event.NotificationDetails.URL) {
			writeError(w, http.StatusBadRequest, "invalid notification details")
			return
		}

		if err := s.s.SaveNotificationToken(r.Context(), &entities.NotificationToken{
			FID:       event.FID,
			Token:     event.NotificationDetails.Token,
			URL:       event.NotificationDetails.URL,
			Enabled:   true,
			UpdatedAt: time.Now().UTC(),
		}); err != nil {
			writeInternalError(log, w, err.Error())
			return
		}
	case webhook.EventFrameRemoved, webhook.EventNotificationsDisabled:
		if err := s.s.DeleteNotificationToken(r.Context(), event.FID); err != nil {
			writeInternalError(log, w, err.Error())
			return
		}
	}

	writeOK(w, http.StatusOK, struct{}{})
}

func toGenerationView(g *entities.Generation) api.Generation {
	return api.Generation{
		ID:    g.ID,
		FID:   g.FID,
		Salt:  g.Salt,
		Phase: g.Tier,
		Palette: api.Palette{
			Primary:   g.Primary,
			Secondary: g.Secondary,
			Accent:    g.Accent,
		},
		Traits: api.Traits{
			Silhouette:  g.Silhouette,
			Expression:  g.Expression,
			Texture:     g.Texture,
			Accessories: g.Accessories,
		},
		ImageURL:  g.ImageURL,
		ThumbURL:  g.ThumbURL,
		ImageCID:  g.ImageCID,
		CreatedAt: g.CreatedAt,
	}
}

func toClinkerView(c *entities.Clinker) api.Clinker {
	v := api.Clinker{
		FID:     c.FID,
		TokenID: c.TokenID,
		Owner:   c.Owner,
		TxHash:  c.TxHash,
	}

	if !c.MintedAt.IsZero() {
		t := c.MintedAt
		v.MintedAt = &t
	}

	return v
}

func toStatusView(s *entities.ClinkerStatus) api.ClinkerStatus {
	v := api.ClinkerStatus{
		FID:    s.FID,
		Minted: s.Minted,
	}

	if s.Clinker != nil {
		c := toClinkerView(s.Clinker)
		v.Clinker = &c
	}

	if s.Generation != nil {
		g := toGenerationView(s.Generation)
		v.Generation = &g
	}

	return v
}
