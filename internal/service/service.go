// Package service contains the generation pipeline and the read models the
// API serves.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	retry "github.com/avast/retry-go"
	"github.com/google/uuid"

	"github.com/Adefolalu/clinkers/internal/artwork"
	"github.com/Adefolalu/clinkers/internal/chain"
	"github.com/Adefolalu/clinkers/internal/engine"
	"github.com/Adefolalu/clinkers/internal/entities"
	"github.com/Adefolalu/clinkers/internal/farcaster"
	"github.com/Adefolalu/clinkers/internal/imagegen"
	"github.com/Adefolalu/clinkers/internal/storage"
	"github.com/Adefolalu/clinkers/internal/throttler"
	"github.com/Adefolalu/clinkers/pkg/metadata"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

var (
	// ErrNotFound means that requested object is not found.
	ErrNotFound = errors.New("not found")
	// ErrProfileNotFound means that the fid has no Farcaster profile.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrAlreadyMinted means that the fid already forged its clinker.
	ErrAlreadyMinted = errors.New("clinker is already minted")
	// ErrThrottled means that the fid rerolls too often.
	ErrThrottled = errors.New("generation is throttled")
	// ErrGeneration means that the image backend failed to produce artwork.
	ErrGeneration = errors.New("image generation failed")
	// ErrUpload means that pinning or archiving the artwork failed.
	ErrUpload = errors.New("artwork upload failed")
)

const (
	generateAttempts   = 3
	generateRetryDelay = 250 * time.Millisecond

	pngContentType  = "image/png"
	jsonContentType = "application/json"
)

// Service interface provides service's logic's methods.
type Service interface {
	// Generate runs the personalization pipeline for the fid.
	Generate(ctx context.Context, fid uint64, salt uint32) (*entities.Generation, error)
	// TokenURI pins the metadata document for the generation and returns its ipfs uri.
	TokenURI(ctx context.Context, fid uint64, id uuid.UUID) (string, error)
	// Clinker returns the merged mint and artwork status of the fid.
	Clinker(ctx context.Context, fid uint64) (*entities.ClinkerStatus, error)
	// ListClinkers lists minted clinkers, newest first.
	ListClinkers(ctx context.Context, from uint64, limit uint16) ([]*entities.Clinker, error)
	// CountClinkers returns the number of minted clinkers.
	CountClinkers(ctx context.Context) (uint64, error)
	// MintParams returns the contract's current mint terms.
	MintParams(ctx context.Context) (*entities.MintParams, error)
	// SaveNotificationToken stores the push grant a client issued for the fid.
	SaveNotificationToken(ctx context.Context, t *entities.NotificationToken) error
	// DeleteNotificationToken revokes the fid's push grant.
	DeleteNotificationToken(ctx context.Context, fid uint64) error
}

// service is Service interface implementation.
type service struct {
	f  farcaster.Client
	ig imagegen.Generator
	c  chain.Client
	t  throttler.Throttler

	pin storage.FileStorage
	web storage.FileStorage
	is  storage.IndexStorage

	appURL string
}

// New returns new instance of service. pin must be content-addressed storage
// returning bare CIDs, web must return public URLs.
func New(
	f farcaster.Client,
	ig imagegen.Generator,
	c chain.Client,
	t throttler.Throttler,
	pin, web storage.FileStorage,
	is storage.IndexStorage,
	appURL string,
) Service {
	return &service{
		f:      f,
		ig:     ig,
		c:      c,
		t:      t,
		pin:    pin,
		web:    web,
		is:     is,
		appURL: strings.TrimSuffix(appURL, "/"),
	}
}

// Generate runs the personalization pipeline for the fid.
func (s *service) Generate(ctx context.Context, fid uint64, salt uint32) (*entities.Generation, error) {
	if s.t.Throttled(fid) {
		return nil, ErrThrottled
	}

	if err := s.checkNotMinted(ctx, fid); err != nil {
		return nil, err
	}

	profile, err := s.f.UserByFID(ctx, fid)
	if err != nil {
		if errors.Is(err, farcaster.ErrUserNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	res := engine.Generate(*profile, salt)

	raw, err := s.generateImage(ctx, res.Prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	img, err := artwork.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	id := uuid.New()

	cid, err := s.pin.Write(ctx, bytes.NewReader(img.PNG), int64(len(img.PNG)), getArtworkFilePath(fid, id), pngContentType)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to pin artwork: %v", ErrUpload, err)
	}

	imageURL, err := s.web.Write(ctx, bytes.NewReader(img.PNG), int64(len(img.PNG)), getArtworkFilePath(fid, id), pngContentType)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to archive artwork: %v", ErrUpload, err)
	}

	thumbURL, err := s.web.Write(ctx, bytes.NewReader(img.Thumb), int64(len(img.Thumb)), getThumbFilePath(fid, id), pngContentType)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to archive thumbnail: %v", ErrUpload, err)
	}

	g := &entities.Generation{
		ID:          id,
		FID:         fid,
		Salt:        salt,
		Tier:        res.Tier,
		Primary:     res.Palette.Primary,
		Secondary:   res.Palette.Secondary,
		Accent:      res.Palette.Accent,
		Silhouette:  res.Traits.Silhouette,
		Expression:  res.Traits.Expression,
		Texture:     res.Traits.Texture,
		Accessories: res.Traits.Accessories,
		Prompt:      res.Prompt,
		ImageCID:    cid,
		ImageURL:    imageURL,
		ThumbURL:    thumbURL,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.is.CreateGeneration(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to save generation: %w", err)
	}

	s.t.Mark(fid)

	return g, nil
}

// checkNotMinted asks the chain first. When the node is down the index still
// catches fids minted earlier.
func (s *service) checkNotMinted(ctx context.Context, fid uint64) error {
	minted, err := s.c.HasMinted(ctx, fid)
	if err != nil {
		if _, ierr := s.is.GetClinker(ctx, fid); ierr == nil {
			return ErrAlreadyMinted
		}
		return fmt.Errorf("failed to check mint state: %w", err)
	}

	if minted {
		return ErrAlreadyMinted
	}

	return nil
}

func (s *service) generateImage(ctx context.Context, prompt string) ([]byte, error) {
	var out []byte

	err := retry.Do(
		func() error {
			b, err := s.ig.Generate(ctx, prompt)
			if err != nil {
				return err
			}
			out = b
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(generateAttempts),
		retry.Delay(generateRetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// TokenURI pins the metadata document for the generation and returns its ipfs
// uri. Repeated calls for the same generation return the uri pinned first.
func (s *service) TokenURI(ctx context.Context, fid uint64, id uuid.UUID) (string, error) {
	g, err := s.is.GetGeneration(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get generation: %w", err)
	}

	if g.FID != fid {
		return "", ErrNotFound
	}

	if uri := g.TokenURI(); uri != "" {
		return uri, nil
	}

	p := metadata.Params{
		FID:         g.FID,
		Phase:       g.Tier,
		Silhouette:  g.Silhouette,
		Expression:  g.Expression,
		Texture:     g.Texture,
		Accessories: g.Accessories,
		Primary:     g.Primary,
		Secondary:   g.Secondary,
		Accent:      g.Accent,
		Image:       ipfsURI(g.ImageCID),
	}

	if s.appURL != "" {
		p.ExternalURL = fmt.Sprintf("%s/clinkers/%d", s.appURL, g.FID)
	}

	// the handle is cosmetic, proceed without it when the profile api is down
	if profile, err := s.f.UserByFID(ctx, g.FID); err == nil {
		p.Handle = profile.Handle
	}

	doc := metadata.Build(p)
	if !metadata.Validate(doc) {
		return "", fmt.Errorf("built invalid metadata for generation %s", g.ID) // nolint:goerr113
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal metadata: %w", err)
	}

	cid, err := s.pin.Write(ctx, bytes.NewReader(data), int64(len(data)), getMetadataFilePath(g.FID, g.ID), jsonContentType)
	if err != nil {
		return "", fmt.Errorf("%w: failed to pin metadata: %v", ErrUpload, err)
	}

	if err := s.is.SetGenerationMetadata(ctx, g.ID, cid); err != nil {
		return "", fmt.Errorf("failed to save metadata cid: %w", err)
	}

	return ipfsURI(cid), nil
}

// Clinker returns the merged mint and artwork status of the fid.
func (s *service) Clinker(ctx context.Context, fid uint64) (*entities.ClinkerStatus, error) {
	g, err := s.is.GetLatestGeneration(ctx, fid)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to get latest generation: %w", err)
		}
		g = nil
	}

	c, err := s.is.GetClinker(ctx, fid)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to get clinker: %w", err)
		}
		// the index lags the chain right after a mint
		if c, err = s.clinkerFromChain(ctx, fid); err != nil {
			return nil, err
		}
	}

	if c == nil && g == nil {
		return nil, ErrNotFound
	}

	return &entities.ClinkerStatus{
		FID:        fid,
		Minted:     c != nil,
		Clinker:    c,
		Generation: g,
	}, nil
}

func (s *service) clinkerFromChain(ctx context.Context, fid uint64) (*entities.Clinker, error) {
	tokenID, err := s.c.TokenOf(ctx, fid)
	if err != nil {
		if errors.Is(err, chain.ErrNotMinted) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	owner, err := s.c.OwnerOf(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}

	return &entities.Clinker{
		FID:     fid,
		TokenID: tokenID,
		Owner:   owner,
	}, nil
}

// ListClinkers lists minted clinkers, newest first.
func (s *service) ListClinkers(ctx context.Context, from uint64, limit uint16) ([]*entities.Clinker, error) {
	out, err := s.is.ListClinkers(ctx, from, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list clinkers: %w", err)
	}

	return out, nil
}

// CountClinkers returns the number of minted clinkers.
func (s *service) CountClinkers(ctx context.Context) (uint64, error) {
	count, err := s.is.CountClinkers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count clinkers: %w", err)
	}

	return count, nil
}

// MintParams returns the contract's current mint terms.
func (s *service) MintParams(ctx context.Context) (*entities.MintParams, error) {
	params, err := s.c.MintParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get mint params: %w", err)
	}

	return params, nil
}

// SaveNotificationToken stores the push grant a client issued for the fid.
func (s *service) SaveNotificationToken(ctx context.Context, t *entities.NotificationToken) error {
	if err := s.is.SetNotificationToken(ctx, t); err != nil {
		return fmt.Errorf("failed to save notification token: %w", err)
	}

	return nil
}

// DeleteNotificationToken revokes the fid's push grant.
func (s *service) DeleteNotificationToken(ctx context.Context, fid uint64) error {
	if err := s.is.DeleteNotificationToken(ctx, fid); err != nil {
		return fmt.Errorf("failed to delete notification token: %w", err)
	}

	return nil
}

func ipfsURI(cid string) string {
	return "ipfs://" + cid
}

func getArtworkFilePath(fid uint64, id uuid.UUID) string {
	return fmt.Sprintf("clinkers/%d/%s.png", fid, id)
}

func getThumbFilePath(fid uint64, id uuid.UUID) string {
	return fmt.Sprintf("clinkers/%d/%s_thumb.png", fid, id)
}

func getMetadataFilePath(fid uint64, id uuid.UUID) string {
	return fmt.Sprintf("metadata/%d/%s.json", fid, id)
}
