// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Adefolalu/clinkers/internal/entities"
	"github.com/Adefolalu/clinkers/internal/storage"
)

var errNestedTx = errors.New("InTx was called within another tx")

type pg struct {
	ext sqlx.ExtContext
}

type generationDTO struct {
	ID          uuid.UUID      `db:"id"`
	FID         uint64         `db:"fid"`
	Salt        uint32         `db:"salt"`
	Tier        int            `db:"tier"`
	Primary     string         `db:"primary_color"`
	Secondary   string         `db:"secondary_color"`
	Accent      string         `db:"accent_color"`
	Silhouette  string         `db:"silhouette"`
	Expression  string         `db:"expression"`
	Texture     string         `db:"texture"`
	Accessories pq.StringArray `db:"accessories"`
	Prompt      string         `db:"prompt"`
	ImageCID    string         `db:"image_cid"`
	ImageURL    string         `db:"image_url"`
	ThumbURL    string         `db:"thumb_url"`
	MetadataCID string         `db:"metadata_cid"`
	CreatedAt   time.Time      `db:"created_at"`
}

type clinkerDTO struct {
	FID         uint64    `db:"fid"`
	TokenID     uint64    `db:"token_id"`
	Owner       string    `db:"owner"`
	TxHash      string    `db:"tx_hash"`
	BlockHeight uint64    `db:"block_height"`
	MintedAt    time.Time `db:"minted_at"`
}

type notificationTokenDTO struct {
	FID       uint64    `db:"fid"`
	Token     string    `db:"token"`
	URL       string    `db:"url"`
	Enabled   bool      `db:"enabled"`
	UpdatedAt time.Time `db:"updated_at"`
}

// New creates new instance of pg.
func New(db *sql.DB) storage.IndexStorage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) InTx(ctx context.Context, f func(s storage.IndexStorage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errNestedTx
	}

	for {
		err := func() error {
			tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
			if err != nil {
				return fmt.Errorf("failed to begin tx: %w", err)
			}
			defer tx.Rollback() // nolint: errcheck

			if err := f(pg{ext: tx}); err != nil {
				return err
			}

			if err := tx.Commit(); err != nil {
				return fmt.Errorf("failed to commit tx: %w", err)
			}

			return nil
		}()

		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == "40001" { // serialization failure, restart tx
				continue
			}
			return err
		}

		return nil
	}
}

func (s pg) SetHeight(ctx context.Context, height uint64) error {
	if _, err := s.ext.ExecContext(ctx, `UPDATE height SET height = $1`, height); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}
	return nil
}

func (s pg) GetHeight(ctx context.Context) (uint64, error) {
	var height uint64
	if err := sqlx.GetContext(ctx, s.ext, &height, `SELECT height FROM height`); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}
	return height, nil
}

func (s pg) CreateGeneration(ctx context.Context, g *entities.Generation) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext, `
		INSERT INTO generations(
			id, fid, salt, tier,
			primary_color, secondary_color, accent_color,
			silhouette, expression, texture, accessories,
			prompt, image_cid, image_url, thumb_url, metadata_cid, created_at
		) VALUES(
			:id, :fid, :salt, :tier,
			:primary_color, :secondary_color, :accent_color,
			:silhouette, :expression, :texture, :accessories,
			:prompt, :image_cid, :image_url, :thumb_url, :metadata_cid, :created_at
		)
	`, toGenerationDTO(g)); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetGeneration(ctx context.Context, id uuid.UUID) (*entities.Generation, error) {
	var g generationDTO
	if err := sqlx.GetContext(ctx, s.ext, &g, `
		SELECT id, fid, salt, tier,
			primary_color, secondary_color, accent_color,
			silhouette, expression, texture, accessories,
			prompt, image_cid, image_url, thumb_url, metadata_cid, created_at
		FROM generations
		WHERE id = $1
	`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toEntityGeneration(&g), nil
}

func (s pg) GetLatestGeneration(ctx context.Context, fid uint64) (*entities.Generation, error) {
	var g generationDTO
	if err := sqlx.GetContext(ctx, s.ext, &g, `
		SELECT id, fid, salt, tier,
			primary_color, secondary_color, accent_color,
			silhouette, expression, texture, accessories,
			prompt, image_cid, image_url, thumb_url, metadata_cid, created_at
		FROM generations
		WHERE fid = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, fid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toEntityGeneration(&g), nil
}

func (s pg) SetGenerationMetadata(ctx context.Context, id uuid.UUID, metadataCID string) error {
	res, err := s.ext.ExecContext(ctx, `UPDATE generations SET metadata_cid = $2 WHERE id = $1`, id, metadataCID)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) UpsertClinker(ctx context.Context, c *entities.Clinker) error {
	dto := clinkerDTO(*c)

	if _, err := sqlx.NamedExecContext(ctx, s.ext, `
		INSERT INTO clinkers(fid, token_id, owner, tx_hash, block_height, minted_at)
		VALUES(:fid, :token_id, :owner, :tx_hash, :block_height, :minted_at)
		ON CONFLICT(fid) DO UPDATE SET
			token_id=excluded.token_id,
			owner=excluded.owner,
			tx_hash=excluded.tx_hash,
			block_height=excluded.block_height,
			minted_at=excluded.minted_at
	`, dto); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetClinker(ctx context.Context, fid uint64) (*entities.Clinker, error) {
	var c clinkerDTO
	if err := sqlx.GetContext(ctx, s.ext, &c, `
		SELECT fid, token_id, owner, tx_hash, block_height, minted_at
		FROM clinkers
		WHERE fid = $1
	`, fid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := entities.Clinker(c)
	return &out, nil
}

func (s pg) ListClinkers(ctx context.Context, from uint64, limit uint16) ([]*entities.Clinker, error) {
	var dd []*clinkerDTO
	if err := sqlx.SelectContext(ctx, s.ext, &dd, `
		SELECT fid, token_id, owner, tx_hash, block_height, minted_at
		FROM clinkers
		WHERE $1 = 0 OR token_id < $1
		ORDER BY token_id DESC
		LIMIT $2
	`, from, limit); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Clinker, len(dd))
	for i, v := range dd {
		c := entities.Clinker(*v)
		out[i] = &c
	}

	return out, nil
}

func (s pg) CountClinkers(ctx context.Context) (uint64, error) {
	var count uint64
	if err := sqlx.GetContext(ctx, s.ext, &count, `SELECT count(*) FROM clinkers`); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}
	return count, nil
}

func (s pg) SetNotificationToken(ctx context.Context, t *entities.NotificationToken) error {
	dto := notificationTokenDTO(*t)

	if _, err := sqlx.NamedExecContext(ctx, s.ext, `
		INSERT INTO notification_tokens(fid, token, url, enabled, updated_at)
		VALUES(:fid, :token, :url, :enabled, :updated_at)
		ON CONFLICT(fid) DO UPDATE SET
			token=excluded.token,
			url=excluded.url,
			enabled=excluded.enabled,
			updated_at=excluded.updated_at
	`, dto); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetNotificationToken(ctx context.Context, fid uint64) (*entities.NotificationToken, error) {
	var t notificationTokenDTO
	if err := sqlx.GetContext(ctx, s.ext, &t, `
		SELECT fid, token, url, enabled, updated_at
		FROM notification_tokens
		WHERE fid = $1
	`, fid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := entities.NotificationToken(t)
	return &out, nil
}

func (s pg) DeleteNotificationToken(ctx context.Context, fid uint64) error {
	if _, err := s.ext.ExecContext(ctx, `DELETE FROM notification_tokens WHERE fid = $1`, fid); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}
	return nil
}

func toGenerationDTO(g *entities.Generation) *generationDTO {
	return &generationDTO{
		ID:          g.ID,
		FID:         g.FID,
		Salt:        g.Salt,
		Tier:        g.Tier,
		Primary:     g.Primary,
		Secondary:   g.Secondary,
		Accent:      g.Accent,
		Silhouette:  g.Silhouette,
		Expression:  g.Expression,
		Texture:     g.Texture,
		Accessories: pq.StringArray(g.Accessories),
		Prompt:      g.Prompt,
		ImageCID:    g.ImageCID,
		ImageURL:    g.ImageURL,
		ThumbURL:    g.ThumbURL,
		MetadataCID: g.MetadataCID,
		CreatedAt:   g.CreatedAt,
	}
}

func toEntityGeneration(d *generationDTO) *entities.Generation {
	return &entities.Generation{
		ID:          d.ID,
		FID:         d.FID,
		Salt:        d.Salt,
		Tier:        d.Tier,
		Primary:     d.Primary,
		Secondary:   d.Secondary,
		Accent:      d.Accent,
		Silhouette:  d.Silhouette,
		Expression:  d.Expression,
		Texture:     d.Texture,
		Accessories: d.Accessories,
		Prompt:      d.Prompt,
		ImageCID:    d.ImageCID,
		ImageURL:    d.ImageURL,
		ThumbURL:    d.ThumbURL,
		MetadataCID: d.MetadataCID,
		CreatedAt:   d.CreatedAt,
	}
}
