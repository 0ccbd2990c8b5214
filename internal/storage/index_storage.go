package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/Adefolalu/clinkers/internal/entities"
)

//go:generate mockgen -destination=./mock/index_storage.go -package=mock -source=index_storage.go

// IndexStorage provides access to the mint index, generation history and
// notification tokens.
type IndexStorage interface {
	InTx(ctx context.Context, f func(s IndexStorage) error) error
	SetHeight(ctx context.Context, height uint64) error
	GetHeight(ctx context.Context) (uint64, error)

	CreateGeneration(ctx context.Context, g *entities.Generation) error
	GetGeneration(ctx context.Context, id uuid.UUID) (*entities.Generation, error)
	GetLatestGeneration(ctx context.Context, fid uint64) (*entities.Generation, error)
	SetGenerationMetadata(ctx context.Context, id uuid.UUID, metadataCID string) error

	UpsertClinker(ctx context.Context, c *entities.Clinker) error
	GetClinker(ctx context.Context, fid uint64) (*entities.Clinker, error)
	ListClinkers(ctx context.Context, from uint64, limit uint16) ([]*entities.Clinker, error)
	CountClinkers(ctx context.Context) (uint64, error)

	SetNotificationToken(ctx context.Context, t *entities.NotificationToken) error
	GetNotificationToken(ctx context.Context, fid uint64) (*entities.NotificationToken, error)
	DeleteNotificationToken(ctx context.Context, fid uint64) error
}
