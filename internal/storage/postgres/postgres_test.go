//go:build integration
// +build integration

package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	m "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Adefolalu/clinkers/internal/entities"
	"github.com/Adefolalu/clinkers/internal/storage"
)

var (
	db  *sqlx.DB
	ctx = context.Background()
	s   storage.IndexStorage
)

func TestMain(m *testing.M) {
	shutdown := setup()

	s = New(db.DB)

	code := m.Run()
	shutdown()
	os.Exit(code)
}

func setup() func() {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:12",
		Env:          map[string]string{"POSTGRES_PASSWORD": "root"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
	})
	if err != nil {
		logrus.WithError(err).Fatalf("failed to create container")
	}

	if err := c.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to start container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}

	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=postgres password=root sslmode=disable", host, port.Int())

	db, err = sqlx.Open("postgres", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open connection")
	}

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	shutdownFn := func() {
		if c != nil {
			c.Terminate(ctx)
		}
	}

	migrate("postgres", "root", host, "postgres", port.Int())

	return shutdownFn
}

func migrate(username, password, hostname, dbname string, port int) {
	_, currFile, _, ok := runtime.Caller(0)
	if !ok {
		logrus.Fatal("failed to get current file location")
	}

	migrations := filepath.Join(currFile, "..", "..", "..", "..", "scripts", "migrations", "postgres")

	migrator, err := m.New(
		fmt.Sprintf("file://%s", migrations),
		fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			username, password, hostname, port, dbname),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}
}

func cleanup() {
	db.MustExecContext(ctx, `DELETE FROM generations`)
	db.MustExecContext(ctx, `DELETE FROM clinkers`)
	db.MustExecContext(ctx, `DELETE FROM notification_tokens`)
	db.MustExecContext(ctx, `UPDATE height SET height = 0`)
}

func TestPg_GetHeight(t *testing.T) {
	t.Cleanup(cleanup)

	h, err := s.GetHeight(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 0, h)
}

func TestPg_SetHeight(t *testing.T) {
	t.Cleanup(cleanup)

	require.NoError(t, s.SetHeight(ctx, 10))

	h, err := s.GetHeight(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 10, h)
}

func TestPg_InTx(t *testing.T) {
	t.Cleanup(cleanup)

	require.NoError(t, s.InTx(context.Background(), func(tx storage.IndexStorage) error {
		require.NoError(t, tx.SetHeight(ctx, 1))
		require.NoError(t, tx.UpsertClinker(ctx, newClinker(1, 1)))
		return nil
	}))

	h, err := s.GetHeight(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, h)

	c, err := s.GetClinker(ctx, 1)
	require.NoError(t, err)
	require.EqualValues(t, 1, c.TokenID)
}

func TestPg_InTx_Nested(t *testing.T) {
	t.Cleanup(cleanup)

	require.Error(t, s.InTx(ctx, func(tx storage.IndexStorage) error {
		return tx.InTx(ctx, func(storage.IndexStorage) error { return nil })
	}))
}

func TestPg_CreateGeneration(t *testing.T) {
	t.Cleanup(cleanup)

	expected := newGeneration(239396)
	require.NoError(t, s.CreateGeneration(ctx, expected))

	actual, err := s.GetGeneration(ctx, expected.ID)
	require.NoError(t, err)
	compareGenerations(t, expected, actual)

	_, err = s.GetGeneration(ctx, uuid.New())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPg_GetLatestGeneration(t *testing.T) {
	t.Cleanup(cleanup)

	old := newGeneration(239396)
	require.NoError(t, s.CreateGeneration(ctx, old))

	latest := newGeneration(239396)
	latest.Salt = 1
	latest.CreatedAt = old.CreatedAt.Add(time.Minute)
	require.NoError(t, s.CreateGeneration(ctx, latest))

	actual, err := s.GetLatestGeneration(ctx, 239396)
	require.NoError(t, err)
	compareGenerations(t, latest, actual)

	_, err = s.GetLatestGeneration(ctx, 1)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPg_SetGenerationMetadata(t *testing.T) {
	t.Cleanup(cleanup)

	g := newGeneration(239396)
	require.NoError(t, s.CreateGeneration(ctx, g))

	require.NoError(t, s.SetGenerationMetadata(ctx, g.ID, "QmMeta"))

	actual, err := s.GetGeneration(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "QmMeta", actual.MetadataCID)

	assert.ErrorIs(t, s.SetGenerationMetadata(ctx, uuid.New(), "QmMeta"), storage.ErrNotFound)
}

func TestPg_UpsertClinker(t *testing.T) {
	t.Cleanup(cleanup)

	expected := newClinker(239396, 1)
	require.NoError(t, s.UpsertClinker(ctx, expected))

	actual, err := s.GetClinker(ctx, 239396)
	require.NoError(t, err)
	compareClinkers(t, expected, actual)

	expected.Owner = "0x00000000000000000000000000000000000000ff"
	expected.BlockHeight = 200
	require.NoError(t, s.UpsertClinker(ctx, expected))

	actual, err = s.GetClinker(ctx, 239396)
	require.NoError(t, err)
	compareClinkers(t, expected, actual)

	_, err = s.GetClinker(ctx, 1)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPg_ListClinkers(t *testing.T) {
	t.Cleanup(cleanup)

	for i := uint64(1); i <= 10; i++ {
		require.NoError(t, s.UpsertClinker(ctx, newClinker(i, i)))
	}

	cc, err := s.ListClinkers(ctx, 0, 3)
	require.NoError(t, err)
	require.Len(t, cc, 3)
	assert.EqualValues(t, 10, cc[0].TokenID)
	assert.EqualValues(t, 9, cc[1].TokenID)
	assert.EqualValues(t, 8, cc[2].TokenID)

	cc, err = s.ListClinkers(ctx, 3, 3)
	require.NoError(t, err)
	require.Len(t, cc, 2)
	assert.EqualValues(t, 2, cc[0].TokenID)
	assert.EqualValues(t, 1, cc[1].TokenID)

	cc, err = s.ListClinkers(ctx, 1, 3)
	require.NoError(t, err)
	require.Empty(t, cc)
}

func TestPg_CountClinkers(t *testing.T) {
	t.Cleanup(cleanup)

	count, err := s.CountClinkers(ctx)
	require.NoError(t, err)
	require.Zero(t, count)

	for i := uint64(1); i <= 5; i++ {
		require.NoError(t, s.UpsertClinker(ctx, newClinker(i, i)))
	}

	count, err = s.CountClinkers(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 5, count)
}

func TestPg_SetNotificationToken(t *testing.T) {
	t.Cleanup(cleanup)

	expected := &entities.NotificationToken{
		FID:       239396,
		Token:     "token",
		URL:       "https://api.farcaster.xyz/v1/frame-notifications",
		Enabled:   true,
		UpdatedAt: date("2025-04-01"),
	}
	require.NoError(t, s.SetNotificationToken(ctx, expected))

	actual, err := s.GetNotificationToken(ctx, 239396)
	require.NoError(t, err)
	compareTokens(t, expected, actual)

	expected.Token = "token2"
	expected.Enabled = false
	expected.UpdatedAt = date("2025-04-02")
	require.NoError(t, s.SetNotificationToken(ctx, expected))

	actual, err = s.GetNotificationToken(ctx, 239396)
	require.NoError(t, err)
	compareTokens(t, expected, actual)

	_, err = s.GetNotificationToken(ctx, 1)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPg_DeleteNotificationToken(t *testing.T) {
	t.Cleanup(cleanup)

	require.NoError(t, s.SetNotificationToken(ctx, &entities.NotificationToken{
		FID:       239396,
		Token:     "token",
		URL:       "https://api.farcaster.xyz/v1/frame-notifications",
		Enabled:   true,
		UpdatedAt: date("2025-04-01"),
	}))

	require.NoError(t, s.DeleteNotificationToken(ctx, 239396))

	_, err := s.GetNotificationToken(ctx, 239396)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// deleting a missing token is not an error
	require.NoError(t, s.DeleteNotificationToken(ctx, 239396))
}

func compareGenerations(t *testing.T, expected, actual *entities.Generation) {
	t.Helper()

	assert.True(t, expected.CreatedAt.Equal(actual.CreatedAt))

	e, a := *expected, *actual
	e.CreatedAt, a.CreatedAt = time.Time{}, time.Time{}
	assert.Equal(t, e, a)
}

func compareClinkers(t *testing.T, expected, actual *entities.Clinker) {
	t.Helper()

	assert.True(t, expected.MintedAt.Equal(actual.MintedAt))

	e, a := *expected, *actual
	e.MintedAt, a.MintedAt = time.Time{}, time.Time{}
	assert.Equal(t, e, a)
}

func compareTokens(t *testing.T, expected, actual *entities.NotificationToken) {
	t.Helper()

	assert.True(t, expected.UpdatedAt.Equal(actual.UpdatedAt))

	e, a := *expected, *actual
	e.UpdatedAt, a.UpdatedAt = time.Time{}, time.Time{}
	assert.Equal(t, e, a)
}

func newGeneration(fid uint64) *entities.Generation {
	return &entities.Generation{
		ID:          uuid.New(),
		FID:         fid,
		Salt:        0,
		Tier:        4,
		Primary:     "#E81135",
		Secondary:   "#DCD132",
		Accent:      "#35E9B6",
		Silhouette:  "stout boulder build with broad shoulders",
		Expression:  "grumpy furrowed brow",
		Texture:     "glassy slag swirl",
		Accessories: []string{"tiny copper goggles", "cinder-wool scarf"},
		Prompt:      "prompt",
		ImageCID:    "QmImage",
		ImageURL:    "https://cdn.clinkers.xyz/clinkers/239396/full.png",
		ThumbURL:    "https://cdn.clinkers.xyz/clinkers/239396/thumb.png",
		MetadataCID: "",
		CreatedAt:   date("2025-04-01"),
	}
}

func newClinker(fid, tokenID uint64) *entities.Clinker {
	return &entities.Clinker{
		FID:         fid,
		TokenID:     tokenID,
		Owner:       "0x0000000000000000000000000000000000000001",
		TxHash:      "0xdeadbeef",
		BlockHeight: 100,
		MintedAt:    date("2025-04-01"),
	}
}

func date(d string) time.Time {
	t, err := time.Parse("2006-01-02", d)
	if err != nil {
		panic(err)
	}
	return t
}
