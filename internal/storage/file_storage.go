// Package storage contains FileStorage and IndexStorage interfaces and their mocks.
package storage

import (
	"context"
	"errors"
	"io"

	"github.com/Adefolalu/clinkers/internal/health"
)

//go:generate mockgen -destination=./mock/file_storage.go -package=mock -source=file_storage.go

// ErrNotFound means that the requested entity is not found.
var ErrNotFound = errors.New("not found")

// FileStorage persists artwork binaries. Write returns a locator for the
// stored object: a public URL for web storage, a bare CID for
// content-addressed storage. Artwork is written once and read through public
// gateways, so the interface carries no Read.
type FileStorage interface {
	health.Pinger

	Write(ctx context.Context, data io.Reader, size int64, path string, contentType string) (string, error)
}
