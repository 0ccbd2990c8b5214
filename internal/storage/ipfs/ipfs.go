// Package ipfs contains implementation of FileStorage interface with an ipfs node.
package ipfs

import (
	"context"
	"errors"
	"fmt"
	"io"

	shell "github.com/ipfs/go-ipfs-api"
	files "github.com/ipfs/go-ipfs-files"

	"github.com/Adefolalu/clinkers/internal/storage"
)

type ipfs struct {
	sh *shell.Shell
}

// NewStorage returns ipfs implementation of FileStorage interface. The
// storage is content-addressed: Write returns the CID of the added file and
// ignores the requested path and content type.
func NewStorage(sh *shell.Shell) storage.FileStorage {
	return ipfs{
		sh: sh,
	}
}

func (i ipfs) Ping(ctx context.Context) error {
	if _, err := i.sh.StatsBW(ctx); err != nil {
		return errors.New("connection with ipfs seems broken") // nolint:goerr113
	}
	return nil
}

// Write adds and pins file into ipfs node.
// It is modified copy of shell.Add method with custom context.
func (i ipfs) Write(ctx context.Context, r io.Reader, _ int64, _ string, _ string) (string, error) {
	fr := files.NewReaderFile(r)
	slf := files.NewSliceDirectory([]files.DirEntry{files.FileEntry("", fr)})
	fileReader := files.NewMultiFileReader(slf, true)

	var out struct{ Hash string }
	if err := i.sh.Request("add").Option("pin", "true").Body(fileReader).Exec(ctx, &out); err != nil {
		return "", fmt.Errorf("failed to add file into ipfs: %w", err)
	}

	return out.Hash, nil
}
