// Package imagegen abstracts the generative image backend behind a single
// Generator interface so the pipeline doesn't care which vendor renders the
// artwork.
package imagegen

import (
	"context"
	"errors"
)

//go:generate mockgen -destination=./mock/imagegen.go -package=mock -source=imagegen.go

// ErrNoImage is returned when the backend answered successfully but produced
// no usable image, e.g. the output was safety-filtered away.
var ErrNoImage = errors.New("image api returned no image")

// Generator renders one PNG or JPEG image for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
	Ping(ctx context.Context) error
}
