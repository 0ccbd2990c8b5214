// Package consumer contains the interface of mint consumers.
package consumer

import (
	"context"
)

// Consumer tails a source of mint events until the context is done.
type Consumer interface {
	Run(ctx context.Context) error
}
