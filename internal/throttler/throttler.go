// Package throttler limits how often a fid may rerun the generation pipeline.
package throttler

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// Throttler tracks per-fid cooldowns.
type Throttler interface {
	// Throttled reports whether the fid is still cooling down.
	Throttled(fid uint64) bool
	// Mark starts the cooldown for the fid.
	Mark(fid uint64)
}

type throttler struct {
	c *cache.Cache
}

// New returns a new instance of Throttler with the given cooldown period.
func New(period time.Duration) Throttler {
	return &throttler{
		c: cache.New(period, time.Hour),
	}
}

func (t *throttler) Throttled(fid uint64) bool {
	_, ok := t.c.Get(strconv.FormatUint(fid, 10))
	return ok
}

func (t *throttler) Mark(fid uint64) {
	t.c.SetDefault(strconv.FormatUint(fid, 10), true)
}
