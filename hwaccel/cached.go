package hwaccel

import (
	"context"
	"slices"

	"github.com/xaionaro-go/xsync"
)

// Cached memoizes the result of the wrapped Lister until Invalidate is called.
type Cached struct {
	Lister Lister

	locker xsync.Mutex
	ids    []string
	valid  bool
}

var _ Lister = (*Cached)(nil)

func NewCached(l Lister) *Cached {
	return &Cached{
		Lister: l,
	}
}

func (c *Cached) HWAccelIDs(ctx context.Context) []string {
	return xsync.DoA1R1(ctx, &c.locker, c.hwAccelIDsLocked, ctx)
}

func (c *Cached) hwAccelIDsLocked(ctx context.Context) []string {
	if !c.valid {
		c.ids = c.Lister.HWAccelIDs(ctx)
		c.valid = true
	}
	return slices.Clone(c.ids)
}

func (c *Cached) Invalidate(ctx context.Context) {
	c.locker.Do(ctx, func() {
		c.ids = nil
		c.valid = false
	})
}
