// refcounted.go implements the atomic reference counter of picture buffers.

package buffer

import (
	"context"

	"github.com/xaionaro-go/avhwgate/internal"
	"github.com/xaionaro-go/avhwgate/logger"
	"go.uber.org/atomic"
)

type RefCounted struct {
	count     atomic.Int64
	onDestroy func()
}

var _ Buffer = (*RefCounted)(nil)

// NewRefCounted returns a handle holding one reference; onDestroy is called
// once the last reference is released (it may be nil).
func NewRefCounted(onDestroy func()) *RefCounted {
	b := &RefCounted{
		onDestroy: onDestroy,
	}
	b.count.Store(1)
	return b
}

func (b *RefCounted) Acquire() {
	n := b.count.Inc()
	internal.Assert(context.TODO(), n > 1, "acquired a destroyed buffer %p (refcount became %d)", b, n)
}

func (b *RefCounted) Release() {
	ctx := context.TODO()
	n := b.count.Dec()
	internal.Assert(ctx, n >= 0, "released buffer %p more times than acquired (refcount became %d)", b, n)
	if n != 0 {
		return
	}
	logger.Tracef(ctx, "buffer %p: the last reference is released", b)
	if b.onDestroy != nil {
		b.onDestroy()
	}
}

func (b *RefCounted) RefCount() int64 {
	return b.count.Load()
}
