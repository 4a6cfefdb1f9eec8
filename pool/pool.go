// pool.go implements a generic object pool with optional finalizers.

// Package pool provides a generic object pool with an optional finalizer
// releasing the underlying (usually C-allocated) object.
package pool

import (
	"runtime"
	"sync"
)

// ReuseMemory disables pooling when false; Put then drops the items.
var ReuseMemory = true

type Pool[T any] struct {
	sync.Pool
	ResetFunc func(*T)
}

func New[T any](
	allocFunc func() *T,
	resetFunc func(*T),
	freeFunc func(*T),
) *Pool[T] {
	return &Pool[T]{
		Pool: sync.Pool{
			New: func() any {
				v := allocFunc()
				if freeFunc != nil {
					runtime.SetFinalizer(v, freeFunc)
				}
				return v
			},
		},
		ResetFunc: resetFunc,
	}
}

func (p *Pool[T]) Get() *T {
	return p.Pool.Get().(*T)
}

func (p *Pool[T]) Put(items ...*T) {
	for _, item := range items {
		if item == nil {
			continue
		}
		if p.ResetFunc != nil {
			p.ResetFunc(item)
		}
		if !ReuseMemory {
			continue
		}
		p.Pool.Put(item)
	}
}
