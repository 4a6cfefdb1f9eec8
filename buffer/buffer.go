// Package buffer provides reference-counted handles to the memory backing
// decoded pictures.
//
// A handle is created holding one reference (owned by its creator). Every
// holder that wants to extend the lifetime calls Acquire, and every holder
// calls Release exactly once when done. The handle destroys itself when the
// count drops to zero. Acquire and Release are safe for concurrent use;
// anything else about the backing memory is not.
package buffer

// Buffer is the handle a picture descriptor holds.
type Buffer interface {
	Acquire()
	Release()
	RefCount() int64
}
