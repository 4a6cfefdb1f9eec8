// avframe.go implements a picture buffer backed by a pooled libav frame.

package buffer

import (
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avhwgate/pool"
)

// FramePool keeps the libav frames used as picture storage.
var FramePool = pool.New(
	astiav.AllocFrame,
	func(f *astiav.Frame) { f.Unref() },
	func(f *astiav.Frame) { f.Free() },
)

// AVFrame is a Buffer backed by a libav frame, which may reference
// hardware-resident surfaces (VAAPI, VDPAU, CUDA, ...).
type AVFrame struct {
	*RefCounted
	frame *astiav.Frame
}

var _ Buffer = (*AVFrame)(nil)

// NewAVFrame takes a libav reference to the data of src; src stays owned by
// the caller. The reference is dropped (and the frame goes back to
// FramePool) when the last Release happens.
func NewAVFrame(src *astiav.Frame) (*AVFrame, error) {
	f := FramePool.Get()
	if err := f.Ref(src); err != nil {
		FramePool.Put(f)
		return nil, fmt.Errorf("unable to reference the frame: %w", err)
	}
	b := &AVFrame{
		frame: f,
	}
	b.RefCounted = NewRefCounted(func() {
		FramePool.Put(b.frame)
		b.frame = nil
	})
	return b, nil
}

// Frame returns the backing frame; it must not be used after the holder
// released its reference.
func (b *AVFrame) Frame() *astiav.Frame {
	return b.frame
}
