package picture

import (
	"testing"

	"github.com/asticode/go-astiav"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avhwgate/buffer"
)

type countingBuffer struct {
	*buffer.RefCounted
	destroyed int
}

func newCountingBuffer() *countingBuffer {
	b := &countingBuffer{}
	b.RefCounted = buffer.NewRefCounted(func() { b.destroyed++ })
	return b
}

func samplePicture(buf buffer.Buffer) Picture {
	return Picture{
		Buffer:      buf,
		Width:       1920,
		Height:      1080,
		PixelFormat: astiav.PixelFormatNv12,
		PTS:         9000,
		DTS:         6000,
		Duration:    3000,
		TimeBase:    astiav.NewRational(1, 90000),
		Flags:       FlagInterlaced | FlagTopFieldFirst,
		ColorBits:   10,
	}
}

func TestTakeReference(t *testing.T) {
	buf := newCountingBuffer()
	src := samplePicture(buf)
	buf.Acquire() // src's own reference; the creator keeps the initial one
	require.EqualValues(t, 2, buf.RefCount())

	var dst Picture
	dst.TakeReference(&src)
	require.EqualValues(t, 3, buf.RefCount())
	require.Equal(t, src, dst)
	require.Same(t, src.Buffer, dst.Buffer)

	dst.Release()
	src.Release()
	buf.Release()
	require.Equal(t, 1, buf.destroyed)
}

func TestTakeReferenceReleasesPreviousBuffer(t *testing.T) {
	oldBuf := newCountingBuffer()
	newBuf := newCountingBuffer()

	dst := samplePicture(oldBuf)
	src := samplePicture(newBuf)
	src.PTS = 12000

	dst.TakeReference(&src)
	require.Equal(t, 1, oldBuf.destroyed)
	require.EqualValues(t, 2, newBuf.RefCount())
	require.EqualValues(t, 12000, dst.PTS)

	dst.Release()
	src.Release()
	require.Equal(t, 1, newBuf.destroyed)
}

func TestTakeReferenceSelf(t *testing.T) {
	buf := newCountingBuffer()
	p := samplePicture(buf)
	p.TakeReference(&p)
	require.EqualValues(t, 1, buf.RefCount())
	p.Release()
	require.Equal(t, 1, buf.destroyed)
}

func TestTakeReferenceFromEmpty(t *testing.T) {
	buf := newCountingBuffer()
	dst := samplePicture(buf)
	var src Picture
	dst.TakeReference(&src)
	require.False(t, dst.HasBuffer())
	require.Equal(t, 1, buf.destroyed)
	require.Equal(t, Picture{}, dst)
}

func TestAdoptMetadataOnly(t *testing.T) {
	for _, withBuffer := range []bool{false, true} {
		buf := newCountingBuffer()
		var srcBuf buffer.Buffer
		if withBuffer {
			srcBuf = buf
		}
		src := samplePicture(srcBuf)

		dstBuf := newCountingBuffer()
		dst := samplePicture(dstBuf)
		dst.Width = 1

		dst.AdoptMetadataOnly(&src)
		require.Nil(t, dst.Buffer)
		require.Equal(t, 1920, dst.Width)
		require.Equal(t, src.TimeBase, dst.TimeBase)
		require.EqualValues(t, 1, buf.RefCount(), "withBuffer=%v", withBuffer)
		require.Equal(t, 1, dstBuf.destroyed)

		buf.Release()
		require.Equal(t, 1, buf.destroyed)
	}
}

func TestRawCopyDoesNotAcquire(t *testing.T) {
	buf := newCountingBuffer()
	p := samplePicture(buf)

	cpy := p.RawCopy()
	assigned := p
	require.EqualValues(t, 1, buf.RefCount())
	require.Same(t, p.Buffer, cpy.Buffer)
	require.Same(t, p.Buffer, assigned.Buffer)

	p.Release()
	require.Equal(t, 1, buf.destroyed)
}

func TestReleaseIsIdempotent(t *testing.T) {
	buf := newCountingBuffer()
	p := samplePicture(buf)
	p.Release()
	p.Release()
	require.Equal(t, 1, buf.destroyed)
	require.Equal(t, 1920, p.Width)

	var empty Picture
	require.NotPanics(t, empty.Release)
}

func TestPoolReleasesOnPut(t *testing.T) {
	buf := newCountingBuffer()
	p := Pool.Get()
	*p = samplePicture(buf)
	Pool.Put(p)
	require.Equal(t, 1, buf.destroyed)
	require.Equal(t, Picture{}, *p)
}

func TestFlags(t *testing.T) {
	f := FlagInterlaced | FlagRepeatTopField
	require.True(t, f.Has(FlagInterlaced))
	require.True(t, f.Has(FlagInterlaced|FlagRepeatTopField))
	require.False(t, f.Has(FlagDropped))
}
