// Package picture describes a decoded video picture: its metadata plus an
// optional reference to the buffer holding the pixels.
//
// A Picture is a plain value. Copying it with `=` (or RawCopy) duplicates the
// buffer reference WITHOUT acquiring it; use TakeReference when the copy must
// keep the buffer alive, and AdoptMetadataOnly when only the metadata is needed.
package picture

import (
	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avhwgate/buffer"
)

type Flags uint32

const (
	FlagTopFieldFirst Flags = 1 << iota
	FlagRepeatTopField
	FlagInterlaced
	FlagDropped
)

func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

type Picture struct {
	// Buffer is nil for empty and metadata-only pictures.
	Buffer buffer.Buffer

	Width             int
	Height            int
	DisplayWidth      int
	DisplayHeight     int
	PixelFormat       astiav.PixelFormat
	SampleAspectRatio astiav.Rational

	PTS      int64
	DTS      int64
	Duration int64
	TimeBase astiav.Rational

	Flags         Flags
	RepeatPicture int
	PictureType   astiav.PictureType

	ColorSpace astiav.ColorSpace
	ColorRange astiav.ColorRange
	ColorBits  int
	StereoMode string

	// quantizer table, exported by some software decoders for postprocessing
	QPTable    []int8
	QStride    int
	QScaleType int
}

func (p *Picture) HasBuffer() bool {
	return p.Buffer != nil
}
