// avframe.go builds picture descriptors out of libav frames.

package picture

import (
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avhwgate/buffer"
)

// FromAVFrame builds a Picture holding a new reference to the data of f.
// libav frames carry no time base of their own, so the stream's one is
// passed in. The caller must Release the result.
func FromAVFrame(f *astiav.Frame, timeBase astiav.Rational) (Picture, error) {
	buf, err := buffer.NewAVFrame(f)
	if err != nil {
		return Picture{}, fmt.Errorf("unable to wrap the frame into a picture buffer: %w", err)
	}
	p := MetadataFromAVFrame(f, timeBase)
	p.Buffer = buf
	return p, nil
}

// MetadataFromAVFrame builds a metadata-only Picture out of f.
func MetadataFromAVFrame(f *astiav.Frame, timeBase astiav.Rational) Picture {
	p := Picture{
		Width:             f.Width(),
		Height:            f.Height(),
		PixelFormat:       f.PixelFormat(),
		SampleAspectRatio: f.SampleAspectRatio(),
		PTS:               f.Pts(),
		DTS:               f.PktDts(),
		Duration:          f.Duration(),
		TimeBase:          timeBase,
		PictureType:       f.PictureType(),
		ColorSpace:        f.ColorSpace(),
		ColorRange:        f.ColorRange(),
	}
	p.DisplayWidth, p.DisplayHeight = displaySize(p.Width, p.Height, p.SampleAspectRatio)
	return p
}

func displaySize(width, height int, sar astiav.Rational) (int, int) {
	if sar.Num() <= 0 || sar.Den() <= 0 {
		return width, height
	}
	return width * sar.Num() / sar.Den(), height
}
