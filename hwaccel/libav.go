// libav.go lists the backends libav was built with.

package hwaccel

import (
	"context"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avhwgate/logger"
	"github.com/xaionaro-go/avhwgate/types"
)

// DefaultCodecIDs are the decoders inspected by Libav when CodecIDs is empty.
var DefaultCodecIDs = []astiav.CodecID{
	astiav.CodecIDH264,
	astiav.CodecIDHevc,
	astiav.CodecIDMpeg2Video,
	astiav.CodecIDMpeg4,
	astiav.CodecIDVc1,
	astiav.CodecIDVp8,
	astiav.CodecIDVp9,
	astiav.CodecIDAv1,
}

// Libav lists the backends libav was built with, as advertised by the
// hardware configs of the decoders of CodecIDs.
//
// If Probe is set, a backend is listed only if a device context for it
// could be actually created.
type Libav struct {
	CodecIDs []astiav.CodecID
	Probe    bool
}

var _ Lister = (*Libav)(nil)

func (l *Libav) HWAccelIDs(ctx context.Context) (_ret []string) {
	logger.Tracef(ctx, "HWAccelIDs")
	defer func() { logger.Tracef(ctx, "/HWAccelIDs: %v", _ret) }()

	codecIDs := l.CodecIDs
	if len(codecIDs) == 0 {
		codecIDs = DefaultCodecIDs
	}

	seen := map[types.HardwareDeviceType]struct{}{}
	for _, codecID := range codecIDs {
		decoder := astiav.FindDecoder(codecID)
		if decoder == nil {
			logger.Tracef(ctx, "no decoder for %s", codecID)
			continue
		}
		for _, hwCfg := range decoder.HardwareConfigs() {
			devType := types.HardwareDeviceType(hwCfg.HardwareDeviceType())
			if _, ok := seen[devType]; ok {
				continue
			}
			seen[devType] = struct{}{}
			if l.Probe && !probe(ctx, devType) {
				continue
			}
			_ret = append(_ret, devType.String())
		}
	}
	return _ret
}

func probe(
	ctx context.Context,
	devType types.HardwareDeviceType,
) bool {
	hwCtx, err := astiav.CreateHardwareDeviceContext(
		astiav.HardwareDeviceType(devType),
		"",
		nil,
		0,
	)
	if err != nil {
		logger.Debugf(ctx, "unable to create a %s device context: %v", devType, err)
		return false
	}
	hwCtx.Free()
	return true
}
