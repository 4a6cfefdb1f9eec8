package policy

import (
	"context"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avhwgate/hwaccel"
	"github.com/xaionaro-go/avhwgate/logger"
	"github.com/xaionaro-go/avhwgate/settings"
	"github.com/xaionaro-go/avhwgate/types"
)

// Candidate is a hardware backend a decoder may be opened with.
type Candidate struct {
	DeviceType types.HardwareDeviceType

	// Toggle is the master switch of the backend; empty means no switch.
	Toggle string

	// Table gates the backend per codec; nil means no per-codec gating.
	Table DisablementTable
}

// DefaultCandidates are tried in this order by SelectBackend if no
// candidates are given.
var DefaultCandidates = []Candidate{
	{
		DeviceType: types.HardwareDeviceTypeVDPAU,
		Toggle:     settings.UseVDPAU,
		Table:      VDPAUDisablementTable,
	},
	{
		DeviceType: types.HardwareDeviceTypeVAAPI,
		Toggle:     settings.UseVAAPI,
		Table:      VAAPIDisablementTable,
	},
}

// SelectBackend returns the first candidate backend that is available, is
// switched on and does not disable codecID; HardwareDeviceTypeNone means
// software decoding.
func (e *Engine) SelectBackend(
	ctx context.Context,
	codecID astiav.CodecID,
	candidates ...Candidate,
) (_ret types.HardwareDeviceType) {
	logger.Tracef(ctx, "SelectBackend(ctx, %s)", codecID)
	defer func() { logger.Tracef(ctx, "/SelectBackend(ctx, %s): %s", codecID, _ret) }()
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}

	available := e.backendIDs(ctx)
	for _, c := range candidates {
		if !hwaccel.Has(available, c.DeviceType.String()) {
			logger.Tracef(ctx, "backend %s is not available", c.DeviceType)
			continue
		}
		if c.Toggle != "" && !e.getBool(c.Toggle) {
			logger.Debugf(ctx, "backend %s is switched off by '%s'", c.DeviceType, c.Toggle)
			continue
		}
		if e.IsCodecDisabled(ctx, c.Table, codecID) {
			continue
		}
		return c.DeviceType
	}
	return types.HardwareDeviceTypeNone
}
