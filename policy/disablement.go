package policy

import (
	"context"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avhwgate/logger"
	"github.com/xaionaro-go/avhwgate/settings"
)

// DisablementTable maps a codec to the toggle gating its acceleration.
// Codecs absent from the table are never disabled by IsCodecDisabled.
type DisablementTable map[astiav.CodecID]string

// VDPAUDisablementTable is the gating used by the VDPAU decoder.
var VDPAUDisablementTable = DisablementTable{
	astiav.CodecIDMpeg1Video: settings.UseVDPAUMPEG2,
	astiav.CodecIDMpeg2Video: settings.UseVDPAUMPEG2,
	astiav.CodecIDMpeg4:      settings.UseVDPAUMPEG4,
	astiav.CodecIDWmv3:       settings.UseVDPAUVC1,
	astiav.CodecIDVc1:        settings.UseVDPAUVC1,
}

// VAAPIDisablementTable is the gating used by the VAAPI decoder.
var VAAPIDisablementTable = DisablementTable{
	astiav.CodecIDMpeg4:      settings.UseVAAPIMPEG4,
	astiav.CodecIDWmv3:       settings.UseVAAPIVC1,
	astiav.CodecIDVc1:        settings.UseVAAPIVC1,
	astiav.CodecIDMpeg2Video: settings.UseVAAPIMPEG2,
	astiav.CodecIDVp8:        settings.UseVAAPIVP8,
	astiav.CodecIDVp9:        settings.UseVAAPIVP9,
	astiav.CodecIDHevc:       settings.UseVAAPIHEVC,
	astiav.CodecIDAv1:        settings.UseVAAPIAV1,
}

// IsCodecDisabled reports whether hardware acceleration of codecID is
// disabled: either the user switched its toggle off, or the toggle does not
// apply to this hardware at all.
func (e *Engine) IsCodecDisabled(
	ctx context.Context,
	table DisablementTable,
	codecID astiav.CodecID,
) (_ret bool) {
	logger.Tracef(ctx, "IsCodecDisabled(ctx, %s)", codecID)
	defer func() { logger.Tracef(ctx, "/IsCodecDisabled(ctx, %s): %v", codecID, _ret) }()

	toggleID, ok := table[codecID]
	if !ok {
		return false
	}

	if !e.getBool(toggleID) {
		logger.Debugf(ctx, "acceleration of %s is disabled by '%s'", codecID, toggleID)
		return true
	}
	if !e.IsSettingVisible(ctx, "unused", "unused", e.getSetting(toggleID)) {
		logger.Debugf(ctx, "acceleration of %s is disabled: '%s' does not apply to this hardware", codecID, toggleID)
		return true
	}
	return false
}
