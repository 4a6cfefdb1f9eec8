package policy

import (
	"context"

	"github.com/xaionaro-go/avhwgate/gpuvendor"
	"github.com/xaionaro-go/avhwgate/hwaccel"
	"github.com/xaionaro-go/avhwgate/logger"
	"github.com/xaionaro-go/avhwgate/settings"
	"github.com/xaionaro-go/avhwgate/types"
)

// IsSettingVisible reports whether the toggle should be shown to the user.
//
// condition is unused and kept for the settings-visibility callback
// signature; an empty value or a nil setting is never visible.
func (e *Engine) IsSettingVisible(
	ctx context.Context,
	condition string,
	value string,
	setting settings.Setting,
) (_ret bool) {
	logger.Tracef(ctx, "IsSettingVisible(ctx, '%s', '%s', %v)", condition, value, setting)
	defer func() { logger.Tracef(ctx, "/IsSettingVisible(ctx, '%s', '%s', %v): %v", condition, value, setting, _ret) }()
	if setting == nil || value == "" {
		return false
	}

	settingID := setting.ID()
	switch settingID {
	case settings.UseVDPAU, settings.UseVAAPI:
		return IsSettingVisibleFor(settingID, gpuvendor.Unknown, e.backendIDs(ctx))
	}
	return IsSettingVisibleFor(settingID, e.vendor(ctx), nil)
}

// IsSettingVisibleFor is the decision behind IsSettingVisible, given the
// already known vendor and available backend ids. The backend ids matter
// only for the master VDPAU/VAAPI toggles, the vendor only for the others.
func IsSettingVisibleFor(
	settingID string,
	vendor gpuvendor.Vendor,
	backendIDs []string,
) bool {
	switch settingID {
	case settings.UseVDPAU:
		return hwaccel.Has(backendIDs, types.HardwareDeviceTypeVDPAU.String())
	case settings.UseVAAPI:
		return hwaccel.Has(backendIDs, types.HardwareDeviceTypeVAAPI.String())
	}

	switch vendor {
	case gpuvendor.NVIDIA:
		// NVIDIA needs only the MPEG-4 toggle; this also hides every VAAPI toggle
		return settingID == settings.UseVDPAUMPEG4
	case gpuvendor.Intel:
		// and this hides every VDPAU toggle on Intel
		switch settingID {
		case settings.UseVAAPIMPEG4, settings.UseVAAPIVC1, settings.UseVAAPIMPEG2:
			return true
		}
		return false
	}

	// AMD (open-source VDPAU), fglrx and whatever else: we don't know what
	// the driver can do, so show everything
	return true
}

// VisibleSettings returns the subset of ids the user should see.
func (e *Engine) VisibleSettings(
	ctx context.Context,
	ids []string,
) []string {
	var result []string
	for _, id := range ids {
		if e.IsSettingVisible(ctx, "", "visible", e.getSetting(id)) {
			result = append(result, id)
		}
	}
	return result
}
