// Package settings defines the user-facing acceleration toggles and the
// stores the codec policy reads them from.
package settings

// Setting is a handle to a known setting. Stores return nil for ids they
// know nothing about.
type Setting interface {
	ID() string
}

// Store is the read side of a settings storage; it must be safe for
// concurrent reads.
type Store interface {
	GetBool(id string) bool
	GetSetting(id string) Setting
}

// Toggle is a boolean setting.
type Toggle string

var _ Setting = Toggle("")

func (t Toggle) ID() string {
	return string(t)
}

const (
	UseVDPAU      = "videoplayer.usevdpau"
	UseVDPAUMixer = "videoplayer.usevdpaumixer"
	UseVDPAUMPEG2 = "videoplayer.usevdpaumpeg2"
	UseVDPAUMPEG4 = "videoplayer.usevdpaumpeg4"
	UseVDPAUVC1   = "videoplayer.usevdpauvc1"

	UseVAAPI      = "videoplayer.usevaapi"
	UseVAAPIMPEG2 = "videoplayer.usevaapimpeg2"
	UseVAAPIMPEG4 = "videoplayer.usevaapimpeg4"
	UseVAAPIVC1   = "videoplayer.usevaapivc1"
	UseVAAPIVP8   = "videoplayer.usevaapivp8"
	UseVAAPIVP9   = "videoplayer.usevaapivp9"
	UseVAAPIHEVC  = "videoplayer.usevaapihevc"
	UseVAAPIAV1   = "videoplayer.usevaapiav1"
)

// KnownToggles lists every toggle the policy knows about; all of them
// default to enabled.
var KnownToggles = []string{
	UseVDPAU,
	UseVDPAUMixer,
	UseVDPAUMPEG2,
	UseVDPAUMPEG4,
	UseVDPAUVC1,
	UseVAAPI,
	UseVAAPIMPEG2,
	UseVAAPIMPEG4,
	UseVAAPIVC1,
	UseVAAPIVP8,
	UseVAAPIVP9,
	UseVAAPIHEVC,
	UseVAAPIAV1,
}

func isKnown(id string) bool {
	for _, known := range KnownToggles {
		if known == id {
			return true
		}
	}
	return false
}
