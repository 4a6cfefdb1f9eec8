// hardware_device_type.go defines the HardwareDeviceType enum of acceleration backends.

// Package types holds small types shared between avhwgate packages.
package types

import (
	"fmt"
	"strings"
)

// HardwareDeviceType identifies a hardware-acceleration backend. The values
// follow libav's enum AVHWDeviceType, so they convert to
// astiav.HardwareDeviceType directly.
type HardwareDeviceType int

const (
	HardwareDeviceTypeNone         = HardwareDeviceType(0x0)
	HardwareDeviceTypeVDPAU        = HardwareDeviceType(0x1)
	HardwareDeviceTypeCUDA         = HardwareDeviceType(0x2)
	HardwareDeviceTypeVAAPI        = HardwareDeviceType(0x3)
	HardwareDeviceTypeDXVA2        = HardwareDeviceType(0x4)
	HardwareDeviceTypeQSV          = HardwareDeviceType(0x5)
	HardwareDeviceTypeVideoToolbox = HardwareDeviceType(0x6)
	HardwareDeviceTypeD3D11VA      = HardwareDeviceType(0x7)
	HardwareDeviceTypeDRM          = HardwareDeviceType(0x8)
	HardwareDeviceTypeOpenCL       = HardwareDeviceType(0x9)
	HardwareDeviceTypeMediaCodec   = HardwareDeviceType(0xa)
	HardwareDeviceTypeVulkan       = HardwareDeviceType(0xb)
	endOfHardwareDeviceType        = HardwareDeviceType(0xc)
)

// String returns the backend id as used by the backend enumerator
// ("vdpau", "vaapi", ...).
func (t HardwareDeviceType) String() string {
	switch t {
	case HardwareDeviceTypeNone:
		return "none"
	case HardwareDeviceTypeVDPAU:
		return "vdpau"
	case HardwareDeviceTypeCUDA:
		return "cuda"
	case HardwareDeviceTypeVAAPI:
		return "vaapi"
	case HardwareDeviceTypeDXVA2:
		return "dxva2"
	case HardwareDeviceTypeQSV:
		return "qsv"
	case HardwareDeviceTypeVideoToolbox:
		return "videotoolbox"
	case HardwareDeviceTypeD3D11VA:
		return "d3d11va"
	case HardwareDeviceTypeDRM:
		return "drm"
	case HardwareDeviceTypeOpenCL:
		return "opencl"
	case HardwareDeviceTypeMediaCodec:
		return "mediacodec"
	case HardwareDeviceTypeVulkan:
		return "vulkan"
	}
	return fmt.Sprintf("unknown_%X", int64(t))
}

// HardwareDeviceTypeFromString is the reverse of String; it returns -1 for
// unknown backend ids.
func HardwareDeviceTypeFromString(s string) HardwareDeviceType {
	s = strings.Trim(strings.ToLower(s), " \n\r\t")
	for t := HardwareDeviceTypeNone; t < endOfHardwareDeviceType; t++ {
		if s == t.String() {
			return t
		}
	}
	return -1
}

func (t HardwareDeviceType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *HardwareDeviceType) UnmarshalText(b []byte) error {
	v := HardwareDeviceTypeFromString(string(b))
	if v < 0 {
		return fmt.Errorf("unknown hardware device type: '%s'", b)
	}
	*t = v
	return nil
}
