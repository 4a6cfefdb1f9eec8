// Package gpuvendor classifies the GPU vendor reported by the render system.
package gpuvendor

import (
	"fmt"
	"strings"
)

type Vendor int

const (
	Unknown Vendor = iota
	NVIDIA
	Intel
)

func (v Vendor) String() string {
	switch v {
	case Unknown:
		return "unknown"
	case NVIDIA:
		return "nvidia"
	case Intel:
		return "intel"
	}
	return fmt.Sprintf("unknown_vendor_%d", int(v))
}

// Classify maps a free-text vendor string (as reported by the GL/Vulkan
// driver) to a Vendor. Only the prefix of the lowercased string is compared,
// so "NVIDIA Corporation" and "Intel Open Source Technology Center" match
// while anything else (including "") is Unknown.
func Classify(vendorString string) Vendor {
	s := strings.ToLower(vendorString)
	switch {
	case strings.HasPrefix(s, "nvidia"):
		return NVIDIA
	case strings.HasPrefix(s, "intel"):
		return Intel
	}
	return Unknown
}
